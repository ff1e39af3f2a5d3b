package types

import (
	domain "github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/skills"
	"github.com/acheronlabs/evefit/internal/domain/stats"
)

// ImportEFTCommand parses EFT text into a fitting, resolving every name
// through the type provider. SaveAs, when non-empty, persists the imported
// fitting under that name.
type ImportEFTCommand struct {
	Text   string
	SaveAs string
}

// ImportEFTResponse carries the imported fitting, its stats snapshot and
// the names that could not be resolved or classified (skipped, not fatal).
type ImportEFTResponse struct {
	Fitting *domain.Fitting
	Ship    *domain.TypeEntity
	Stats   stats.ShipStats
	Dropped []string
}

// ExportEFTQuery serializes a saved fitting to EFT text.
type ExportEFTQuery struct {
	Name string
}

type ExportEFTResponse struct {
	Text string
}

// GetStatsQuery computes the stats snapshot for a saved fitting. With
// AllLevelV the twelve support skills are overlaid at level V and the
// deltas are reported alongside.
type GetStatsQuery struct {
	Name      string
	AllLevelV bool
}

type GetStatsResponse struct {
	Fitting *domain.Fitting
	Stats   stats.ShipStats
	Skilled *stats.ShipStats
	Deltas  skills.Deltas
}

// SaveFittingCommand persists a fitting under its name.
type SaveFittingCommand struct {
	Fitting *domain.Fitting
}

type SaveFittingResponse struct {
	Saved bool
}

// ListFittingsQuery lists all saved fittings.
type ListFittingsQuery struct{}

type ListFittingsResponse struct {
	Fittings []*domain.Fitting
}

// DeleteFittingCommand removes a saved fitting by name.
type DeleteFittingCommand struct {
	Name string
}

type DeleteFittingResponse struct {
	Deleted bool
}
