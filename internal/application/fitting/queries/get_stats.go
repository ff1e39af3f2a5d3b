package queries

import (
	"context"
	"fmt"

	"github.com/acheronlabs/evefit/internal/application/common"
	"github.com/acheronlabs/evefit/internal/application/fitting/types"
	"github.com/acheronlabs/evefit/internal/domain/ports"
	"github.com/acheronlabs/evefit/internal/domain/skills"
	"github.com/acheronlabs/evefit/internal/domain/stats"
)

// GetStatsHandler - Handles fitting stats queries
type GetStatsHandler struct {
	fittingRepo common.FittingRepository
	provider    ports.TypeProvider
	calc        *stats.Calculator
}

// NewGetStatsHandler creates a new stats handler
// If calc is nil, uses a calculator with the default simulation bound
func NewGetStatsHandler(fittingRepo common.FittingRepository, provider ports.TypeProvider, calc *stats.Calculator) *GetStatsHandler {
	if calc == nil {
		calc = stats.NewCalculator()
	}
	return &GetStatsHandler{
		fittingRepo: fittingRepo,
		provider:    provider,
		calc:        calc,
	}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*types.GetStatsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	fit, err := h.fittingRepo.FindByName(ctx, query.Name)
	if err != nil {
		return nil, err
	}

	ship, err := h.provider.GetType(ctx, fit.ShipTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ship type %d: %w", fit.ShipTypeID, err)
	}

	base := h.calc.Calculate(ship, fit)
	response := &types.GetStatsResponse{
		Fitting: fit,
		Stats:   *base,
	}

	if query.AllLevelV {
		engine := skills.NewEngine()
		engine.MaxSimSeconds = h.calc.MaxSimSeconds
		skilled, deltas := engine.Apply(base, skills.AllLevelV())
		response.Skilled = skilled
		response.Deltas = deltas
	}

	return response, nil
}
