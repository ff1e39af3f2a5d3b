package commands

import (
	"context"
	"fmt"

	"github.com/acheronlabs/evefit/internal/application/common"
	appfitting "github.com/acheronlabs/evefit/internal/application/fitting"
	"github.com/acheronlabs/evefit/internal/application/fitting/types"
	"github.com/acheronlabs/evefit/internal/domain/eft"
	"github.com/acheronlabs/evefit/internal/domain/ports"
	"github.com/acheronlabs/evefit/internal/domain/stats"
)

// ImportEFTHandler - Handles EFT import commands
type ImportEFTHandler struct {
	provider    ports.TypeProvider
	fittingRepo common.FittingRepository
	calc        *stats.Calculator
}

// NewImportEFTHandler creates a new EFT import handler
// If calc is nil, uses a calculator with the default simulation bound
func NewImportEFTHandler(provider ports.TypeProvider, fittingRepo common.FittingRepository, calc *stats.Calculator) *ImportEFTHandler {
	if calc == nil {
		calc = stats.NewCalculator()
	}
	return &ImportEFTHandler{
		provider:    provider,
		fittingRepo: fittingRepo,
		calc:        calc,
	}
}

// Handle executes the EFT import command
func (h *ImportEFTHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*types.ImportEFTCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	parsed, err := eft.Parse(cmd.Text)
	if err != nil {
		return nil, err
	}

	importer := appfitting.NewImporter(h.provider)
	result, err := importer.Import(ctx, parsed)
	if err != nil {
		return nil, err
	}

	if cmd.SaveAs != "" {
		result.Fitting.Name = cmd.SaveAs
		if err := h.fittingRepo.Save(ctx, result.Fitting); err != nil {
			return nil, fmt.Errorf("failed to save imported fitting: %w", err)
		}
	}

	snapshot := h.calc.Calculate(result.Ship, result.Fitting)

	return &types.ImportEFTResponse{
		Fitting: result.Fitting,
		Ship:    result.Ship,
		Stats:   *snapshot,
		Dropped: result.Dropped,
	}, nil
}
