package commands

import (
	"context"
	"fmt"

	"github.com/acheronlabs/evefit/internal/application/common"
	"github.com/acheronlabs/evefit/internal/application/fitting/types"
)

// SaveFittingHandler - Handles fitting persistence commands
type SaveFittingHandler struct {
	fittingRepo common.FittingRepository
}

// NewSaveFittingHandler creates a new save fitting handler
func NewSaveFittingHandler(fittingRepo common.FittingRepository) *SaveFittingHandler {
	return &SaveFittingHandler{fittingRepo: fittingRepo}
}

// Handle executes the save fitting command
func (h *SaveFittingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*types.SaveFittingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if cmd.Fitting == nil || cmd.Fitting.Name == "" {
		return nil, fmt.Errorf("fitting name is required")
	}

	if err := h.fittingRepo.Save(ctx, cmd.Fitting); err != nil {
		return nil, fmt.Errorf("failed to save fitting: %w", err)
	}

	return &types.SaveFittingResponse{Saved: true}, nil
}
