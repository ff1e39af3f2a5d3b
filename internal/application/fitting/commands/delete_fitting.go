package commands

import (
	"context"
	"fmt"

	"github.com/acheronlabs/evefit/internal/application/common"
	"github.com/acheronlabs/evefit/internal/application/fitting/types"
)

// DeleteFittingHandler - Handles fitting deletion commands
type DeleteFittingHandler struct {
	fittingRepo common.FittingRepository
}

// NewDeleteFittingHandler creates a new delete fitting handler
func NewDeleteFittingHandler(fittingRepo common.FittingRepository) *DeleteFittingHandler {
	return &DeleteFittingHandler{fittingRepo: fittingRepo}
}

// Handle executes the delete fitting command
func (h *DeleteFittingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*types.DeleteFittingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if err := h.fittingRepo.Delete(ctx, cmd.Name); err != nil {
		return nil, fmt.Errorf("failed to delete fitting: %w", err)
	}

	return &types.DeleteFittingResponse{Deleted: true}, nil
}
