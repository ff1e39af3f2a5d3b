package queries

import (
	"context"
	"fmt"

	"github.com/acheronlabs/evefit/internal/application/common"
	"github.com/acheronlabs/evefit/internal/application/fitting/types"
)

// ListFittingsHandler - Handles fitting listing queries
type ListFittingsHandler struct {
	fittingRepo common.FittingRepository
}

// NewListFittingsHandler creates a new list fittings handler
func NewListFittingsHandler(fittingRepo common.FittingRepository) *ListFittingsHandler {
	return &ListFittingsHandler{fittingRepo: fittingRepo}
}

// Handle executes the list fittings query
func (h *ListFittingsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*types.ListFittingsQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	fittings, err := h.fittingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fittings: %w", err)
	}

	return &types.ListFittingsResponse{Fittings: fittings}, nil
}
