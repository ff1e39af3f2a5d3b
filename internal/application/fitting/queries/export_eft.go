package queries

import (
	"context"
	"fmt"

	"github.com/acheronlabs/evefit/internal/application/common"
	appfitting "github.com/acheronlabs/evefit/internal/application/fitting"
	"github.com/acheronlabs/evefit/internal/application/fitting/types"
)

// ExportEFTHandler - Handles EFT export queries
type ExportEFTHandler struct {
	fittingRepo common.FittingRepository
}

// NewExportEFTHandler creates a new EFT export handler
func NewExportEFTHandler(fittingRepo common.FittingRepository) *ExportEFTHandler {
	return &ExportEFTHandler{fittingRepo: fittingRepo}
}

// Handle executes the EFT export query
func (h *ExportEFTHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*types.ExportEFTQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	fit, err := h.fittingRepo.FindByName(ctx, query.Name)
	if err != nil {
		return nil, err
	}

	return &types.ExportEFTResponse{Text: appfitting.ToEFT(fit)}, nil
}
