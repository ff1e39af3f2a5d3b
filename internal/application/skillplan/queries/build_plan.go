package queries

import (
	"context"
	"fmt"

	"github.com/acheronlabs/evefit/internal/application/common"
	"github.com/acheronlabs/evefit/internal/application/skillplan/types"
	"github.com/acheronlabs/evefit/internal/domain/ports"
	"github.com/acheronlabs/evefit/internal/domain/skillplan"
)

// BuildSkillPlanHandler - Handles skill plan resolution queries
type BuildSkillPlanHandler struct {
	fittingRepo common.FittingRepository
	provider    ports.TypeProvider
}

// NewBuildSkillPlanHandler creates a new skill plan handler
func NewBuildSkillPlanHandler(fittingRepo common.FittingRepository, provider ports.TypeProvider) *BuildSkillPlanHandler {
	return &BuildSkillPlanHandler{
		fittingRepo: fittingRepo,
		provider:    provider,
	}
}

// Handle executes the skill plan query
func (h *BuildSkillPlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*types.BuildSkillPlanQuery)
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

	plan, err := skillplan.NewResolver(h.provider).BuildPlan(ctx, ship, fit)
	if err != nil {
		return nil, err
	}

	return &types.BuildSkillPlanResponse{Plan: plan}, nil
}
