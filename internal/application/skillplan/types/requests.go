package types

import (
	"github.com/acheronlabs/evefit/internal/domain/skillplan"
)

// BuildSkillPlanQuery resolves the skill plan for a saved fitting: the
// full prerequisite closure of the hull and every fitted module.
type BuildSkillPlanQuery struct {
	Name string
}

type BuildSkillPlanResponse struct {
	Plan *skillplan.Plan
}
