// Package skillplan builds three-tier training plans from a ship+fitting's
// transitive skill prerequisites.
package skillplan

import (
	"context"
	"sort"
	"sync"

	"github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/ports"
	"github.com/acheronlabs/evefit/internal/domain/shared"
	"github.com/acheronlabs/evefit/internal/domain/skills"
)

// Requirement is one skill at a required training level.
type Requirement struct {
	SkillID       int    `json:"skill_id"`
	SkillName     string `json:"skill_name"`
	RequiredLevel int    `json:"required_level"`
}

// Plan is the three-tier training plan. Mastery is a superset of
// Recommended, which is a superset of Minimum.
type Plan struct {
	Minimum     []Requirement `json:"minimum"`
	Recommended []Requirement `json:"recommended"`
	Mastery     []Requirement `json:"mastery"`
}

// Resolver walks the prerequisite graph through a TypeProvider. Lookups
// fan out concurrently and fail independently: an unresolvable skill is
// dropped from the plan, never aborts it.
type Resolver struct {
	provider ports.TypeProvider
}

// NewResolver creates a Resolver over the given type provider.
func NewResolver(provider ports.TypeProvider) *Resolver {
	return &Resolver{provider: provider}
}

// requiredSkills reads the paired required-skill attribute slots off a
// sparse attribute map, keeping the maximum level per skill id.
func requiredSkills(attr func(id int, fallback float64) float64, into map[int]int) {
	for _, pair := range shared.RequiredSkillAttrs {
		skillID := int(attr(pair[0], 0))
		level := int(attr(pair[1], 0))
		if skillID <= 0 || level <= 0 {
			continue
		}
		if level > into[skillID] {
			into[skillID] = level
		}
	}
}

// fetchResult carries one fan-out lookup outcome. Failed lookups carry a
// nil entity and are treated as unresolvable.
type fetchResult struct {
	skillID int
	entity  *fitting.TypeEntity
}

// BuildPlan resolves the full prerequisite closure for ship+fitting and
// derives the Minimum/Recommended/Mastery stages.
func (r *Resolver) BuildPlan(ctx context.Context, ship *fitting.TypeEntity, fit *fitting.Fitting) (*Plan, error) {
	// Direct requirements from the ship and every distinct module type in
	// the fitting (racks and drones). Fitted modules carry flattened
	// attribute copies, so no lookups are needed at this stage.
	required := make(map[int]int)
	requiredSkills(ship.Attr, required)

	seenTypes := map[int]bool{}
	for _, m := range append(fit.Modules(), fit.Drones...) {
		if seenTypes[m.TypeID] {
			continue
		}
		seenTypes[m.TypeID] = true
		requiredSkills(m.Attr, required)
	}

	// Transitive closure, one concurrent fan-out wave per frontier. The
	// result only depends on the set of resolved skills, keyed by id, so
	// completion order cannot change the outcome.
	resolved := make(map[int]*fitting.TypeEntity)
	visited := make(map[int]bool)

	frontier := make([]int, 0, len(required))
	for id := range required {
		frontier = append(frontier, id)
	}

	for len(frontier) > 0 {
		results := make(chan fetchResult, len(frontier))
		var wg sync.WaitGroup
		for _, id := range frontier {
			if visited[id] {
				continue
			}
			visited[id] = true
			wg.Add(1)
			go func(skillID int) {
				defer wg.Done()
				entity, err := r.provider.GetType(ctx, skillID)
				if err != nil {
					results <- fetchResult{skillID: skillID}
					return
				}
				results <- fetchResult{skillID: skillID, entity: entity}
			}(id)
		}
		wg.Wait()
		close(results)

		frontier = frontier[:0]
		for res := range results {
			if res.entity == nil {
				// Unresolvable: dropped from the plan, siblings unaffected.
				continue
			}
			// Attribute data can point at non-skill types; stop there.
			if !res.entity.IsSkill(shared.CategorySkill) {
				continue
			}
			resolved[res.skillID] = res.entity

			prereqs := make(map[int]int)
			requiredSkills(res.entity.Attr, prereqs)
			for id, level := range prereqs {
				if level > required[id] {
					required[id] = level
				}
				if !visited[id] {
					frontier = append(frontier, id)
				}
			}
		}
	}

	// Minimum: exactly the resolved requirement set at computed levels.
	minimum := make(map[int]Requirement)
	for id, level := range required {
		entity, ok := resolved[id]
		if !ok {
			continue
		}
		minimum[id] = Requirement{SkillID: id, SkillName: entity.Name, RequiredLevel: level}
	}

	// Recommended: every Minimum skill at level >= 4, union the support
	// skills floored at 4. An existing higher requirement wins.
	recommended := make(map[int]Requirement)
	for id, req := range minimum {
		if req.RequiredLevel < 4 {
			req.RequiredLevel = 4
		}
		recommended[id] = req
	}
	for _, support := range skills.SupportSkills {
		if existing, ok := recommended[support.TypeID]; ok {
			if existing.RequiredLevel < 4 {
				existing.RequiredLevel = 4
				recommended[support.TypeID] = existing
			}
			continue
		}
		recommended[support.TypeID] = Requirement{
			SkillID:       support.TypeID,
			SkillName:     support.Name,
			RequiredLevel: 4,
		}
	}

	// Mastery: the Recommended set with everything at 5.
	mastery := make(map[int]Requirement)
	for id, req := range recommended {
		req.RequiredLevel = 5
		mastery[id] = req
	}

	return &Plan{
		Minimum:     sortStage(minimum),
		Recommended: sortStage(recommended),
		Mastery:     sortStage(mastery),
	}, nil
}

func sortStage(stage map[int]Requirement) []Requirement {
	out := make([]Requirement, 0, len(stage))
	for _, req := range stage {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SkillName < out[j].SkillName })
	return out
}
