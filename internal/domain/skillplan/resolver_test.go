package skillplan_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/skillplan"
	"github.com/acheronlabs/evefit/test/helpers"
)

// skillType builds a skill entity, optionally declaring one prerequisite
// through the first required-skill attribute pair.
func skillType(id int, name string, prereqID, prereqLevel int) *fitting.TypeEntity {
	attrs := map[int]float64{}
	if prereqID != 0 {
		attrs[182] = float64(prereqID)
		attrs[277] = float64(prereqLevel)
	}
	return helpers.NewType(id, name, 1745, 16, attrs, nil)
}

func newResolverFixture() (*helpers.MockTypeProvider, *fitting.TypeEntity, *fitting.Fitting) {
	provider := helpers.NewMockTypeProvider()

	// Rifter requires Spaceship Command I through its own attributes; the
	// autocannon requires Small Projectile Turret I, which in turn requires
	// Gunnery II.
	provider.Add(skillType(3327, "Spaceship Command", 0, 0))
	provider.Add(skillType(3436, "Small Projectile Turret", 3300, 2))
	provider.Add(skillType(3300, "Gunnery", 0, 0))

	ship := helpers.RifterType()
	fit := fitting.NewFitting("Test", ship, "Frigate")
	return provider, ship, fit
}

func findReq(t *testing.T, stage []skillplan.Requirement, name string) skillplan.Requirement {
	t.Helper()
	for _, req := range stage {
		if req.SkillName == name {
			return req
		}
	}
	t.Fatalf("skill %q not in stage %v", name, stage)
	return skillplan.Requirement{}
}

func TestBuildPlan_ResolvesTransitivePrerequisites(t *testing.T) {
	// Arrange
	provider, ship, fit := newResolverFixture()
	require.NoError(t, fit.Place(fitting.SlotHigh, 0, helpers.AutoCannonType()))

	// Act
	plan, err := skillplan.NewResolver(provider).BuildPlan(context.Background(), ship, fit)

	// Assert: ship skill, module skill and its prerequisite
	require.NoError(t, err)
	require.Len(t, plan.Minimum, 3)
	assert.Equal(t, 1, findReq(t, plan.Minimum, "Spaceship Command").RequiredLevel)
	assert.Equal(t, 1, findReq(t, plan.Minimum, "Small Projectile Turret").RequiredLevel)
	assert.Equal(t, 2, findReq(t, plan.Minimum, "Gunnery").RequiredLevel)
}

func TestBuildPlan_DuplicateModulesResolveOnce(t *testing.T) {
	// Arrange
	provider, ship, fit := newResolverFixture()
	require.NoError(t, fit.Place(fitting.SlotHigh, 0, helpers.AutoCannonType()))
	require.NoError(t, fit.Place(fitting.SlotHigh, 1, helpers.AutoCannonType()))
	require.NoError(t, fit.Place(fitting.SlotHigh, 2, helpers.AutoCannonType()))

	// Act
	plan, err := skillplan.NewResolver(provider).BuildPlan(context.Background(), ship, fit)

	// Assert
	require.NoError(t, err)
	assert.Len(t, plan.Minimum, 3)
}

func TestBuildPlan_UnresolvableSkillIsDroppedNotFatal(t *testing.T) {
	// Arrange: the turret skill lookup fails; its prerequisite chain is
	// unreachable but the ship skill still resolves
	provider, ship, fit := newResolverFixture()
	provider.FailTypes[3436] = true
	require.NoError(t, fit.Place(fitting.SlotHigh, 0, helpers.AutoCannonType()))

	// Act
	plan, err := skillplan.NewResolver(provider).BuildPlan(context.Background(), ship, fit)

	// Assert
	require.NoError(t, err)
	require.Len(t, plan.Minimum, 1)
	assert.Equal(t, "Spaceship Command", plan.Minimum[0].SkillName)
}

func TestBuildPlan_NonSkillTypeStopsTheChain(t *testing.T) {
	// Arrange: attribute data pointing at a non-skill category
	provider := helpers.NewMockTypeProvider()
	provider.Add(helpers.NewType(3327, "Not A Skill", 25, 6, nil, nil))
	ship := helpers.RifterType()
	fit := fitting.NewFitting("Test", ship, "Frigate")

	// Act
	plan, err := skillplan.NewResolver(provider).BuildPlan(context.Background(), ship, fit)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, plan.Minimum)
}

func TestBuildPlan_StagesAreSupersets(t *testing.T) {
	// Arrange
	provider, ship, fit := newResolverFixture()
	require.NoError(t, fit.Place(fitting.SlotHigh, 0, helpers.AutoCannonType()))

	// Act
	plan, err := skillplan.NewResolver(provider).BuildPlan(context.Background(), ship, fit)
	require.NoError(t, err)

	// Assert: recommended floors resolved skills at 4 and adds the twelve
	// support skills
	assert.Len(t, plan.Recommended, 3+12)
	assert.Equal(t, 4, findReq(t, plan.Recommended, "Gunnery").RequiredLevel)
	assert.Equal(t, 4, findReq(t, plan.Recommended, "CPU Management").RequiredLevel)

	// Mastery is the recommended set with everything at 5
	assert.Len(t, plan.Mastery, len(plan.Recommended))
	for _, req := range plan.Mastery {
		assert.Equal(t, 5, req.RequiredLevel)
	}
}

func TestBuildPlan_StagesAreSortedByName(t *testing.T) {
	// Arrange
	provider, ship, fit := newResolverFixture()
	require.NoError(t, fit.Place(fitting.SlotHigh, 0, helpers.AutoCannonType()))

	// Act
	plan, err := skillplan.NewResolver(provider).BuildPlan(context.Background(), ship, fit)
	require.NoError(t, err)

	// Assert
	for i := 1; i < len(plan.Mastery); i++ {
		assert.Less(t, plan.Mastery[i-1].SkillName, plan.Mastery[i].SkillName)
	}
}
