package skills_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/skills"
	"github.com/acheronlabs/evefit/internal/domain/stats"
	"github.com/acheronlabs/evefit/test/helpers"
)

func baseRifterStats(t *testing.T) *stats.ShipStats {
	t.Helper()
	ship := helpers.RifterType()
	fit := fitting.NewFitting("Test", ship, "Frigate")
	require.NoError(t, fit.Place(fitting.SlotHigh, 0, helpers.AutoCannonType()))
	return stats.NewCalculator().Calculate(ship, fit)
}

func TestApply_NoTrainingIsIdentity(t *testing.T) {
	// Arrange
	base := baseRifterStats(t)

	// Act
	skilled, deltas := skills.NewEngine().Apply(base, skills.SkillMap{})

	// Assert
	assert.Equal(t, *base, *skilled)
	assert.Equal(t, skills.Deltas{}, deltas)
}

func TestApply_AllLevelV(t *testing.T) {
	// Arrange
	base := baseRifterStats(t)

	// Act
	skilled, deltas := skills.NewEngine().Apply(base, skills.AllLevelV())

	// Assert: +25% primitives
	assert.InDelta(t, base.Engineering.CPUTotal*1.25, skilled.Engineering.CPUTotal, 1e-9)
	assert.InDelta(t, base.Engineering.PowerTotal*1.25, skilled.Engineering.PowerTotal, 1e-9)
	assert.InDelta(t, base.Capacitor.Capacity*1.25, skilled.Capacitor.Capacity, 1e-9)
	assert.InDelta(t, base.Capacitor.RechargeTau*0.75, skilled.Capacitor.RechargeTau, 1e-9)
	assert.InDelta(t, base.Shield.HP*1.25, skilled.Shield.HP, 1e-9)
	assert.InDelta(t, base.Armor.HP*1.25, skilled.Armor.HP, 1e-9)
	assert.InDelta(t, base.Hull.HP*1.25, skilled.Hull.HP, 1e-9)
	assert.InDelta(t, base.Navigation.MaxVelocity*1.25, skilled.Navigation.MaxVelocity, 1e-9)
	assert.InDelta(t, base.Navigation.Inertia*0.75, skilled.Navigation.Inertia, 1e-9)
	assert.Equal(t, base.Targeting.MaxTargets+5, skilled.Targeting.MaxTargets)

	// Derived figures are recomputed, not scaled
	assert.InDelta(t, skilled.Shield.HP/skilled.Shield.AvgResonance, skilled.Shield.EHP, 1e-9)
	assert.InDelta(t, skilled.Navigation.AlignTime, base.Navigation.AlignTime*0.75, 1e-9)
	assert.Greater(t, skilled.TotalEHP, base.TotalEHP)

	// Deltas are skilled minus base
	assert.InDelta(t, base.Engineering.CPUTotal*0.25, deltas.CPUTotal, 1e-9)
	assert.InDelta(t, skilled.TotalEHP-base.TotalEHP, deltas.TotalEHP, 1e-9)
	assert.Less(t, deltas.AlignTime, 0.0)
	assert.Equal(t, 5, deltas.MaxTargets)
}

func TestApply_HigherLevelsNeverRegress(t *testing.T) {
	// Arrange
	base := baseRifterStats(t)
	atLevel := func(lvl int) skills.SkillMap {
		m := make(skills.SkillMap, len(skills.SupportSkills))
		for _, s := range skills.SupportSkills {
			m[s.TypeID] = lvl
		}
		return m
	}

	// Act
	lower, _ := skills.NewEngine().Apply(base, atLevel(2))
	higher, _ := skills.NewEngine().Apply(base, atLevel(4))

	// Assert: every bonused stat moves in its favorable direction
	assert.GreaterOrEqual(t, higher.Engineering.CPUTotal, lower.Engineering.CPUTotal)
	assert.GreaterOrEqual(t, higher.Engineering.PowerTotal, lower.Engineering.PowerTotal)
	assert.GreaterOrEqual(t, higher.Capacitor.Capacity, lower.Capacitor.Capacity)
	assert.GreaterOrEqual(t, higher.Capacitor.PeakRecharge, lower.Capacitor.PeakRecharge)
	assert.GreaterOrEqual(t, higher.Shield.HP, lower.Shield.HP)
	assert.GreaterOrEqual(t, higher.Armor.HP, lower.Armor.HP)
	assert.GreaterOrEqual(t, higher.Hull.HP, lower.Hull.HP)
	assert.GreaterOrEqual(t, higher.TotalEHP, lower.TotalEHP)
	assert.GreaterOrEqual(t, higher.Navigation.MaxVelocity, lower.Navigation.MaxVelocity)
	assert.GreaterOrEqual(t, higher.Targeting.MaxTargets, lower.Targeting.MaxTargets)
	assert.GreaterOrEqual(t, higher.Targeting.MaxTargetRange, lower.Targeting.MaxTargetRange)
	assert.GreaterOrEqual(t, higher.Targeting.ScanResolution, lower.Targeting.ScanResolution)

	// Lower-is-better stats shrink
	assert.LessOrEqual(t, higher.Capacitor.RechargeTau, lower.Capacitor.RechargeTau)
	assert.LessOrEqual(t, higher.Navigation.Inertia, lower.Navigation.Inertia)
	assert.LessOrEqual(t, higher.Navigation.AlignTime, lower.Navigation.AlignTime)
}

func TestApply_DoesNotMutateBase(t *testing.T) {
	// Arrange
	base := baseRifterStats(t)
	snapshot := *base

	// Act
	_, _ = skills.NewEngine().Apply(base, skills.AllLevelV())

	// Assert
	assert.Equal(t, snapshot, *base)
}

func TestApply_UsedResourcesAreUnaffected(t *testing.T) {
	// Arrange
	base := baseRifterStats(t)

	// Act
	skilled, deltas := skills.NewEngine().Apply(base, skills.SkillMap{
		skills.SkillCPUManagement: 4,
	})

	// Assert: the free margin grows by exactly the total's growth
	assert.Equal(t, base.Engineering.CPUUsed, skilled.Engineering.CPUUsed)
	assert.InDelta(t, deltas.CPUTotal, deltas.CPUFree, 1e-9)
}

func TestApply_CapacitorSkillsCanTurnAnUnstableFitStable(t *testing.T) {
	// Arrange: drain just above the base peak recharge of 6.67 GJ/s
	base := &stats.ShipStats{
		Capacitor: stats.CapacitorStats{
			Capacity:     250,
			RechargeTau:  93.75,
			PeakRecharge: 2.5 * 250 / 93.75,
			Drain:        7.0,
			Stable:       false,
			LastsSeconds: 120,
		},
	}
	require.False(t, base.Capacitor.Stable)

	// Act: +25% capacity and -25% recharge time push peak to 11.1 GJ/s
	skilled, _ := skills.NewEngine().Apply(base, skills.SkillMap{
		skills.SkillCapacitorManagement:        5,
		skills.SkillCapacitorSystemsOperation: 5,
	})

	// Assert
	assert.True(t, skilled.Capacitor.Stable)
	assert.Greater(t, skilled.Capacitor.StablePercent, 0.0)
}
