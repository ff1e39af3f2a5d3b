package fitting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfitting "github.com/acheronlabs/evefit/internal/application/fitting"
	domain "github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/shared"
	"github.com/acheronlabs/evefit/internal/domain/skills"
	"github.com/acheronlabs/evefit/internal/domain/stats"
	"github.com/acheronlabs/evefit/test/helpers"
)

func newRifterSession() *appfitting.Session {
	ship := helpers.RifterType()
	return appfitting.NewSession(ship, domain.NewFitting("Test Fit", ship, "Frigate"))
}

func TestSession_InitialStatsReflectHull(t *testing.T) {
	// Arrange / Act
	session := newRifterSession()
	snapshot := session.Stats()

	// Assert
	assert.Equal(t, 125.0, snapshot.Engineering.CPUTotal)
	assert.Equal(t, 0.0, snapshot.Engineering.CPUUsed)
	assert.Equal(t, stats.SlotStats{High: 4, Mid: 3, Low: 3, Rig: 3}, snapshot.Slots)
}

func TestSession_PlaceModuleRecomputesStats(t *testing.T) {
	// Arrange
	session := newRifterSession()

	// Act
	err := session.PlaceModule(domain.SlotHigh, 0, helpers.AutoCannonType())

	// Assert
	require.NoError(t, err)
	stats := session.Stats()
	assert.Equal(t, 18.0, stats.Engineering.CPUUsed)
	assert.Equal(t, 6.0, stats.Engineering.PowerUsed)
	assert.InDelta(t, 20.0, stats.Offense.TurretDPS, 0.001)
}

func TestSession_FailedMutationLeavesStateUntouched(t *testing.T) {
	// Arrange
	session := newRifterSession()
	require.NoError(t, session.PlaceModule(domain.SlotHigh, 0, helpers.AutoCannonType()))
	before := session.Stats()

	// Act: index past the rack bound
	err := session.PlaceModule(domain.SlotHigh, 9, helpers.AutoCannonType())

	// Assert
	var slotErr *shared.SlotOutOfRangeError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, before, session.Stats())
	assert.Len(t, session.Fitting().ModuleTypeIDs(), 1)
}

func TestSession_FillSlotsHonorsHardpoints(t *testing.T) {
	// Arrange: 4 high slots but only 3 turret hardpoints on the hull
	session := newRifterSession()

	// Act
	filled, err := session.FillSlots(domain.SlotHigh, helpers.AutoCannonType())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, filled)
	assert.Equal(t, 3, session.Stats().Offense.TurretHardpoints)
	assert.InDelta(t, 60.0, session.Stats().Offense.TurretDPS, 0.001)
}

func TestSession_FillSlotsIsNoOpWhenNothingFits(t *testing.T) {
	// Arrange
	session := newRifterSession()
	_, err := session.FillSlots(domain.SlotHigh, helpers.AutoCannonType())
	require.NoError(t, err)
	before := session.Stats()

	// Act: hardpoints are exhausted
	filled, err := session.FillSlots(domain.SlotHigh, helpers.AutoCannonType())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, filled)
	assert.Equal(t, before, session.Stats())
}

func TestSession_ToggleOfflineFreesResources(t *testing.T) {
	// Arrange
	session := newRifterSession()
	require.NoError(t, session.PlaceModule(domain.SlotLow, 0, helpers.ArmorRepairerType()))
	require.Equal(t, 5.0, session.Stats().Engineering.CPUUsed)

	// Act: active -> passive -> offline
	require.NoError(t, session.ToggleState(domain.SlotLow, 0))
	require.NoError(t, session.ToggleState(domain.SlotLow, 0))

	// Assert
	assert.Equal(t, 0.0, session.Stats().Engineering.CPUUsed)
	assert.Equal(t, 0.0, session.Stats().Capacitor.Drain)
}

func TestSession_RemoveDroneRecomputes(t *testing.T) {
	// Arrange
	session := newRifterSession()
	require.NoError(t, session.AddDrone(helpers.HobgoblinType()))
	require.NoError(t, session.AddDrone(helpers.HobgoblinType()))
	require.InDelta(t, 12.0, session.Stats().Offense.DroneDPS, 0.001)

	// Act
	require.NoError(t, session.RemoveDrone(0))

	// Assert
	assert.InDelta(t, 6.0, session.Stats().Offense.DroneDPS, 0.001)
	assert.Equal(t, 5.0, session.Stats().Engineering.DroneBayUsed)
}

func TestSession_FittingReturnsDetachedCopy(t *testing.T) {
	// Arrange
	session := newRifterSession()
	require.NoError(t, session.PlaceModule(domain.SlotHigh, 0, helpers.AutoCannonType()))

	// Act: mutate the copy directly
	copied := session.Fitting()
	require.NoError(t, copied.Remove(domain.SlotHigh, 0))

	// Assert: session state unaffected
	assert.Len(t, session.Fitting().ModuleTypeIDs(), 1)
	assert.Equal(t, 18.0, session.Stats().Engineering.CPUUsed)
}

func TestSession_SkillOverlayFollowsTrainedMap(t *testing.T) {
	// Arrange
	session := newRifterSession()
	_, _, ok := session.SkilledStats()
	require.False(t, ok)

	// Act
	session.SetSkills(skills.AllLevelV())

	// Assert
	skilled, deltas, ok := session.SkilledStats()
	require.True(t, ok)
	assert.InDelta(t, 125.0*1.25, skilled.Engineering.CPUTotal, 0.001)
	assert.InDelta(t, 125.0*0.25, deltas.CPUTotal, 0.001)

	// Act: disabling the overlay drops the skilled snapshot
	session.SetSkills(nil)
	_, _, ok = session.SkilledStats()
	assert.False(t, ok)
}

func TestSession_ImportFittingReplacesAggregate(t *testing.T) {
	// Arrange
	session := newRifterSession()
	require.NoError(t, session.PlaceModule(domain.SlotHigh, 0, helpers.AutoCannonType()))

	ship := helpers.RifterType()
	fresh := domain.NewFitting("Fresh", ship, "Frigate")

	// Act
	session.ImportFitting(ship, fresh)

	// Assert
	assert.Equal(t, "Fresh", session.Fitting().Name)
	assert.Equal(t, 0.0, session.Stats().Engineering.CPUUsed)
}
