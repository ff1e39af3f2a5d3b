package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheronlabs/evefit/internal/adapters/persistence"
	"github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/test/helpers"
)

func newRepoFitting(name string) *fitting.Fitting {
	fit := fitting.NewFitting(name, helpers.RifterType(), "Frigate")
	_ = fit.Place(fitting.SlotHigh, 0, helpers.AutoCannonType())
	fit.AddDrone(helpers.HobgoblinType())
	return fit
}

func TestFittingRepository_SaveAndFindByName(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFittingRepository(db)
	ctx := context.Background()
	fit := newRepoFitting("Brawler")

	// Act
	require.NoError(t, repo.Save(ctx, fit))
	found, err := repo.FindByName(ctx, "Brawler")

	// Assert: the whole aggregate survives the JSON document round trip
	require.NoError(t, err)
	assert.Equal(t, fit.ID, found.ID)
	assert.Equal(t, 587, found.ShipTypeID)
	require.NotNil(t, found.High[0])
	assert.Equal(t, 2881, found.High[0].TypeID)
	assert.Len(t, found.Drones, 1)
}

func TestFittingRepository_FindByNameNotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFittingRepository(db)

	// Act
	_, err := repo.FindByName(context.Background(), "No Such Fit")

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fitting not found")
}

func TestFittingRepository_SaveUpsertsByName(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFittingRepository(db)
	ctx := context.Background()

	first := newRepoFitting("Brawler")
	require.NoError(t, repo.Save(ctx, first))

	// Act: save a different aggregate under the same name
	second := fitting.NewFitting("Brawler", helpers.RifterType(), "Frigate")
	require.NoError(t, repo.Save(ctx, second))

	// Assert: one row, latest document wins
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, second.ID, all[0].ID)
}

func TestFittingRepository_ListIsOrderedByName(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFittingRepository(db)
	ctx := context.Background()
	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		require.NoError(t, repo.Save(ctx, newRepoFitting(name)))
	}

	// Act
	all, err := repo.List(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Alpha", all[0].Name)
	assert.Equal(t, "Bravo", all[1].Name)
	assert.Equal(t, "Charlie", all[2].Name)
}

func TestFittingRepository_Delete(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFittingRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, newRepoFitting("Brawler")))

	// Act
	require.NoError(t, repo.Delete(ctx, "Brawler"))

	// Assert
	_, err := repo.FindByName(ctx, "Brawler")
	assert.Error(t, err)

	err = repo.Delete(ctx, "Brawler")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fitting not found")
}
