package fitting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfitting "github.com/acheronlabs/evefit/internal/application/fitting"
	"github.com/acheronlabs/evefit/internal/domain/eft"
	"github.com/acheronlabs/evefit/internal/domain/shared"
	"github.com/acheronlabs/evefit/test/helpers"
)

func newImportProvider() *helpers.MockTypeProvider {
	return helpers.NewMockTypeProvider().
		Add(helpers.RifterType()).
		Add(helpers.AutoCannonType()).
		Add(helpers.RocketLauncherType()).
		Add(helpers.ArmorRepairerType()).
		Add(helpers.BurstAeratorType()).
		Add(helpers.HobgoblinType()).
		Add(helpers.EMPChargeType()).
		AddGroup(25, "Frigate")
}

func rifterParsed() *eft.ParsedFitting {
	return &eft.ParsedFitting{
		ShipName: "Rifter",
		FitName:  "Brawler",
		Low:      []eft.Line{{Name: "Small Armor Repairer II"}},
		High: []eft.Line{
			{Name: "200mm AutoCannon II", Charge: "EMP S"},
			{Name: "Rocket Launcher II"},
		},
		Rig:    []eft.Line{{Name: "Small Projectile Burst Aerator I"}},
		Drones: []eft.Line{{Name: "Hobgoblin II", Quantity: 3}},
		Cargo:  []eft.Line{{Name: "EMP S", Quantity: 1000}},
	}
}

func TestImport_BuildsFittingFromParsedDocument(t *testing.T) {
	// Arrange
	provider := newImportProvider()
	importer := appfitting.NewImporter(provider)

	// Act
	result, err := importer.Import(context.Background(), rifterParsed())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Dropped)
	assert.Equal(t, "Rifter", result.Ship.Name)
	assert.Equal(t, "Brawler", result.Fitting.Name)
	assert.Equal(t, "Frigate", result.Fitting.ShipGroup)

	fit := result.Fitting
	require.NotNil(t, fit.Low[0])
	assert.Equal(t, "Small Armor Repairer II", fit.Low[0].Name)
	require.NotNil(t, fit.High[0])
	assert.Equal(t, "200mm AutoCannon II", fit.High[0].Name)
	require.NotNil(t, fit.Rig[0])
	assert.Len(t, fit.Drones, 3)
	require.Len(t, fit.Cargo, 1000)
	assert.Equal(t, "EMP S", fit.Cargo[0].Name)
}

func TestImport_ResolvesLoadedCharges(t *testing.T) {
	// Arrange
	provider := newImportProvider()
	importer := appfitting.NewImporter(provider)

	// Act
	result, err := importer.Import(context.Background(), rifterParsed())

	// Assert
	require.NoError(t, err)
	charge := result.Fitting.High[0].Charge
	require.NotNil(t, charge)
	assert.Equal(t, 185, charge.TypeID)
	assert.Equal(t, "EMP S", charge.Name)
}

func TestImport_MissingShipIsFatal(t *testing.T) {
	// Arrange: provider knows the modules but not the hull
	provider := helpers.NewMockTypeProvider().Add(helpers.AutoCannonType())
	importer := appfitting.NewImporter(provider)

	// Act
	_, err := importer.Import(context.Background(), rifterParsed())

	// Assert
	var notFound *shared.TypeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Rifter", notFound.Name)
}

func TestImport_UnresolvableModuleIsDroppedNotFatal(t *testing.T) {
	// Arrange
	provider := newImportProvider()
	importer := appfitting.NewImporter(provider)
	parsed := rifterParsed()
	parsed.Mid = []eft.Line{{Name: "Unknown Prototype Module"}}

	// Act
	result, err := importer.Import(context.Background(), parsed)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Unknown Prototype Module"}, result.Dropped)
	assert.Nil(t, result.Fitting.Mid[0])
}

func TestImport_UnresolvableChargeDropsChargeKeepsModule(t *testing.T) {
	// Arrange
	provider := newImportProvider()
	importer := appfitting.NewImporter(provider)
	parsed := rifterParsed()
	parsed.High[0].Charge = "Mystery Ammo"

	// Act
	result, err := importer.Import(context.Background(), parsed)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, result.Dropped, "Mystery Ammo")
	require.NotNil(t, result.Fitting.High[0])
	assert.Nil(t, result.Fitting.High[0].Charge)
}

func TestImport_ClassificationOverridesSectionPosition(t *testing.T) {
	// Arrange: a turret listed under the low section still lands in a high
	// slot because its effects say so
	provider := newImportProvider()
	importer := appfitting.NewImporter(provider)
	parsed := &eft.ParsedFitting{
		ShipName: "Rifter",
		FitName:  "Misfiled",
		Low:      []eft.Line{{Name: "200mm AutoCannon II"}},
	}

	// Act
	result, err := importer.Import(context.Background(), parsed)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Dropped)
	assert.Nil(t, result.Fitting.Low[0])
	require.NotNil(t, result.Fitting.High[0])
	assert.Equal(t, 2881, result.Fitting.High[0].TypeID)
}

func TestImport_OverflowingRackDropsTheExcess(t *testing.T) {
	// Arrange: five turrets against a four-slot high rack
	provider := newImportProvider()
	importer := appfitting.NewImporter(provider)
	parsed := &eft.ParsedFitting{
		ShipName: "Rifter",
		FitName:  "Overfull",
		High: []eft.Line{
			{Name: "200mm AutoCannon II"},
			{Name: "200mm AutoCannon II"},
			{Name: "200mm AutoCannon II"},
			{Name: "200mm AutoCannon II"},
			{Name: "200mm AutoCannon II"},
		},
	}

	// Act
	result, err := importer.Import(context.Background(), parsed)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"200mm AutoCannon II"}, result.Dropped)
	for _, m := range result.Fitting.High {
		assert.NotNil(t, m)
	}
}

func TestImport_TransportFailureOnModuleIsDropped(t *testing.T) {
	// Arrange
	provider := newImportProvider()
	provider.FailTypes[1183] = true
	importer := appfitting.NewImporter(provider)

	// Act
	result, err := importer.Import(context.Background(), rifterParsed())

	// Assert
	require.NoError(t, err)
	assert.Contains(t, result.Dropped, "Small Armor Repairer II")
	assert.Nil(t, result.Fitting.Low[0])
}

func TestImport_DroneQuantityDefaultsToOne(t *testing.T) {
	// Arrange
	provider := newImportProvider()
	importer := appfitting.NewImporter(provider)
	parsed := &eft.ParsedFitting{
		ShipName: "Rifter",
		FitName:  "Single",
		Drones:   []eft.Line{{Name: "Hobgoblin II"}},
	}

	// Act
	result, err := importer.Import(context.Background(), parsed)

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Fitting.Drones, 1)
}

func TestImport_ExpandsCargoQuantity(t *testing.T) {
	// Arrange
	provider := newImportProvider()
	importer := appfitting.NewImporter(provider)
	parsed := &eft.ParsedFitting{
		ShipName: "Rifter",
		FitName:  "Stocked",
		Cargo: []eft.Line{
			{Name: "EMP S", Quantity: 1000},
			{Name: "Hobgoblin II"},
		},
	}

	// Act
	result, err := importer.Import(context.Background(), parsed)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Fitting.Cargo, 1001)
	assert.Equal(t, "EMP S", result.Fitting.Cargo[0].Name)
	assert.Equal(t, "Hobgoblin II", result.Fitting.Cargo[1000].Name)
}

func TestExport_RoundTripsThroughEFT(t *testing.T) {
	// Arrange
	provider := newImportProvider()
	importer := appfitting.NewImporter(provider)
	result, err := importer.Import(context.Background(), rifterParsed())
	require.NoError(t, err)

	// Act
	text := appfitting.ToEFT(result.Fitting)
	reparsed, err := eft.Parse(text)
	require.NoError(t, err)
	reimported, err := importer.Import(context.Background(), reparsed)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, reimported.Dropped)
	assert.ElementsMatch(t,
		result.Fitting.ModuleTypeIDs(),
		reimported.Fitting.ModuleTypeIDs())
	assert.Len(t, reimported.Fitting.Drones, 3)
	assert.Len(t, reimported.Fitting.Cargo, 1000)
	require.NotNil(t, reimported.Fitting.High[0].Charge)
	assert.Equal(t, "EMP S", reimported.Fitting.High[0].Charge.Name)
}
