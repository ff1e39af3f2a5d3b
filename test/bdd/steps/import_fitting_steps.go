package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/acheronlabs/evefit/internal/adapters/persistence"
	"github.com/acheronlabs/evefit/internal/application/fitting/commands"
	"github.com/acheronlabs/evefit/internal/application/fitting/types"
	"github.com/acheronlabs/evefit/internal/domain/shared"
	"github.com/acheronlabs/evefit/test/helpers"
)

type importFittingContext struct {
	provider *helpers.MockTypeProvider
	db       *gorm.DB
	repo     *persistence.GormFittingRepository
	handler  *commands.ImportEFTHandler

	text     string
	response *types.ImportEFTResponse
	err      error
}

func (ic *importFittingContext) reset() {
	ic.text = ""
	ic.response = nil
	ic.err = nil

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Errorf("failed to open test database: %w", err))
	}
	if err := db.AutoMigrate(&persistence.FittingModel{}); err != nil {
		panic(fmt.Errorf("failed to migrate database: %w", err))
	}

	ic.db = db
	ic.repo = persistence.NewGormFittingRepository(db)
	ic.provider = helpers.NewMockTypeProvider()
	ic.handler = commands.NewImportEFTHandler(ic.provider, ic.repo, nil)
}

// Given steps

func (ic *importFittingContext) theStandardTypeCatalog() error {
	ic.provider.
		Add(helpers.RifterType()).
		Add(helpers.AutoCannonType()).
		Add(helpers.RocketLauncherType()).
		Add(helpers.ArmorRepairerType()).
		Add(helpers.BurstAeratorType()).
		Add(helpers.HobgoblinType()).
		Add(helpers.EMPChargeType()).
		AddGroup(25, "Frigate")
	return nil
}

func (ic *importFittingContext) theEFTText(doc *godog.DocString) error {
	ic.text = doc.Content
	return nil
}

// When steps

func (ic *importFittingContext) iImportTheFittingSavingItAs(name string) error {
	cmd := &types.ImportEFTCommand{Text: ic.text, SaveAs: name}
	response, err := ic.handler.Handle(context.Background(), cmd)
	ic.err = err
	if err != nil {
		return nil
	}
	ic.response = response.(*types.ImportEFTResponse)
	return nil
}

func (ic *importFittingContext) iImportTheFitting() error {
	return ic.iImportTheFittingSavingItAs("")
}

// Then steps

func (ic *importFittingContext) theImportShouldSucceed() error {
	if ic.err != nil {
		return fmt.Errorf("expected success, got error: %w", ic.err)
	}
	if ic.response == nil {
		return fmt.Errorf("no import response captured")
	}
	return nil
}

func (ic *importFittingContext) theShipShouldBe(name string) error {
	if ic.response.Ship.Name != name {
		return fmt.Errorf("expected ship %q, got %q", name, ic.response.Ship.Name)
	}
	return nil
}

func (ic *importFittingContext) theHighRackShouldHoldModules(count int) error {
	fitted := 0
	for _, m := range ic.response.Fitting.High {
		if m != nil {
			fitted++
		}
	}
	if fitted != count {
		return fmt.Errorf("expected %d high modules, got %d", count, fitted)
	}
	return nil
}

func (ic *importFittingContext) theDroneBayShouldHoldDrones(count int) error {
	if len(ic.response.Fitting.Drones) != count {
		return fmt.Errorf("expected %d drones, got %d", count, len(ic.response.Fitting.Drones))
	}
	return nil
}

func (ic *importFittingContext) nothingShouldBeDropped() error {
	if len(ic.response.Dropped) != 0 {
		return fmt.Errorf("expected no dropped items, got %v", ic.response.Dropped)
	}
	return nil
}

func (ic *importFittingContext) shouldBeReportedAsDropped(name string) error {
	for _, dropped := range ic.response.Dropped {
		if dropped == name {
			return nil
		}
	}
	return fmt.Errorf("%q not in dropped list %v", name, ic.response.Dropped)
}

func (ic *importFittingContext) theImportShouldFailWithAFormatError() error {
	var formatErr *shared.FormatError
	if !errors.As(ic.err, &formatErr) {
		return fmt.Errorf("expected a format error, got %v", ic.err)
	}
	return nil
}

func (ic *importFittingContext) theFittingShouldBePersisted(name string) error {
	found, err := ic.repo.FindByName(context.Background(), name)
	if err != nil {
		return fmt.Errorf("fitting %q not persisted: %w", name, err)
	}
	if found.Name != name {
		return fmt.Errorf("persisted fitting has name %q, wanted %q", found.Name, name)
	}
	return nil
}

// Register steps

func InitializeImportFittingScenario(ctx *godog.ScenarioContext) {
	importCtx := &importFittingContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		importCtx.reset()
		return ctx, nil
	})

	ctx.Step(`^the standard type catalog$`, importCtx.theStandardTypeCatalog)
	ctx.Step(`^the EFT text:$`, importCtx.theEFTText)
	ctx.Step(`^I import the fitting$`, importCtx.iImportTheFitting)
	ctx.Step(`^I try to import the fitting$`, importCtx.iImportTheFitting)
	ctx.Step(`^I import the fitting saving it as "([^"]*)"$`, importCtx.iImportTheFittingSavingItAs)
	ctx.Step(`^the import should succeed$`, importCtx.theImportShouldSucceed)
	ctx.Step(`^the ship should be "([^"]*)"$`, importCtx.theShipShouldBe)
	ctx.Step(`^the high rack should hold (\d+) modules$`, importCtx.theHighRackShouldHoldModules)
	ctx.Step(`^the drone bay should hold (\d+) drones$`, importCtx.theDroneBayShouldHoldDrones)
	ctx.Step(`^nothing should be dropped$`, importCtx.nothingShouldBeDropped)
	ctx.Step(`^"([^"]*)" should be reported as dropped$`, importCtx.shouldBeReportedAsDropped)
	ctx.Step(`^the import should fail with a format error$`, importCtx.theImportShouldFailWithAFormatError)
	ctx.Step(`^the fitting "([^"]*)" should be persisted$`, importCtx.theFittingShouldBePersisted)
}
