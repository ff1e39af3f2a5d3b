package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	appfitting "github.com/acheronlabs/evefit/internal/application/fitting"
	domain "github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/skills"
	"github.com/acheronlabs/evefit/internal/domain/stats"
	"github.com/acheronlabs/evefit/test/helpers"
)

type capacitorContext struct {
	session *appfitting.Session

	snapshot   stats.ShipStats
	skilled    stats.ShipStats
	hasSkilled bool
}

func (cc *capacitorContext) reset() {
	cc.session = nil
	cc.snapshot = stats.ShipStats{}
	cc.skilled = stats.ShipStats{}
	cc.hasSkilled = false
}

// Given steps

func (cc *capacitorContext) aRifterHullWithAnEmptyFitting() error {
	ship := helpers.RifterType()
	cc.session = appfitting.NewSession(ship, domain.NewFitting("Cap Test", ship, "Frigate"))
	return nil
}

func (cc *capacitorContext) aRifterHullWithAnArmorRepairerRunning() error {
	if err := cc.aRifterHullWithAnEmptyFitting(); err != nil {
		return err
	}
	return cc.session.PlaceModule(domain.SlotLow, 0, helpers.ArmorRepairerType())
}

func (cc *capacitorContext) allSupportSkillsTrainedToLevelFive() error {
	cc.session.SetSkills(skills.AllLevelV())
	return nil
}

// When steps

func (cc *capacitorContext) iComputeTheFittingStatistics() error {
	cc.snapshot = cc.session.Stats()
	cc.skilled, _, cc.hasSkilled = cc.session.SkilledStats()
	return nil
}

// Then steps

func (cc *capacitorContext) theCapacitorShouldBeStableAtPercent(percent float64) error {
	c := cc.snapshot.Capacitor
	if !c.Stable {
		return fmt.Errorf("expected a stable capacitor, got unstable (lasts %.1fs)", c.LastsSeconds)
	}
	if math.Abs(c.StablePercent-percent) > 2.0 {
		return fmt.Errorf("expected stability near %.1f%%, got %.1f%%", percent, c.StablePercent)
	}
	return nil
}

func (cc *capacitorContext) theCapacitorShouldBeUnstable() error {
	if cc.snapshot.Capacitor.Stable {
		return fmt.Errorf("expected an unstable capacitor, got stable at %.1f%%", cc.snapshot.Capacitor.StablePercent)
	}
	return nil
}

func (cc *capacitorContext) theCapacitorShouldRunDryInAFiniteTime() error {
	lasts := cc.snapshot.Capacitor.LastsSeconds
	if lasts <= 0 || lasts >= stats.DefaultMaxSimSeconds {
		return fmt.Errorf("expected a finite depletion time, got %.1fs", lasts)
	}
	return nil
}

func (cc *capacitorContext) theSkilledCapacitorShouldBeStable() error {
	if !cc.hasSkilled {
		return fmt.Errorf("no skilled snapshot computed")
	}
	if !cc.skilled.Capacitor.Stable {
		return fmt.Errorf("expected the skilled capacitor to be stable, lasts %.1fs", cc.skilled.Capacitor.LastsSeconds)
	}
	return nil
}

// Register steps

func InitializeCapacitorScenario(ctx *godog.ScenarioContext) {
	capCtx := &capacitorContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		capCtx.reset()
		return ctx, nil
	})

	ctx.Step(`^a Rifter hull with an empty fitting$`, capCtx.aRifterHullWithAnEmptyFitting)
	ctx.Step(`^a Rifter hull with an armor repairer running$`, capCtx.aRifterHullWithAnArmorRepairerRunning)
	ctx.Step(`^all support skills trained to level five$`, capCtx.allSupportSkillsTrainedToLevelFive)
	ctx.Step(`^I compute the fitting statistics$`, capCtx.iComputeTheFittingStatistics)
	ctx.Step(`^the capacitor should be stable at (\d+(?:\.\d+)?) percent$`, capCtx.theCapacitorShouldBeStableAtPercent)
	ctx.Step(`^the capacitor should be unstable$`, capCtx.theCapacitorShouldBeUnstable)
	ctx.Step(`^the capacitor should run dry in a finite time$`, capCtx.theCapacitorShouldRunDryInAFiniteTime)
	ctx.Step(`^the skilled capacitor should be stable$`, capCtx.theSkilledCapacitorShouldBeStable)
}
