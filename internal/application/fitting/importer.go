package fitting

import (
	"context"
	"fmt"

	"github.com/acheronlabs/evefit/internal/domain/eft"
	domain "github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/ports"
	"github.com/acheronlabs/evefit/internal/domain/shared"
)

// Importer turns a parsed EFT document into a Fitting by resolving every
// name through the type provider. Unresolvable or unclassifiable items are
// skipped and reported, never fatal; only a missing ship aborts the import.
type Importer struct {
	provider ports.TypeProvider
}

// NewImporter creates an Importer over the given provider.
func NewImporter(provider ports.TypeProvider) *Importer {
	return &Importer{provider: provider}
}

// ImportResult is the outcome of an EFT import.
type ImportResult struct {
	Ship    *domain.TypeEntity
	Fitting *domain.Fitting
	// Dropped lists names that were skipped: unresolvable, unclassifiable,
	// or placed in a rack with no free slot left.
	Dropped []string
}

// Import builds a fitting from a parsed EFT document.
func (im *Importer) Import(ctx context.Context, parsed *eft.ParsedFitting) (*ImportResult, error) {
	ids, err := im.provider.ResolveNames(ctx, parsed.UniqueNames())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve names: %w", err)
	}

	shipID, ok := ids[parsed.ShipName]
	if !ok {
		return nil, shared.NewTypeNameNotFoundError(parsed.ShipName)
	}
	ship, err := im.provider.GetType(ctx, shipID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ship type: %w", err)
	}

	shipGroup, _ := im.provider.GroupName(ctx, ship.GroupID)
	fit := domain.NewFitting(parsed.FitName, ship, shipGroup)

	result := &ImportResult{Ship: ship, Fitting: fit}

	// Rack sections are positional in the text, but each module is placed
	// by its own slot classification: a module whose effects disagree with
	// its section lands in the right rack anyway, and one that cannot be
	// classified is dropped rather than guessed into a wrong slot.
	for _, section := range [][]eft.Line{parsed.Low, parsed.Mid, parsed.High, parsed.Rig, parsed.Subsystem} {
		for _, line := range section {
			im.placeRackModule(ctx, fit, line, ids, result)
		}
	}

	for _, line := range parsed.Drones {
		entity := im.lookup(ctx, line.Name, ids, result)
		if entity == nil {
			continue
		}
		count := line.Quantity
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			fit.AddDrone(entity)
		}
	}

	for _, line := range parsed.Cargo {
		entity := im.lookup(ctx, line.Name, ids, result)
		if entity == nil {
			continue
		}
		count := line.Quantity
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			fit.AddCargo(entity)
		}
	}

	return result, nil
}

func (im *Importer) lookup(ctx context.Context, name string, ids map[string]int, result *ImportResult) *domain.TypeEntity {
	id, ok := ids[name]
	if !ok {
		result.Dropped = append(result.Dropped, name)
		return nil
	}
	entity, err := im.provider.GetType(ctx, id)
	if err != nil {
		result.Dropped = append(result.Dropped, name)
		return nil
	}
	return entity
}

func (im *Importer) placeRackModule(ctx context.Context, fit *domain.Fitting, line eft.Line, ids map[string]int, result *ImportResult) {
	entity := im.lookup(ctx, line.Name, ids, result)
	if entity == nil {
		return
	}

	slot := domain.ClassifySlot(entity)
	if slot == domain.SlotUnknown {
		result.Dropped = append(result.Dropped, line.Name)
		return
	}

	rack := fit.Rack(slot)
	index := -1
	for i, m := range rack {
		if m == nil {
			index = i
			break
		}
	}
	if index < 0 {
		result.Dropped = append(result.Dropped, line.Name)
		return
	}

	if err := fit.Place(slot, index, entity); err != nil {
		result.Dropped = append(result.Dropped, line.Name)
		return
	}

	if line.Charge != "" {
		charge := im.resolveCharge(ctx, line, ids, result)
		if charge != nil {
			_ = fit.SetCharge(slot, index, charge)
		}
	}
}

// resolveCharge resolves a charge name; a miss drops the charge but keeps
// the module.
func (im *Importer) resolveCharge(ctx context.Context, line eft.Line, ids map[string]int, result *ImportResult) *domain.Charge {
	id, ok := ids[line.Charge]
	if !ok {
		result.Dropped = append(result.Dropped, line.Charge)
		return nil
	}
	quantity := line.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return &domain.Charge{TypeID: id, Name: line.Charge, Quantity: quantity}
}
