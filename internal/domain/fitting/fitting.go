package fitting

import (
	"github.com/google/uuid"

	"github.com/acheronlabs/evefit/internal/domain/shared"
)

const (
	// MaxRackSlots caps the high/mid/low racks regardless of what the ship
	// attributes claim; slot-count parsing is a one-time lossy heuristic.
	MaxRackSlots = 8

	// RigSlotCount is fixed for every ship in the simulator.
	RigSlotCount = 3
)

// Fitting is the aggregate root: a ship plus modules placed in typed slots
// plus drones and cargo.
//
// Invariants:
// - Rack lengths are fixed at creation (ship selection) and never resized
//   by module placement; only ship re-selection replaces the aggregate.
// - A rack entry's Index always equals its position in the slice.
// - Drone and cargo entries re-index sequentially on removal.
type Fitting struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	ShipTypeID int    `json:"ship_type_id"`
	ShipName   string `json:"ship_name"`
	ShipGroup  string `json:"ship_group,omitempty"`

	High      []*FittedModule `json:"high"`
	Mid       []*FittedModule `json:"mid"`
	Low       []*FittedModule `json:"low"`
	Rig       []*FittedModule `json:"rig"`
	Subsystem []*FittedModule `json:"subsystem"`

	Drones []*FittedModule `json:"drones"`
	Cargo  []*FittedModule `json:"cargo"`
}

// NewFitting creates an empty fitting for the given ship. Rack sizes come
// from the ship's slot attributes, clamped to MaxRackSlots for high/mid/low;
// the rig rack is fixed at RigSlotCount.
func NewFitting(name string, ship *TypeEntity, shipGroup string) *Fitting {
	clamp := func(v float64) int {
		n := int(v)
		if n < 0 {
			n = 0
		}
		if n > MaxRackSlots {
			n = MaxRackSlots
		}
		return n
	}

	return &Fitting{
		ID:         uuid.New().String(),
		Name:       name,
		ShipTypeID: ship.ID,
		ShipName:   ship.Name,
		ShipGroup:  shipGroup,
		High:       make([]*FittedModule, clamp(ship.Attr(shared.AttrHighSlots, 0))),
		Mid:        make([]*FittedModule, clamp(ship.Attr(shared.AttrMediumSlots, 0))),
		Low:        make([]*FittedModule, clamp(ship.Attr(shared.AttrLowSlots, 0))),
		Rig:        make([]*FittedModule, RigSlotCount),
		Subsystem:  make([]*FittedModule, int(ship.Attr(shared.AttrMaxSubSystems, 0))),
	}
}

// Rack returns the slice backing a rack slot type, or nil for non-racks.
func (f *Fitting) Rack(slot SlotType) []*FittedModule {
	switch slot {
	case SlotHigh:
		return f.High
	case SlotMid:
		return f.Mid
	case SlotLow:
		return f.Low
	case SlotRig:
		return f.Rig
	case SlotSubsystem:
		return f.Subsystem
	}
	return nil
}

func (f *Fitting) setRackEntry(slot SlotType, index int, m *FittedModule) error {
	rack := f.Rack(slot)
	if rack == nil {
		return shared.NewInvalidFittingDataError("not a rack slot type: " + slot.String())
	}
	if index < 0 || index >= len(rack) {
		return shared.NewSlotOutOfRangeError(slot.String(), index, len(rack))
	}
	rack[index] = m
	return nil
}

// Place puts a fresh instance of the given module type into slot/index,
// overwriting any existing module there (implicit remove-then-place).
func (f *Fitting) Place(slot SlotType, index int, entity *TypeEntity) error {
	return f.setRackEntry(slot, index, NewFittedModule(entity, slot, index))
}

// Remove clears the rack entry at slot/index.
func (f *Fitting) Remove(slot SlotType, index int) error {
	return f.setRackEntry(slot, index, nil)
}

// ToggleState cycles the module state at slot/index. No-op on an empty
// slot. Rigs and subsystems have fixed state; callers must not toggle them.
func (f *Fitting) ToggleState(slot SlotType, index int) error {
	rack := f.Rack(slot)
	if rack == nil {
		return shared.NewInvalidFittingDataError("not a rack slot type: " + slot.String())
	}
	if index < 0 || index >= len(rack) {
		return shared.NewSlotOutOfRangeError(slot.String(), index, len(rack))
	}
	if rack[index] == nil {
		return nil
	}
	rack[index].State = rack[index].State.NextState()
	return nil
}

// SetCharge replaces (or, with nil, clears) the charge loaded into the
// module at slot/index. No-op on an empty slot.
func (f *Fitting) SetCharge(slot SlotType, index int, charge *Charge) error {
	rack := f.Rack(slot)
	if rack == nil {
		return shared.NewInvalidFittingDataError("not a rack slot type: " + slot.String())
	}
	if index < 0 || index >= len(rack) {
		return shared.NewSlotOutOfRangeError(slot.String(), index, len(rack))
	}
	if rack[index] == nil {
		return nil
	}
	rack[index].Charge = charge
	return nil
}

// FillSlots fills every empty slot of the rack with a fresh instance of the
// module, respecting the ship's hardpoint limits: a turret- or
// launcher-flagged module stops filling once the whole rack holds as many
// flagged modules as the corresponding hardpoint count. Returns the number
// of slots actually filled.
func (f *Fitting) FillSlots(slot SlotType, entity *TypeEntity, turretHardpoints, launcherHardpoints int) int {
	rack := f.Rack(slot)
	if rack == nil {
		return 0
	}

	usesTurret := entity.HasEffect(shared.EffectTurretFitted)
	usesLauncher := entity.HasEffect(shared.EffectLauncherFitted)

	limit := len(rack)
	if usesTurret || usesLauncher {
		present := 0
		for _, m := range rack {
			if m == nil {
				continue
			}
			if (usesTurret && m.UsesTurretHardpoint()) || (usesLauncher && m.UsesLauncherHardpoint()) {
				present++
			}
		}
		hardpoints := turretHardpoints
		if usesLauncher {
			hardpoints = launcherHardpoints
		}
		limit = hardpoints - present
		if limit < 0 {
			limit = 0
		}
	}

	filled := 0
	for i := range rack {
		if filled >= limit {
			break
		}
		if rack[i] != nil {
			continue
		}
		rack[i] = NewFittedModule(entity, slot, i)
		filled++
	}
	return filled
}

// AddDrone appends a drone to the drone list.
func (f *Fitting) AddDrone(entity *TypeEntity) {
	f.Drones = append(f.Drones, NewFittedModule(entity, SlotDrone, len(f.Drones)))
}

// RemoveDrone removes the drone at index and re-indexes the remainder so
// Index always equals list position.
func (f *Fitting) RemoveDrone(index int) error {
	if index < 0 || index >= len(f.Drones) {
		return shared.NewSlotOutOfRangeError(SlotDrone.String(), index, len(f.Drones))
	}
	f.Drones = append(f.Drones[:index], f.Drones[index+1:]...)
	for i, d := range f.Drones {
		d.Index = i
	}
	return nil
}

// AddCargo appends an item to the cargo list.
func (f *Fitting) AddCargo(entity *TypeEntity) {
	f.Cargo = append(f.Cargo, NewFittedModule(entity, SlotCargo, len(f.Cargo)))
}

// Modules iterates every fitted rack module (skipping empty slots), in
// high/mid/low/rig/subsystem order. Drones and cargo are not included.
func (f *Fitting) Modules() []*FittedModule {
	var out []*FittedModule
	for _, slot := range RackSlotTypes {
		for _, m := range f.Rack(slot) {
			if m != nil {
				out = append(out, m)
			}
		}
	}
	return out
}

// ModuleTypeIDs returns the distinct type ids referenced anywhere in the
// fitting: rack modules and drones. Used by skill-plan resolution.
func (f *Fitting) ModuleTypeIDs() []int {
	seen := make(map[int]bool)
	var out []int
	add := func(id int) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, m := range f.Modules() {
		add(m.TypeID)
	}
	for _, d := range f.Drones {
		add(d.TypeID)
	}
	return out
}

// Clone returns a deep copy of the fitting. No module object is shared
// between the original and the clone, which makes clone-then-replace
// mutation safe to snapshot for undo or persistence.
func (f *Fitting) Clone() *Fitting {
	cloneRack := func(rack []*FittedModule) []*FittedModule {
		out := make([]*FittedModule, len(rack))
		for i, m := range rack {
			out[i] = m.Clone()
		}
		return out
	}
	cloneList := func(list []*FittedModule) []*FittedModule {
		out := make([]*FittedModule, 0, len(list))
		for _, m := range list {
			out = append(out, m.Clone())
		}
		return out
	}

	tags := make([]string, len(f.Tags))
	copy(tags, f.Tags)

	return &Fitting{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Tags:        tags,
		ShipTypeID:  f.ShipTypeID,
		ShipName:    f.ShipName,
		ShipGroup:   f.ShipGroup,
		High:        cloneRack(f.High),
		Mid:         cloneRack(f.Mid),
		Low:         cloneRack(f.Low),
		Rig:         cloneRack(f.Rig),
		Subsystem:   cloneRack(f.Subsystem),
		Drones:      cloneList(f.Drones),
		Cargo:       cloneList(f.Cargo),
	}
}
