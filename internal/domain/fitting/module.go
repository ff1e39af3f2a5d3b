package fitting

import (
	"github.com/google/uuid"

	"github.com/acheronlabs/evefit/internal/domain/shared"
)

// ModuleState is the operational state of a fitted module
type ModuleState string

const (
	StateActive  ModuleState = "active"
	StatePassive ModuleState = "passive"
	StateOffline ModuleState = "offline"
)

// NextState cycles active -> passive -> offline -> active.
func (s ModuleState) NextState() ModuleState {
	switch s {
	case StateActive:
		return StatePassive
	case StatePassive:
		return StateOffline
	default:
		return StateActive
	}
}

// Charge is ammo or a script loaded into a fitted module
type Charge struct {
	TypeID   int    `json:"type_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// FittedModule is one placement of a module type into a fitting. The
// instance id is unique per placement, not per type; attributes and effects
// are flattened copies of the type definition so a fitting stays readable
// without the provider.
//
// Invariant: rig and subsystem modules are always passive (the domain has
// no activation toggle for them).
type FittedModule struct {
	InstanceID string          `json:"instance_id"`
	TypeID     int             `json:"type_id"`
	Name       string          `json:"name"`
	Slot       SlotType        `json:"slot"`
	Index      int             `json:"index"`
	State      ModuleState     `json:"state"`
	Charge     *Charge         `json:"charge,omitempty"`
	Attributes map[int]float64 `json:"attributes"`
	Effects    []int           `json:"effects"`
}

// NewFittedModule creates a placement of the given type into slot/index.
// Rigs and subsystems are forced passive; everything else starts active.
func NewFittedModule(entity *TypeEntity, slot SlotType, index int) *FittedModule {
	state := StateActive
	if slot == SlotRig || slot == SlotSubsystem {
		state = StatePassive
	}

	attrs := make(map[int]float64, len(entity.Attributes))
	for id, v := range entity.Attributes {
		attrs[id] = v
	}
	effects := make([]int, len(entity.Effects))
	copy(effects, entity.Effects)

	return &FittedModule{
		InstanceID: uuid.New().String(),
		TypeID:     entity.ID,
		Name:       entity.Name,
		Slot:       slot,
		Index:      index,
		State:      state,
		Attributes: attrs,
		Effects:    effects,
	}
}

// Attr looks up a numeric attribute by id with a fallback default.
func (m *FittedModule) Attr(attributeID int, fallback float64) float64 {
	if m == nil || m.Attributes == nil {
		return fallback
	}
	if v, ok := m.Attributes[attributeID]; ok {
		return v
	}
	return fallback
}

// HasEffect reports whether the module carries the given dogma effect id.
func (m *FittedModule) HasEffect(effectID int) bool {
	if m == nil {
		return false
	}
	for _, e := range m.Effects {
		if e == effectID {
			return true
		}
	}
	return false
}

// UsesTurretHardpoint reports whether the module occupies a turret hardpoint.
func (m *FittedModule) UsesTurretHardpoint() bool {
	return m.HasEffect(shared.EffectTurretFitted)
}

// UsesLauncherHardpoint reports whether the module occupies a launcher hardpoint.
func (m *FittedModule) UsesLauncherHardpoint() bool {
	return m.HasEffect(shared.EffectLauncherFitted)
}

// IsOffline reports whether the module is offlined (consumes no CPU/PG).
func (m *FittedModule) IsOffline() bool {
	return m.State == StateOffline
}

// IsActive reports whether the module is in the active state.
func (m *FittedModule) IsActive() bool {
	return m.State == StateActive
}

// Clone returns a deep copy with the same instance id. Used by the fitting
// aggregate's clone-then-replace mutation pattern so pre- and post-mutation
// fittings never alias module objects.
func (m *FittedModule) Clone() *FittedModule {
	if m == nil {
		return nil
	}
	attrs := make(map[int]float64, len(m.Attributes))
	for id, v := range m.Attributes {
		attrs[id] = v
	}
	effects := make([]int, len(m.Effects))
	copy(effects, m.Effects)

	var charge *Charge
	if m.Charge != nil {
		c := *m.Charge
		charge = &c
	}

	return &FittedModule{
		InstanceID: m.InstanceID,
		TypeID:     m.TypeID,
		Name:       m.Name,
		Slot:       m.Slot,
		Index:      m.Index,
		State:      m.State,
		Charge:     charge,
		Attributes: attrs,
		Effects:    effects,
	}
}
