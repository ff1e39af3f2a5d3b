package fitting

import (
	"fmt"

	"github.com/acheronlabs/evefit/internal/domain/shared"
)

// SlotType identifies where a module lives on a fitting. High through
// Subsystem are fixed-size racks; Drone and Cargo are unordered lists.
type SlotType int

const (
	SlotHigh SlotType = iota
	SlotMid
	SlotLow
	SlotRig
	SlotSubsystem
	SlotDrone
	SlotCargo
	SlotUnknown
)

var slotNames = map[SlotType]string{
	SlotHigh:      "high",
	SlotMid:       "mid",
	SlotLow:       "low",
	SlotRig:       "rig",
	SlotSubsystem: "subsystem",
	SlotDrone:     "drone",
	SlotCargo:     "cargo",
	SlotUnknown:   "unknown",
}

func (s SlotType) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsRack reports whether the slot type is a fixed-size rack with positional
// indexing (as opposed to the drone and cargo lists).
func (s SlotType) IsRack() bool {
	switch s {
	case SlotHigh, SlotMid, SlotLow, SlotRig, SlotSubsystem:
		return true
	}
	return false
}

// RackSlotTypes lists the fixed-size rack categories in fitting-window order.
var RackSlotTypes = []SlotType{SlotHigh, SlotMid, SlotLow, SlotRig, SlotSubsystem}

// ParseSlotType maps a slot category name back to its SlotType.
func ParseSlotType(name string) (SlotType, error) {
	for s, n := range slotNames {
		if n == name && s != SlotUnknown {
			return s, nil
		}
	}
	return SlotUnknown, shared.NewInvalidFittingDataError(fmt.Sprintf("unknown slot type: %q", name))
}

// ClassifySlot determines a module type's slot category from its dogma
// effects. Returns SlotUnknown when no fitting effect is present; callers
// drop such items rather than guess (classification-unknown policy).
func ClassifySlot(entity *TypeEntity) SlotType {
	switch {
	case entity.HasEffect(shared.EffectHiPower):
		return SlotHigh
	case entity.HasEffect(shared.EffectMedPower):
		return SlotMid
	case entity.HasEffect(shared.EffectLoPower):
		return SlotLow
	case entity.HasEffect(shared.EffectRigSlot):
		return SlotRig
	case entity.HasEffect(shared.EffectSubSystem):
		return SlotSubsystem
	}
	return SlotUnknown
}
