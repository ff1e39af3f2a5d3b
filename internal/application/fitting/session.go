// Package fitting holds the application-level mutation surface over the
// fitting aggregate: a single-writer session that clones, mutates and
// recomputes stats on every operation.
package fitting

import (
	"sync"

	domain "github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/skills"
	"github.com/acheronlabs/evefit/internal/domain/stats"
)

// Session owns the current fitting and its derived stats. Mutations are
// read-modify-write (clone, apply, recompute, swap), so the session
// serializes them behind one lock; concurrent unserialized mutations would
// lose updates.
//
// There is never an observable partial state: a mutation returns only after
// the stats snapshot reflects it.
type Session struct {
	mu sync.Mutex

	ship *domain.TypeEntity
	fit  *domain.Fitting

	base    *stats.ShipStats
	skilled *stats.ShipStats
	deltas  skills.Deltas
	trained skills.SkillMap

	calc   *stats.Calculator
	engine *skills.Engine
}

// NewSession creates a session for ship+fitting and computes initial stats.
func NewSession(ship *domain.TypeEntity, fit *domain.Fitting) *Session {
	s := &Session{
		ship:   ship,
		fit:    fit,
		calc:   stats.NewCalculator(),
		engine: skills.NewEngine(),
	}
	s.recompute()
	return s
}

// recompute derives a fresh snapshot; callers hold the lock (or own the
// session exclusively during construction).
func (s *Session) recompute() {
	s.base = s.calc.Calculate(s.ship, s.fit)
	if s.trained != nil {
		s.skilled, s.deltas = s.engine.Apply(s.base, s.trained)
	} else {
		s.skilled = nil
		s.deltas = skills.Deltas{}
	}
}

// mutate clones the current fitting, applies fn, and on success swaps the
// clone in and recomputes stats. On error the session is untouched. When fn
// reports no effective change (changed=false) the swap and recompute are
// skipped.
func (s *Session) mutate(fn func(f *domain.Fitting) (changed bool, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.fit.Clone()
	changed, err := fn(next)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	s.fit = next
	s.recompute()
	return nil
}

// PlaceModule places a fresh instance of the module type at slot/index,
// overwriting any occupant.
func (s *Session) PlaceModule(slot domain.SlotType, index int, entity *domain.TypeEntity) error {
	return s.mutate(func(f *domain.Fitting) (bool, error) {
		if err := f.Place(slot, index, entity); err != nil {
			return false, err
		}
		return true, nil
	})
}

// FillSlots fills every empty slot of the rack with the module, honoring
// the ship's turret/launcher hardpoint limits from the current snapshot.
// No-op (no recompute) when nothing was filled.
func (s *Session) FillSlots(slot domain.SlotType, entity *domain.TypeEntity) (int, error) {
	filled := 0
	err := s.mutate(func(f *domain.Fitting) (bool, error) {
		filled = f.FillSlots(slot, entity,
			s.base.Offense.TurretHardpoints, s.base.Offense.LauncherHardpoints)
		return filled > 0, nil
	})
	return filled, err
}

// RemoveModule clears the slot at slot/index.
func (s *Session) RemoveModule(slot domain.SlotType, index int) error {
	return s.mutate(func(f *domain.Fitting) (bool, error) {
		if err := f.Remove(slot, index); err != nil {
			return false, err
		}
		return true, nil
	})
}

// ToggleState cycles active/passive/offline for the module at slot/index.
// Rig and subsystem slots are excluded by the caller contract.
func (s *Session) ToggleState(slot domain.SlotType, index int) error {
	return s.mutate(func(f *domain.Fitting) (bool, error) {
		if err := f.ToggleState(slot, index); err != nil {
			return false, err
		}
		return true, nil
	})
}

// SetCharge replaces or clears the charge on the module at slot/index.
func (s *Session) SetCharge(slot domain.SlotType, index int, charge *domain.Charge) error {
	return s.mutate(func(f *domain.Fitting) (bool, error) {
		if err := f.SetCharge(slot, index, charge); err != nil {
			return false, err
		}
		return true, nil
	})
}

// AddDrone appends a drone to the fitting's drone list.
func (s *Session) AddDrone(entity *domain.TypeEntity) error {
	return s.mutate(func(f *domain.Fitting) (bool, error) {
		f.AddDrone(entity)
		return true, nil
	})
}

// RemoveDrone removes the drone at index, re-indexing the rest.
func (s *Session) RemoveDrone(index int) error {
	return s.mutate(func(f *domain.Fitting) (bool, error) {
		if err := f.RemoveDrone(index); err != nil {
			return false, err
		}
		return true, nil
	})
}

// ImportFitting replaces the whole aggregate: new ship context, new
// fitting, stats recomputed from scratch.
func (s *Session) ImportFitting(ship *domain.TypeEntity, fit *domain.Fitting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ship = ship
	s.fit = fit
	s.recompute()
}

// SetSkills switches the trained-skill overlay (nil disables it) and
// recomputes the skilled snapshot.
func (s *Session) SetSkills(trained skills.SkillMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trained = trained
	s.recompute()
}

// Fitting returns a deep copy of the current fitting, safe to persist or
// serialize without aliasing session state.
func (s *Session) Fitting() *domain.Fitting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fit.Clone()
}

// Ship returns the current ship type.
func (s *Session) Ship() *domain.TypeEntity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ship
}

// Stats returns the current base snapshot by value.
func (s *Session) Stats() stats.ShipStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.base
}

// SkilledStats returns the skill-overlaid snapshot and deltas; ok is false
// when no skill map is active.
func (s *Session) SkilledStats() (stats.ShipStats, skills.Deltas, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.skilled == nil {
		return stats.ShipStats{}, skills.Deltas{}, false
	}
	return *s.skilled, s.deltas, true
}
