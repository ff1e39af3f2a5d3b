package skills

import (
	"github.com/acheronlabs/evefit/internal/domain/stats"
)

// Deltas is a flat record of (skilled - base) for every stat the support
// skills touch, computed against snapshotted pre-bonus values.
type Deltas struct {
	CPUTotal       float64 `json:"cpu_total"`
	PowerTotal     float64 `json:"power_total"`
	CPUFree        float64 `json:"cpu_free"`
	PowerFree      float64 `json:"power_free"`
	CapCapacity    float64 `json:"cap_capacity"`
	CapRechargeTau float64 `json:"cap_recharge_tau"`
	ShieldHP       float64 `json:"shield_hp"`
	ArmorHP        float64 `json:"armor_hp"`
	HullHP         float64 `json:"hull_hp"`
	TotalEHP       float64 `json:"total_ehp"`
	MaxVelocity    float64 `json:"max_velocity"`
	Inertia        float64 `json:"inertia"`
	AlignTime      float64 `json:"align_time"`
	MaxTargets     int     `json:"max_targets"`
	MaxTargetRange float64 `json:"max_target_range"`
	ScanResolution float64 `json:"scan_resolution"`
}

// Engine applies support-skill bonuses to a stats snapshot.
type Engine struct {
	// MaxSimSeconds bounds the capacitor re-simulation after the
	// capacitor skills change capacity and recharge.
	MaxSimSeconds float64
}

// NewEngine creates an Engine with the default simulation bound.
func NewEngine() *Engine {
	return &Engine{MaxSimSeconds: stats.DefaultMaxSimSeconds}
}

// Apply returns a new snapshot with the trained skill bonuses folded in,
// plus the delta record. The input snapshot is not modified.
//
// Primitive fields are bonused first; derived fields (EHP, align time,
// capacitor stability) are then recomputed from their bonused inputs,
// never bonused directly. Capacitor stability is re-simulated because
// skills shift it nonlinearly; a linear delta on the stable percentage
// would be wrong.
func (e *Engine) Apply(base *stats.ShipStats, trained SkillMap) (*stats.ShipStats, Deltas) {
	s := *base
	mult := func(level int) float64 { return 1 + 0.05*float64(level) }
	reduce := func(level int) float64 { return 1 - 0.05*float64(level) }

	s.Engineering.CPUTotal *= mult(trained.Level(SkillCPUManagement))
	s.Engineering.PowerTotal *= mult(trained.Level(SkillPowerGridManagement))

	s.Capacitor.Capacity *= mult(trained.Level(SkillCapacitorManagement))
	s.Capacitor.RechargeTau *= reduce(trained.Level(SkillCapacitorSystemsOperation))

	s.Shield.HP *= mult(trained.Level(SkillShieldManagement))
	s.Armor.HP *= mult(trained.Level(SkillHullUpgrades))
	s.Hull.HP *= mult(trained.Level(SkillMechanics))

	s.Navigation.MaxVelocity *= mult(trained.Level(SkillNavigation))
	s.Navigation.Inertia *= reduce(trained.Level(SkillEvasiveManeuvering))

	s.Targeting.MaxTargets += trained.Level(SkillTargetManagement)
	s.Targeting.MaxTargetRange *= mult(trained.Level(SkillLongRangeTargeting))
	s.Targeting.ScanResolution *= mult(trained.Level(SkillSignatureAnalysis))

	// Recompute derived capacitor figures with the skilled capacity and
	// recharge against the unchanged drain.
	if s.Capacitor.RechargeTau > 0 {
		s.Capacitor.PeakRecharge = 2.5 * s.Capacitor.Capacity / s.Capacitor.RechargeTau
	}
	sim := stats.SimulateCapacitorFor(
		s.Capacitor.Capacity,
		s.Capacitor.RechargeTau*1000,
		s.Capacitor.Drain,
		e.MaxSimSeconds,
	)
	s.Capacitor.Stable = sim.Stable
	s.Capacitor.StablePercent = sim.StablePercent
	s.Capacitor.LastsSeconds = sim.LastsSeconds

	// Layer EHP from the bonused hp and the unchanged resonance profile.
	recomputeEHP(&s.Shield)
	recomputeEHP(&s.Armor)
	recomputeEHP(&s.Hull)
	s.TotalEHP = s.Shield.EHP + s.Armor.EHP + s.Hull.EHP

	s.Navigation.AlignTime = stats.AlignTime(s.Navigation.Inertia, s.Navigation.Mass)

	deltas := Deltas{
		CPUTotal:       s.Engineering.CPUTotal - base.Engineering.CPUTotal,
		PowerTotal:     s.Engineering.PowerTotal - base.Engineering.PowerTotal,
		CPUFree:        (s.Engineering.CPUTotal - s.Engineering.CPUUsed) - (base.Engineering.CPUTotal - base.Engineering.CPUUsed),
		PowerFree:      (s.Engineering.PowerTotal - s.Engineering.PowerUsed) - (base.Engineering.PowerTotal - base.Engineering.PowerUsed),
		CapCapacity:    s.Capacitor.Capacity - base.Capacitor.Capacity,
		CapRechargeTau: s.Capacitor.RechargeTau - base.Capacitor.RechargeTau,
		ShieldHP:       s.Shield.HP - base.Shield.HP,
		ArmorHP:        s.Armor.HP - base.Armor.HP,
		HullHP:         s.Hull.HP - base.Hull.HP,
		TotalEHP:       s.TotalEHP - base.TotalEHP,
		MaxVelocity:    s.Navigation.MaxVelocity - base.Navigation.MaxVelocity,
		Inertia:        s.Navigation.Inertia - base.Navigation.Inertia,
		AlignTime:      s.Navigation.AlignTime - base.Navigation.AlignTime,
		MaxTargets:     s.Targeting.MaxTargets - base.Targeting.MaxTargets,
		MaxTargetRange: s.Targeting.MaxTargetRange - base.Targeting.MaxTargetRange,
		ScanResolution: s.Targeting.ScanResolution - base.Targeting.ScanResolution,
	}

	return &s, deltas
}

func recomputeEHP(l *stats.LayerStats) {
	if l.AvgResonance >= 1 {
		l.EHP = l.HP
	} else {
		l.EHP = l.HP / l.AvgResonance
	}
}
