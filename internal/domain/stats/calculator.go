package stats

import (
	"math"

	"github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/shared"
)

// Calculator derives a full ShipStats snapshot from a ship type and a
// fitting. It is a pure, total function: missing attributes degrade to
// documented fallbacks and nothing here can fail.
type Calculator struct {
	// MaxSimSeconds bounds the capacitor stability simulation.
	MaxSimSeconds float64
}

// NewCalculator creates a Calculator with the default simulation bound.
func NewCalculator() *Calculator {
	return &Calculator{MaxSimSeconds: DefaultMaxSimSeconds}
}

// Fallbacks for targeting attributes absent from a ship's dogma record.
const (
	fallbackMaxTargets     = 7
	fallbackTargetRange    = 50000
	fallbackScanResolution = 300
	fallbackMass           = 1_000_000
)

// Calculate computes the complete stats snapshot for ship+fitting.
func (c *Calculator) Calculate(ship *fitting.TypeEntity, fit *fitting.Fitting) *ShipStats {
	s := &ShipStats{}

	c.calcEngineering(ship, fit, s)
	c.calcDefense(ship, s)
	c.calcCapacitor(ship, fit, s)
	c.calcOffense(ship, fit, s)
	c.calcNavigation(ship, s)
	c.calcTargeting(ship, s)

	// Rack sizes come from the fitting's actual arrays: the fitting is
	// authoritative once created, ship attributes only seed it.
	s.Slots = SlotStats{
		High:      len(fit.High),
		Mid:       len(fit.Mid),
		Low:       len(fit.Low),
		Rig:       len(fit.Rig),
		Subsystem: len(fit.Subsystem),
	}

	return s
}

// cycleTimeMs reads a module's cycle time, preferring the weapon
// rate-of-fire attribute and falling back to the generic duration.
func cycleTimeMs(m *fitting.FittedModule) float64 {
	if v := m.Attr(shared.AttrRateOfFire, 0); v > 0 {
		return v
	}
	return m.Attr(shared.AttrDuration, 0)
}

func (c *Calculator) calcEngineering(ship *fitting.TypeEntity, fit *fitting.Fitting, s *ShipStats) {
	eng := EngineeringStats{
		CPUTotal:       ship.Attr(shared.AttrCPUOutput, 0),
		PowerTotal:     ship.Attr(shared.AttrPowerOutput, 0),
		Calibration:    ship.Attr(shared.AttrCalibration, 0),
		DroneCapacity:  ship.Attr(shared.AttrDroneCapacity, 0),
		DroneBandwidth: ship.Attr(shared.AttrDroneBandwidth, 0),
	}

	for _, m := range fit.Modules() {
		// Offlining a module frees its CPU and powergrid.
		if !m.IsOffline() {
			eng.CPUUsed += m.Attr(shared.AttrCPUUsage, 0)
			eng.PowerUsed += m.Attr(shared.AttrPowerUsage, 0)
		}
		if m.Slot == fitting.SlotRig {
			eng.CalibrationUsed += m.Attr(shared.AttrRigCalibrationCost, 0)
		}
	}

	for _, d := range fit.Drones {
		eng.DroneBayUsed += d.Attr(shared.AttrVolume, 0)
		eng.DroneBandwidthUsed += d.Attr(shared.AttrDroneBandwidthUsed, 0)
	}

	s.Engineering = eng
}

func layerFromAttrs(ship *fitting.TypeEntity, hpAttr, em, th, kin, exp int) LayerStats {
	l := LayerStats{
		HP: ship.Attr(hpAttr, 0),
		// 1.0 (no resist) is the safe default for an absent resonance.
		EMResonance:        ship.Attr(em, 1),
		ThermalResonance:   ship.Attr(th, 1),
		KineticResonance:   ship.Attr(kin, 1),
		ExplosiveResonance: ship.Attr(exp, 1),
	}
	l.AvgResonance = (l.EMResonance + l.ThermalResonance + l.KineticResonance + l.ExplosiveResonance) / 4
	if l.AvgResonance >= 1 {
		l.EHP = l.HP
	} else {
		l.EHP = l.HP / l.AvgResonance
	}
	return l
}

func (c *Calculator) calcDefense(ship *fitting.TypeEntity, s *ShipStats) {
	s.Shield = layerFromAttrs(ship, shared.AttrShieldCapacity,
		shared.AttrShieldEMResonance, shared.AttrShieldThermalResonance,
		shared.AttrShieldKineticResonance, shared.AttrShieldExplosiveResonance)
	s.Armor = layerFromAttrs(ship, shared.AttrArmorHitpoints,
		shared.AttrArmorEMResonance, shared.AttrArmorThermalResonance,
		shared.AttrArmorKineticResonance, shared.AttrArmorExplosiveResonance)
	s.Hull = layerFromAttrs(ship, shared.AttrHullHitpoints,
		shared.AttrHullEMResonance, shared.AttrHullThermalResonance,
		shared.AttrHullKineticResonance, shared.AttrHullExplosiveResonance)
	s.TotalEHP = s.Shield.EHP + s.Armor.EHP + s.Hull.EHP
}

func (c *Calculator) calcCapacitor(ship *fitting.TypeEntity, fit *fitting.Fitting, s *ShipStats) {
	capacity := ship.Attr(shared.AttrCapacitorCapacity, 0)
	rechargeMs := ship.Attr(shared.AttrCapacitorRecharge, 0)
	tau := rechargeMs / 1000

	capStats := CapacitorStats{
		Capacity:    capacity,
		RechargeTau: tau,
	}
	if tau > 0 {
		capStats.PeakRecharge = 2.5 * capacity / tau
	}

	for _, m := range fit.Modules() {
		if !m.IsActive() {
			continue
		}
		cost := m.Attr(shared.AttrCapacitorNeed, 0)
		cycle := cycleTimeMs(m)
		if cost > 0 && cycle > 0 {
			capStats.Drain += cost / (cycle / 1000)
		}
	}

	result := SimulateCapacitorFor(capacity, rechargeMs, capStats.Drain, c.MaxSimSeconds)
	capStats.Stable = result.Stable
	capStats.StablePercent = result.StablePercent
	capStats.LastsSeconds = result.LastsSeconds

	s.Capacitor = capStats
}

// volley sums the four damage-type attributes times the given multiplier.
func volley(m *fitting.FittedModule, multiplier float64) float64 {
	damage := m.Attr(shared.AttrEMDamage, 0) +
		m.Attr(shared.AttrThermalDamage, 0) +
		m.Attr(shared.AttrKineticDamage, 0) +
		m.Attr(shared.AttrExplosiveDamage, 0)
	return damage * multiplier
}

func (c *Calculator) calcOffense(ship *fitting.TypeEntity, fit *fitting.Fitting, s *ShipStats) {
	off := OffenseStats{
		TurretHardpoints:   int(ship.Attr(shared.AttrTurretSlots, 0)),
		LauncherHardpoints: int(ship.Attr(shared.AttrLauncherSlots, 0)),
	}

	for _, m := range fit.Modules() {
		if !m.IsActive() {
			continue
		}
		cycleSec := cycleTimeMs(m) / 1000

		// Weapon class is a heuristic over attribute presence: a positive
		// tracking speed marks a turret, a positive explosion radius marks
		// a missile launcher. There is no explicit weapon-category field.
		switch {
		case m.Attr(shared.AttrTrackingSpeed, 0) > 0:
			alpha := volley(m, m.Attr(shared.AttrDamageMultiplier, 1))
			off.TurretAlpha += alpha
			if cycleSec > 0 {
				off.TurretDPS += alpha / cycleSec
			}
			off.TurretOptimal = math.Max(off.TurretOptimal, m.Attr(shared.AttrOptimalRange, 0))
			off.TurretFalloff = math.Max(off.TurretFalloff, m.Attr(shared.AttrFalloff, 0))

		case m.Attr(shared.AttrExplosionRadius, 0) > 0:
			alpha := volley(m, m.Attr(shared.AttrMissileDamageMultiplier, 1))
			off.MissileAlpha += alpha
			if cycleSec > 0 {
				off.MissileDPS += alpha / cycleSec
			}
			flightSec := m.Attr(shared.AttrMissileFlightTime, 0) / 1000
			velocity := m.Attr(shared.AttrMaxVelocity, 0)
			off.MissileRange = math.Max(off.MissileRange, flightSec*velocity)
		}
	}

	// Drones have no active-state gate; the list is assumed deployed.
	for _, d := range fit.Drones {
		alpha := volley(d, d.Attr(shared.AttrDamageMultiplier, 1))
		off.DroneAlpha += alpha
		if cycleSec := cycleTimeMs(d) / 1000; cycleSec > 0 {
			off.DroneDPS += alpha / cycleSec
		}
	}

	off.TotalDPS = off.TurretDPS + off.MissileDPS + off.DroneDPS
	off.TotalAlpha = off.TurretAlpha + off.MissileAlpha + off.DroneAlpha
	s.Offense = off
}

// AlignTime is the closed-form warp alignment formula. The constant factors
// must match exactly; every navigation figure downstream depends on it.
func AlignTime(inertia, mass float64) float64 {
	return -math.Log(0.25) * inertia * mass / 1_000_000
}

func (c *Calculator) calcNavigation(ship *fitting.TypeEntity, s *ShipStats) {
	mass := ship.Mass
	if mass <= 0 {
		mass = fallbackMass
	}
	nav := NavigationStats{
		MaxVelocity:     ship.Attr(shared.AttrMaxVelocity, 0),
		Inertia:         ship.Attr(shared.AttrInertiaModifier, 1),
		WarpSpeed:       ship.Attr(shared.AttrWarpSpeed, 1),
		Mass:            mass,
		SignatureRadius: ship.Attr(shared.AttrSignatureRadius, 0),
	}
	nav.AlignTime = AlignTime(nav.Inertia, nav.Mass)
	s.Navigation = nav
}

// sensorOrder fixes the tie-break: when two sensor strengths are equal the
// first-listed type wins, which is observable (e.g. both zero).
var sensorOrder = []struct {
	name string
	attr int
}{
	{"Radar", shared.AttrRadarStrength},
	{"Ladar", shared.AttrLadarStrength},
	{"Magnetometric", shared.AttrMagnetometricStrength},
	{"Gravimetric", shared.AttrGravimetricStrength},
}

func (c *Calculator) calcTargeting(ship *fitting.TypeEntity, s *ShipStats) {
	t := TargetingStats{
		MaxTargets:     int(ship.Attr(shared.AttrMaxLockedTargets, fallbackMaxTargets)),
		MaxTargetRange: ship.Attr(shared.AttrMaxTargetRange, fallbackTargetRange),
		ScanResolution: ship.Attr(shared.AttrScanResolution, fallbackScanResolution),
	}

	t.SensorType = sensorOrder[0].name
	t.SensorStrength = ship.Attr(sensorOrder[0].attr, 0)
	for _, candidate := range sensorOrder[1:] {
		if v := ship.Attr(candidate.attr, 0); v > t.SensorStrength {
			t.SensorType = candidate.name
			t.SensorStrength = v
		}
	}

	s.Targeting = t
}
