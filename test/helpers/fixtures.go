package helpers

import (
	"github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/shared"
)

// NewType builds a TypeEntity with explicit attributes and effects
func NewType(id int, name string, groupID, categoryID int, attrs map[int]float64, effects []int) *fitting.TypeEntity {
	return &fitting.TypeEntity{
		ID:         id,
		Name:       name,
		GroupID:    groupID,
		CategoryID: categoryID,
		Attributes: attrs,
		Effects:    effects,
	}
}

// RifterType is the canonical test frigate: 4/3/3 layout, 3 turret and 2
// launcher hardpoints, clean round defense numbers for EHP assertions.
func RifterType() *fitting.TypeEntity {
	ship := NewType(587, "Rifter", 25, 6, map[int]float64{
		shared.AttrHighSlots:     4,
		shared.AttrMediumSlots:   3,
		shared.AttrLowSlots:      3,
		shared.AttrTurretSlots:   3,
		shared.AttrLauncherSlots: 2,

		shared.AttrCPUOutput:   125,
		shared.AttrPowerOutput: 40,
		shared.AttrCalibration: 400,

		shared.AttrCapacitorCapacity: 250,
		shared.AttrCapacitorRecharge: 93750, // tau 93.75s, peak 6.67 GJ/s

		shared.AttrShieldCapacity:            1000,
		shared.AttrShieldEMResonance:         0.5,
		shared.AttrShieldThermalResonance:    0.5,
		shared.AttrShieldKineticResonance:    0.5,
		shared.AttrShieldExplosiveResonance:  0.5,
		shared.AttrArmorHitpoints:            800,
		shared.AttrHullHitpoints:             600,
		shared.AttrHullEMResonance:           0.8,
		shared.AttrHullThermalResonance:      0.8,
		shared.AttrHullKineticResonance:      0.8,
		shared.AttrHullExplosiveResonance:    0.8,

		shared.AttrMaxVelocity:     365,
		shared.AttrInertiaModifier: 3.2,
		shared.AttrWarpSpeed:       5,
		shared.AttrSignatureRadius: 35,

		shared.AttrMaxLockedTargets: 4,
		shared.AttrMaxTargetRange:   22500,
		shared.AttrScanResolution:   660,
		shared.AttrLadarStrength:    8,

		shared.AttrDroneCapacity:  10,
		shared.AttrDroneBandwidth: 10,

		182: 3327, // requires Spaceship Command
		277: 1,
	}, nil)
	ship.Mass = 1_000_000
	return ship
}

// AutoCannonType is a high-slot turret: 20 raw volley x3 multiplier over a
// 3s cycle gives 60 alpha and 20 DPS per gun.
func AutoCannonType() *fitting.TypeEntity {
	return NewType(2881, "200mm AutoCannon II", 55, 7, map[int]float64{
		shared.AttrCPUUsage:         18,
		shared.AttrPowerUsage:       6,
		shared.AttrDamageMultiplier: 3,
		shared.AttrRateOfFire:       3000,
		shared.AttrTrackingSpeed:    0.4,
		shared.AttrOptimalRange:     1200,
		shared.AttrFalloff:          6000,
		shared.AttrEMDamage:         5,
		shared.AttrThermalDamage:    5,
		shared.AttrKineticDamage:    5,
		shared.AttrExplosiveDamage:  5,
		182:                          3436, // requires Small Projectile Turret
		277:                          1,
	}, []int{shared.EffectHiPower, shared.EffectTurretFitted})
}

// RocketLauncherType is a high-slot launcher flagged by explosion radius
func RocketLauncherType() *fitting.TypeEntity {
	return NewType(10631, "Rocket Launcher II", 56, 7, map[int]float64{
		shared.AttrCPUUsage:                4,
		shared.AttrPowerUsage:              1,
		shared.AttrRateOfFire:              4000,
		shared.AttrExplosionRadius:         20,
		shared.AttrMissileDamageMultiplier: 1,
		shared.AttrMissileFlightTime:       5000,
		shared.AttrMaxVelocity:             3750,
		shared.AttrKineticDamage:           30,
	}, []int{shared.EffectHiPower, shared.EffectLauncherFitted})
}

// ArmorRepairerType is a low-slot active capacitor consumer: 40 GJ per 5s
// cycle, an 8 GJ/s drain.
func ArmorRepairerType() *fitting.TypeEntity {
	return NewType(1183, "Small Armor Repairer II", 62, 7, map[int]float64{
		shared.AttrCPUUsage:      5,
		shared.AttrPowerUsage:    5,
		shared.AttrCapacitorNeed: 40,
		shared.AttrDuration:      5000,
	}, []int{shared.EffectLoPower})
}

// BurstAeratorType is a rig with a calibration cost
func BurstAeratorType() *fitting.TypeEntity {
	return NewType(31041, "Small Projectile Burst Aerator I", 782, 7, map[int]float64{
		shared.AttrRigCalibrationCost: 100,
	}, []int{shared.EffectRigSlot})
}

// HobgoblinType is a light combat drone: 24 volley over a 4s cycle
func HobgoblinType() *fitting.TypeEntity {
	return NewType(2456, "Hobgoblin II", 100, 18, map[int]float64{
		shared.AttrDamageMultiplier:   1.6,
		shared.AttrRateOfFire:         4000,
		shared.AttrThermalDamage:      15,
		shared.AttrVolume:             5,
		shared.AttrDroneBandwidthUsed: 5,
	}, nil)
}

// EMPChargeType is turret ammo referenced as a loaded charge
func EMPChargeType() *fitting.TypeEntity {
	return NewType(185, "EMP S", 83, 8, map[int]float64{
		shared.AttrVolume: 0.0025,
	}, nil)
}
