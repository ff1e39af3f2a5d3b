package shared

// Dogma attribute ids used by the fitting pipeline. These are the fixed
// numeric keys of EVE's sparse type-attribute model; not every type defines
// every attribute, and readers fall back to documented defaults.
const (
	AttrMass             = 4
	AttrCapacitorNeed    = 6
	AttrHullHitpoints    = 9
	AttrPowerOutput      = 11
	AttrLowSlots         = 12
	AttrMediumSlots      = 13
	AttrHighSlots        = 14
	AttrPowerUsage       = 30
	AttrMaxVelocity      = 37
	AttrCapacity         = 38
	AttrCPUOutput        = 48
	AttrCPUUsage         = 50
	AttrRateOfFire       = 51
	AttrOptimalRange     = 54
	AttrCapacitorRecharge = 55
	AttrDamageMultiplier = 64
	AttrInertiaModifier  = 70
	AttrDuration         = 73
	AttrMaxTargetRange   = 76
	AttrLauncherSlots    = 101
	AttrTurretSlots      = 102
	AttrEMDamage         = 114
	AttrExplosiveDamage  = 116
	AttrKineticDamage    = 117
	AttrThermalDamage    = 118
	AttrFalloff          = 158
	AttrTrackingSpeed    = 160
	AttrVolume           = 161
	AttrMaxLockedTargets = 192
	AttrRadarStrength    = 208
	AttrLadarStrength    = 209
	AttrMagnetometricStrength = 210
	AttrGravimetricStrength   = 211
	AttrMissileDamageMultiplier = 212
	AttrShieldCapacity   = 263
	AttrArmorHitpoints   = 265
	AttrArmorEMResonance        = 267
	AttrArmorExplosiveResonance = 268
	AttrArmorKineticResonance   = 269
	AttrArmorThermalResonance   = 270
	AttrShieldEMResonance        = 271
	AttrShieldExplosiveResonance = 272
	AttrShieldKineticResonance   = 273
	AttrShieldThermalResonance   = 274
	AttrMissileFlightTime = 281
	AttrDroneCapacity    = 283
	AttrCapacitorCapacity = 482
	AttrSignatureRadius  = 552
	AttrScanResolution   = 564
	AttrWarpSpeed        = 600
	AttrExplosionRadius  = 654
	AttrHullEMResonance        = 974
	AttrHullExplosiveResonance = 975
	AttrHullKineticResonance   = 976
	AttrHullThermalResonance   = 977
	AttrRigSlots         = 1154
	AttrMaxSubSystems    = 1367
	AttrDroneBandwidth   = 1271
	AttrDroneBandwidthUsed = 1272
	AttrCalibration      = 1132
	AttrRigCalibrationCost = 1153
)

// Paired required-skill attribute slots. An item declares up to six
// (skill type id, required level) pairs through these.
var RequiredSkillAttrs = [][2]int{
	{182, 277},
	{183, 278},
	{184, 279},
	{1285, 1286},
	{1289, 1287},
	{1290, 1288},
}

// Dogma effect ids that flag fitting behavior.
const (
	EffectLoPower        = 11
	EffectHiPower        = 12
	EffectMedPower       = 13
	EffectLauncherFitted = 40
	EffectTurretFitted   = 42
	EffectRigSlot        = 2663
	EffectSubSystem      = 3772
)

// CategorySkill is the category id that marks a type as a trainable skill.
// Prerequisite resolution stops at types outside this category, which guards
// against attribute data pointing at non-skill types.
const CategorySkill = 16
