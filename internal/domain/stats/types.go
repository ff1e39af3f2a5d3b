package stats

// ShipStats is a derived, disposable snapshot of a fitting's performance.
// It is recomputed wholesale on every fitting mutation and never patched
// incrementally.
type ShipStats struct {
	Engineering EngineeringStats `json:"engineering"`
	Capacitor   CapacitorStats   `json:"capacitor"`
	Offense     OffenseStats     `json:"offense"`
	Navigation  NavigationStats  `json:"navigation"`
	Targeting   TargetingStats   `json:"targeting"`
	Shield      LayerStats       `json:"shield"`
	Armor       LayerStats       `json:"armor"`
	Hull        LayerStats       `json:"hull"`
	TotalEHP    float64          `json:"total_ehp"`
	Slots       SlotStats        `json:"slots"`
}

// EngineeringStats covers the fitting resource budget.
type EngineeringStats struct {
	CPUTotal      float64 `json:"cpu_total"`
	CPUUsed       float64 `json:"cpu_used"`
	PowerTotal    float64 `json:"power_total"`
	PowerUsed     float64 `json:"power_used"`
	Calibration   float64 `json:"calibration"`
	CalibrationUsed float64 `json:"calibration_used"`
	DroneCapacity  float64 `json:"drone_capacity"`
	DroneBayUsed   float64 `json:"drone_bay_used"`
	DroneBandwidth float64 `json:"drone_bandwidth"`
	DroneBandwidthUsed float64 `json:"drone_bandwidth_used"`
}

// CapacitorStats covers the capacitor reservoir and its stability verdict.
type CapacitorStats struct {
	Capacity      float64 `json:"capacity"`
	RechargeTau   float64 `json:"recharge_tau"`
	PeakRecharge  float64 `json:"peak_recharge"`
	Drain         float64 `json:"drain"`
	Stable        bool    `json:"stable"`
	StablePercent float64 `json:"stable_percent,omitempty"`
	LastsSeconds  float64 `json:"lasts_seconds,omitempty"`
}

// OffenseStats breaks damage output down by weapon class.
type OffenseStats struct {
	TurretDPS     float64 `json:"turret_dps"`
	TurretAlpha   float64 `json:"turret_alpha"`
	TurretOptimal float64 `json:"turret_optimal"`
	TurretFalloff float64 `json:"turret_falloff"`

	MissileDPS   float64 `json:"missile_dps"`
	MissileAlpha float64 `json:"missile_alpha"`
	MissileRange float64 `json:"missile_range"`

	DroneDPS   float64 `json:"drone_dps"`
	DroneAlpha float64 `json:"drone_alpha"`

	TotalDPS   float64 `json:"total_dps"`
	TotalAlpha float64 `json:"total_alpha"`

	TurretHardpoints   int `json:"turret_hardpoints"`
	LauncherHardpoints int `json:"launcher_hardpoints"`
}

// NavigationStats covers speed and maneuverability.
type NavigationStats struct {
	MaxVelocity     float64 `json:"max_velocity"`
	Inertia         float64 `json:"inertia"`
	AlignTime       float64 `json:"align_time"`
	WarpSpeed       float64 `json:"warp_speed"`
	Mass            float64 `json:"mass"`
	SignatureRadius float64 `json:"signature_radius"`
}

// TargetingStats covers sensors and lock performance.
type TargetingStats struct {
	MaxTargets     int     `json:"max_targets"`
	MaxTargetRange float64 `json:"max_target_range"`
	ScanResolution float64 `json:"scan_resolution"`
	SensorType     string  `json:"sensor_type"`
	SensorStrength float64 `json:"sensor_strength"`
}

// LayerStats is one defense layer: raw hp, the four-axis damage resonance
// profile (1.0 = no resist) and the derived effective hitpoints.
type LayerStats struct {
	HP                 float64 `json:"hp"`
	EMResonance        float64 `json:"em_resonance"`
	ThermalResonance   float64 `json:"thermal_resonance"`
	KineticResonance   float64 `json:"kinetic_resonance"`
	ExplosiveResonance float64 `json:"explosive_resonance"`
	AvgResonance       float64 `json:"avg_resonance"`
	EHP                float64 `json:"ehp"`
}

// SlotStats reports the rack sizes actually carried by the fitting.
// The fitting is authoritative once created; these are not re-derived from
// ship attributes at stats time.
type SlotStats struct {
	High      int `json:"high"`
	Mid       int `json:"mid"`
	Low       int `json:"low"`
	Rig       int `json:"rig"`
	Subsystem int `json:"subsystem"`
}
