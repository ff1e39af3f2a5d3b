package config

// SimulationConfig holds capacitor simulation configuration
type SimulationConfig struct {
	// MaxSeconds bounds the capacitor integration for unstable fits
	MaxSeconds float64 `mapstructure:"max_seconds" validate:"omitempty,min=1"`
}
