package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults: a local sqlite file keeps the tool usable with
	// zero setup
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "evefit.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "evefit"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "evefit"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// ESI defaults
	if cfg.ESI.BaseURL == "" {
		cfg.ESI.BaseURL = "https://esi.evetech.net/latest"
	}
	if cfg.ESI.Timeout == 0 {
		cfg.ESI.Timeout = 30 * time.Second
	}
	if cfg.ESI.CacheTTL == 0 {
		cfg.ESI.CacheTTL = 24 * time.Hour
	}
	if cfg.ESI.RateLimit.Requests == 0 {
		cfg.ESI.RateLimit.Requests = 20
	}
	if cfg.ESI.RateLimit.Burst == 0 {
		cfg.ESI.RateLimit.Burst = 40
	}
	if cfg.ESI.Retry.MaxAttempts == 0 {
		cfg.ESI.Retry.MaxAttempts = 5
	}
	if cfg.ESI.Retry.BackoffBase == 0 {
		cfg.ESI.Retry.BackoffBase = 1 * time.Second
	}

	// Simulation defaults
	if cfg.Simulation.MaxSeconds == 0 {
		cfg.Simulation.MaxSeconds = 600
	}
}
