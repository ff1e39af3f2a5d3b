package config

import "time"

// ESIConfig holds EVE Swagger Interface client configuration
type ESIConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"omitempty,url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Retry     RetryConfig     `mapstructure:"retry"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Requests int `mapstructure:"requests" validate:"min=1"`
	Burst    int `mapstructure:"burst" validate:"min=1"`
}

// RetryConfig holds retry configuration
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" validate:"min=1,max=10"`
	BackoffBase time.Duration `mapstructure:"backoff_base"`
}
