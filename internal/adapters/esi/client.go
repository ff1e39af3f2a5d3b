package esi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/acheronlabs/evefit/internal/domain/shared"
)

const (
	baseURL                  = "https://esi.evetech.net/latest"
	defaultTimeout           = 30 * time.Second
	defaultRequestsPerSecond = 20
	defaultBurst             = 40
	defaultMaxRetries        = 5
	defaultBackoffBase       = time.Second
)

// TypeData is the raw ESI representation of an inventory type
type TypeData struct {
	TypeID     int     `json:"type_id"`
	Name       string  `json:"name"`
	GroupID    int     `json:"group_id"`
	Mass       float64 `json:"mass"`
	Volume     float64 `json:"volume"`
	Published  bool    `json:"published"`
	Attributes []struct {
		AttributeID int     `json:"attribute_id"`
		Value       float64 `json:"value"`
	} `json:"dogma_attributes"`
	Effects []struct {
		EffectID  int  `json:"effect_id"`
		IsDefault bool `json:"is_default"`
	} `json:"dogma_effects"`
}

// GroupData is the raw ESI representation of an inventory group
type GroupData struct {
	GroupID    int    `json:"group_id"`
	Name       string `json:"name"`
	CategoryID int    `json:"category_id"`
}

// Client implements raw access to the EVE Swagger Interface
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	maxRetries  int
	backoffBase time.Duration
	clock       shared.Clock
}

// ClientConfig carries the tunable settings for a Client. Zero-valued
// fields fall back to the package defaults.
type ClientConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond int
	Burst             int
	MaxRetries        int
	BackoffBase       time.Duration
}

// NewClient creates a new ESI client with default settings
// Rate limit: 20 requests per second with burst of 40
// Retry: max 5 attempts with 1s exponential backoff + jitter
func NewClient() *Client {
	return NewClientWithConfig(ClientConfig{}, nil)
}

// NewClientWithConfig creates a new ESI client with custom configuration
// If clock is nil, uses RealClock for production
func NewClientWithConfig(cfg ClientConfig, clock shared.Clock) *Client {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = baseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = defaultBackoffBase
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		baseURL:     cfg.BaseURL,
		maxRetries:  cfg.MaxRetries,
		backoffBase: cfg.BackoffBase,
		clock:       clock,
	}
}

// GetType retrieves an inventory type with its dogma attributes and effects
func (c *Client) GetType(ctx context.Context, typeID int) (*TypeData, error) {
	path := fmt.Sprintf("/universe/types/%d/", typeID)

	var response TypeData
	if err := c.request(ctx, "GET", path, nil, &response); err != nil {
		return nil, fmt.Errorf("failed to get type %d: %w", typeID, err)
	}

	return &response, nil
}

// GetGroup retrieves an inventory group
func (c *Client) GetGroup(ctx context.Context, groupID int) (*GroupData, error) {
	path := fmt.Sprintf("/universe/groups/%d/", groupID)

	var response GroupData
	if err := c.request(ctx, "GET", path, nil, &response); err != nil {
		return nil, fmt.Errorf("failed to get group %d: %w", groupID, err)
	}

	return &response, nil
}

// ResolveIDs resolves exact type names to type IDs. Names ESI does not
// recognize are simply absent from the result map.
func (c *Client) ResolveIDs(ctx context.Context, names []string) (map[string]int, error) {
	resolved := make(map[string]int, len(names))
	if len(names) == 0 {
		return resolved, nil
	}

	// ESI caps /universe/ids at 500 names per request
	for start := 0; start < len(names); start += 500 {
		end := start + 500
		if end > len(names) {
			end = len(names)
		}

		var response struct {
			InventoryTypes []struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"inventory_types"`
		}

		if err := c.request(ctx, "POST", "/universe/ids/", names[start:end], &response); err != nil {
			return nil, fmt.Errorf("failed to resolve ids: %w", err)
		}

		for _, t := range response.InventoryTypes {
			resolved[t.Name] = t.ID
		}
	}

	return resolved, nil
}

// addJitter adds random jitter to a duration to avoid thundering herd
// Returns a duration between 50% and 150% of the original value
func addJitter(d time.Duration) time.Duration {
	jitter := 0.5 + rand.Float64() // 0.5 to 1.5
	return time.Duration(float64(d) * jitter)
}

// request makes an HTTP request with rate limiting and exponential backoff retries
func (c *Client) request(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		var reqBody io.Reader
		if body != nil {
			jsonData, err := json.Marshal(body)
			if err != nil {
				return fmt.Errorf("failed to marshal request body: %w", err)
			}
			reqBody = bytes.NewBuffer(jsonData)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Network error - retryable
			lastErr = &retryableError{message: fmt.Errorf("network error: %w", err).Error()}

			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			}
			c.clock.Sleep(addJitter(c.backoffBase * time.Duration(1<<attempt)))
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return fmt.Errorf("failed to read response: %w", readErr)
		}

		// ESI error-limit throttling - retryable
		if resp.StatusCode == http.StatusTooManyRequests {
			var retryAfterDuration time.Duration
			if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
				if seconds, err := strconv.Atoi(retryAfter); err == nil {
					retryAfterDuration = time.Duration(seconds) * time.Second
				}
			}

			lastErr = &retryableError{message: "rate limited (429)", retryAfter: retryAfterDuration}

			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			}

			backoffDelay := addJitter(c.backoffBase * time.Duration(1<<attempt))
			if retryAfterDuration > 0 {
				// Use server-provided Retry-After value without jitter
				backoffDelay = retryAfterDuration
			}
			c.clock.Sleep(backoffDelay)
			continue
		}

		// 5xx server errors - retryable
		if resp.StatusCode >= 500 {
			lastErr = &retryableError{message: fmt.Sprintf("server error (%d)", resp.StatusCode)}

			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			}
			c.clock.Sleep(addJitter(c.backoffBase * time.Duration(1<<attempt)))
			continue
		}

		// 4xx client errors (except 429) - NOT retryable
		if resp.StatusCode >= 400 {
			return fmt.Errorf("ESI error (status %d): %s", resp.StatusCode, string(respBody))
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("ESI error (status %d): %s", resp.StatusCode, string(respBody))
		}

		if result != nil {
			if err := json.Unmarshal(respBody, result); err != nil {
				return fmt.Errorf("failed to unmarshal response: %w", err)
			}
		}

		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("max retries exceeded: %w", lastErr)
	}
	return fmt.Errorf("max retries exceeded")
}

// retryableError represents an error that should trigger a retry
type retryableError struct {
	message    string
	retryAfter time.Duration
}

func (e *retryableError) Error() string {
	return e.message
}
