// Package flags provides a configuration-backed feature flag adapter.
// Flags are read once at startup from the flags section of the config;
// there is no remote provider and no runtime mutation. The adapter
// still satisfies the full ports.FeatureFlags contract so a hosted
// provider can replace it without touching the application layer.
package flags

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fiveminutevibe/vibe-service/internal/ports"
)

// Static is an immutable, config-backed ports.FeatureFlags implementation.
type Static struct {
	values map[string]any
}

// NewStatic creates a flag provider over the given values.
// A nil map is valid and resolves every flag to its default.
func NewStatic(values map[string]any) *Static {
	return &Static{values: values}
}

var _ ports.FeatureFlags = (*Static)(nil)

// IsEnabled checks if a boolean feature flag is enabled.
func (s *Static) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	if v, ok := s.values[flag].(bool); ok {
		return v
	}

	return defaultValue
}

// GetString retrieves a string feature flag value.
func (s *Static) GetString(_ context.Context, flag string, defaultValue string) string {
	if v, ok := s.values[flag].(string); ok {
		return v
	}

	return defaultValue
}

// GetInt retrieves an integer feature flag value.
// YAML decoding may surface numbers as int or float64; both are accepted.
func (s *Static) GetInt(_ context.Context, flag string, defaultValue int) int {
	switch v := s.values[flag].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return defaultValue
	}
}

// GetFloat retrieves a float feature flag value.
func (s *Static) GetFloat(_ context.Context, flag string, defaultValue float64) float64 {
	switch v := s.values[flag].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return defaultValue
	}
}

// GetJSON retrieves a structured flag value and unmarshals it into target.
// The stored value is round-tripped through JSON so map-shaped config
// values land in typed structs.
func (s *Static) GetJSON(_ context.Context, flag string, target any) error {
	v, ok := s.values[flag]
	if !ok {
		return fmt.Errorf("flag %q not found", flag)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, target)
}
