package internal

import (
	"fmt"
	"regexp"
)

// KeyGenerator defines the interface for generating and validating
// lookup-table cache keys
type KeyGenerator interface {
	TableKey(w, h int, metric string) string
	ValidateKey(key string) error
}

// DefaultKeyGenerator implements the KeyGenerator interface
type DefaultKeyGenerator struct{}

// NewKeyGenerator creates a new DefaultKeyGenerator instance
func NewKeyGenerator() KeyGenerator {
	return &DefaultKeyGenerator{}
}

// keyPattern matches "<w>x<h>-<metric>.bin" with positive dimensions.
var keyPattern = regexp.MustCompile(`^[1-9][0-9]*x[1-9][0-9]*-(stm|mtm)\.bin$`)

// TableKey generates the cache key for one (size, metric) lookup table.
// Format: <w>x<h>-<metric>.bin
func (kg *DefaultKeyGenerator) TableKey(w, h int, metric string) string {
	return fmt.Sprintf("%dx%d-%s.bin", w, h, metric)
}

// ValidateKey validates that a cache key follows the expected format. Keys
// double as file names under the cache directory, so anything containing
// separators or traversal sequences is rejected by the pattern.
func (kg *DefaultKeyGenerator) ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if len(key) > 64 {
		return fmt.Errorf("key exceeds maximum length of 64 characters")
	}
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("key does not match <w>x<h>-<metric>.bin: %s", key)
	}
	return nil
}
