// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function wraps the matching sentinel with the constructor name
// when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Complexity: O(1) time and space.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN is rejected.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	return nil
}

// requireRand reports ErrNeedRandSource when cfg carries no RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}
	return nil
}
