// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// config.go: resolved builder configuration.

package builder

import "math/rand" // RNG for stochastic builders

// builderConfig accumulates everything a Constructor may consult.
// It is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	// base is added to every constructor index to form node keys.
	base int

	// labelFn names node i; nil leaves labels empty.
	labelFn LabelFn

	// rng drives stochastic builders and weight draws; nil means deterministic.
	rng *rand.Rand

	// weightFn draws one weight per emitted edge.
	weightFn WeightFn
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		base:     0,
		labelFn:  nil,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// key maps a constructor index to a node key.
func (c builderConfig) key(idx int) int {
	return c.base + idx
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
