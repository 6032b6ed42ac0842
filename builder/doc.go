// SPDX-License-Identifier: MIT

// Package builder provides reusable "functional-options"-style fixture
// generators for wgraph. Each topology is a Constructor that mutates a
// *core.Graph; BuildGraph creates the graph, resolves options once and runs
// constructors in order.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, key offset, label scheme, weight function.
//   - Label schemes (LabelFn implementations), applied to node labels:
//     – DecimalLabelFn:    decimal strings ("0","1",…).
//     – SymbolLabelFn:     single letters ("A","B",…).
//     – ExcelColumnLabelFn: Excel-style columns ("A","Z","AA",…).
//     – AlphanumericLabelFn: base-36 strings.
//     – HexLabelFn:        lowercase hexadecimal.
//     – PrefixLabelFn:     prefix + decimal ("v0","v1",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped at 0.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//     – QuantizedWeightFn: any of the above rounded to a step.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse (Erdős–Rényi), RandomRegular (stub matching) and
//     RandomEdges (exactly m distinct random edges).
//
// Keys:
//
//	Index i of a constructor maps to key base+i, where base is set with
//	WithKeyOffset (default 0). Star and Wheel hubs, Grid cells and bipartite
//	sides document their own index layout.
//
// Guarantees:
//
//   - Idempotent node insertion: re-running a builder on g never duplicates
//     nodes; re-emitting an edge updates its weight.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are sentinel errors wrapped with the constructor name.
//   - Determinism: same inputs, options and seed ⇒ identical graphs.
package builder
