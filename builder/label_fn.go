// Package builder provides helper functions and types
// for configuring node label schemes in graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// LabelFn generates a node label from its zero-based constructor index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Panics in implementations indicate programmer error in configuration.
type LabelFn func(idx int) string

// DecimalLabelFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) time where d = number of digits in idx, O(1) extra space.
// Never panics.
func DecimalLabelFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolLabelFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Complexity: O(1) time, O(1) space.
// Panics if idx < 0 or idx > 25.
func SymbolLabelFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolLabelFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// AlphanumericLabelFn returns a base-36 string for idx, e.g. 0→"0", 10→"a", 35→"z", 36→"10".
// Panics if idx < 0.
func AlphanumericLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericLabelFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnLabelFn returns the "Excel-style" column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx), O(1) extra space.
// Panics if idx < 0.
func ExcelColumnLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabelFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexLabelFn returns the lowercase hexadecimal representation of idx,
// e.g. 0→"0", 10→"a", 255→"ff". Panics if idx < 0.
func HexLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexLabelFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// PrefixLabelFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func PrefixLabelFn(prefix string) LabelFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixLabelFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithDecimalLabels labels nodes with their constructor index.
func WithDecimalLabels() BuilderOption {
	return WithLabelScheme(DecimalLabelFn)
}

// WithSymbolLabels sets the label scheme to SymbolLabelFn.
func WithSymbolLabels() BuilderOption {
	return WithLabelScheme(SymbolLabelFn)
}

// WithExcelColumnLabels sets the label scheme to ExcelColumnLabelFn.
func WithExcelColumnLabels() BuilderOption {
	return WithLabelScheme(ExcelColumnLabelFn)
}

// WithHexLabels sets the label scheme to HexLabelFn.
func WithHexLabels() BuilderOption {
	return WithLabelScheme(HexLabelFn)
}

// WithAlphanumericLabels sets the label scheme to AlphanumericLabelFn.
func WithAlphanumericLabels() BuilderOption {
	return WithLabelScheme(AlphanumericLabelFn)
}

// WithPrefixLabels sets the label scheme to PrefixLabelFn(prefix).
// Example: WithPrefixLabels("v") → "v0","v1",...
func WithPrefixLabels(prefix string) BuilderOption {
	return WithLabelScheme(PrefixLabelFn(prefix))
}
