// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout provides the public API for the CuTe layout algebra.
//
// A Layout is an immutable pair of isomorphic integer trees, shape and
// stride, describing how logical coordinates map to linear memory
// offsets in the CUTLASS CuTe "Shape:Stride" formalism:
//   - Int and Tuple build the trees
//   - Coordinates enumerates the index space column-major (mode 0 fastest)
//   - Offset is the dot product of flattened coordinate and strides
//   - Divide, Mod, Coalesce, and Compose are the tiling operations
//   - Parse and Layout.String round-trip the "(shape):(stride)" text form
//
// Example:
//
//	l, err := layout.Parse("(4,8):(1,4)")
//	if err != nil {
//		return err
//	}
//	off, _ := l.Offset(layout.Tuple{layout.Int(1), layout.Int(2)})  // 9
package layout

import (
	"github.com/born-ml/cute/internal/layout"
)

// Type aliases for public API

// Tree is one node of a shape, stride, or coordinate tree: either an
// Int leaf or a Tuple of subtrees.
type Tree = layout.Tree

// Int is a leaf node: an extent, a stride, or a coordinate component.
type Int = layout.Int

// Tuple is an interior node holding one subtree per mode.
type Tuple = layout.Tuple

// Layout is an immutable, validated shape/stride pair.
type Layout = layout.Layout

// Error classes, matchable with errors.Is.
var (
	ErrStructure = layout.ErrStructure
	ErrDivide    = layout.ErrDivide
	ErrRange     = layout.ErrRange
	ErrDimension = layout.ErrDimension
	ErrLength    = layout.ErrLength
	ErrParse     = layout.ErrParse
)

// Typed errors carrying diagnostic context.
type (
	// StructureError reports a shape/stride isomorphism violation with
	// the offending tree position.
	StructureError = layout.StructureError
	// DivideError reports a failed exact split in Divide.
	DivideError = layout.DivideError
	// RangeError reports an offset outside a shape's index space.
	RangeError = layout.RangeError
	// DimensionError reports a coordinate/stride length mismatch.
	DimensionError = layout.DimensionError
	// LengthError reports an Unflatten value count mismatch.
	LengthError = layout.LengthError
	// ParseError reports a malformed layout string.
	ParseError = layout.ParseError
)

// Construction

// New builds a Layout, validating that shape and stride are
// isomorphic.
func New(shape, stride Tree) (Layout, error) {
	return layout.New(shape, stride)
}

// MustNew is New that panics on a structure mismatch. For statically
// known layouts in tests and examples.
func MustNew(shape, stride Tree) Layout {
	return layout.MustNew(shape, stride)
}

// Parse builds a Layout from its Shape:Stride text form, e.g.
// "(12,(4,8)):(59,(13,1))".
func Parse(s string) (Layout, error) {
	return layout.Parse(s)
}

// Validate checks that shape and stride are isomorphic at every tree
// position.
func Validate(shape, stride Tree) error {
	return layout.Validate(shape, stride)
}

// Tree utilities

// Equal reports whether two trees have the same structure and values.
func Equal(a, b Tree) bool {
	return layout.Equal(a, b)
}

// Flatten collects a tree's leaves into a flat slice, pre-order.
func Flatten(t Tree) []int {
	return layout.Flatten(t)
}

// Unflatten rebuilds a tree with template's nesting from flat leaf
// values; the inverse of Flatten.
func Unflatten(values []int, template Tree) (Tree, error) {
	return layout.Unflatten(values, template)
}

// Coordinate engine

// Size returns the total number of points in a shape's index space.
func Size(shape Tree) int {
	return layout.Size(shape)
}

// Coordinates enumerates a shape's index space in column-major order
// (mode 0 fastest, recursively per nesting level).
func Coordinates(shape Tree, flat bool) []Tree {
	return layout.Coordinates(shape, flat)
}

// Offset computes the memory offset for a coordinate against a stride
// tree; both may be nested or flat.
func Offset(coord, stride Tree) (int, error) {
	return layout.Offset(coord, stride)
}

// OffsetToCoordinate maps a linear offset back to the coordinate at
// that position of the column-major enumeration.
func OffsetToCoordinate(offset int, shape Tree) (Tree, error) {
	return layout.OffsetToCoordinate(offset, shape)
}

// Tiling algebra

// Divide splits a layout by divisor, isolating its first divisor
// elements as the inner portion of a tiling.
func Divide(shape, stride Tree, divisor int) (Tree, Tree, error) {
	return layout.Divide(shape, stride, divisor)
}

// Mod truncates a shape to its first modulus elements, preserving
// per-mode structure.
func Mod(shape Tree, modulus int) Tree {
	return layout.Mod(shape, modulus)
}

// Coalesce strips trailing extent-1 modes from a top-level tuple
// layout.
func Coalesce(shape, stride Tree) (Tree, Tree) {
	return layout.Coalesce(shape, stride)
}

// Compose combines two layouts functionally: indexing Compose(a, b)
// is equivalent to mapping through b, then through a.
func Compose(outer, inner Layout) (Layout, error) {
	return layout.Compose(outer, inner)
}

// ComposeByMode composes a layout against one supplied layout per
// top-level mode, assembling the results positionally.
func ComposeByMode(l Layout, modes []Layout) (Layout, error) {
	return layout.ComposeByMode(l, modes)
}
