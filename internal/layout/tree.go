// Package layout implements the CuTe "Shape:Stride" layout algebra.
//
// A layout maps logical multi-dimensional coordinates to linear memory
// offsets. Shapes and strides are hierarchical integer trees;
// coordinates are enumerated column-major (mode 0 fastest) and offsets
// are the dot product of a flattened coordinate with the flattened
// strides. On top of that sit the tiling operations: Divide, Mod,
// Coalesce, and layout composition.
package layout

import (
	"strconv"
	"strings"
)

// Tree is one node of a shape, stride, or coordinate tree: either an
// Int leaf or a Tuple of subtrees. Trees are immutable values; no
// operation in this package modifies a Tree after construction.
type Tree interface {
	isTree()

	// String renders the node in layout-string syntax, e.g. "12" or
	// "(12,(4,8))".
	String() string
}

// Int is a leaf node: an extent, a stride, or a coordinate component.
type Int int

// Tuple is an interior node holding one subtree per mode.
type Tuple []Tree

func (Int) isTree()   {}
func (Tuple) isTree() {}

func (i Int) String() string {
	return strconv.Itoa(int(i))
}

func (t Tuple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, child := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(child.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether two trees have the same structure and values.
func Equal(a, b Tree) bool {
	switch a := a.(type) {
	case Int:
		b, ok := b.(Int)
		return ok && a == b
	case Tuple:
		b, ok := b.(Tuple)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// NumLeaves returns the number of leaves in the tree.
func NumLeaves(t Tree) int {
	switch t := t.(type) {
	case Int:
		return 1
	case Tuple:
		n := 0
		for _, child := range t {
			n += NumLeaves(child)
		}
		return n
	}
	return 0
}

// Flatten collects the tree's leaves into a flat slice, pre-order,
// left to right. The original nesting is discarded; Unflatten rebuilds
// it from a template.
func Flatten(t Tree) []int {
	return appendLeaves(nil, t)
}

func appendLeaves(dst []int, t Tree) []int {
	switch t := t.(type) {
	case Int:
		return append(dst, int(t))
	case Tuple:
		for _, child := range t {
			dst = appendLeaves(dst, child)
		}
	}
	return dst
}

// Unflatten rebuilds a tree with template's nesting, taking leaf
// values from values in order. It is the inverse of Flatten: for any
// tree t, Unflatten(Flatten(t), t) reproduces t. The value count must
// equal the template's leaf count.
func Unflatten(values []int, template Tree) (Tree, error) {
	if want := NumLeaves(template); len(values) != want {
		return nil, &LengthError{Want: want, Got: len(values)}
	}
	pos := 0
	return unflatten(values, template, &pos), nil
}

// unflatten consumes values through a shared cursor so the walk stays
// linear in the leaf count.
func unflatten(values []int, template Tree, pos *int) Tree {
	switch template := template.(type) {
	case Tuple:
		out := make(Tuple, len(template))
		for i, child := range template {
			out[i] = unflatten(values, child, pos)
		}
		return out
	default:
		v := Int(values[*pos])
		*pos++
		return v
	}
}
