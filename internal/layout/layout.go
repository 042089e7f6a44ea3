package layout

// Layout is an immutable shape/stride pair describing how logical
// coordinates map to memory offsets. The two trees are isomorphic (see
// Validate); every constructor enforces that, and every operation
// returns a new Layout rather than mutating.
type Layout struct {
	shape  Tree
	stride Tree
}

// New builds a Layout, validating that shape and stride are
// isomorphic.
func New(shape, stride Tree) (Layout, error) {
	if err := Validate(shape, stride); err != nil {
		return Layout{}, err
	}
	return Layout{shape: shape, stride: stride}, nil
}

// MustNew is New that panics on a structure mismatch. For statically
// known layouts in tests and examples.
func MustNew(shape, stride Tree) Layout {
	l, err := New(shape, stride)
	if err != nil {
		panic(err)
	}
	return l
}

// Shape returns the shape tree.
func (l Layout) Shape() Tree { return l.shape }

// Stride returns the stride tree.
func (l Layout) Stride() Tree { return l.stride }

// Size returns the total number of elements in the layout's index
// space.
func (l Layout) Size() int { return Size(l.shape) }

// Flatten returns the extent and stride sequences, one entry per leaf
// in pre-order. Both slices have the same length by the isomorphism
// invariant.
func (l Layout) Flatten() (extents, strides []int) {
	return Flatten(l.shape), Flatten(l.stride)
}

// Coordinates enumerates the layout's index space in column-major
// order. See the package-level Coordinates.
func (l Layout) Coordinates(flat bool) []Tree {
	return Coordinates(l.shape, flat)
}

// Offset maps a coordinate (nested or flat) to its memory offset.
func (l Layout) Offset(coord Tree) (int, error) {
	return Offset(coord, l.stride)
}

// String renders the layout in Shape:Stride syntax, e.g.
// "(12,(4,8)):(59,(13,1))". Parse round-trips the result.
func (l Layout) String() string {
	return l.shape.String() + ":" + l.stride.String()
}

// Equal reports whether two layouts have identical shape and stride
// trees.
func (l Layout) Equal(other Layout) bool {
	return Equal(l.shape, other.shape) && Equal(l.stride, other.stride)
}
