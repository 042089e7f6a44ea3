package layout

import "fmt"

// Divide splits a layout by divisor: the first divisor elements of the
// flattened per-mode order are hived off by shrinking modes from the
// left and scaling their strides, leaving the outer residue of a
// tiling. The result keeps the nesting of the inputs.
//
// Walking the flattened modes left to right with the divisor still to
// consume: a mode at least as large as the remainder must divide
// evenly and absorbs it; a smaller mode must divide the remainder
// evenly, collapses to extent 1, and passes the quotient on. Any other
// case fails with a *DivideError, as does running out of modes with
// divisor left over.
func Divide(shape, stride Tree, divisor int) (Tree, Tree, error) {
	if divisor == 0 {
		return nil, nil, &DivideError{Divisor: 0, Detail: "divisor must be nonzero"}
	}
	extents := Flatten(shape)
	strides := Flatten(stride)

	outExtents := make([]int, 0, len(extents))
	outStrides := make([]int, 0, len(strides))
	remaining := divisor
	for i, extent := range extents {
		if remaining == 1 {
			outExtents = append(outExtents, extents[i:]...)
			outStrides = append(outStrides, strides[i:]...)
			remaining = 0
			break
		}
		if remaining <= extent {
			// This mode absorbs the rest of the divisor.
			if extent%remaining != 0 {
				return nil, nil, &DivideError{
					Divisor: divisor,
					Detail:  fmt.Sprintf("mode of size %d not divisible by %d", extent, remaining),
				}
			}
			outExtents = append(outExtents, extent/remaining)
			outStrides = append(outStrides, strides[i]*remaining)
			outExtents = append(outExtents, extents[i+1:]...)
			outStrides = append(outStrides, strides[i+1:]...)
			remaining = 0
			break
		}
		// Mode fully consumed, leaving a singleton residue.
		if remaining%extent != 0 {
			return nil, nil, &DivideError{
				Divisor: divisor,
				Detail:  fmt.Sprintf("cannot divide %d by mode of size %d", remaining, extent),
			}
		}
		outExtents = append(outExtents, 1)
		outStrides = append(outStrides, strides[i]*remaining)
		remaining /= extent
	}
	if remaining > 1 {
		return nil, nil, &DivideError{
			Divisor: divisor,
			Detail:  fmt.Sprintf("%d remaining after dividing all modes", remaining),
		}
	}
	return mustUnflatten(outExtents, shape), mustUnflatten(outStrides, stride), nil
}

// Mod truncates a shape to its first modulus elements, walking the
// flattened extents left to right: a mode that fits inside the
// remaining count is kept whole, the first one that does not is cut to
// the remainder, and everything after collapses to 1. Strides are
// untouched by this operation. A modulus at or beyond Size(shape)
// saturates, returning the shape unchanged.
func Mod(shape Tree, modulus int) Tree {
	extents := Flatten(shape)
	out := make([]int, len(extents))
	remaining := modulus
	for i, extent := range extents {
		switch {
		case remaining >= extent:
			out[i] = extent
			remaining /= extent
		case remaining > 0:
			out[i] = remaining
			remaining = 1
		default:
			out[i] = 1
		}
	}
	return mustUnflatten(out, shape)
}

// Coalesce strips trailing extent-1 modes from a top-level tuple
// layout; their strides address nothing. A tuple emptied this way
// collapses to the scalar 1:0, a single survivor collapses to that
// element. Scalar layouts are returned unchanged. Nested modes are not
// descended into.
func Coalesce(shape, stride Tree) (Tree, Tree) {
	shapeTup, ok := shape.(Tuple)
	if !ok {
		return shape, stride
	}
	strideTup := stride.(Tuple)

	n := len(shapeTup)
	for n > 0 {
		if leaf, ok := shapeTup[n-1].(Int); ok && leaf == 1 {
			n--
			continue
		}
		break
	}
	switch n {
	case 0:
		return Int(1), Int(0)
	case 1:
		return shapeTup[0], strideTup[0]
	default:
		return shapeTup[:n], strideTup[:n]
	}
}

// mustUnflatten re-nests values against template when the caller
// guarantees the leaf counts already match.
func mustUnflatten(values []int, template Tree) Tree {
	t, err := Unflatten(values, template)
	if err != nil {
		panic(err)
	}
	return t
}
