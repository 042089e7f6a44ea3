package layout

import "fmt"

// Compose combines two layouts functionally: indexing the result is
// equivalent to mapping a coordinate through inner, then through
// outer (A ∘ B).
//
// For a scalar inner layout e:s, outer is divided by s to align its
// addressing granularity, then the divided shape is truncated to e.
// For a tuple inner layout, outer is composed with each top-level mode
// of inner independently, each per-mode result is coalesced, and the
// results are assembled positionally.
func Compose(outer, inner Layout) (Layout, error) {
	innerShape, scalar := inner.shape.(Int)
	if scalar {
		innerStride := inner.stride.(Int)
		tmpShape, tmpStride, err := Divide(outer.shape, outer.stride, int(innerStride))
		if err != nil {
			return Layout{}, err
		}
		return New(Mod(tmpShape, int(innerShape)), tmpStride)
	}

	shapeTup := inner.shape.(Tuple)
	strideTup := inner.stride.(Tuple)
	resultShapes := make(Tuple, len(shapeTup))
	resultStrides := make(Tuple, len(shapeTup))
	for i := range shapeTup {
		mode := Layout{shape: shapeTup[i], stride: strideTup[i]}
		composed, err := Compose(outer, mode)
		if err != nil {
			return Layout{}, err
		}
		resultShapes[i], resultStrides[i] = Coalesce(composed.shape, composed.stride)
	}
	return New(resultShapes, resultStrides)
}

// ComposeByMode composes a layout against one supplied layout per
// top-level mode: mode i of l with modes[i], results assembled
// positionally. A scalar layout counts as a single mode. The supplied
// count must equal the top-level mode count.
func ComposeByMode(l Layout, modes []Layout) (Layout, error) {
	shapeTup, ok := l.shape.(Tuple)
	strideTup, _ := l.stride.(Tuple)
	if !ok {
		shapeTup = Tuple{l.shape}
		strideTup = Tuple{l.stride}
	}
	if len(shapeTup) != len(modes) {
		return Layout{}, &StructureError{
			ShapePath:  "layout",
			StridePath: "modes",
			Detail: fmt.Sprintf("layout has %d top-level modes but %d mode layouts were supplied",
				len(shapeTup), len(modes)),
		}
	}

	resultShapes := make(Tuple, len(shapeTup))
	resultStrides := make(Tuple, len(shapeTup))
	for i := range shapeTup {
		mode := Layout{shape: shapeTup[i], stride: strideTup[i]}
		composed, err := Compose(mode, modes[i])
		if err != nil {
			return Layout{}, err
		}
		resultShapes[i] = composed.shape
		resultStrides[i] = composed.stride
	}
	return New(resultShapes, resultStrides)
}
