package layout

import "fmt"

// Validate checks that shape and stride are isomorphic: at every tree
// position both are leaves, or both are tuples of the same arity,
// recursively. It returns a *StructureError naming the offending
// position otherwise.
//
// Leaf values are not inspected: zero and negative extents pass, as do
// zero strides (broadcast) and negative strides (reversed traversal).
// Degenerate extents make Size and Coordinates collapse to zero, so
// callers wanting strictly positive shapes must check separately.
func Validate(shape, stride Tree) error {
	return validateAt(shape, stride, "shape", "stride")
}

func validateAt(shape, stride Tree, shapePath, stridePath string) error {
	switch shape := shape.(type) {
	case Tuple:
		strideTup, ok := stride.(Tuple)
		if !ok {
			return &StructureError{
				ShapePath:  shapePath,
				StridePath: stridePath,
				Detail:     fmt.Sprintf("%s is a tuple but %s is a scalar", shapePath, stridePath),
			}
		}
		if len(shape) != len(strideTup) {
			return &StructureError{
				ShapePath:  shapePath,
				StridePath: stridePath,
				Detail: fmt.Sprintf("%s has %d elements but %s has %d elements",
					shapePath, len(shape), stridePath, len(strideTup)),
			}
		}
		for i := range shape {
			err := validateAt(shape[i], strideTup[i],
				fmt.Sprintf("%s[%d]", shapePath, i), fmt.Sprintf("%s[%d]", stridePath, i))
			if err != nil {
				return err
			}
		}
		return nil
	default:
		if _, ok := stride.(Tuple); ok {
			return &StructureError{
				ShapePath:  shapePath,
				StridePath: stridePath,
				Detail:     fmt.Sprintf("%s is a scalar but %s is a tuple", shapePath, stridePath),
			}
		}
		return nil
	}
}
