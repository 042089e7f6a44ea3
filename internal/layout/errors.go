package layout

import (
	"errors"
	"fmt"
)

// Error classes. Every typed error below unwraps to one of these, so
// callers can match with errors.Is without inspecting the concrete
// type.
var (
	ErrStructure = errors.New("shape/stride structure mismatch")
	ErrDivide    = errors.New("stride divisibility condition violated")
	ErrRange     = errors.New("offset out of range")
	ErrDimension = errors.New("coordinate/stride dimension mismatch")
	ErrLength    = errors.New("flat value count mismatch")
	ErrParse     = errors.New("malformed layout string")
)

// StructureError reports a shape/stride isomorphism violation: either
// a kind mismatch (one side a scalar, the other a tuple) or an arity
// mismatch (both tuples, different lengths) at some tree position.
// ShapePath and StridePath name the offending position, e.g.
// "shape[1]" / "stride[1]".
type StructureError struct {
	ShapePath  string
	StridePath string
	Detail     string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("structure mismatch: %s", e.Detail)
}

func (e *StructureError) Unwrap() error { return ErrStructure }

// DivideError reports that Divide could not split a layout exactly by
// the requested divisor.
type DivideError struct {
	Divisor int
	Detail  string
}

func (e *DivideError) Error() string {
	return fmt.Sprintf("cannot divide layout by %d: %s", e.Divisor, e.Detail)
}

func (e *DivideError) Unwrap() error { return ErrDivide }

// RangeError reports an offset outside a shape's index space.
type RangeError struct {
	Offset int
	Size   int
	Shape  Tree
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("offset %d is out of range for shape %s (valid range: 0 to %d)",
		e.Offset, e.Shape, e.Size-1)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// DimensionError reports a coordinate whose flattened length does not
// match the flattened stride length.
type DimensionError struct {
	Coord  Tree
	Stride Tree
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("coordinate and stride dimension mismatch: coord %s, stride %s",
		e.Coord, e.Stride)
}

func (e *DimensionError) Unwrap() error { return ErrDimension }

// LengthError reports an Unflatten value slice whose length does not
// match the template's leaf count.
type LengthError struct {
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("flat value count %d does not match template (expected %d leaves)",
		e.Got, e.Want)
}

func (e *LengthError) Unwrap() error { return ErrLength }

// ParseError reports a malformed layout string. Pos is a byte position
// in the cleaned (whitespace-stripped) input, or -1 when the failure
// is not tied to a single position.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("parsing layout %q: %s (at position %d)", e.Input, e.Msg, e.Pos)
	}
	return fmt.Sprintf("parsing layout %q: %s", e.Input, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrParse }
