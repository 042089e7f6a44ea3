package layout

import (
	"errors"
	"testing"
)

func TestSize(t *testing.T) {
	tests := []struct {
		shape Tree
		want  int
	}{
		{Int(12), 12},
		{tup(Int(4), Int(8)), 32},
		{tup(Int(12), tup(Int(4), Int(8))), 384},
		{tup(tup(Int(2), Int(3)), tup(Int(4), Int(2))), 48},
		{tup(Int(0), Int(4)), 0}, // degenerate extent
	}

	for _, tt := range tests {
		if got := Size(tt.shape); got != tt.want {
			t.Errorf("Size(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestCoordinatesScalar(t *testing.T) {
	got := Coordinates(Int(4), false)
	want := []Tree{Int(0), Int(1), Int(2), Int(3)}
	if len(got) != len(want) {
		t.Fatalf("Coordinates(4) returned %d coords, want %d", len(got), len(want))
	}
	for i := range want {
		assertTreeEqual(t, want[i], got[i], "Coordinates(4)")
	}
}

// Mode 0 varies fastest: (2,3) enumerates (0,0),(1,0),(0,1),... not
// the row-major (0,0),(0,1),(0,2),...
func TestCoordinatesColumnMajor(t *testing.T) {
	got := Coordinates(tup(Int(2), Int(3)), false)
	want := []Tree{
		tup(Int(0), Int(0)), tup(Int(1), Int(0)),
		tup(Int(0), Int(1)), tup(Int(1), Int(1)),
		tup(Int(0), Int(2)), tup(Int(1), Int(2)),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d coords, want %d", len(got), len(want))
	}
	for i := range want {
		assertTreeEqual(t, want[i], got[i], "Coordinates((2,3))")
	}
}

func TestCoordinatesColumnMajorPrefix(t *testing.T) {
	got := Coordinates(tup(Int(4), Int(8)), false)
	wantPrefix := []Tree{
		tup(Int(0), Int(0)), tup(Int(1), Int(0)), tup(Int(2), Int(0)), tup(Int(3), Int(0)),
		tup(Int(0), Int(1)),
	}
	for i, want := range wantPrefix {
		assertTreeEqual(t, want, got[i], "Coordinates((4,8)) prefix")
	}
}

func TestCoordinatesNested(t *testing.T) {
	// The rule applies recursively: inside the nested mode, its own
	// mode 0 varies fastest.
	got := Coordinates(tup(Int(2), tup(Int(2), Int(3))), false)
	want := []Tree{
		tup(Int(0), tup(Int(0), Int(0))), tup(Int(1), tup(Int(0), Int(0))),
		tup(Int(0), tup(Int(1), Int(0))), tup(Int(1), tup(Int(1), Int(0))),
		tup(Int(0), tup(Int(0), Int(1))), tup(Int(1), tup(Int(0), Int(1))),
		tup(Int(0), tup(Int(1), Int(1))), tup(Int(1), tup(Int(1), Int(1))),
		tup(Int(0), tup(Int(0), Int(2))), tup(Int(1), tup(Int(0), Int(2))),
		tup(Int(0), tup(Int(1), Int(2))), tup(Int(1), tup(Int(1), Int(2))),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d coords, want %d", len(got), len(want))
	}
	for i := range want {
		assertTreeEqual(t, want[i], got[i], "Coordinates((2,(2,3)))")
	}
}

func TestCoordinatesFlat(t *testing.T) {
	got := Coordinates(tup(Int(2), tup(Int(2), Int(3))), true)
	want := []Tree{
		tup(Int(0), Int(0), Int(0)), tup(Int(1), Int(0), Int(0)),
		tup(Int(0), Int(1), Int(0)), tup(Int(1), Int(1), Int(0)),
		tup(Int(0), Int(0), Int(1)), tup(Int(1), Int(0), Int(1)),
		tup(Int(0), Int(1), Int(1)), tup(Int(1), Int(1), Int(1)),
		tup(Int(0), Int(0), Int(2)), tup(Int(1), Int(0), Int(2)),
		tup(Int(0), Int(1), Int(2)), tup(Int(1), Int(1), Int(2)),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d coords, want %d", len(got), len(want))
	}
	for i := range want {
		assertTreeEqual(t, want[i], got[i], "flat coordinates")
	}
}

func TestCoordinateCountMatchesSize(t *testing.T) {
	shapes := []Tree{
		Int(7),
		tup(Int(4), Int(8)),
		tup(Int(2), tup(Int(2), Int(3))),
		tup(tup(Int(2), Int(3)), tup(Int(4), Int(2))),
	}

	for _, shape := range shapes {
		if got, want := len(Coordinates(shape, true)), Size(shape); got != want {
			t.Errorf("shape %v: %d coordinates, Size = %d", shape, got, want)
		}
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		coord, stride Tree
		want          int
	}{
		{tup(Int(1), Int(2)), tup(Int(1), Int(4)), 9},
		// Nested coordinate against nested stride.
		{tup(Int(5), tup(Int(2), Int(3))), tup(Int(59), tup(Int(13), Int(1))), 324},
		// Flat coordinate against nested stride flattens to the same dot product.
		{tup(Int(5), Int(2), Int(3)), tup(Int(59), tup(Int(13), Int(1))), 324},
		{Int(3), Int(2), 6},
		// Zero stride broadcasts, negative stride walks backwards.
		{tup(Int(2), Int(3)), tup(Int(0), Int(-4)), -12},
	}

	for _, tt := range tests {
		got, err := Offset(tt.coord, tt.stride)
		if err != nil {
			t.Errorf("Offset(%v, %v) failed: %v", tt.coord, tt.stride, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Offset(%v, %v) = %d, want %d", tt.coord, tt.stride, got, tt.want)
		}
	}
}

func TestOffsetDimensionMismatch(t *testing.T) {
	_, err := Offset(tup(Int(1), Int(2), Int(3)), tup(Int(1), Int(4)))
	if !errors.Is(err, ErrDimension) {
		t.Fatalf("expected ErrDimension, got %v", err)
	}
}

func TestOffsetToCoordinate(t *testing.T) {
	tests := []struct {
		offset int
		shape  Tree
		want   Tree
	}{
		{0, Int(4), Int(0)},
		{3, Int(4), Int(3)},
		{5, tup(Int(4), Int(8)), tup(Int(1), Int(1))},
		{7, tup(Int(12), tup(Int(4), Int(8))), tup(Int(7), tup(Int(0), Int(0)))},
		{10, tup(tup(Int(2), Int(3)), tup(Int(4), Int(2))), tup(tup(Int(0), Int(2)), tup(Int(1), Int(0)))},
	}

	for _, tt := range tests {
		got, err := OffsetToCoordinate(tt.offset, tt.shape)
		if err != nil {
			t.Errorf("OffsetToCoordinate(%d, %v) failed: %v", tt.offset, tt.shape, err)
			continue
		}
		assertTreeEqual(t, tt.want, got, "OffsetToCoordinate")
	}
}

func TestOffsetToCoordinateAgreesWithEnumeration(t *testing.T) {
	shape := tup(Int(3), Int(4))
	coords := Coordinates(shape, false)
	for offset := 0; offset < Size(shape); offset++ {
		got, err := OffsetToCoordinate(offset, shape)
		if err != nil {
			t.Fatalf("OffsetToCoordinate(%d) failed: %v", offset, err)
		}
		assertTreeEqual(t, coords[offset], got, "enumeration agreement")
	}
}

func TestOffsetToCoordinateOutOfRange(t *testing.T) {
	for _, offset := range []int{-1, 32, 100} {
		_, err := OffsetToCoordinate(offset, tup(Int(4), Int(8)))
		if !errors.Is(err, ErrRange) {
			t.Errorf("OffsetToCoordinate(%d): expected ErrRange, got %v", offset, err)
		}
	}
}
