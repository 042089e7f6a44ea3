package layout

// Size returns the total number of points in a shape's index space:
// the product of all leaf extents.
func Size(shape Tree) int {
	switch shape := shape.(type) {
	case Tuple:
		n := 1
		for _, child := range shape {
			n *= Size(child)
		}
		return n
	case Int:
		return int(shape)
	}
	return 0
}

// Coordinates enumerates every point of the shape's index space in
// column-major order: mode 0 varies fastest, and the same rule applies
// recursively inside nested modes. This is the opposite of row-major
// nested-loop order.
//
// With flat=false each coordinate mirrors the shape tree's nesting
// exactly (an Int for a scalar shape, a congruent Tuple otherwise).
// With flat=true each coordinate is flattened to a Tuple with one Int
// per leaf.
func Coordinates(shape Tree, flat bool) []Tree {
	coords := coordinates(shape)
	if !flat {
		return coords
	}
	out := make([]Tree, len(coords))
	for i, c := range coords {
		leaves := Flatten(c)
		fc := make(Tuple, len(leaves))
		for j, v := range leaves {
			fc[j] = Int(v)
		}
		out[i] = fc
	}
	return out
}

func coordinates(shape Tree) []Tree {
	switch shape := shape.(type) {
	case Int:
		if shape <= 0 {
			return nil
		}
		coords := make([]Tree, shape)
		for i := range coords {
			coords[i] = Int(i)
		}
		return coords
	case Tuple:
		lists := make([][]Tree, len(shape))
		for i, child := range shape {
			lists[i] = coordinates(child)
		}
		prod := columnMajor(lists)
		coords := make([]Tree, len(prod))
		for i, c := range prod {
			coords[i] = c
		}
		return coords
	}
	return nil
}

// columnMajor builds the Cartesian product of the per-mode coordinate
// lists with the first mode as the innermost (fastest) index: the last
// mode iterates slowest, and for each of its values the product of all
// preceding modes is enumerated in full.
func columnMajor(lists [][]Tree) []Tuple {
	if len(lists) == 0 {
		return []Tuple{{}}
	}
	rest := columnMajor(lists[:len(lists)-1])
	last := lists[len(lists)-1]
	out := make([]Tuple, 0, len(rest)*len(last))
	for _, lastCoord := range last {
		for _, restCoord := range rest {
			c := make(Tuple, len(restCoord)+1)
			copy(c, restCoord)
			c[len(restCoord)] = lastCoord
			out = append(out, c)
		}
	}
	return out
}

// Offset computes the memory offset for a coordinate: the dot product
// of the flattened coordinate with the flattened strides. Both inputs
// may be nested or already flat; their flattened lengths must match.
func Offset(coord, stride Tree) (int, error) {
	flatCoord := Flatten(coord)
	flatStride := Flatten(stride)
	if len(flatCoord) != len(flatStride) {
		return 0, &DimensionError{Coord: coord, Stride: stride}
	}
	offset := 0
	for i, c := range flatCoord {
		offset += c * flatStride[i]
	}
	return offset, nil
}

// OffsetToCoordinate maps a linear offset back to the coordinate at
// that position of the column-major enumeration. The offset must lie
// in [0, Size(shape)).
func OffsetToCoordinate(offset int, shape Tree) (Tree, error) {
	size := Size(shape)
	if offset < 0 || offset >= size {
		return nil, &RangeError{Offset: offset, Size: size, Shape: shape}
	}
	if _, ok := shape.(Int); ok {
		return Int(offset), nil
	}
	return coordinates(shape)[offset], nil
}
