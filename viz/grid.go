// Package viz renders layouts from the layout package as offset
// tables on the console, the way the CuTe documentation draws them:
// for a two-mode layout, mode 0 spans the rows and mode 1 the
// columns, and each cell holds the memory offset of that coordinate.
package viz

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/born-ml/cute/layout"
)

// Grid is a rendered view of a layout's offsets. For a layout whose
// shape is a top-level 2-tuple the grid is two-dimensional with one
// row per mode-0 coordinate and one column per mode-1 coordinate;
// any other layout becomes a single row over the whole enumeration.
type Grid struct {
	Title     string // the layout in Shape:Stride form
	RowLabels []string
	ColLabels []string
	Cells     [][]int
}

// OffsetGrid computes the offset grid for a layout.
func OffsetGrid(l layout.Layout) (*Grid, error) {
	shape, ok := l.Shape().(layout.Tuple)
	if ok && len(shape) == 2 {
		return offsetGrid2D(l, shape)
	}
	return offsetGrid1D(l)
}

// offsetGrid2D splits the layout into its two top-level modes and
// fills cell (r, c) with offset(mode0 coord r) + offset(mode1 coord c).
func offsetGrid2D(l layout.Layout, shape layout.Tuple) (*Grid, error) {
	stride := l.Stride().(layout.Tuple)
	mode0, err := layout.New(shape[0], stride[0])
	if err != nil {
		return nil, err
	}
	mode1, err := layout.New(shape[1], stride[1])
	if err != nil {
		return nil, err
	}

	rowCoords := mode0.Coordinates(false)
	colCoords := mode1.Coordinates(false)

	g := &Grid{
		Title:     l.String(),
		RowLabels: coordLabels(rowCoords),
		ColLabels: coordLabels(colCoords),
		Cells:     make([][]int, len(rowCoords)),
	}
	for r, rowCoord := range rowCoords {
		rowOffset, err := mode0.Offset(rowCoord)
		if err != nil {
			return nil, err
		}
		g.Cells[r] = make([]int, len(colCoords))
		for c, colCoord := range colCoords {
			colOffset, err := mode1.Offset(colCoord)
			if err != nil {
				return nil, err
			}
			g.Cells[r][c] = rowOffset + colOffset
		}
	}
	return g, nil
}

func offsetGrid1D(l layout.Layout) (*Grid, error) {
	coords := l.Coordinates(false)
	g := &Grid{
		Title:     l.String(),
		ColLabels: coordLabels(coords),
		Cells:     [][]int{make([]int, len(coords))},
	}
	for i, coord := range coords {
		offset, err := l.Offset(coord)
		if err != nil {
			return nil, err
		}
		g.Cells[0][i] = offset
	}
	return g, nil
}

// Render writes the grid as a pterm table preceded by its title line.
func (g *Grid) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, g.Title); err != nil {
		return err
	}

	withRowLabels := len(g.RowLabels) > 0
	header := make([]string, 0, len(g.ColLabels)+1)
	if withRowLabels {
		header = append(header, "")
	}
	header = append(header, g.ColLabels...)

	data := pterm.TableData{header}
	for r, row := range g.Cells {
		line := make([]string, 0, len(row)+1)
		if withRowLabels {
			line = append(line, g.RowLabels[r])
		}
		for _, cell := range row {
			line = append(line, strconv.Itoa(cell))
		}
		data = append(data, line)
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, rendered)
	return err
}

// Show renders a layout's offset grid in one step.
func Show(w io.Writer, l layout.Layout) error {
	g, err := OffsetGrid(l)
	if err != nil {
		return err
	}
	return g.Render(w)
}

// coordLabels formats coordinates as row/column headers; singleton
// tuples print as their bare element.
func coordLabels(coords []layout.Tree) []string {
	labels := make([]string, len(coords))
	for i, c := range coords {
		if t, ok := c.(layout.Tuple); ok && len(t) == 1 {
			labels[i] = t[0].String()
			continue
		}
		labels[i] = c.String()
	}
	return labels
}
