package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/cute/layout"
)

func TestParseAndQuery(t *testing.T) {
	l, err := layout.Parse("(12,(4,8)):(59,(13,1))")
	require.NoError(t, err)

	assert.Equal(t, 384, l.Size())
	assert.Equal(t, "(12,(4,8)):(59,(13,1))", l.String())

	off, err := l.Offset(layout.Tuple{layout.Int(5), layout.Tuple{layout.Int(2), layout.Int(3)}})
	require.NoError(t, err)
	assert.Equal(t, 324, off)

	coord, err := layout.OffsetToCoordinate(7, l.Shape())
	require.NoError(t, err)
	assert.True(t, layout.Equal(coord, layout.Tuple{layout.Int(7), layout.Tuple{layout.Int(0), layout.Int(0)}}))
}

func TestComposeThroughFacade(t *testing.T) {
	outer := layout.MustNew(
		layout.Tuple{layout.Int(6), layout.Int(2)},
		layout.Tuple{layout.Int(8), layout.Int(2)},
	)
	inner := layout.MustNew(
		layout.Tuple{layout.Int(4), layout.Int(3)},
		layout.Tuple{layout.Int(3), layout.Int(1)},
	)

	got, err := layout.Compose(outer, inner)
	require.NoError(t, err)

	want := layout.MustNew(
		layout.Tuple{layout.Tuple{layout.Int(2), layout.Int(2)}, layout.Int(3)},
		layout.Tuple{layout.Tuple{layout.Int(24), layout.Int(2)}, layout.Int(8)},
	)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestErrorClasses(t *testing.T) {
	_, err := layout.Parse("")
	assert.ErrorIs(t, err, layout.ErrParse)

	_, err = layout.Parse("(4,8):1")
	assert.ErrorIs(t, err, layout.ErrStructure)

	_, _, err = layout.Divide(layout.Int(12), layout.Int(1), 7)
	assert.ErrorIs(t, err, layout.ErrDivide)

	var divErr *layout.DivideError
	require.ErrorAs(t, err, &divErr)
	assert.Equal(t, 7, divErr.Divisor)

	_, err = layout.OffsetToCoordinate(99, layout.Int(4))
	assert.ErrorIs(t, err, layout.ErrRange)
}
