package point_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkturov/paretofront/point"
)

func TestLeq(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b point.Point
		want bool
	}{
		{"equal", point.Point{1, 2, 3}, point.Point{1, 2, 3}, true},
		{"strictly smaller", point.Point{0, 0}, point.Point{1, 1}, true},
		{"mixed, not leq", point.Point{1, 0}, point.Point{0, 1}, false},
		{"negative coords", point.Point{-3, 3}, point.Point{-2, 2}, false},
		{"zero-dim", point.Point{}, point.Point{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := point.Leq(c.a, c.b)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestLeq_ShapeMismatch(t *testing.T) {
	t.Parallel()

	_, err := point.Leq(point.Point{1, 2}, point.Point{1})
	assert.ErrorIs(t, err, point.ErrShapeMismatch)
}

func TestStrictLess(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b point.Point
		want bool
	}{
		{"equal points are not strictly less", point.Point{1, 2}, point.Point{1, 2}, false},
		{"strictly dominated", point.Point{0, 0}, point.Point{1, 1}, true},
		{"one coordinate equal, one smaller", point.Point{0, 2}, point.Point{1, 2}, true},
		{"incomparable", point.Point{1, 0}, point.Point{0, 1}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := point.StrictLess(c.a, c.b)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestStrictLess_ShapeMismatch(t *testing.T) {
	t.Parallel()

	_, err := point.StrictLess(point.Point{1}, point.Point{1, 2})
	assert.ErrorIs(t, err, point.ErrShapeMismatch)
}

func TestBounds_Validate(t *testing.T) {
	t.Parallel()

	valid := point.Bounds{{Lo: 0, Hi: 10}, {Lo: -3, Hi: 3}}
	assert.NoError(t, valid.Validate())

	invalid := point.Bounds{{Lo: 0, Hi: 10}, {Lo: 5, Hi: 1}}
	assert.ErrorIs(t, invalid.Validate(), point.ErrInvalidBounds)

	var empty point.Bounds
	assert.NoError(t, empty.Validate(), "zero-dimension bounds are valid")
}

func TestBounds_TopBottom(t *testing.T) {
	t.Parallel()

	b := point.Bounds{{Lo: 0, Hi: 10}, {Lo: -3, Hi: 3}}
	assert.Equal(t, point.Point{10, 3}, b.Top())
	assert.Equal(t, point.Point{0, -3}, b.Bottom())
}

func TestBounds_Contains(t *testing.T) {
	t.Parallel()

	b := point.Bounds{{Lo: 0, Hi: 10}, {Lo: -3, Hi: 3}}

	ok, err := b.Contains(point.Point{5, 0})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Contains(point.Point{11, 0})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = b.Contains(point.Point{1})
	assert.ErrorIs(t, err, point.ErrShapeMismatch)
}
