package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHull(t *testing.T) {
	square := []Point2D{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}

	t.Run("interior points are dropped", func(t *testing.T) {
		pts := append([]Point2D{}, square...)
		pts = append(pts, Point2D{X: 2, Y: 2}, Point2D{X: 1, Y: 3})

		hull := ConvexHull(pts)

		require.Len(t, hull, 4)
		assert.ElementsMatch(t, square, hull)
	})

	t.Run("hull is convex", func(t *testing.T) {
		pts := []Point2D{
			{X: 0, Y: 0}, {X: 5, Y: 1}, {X: 6, Y: 4}, {X: 3, Y: 6},
			{X: 1, Y: 5}, {X: 3, Y: 3}, {X: 2, Y: 2}, {X: 4, Y: 2},
		}

		hull := ConvexHull(pts)

		assert.True(t, IsConvex(hull))
	})

	t.Run("fewer than three points pass through", func(t *testing.T) {
		pts := []Point2D{{X: 1, Y: 2}, {X: 3, Y: 4}}
		assert.Equal(t, pts, ConvexHull(pts))
	})
}

func TestExpandHull(t *testing.T) {
	square := []Point2D{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
	}

	expanded := ExpandHull(square, 1.1)

	require.Len(t, expanded, 4)
	for i, p := range expanded {
		assert.InDelta(t, square[i].X*1.1, p.X, 1e-12)
		assert.InDelta(t, square[i].Y*1.1, p.Y, 1e-12)
	}

	assert.Empty(t, ExpandHull(nil, 1.1))
}

func TestSmoothClosed(t *testing.T) {
	t.Run("resamples to the requested count", func(t *testing.T) {
		diamond := []Point2D{
			{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0},
		}

		smoothed := SmoothClosed(diamond, 200)

		require.Len(t, smoothed, 200)
		assert.InDelta(t, diamond[0].X, smoothed[0].X, 1e-9)
		assert.InDelta(t, diamond[0].Y, smoothed[0].Y, 1e-9)

		// The smoothed outline stays near the original envelope.
		for _, p := range smoothed {
			assert.Less(t, p.Distance(Point2D{}), 3.0)
		}
	})

	t.Run("degenerate outlines pass through", func(t *testing.T) {
		line := []Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}}
		assert.Equal(t, line, SmoothClosed(line, 100))
	})
}

func TestCentroid(t *testing.T) {
	pts := []Point2D{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	c := Centroid(pts)
	assert.Equal(t, Point2D{X: 2, Y: 2}, c)

	assert.Equal(t, Point2D{}, Centroid(nil))
}

func TestBoundingBox(t *testing.T) {
	pts := []Point2D{{X: -1, Y: 2}, {X: 3, Y: -4}, {X: 0, Y: 0}}
	box := BoundingBox(pts)

	assert.Equal(t, Rect{X: -1, Y: -4, Width: 4, Height: 6}, box)
	assert.True(t, box.Contains(Point2D{X: 0, Y: 0}))
	assert.False(t, box.Contains(Point2D{X: 5, Y: 0}))
}

func TestPointOps(t *testing.T) {
	a := Point2D{X: 3, Y: 4}
	assert.InDelta(t, 5, a.Distance(Point2D{}), 1e-12)
	assert.Equal(t, Point2D{X: 4, Y: 6}, a.Add(Point2D{X: 1, Y: 2}))
	assert.Equal(t, Point2D{X: 2, Y: 2}, a.Sub(Point2D{X: 1, Y: 2}))
	assert.Equal(t, Point2D{X: 6, Y: 8}, a.Scale(2))
	assert.InDelta(t, math.Sqrt2, NewPoint2D(1, 1).Distance(Point2D{}), 1e-12)
}
