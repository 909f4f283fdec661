package geometry

import (
	"gonum.org/v1/gonum/interp"
)

// ConvexHull computes the convex hull of a set of points using Graham scan.
// Returns the points forming the convex hull in counter-clockwise order.
func ConvexHull(points []Point2D) []Point2D {
	if len(points) < 3 {
		return points
	}

	// Make a copy to avoid modifying the input
	pts := make([]Point2D, len(points))
	copy(pts, points)

	// Find the point with lowest y (and leftmost if tied)
	lowest := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Y < pts[lowest].Y ||
			(pts[i].Y == pts[lowest].Y && pts[i].X < pts[lowest].X) {
			lowest = i
		}
	}

	// Swap to front
	pts[0], pts[lowest] = pts[lowest], pts[0]
	pivot := pts[0]

	// Sort by polar angle with respect to pivot
	sorted := make([]Point2D, len(pts)-1)
	copy(sorted, pts[1:])

	for i := 0; i < len(sorted)-1; i++ {
		for j := i + 1; j < len(sorted); j++ {
			cross := crossProduct(pivot, sorted[i], sorted[j])
			if cross < 0 || (cross == 0 && distSq(pivot, sorted[i]) > distSq(pivot, sorted[j])) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	// Build hull
	hull := []Point2D{pivot}
	for _, p := range sorted {
		for len(hull) > 1 && crossProduct(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull
}

// ExpandHull scales a hull outward about its centroid. A factor of 1.1 pads
// the envelope by 10% so that boundary points do not sit on the outline.
func ExpandHull(hull []Point2D, factor float64) []Point2D {
	if len(hull) == 0 {
		return hull
	}
	c := Centroid(hull)
	out := make([]Point2D, len(hull))
	for i, p := range hull {
		out[i] = c.Add(p.Sub(c).Scale(factor))
	}
	return out
}

// SmoothClosed resamples a closed polygon outline to n points using natural
// cubic splines over the cumulative chord-length parameter. The polygon is
// treated as closed: the outline wraps from the last vertex back to the
// first. Polygons with fewer than 3 vertices are returned unchanged.
func SmoothClosed(outline []Point2D, n int) []Point2D {
	if len(outline) < 3 || n < len(outline) {
		return outline
	}

	// Close the loop and build the chord-length parameterization.
	closed := make([]Point2D, 0, len(outline)+1)
	closed = append(closed, outline...)
	closed = append(closed, outline[0])

	ts := make([]float64, len(closed))
	xs := make([]float64, len(closed))
	ys := make([]float64, len(closed))
	for i, p := range closed {
		if i > 0 {
			ts[i] = ts[i-1] + p.Distance(closed[i-1])
			// Degenerate segments break spline fitting; nudge the parameter.
			if ts[i] == ts[i-1] {
				ts[i] = ts[i-1] + 1e-12
			}
		}
		xs[i] = p.X
		ys[i] = p.Y
	}

	var sx, sy interp.NaturalCubic
	if err := sx.Fit(ts, xs); err != nil {
		return outline
	}
	if err := sy.Fit(ts, ys); err != nil {
		return outline
	}

	total := ts[len(ts)-1]
	smoothed := make([]Point2D, n)
	for i := 0; i < n; i++ {
		t := total * float64(i) / float64(n)
		smoothed[i] = Point2D{X: sx.Predict(t), Y: sy.Predict(t)}
	}
	return smoothed
}

// IsConvex returns true if the polygon vertices form a convex polygon.
// The polygon is assumed to be simple (non-self-intersecting).
func IsConvex(polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	n := len(polygon)
	var sign int

	for i := 0; i < n; i++ {
		cross := crossProduct(
			polygon[i],
			polygon[(i+1)%n],
			polygon[(i+2)%n],
		)

		if cross != 0 {
			currentSign := 1
			if cross < 0 {
				currentSign = -1
			}

			if sign == 0 {
				sign = currentSign
			} else if currentSign != sign {
				return false
			}
		}
	}

	return true
}

// crossProduct returns the z component of (b-a) x (c-a).
func crossProduct(a, b, c Point2D) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func distSq(a, b Point2D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
