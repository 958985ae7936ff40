package track

import "math"

// Point is a pixel position in detector space.
type Point struct {
	X int
	Y int
}

// Circle is a detected circle: center plus radius, in pixels.
type Circle struct {
	X int
	Y int
	R int
}

// Box is an axis-aligned box: top-left corner plus extents, in pixels.
type Box struct {
	X int
	Y int
	W int
	H int
}

// Center returns the box center. Integer division keeps the detector's
// pixel-grid semantics.
func (b Box) Center() Point {
	return Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

func (c Circle) center() Point {
	return Point{X: c.X, Y: c.Y}
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(float64(p1.X-p2.X), 2) + math.Pow(float64(p1.Y-p2.Y), 2))
}

// CirclesClose reports whether two circles plausibly describe the same
// object: centers within maxDist and radii within maxRadiusDiff. On a
// match it returns the distance between the centers.
func CirclesClose(a, b Circle, maxDist, maxRadiusDiff float64) (float64, bool) {
	dist := euclideanDistance(a.center(), b.center())
	radiusDiff := math.Abs(float64(a.R - b.R))
	if dist <= maxDist && radiusDiff <= maxRadiusDiff {
		return dist, true
	}
	return 0, false
}

// BoxesClose reports whether two boxes plausibly describe the same
// object: centers within maxDist and neither extent differing by more
// than maxSizeDiff. On a match it returns the center distance.
func BoxesClose(a, b Box, maxDist, maxSizeDiff float64) (float64, bool) {
	dist := euclideanDistance(a.Center(), b.Center())
	sizeDiff := math.Max(math.Abs(float64(a.W-b.W)), math.Abs(float64(a.H-b.H)))
	if dist <= maxDist && sizeDiff <= maxSizeDiff {
		return dist, true
	}
	return 0, false
}
