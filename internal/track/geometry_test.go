package track

import (
	"math"
	"testing"
)

const (
	eps = 0.00001
)

func TestEuclideanDistance(t *testing.T) {
	p1 := Point{X: 341, Y: 264}
	p2 := Point{X: 421, Y: 427}
	correctAnswer := 181.57367
	answer := euclideanDistance(p1, p2)
	if math.Abs(answer-correctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correctAnswer)
	}
}

func TestBoxCenterFloorDivision(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 5, H: 7}
	center := b.Center()
	if center.X != 12 || center.Y != 23 {
		t.Errorf("incorrect center: %v, expected (12, 23)", center)
	}
}

func TestCirclesClose(t *testing.T) {
	a := Circle{X: 0, Y: 0, R: 30}
	// Distance exactly 50 is still a match
	b := Circle{X: 30, Y: 40, R: 30}
	dist, ok := CirclesClose(a, b, 50, 17)
	if !ok {
		t.Error("expected match at boundary distance")
		return
	}
	if math.Abs(dist-50.0) > eps {
		t.Errorf("incorrect distance: %v, expected 50", dist)
	}

	// Same centers, radius difference over the threshold
	c := Circle{X: 0, Y: 0, R: 48}
	if _, ok := CirclesClose(a, c, 50, 17); ok {
		t.Error("expected no match for radius difference 18")
	}

	// Too far apart
	d := Circle{X: 31, Y: 41, R: 30}
	if _, ok := CirclesClose(a, d, 50, 17); ok {
		t.Error("expected no match beyond distance threshold")
	}
}

func TestBoxesClose(t *testing.T) {
	a := Box{X: 10, Y: 20, W: 100, H: 100}
	b := Box{X: 15, Y: 25, W: 100, H: 100}
	dist, ok := BoxesClose(a, b, 40, 5)
	if !ok {
		t.Error("expected match")
		return
	}
	correctAnswer := math.Sqrt(50)
	if math.Abs(dist-correctAnswer) > eps {
		t.Errorf("incorrect distance: %v, correct answer: %v", dist, correctAnswer)
	}

	// Extent difference over the threshold on one axis only
	c := Box{X: 10, Y: 20, W: 100, H: 106}
	if _, ok := BoxesClose(a, c, 40, 5); ok {
		t.Error("expected no match for height difference 6")
	}

	// Extent difference exactly at the threshold
	d := Box{X: 10, Y: 20, W: 105, H: 100}
	if _, ok := BoxesClose(a, d, 40, 5); !ok {
		t.Error("expected match for width difference 5")
	}
}
