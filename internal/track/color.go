package track

import "math"

// Color is an RGB triple with channels in [0,255]. An absent or
// undetectable color is a nil *Color.
type Color [3]float64

// NewColor builds a Color from sampled channel values. Anything other
// than exactly three finite numbers yields nil; detectors report NaN
// channels for regions they could not read.
func NewColor(channels ...float64) *Color {
	if len(channels) != 3 {
		return nil
	}
	var c Color
	for i, v := range channels {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		c[i] = v
	}
	return &c
}

// Valid reports whether the color is a usable RGB triple.
func (c *Color) Valid() bool {
	if c == nil {
		return false
	}
	for _, v := range c {
		if math.IsNaN(v) || v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// Similarity is a tri-state comparison result. Unknown means the
// comparison could not be decided because an operand was absent or
// invalid. A merge treats Unknown the same as No.
type Similarity int

const (
	SimilarityUnknown Similarity = iota
	SimilarityNo
	SimilarityYes
)

func (s Similarity) String() string {
	switch s {
	case SimilarityYes:
		return "yes"
	case SimilarityNo:
		return "no"
	default:
		return "unknown"
	}
}

// ColorsSimilar compares two colors channel by channel. Colors match
// when every channel differs by at most tolerance. If either color is
// invalid the result is SimilarityUnknown.
func ColorsSimilar(a, b *Color, tolerance float64) Similarity {
	if !a.Valid() || !b.Valid() {
		return SimilarityUnknown
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tolerance {
			return SimilarityNo
		}
	}
	return SimilarityYes
}
