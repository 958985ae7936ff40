package track

import (
	"math"
	"testing"
)

func TestNewColorFiltersInvalidChannels(t *testing.T) {
	if c := NewColor(255, math.NaN(), 0); c != nil {
		t.Errorf("expected nil color for NaN channel, got %v", c)
	}
	if c := NewColor(255, math.Inf(1), 0); c != nil {
		t.Errorf("expected nil color for Inf channel, got %v", c)
	}
	if c := NewColor(255, 0); c != nil {
		t.Errorf("expected nil color for wrong arity, got %v", c)
	}
	if c := NewColor(); c != nil {
		t.Errorf("expected nil color for empty input, got %v", c)
	}
	c := NewColor(255, 128, 0)
	if c == nil {
		t.Error("expected valid color")
		return
	}
	if c[0] != 255 || c[1] != 128 || c[2] != 0 {
		t.Errorf("incorrect channels: %v", c)
	}
}

func TestColorValid(t *testing.T) {
	var nilColor *Color
	if nilColor.Valid() {
		t.Error("nil color must not be valid")
	}
	if (&Color{0, 0, 256}).Valid() {
		t.Error("channel above 255 must not be valid")
	}
	if (&Color{-1, 0, 0}).Valid() {
		t.Error("negative channel must not be valid")
	}
	if !(&Color{0, 127.5, 255}).Valid() {
		t.Error("in-range color must be valid")
	}
}

func TestColorsSimilar(t *testing.T) {
	red := &Color{255, 0, 0}
	almostRed := &Color{225, 30, 30}
	blue := &Color{0, 0, 255}

	// Per-channel difference exactly at the tolerance
	if got := ColorsSimilar(red, almostRed, 30); got != SimilarityYes {
		t.Errorf("expected yes, got %v", got)
	}
	if got := ColorsSimilar(red, &Color{224, 0, 0}, 30); got != SimilarityNo {
		t.Errorf("expected no for difference 31, got %v", got)
	}
	if got := ColorsSimilar(red, blue, 30); got != SimilarityNo {
		t.Errorf("expected no, got %v", got)
	}
	if got := ColorsSimilar(red, nil, 30); got != SimilarityUnknown {
		t.Errorf("expected unknown for absent color, got %v", got)
	}
	if got := ColorsSimilar(nil, nil, 30); got != SimilarityUnknown {
		t.Errorf("expected unknown for two absent colors, got %v", got)
	}
	if got := ColorsSimilar(red, &Color{300, 0, 0}, 30); got != SimilarityUnknown {
		t.Errorf("expected unknown for out-of-range color, got %v", got)
	}
}

func TestColorsSimilarSymmetric(t *testing.T) {
	colors := []*Color{
		{255, 0, 0},
		{225, 30, 30},
		{0, 0, 255},
		{300, 0, 0},
		nil,
	}
	for _, c1 := range colors {
		for _, c2 := range colors {
			if ColorsSimilar(c1, c2, 30) != ColorsSimilar(c2, c1, 30) {
				t.Errorf("similarity not symmetric for %v and %v", c1, c2)
			}
		}
	}
}
