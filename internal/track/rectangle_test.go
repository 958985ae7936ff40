package track

import "testing"

func TestTrackedSquareMerge(t *testing.T) {
	red := NewColor(255, 0, 0)
	entity := NewTrackedSquare(SquareObservation{
		Frame: 1,
		Box:   Box{X: 10, Y: 20, W: 100, H: 100},
		Color: red,
	}, 1, videoHeight)

	obs := SquareObservation{
		Frame: 2,
		Box:   Box{X: 15, Y: 25, W: 100, H: 100},
		Color: red,
	}
	if !entity.TryMerge(obs, DefaultParams(), videoHeight) {
		t.Error("expected merge to succeed")
		return
	}
	if entity.CurrentFrame() != 2 {
		t.Errorf("incorrect frame: %d, expected 2", entity.CurrentFrame())
	}
	if len(entity.Trajectory()) != 2 {
		t.Errorf("incorrect trajectory length: %d, expected 2", len(entity.Trajectory()))
	}
	if entity.Box() != obs.Box {
		t.Errorf("current geometry %v does not match observation %v", entity.Box(), obs.Box)
	}

	pt := entity.Trajectory()[1]
	if pt.X != 15 || pt.Y != videoHeight-25 {
		t.Errorf("incorrect stored position: (%d, %d)", pt.X, pt.Y)
	}
	if pt.Width != 100 || pt.Height != 100 {
		t.Errorf("incorrect stored size: %dx%d", pt.Width, pt.Height)
	}
	if pt.Distance == nil {
		t.Error("merged point must carry the merge distance")
	}
}

func TestTrackedSquareRejectsDifferentColor(t *testing.T) {
	red := NewColor(255, 0, 0)
	blue := NewColor(0, 0, 255)
	entity := NewTrackedSquare(SquareObservation{
		Frame: 1,
		Box:   Box{X: 10, Y: 20, W: 100, H: 100},
		Color: red,
	}, 1, videoHeight)

	obs := SquareObservation{
		Frame: 2,
		Box:   Box{X: 15, Y: 25, W: 100, H: 100},
		Color: blue,
	}
	if entity.TryMerge(obs, DefaultParams(), videoHeight) {
		t.Error("expected merge to fail for a very different color")
	}
	if entity.CurrentFrame() != 1 {
		t.Errorf("entity frame changed to %d", entity.CurrentFrame())
	}
	if (entity.Box() != Box{X: 10, Y: 20, W: 100, H: 100}) {
		t.Errorf("entity geometry changed to %v", entity.Box())
	}
	if len(entity.Trajectory()) != 1 {
		t.Errorf("trajectory grew to %d entries", len(entity.Trajectory()))
	}
}

func TestTrackedSquareRejectsSizeDrift(t *testing.T) {
	red := NewColor(255, 0, 0)
	entity := NewTrackedSquare(SquareObservation{
		Frame: 1,
		Box:   Box{X: 10, Y: 20, W: 100, H: 100},
		Color: red,
	}, 1, videoHeight)

	obs := SquareObservation{
		Frame: 2,
		Box:   Box{X: 15, Y: 25, W: 106, H: 106},
		Color: red,
	}
	if entity.TryMerge(obs, DefaultParams(), videoHeight) {
		t.Error("expected merge to fail for size difference 6")
	}
}

func TestTrackedSquareFrameGapBoundary(t *testing.T) {
	red := NewColor(255, 0, 0)
	seed := SquareObservation{
		Frame: 1,
		Box:   Box{X: 10, Y: 20, W: 100, H: 100},
		Color: red,
	}

	entity := NewTrackedSquare(seed, 1, videoHeight)
	within := SquareObservation{
		Frame: 21,
		Box:   Box{X: 10, Y: 20, W: 100, H: 100},
		Color: red,
	}
	if !entity.TryMerge(within, DefaultParams(), videoHeight) {
		t.Error("expected merge to succeed for gap of 20")
	}

	entity = NewTrackedSquare(seed, 1, videoHeight)
	outside := SquareObservation{
		Frame: 22,
		Box:   Box{X: 10, Y: 20, W: 100, H: 100},
		Color: red,
	}
	if entity.TryMerge(outside, DefaultParams(), videoHeight) {
		t.Error("expected merge to fail for gap of 21")
	}
}
