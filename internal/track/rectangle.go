package track

import (
	"fmt"

	"github.com/google/uuid"
)

// TrackedSquare is the persistent identity of one square object
// observed across frames. It implements Entity[SquareObservation].
// Only square boxes reach it; the tracker drops unequal extents
// before matching.
type TrackedSquare struct {
	id         uuid.UUID
	seq        int
	box        Box
	color      *Color
	frame      int
	trajectory []TrajectoryPoint
}

// NewTrackedSquare creates an entity seeded with obs. The seeding
// trajectory point carries no merge distance.
func NewTrackedSquare(obs SquareObservation, seq, videoHeight int) *TrackedSquare {
	s := &TrackedSquare{
		id:    uuid.New(),
		seq:   seq,
		box:   obs.Box,
		color: obs.Color,
		frame: obs.Frame,
	}
	s.trajectory = append(s.trajectory, TrajectoryPoint{
		X:      obs.Box.X,
		Y:      videoHeight - obs.Box.Y,
		Frame:  obs.Frame,
		Width:  obs.Box.W,
		Height: obs.Box.H,
		Color:  obs.Color,
	})
	return s
}

// GetID returns the entity's identifier
func (s *TrackedSquare) GetID() uuid.UUID {
	return s.id
}

// Seq returns the entity's 1-based registration position
func (s *TrackedSquare) Seq() int {
	return s.seq
}

// Label returns a short human-readable name for event reporting
func (s *TrackedSquare) Label() string {
	return fmt.Sprintf("rectangle %d", s.seq)
}

// CurrentFrame returns the frame of the last absorbed observation
func (s *TrackedSquare) CurrentFrame() int {
	return s.frame
}

// CurrentColor returns the entity's current color
func (s *TrackedSquare) CurrentColor() *Color {
	return s.color
}

// Box returns the entity's current geometry
func (s *TrackedSquare) Box() Box {
	return s.box
}

// Trajectory returns the entity's history. Be careful: this is not a
// copy of the trajectory, but a reference to it.
func (s *TrackedSquare) Trajectory() []TrajectoryPoint {
	return s.trajectory
}

// TryMerge decides whether obs continues this square. Same gate order
// as TrackedCircle.TryMerge with box geometry: center distance and
// max extent difference.
func (s *TrackedSquare) TryMerge(obs SquareObservation, p Params, videoHeight int) bool {
	if obs.Frame <= s.frame {
		return false
	}
	if obs.Frame-s.frame > p.MaxFrameGap {
		return false
	}
	dist, ok := BoxesClose(s.box, obs.Box, p.SquareDistance, p.SquareSizeDiff)
	if !ok {
		return false
	}
	if ColorsSimilar(s.color, obs.Color, p.ColorTolerance) != SimilarityYes {
		return false
	}
	s.box = obs.Box
	s.color = obs.Color
	s.frame = obs.Frame
	s.trajectory = append(s.trajectory, TrajectoryPoint{
		X:        obs.Box.X,
		Y:        videoHeight - obs.Box.Y,
		Frame:    obs.Frame,
		Width:    obs.Box.W,
		Height:   obs.Box.H,
		Color:    obs.Color,
		Distance: &dist,
	})
	return true
}
