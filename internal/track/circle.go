package track

import (
	"fmt"

	"github.com/google/uuid"
)

// TrackedCircle is the persistent identity of one circular object
// observed across frames. It implements Entity[CircleObservation].
type TrackedCircle struct {
	id         uuid.UUID
	seq        int
	circle     Circle
	color      *Color
	frame      int
	trajectory []TrajectoryPoint
}

// NewTrackedCircle creates an entity seeded with obs. The seeding
// trajectory point carries no merge distance.
func NewTrackedCircle(obs CircleObservation, seq, videoHeight int) *TrackedCircle {
	c := &TrackedCircle{
		id:     uuid.New(),
		seq:    seq,
		circle: obs.Circle,
		color:  obs.Color,
		frame:  obs.Frame,
	}
	c.trajectory = append(c.trajectory, TrajectoryPoint{
		X:      obs.Circle.X,
		Y:      videoHeight - obs.Circle.Y,
		Frame:  obs.Frame,
		Radius: obs.Circle.R,
		Color:  obs.Color,
	})
	return c
}

// GetID returns the entity's identifier
func (c *TrackedCircle) GetID() uuid.UUID {
	return c.id
}

// Seq returns the entity's 1-based registration position
func (c *TrackedCircle) Seq() int {
	return c.seq
}

// Label returns a short human-readable name for event reporting
func (c *TrackedCircle) Label() string {
	return fmt.Sprintf("circle %d", c.seq)
}

// CurrentFrame returns the frame of the last absorbed observation
func (c *TrackedCircle) CurrentFrame() int {
	return c.frame
}

// CurrentColor returns the entity's current color
func (c *TrackedCircle) CurrentColor() *Color {
	return c.color
}

// Circle returns the entity's current geometry
func (c *TrackedCircle) Circle() Circle {
	return c.circle
}

// Trajectory returns the entity's history. Be careful: this is not a
// copy of the trajectory, but a reference to it.
func (c *TrackedCircle) Trajectory() []TrajectoryPoint {
	return c.trajectory
}

// TryMerge decides whether obs continues this circle. Gates run in
// order: chronology (frames only advance), tracking window, geometry,
// color. Anything but a definite color match rejects. On success the
// current fields take the observation's values and a trajectory point
// is appended with the flipped y and the computed distance.
func (c *TrackedCircle) TryMerge(obs CircleObservation, p Params, videoHeight int) bool {
	if obs.Frame <= c.frame {
		return false
	}
	if obs.Frame-c.frame > p.MaxFrameGap {
		return false
	}
	dist, ok := CirclesClose(c.circle, obs.Circle, p.CircleDistance, p.CircleRadiusDiff)
	if !ok {
		return false
	}
	if ColorsSimilar(c.color, obs.Color, p.ColorTolerance) != SimilarityYes {
		return false
	}
	c.circle = obs.Circle
	c.color = obs.Color
	c.frame = obs.Frame
	c.trajectory = append(c.trajectory, TrajectoryPoint{
		X:        obs.Circle.X,
		Y:        videoHeight - obs.Circle.Y,
		Frame:    obs.Frame,
		Radius:   obs.Circle.R,
		Color:    obs.Color,
		Distance: &dist,
	})
	return true
}
