package track

import "github.com/google/uuid"

// Params are the matching thresholds shared by both entity kinds.
type Params struct {
	// Per-channel tolerance for color similarity
	ColorTolerance float64
	// Max distance between circle centers
	CircleDistance float64
	// Max difference between circle radii
	CircleRadiusDiff float64
	// Max distance between box centers
	SquareDistance float64
	// Max difference between box extents
	SquareSizeDiff float64
	// Max frame gap before a candidate is treated as a different object
	MaxFrameGap int
}

// DefaultParams returns the thresholds the detection pipeline was tuned with.
func DefaultParams() Params {
	return Params{
		ColorTolerance:   30,
		CircleDistance:   50,
		CircleRadiusDiff: 17,
		SquareDistance:   40,
		SquareSizeDiff:   5,
		MaxFrameGap:      20,
	}
}

// TrajectoryPoint is one merged observation in an entity's history.
// Y is stored flipped (video height minus detector y) so trajectories
// read bottom-up like a plot. Distance is nil on the seeding point.
type TrajectoryPoint struct {
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Frame    int      `json:"frame"`
	Radius   int      `json:"radius,omitempty"`
	Width    int      `json:"width,omitempty"`
	Height   int      `json:"height,omitempty"`
	Color    *Color   `json:"color"`
	Distance *float64 `json:"distance,omitempty"`
}

// Entity is the capability shared by tracked shapes: a stable identity
// plus an append-only, frame-monotonic trajectory fed by TryMerge.
// O is the observation type the entity absorbs.
type Entity[O any] interface {
	GetID() uuid.UUID
	// Seq is the 1-based position within the entity's kind, used to
	// name persisted records.
	Seq() int
	Label() string
	CurrentFrame() int
	CurrentColor() *Color

	// Trajectory returns the entity's history. Be careful: this is not
	// a copy of the trajectory, but a reference to it.
	Trajectory() []TrajectoryPoint

	// TryMerge decides whether obs continues this entity. On success
	// the current fields take the observation's values and a trajectory
	// point is appended; on failure the entity is left untouched.
	TryMerge(obs O, p Params, videoHeight int) bool
}
