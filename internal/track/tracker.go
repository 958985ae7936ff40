package track

// Reporter receives tracking lifecycle events. The tracker calls it
// inline on the ingestion path, so implementations must be cheap.
type Reporter interface {
	EntityCreated(label string, frame int)
	EntityMerged(label string, frame int, distance float64)
}

type nopReporter struct{}

func (nopReporter) EntityCreated(string, int)         {}
func (nopReporter) EntityMerged(string, int, float64) {}

// registry is the per-kind entity collection. Registration order is
// match order: the first entity that accepts an observation absorbs
// it, even if a later entity would also accept.
type registry[O any, E Entity[O]] struct {
	entities []E
}

// ingest runs the first-match scan. It returns the absorbing entity
// and whether it was newly created.
func (r *registry[O, E]) ingest(obs O, p Params, videoHeight int, create func(seq int) E) (E, bool) {
	for _, e := range r.entities {
		if e.TryMerge(obs, p, videoHeight) {
			return e, false
		}
	}
	e := create(len(r.entities) + 1)
	r.entities = append(r.entities, e)
	return e, true
}

// Tracker consolidates per-frame observations into tracked entities,
// one registry per shape kind. Circles and squares never cross-match.
// Not safe for concurrent use; observations must arrive in frame order
// or the chronology gate rejects them.
type Tracker struct {
	params      Params
	videoHeight int
	reporter    Reporter
	circles     registry[CircleObservation, *TrackedCircle]
	squares     registry[SquareObservation, *TrackedSquare]
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithParams overrides the default matching thresholds.
func WithParams(p Params) Option {
	return func(t *Tracker) { t.params = p }
}

// WithReporter routes tracking events to rep.
func WithReporter(rep Reporter) Option {
	return func(t *Tracker) { t.reporter = rep }
}

// NewTracker creates a tracker for a video of the given height. The
// height fixes the y-flip applied to stored trajectory points.
func NewTracker(videoHeight int, opts ...Option) *Tracker {
	t := &Tracker{
		params:      DefaultParams(),
		videoHeight: videoHeight,
		reporter:    nopReporter{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IngestCircles feeds one frame's circle observations through the
// circle registry.
func (t *Tracker) IngestCircles(observations []CircleObservation) {
	for _, obs := range observations {
		obs := obs
		e, created := t.circles.ingest(obs, t.params, t.videoHeight, func(seq int) *TrackedCircle {
			return NewTrackedCircle(obs, seq, t.videoHeight)
		})
		t.report(e, created, obs.Frame)
	}
}

// IngestSquares feeds one frame's square observations through the
// square registry. Candidates whose width and height differ are
// discarded before matching; the pipeline tracks squares only.
func (t *Tracker) IngestSquares(observations []SquareObservation) {
	for _, obs := range observations {
		if obs.Box.W != obs.Box.H {
			continue
		}
		obs := obs
		e, created := t.squares.ingest(obs, t.params, t.videoHeight, func(seq int) *TrackedSquare {
			return NewTrackedSquare(obs, seq, t.videoHeight)
		})
		t.report(e, created, obs.Frame)
	}
}

// Circles returns tracked circles in registration order.
func (t *Tracker) Circles() []*TrackedCircle {
	return t.circles.entities
}

// Squares returns tracked squares in registration order.
func (t *Tracker) Squares() []*TrackedSquare {
	return t.squares.entities
}

type reportable interface {
	Label() string
	Trajectory() []TrajectoryPoint
}

func (t *Tracker) report(e reportable, created bool, frame int) {
	if created {
		t.reporter.EntityCreated(e.Label(), frame)
		return
	}
	t.reporter.EntityMerged(e.Label(), frame, lastDistance(e.Trajectory()))
}

func lastDistance(points []TrajectoryPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	if d := points[len(points)-1].Distance; d != nil {
		return *d
	}
	return 0
}
