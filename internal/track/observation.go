package track

// CircleObservation is one detected circle in one frame. Observations
// are immutable; entities copy what they need on merge.
type CircleObservation struct {
	Frame  int
	Circle Circle
	Color  *Color
}

// SquareObservation is one detected square candidate in one frame.
// The box is kept as delivered by the detector; the tracker discards
// candidates whose width and height differ.
type SquareObservation struct {
	Frame int
	Box   Box
	Color *Color
}
