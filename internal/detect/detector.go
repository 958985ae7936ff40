// Package detect finds circle and square candidates in video frames
// and samples their colors. It is the only package that touches
// OpenCV.
package detect

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/AiwenorAnga/lxns/internal/track"
)

// Hough-gradient and contour parameters tuned for the task video.
const (
	houghDP        = 1.2
	houghMinDist   = 50
	houghParam1    = 50
	houghParam2    = 30
	houghMinRadius = 10
	houghMaxRadius = 100

	binaryThreshold = 10
	approxEpsilon   = 0.01
)

// Detector extracts shape candidates from frames.
type Detector struct{}

// NewDetector creates a Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Circles detects circles in the grayscale frame and samples each
// one's mean color from the color frame. Circles clipped by the frame
// edge are skipped so sampling stays in bounds.
func (d *Detector) Circles(frame, gray gocv.Mat, frameIdx int) []track.CircleObservation {
	circles := gocv.NewMat()
	defer circles.Close()
	gocv.HoughCirclesWithParams(gray, &circles, gocv.HoughGradient,
		houghDP, houghMinDist, houghParam1, houghParam2, houghMinRadius, houghMaxRadius)

	var out []track.CircleObservation
	for i := 0; i < circles.Cols(); i++ {
		v := circles.GetVecfAt(0, i)
		x, y, r := int(v[0]), int(v[1]), int(v[2])
		if y-r < 0 || y+r >= frame.Rows() || x-r < 0 || x+r >= frame.Cols() {
			continue
		}
		region := frame.Region(image.Rect(x-r, y-r, x+r, y+r))
		mean := region.Mean()
		region.Close()
		out = append(out, track.CircleObservation{
			Frame:  frameIdx,
			Circle: track.Circle{X: x, Y: y, R: r},
			// Frames are BGR; observations carry RGB
			Color: track.NewColor(mean.Val3, mean.Val2, mean.Val1),
		})
	}
	return out
}

// Squares detects four-vertex contours in the grayscale frame and
// samples the color at each bounding box center. Non-square boxes are
// still returned; the tracker applies the square filter.
func (d *Detector) Squares(frame, gray gocv.Mat, frameIdx int) []track.SquareObservation {
	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(gray, &thresh, binaryThreshold, 255, gocv.ThresholdBinary)

	contours := gocv.FindContours(thresh, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var out []track.SquareObservation
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		approx := gocv.ApproxPolyDP(contour, approxEpsilon*gocv.ArcLength(contour, true), true)
		if approx.Size() != 4 {
			approx.Close()
			continue
		}
		rect := gocv.BoundingRect(approx)
		approx.Close()
		cx := rect.Min.X + rect.Dx()/2
		cy := rect.Min.Y + rect.Dy()/2
		pixel := frame.GetVecbAt(cy, cx)
		out = append(out, track.SquareObservation{
			Frame: frameIdx,
			Box:   track.Box{X: rect.Min.X, Y: rect.Min.Y, W: rect.Dx(), H: rect.Dy()},
			Color: track.NewColor(float64(pixel[2]), float64(pixel[1]), float64(pixel[0])),
		})
	}
	return out
}
