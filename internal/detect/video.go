package detect

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Video supplies frames sequentially from a video file.
type Video struct {
	capture *gocv.VideoCapture
	width   int
	height  int
}

// OpenVideo opens the file and reads its dimensions. A video that
// cannot be opened is fatal to ingestion.
func OpenVideo(path string) (*Video, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open video %s", path)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, errors.Errorf("video %s is not readable", path)
	}
	return &Video{
		capture: capture,
		width:   int(capture.Get(gocv.VideoCaptureFrameWidth)),
		height:  int(capture.Get(gocv.VideoCaptureFrameHeight)),
	}, nil
}

// Width returns the frame width in pixels.
func (v *Video) Width() int {
	return v.width
}

// Height returns the frame height in pixels.
func (v *Video) Height() int {
	return v.height
}

// Read fills dst with the next frame. It returns false on end of
// stream and on decode failure; either way the caller stops ingesting
// and proceeds to persistence.
func (v *Video) Read(dst *gocv.Mat) bool {
	return v.capture.Read(dst) && !dst.Empty()
}

// Close releases the capture device.
func (v *Video) Close() error {
	return v.capture.Close()
}
