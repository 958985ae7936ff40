package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"gocv.io/x/gocv"

	"github.com/AiwenorAnga/lxns/internal/config"
	"github.com/AiwenorAnga/lxns/internal/detect"
	"github.com/AiwenorAnga/lxns/internal/logger"
	"github.com/AiwenorAnga/lxns/internal/store"
	"github.com/AiwenorAnga/lxns/internal/track"
)

var (
	trackConfigPath string
	trackVideoPath  string
	trackDataDir    string
	trackVerbose    bool
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track shapes in a video and persist their trajectories",
	Long:  "track consolidates per-frame circle and square detections into tracked objects and writes one trajectory record per object.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(trackConfigPath)
		if err != nil {
			return err
		}
		if trackVideoPath != "" {
			cfg.Video = trackVideoPath
		}
		if trackDataDir != "" {
			cfg.DataDir = trackDataDir
		}
		level := slog.LevelInfo
		if trackVerbose {
			level = slog.LevelDebug
		}
		return runTracking(cfg, logger.New(level))
	},
}

func init() {
	trackCmd.Flags().StringVar(&trackConfigPath, "config", "", "Path to YAML configuration")
	trackCmd.Flags().StringVar(&trackVideoPath, "video", "", "Video file to track (overrides config)")
	trackCmd.Flags().StringVar(&trackDataDir, "data-dir", "", "Directory for trajectory records (overrides config)")
	trackCmd.Flags().BoolVarP(&trackVerbose, "verbose", "v", false, "Log every merged observation")
}

// logReporter adapts the logger to the tracker's event sink.
type logReporter struct {
	log logger.Logger
}

func (r logReporter) EntityCreated(label string, frame int) {
	r.log.Info("new entity",
		logger.String("entity", label),
		logger.Int("frame", frame))
}

func (r logReporter) EntityMerged(label string, frame int, distance float64) {
	r.log.Debug("merged observation",
		logger.String("entity", label),
		logger.Int("frame", frame),
		logger.Float64("distance", distance))
}

func runTracking(cfg *config.Config, log logger.Logger) error {
	video, err := detect.OpenVideo(cfg.Video)
	if err != nil {
		return err
	}
	defer video.Close()

	st := store.New(cfg.DataDir)
	if err := st.Clear(); err != nil {
		return err
	}

	tracker := track.NewTracker(video.Height(),
		track.WithParams(track.Params{
			ColorTolerance:   cfg.ColorTolerance,
			CircleDistance:   cfg.CircleDistance,
			CircleRadiusDiff: cfg.CircleRadiusDiff,
			SquareDistance:   cfg.SquareDistance,
			SquareSizeDiff:   cfg.SquareSizeDiff,
			MaxFrameGap:      cfg.MaxFrameGap,
		}),
		track.WithReporter(logReporter{log: log}),
	)
	detector := detect.NewDetector()

	frame := gocv.NewMat()
	defer frame.Close()
	gray := gocv.NewMat()
	defer gray.Close()

	for i := 1; i <= cfg.MaxFrames; i++ {
		if !video.Read(&frame) {
			log.Warn("frame could not be read", logger.Int("frame", i))
			break
		}
		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
		tracker.IngestCircles(detector.Circles(frame, gray, i))
		tracker.IngestSquares(detector.Squares(frame, gray, i))
	}

	saved := st.SaveAll(tracker, func(label string, err error) {
		log.Error("record not saved", logger.String("entity", label), logger.Err(err))
	})
	log.Info("tracking completed",
		logger.Int("circles", len(tracker.Circles())),
		logger.Int("rectangles", len(tracker.Squares())),
		logger.Int("records", saved))
	return nil
}
