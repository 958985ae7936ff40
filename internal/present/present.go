// Package present renders persisted trajectory records as an HTML
// line chart, one series per record file.
package present

import (
	"os"
	"path/filepath"
	"sort"

	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"github.com/AiwenorAnga/lxns/internal/store"
	"github.com/AiwenorAnga/lxns/internal/track"
)

// Options control chart rendering.
type Options struct {
	Title string
	// Smooth adds a Kalman-smoothed overlay series per trajectory.
	Smooth bool
}

// Axes never shrink below this so short paths stay readable.
const minAxisExtent = 500

// Discover lists record files under dir, circles first, each kind in
// name order.
func Discover(dir string) ([]string, error) {
	var paths []string
	for _, pattern := range []string{"circle_data_*.json", "rectangle_data_*.json"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, errors.Wrapf(err, "can't scan %s", dir)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

// Load reads the given record files. Files that are missing or
// malformed are skipped; their errors are returned alongside the
// loaded records so the caller can report them.
func Load(paths []string) ([]store.Record, []error) {
	var records []store.Record
	var errs []error
	for _, path := range paths {
		rec, err := store.Load(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(rec.Data) == 0 {
			errs = append(errs, errors.Errorf("record %s has no trajectory", path))
			continue
		}
		if rec.Filename == "" {
			rec.Filename = filepath.Base(path)
		}
		records = append(records, rec)
	}
	return records, errs
}

// Chart builds a line chart of object paths. Each record becomes one
// series of (x, y) points in trajectory order.
func Chart(records []store.Record, o Options) *charts.Line {
	title := o.Title
	if title == "" {
		title = "Object paths"
	}

	maxX, maxY := minAxisExtent, minAxisExtent
	for _, rec := range records {
		for _, pt := range rec.Data {
			if pt.X > maxX {
				maxX = pt.X
			}
			if pt.Y > maxY {
				maxY = pt.Y
			}
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "X Position", Min: 0, Max: maxX}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Y Position", Min: 0, Max: maxY}),
	)

	for _, rec := range records {
		data := make([]opts.LineData, 0, len(rec.Data))
		for _, pt := range rec.Data {
			data = append(data, opts.LineData{Value: []interface{}{pt.X, pt.Y}})
		}
		line.AddSeries(rec.Filename, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
		if o.Smooth && len(rec.Data) > 1 {
			line.AddSeries(rec.Filename+" (smoothed)", smoothSeries(rec.Data),
				charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		}
	}
	return line
}

// smoothSeries runs a constant-velocity Kalman filter over the stored
// points and returns the filtered path.
func smoothSeries(points []track.TrajectoryPoint) []opts.LineData {
	ux := 1.0
	uy := 1.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	kf := kalman_filter.NewKalman2D(1.0, ux, uy, stdDevA, stdDevMx, stdDevMy,
		kalman_filter.WithState2D(float64(points[0].X), float64(points[0].Y)))

	data := make([]opts.LineData, 0, len(points))
	data = append(data, opts.LineData{Value: []interface{}{points[0].X, points[0].Y}})
	for _, pt := range points[1:] {
		kf.Predict()
		if err := kf.Update(float64(pt.X), float64(pt.Y)); err != nil {
			// Degenerate update; fall back to the raw point
			data = append(data, opts.LineData{Value: []interface{}{pt.X, pt.Y}})
			continue
		}
		x, y := kf.GetState()
		data = append(data, opts.LineData{Value: []interface{}{x, y}})
	}
	return data
}

// Render writes the chart HTML to path.
func Render(line *charts.Line, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "can't create chart file %s", path)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		return errors.Wrap(err, "can't render chart")
	}
	return nil
}
