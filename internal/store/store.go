// Package store persists tracked entities as JSON trajectory records,
// one addressable file per entity, and reads them back for the
// presenter.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/AiwenorAnga/lxns/internal/track"
)

// Record is one persisted entity: its static shape parameters, its
// color, and the full ordered trajectory. Circles carry Radius,
// squares carry Width and Height.
type Record struct {
	Filename string                  `json:"filename"`
	Radius   int                     `json:"radius,omitempty"`
	Width    int                     `json:"width,omitempty"`
	Height   int                     `json:"height,omitempty"`
	Color    *track.Color            `json:"color"`
	Data     []track.TrajectoryPoint `json:"data"`
}

// Store writes and reads trajectory records under a single directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created lazily
// on the first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Clear removes record files left over from a previous run. Other
// files in the directory are kept. A missing directory is fine.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "can't read data directory %s", s.dir)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "circle_data_") && !strings.HasPrefix(name, "rectangle_data_") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return errors.Wrapf(err, "can't remove stale record %s", name)
		}
	}
	return nil
}

// SaveCircle persists one tracked circle as circle_data_<seq>.json.
func (s *Store) SaveCircle(c *track.TrackedCircle) error {
	rec := Record{
		Filename: fmt.Sprintf("circle_data_%d.json", c.Seq()),
		Radius:   c.Circle().R,
		Color:    c.CurrentColor(),
		Data:     c.Trajectory(),
	}
	return s.write(rec)
}

// SaveSquare persists one tracked square as rectangle_data_<seq>.json.
func (s *Store) SaveSquare(sq *track.TrackedSquare) error {
	box := sq.Box()
	rec := Record{
		Filename: fmt.Sprintf("rectangle_data_%d.json", sq.Seq()),
		Width:    box.W,
		Height:   box.H,
		Color:    sq.CurrentColor(),
		Data:     sq.Trajectory(),
	}
	return s.write(rec)
}

// SaveAll persists every tracked entity. A failed write is passed to
// failed and does not stop the remaining writes. It returns the number
// of records written.
func (s *Store) SaveAll(t *track.Tracker, failed func(label string, err error)) int {
	saved := 0
	for _, c := range t.Circles() {
		if err := s.SaveCircle(c); err != nil {
			failed(c.Label(), err)
			continue
		}
		saved++
	}
	for _, sq := range t.Squares() {
		if err := s.SaveSquare(sq); err != nil {
			failed(sq.Label(), err)
			continue
		}
		saved++
	}
	return saved
}

func (s *Store) write(rec Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "can't create data directory %s", s.dir)
	}
	payload, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return errors.Wrapf(err, "can't encode record %s", rec.Filename)
	}
	path := filepath.Join(s.dir, rec.Filename)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Wrapf(err, "can't write record %s", rec.Filename)
	}
	return nil
}

// Load reads one record file from an arbitrary path.
func Load(path string) (Record, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Record{}, errors.Wrapf(err, "can't read record %s", path)
	}
	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return Record{}, errors.Wrapf(err, "can't decode record %s", path)
	}
	return rec, nil
}
