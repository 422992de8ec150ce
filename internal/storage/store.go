package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/ballsim/internal/sim"
)

// Store persists runs under a base directory, one subdirectory per run with
// metadata.json and frames.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Bodies    int                `json:"bodies"`
	Despawned int                `json:"despawned"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cfg sim.Config, bodies int, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Seed:      cfg.Seed,
		Dt:        cfg.Dt,
		Duration:  cfg.Duration,
		Bodies:    bodies,
		Despawned: result.Despawned,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "id", "x", "y", "vx", "vy", "fixed"}); err != nil {
		return "", err
	}
	for _, frame := range result.Frames {
		for _, b := range frame.Bodies {
			row := []string{
				strconv.FormatFloat(frame.Time, 'f', 6, 64),
				strconv.FormatInt(b.ID, 10),
				strconv.FormatFloat(b.X, 'f', 6, 64),
				strconv.FormatFloat(b.Y, 'f', 6, 64),
				strconv.FormatFloat(b.VX, 'f', 6, 64),
				strconv.FormatFloat(b.VY, 'f', 6, 64),
				strconv.FormatBool(b.Fixed),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

// LoadFrames reads a run's per-body history back into frames, preserving
// recording order.
func (s *Store) LoadFrames(runID string) ([]sim.Frame, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, nil
	}

	var frames []sim.Frame
	for _, rec := range records[1:] {
		if len(rec) != 7 {
			return nil, fmt.Errorf("storage: malformed frame row %v", rec)
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, err
		}
		id, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return nil, err
		}
		vals := make([]float64, 4)
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(rec[2+i], 64)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		fixed, err := strconv.ParseBool(rec[6])
		if err != nil {
			return nil, err
		}

		if len(frames) == 0 || frames[len(frames)-1].Time != t {
			frames = append(frames, sim.Frame{Time: t})
		}
		last := &frames[len(frames)-1]
		last.Bodies = append(last.Bodies, sim.BodyState{
			ID: id, X: vals[0], Y: vals[1], VX: vals[2], VY: vals[3], Fixed: fixed,
		})
	}
	return frames, nil
}

// ExportJSON writes a run's metadata and frames as one JSON document.
func (s *Store) ExportJSON(runID string, out *json.Encoder) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}
	return out.Encode(struct {
		Meta   *RunMetadata `json:"meta"`
		Frames []sim.Frame  `json:"frames"`
	}{meta, frames})
}
