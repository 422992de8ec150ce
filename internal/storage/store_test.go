package storage

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/san-kum/ballsim/internal/sim"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		Frames: []sim.Frame{
			{Time: 0, Bodies: []sim.BodyState{
				{ID: 1, X: 0, Y: 50, VX: 1, VY: 0},
				{ID: 2, X: 10, Y: 50, VX: -1, VY: 0, Fixed: true},
			}},
			{Time: 0.01, Bodies: []sim.BodyState{
				{ID: 1, X: 0.01, Y: 49.9, VX: 1, VY: -0.1},
				{ID: 2, X: 10, Y: 50, VX: -1, VY: 0, Fixed: true},
			}},
		},
		Times:      []float64{0, 0.01},
		Metrics:    map[string]float64{"kinetic_energy": 1.5},
		Despawned:  3,
		StepsTaken: 1,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := sim.Config{Dt: 0.01, Duration: 1.0, Seed: 42}
	runID, err := st.Save(cfg, 100, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Seed != 42 {
		t.Errorf("seed = %d, want 42", meta.Seed)
	}
	if meta.Bodies != 100 || meta.Despawned != 3 {
		t.Errorf("counts wrong: %+v", meta)
	}
	if meta.Metrics["kinetic_energy"] != 1.5 {
		t.Errorf("metrics lost: %v", meta.Metrics)
	}
}

func TestLoadFrames(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(sim.Config{Dt: 0.01, Duration: 1}, 2, sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if len(frames[0].Bodies) != 2 {
		t.Errorf("frame 0 has %d bodies, want 2", len(frames[0].Bodies))
	}
	b := frames[1].Bodies[0]
	if b.ID != 1 || b.Y != 49.9 || b.VY != -0.1 {
		t.Errorf("frame 1 body 0 = %+v", b)
	}
	if !frames[0].Bodies[1].Fixed {
		t.Error("fixed flag lost on round trip")
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on empty store: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save(sim.Config{Dt: 0.01, Duration: 1}, 2, sampleResult()); err != nil {
		t.Fatal(err)
	}
	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	runID, err := st.Save(sim.Config{Dt: 0.01, Duration: 1, Seed: 7}, 2, sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(runID, json.NewEncoder(&buf)); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc struct {
		Meta struct {
			Seed int64 `json:"seed"`
		} `json:"meta"`
		Frames []sim.Frame `json:"frames"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("export not valid json: %v", err)
	}
	if doc.Meta.Seed != 7 || len(doc.Frames) != 2 {
		t.Errorf("export content wrong: seed=%d frames=%d", doc.Meta.Seed, len(doc.Frames))
	}
}
