package storage

import (
	"math"
	"testing"

	"github.com/san-kum/trackball/internal/gesture"
	"github.com/san-kum/trackball/internal/trace"
)

func TestSaveListLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	path := gesture.Path{gesture.Line(100, 100, 500, 400, 30)}
	result := trace.Run("line", path, 800, 600)

	runID, err := store.Save(result)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].ID != runID {
		t.Errorf("expected id %s, got %s", runID, runs[0].ID)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Gesture != "line" || meta.Samples != 30 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Width != 800 || meta.Height != 600 {
		t.Errorf("screen mismatch: %+v", meta)
	}
}

func TestLoadStepsRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	path := gesture.Path{gesture.Line(200, 300, 600, 300, 25)}
	result := trace.Run("line", path, 800, 600)

	runID, err := store.Save(result)
	if err != nil {
		t.Fatal(err)
	}

	steps, err := store.LoadSteps(runID)
	if err != nil {
		t.Fatalf("load steps: %v", err)
	}
	if len(steps) != len(result.Steps) {
		t.Fatalf("expected %d steps, got %d", len(result.Steps), len(steps))
	}

	for i, step := range steps {
		orig := result.Steps[i]
		for j := 0; j < 4; j++ {
			if math.Abs(step.Rot[j]-orig.Rot[j]) > 1e-15 {
				t.Fatalf("step %d: quaternion component %d lost precision: %v vs %v",
					i, j, step.Rot, orig.Rot)
			}
		}
	}
}

func TestListEmpty(t *testing.T) {
	store := New(t.TempDir() + "/never-created")

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("absent_0"); err == nil {
		t.Error("expected error for missing run")
	}
}
