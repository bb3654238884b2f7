package storage

import (
	"testing"

	"github.com/yangxi1209/pele/internal/optimize"
)

func testMeta() RunMetadata {
	return RunMetadata{
		Potential:   "gauss",
		NDOF:        4,
		DtStart:     0.1,
		Tol:         1e-4,
		Iterations:  42,
		Converged:   true,
		FinalEnergy: -1.0,
		RMSGrad:     5e-5,
	}
}

func testTrace() []optimize.Stats {
	return []optimize.Stats{
		{Iter: 0, Energy: -0.1353, RMSGrad: 0.13, Dt: 0.1, Alpha: 0.1},
		{Iter: 1, Energy: -0.2, RMSGrad: 0.1, Dt: 0.1, Alpha: 0.1},
		{Iter: 2, Energy: -0.95, RMSGrad: 0.01, Dt: 0.11, Alpha: 0.099},
	}
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testMeta(), testTrace())
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
	if meta.ID != runID {
		t.Errorf("expected id %s, got %s", runID, meta.ID)
	}
	if !meta.Converged || meta.Iterations != 42 {
		t.Errorf("metadata did not round-trip: %+v", meta)
	}
	if meta.FinalEnergy != -1.0 {
		t.Errorf("expected final energy -1, got %f", meta.FinalEnergy)
	}
}

func TestLoadTrace(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	want := testTrace()
	runID, err := st.Save(testMeta(), want)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save(testMeta(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/pele-test-dir")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d", len(runs))
	}
}
