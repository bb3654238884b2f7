package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/yangxi1209/pele/internal/optimize"
)

// Store persists minimization runs as one directory per run: metadata.json
// with the outcome and trace.csv with the per-iteration history.
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
	ID          string    `json:"id"`
	Potential   string    `json:"potential"`
	NDOF        int       `json:"ndof"`
	Timestamp   time.Time `json:"timestamp"`
	DtStart     float64   `json:"dt_start"`
	Tol         float64   `json:"tol"`
	Iterations  int       `json:"iterations"`
	Converged   bool      `json:"converged"`
	FinalEnergy float64   `json:"final_energy"`
	RMSGrad     float64   `json:"rms_grad"`
}

func (s *Store) Save(meta RunMetadata, trace []optimize.Stats) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Potential, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

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

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"iter", "energy", "rms_grad", "dt", "alpha"}); err != nil {
		return "", err
	}
	for _, st := range trace {
		row := []string{
			strconv.Itoa(st.Iter),
			strconv.FormatFloat(st.Energy, 'g', 17, 64),
			strconv.FormatFloat(st.RMSGrad, 'g', 17, 64),
			strconv.FormatFloat(st.Dt, 'g', 17, 64),
			strconv.FormatFloat(st.Alpha, 'g', 17, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
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

// LoadTrace reads trace.csv back into iteration snapshots.
func (s *Store) LoadTrace(runID string) ([]optimize.Stats, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []optimize.Stats{}, nil
	}

	trace := make([]optimize.Stats, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 5 {
			continue
		}
		iter, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		vals := make([]float64, 4)
		ok := true
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		trace = append(trace, optimize.Stats{
			Iter: iter, Energy: vals[0], RMSGrad: vals[1], Dt: vals[2], Alpha: vals[3],
		})
	}
	return trace, nil
}
