// Package storage persists trace runs as per-run directories with a
// JSON metadata file and a CSV rotation log.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/trackball/internal/trace"
)

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
	ID         string    `json:"id"`
	Gesture    string    `json:"gesture"`
	Timestamp  time.Time `json:"timestamp"`
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Samples    int       `json:"samples"`
	TotalAngle float64   `json:"total_angle"`
	MaxStep    float64   `json:"max_step"`
	NormDrift  float64   `json:"norm_drift"`
}

func (s *Store) Save(result *trace.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", result.Gesture, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Gesture:    result.Gesture,
		Timestamp:  time.Now(),
		Width:      result.Width,
		Height:     result.Height,
		Samples:    len(result.Steps),
		TotalAngle: result.TotalAngle,
		MaxStep:    result.MaxStep,
		NormDrift:  result.NormDrift,
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

	csvFile, err := os.Create(filepath.Join(runDir, "rotations.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"step", "x", "y", "qx", "qy", "qz", "qw", "angle"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, step := range result.Steps {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(step.X, 'f', 6, 64),
			strconv.FormatFloat(step.Y, 'f', 6, 64),
			strconv.FormatFloat(step.Rot[0], 'g', 17, 64),
			strconv.FormatFloat(step.Rot[1], 'g', 17, 64),
			strconv.FormatFloat(step.Rot[2], 'g', 17, 64),
			strconv.FormatFloat(step.Rot[3], 'g', 17, 64),
			strconv.FormatFloat(step.Angle, 'g', 17, 64),
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

// LoadSteps reads the rotation log of a run back into trace steps.
func (s *Store) LoadSteps(runID string) ([]trace.Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "rotations.csv"))
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
		return []trace.Step{}, nil
	}

	steps := make([]trace.Step, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 8 {
			continue
		}

		var step trace.Step
		fields := []*float64{
			&step.X, &step.Y,
			&step.Rot[0], &step.Rot[1], &step.Rot[2], &step.Rot[3],
			&step.Angle,
		}
		ok := true
		for i, dst := range fields {
			val, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				ok = false
				break
			}
			*dst = val
		}
		if !ok {
			continue
		}
		steps = append(steps, step)
	}

	return steps, nil
}
