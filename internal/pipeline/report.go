package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type StepMetric struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
	DurationMS int64  `json:"duration_ms"`
	Sidecar    string `json:"sidecar,omitempty"`
	Error      string `json:"error,omitempty"`
}

type ReportSummary struct {
	StepCount int `json:"step_count"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// RunReport records per-step timing and outcomes for one pipeline run and
// is written as JSON into the output root.
type RunReport struct {
	Version     string        `json:"version"`
	RunID       string        `json:"run_id"`
	GeneratedAt string        `json:"generated_at"`
	OutputDir   string        `json:"output_dir"`
	Steps       []StepMetric  `json:"steps"`
	Summary     ReportSummary `json:"summary"`
}

type StepHandle struct {
	name    string
	path    string
	started time.Time
}

func NewRunReport(runID, outputDir string) *RunReport {
	return &RunReport{
		Version:     "v1",
		RunID:       runID,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		OutputDir:   outputDir,
		Steps:       []StepMetric{},
	}
}

func (r *RunReport) BeginStep(name, path string) StepHandle {
	return StepHandle{name: name, path: path, started: time.Now().UTC()}
}

func (r *RunReport) EndStep(h StepHandle, status string, attempts int, sidecar string, err error) {
	if r == nil || strings.TrimSpace(h.name) == "" {
		return
	}
	finished := time.Now().UTC()
	m := StepMetric{
		Name:       h.name,
		Path:       h.path,
		Status:     status,
		Attempts:   attempts,
		StartedAt:  h.started.Format(time.RFC3339Nano),
		FinishedAt: finished.Format(time.RFC3339Nano),
		DurationMS: finished.Sub(h.started).Milliseconds(),
		Sidecar:    sidecar,
	}
	if err != nil {
		m.Error = err.Error()
	}
	r.Steps = append(r.Steps, m)
}

func (r *RunReport) Finalize() {
	if r == nil {
		return
	}
	r.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	succeeded := 0
	for _, s := range r.Steps {
		if s.Status == "ok" {
			succeeded++
		}
	}
	r.Summary = ReportSummary{
		StepCount: len(r.Steps),
		Succeeded: succeeded,
		Failed:    len(r.Steps) - succeeded,
	}
}

func (r *RunReport) Save(path string) error {
	if r == nil {
		return nil
	}
	r.Finalize()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}
