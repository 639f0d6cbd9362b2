// Package pipeline drives the generation run: it persists extracted site
// data, then walks the fixed step catalog, calling the completion client
// per step with a single retry, normalizing responses, and assembling the
// output file tree. One failed artifact never blocks the remaining steps.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Elementx07/gen-ai-hackathon/internal/extract"
	"github.com/Elementx07/gen-ai-hackathon/internal/llm"
	"github.com/Elementx07/gen-ai-hackathon/internal/normalize"
	"github.com/Elementx07/gen-ai-hackathon/internal/prompt"
	"github.com/Elementx07/gen-ai-hackathon/internal/sitedata"
)

// ProgressObserver receives a fire-and-forget notification after each
// generation step. Absence is modeled as a no-op observer.
type ProgressObserver interface {
	OnStep(index, total int, label string)
}

type noopObserver struct{}

func (noopObserver) OnStep(int, int, string) {}

// StepResult is the per-step outcome.
type StepResult struct {
	Name        string
	Path        string
	Succeeded   bool
	Attempts    int
	SidecarPath string
	Err         error
}

// RunResult is the outcome of a completed run. A run that reaches this
// value did not fail fatally; failed artifact steps are listed explicitly,
// never dropped.
type RunResult struct {
	RunID      string
	OutputRoot string
	Data       *sitedata.SiteData
	Steps      []StepResult
}

// Failed returns the steps that did not produce their artifact.
func (r *RunResult) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if !s.Succeeded {
			failed = append(failed, s)
		}
	}
	return failed
}

func (r *RunResult) SucceededCount() int {
	return len(r.Steps) - len(r.Failed())
}

// Status is "succeeded" when every step produced its artifact, else
// "partial".
func (r *RunResult) Status() string {
	if len(r.Failed()) == 0 {
		return "succeeded"
	}
	return "partial"
}

// Orchestrator is the pipeline controller. The completion client is an
// injected dependency, never a package-level singleton, so tests can
// substitute a deterministic stub.
type Orchestrator struct {
	client    llm.Client
	registry  *prompt.Registry
	extractor *extract.Extractor
	writer    TreeWriter

	// RetryDelay is the pause before the single per-step retry.
	RetryDelay  time.Duration
	MaxTokens   int
	Temperature float64
}

func NewOrchestrator(client llm.Client, registry *prompt.Registry, writer TreeWriter) *Orchestrator {
	return &Orchestrator{
		client:     client,
		registry:   registry,
		extractor:  extract.NewExtractor(client, registry),
		writer:     writer,
		RetryDelay: 300 * time.Millisecond,
	}
}

// Run executes one generation run. Extraction and persistence failures are
// fatal and returned as *GenerationError; artifact step failures are
// recorded in the result and the run continues.
func (o *Orchestrator) Run(ctx context.Context, description, outputRoot string, obs ProgressObserver) (*RunResult, error) {
	if obs == nil {
		obs = noopObserver{}
	}

	runID := uuid.NewString()
	report := NewRunReport(runID, outputRoot)

	o.extractor.MaxTokens = o.MaxTokens
	o.extractor.Temperature = o.Temperature

	data, err := o.extractor.Extract(ctx, description)
	if err != nil {
		return nil, &GenerationError{Step: "data_extraction", Cause: err}
	}

	dataJSON, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, &GenerationError{Step: "persist_site_data", Cause: err}
	}
	if err := o.writer.WriteFile(filepath.Join(outputRoot, DataArtifactPath), dataJSON); err != nil {
		return nil, &GenerationError{Step: "persist_site_data", Cause: err}
	}

	designJSON, err := json.Marshal(data.DesignSystem)
	if err != nil {
		return nil, &GenerationError{Step: "persist_site_data", Cause: err}
	}

	steps := Catalog()
	result := &RunResult{
		RunID:      runID,
		OutputRoot: outputRoot,
		Data:       data,
		Steps:      make([]StepResult, 0, len(steps)),
	}

	for i, step := range steps {
		// Cooperative cancellation between steps; in-flight calls are
		// never interrupted.
		if err := ctx.Err(); err != nil {
			return nil, &GenerationError{Step: step.Name, Cause: err}
		}

		res := o.runStep(ctx, step, string(dataJSON), string(designJSON), outputRoot, report)
		result.Steps = append(result.Steps, res)
		obs.OnStep(i+1, len(steps), fmt.Sprintf("Generating %s", step.Name))
	}

	if err := report.Save(filepath.Join(outputRoot, ReportPath)); err != nil {
		log.Printf("warning: failed to write run report: %v", err)
	}
	return result, nil
}

func (o *Orchestrator) runStep(ctx context.Context, step Step, dataJSON, designJSON, outputRoot string, report *RunReport) StepResult {
	h := report.BeginStep(step.Name, step.OutputPath)
	res := StepResult{Name: step.Name, Path: step.OutputPath}

	p, system, err := o.registry.Render(step.TemplateID, o.bindings(step, dataJSON, designJSON))
	if err != nil {
		res.Err = err
		report.EndStep(h, "error", 0, "", err)
		return res
	}

	req := llm.Request{
		Prompt:      p,
		System:      system,
		MaxTokens:   o.MaxTokens,
		Temperature: o.Temperature,
	}

	res.Attempts = 1
	text, err := o.client.Complete(ctx, req)
	if err != nil {
		log.Printf("step %s: completion failed (%v), retrying once", step.Name, err)
		select {
		case <-time.After(o.RetryDelay):
		case <-ctx.Done():
			res.Err = ctx.Err()
			report.EndStep(h, "error", res.Attempts, "", res.Err)
			return res
		}
		res.Attempts = 2
		text, err = o.client.Complete(ctx, req)
	}
	if err != nil {
		res.Err = fmt.Errorf("completion failed after retry: %w", err)
		report.EndStep(h, "error", res.Attempts, "", res.Err)
		return res
	}

	code := normalize.Normalize(text, step.Kind)
	if code == "" {
		sidecar := step.OutputPath + ".raw.txt"
		if werr := o.writer.WriteFile(filepath.Join(outputRoot, sidecar), []byte(text)); werr != nil {
			res.Err = fmt.Errorf("no content recovered and sidecar write failed: %w", werr)
			report.EndStep(h, "error", res.Attempts, "", res.Err)
			return res
		}
		res.SidecarPath = sidecar
		res.Err = fmt.Errorf("no content recovered from completion, raw response kept at %s", sidecar)
		report.EndStep(h, "error", res.Attempts, sidecar, res.Err)
		return res
	}

	if err := o.writer.WriteFile(filepath.Join(outputRoot, step.OutputPath), []byte(code)); err != nil {
		res.Err = fmt.Errorf("write artifact: %w", err)
		report.EndStep(h, "error", res.Attempts, "", res.Err)
		return res
	}

	res.Succeeded = true
	report.EndStep(h, "ok", res.Attempts, "", nil)
	return res
}

func (o *Orchestrator) bindings(step Step, dataJSON, designJSON string) map[string]string {
	switch step.TemplateID {
	case prompt.Component:
		return map[string]string{"component_name": step.Name, "site_data": dataJSON}
	case prompt.Page:
		return map[string]string{"page_name": step.Name, "site_data": dataJSON}
	case prompt.Layout:
		return map[string]string{"site_data": dataJSON}
	case prompt.Stylesheet:
		return map[string]string{"design_system": designJSON}
	default:
		return nil
	}
}
