// Package extract converts a free-text business description into validated
// site data by driving a single data-extraction completion call.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Elementx07/gen-ai-hackathon/internal/llm"
	"github.com/Elementx07/gen-ai-hackathon/internal/prompt"
	"github.com/Elementx07/gen-ai-hackathon/internal/sitedata"
)

// ExtractionError reports that no JSON object could be located in the
// completion text. Raw retains the full response for diagnostics.
type ExtractionError struct {
	Reason string
	Raw    string
}

func (e *ExtractionError) Error() string {
	return "data extraction failed: " + e.Reason
}

// Extractor locates and validates the structured site data embedded in a
// model completion.
type Extractor struct {
	client   llm.Client
	registry *prompt.Registry

	MaxTokens   int
	Temperature float64
}

func NewExtractor(client llm.Client, registry *prompt.Registry) *Extractor {
	return &Extractor{
		client:   client,
		registry: registry,
	}
}

// Extract renders the data-extraction prompt for the description, calls the
// completion client once, locates an embedded JSON object, parses it, and
// validates it against the schema. Validation failures are surfaced as-is
// with the offending raw text retained; no auto-repair is attempted.
func (e *Extractor) Extract(ctx context.Context, description string) (*sitedata.SiteData, error) {
	p, system, err := e.registry.Render(prompt.DataExtraction, map[string]string{
		"description": description,
	})
	if err != nil {
		return nil, err
	}

	text, err := e.client.Complete(ctx, llm.Request{
		Prompt:      p,
		System:      system,
		MaxTokens:   e.MaxTokens,
		Temperature: e.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction completion call: %w", err)
	}

	raw, ok := locateJSON(text)
	if !ok {
		return nil, &ExtractionError{Reason: "no JSON object found in completion", Raw: text}
	}

	var data sitedata.SiteData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, &ExtractionError{Reason: "located JSON does not parse: " + err.Error(), Raw: text}
	}

	if err := sitedata.Validate(&data); err != nil {
		if verr, isValidation := err.(*sitedata.ValidationError); isValidation {
			verr.Raw = text
		}
		return nil, err
	}
	return &data, nil
}

// locateJSON finds the JSON object embedded in completion text. Model
// output mixes prose, fences, and raw JSON inconsistently, so a fenced
// block explicitly tagged as JSON wins; otherwise the substring between
// the first '{' and the last '}' is taken.
func locateJSON(text string) (string, bool) {
	if fenced, ok := fencedJSON(text); ok {
		return fenced, true
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

func fencedJSON(text string) (string, bool) {
	const marker = "```json"
	start := strings.Index(text, marker)
	if start == -1 {
		return "", false
	}
	rest := text[start+len(marker):]
	end := strings.Index(rest, "```")
	if end == -1 {
		return "", false
	}
	body := strings.TrimSpace(rest[:end])
	if body == "" {
		return "", false
	}
	return body, true
}
