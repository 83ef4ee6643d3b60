package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Evaluate scores a candidate response against the rubric with a single
// structured-output completion. A response the model cannot score as
// well-formed JSON is a hard failure: it propagates to the caller instead of
// defaulting to a fabricated verdict.
func (a *Assistant) Evaluate(ctx context.Context, employerMessage, response string) (*Evaluation, error) {
	req := CompleteRequest{
		Messages: []Message{
			{Role: "user", Content: evaluationPrompt(employerMessage, response)},
		},
		Temperature:    a.cfg.evaluationTemperature,
		ResponseFormat: FormatJSON,
	}

	comp, err := a.cfg.client.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("evaluate response: %w", err)
	}

	eval, err := decodeEvaluation(comp.Text, a.cfg.passThreshold)
	if err != nil {
		return nil, fmt.Errorf("evaluate response: %w", err)
	}
	return eval, nil
}

type rawEvaluation struct {
	ProfessionalTone      float64 `json:"professional_tone"`
	Clarity               float64 `json:"clarity"`
	Completeness          float64 `json:"completeness"`
	Safety                float64 `json:"safety"`
	Relevance             float64 `json:"relevance"`
	OverallScore          float64 `json:"overall_score"`
	Pass                  *bool   `json:"pass"`
	Feedback              string  `json:"feedback"`
	SuggestedImprovements string  `json:"suggested_improvements"`
}

// decodeEvaluation extracts the JSON object from the evaluator output
// (tolerating markdown fences around it) and decodes it. The model's own
// overall_score and pass fields are authoritative; pass is derived from the
// threshold only when the model omits it.
func decodeEvaluation(content string, threshold float64) (*Evaluation, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no JSON object found in evaluator output")
	}

	var raw rawEvaluation
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("decode evaluation: %w", err)
	}

	eval := &Evaluation{
		ProfessionalTone:      raw.ProfessionalTone,
		Clarity:               raw.Clarity,
		Completeness:          raw.Completeness,
		Safety:                raw.Safety,
		Relevance:             raw.Relevance,
		OverallScore:          raw.OverallScore,
		Feedback:              raw.Feedback,
		SuggestedImprovements: raw.SuggestedImprovements,
	}
	if raw.Pass != nil {
		eval.Pass = *raw.Pass
	} else {
		eval.Pass = raw.OverallScore >= threshold
	}
	return eval, nil
}
