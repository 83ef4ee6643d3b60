// Package agent implements the career assistant pipeline: a bounded
// tool-calling generator, a rubric evaluator, and the revision loop that
// drives a candidate response to an approved or human-review terminal state.
package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/knnakr/careeragent/logstore"
	"github.com/knnakr/careeragent/notify"
)

const previewLen = 100

// Assistant orchestrates generation, evaluation, and revision for inbound
// employer messages. Each ProcessMessage call is independent; an Assistant
// is safe for concurrent use.
type Assistant struct {
	cfg      options
	registry *Registry
	tools    []Tool
}

func New(opts ...Option) *Assistant {
	cfg := defaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	return &Assistant{
		cfg:      cfg,
		registry: NewRegistry(cfg.notifier, cfg.logs, cfg.logger),
		tools:    Toolset(),
	}
}

// Registry exposes the assistant's tool registry so callers can register
// additional tools before processing messages.
func (a *Assistant) Registry() *Registry {
	return a.registry
}

// ProcessMessage runs the full pipeline for one employer message:
// notify → generate → evaluate → (revise → evaluate)* → terminal status.
// The returned result always has status approved_and_sent or
// requires_human_review; an error means generation or evaluation itself
// failed and no result was produced.
func (a *Assistant) ProcessMessage(ctx context.Context, employerName, message string) (*ProcessResult, error) {
	a.cfg.logger.Info("processing employer message",
		zap.String("employer", employerName),
		zap.Int("message_len", len(message)),
	)
	a.notify(ctx, notify.Event{
		Kind:     notify.KindNewMessage,
		Priority: notify.PriorityHigh,
		Subject:  "New employer message",
		Body:     fmt.Sprintf("From: %s\n\nPreview:\n%s", employerName, preview(message)),
	})

	response, _, err := a.generate(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("generate response: %w", err)
	}

	eval, err := a.Evaluate(ctx, message, response)
	if err != nil {
		return nil, err
	}

	revisions := 0
	for !eval.Pass && revisions < a.cfg.maxRevisions {
		revisions++
		a.cfg.logger.Info("response needs improvement",
			zap.Int("attempt", revisions),
			zap.Int("max_revisions", a.cfg.maxRevisions),
			zap.Float64("score", eval.OverallScore),
		)

		response, err = a.revise(ctx, message, response, eval)
		if err != nil {
			return nil, fmt.Errorf("revise response: %w", err)
		}
		eval, err = a.Evaluate(ctx, message, response)
		if err != nil {
			return nil, err
		}
	}

	var status Status
	if eval.Pass {
		status = StatusApprovedAndSent
		a.cfg.logger.Info("response approved", zap.Float64("score", eval.OverallScore), zap.Int("revisions", revisions))
		a.notify(ctx, notify.Event{
			Kind:     notify.KindResponseSent,
			Priority: notify.PriorityNormal,
			Subject:  "Response sent",
			Body:     fmt.Sprintf("To: %s\n\nResponse preview:\n%s", employerName, preview(response)),
		})
	} else {
		status = StatusRequiresHumanReview
		a.cfg.logger.Warn("response quality below threshold", zap.Float64("score", eval.OverallScore))
		a.notify(ctx, notify.Event{
			Kind:     notify.KindHumanIntervention,
			Priority: notify.PriorityEmergency,
			Subject:  "Human intervention needed",
			Body:     fmt.Sprintf("Reason: Response quality below threshold\n\nContext:\nScore: %.1f/10. %s", eval.OverallScore, eval.Feedback),
		})
	}

	a.logEvaluation(ctx, employerName, message, response, eval, status, revisions)

	return &ProcessResult{
		EmployerMessage: message,
		Response:        response,
		Evaluation:      eval,
		Status:          status,
		RevisionCount:   revisions,
		Timestamp:       time.Now().UTC(),
	}, nil
}

// revise regenerates the response from the evaluator's feedback. Revision is
// a single completion with no tool access.
func (a *Assistant) revise(ctx context.Context, employerMessage, original string, eval *Evaluation) (string, error) {
	feedback := strings.TrimSpace(eval.Feedback + " " + eval.SuggestedImprovements)

	comp, err := a.cfg.client.Complete(ctx, CompleteRequest{
		Messages: []Message{
			{Role: "system", Content: systemPrompt(a.cfg.profile)},
			{Role: "user", Content: revisionPrompt(employerMessage, original, feedback)},
		},
		Temperature: a.cfg.generationTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}
	return comp.Text, nil
}

// notify is best-effort: sink failures are logged and never propagate.
func (a *Assistant) notify(ctx context.Context, ev notify.Event) {
	if err := a.cfg.notifier.Notify(ctx, ev); err != nil {
		a.cfg.logger.Warn("notification failed", zap.String("kind", string(ev.Kind)), zap.Error(err))
	}
}

// logEvaluation records the terminal outcome exactly once, best-effort.
func (a *Assistant) logEvaluation(ctx context.Context, employerName, message, response string, eval *Evaluation, status Status, revisions int) {
	record := evaluationRecord{
		Timestamp:              time.Now().UTC().Format(time.RFC3339),
		EmployerName:           employerName,
		EmployerMessagePreview: preview(message),
		ResponsePreview:        preview(response),
		Scores: evaluationScores{
			ProfessionalTone: eval.ProfessionalTone,
			Clarity:          eval.Clarity,
			Completeness:     eval.Completeness,
			Safety:           eval.Safety,
			Relevance:        eval.Relevance,
			OverallScore:     eval.OverallScore,
		},
		Pass:          eval.Pass,
		Feedback:      eval.Feedback,
		Status:        status,
		RevisionCount: revisions,
	}
	if err := a.cfg.logs.Append(ctx, logstore.Evaluations, record); err != nil {
		a.cfg.logger.Warn("evaluation log append failed", zap.Error(err))
	}
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLen {
		return s
	}
	return string(runes[:previewLen]) + "..."
}
