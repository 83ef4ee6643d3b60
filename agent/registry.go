package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/knnakr/careeragent/logstore"
	"github.com/knnakr/careeragent/notify"
)

// Handler executes one tool invocation. Failures are encoded in the returned
// map, never raised as Go errors: the generator always needs something usable
// as a tool-role message.
type Handler func(ctx context.Context, args map[string]any) map[string]any

// Registry maps tool names to handlers. It is an explicit capability set
// injected into the Assistant, so tests can substitute fakes per tool.
type Registry struct {
	handlers map[string]Handler
}

func NewRegistry(notifier notify.Notifier, logs logstore.Store, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	tb := &toolbox{notifier: notifier, logs: logs, logger: logger, now: time.Now}
	return &Registry{handlers: map[string]Handler{
		ToolRecordEmployerContact: tb.recordEmployerContact,
		ToolRecordUnknownQuestion: tb.recordUnknownQuestion,
		ToolScheduleInterview:     tb.scheduleInterview,
		ToolDeclineOffer:          tb.declineOffer,
	}}
}

// Register adds or replaces a handler.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Invoke runs the named tool. An unknown name fails softly with a
// "Tool not found" result and causes no side effects.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) map[string]any {
	h, ok := r.handlers[name]
	if !ok {
		return map[string]any{"error": "Tool not found"}
	}
	return h(ctx, args)
}

// toolbox implements the built-in tool handlers. Each handler performs one
// notification dispatch and one log append. The two side effects are
// independent: a notification failure never blocks the log write and vice
// versa, but if either fails the call reports a tool failure.
type toolbox struct {
	notifier notify.Notifier
	logs     logstore.Store
	logger   *zap.Logger
	now      func() time.Time
}

func (t *toolbox) recordEmployerContact(ctx context.Context, args map[string]any) map[string]any {
	email, ok := stringArg(args, "email")
	if !ok {
		return invalidArgs("email is required")
	}
	company, ok := stringArg(args, "company")
	if !ok {
		return invalidArgs("company is required")
	}
	name := stringArgOr(args, "name", "Name not provided")
	role := stringArgOr(args, "role", "Role not specified")
	ts := t.timestamp()

	err := t.sideEffects(ctx,
		notify.Event{
			Kind:     notify.KindContactRecorded,
			Priority: notify.PriorityNormal,
			Subject:  "Employer contact recorded",
			Body:     fmt.Sprintf("Name: %s\nCompany: %s\nEmail: %s\nRole: %s", name, company, email, role),
		},
		logstore.EmployerContacts,
		contactRecord{Timestamp: ts, Email: email, Company: company, Name: name, Role: role},
	)
	if err != nil {
		return toolFailure(err)
	}
	return map[string]any{"recorded": "success", "timestamp": ts}
}

func (t *toolbox) recordUnknownQuestion(ctx context.Context, args map[string]any) map[string]any {
	question, ok := stringArg(args, "question")
	if !ok {
		return invalidArgs("question is required")
	}
	confidence := floatArgOr(args, "confidence", 0)
	ts := t.timestamp()

	err := t.sideEffects(ctx,
		notify.Event{
			Kind:     notify.KindHumanIntervention,
			Priority: notify.PriorityEmergency,
			Subject:  "Human intervention needed",
			Body:     fmt.Sprintf("Reason: Unknown/Low Confidence Question\n\nContext:\n%s", question),
		},
		logstore.UnknownQuestions,
		unknownQuestionRecord{Timestamp: ts, Question: question, Confidence: confidence, RequiresReview: true},
	)
	if err != nil {
		return toolFailure(err)
	}
	return map[string]any{"recorded": "success", "human_review_required": true}
}

func (t *toolbox) scheduleInterview(ctx context.Context, args map[string]any) map[string]any {
	date, ok := stringArg(args, "date")
	if !ok {
		return invalidArgs("date is required")
	}
	timeOfDay, ok := stringArg(args, "time")
	if !ok {
		return invalidArgs("time is required")
	}
	format, ok := stringArg(args, "format")
	if !ok {
		return invalidArgs("format is required")
	}
	interviewer := stringArgOr(args, "interviewer", "Not specified")
	ts := t.timestamp()

	record := interviewRecord{
		Timestamp:     ts,
		InterviewDate: date,
		InterviewTime: timeOfDay,
		Format:        format,
		Interviewer:   interviewer,
	}
	err := t.sideEffects(ctx,
		notify.Event{
			Kind:     notify.KindInterviewScheduled,
			Priority: notify.PriorityHigh,
			Subject:  "Interview scheduled",
			Body:     fmt.Sprintf("Date: %s\nTime: %s\nFormat: %s\nInterviewer: %s", date, timeOfDay, format, interviewer),
		},
		logstore.Interviews,
		record,
	)
	if err != nil {
		return toolFailure(err)
	}
	return map[string]any{"scheduled": "success", "details": record}
}

func (t *toolbox) declineOffer(ctx context.Context, args map[string]any) map[string]any {
	company, ok := stringArg(args, "company")
	if !ok {
		return invalidArgs("company is required")
	}
	reason := stringArgOr(args, "reason", "pursuing other opportunities")
	ts := t.timestamp()

	err := t.sideEffects(ctx,
		notify.Event{
			Kind:     notify.KindOfferDeclined,
			Priority: notify.PriorityNormal,
			Subject:  "Offer declined",
			Body:     fmt.Sprintf("Company: %s\nReason: %s", company, reason),
		},
		logstore.DeclinedOffers,
		declinedOfferRecord{Timestamp: ts, Company: company, Reason: reason, Action: "declined"},
	)
	if err != nil {
		return toolFailure(err)
	}
	return map[string]any{"declined": "success", "company": company}
}

// sideEffects dispatches the notification and appends the log record. Both
// are always attempted; the first error does not short-circuit the second.
func (t *toolbox) sideEffects(ctx context.Context, ev notify.Event, cat logstore.Category, record any) error {
	notifyErr := t.notifier.Notify(ctx, ev)
	if notifyErr != nil {
		t.logger.Warn("tool notification failed", zap.String("kind", string(ev.Kind)), zap.Error(notifyErr))
	}
	appendErr := t.logs.Append(ctx, cat, record)
	if appendErr != nil {
		t.logger.Warn("tool log append failed", zap.String("category", string(cat)), zap.Error(appendErr))
	}
	return errors.Join(notifyErr, appendErr)
}

func (t *toolbox) timestamp() string {
	return t.now().UTC().Format(time.RFC3339)
}

func invalidArgs(reason string) map[string]any {
	return map[string]any{"error": "invalid arguments: " + reason}
}

func toolFailure(err error) map[string]any {
	return map[string]any{"error": "tool failed: " + err.Error()}
}

func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func stringArgOr(args map[string]any, key, fallback string) string {
	if v, ok := stringArg(args, key); ok {
		return v
	}
	return fallback
}

func floatArgOr(args map[string]any, key string, fallback float64) float64 {
	if v, ok := args[key].(float64); ok {
		return v
	}
	return fallback
}
