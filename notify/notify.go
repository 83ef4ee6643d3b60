// Package notify delivers terminal pipeline events (new message, response
// sent, human intervention, tool side effects) to outbound channels. All
// channels are best-effort: a failed delivery never aborts message
// processing.
package notify

import (
	"context"
	"errors"
)

type Priority string

const (
	PriorityNormal    Priority = "normal"
	PriorityHigh      Priority = "high"
	PriorityEmergency Priority = "emergency"
)

type Kind string

const (
	KindNewMessage         Kind = "new_message"
	KindResponseSent       Kind = "response_sent"
	KindHumanIntervention  Kind = "human_intervention"
	KindContactRecorded    Kind = "contact_recorded"
	KindInterviewScheduled Kind = "interview_scheduled"
	KindOfferDeclined      Kind = "offer_declined"
)

// Event is one notification. Subject is a short title, Body the details.
type Event struct {
	Kind     Kind
	Priority Priority
	Subject  string
	Body     string
}

type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

// Noop discards all events. Used when no channel is configured.
type Noop struct{}

func (Noop) Notify(context.Context, Event) error { return nil }

type multi []Notifier

// Multi fans an event out to every notifier. Each notifier is attempted
// regardless of earlier failures; errors are joined.
func Multi(notifiers ...Notifier) Notifier {
	return multi(notifiers)
}

func (m multi) Notify(ctx context.Context, ev Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
