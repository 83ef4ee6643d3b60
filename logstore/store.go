// Package logstore provides append-only event logs, one per category.
// Records are newline-delimited JSON; appends must be safe under concurrent
// message processing, reads return the newest records first.
package logstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// Category identifies one log stream.
type Category string

const (
	Evaluations      Category = "evaluations"
	EmployerContacts Category = "employer_contacts"
	Interviews       Category = "interviews"
	UnknownQuestions Category = "unknown_questions"
	DeclinedOffers   Category = "declined_offers"
)

// Categories lists every known log category.
func Categories() []Category {
	return []Category{Evaluations, EmployerContacts, Interviews, UnknownQuestions, DeclinedOffers}
}

func (c Category) Valid() bool {
	switch c {
	case Evaluations, EmployerContacts, Interviews, UnknownQuestions, DeclinedOffers:
		return true
	}
	return false
}

// Store is the log sink contract. Append writes exactly one record; Tail
// returns up to n records in reverse-chronological order.
type Store interface {
	Append(ctx context.Context, cat Category, record any) error
	Tail(ctx context.Context, cat Category, n int) ([]json.RawMessage, error)
}

func encodeRecord(cat Category, record any) ([]byte, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("logstore: unknown category %q", cat)
	}
	line, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("logstore: marshal record: %w", err)
	}
	return line, nil
}
