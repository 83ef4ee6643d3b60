package logstore_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/knnakr/careeragent/logstore"
)

type entry struct {
	Seq  int    `json:"seq"`
	Note string `json:"note"`
}

func stores(t *testing.T) map[string]logstore.Store {
	t.Helper()
	file, err := logstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return map[string]logstore.Store{
		"memory": logstore.NewMemoryStore(),
		"file":   file,
	}
}

func TestStore_AppendAndTailNewestFirst(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := range 5 {
				if err := store.Append(ctx, logstore.Interviews, entry{Seq: i}); err != nil {
					t.Fatalf("Append: %v", err)
				}
			}

			records, err := store.Tail(ctx, logstore.Interviews, 3)
			if err != nil {
				t.Fatalf("Tail: %v", err)
			}
			if len(records) != 3 {
				t.Fatalf("got %d records, want 3", len(records))
			}
			for i, raw := range records {
				var e entry
				if err := json.Unmarshal(raw, &e); err != nil {
					t.Fatalf("record %d not JSON: %v", i, err)
				}
				if want := 4 - i; e.Seq != want {
					t.Errorf("record %d seq = %d, want %d (newest first)", i, e.Seq, want)
				}
			}
		})
	}
}

func TestStore_TailMoreThanAvailable(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := store.Append(ctx, logstore.DeclinedOffers, entry{Seq: 1}); err != nil {
				t.Fatalf("Append: %v", err)
			}

			records, err := store.Tail(ctx, logstore.DeclinedOffers, 100)
			if err != nil {
				t.Fatalf("Tail: %v", err)
			}
			if len(records) != 1 {
				t.Errorf("got %d records, want 1", len(records))
			}
		})
	}
}

func TestStore_TailEmptyCategory(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			records, err := store.Tail(context.Background(), logstore.UnknownQuestions, 10)
			if err != nil {
				t.Fatalf("Tail on empty category: %v", err)
			}
			if len(records) != 0 {
				t.Errorf("got %d records, want 0", len(records))
			}
		})
	}
}

func TestStore_UnknownCategoryRejected(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Append(context.Background(), "party_invites", entry{}); err == nil {
				t.Error("Append with unknown category should fail")
			}
			if _, err := store.Tail(context.Background(), "party_invites", 1); err == nil {
				t.Error("Tail with unknown category should fail")
			}
		})
	}
}

func TestStore_CategoriesAreIsolated(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := store.Append(ctx, logstore.Interviews, entry{Note: "interview"}); err != nil {
				t.Fatalf("Append: %v", err)
			}

			records, err := store.Tail(ctx, logstore.Evaluations, 10)
			if err != nil {
				t.Fatalf("Tail: %v", err)
			}
			if len(records) != 0 {
				t.Error("records leaked across categories")
			}
		})
	}
}

func TestStore_ConcurrentAppends(t *testing.T) {
	const writers = 20
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			var wg sync.WaitGroup
			for i := range writers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					err := store.Append(ctx, logstore.EmployerContacts, entry{Seq: i, Note: fmt.Sprintf("writer-%d", i)})
					if err != nil {
						t.Errorf("Append: %v", err)
					}
				}()
			}
			wg.Wait()

			records, err := store.Tail(ctx, logstore.EmployerContacts, writers)
			if err != nil {
				t.Fatalf("Tail: %v", err)
			}
			if len(records) != writers {
				t.Fatalf("got %d records, want %d", len(records), writers)
			}
			// Every record must still be a complete JSON line.
			for i, raw := range records {
				var e entry
				if err := json.Unmarshal(raw, &e); err != nil {
					t.Errorf("record %d corrupted: %v", i, err)
				}
			}
		})
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, cat := range logstore.Categories() {
		if !cat.Valid() {
			t.Errorf("%s should be valid", cat)
		}
	}
	if logstore.Category("nope").Valid() {
		t.Error("unknown category should not be valid")
	}
}
