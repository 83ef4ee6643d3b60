package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/knnakr/careeragent/httpclient"
	"github.com/knnakr/careeragent/notify"
)

func TestTelegram_SendsMessage(t *testing.T) {
	var gotPath string
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotPayload) //nolint:errcheck
		w.Write([]byte(`{"ok": true}`))             //nolint:errcheck
	}))
	defer srv.Close()

	tg := notify.NewTelegram("token123", "chat42", httpclient.WithBaseURL(srv.URL))

	err := tg.Notify(context.Background(), notify.Event{
		Kind:     notify.KindHumanIntervention,
		Priority: notify.PriorityEmergency,
		Subject:  "Human intervention needed",
		Body:     "salary question",
	})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if gotPath != "/sendMessage" {
		t.Errorf("path = %q, want /sendMessage", gotPath)
	}
	if gotPayload["chat_id"] != "chat42" {
		t.Errorf("chat_id = %v", gotPayload["chat_id"])
	}
	if gotPayload["parse_mode"] != "Markdown" {
		t.Errorf("parse_mode = %v", gotPayload["parse_mode"])
	}
	text, _ := gotPayload["text"].(string)
	if !strings.Contains(text, "🚨") {
		t.Errorf("emergency message should carry the alarm emoji: %q", text)
	}
	if !strings.Contains(text, "Human intervention needed") || !strings.Contains(text, "salary question") {
		t.Errorf("message missing subject or body: %q", text)
	}
}

func TestTelegram_PriorityEmoji(t *testing.T) {
	cases := []struct {
		priority notify.Priority
		emoji    string
	}{
		{notify.PriorityNormal, "📬"},
		{notify.PriorityHigh, "⚡"},
		{notify.PriorityEmergency, "🚨"},
	}

	for _, tc := range cases {
		t.Run(string(tc.priority), func(t *testing.T) {
			var text string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var payload map[string]any
				json.NewDecoder(r.Body).Decode(&payload) //nolint:errcheck
				text, _ = payload["text"].(string)
				w.Write([]byte(`{"ok": true}`)) //nolint:errcheck
			}))
			defer srv.Close()

			tg := notify.NewTelegram("t", "c", httpclient.WithBaseURL(srv.URL))
			if err := tg.Notify(context.Background(), notify.Event{Priority: tc.priority}); err != nil {
				t.Fatalf("Notify: %v", err)
			}
			if !strings.HasPrefix(text, tc.emoji) {
				t.Errorf("text = %q, want %s prefix", text, tc.emoji)
			}
		})
	}
}

func TestTelegram_APIErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok": false, "description": "chat not found"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	tg := notify.NewTelegram("t", "c", httpclient.WithBaseURL(srv.URL))

	err := tg.Notify(context.Background(), notify.Event{Subject: "s"})
	if err == nil {
		t.Fatal("expected error on non-2xx response")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("error = %v, want the API description included", err)
	}
}
