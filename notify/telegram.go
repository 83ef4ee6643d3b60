package notify

import (
	"context"
	"fmt"

	"github.com/knnakr/careeragent/httpclient"
)

// Telegram sends events to a chat via the Telegram Bot API.
type Telegram struct {
	client *httpclient.Client
	chatID string
}

// NewTelegram creates a notifier for the given bot token and chat.
// Extra options (e.g. httpclient.WithBaseURL in tests) are applied after
// the default Bot API base URL.
func NewTelegram(botToken, chatID string, opts ...httpclient.Option) *Telegram {
	base := []httpclient.Option{
		httpclient.WithBaseURL("https://api.telegram.org/bot" + botToken),
	}
	return &Telegram{
		client: httpclient.New(append(base, opts...)...),
		chatID: chatID,
	}
}

func (t *Telegram) Notify(ctx context.Context, ev Event) error {
	text := fmt.Sprintf("%s *Career Assistant*\n\n*%s*\n\n%s", priorityEmoji(ev.Priority), ev.Subject, ev.Body)

	resp, err := t.client.Post(ctx, "/sendMessage", map[string]any{
		"chat_id":    t.chatID,
		"text":       text,
		"parse_mode": "Markdown",
	})
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	if !resp.OK() {
		return fmt.Errorf("telegram: sendMessage returned %d: %s", resp.StatusCode, resp.String())
	}
	return nil
}

func priorityEmoji(p Priority) string {
	switch p {
	case PriorityHigh:
		return "⚡"
	case PriorityEmergency:
		return "🚨"
	default:
		return "📬"
	}
}
