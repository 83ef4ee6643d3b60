package agent

import (
	"context"
	"encoding/json"
)

// Finish reasons reported by the completion client.
const (
	FinishStop      = "stop"
	FinishToolCalls = "tool_calls"
)

// ResponseFormat constrains the shape of a completion.
type ResponseFormat string

const (
	FormatText ResponseFormat = "text"
	FormatJSON ResponseFormat = "json"
)

type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage // JSON Schema (type=object)
}

// ToolCall is a model-initiated request to invoke a named tool. Args is the
// raw argument string as emitted by the model; it is preserved verbatim in
// the conversation so results can be correlated by ID.
type ToolCall struct {
	ID   string
	Name string
	Args json.RawMessage
}

type Message struct {
	Role       string // "system" | "user" | "assistant" | "tool"
	Content    string
	ToolCalls  []ToolCall // filled if Role="assistant" and the model called tools
	ToolCallID string     // filled if Role="tool"
}

// CompleteRequest is one request to the completion capability. A nil Tools
// slice disables tool calling for the request.
type CompleteRequest struct {
	Messages       []Message
	Tools          []Tool
	Temperature    float64
	ResponseFormat ResponseFormat
}

type Completion struct {
	Text         string
	ToolCalls    []ToolCall
	FinishReason string
}

// CompletionClient is the opaque text-completion capability. Implementations
// live in agent/adapters.
type CompletionClient interface {
	Complete(ctx context.Context, req CompleteRequest) (*Completion, error)
}
