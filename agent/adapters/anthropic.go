// Package adapters provides CompletionClient implementations for concrete
// model providers.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"

	"github.com/knnakr/careeragent/agent"
)

type AnthropicOption func(*AnthropicClient)

func WithModel(model string) AnthropicOption {
	return func(c *AnthropicClient) {
		c.model = model
	}
}

func WithMaxTokens(n int64) AnthropicOption {
	return func(c *AnthropicClient) {
		c.maxTokens = n
	}
}

type AnthropicClient struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

func NewAnthropic(apiKey string, opts ...AnthropicOption) *AnthropicClient {
	c := &AnthropicClient{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     string(anthropic.ModelClaudeSonnet4_5),
		maxTokens: 2000,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *AnthropicClient) Complete(ctx context.Context, req agent.CompleteRequest) (*agent.Completion, error) {
	system, rest := splitSystem(req.Messages)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages:  convertMessages(rest),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if req.Temperature > 0 {
		params.Temperature = param.NewOpt(req.Temperature)
	}
	if len(req.Tools) > 0 {
		params.Tools = convertTools(req.Tools)
	}

	// Anthropic has no native JSON response mode; prefilling the assistant
	// turn with "{" constrains the completion to an object.
	prefilled := req.ResponseFormat == agent.FormatJSON
	if prefilled {
		params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock("{")))
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic complete: %w", err)
	}

	var textSB strings.Builder
	var toolCalls []agent.ToolCall

	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			textSB.WriteString(block.Text)
		case "tool_use":
			toolCalls = append(toolCalls, agent.ToolCall{
				ID:   block.ID,
				Name: block.Name,
				Args: block.Input, // json.RawMessage
			})
		}
	}

	text := textSB.String()
	if prefilled {
		text = "{" + text
	}

	finish := agent.FinishStop
	if len(toolCalls) > 0 {
		finish = agent.FinishToolCalls
	}

	return &agent.Completion{
		Text:         text,
		ToolCalls:    toolCalls,
		FinishReason: finish,
	}, nil
}

// splitSystem collects system messages into the dedicated system parameter
// and returns the remaining conversation.
func splitSystem(messages []agent.Message) (string, []agent.Message) {
	var system []string
	rest := make([]agent.Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == "system" {
			system = append(system, m.Content)
			continue
		}
		rest = append(rest, m)
	}
	return strings.Join(system, "\n\n"), rest
}

func convertMessages(messages []agent.Message) []anthropic.MessageParam {
	var result []anthropic.MessageParam
	i := 0
	for i < len(messages) {
		m := messages[i]
		switch m.Role {
		case "assistant":
			var blocks []anthropic.ContentBlockParamUnion
			if m.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Content))
			}
			for _, tc := range m.ToolCalls {
				blocks = append(blocks, anthropic.NewToolUseBlock(tc.ID, tc.Args, tc.Name))
			}
			result = append(result, anthropic.NewAssistantMessage(blocks...))
			i++
		case "tool":
			// Group consecutive "tool" messages into a single user message
			var toolBlocks []anthropic.ContentBlockParamUnion
			for i < len(messages) && messages[i].Role == "tool" {
				toolBlocks = append(toolBlocks,
					anthropic.NewToolResultBlock(messages[i].ToolCallID, messages[i].Content, false),
				)
				i++
			}
			result = append(result, anthropic.NewUserMessage(toolBlocks...))
		default: // "user"
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
			i++
		}
	}
	return result
}

func convertTools(tools []agent.Tool) []anthropic.ToolUnionParam {
	result := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, t := range tools {
		var schema struct {
			Properties any      `json:"properties"`
			Required   []string `json:"required"`
		}
		json.Unmarshal(t.InputSchema, &schema) //nolint:errcheck

		tp := anthropic.ToolUnionParamOfTool(
			anthropic.ToolInputSchemaParam{
				Properties: schema.Properties,
				Required:   schema.Required,
			},
			t.Name,
		)
		tp.OfTool.Description = param.NewOpt(t.Description)
		result = append(result, tp)
	}
	return result
}
