package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// generate drives one bounded agent loop for an employer message and returns
// the final response text together with the full conversation. Tools are
// offered only on the first iteration: after one tool round the model is
// forced into plain text, which caps the branching factor of tool-call
// cascades to exactly one round.
func (a *Assistant) generate(ctx context.Context, employerMessage string) (string, []Message, error) {
	messages := []Message{
		{Role: "system", Content: systemPrompt(a.cfg.profile)},
		{Role: "user", Content: employerMessage},
	}

	for iteration := 1; iteration <= a.cfg.maxGenerationIterations; iteration++ {
		req := CompleteRequest{
			Messages:    messages,
			Temperature: a.cfg.generationTemperature,
		}
		if iteration == 1 {
			req.Tools = a.tools
		}

		comp, err := a.cfg.client.Complete(ctx, req)
		if err != nil {
			return "", messages, fmt.Errorf("complete: %w", err)
		}

		if comp.FinishReason != FinishToolCalls {
			return comp.Text, messages, nil
		}

		if iteration > 1 {
			// Tools are disabled after the first round; follow-up tool
			// requests are never serviced.
			a.cfg.logger.Debug("ignoring tool request after first round", zap.Int("iteration", iteration))
			continue
		}

		// Append the assistant's tool-call request verbatim so results can
		// be correlated by call ID.
		messages = append(messages, Message{
			Role:      "assistant",
			Content:   comp.Text,
			ToolCalls: comp.ToolCalls,
		})

		for _, call := range comp.ToolCalls {
			a.cfg.logger.Info("tool called",
				zap.String("tool", call.Name),
				zap.String("call_id", call.ID),
			)
			messages = append(messages, Message{
				Role:       "tool",
				ToolCallID: call.ID,
				Content:    a.runTool(ctx, call),
			})
		}

		messages = append(messages, Message{Role: "user", Content: finalAnswerInstruction})
	}

	return FallbackResponse, messages, nil
}

// runTool decodes the model-supplied arguments and invokes the registry.
// Malformed arguments become an "invalid arguments" tool result rather than
// an error: the conversation always gets a usable tool-role message.
func (a *Assistant) runTool(ctx context.Context, call ToolCall) string {
	var args map[string]any
	if len(call.Args) > 0 {
		if err := json.Unmarshal(call.Args, &args); err != nil {
			return encodeToolResult(invalidArgs(err.Error()))
		}
	}
	return encodeToolResult(a.registry.Invoke(ctx, call.Name, args))
}

func encodeToolResult(result map[string]any) string {
	out, err := json.Marshal(result)
	if err != nil {
		return `{"error": "unencodable tool result"}`
	}
	return string(out)
}
