package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

// NarrativeRepository generates the display-only bear/bull debate text.
// Its output never feeds the judge.
type NarrativeRepository interface {
	GenerateDebate(ctx context.Context, ticker, thesis, quantJSON string) (bear string, bull string, err error)
}

const bearSystemPrompt = `You are the Risk Analyst. List concrete downside risks only.

Rules:
- Categories: regulatory, valuation, competitive, macro.
- No conclusions or recommendations. No fabricated data.
- Data from public sources may be missing or delayed; do not invent numbers.
- Output: structured list of risks only. No preamble.`

const bullSystemPrompt = `You are the Growth Advocate. Argue upside while acknowledging risks.

Rules:
- First acknowledge the Bear (Risk Analyst) arguments given.
- Then counter with growth narratives/catalysts. No invented numbers.
- Public data may be N/A or delayed; only use numbers when provided.
- No conclusions or final recommendation. Concise and controlled.`

type chatGptNarrativeHandler struct {
	GptClient *chatgpt.Client
	Model     chatgpt.ChatGPTModel
}

// NewNarrativeRepository builds the ChatGPT-backed debate generator.
// Provider selection lives entirely in this constructor's arguments -
// nothing here reads ambient global state. An empty api key yields a
// repository that returns placeholder text instead of calling out.
func NewNarrativeRepository(apiKey string, model string) (NarrativeRepository, error) {
	if model == "" {
		model = string(chatgpt.GPT4)
	}
	if apiKey == "" {
		return &chatGptNarrativeHandler{Model: chatgpt.ChatGPTModel(model)}, nil
	}
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}
	return &chatGptNarrativeHandler{
		GptClient: client,
		Model:     chatgpt.ChatGPTModel(model),
	}, nil
}

func (h *chatGptNarrativeHandler) GenerateDebate(ctx context.Context, ticker, thesis, quantJSON string) (string, string, error) {
	if h.GptClient == nil {
		return "[API key not configured]", "[API key not configured]", nil
	}

	bearUser := fmt.Sprintf("Ticker: %s\nThesis: %s\nQuantitative data (may contain N/A):\n%s", ticker, thesis, quantJSON)
	bear, err := h.complete(ctx, bearSystemPrompt, bearUser)
	if err != nil {
		return "", "", fmt.Errorf("failed to run bear agent for %s: %w", ticker, err)
	}

	bullUser := fmt.Sprintf("%s\n\nRisk Analyst arguments:\n%s", bearUser, bear)
	bull, err := h.complete(ctx, bullSystemPrompt, bullUser)
	if err != nil {
		return "", "", fmt.Errorf("failed to run bull agent for %s: %w", ticker, err)
	}

	return bear, bull, nil
}

func (h *chatGptNarrativeHandler) complete(ctx context.Context, system, user string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: h.Model,
		Messages: []chatgpt.ChatMessage{
			{Role: chatgpt.ChatGPTModelRoleSystem, Content: system},
			{Role: chatgpt.ChatGPTModelRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(res.Choices) == 0 {
		return "[Empty response]", nil
	}
	return res.Choices[0].Message.Content, nil
}
