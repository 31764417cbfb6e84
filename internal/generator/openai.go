package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"assessment-service/internal/models"
)

// OpenAIProvider generates questions through an OpenAI-compatible chat
// completion API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAIProvider(apiKey, baseURL, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: 0.7,
	}, nil
}

// questionPayload is the raw model output before validation.
type questionPayload struct {
	Text           string   `json:"text"`
	Type           string   `json:"type"`
	Options        []string `json:"options"`
	CorrectAnswers []string `json:"correct_answers"`
	Explanation    string   `json:"explanation"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*models.Question, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: p.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}
	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return nil, ErrContentFiltered
	}

	return parseQuestion([]byte(choice.Message.Content), req)
}

// parseQuestion validates the raw payload at the provider boundary so only
// well-formed, correctly typed questions reach the engine.
func parseQuestion(content []byte, req Request) (*models.Question, error) {
	var raw questionPayload
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("malformed question payload: %w", err)
	}

	qt := models.QuestionType(strings.ToLower(strings.TrimSpace(raw.Type)))
	if !qt.Valid() {
		return nil, fmt.Errorf("unknown question type %q", raw.Type)
	}
	if strings.TrimSpace(raw.Text) == "" {
		return nil, fmt.Errorf("question text is empty")
	}
	if len(raw.CorrectAnswers) == 0 {
		return nil, fmt.Errorf("question has no answer key")
	}
	if qt == models.QuestionMCQ && len(raw.Options) < 2 {
		return nil, fmt.Errorf("mcq question needs options, got %d", len(raw.Options))
	}

	return &models.Question{
		ID:             uuid.NewString(),
		Area:           req.Area,
		Text:           raw.Text,
		Type:           qt,
		Options:        raw.Options,
		CorrectAnswers: raw.CorrectAnswers,
		Explanation:    raw.Explanation,
		Difficulty:     req.Difficulty,
	}, nil
}
