package services

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is the model every chat prompt is sent to.
const DefaultGeminiModel = "gemini-2.5-flash"

// ErrMissingAPIKey is returned when no Gemini credential was configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

type GeminiService struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	logger    zerolog.Logger
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, logger zerolog.Logger) (*GeminiService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return &GeminiService{
		client:    client,
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
		logger:    logger.With().Str("model", modelName).Logger(),
	}, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

func (s *GeminiService) ModelName() string {
	return s.modelName
}

// Generate sends prompt as a single-turn request and returns the text of the
// first candidate. Errors keep the upstream message and gain a stack trace.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.WithStack(err)
	}

	for i, cand := range resp.Candidates {
		ev := s.logger.Debug().Int("candidate", i).Str("finish_reason", cand.FinishReason.String())
		if resp.UsageMetadata != nil {
			ev = ev.Int32("total_tokens", resp.UsageMetadata.TotalTokenCount)
		}
		ev.Msg("Gemini candidate")
		if cand.FinishReason != genai.FinishReasonStop {
			s.logger.Warn().Str("finish_reason", cand.FinishReason.String()).Msg("Gemini stopped early")
		}
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("Gemini returned no candidates")
	}

	return extractText(resp), nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return ""
	}

	var text strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return text.String()
}
