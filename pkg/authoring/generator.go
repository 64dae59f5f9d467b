package authoring

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/coursemd/coursemd/pkg/errors"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

const maxOutputTokens = 4096

// Generator produces a Japanese lecture body from an English transcript.
type Generator interface {
	Generate(ctx context.Context, transcript, title, sectionTitle string) (string, error)
}

// GeminiGenerator implements Generator on the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator authenticating with apiKey.
// Pass an empty model to use DefaultModel.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeUnauthorized, "Gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGeneration, err, "create Gemini client")
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate produces the MDX body for one lecture. The returned text has
// no frontmatter; callers attach their own.
func (g *GeminiGenerator) Generate(ctx context.Context, transcript, title, sectionTitle string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(buildUserPrompt(transcript, title, sectionTitle)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			MaxOutputTokens:   maxOutputTokens,
		},
	)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeGeneration, err, "generate content for %q", title)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.New(errors.ErrCodeGeneration, "model returned no text for %q", title)
	}
	return text, nil
}
