package nlp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/prompts"
)

// geminiEntityMaxChars bounds the text sent to the model per call. Resume
// headers carry the high-value entities, so truncation is cheap.
const geminiEntityMaxChars = 8000

// GeminiRecognizer implements Recognizer using a Gemini model.
type GeminiRecognizer struct {
	client llm.Client
}

// NewGeminiRecognizer creates a Recognizer backed by the given LLM client.
func NewGeminiRecognizer(client llm.Client) *GeminiRecognizer {
	return &GeminiRecognizer{client: client}
}

// Entities extracts named entities from text using the lite model tier.
func (r *GeminiRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	if text == "" {
		return nil, nil
	}
	if len(text) > geminiEntityMaxChars {
		text = text[:geminiEntityMaxChars]
	}

	template, err := prompts.Get("entities.json", "recognize-entities")
	if err != nil {
		return nil, fmt.Errorf("failed to load entity prompt: %w", err)
	}
	prompt := prompts.Format(template, map[string]string{"Text": text})

	response, err := r.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("entity recognition failed: %w", err)
	}

	return parseEntities(response)
}

// parseEntities decodes the model's JSON array, dropping elements with
// unknown categories or empty text rather than failing the whole batch.
func parseEntities(response string) ([]Entity, error) {
	var raw []Entity
	if err := json.Unmarshal([]byte(response), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse entity response: %w", err)
	}

	entities := make([]Entity, 0, len(raw))
	for _, e := range raw {
		if e.Text == "" {
			continue
		}
		switch e.Category {
		case CategoryPerson, CategoryGPE, CategoryLocation, CategoryOrganization:
			entities = append(entities, e)
		}
	}
	return entities, nil
}
