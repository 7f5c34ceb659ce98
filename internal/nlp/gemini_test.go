package nlp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/llm"
)

// stubLLM returns a canned response for GenerateJSON.
type stubLLM struct {
	response string
	err      error
	prompt   string
}

func (s *stubLLM) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubLLM) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubLLM) GetModel(llm.ModelTier) string { return "stub" }
func (s *stubLLM) Close() error                  { return nil }

func TestGeminiRecognizerEntities(t *testing.T) {
	stub := &stubLLM{
		response: `[{"text": "Jane Doe", "label": "PERSON"}, {"text": "Acme Corp", "label": "ORG"}, {"text": "Seattle", "label": "GPE"}]`,
	}
	rec := NewGeminiRecognizer(stub)

	entities, err := rec.Entities(context.Background(), "Jane Doe worked at Acme Corp in Seattle")
	require.NoError(t, err)
	require.Len(t, entities, 3)
	assert.Equal(t, Entity{Text: "Jane Doe", Category: CategoryPerson}, entities[0])
	assert.Equal(t, Entity{Text: "Acme Corp", Category: CategoryOrganization}, entities[1])
	assert.True(t, entities[2].IsLocation())

	assert.Contains(t, stub.prompt, "Jane Doe worked at Acme Corp in Seattle")
}

func TestGeminiRecognizerDropsUnknownCategories(t *testing.T) {
	stub := &stubLLM{
		response: `[{"text": "2020", "label": "DATE"}, {"text": "", "label": "PERSON"}, {"text": "Jane", "label": "PERSON"}]`,
	}
	rec := NewGeminiRecognizer(stub)

	entities, err := rec.Entities(context.Background(), "Jane in 2020")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Jane", entities[0].Text)
}

func TestGeminiRecognizerEmptyText(t *testing.T) {
	stub := &stubLLM{response: `[]`}
	rec := NewGeminiRecognizer(stub)

	entities, err := rec.Entities(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, entities)
	// No model call for empty input
	assert.Empty(t, stub.prompt)
}

func TestGeminiRecognizerClientError(t *testing.T) {
	stub := &stubLLM{err: errors.New("quota exceeded")}
	rec := NewGeminiRecognizer(stub)

	_, err := rec.Entities(context.Background(), "some text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entity recognition failed")
}

func TestGeminiRecognizerMalformedResponse(t *testing.T) {
	stub := &stubLLM{response: "not json at all"}
	rec := NewGeminiRecognizer(stub)

	_, err := rec.Entities(context.Background(), "some text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestGeminiRecognizerTruncatesLongInput(t *testing.T) {
	stub := &stubLLM{response: `[]`}
	rec := NewGeminiRecognizer(stub)

	long := make([]byte, geminiEntityMaxChars*2)
	for i := range long {
		long[i] = 'a'
	}

	_, err := rec.Entities(context.Background(), string(long))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(stub.prompt), geminiEntityMaxChars+1000)
}
