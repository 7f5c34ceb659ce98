package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/llm"
)

const validResponse = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone_number": "5551234567",
	"skill_set": ["python", "go"],
	"experience": ["2019 - 2021 Software Engineer at Acme"],
	"education": ["BS Computer Science, 2018"],
	"projects": [],
	"total_experience_years": 2,
	"achievements": [],
	"certifications": [],
	"technical_skills": ["python", "go"],
	"soft_skills": []
}`

type stubClient struct {
	response string
	err      error
	prompt   string
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub" }
func (s *stubClient) Close() error                  { return nil }

func TestValidate_Resume(t *testing.T) {
	stub := &stubClient{response: validResponse}
	v := NewValidator(stub)

	result, err := v.Validate(context.Background(), "Jane Doe\njane@example.com\nExperience ...")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.Name)
	assert.Equal(t, "jane@example.com", result.Email)
	assert.Equal(t, []string{"python", "go"}, result.SkillSet)
	assert.Equal(t, 2.0, result.TotalExperienceYears)
	// nil slices normalized
	assert.NotNil(t, result.Projects)
	assert.Empty(t, result.Projects)
}

func TestValidate_NotAResume(t *testing.T) {
	stub := &stubClient{response: "{}"}
	v := NewValidator(stub)

	_, err := v.Validate(context.Background(), "A cake recipe. Beat the eggs.")
	assert.ErrorIs(t, err, ErrNotAResume)
}

func TestValidate_NotAResumeWithWhitespace(t *testing.T) {
	stub := &stubClient{response: "  { }  \n"}
	v := NewValidator(stub)

	_, err := v.Validate(context.Background(), "grocery list")
	assert.ErrorIs(t, err, ErrNotAResume)
}

func TestValidate_EmptyInput(t *testing.T) {
	stub := &stubClient{response: validResponse}
	v := NewValidator(stub)

	_, err := v.Validate(context.Background(), "   \n  ")
	assert.ErrorIs(t, err, ErrNotAResume)
	// The model is never called for empty input
	assert.Empty(t, stub.prompt)
}

func TestValidate_QuotesDocumentInPrompt(t *testing.T) {
	stub := &stubClient{response: validResponse}
	v := NewValidator(stub)

	_, err := v.Validate(context.Background(), "Jane Doe resume text")
	require.NoError(t, err)
	assert.Contains(t, stub.prompt, "BEGIN QUOTED DOCUMENT")
	assert.Contains(t, stub.prompt, "Jane Doe resume text")
}

func TestValidate_RecoversJSONFromProse(t *testing.T) {
	stub := &stubClient{response: "Sure, here is the extraction:\n" + validResponse + "\nLet me know if you need more."}
	v := NewValidator(stub)

	result, err := v.Validate(context.Background(), "Jane Doe resume text")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.Name)
}

func TestValidate_FencedResponse(t *testing.T) {
	stub := &stubClient{response: "```json\n" + validResponse + "\n```"}
	v := NewValidator(stub)

	result, err := v.Validate(context.Background(), "Jane Doe resume text")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.Name)
}

func TestValidate_ModelError(t *testing.T) {
	stub := &stubClient{err: errors.New("deadline exceeded")}
	v := NewValidator(stub)

	_, err := v.Validate(context.Background(), "text")
	require.Error(t, err)

	var verr *Error
	assert.ErrorAs(t, err, &verr)
}

func TestValidate_GarbageResponse(t *testing.T) {
	stub := &stubClient{response: "I cannot help with that."}
	v := NewValidator(stub)

	_, err := v.Validate(context.Background(), "text")
	require.Error(t, err)

	var rerr *ResponseError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Response, "cannot help")
}

func TestValidate_SchemaRejectsIncompleteResponse(t *testing.T) {
	stub := &stubClient{response: `{"name": "Jane Doe"}`}
	v := NewValidator(stub)
	require.NotEmpty(t, v.SchemaPath, "schema should resolve from the package directory")

	_, err := v.Validate(context.Background(), "text")
	require.Error(t, err)

	var rerr *ResponseError
	assert.ErrorAs(t, err, &rerr)
}

func TestValidate_SchemaCheckDisabled(t *testing.T) {
	stub := &stubClient{response: `{"name": "Jane Doe"}`}
	v := NewValidator(stub)
	v.SchemaPath = ""

	result, err := v.Validate(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.Name)
	assert.NotNil(t, result.SkillSet)
}

func TestSummary(t *testing.T) {
	r := &ValidatedResume{
		Name:                 "Jane Doe",
		Email:                "jane@example.com",
		SkillSet:             []string{"go"},
		TotalExperienceYears: 4.5,
	}

	s := r.Summary()
	assert.Contains(t, s, "Jane Doe")
	assert.Contains(t, s, "skills=1")
	assert.Contains(t, s, "years=4.5")
}
