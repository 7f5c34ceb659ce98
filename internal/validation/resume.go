package validation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/prompts"
	"github.com/jonathan/resume-extractor/internal/schemas"
)

// DefaultSchemaPath is the repo-relative location of the validated resume schema.
const DefaultSchemaPath = "schemas/validated_resume.schema.json"

// ValidatedResume is the structured record the model returns for a document
// it judges to be a resume.
type ValidatedResume struct {
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	PhoneNumber          string   `json:"phone_number"`
	SkillSet             []string `json:"skill_set"`
	Experience           []string `json:"experience"`
	Education            []string `json:"education"`
	Projects             []string `json:"projects"`
	TotalExperienceYears float64  `json:"total_experience_years"`
	Achievements         []string `json:"achievements"`
	Certifications       []string `json:"certifications"`
	TechnicalSkills      []string `json:"technical_skills"`
	SoftSkills           []string `json:"soft_skills"`
}

// Validator cross-checks raw document text with an LLM.
type Validator struct {
	client llm.Client

	// SchemaPath points at the JSON Schema to check responses against.
	// Empty disables the schema check.
	SchemaPath string
}

// NewValidator creates a Validator. The schema path is resolved relative to
// the working directory; when it cannot be found the schema check is skipped.
func NewValidator(client llm.Client) *Validator {
	return &Validator{
		client:     client,
		SchemaPath: schemas.ResolveSchemaPath(DefaultSchemaPath),
	}
}

// Validate sends the raw document text to the model and decodes its verdict.
// It returns ErrNotAResume when the model judges the document not to be a
// resume.
func (v *Validator) Validate(ctx context.Context, rawText string) (*ValidatedResume, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrNotAResume
	}

	check := CheckBasicHeuristics(rawText)
	LogInjectionWarning(check, "uploaded document")

	template, err := prompts.Get("validation.json", "validate-resume")
	if err != nil {
		return nil, &Error{Message: "failed to load validation prompt", Cause: err}
	}
	prompt := prompts.Format(template, map[string]string{
		"Text": QuoteExternalContent(rawText),
	})

	response, err := v.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &Error{Message: "model call failed", Cause: err}
	}

	return v.decode(response)
}

// decode parses the model response, recovering embedded JSON when the model
// surrounded it with prose, and applies the schema check.
func (v *Validator) decode(response string) (*ValidatedResume, error) {
	text := strings.TrimSpace(llm.CleanJSONBlock(response))

	if isEmptyObject(text) {
		return nil, ErrNotAResume
	}

	var result ValidatedResume
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		recovered := llm.ExtractJSONObject(text)
		if recovered == "" {
			return nil, &ResponseError{Message: "response is not JSON", Response: response, Cause: err}
		}
		if isEmptyObject(recovered) {
			return nil, ErrNotAResume
		}
		if err := json.Unmarshal([]byte(recovered), &result); err != nil {
			return nil, &ResponseError{Message: "recovered JSON is malformed", Response: response, Cause: err}
		}
		text = recovered
	}

	if v.SchemaPath != "" {
		schemaContent, err := os.ReadFile(v.SchemaPath)
		if err != nil {
			log.Printf("[VERBOSE] Skipping schema check, cannot read %s: %v", v.SchemaPath, err)
		} else if err := schemas.ValidateJSONString(string(schemaContent), text); err != nil {
			return nil, &ResponseError{Message: "response does not conform to schema", Response: response, Cause: err}
		}
	}

	normalize(&result)
	return &result, nil
}

// isEmptyObject reports whether text is the literal {} verdict, modulo
// whitespace.
func isEmptyObject(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "{}" {
		return true
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &probe); err != nil {
		return false
	}
	return len(probe) == 0
}

// normalize replaces nil slices with empty ones so downstream JSON output
// renders [] instead of null.
func normalize(r *ValidatedResume) {
	for _, s := range []*[]string{
		&r.SkillSet, &r.Experience, &r.Education, &r.Projects,
		&r.Achievements, &r.Certifications, &r.TechnicalSkills, &r.SoftSkills,
	} {
		if *s == nil {
			*s = []string{}
		}
	}
}

// Summary returns a short human-readable digest for verbose logging.
func (r *ValidatedResume) Summary() string {
	return fmt.Sprintf("%s <%s> skills=%d experience=%d education=%d years=%.1f",
		r.Name, r.Email, len(r.SkillSet), len(r.Experience), len(r.Education), r.TotalExperienceYears)
}
