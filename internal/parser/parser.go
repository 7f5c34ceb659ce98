package parser

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-extractor/internal/nlp"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Parser assembles the output record from the individual extractors. The
// zero-value defaults give the pattern-only behavior: no entity
// recognition, no fuzzy matching, the built-in skill vocabulary.
type Parser struct {
	recognizer      nlp.Recognizer
	scorer          SimilarityScorer
	vocab           []string
	fuzzyThreshold  int
	summaryMaxLines int
	maxLocations    int
	now             func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithRecognizer wires in an entity-recognition collaborator. A nil
// recognizer leaves the pattern-only fallbacks in place.
func WithRecognizer(r nlp.Recognizer) Option {
	return func(p *Parser) { p.recognizer = r }
}

// WithSimilarityScorer wires in the fuzzy-matching collaborator used by
// the skills extractor.
func WithSimilarityScorer(s SimilarityScorer) Option {
	return func(p *Parser) { p.scorer = s }
}

// WithSkillVocabulary overrides the skill vocabulary.
func WithSkillVocabulary(vocab []string) Option {
	return func(p *Parser) {
		if len(vocab) > 0 {
			p.vocab = vocab
		}
	}
}

// WithFuzzyThreshold overrides the minimum partial-ratio score for a fuzzy
// skill hit.
func WithFuzzyThreshold(threshold int) Option {
	return func(p *Parser) {
		if threshold > 0 {
			p.fuzzyThreshold = threshold
		}
	}
}

// WithSummaryMaxLines overrides how many leading lines form the summary.
func WithSummaryMaxLines(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.summaryMaxLines = n
		}
	}
}

// WithClock overrides the time source. Tests use it to pin the year that
// "present" resolves to and to compare records across runs.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		vocab:           DefaultSkillVocabulary,
		fuzzyThreshold:  DefaultFuzzyThreshold,
		summaryMaxLines: DefaultSummaryMaxLines,
		maxLocations:    DefaultMaxLocations,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// fieldSafe wraps an extractor call so a panic on pathological input
// leaves only that field at its default instead of taking down the run.
func fieldSafe(fn func()) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[VERBOSE] Extractor panicked, leaving field at default: %v", r)
			}
		}()
		fn()
		return nil
	}
}

// Parse runs the full pipeline over raw extracted text and returns the
// assembled record. It never fails: empty input produces a fully
// default-valued record, and a single extractor finding nothing leaves
// only its own field empty.
//
// The stateless extractors run concurrently; they share the same immutable
// text and write disjoint record fields. Correctness does not depend on
// the parallelism.
func (p *Parser) Parse(ctx context.Context, rawText, sourcePath string) *types.ResumeRecord {
	record := types.NewResumeRecord(sourcePath)
	record.ExtractedAt = p.now().UTC()

	text := NormalizeText(rawText)
	if text == "" {
		return record
	}

	sections := SplitSections(text)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(fieldSafe(func() {
		record.Email = ExtractEmail(text)
	}))
	g.Go(fieldSafe(func() {
		record.Phones = ExtractPhones(text)
	}))
	g.Go(fieldSafe(func() {
		record.URLs = ExtractURLs(text)
	}))
	g.Go(fieldSafe(func() {
		record.Name = ExtractName(gctx, p.recognizer, text)
	}))
	g.Go(fieldSafe(func() {
		record.Skills = ExtractSkills(text, p.vocab, p.scorer, p.fuzzyThreshold)
	}))
	g.Go(fieldSafe(func() {
		record.Summary = ExtractSummary(text, p.summaryMaxLines)
	}))
	g.Go(fieldSafe(func() {
		record.Certifications = ExtractCertifications(text)
	}))
	g.Go(fieldSafe(func() {
		record.Locations = ExtractLocations(gctx, p.recognizer, text, p.maxLocations)
	}))
	_ = g.Wait()

	// Section-scoped extractors run after segmentation.
	fieldSafe(func() {
		record.Education = ReconstructEducation(sections.Get(TagEducation))
	})()
	fieldSafe(func() {
		record.Experience = ReconstructExperience(sections.Get(TagExperience))
	})()
	fieldSafe(func() {
		record.Projects = ExtractProjects(sections)
	})()
	fieldSafe(func() {
		record.RoleTitles = ExtractRoleTitles(ctx, p.recognizer, sections.Get(TagExperience))
	})()
	fieldSafe(func() {
		tenureText := sections.Get(TagExperience)
		if tenureText == "" {
			tenureText = text
		}
		record.YearsExperience = EstimateYearsExperience(tenureText, p.now().Year())
	})()

	return record
}
