package analysis

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/profile-analyzer/internal/config"
	"github.com/jonathan/profile-analyzer/internal/matching"
	"github.com/jonathan/profile-analyzer/internal/types"
)

// ErrNilProfile is returned when Analyze is called without a profile.
// Absent optional fields are valid; a missing record is not.
var ErrNilProfile = errors.New("analysis: profile must not be nil")

// Analyzer is the engine's single entry point. It holds the validated
// configuration and keeps no per-call state, so one Analyzer is safe to use
// across goroutines for independent inputs.
type Analyzer struct {
	cfg     *config.Config
	matcher *matching.Matcher
}

// New creates an Analyzer from a validated configuration.
func New(cfg *config.Config) *Analyzer {
	return &Analyzer{cfg: cfg, matcher: matching.New(cfg)}
}

// NewAt creates an Analyzer whose recency reference year is fixed, which
// keeps scores reproducible in tests.
func NewAt(cfg *config.Config, refYear int) *Analyzer {
	return &Analyzer{cfg: cfg, matcher: matching.NewAt(cfg, refYear)}
}

// Analyze runs every scorer over the normalized profile and assembles a
// fresh Analysis. The independent sub-scorers fan out over the same
// immutable profile and write to disjoint result fields; the job matcher
// runs after the keyword analysis it depends on. An empty job description
// leaves JobMatch nil and the keyword sets empty.
func (a *Analyzer) Analyze(ctx context.Context, profile *types.Profile, jobDescription string) (*types.Analysis, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}

	result := &types.Analysis{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.CompletenessScore = Completeness(a.cfg, profile)
		return nil
	})
	g.Go(func() error {
		result.ContentQuality = AssessQuality(a.cfg, profile)
		return nil
	})
	g.Go(func() error {
		result.SkillCategories = Categorize(a.cfg, profile.Skills)
		return nil
	})
	g.Go(func() error {
		result.Keywords = AnalyzeKeywords(a.cfg, a.matcher.Synonyms(), profile, jobDescription)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.JobMatch = a.matcher.Match(profile, jobDescription, result.Keywords)

	result.Strengths = Strengths(profile, result.ContentQuality, a.cfg)
	result.Weaknesses = Weaknesses(profile, result.ContentQuality)
	result.Recommendations = Recommendations(result.Weaknesses, result.JobMatch)

	return result, nil
}
