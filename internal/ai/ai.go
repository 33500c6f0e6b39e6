// Package ai implements the generative assistant service. The remote strategy
// calls an OpenAI-compatible chat completions endpoint; the mock strategy
// produces deterministic output. Callers never see a failure: the remote
// strategy degrades to the mock on any error.
package ai

import (
	"context"

	"hackscout/internal/model"
)

// Content kinds recognized by GenerateContent. Anything else falls through to
// a generic template.
const (
	KindAnnouncement = "announcement"
	KindDescription  = "description"
	KindRules        = "rules"
)

// Assistant is the caller-facing surface of the generation service.
// Operations are infallible by contract: worst case is mock output.
type Assistant interface {
	// Available reports whether a remote endpoint is configured. Resolved once
	// at construction.
	Available() bool
	GenerateProjectIdeas(ctx context.Context, theme string, skills []string, difficulty string) []model.Idea
	MatchTeammates(ctx context.Context, profile model.Profile, candidates []model.Candidate) []model.Match
	GenerateContent(ctx context.Context, kind string, fields map[string]string) string
	AnalyzeProject(ctx context.Context, project model.Project) model.ProjectAnalysis
	GenerateLearningPath(ctx context.Context, skills []string, theme string) model.LearningPath
	PredictSuccess(ctx context.Context, h model.Hackathon) model.SuccessForecast
}

// Config selects the strategy. An empty APIKey means mock-only.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

// New resolves the strategy from the presence of a credential.
func New(cfg Config) Assistant {
	if cfg.APIKey == "" {
		return NewMock()
	}
	return newOpenAI(cfg)
}
