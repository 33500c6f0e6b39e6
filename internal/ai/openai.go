package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"hackscout/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIAssistant implements Assistant against an OpenAI-compatible chat
// completions endpoint. Every transport, status, or parse failure is logged
// and answered with the embedded mock's output instead.
type OpenAIAssistant struct {
	client *openai.Client
	model  string
	mock   *Mock
}

func newOpenAI(cfg Config) *OpenAIAssistant {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	m := cfg.Model
	if m == "" {
		m = openai.GPT3Dot5Turbo
	}
	return &OpenAIAssistant{client: c, model: m, mock: NewMock()}
}

func (o *OpenAIAssistant) Available() bool { return true }

func (o *OpenAIAssistant) GenerateProjectIdeas(ctx context.Context, theme string, skills []string, difficulty string) []model.Idea {
	out, err := o.create(ctx, ideasPrompt(theme, skills, difficulty))
	if err != nil {
		slog.Error("ai: generate ideas error", "error", err)
		return o.mock.GenerateProjectIdeas(ctx, theme, skills, difficulty)
	}
	var ideas []model.Idea
	if err := decodeJSON(out, &ideas); err != nil || len(ideas) == 0 {
		slog.Error("ai: generate ideas parse error", "error", err)
		return o.mock.GenerateProjectIdeas(ctx, theme, skills, difficulty)
	}
	return ideas
}

func (o *OpenAIAssistant) MatchTeammates(ctx context.Context, profile model.Profile, candidates []model.Candidate) []model.Match {
	out, err := o.create(ctx, matchPrompt(profile, candidates))
	if err != nil {
		slog.Error("ai: match teammates error", "error", err)
		return o.mock.MatchTeammates(ctx, profile, candidates)
	}
	var matches []model.Match
	if err := decodeJSON(out, &matches); err != nil || len(matches) == 0 {
		slog.Error("ai: match teammates parse error", "error", err)
		return o.mock.MatchTeammates(ctx, profile, candidates)
	}
	for i := range matches {
		if matches[i].Score < 1 {
			matches[i].Score = 1
		}
		if matches[i].Score > 5 {
			matches[i].Score = 5
		}
	}
	// Stable: ties keep candidate input order.
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	return matches
}

func (o *OpenAIAssistant) GenerateContent(ctx context.Context, kind string, fields map[string]string) string {
	out, err := o.create(ctx, contentPrompt(kind, fields))
	if err != nil {
		slog.Error("ai: generate content error", "kind", kind, "error", err)
		return o.mock.GenerateContent(ctx, kind, fields)
	}
	return strings.TrimSpace(out)
}

func (o *OpenAIAssistant) AnalyzeProject(ctx context.Context, project model.Project) model.ProjectAnalysis {
	out, err := o.create(ctx, analyzePrompt(project))
	if err != nil {
		slog.Error("ai: analyze project error", "error", err)
		return o.mock.AnalyzeProject(ctx, project)
	}
	var analysis model.ProjectAnalysis
	if err := decodeJSON(out, &analysis); err != nil {
		slog.Error("ai: analyze project parse error", "error", err)
		return o.mock.AnalyzeProject(ctx, project)
	}
	return analysis
}

func (o *OpenAIAssistant) GenerateLearningPath(ctx context.Context, skills []string, theme string) model.LearningPath {
	out, err := o.create(ctx, learningPathPrompt(skills, theme))
	if err != nil {
		slog.Error("ai: learning path error", "error", err)
		return o.mock.GenerateLearningPath(ctx, skills, theme)
	}
	var path model.LearningPath
	if err := decodeJSON(out, &path); err != nil {
		slog.Error("ai: learning path parse error", "error", err)
		return o.mock.GenerateLearningPath(ctx, skills, theme)
	}
	return path
}

func (o *OpenAIAssistant) PredictSuccess(ctx context.Context, h model.Hackathon) model.SuccessForecast {
	out, err := o.create(ctx, predictPrompt(h))
	if err != nil {
		slog.Error("ai: predict success error", "error", err)
		return o.mock.PredictSuccess(ctx, h)
	}
	var forecast model.SuccessForecast
	if err := decodeJSON(out, &forecast); err != nil {
		slog.Error("ai: predict success parse error", "error", err)
		return o.mock.PredictSuccess(ctx, h)
	}
	return forecast
}

func (o *OpenAIAssistant) create(ctx context.Context, prompt string) (string, error) {
	// Default timeout guard, if caller didn't set one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 120*time.Second)
		defer cancel()
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

// decodeJSON parses a completion body that may arrive wrapped in markdown
// code fences.
func decodeJSON(body string, v any) error {
	s := strings.TrimSpace(body)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("malformed completion: %w", err)
	}
	return nil
}
