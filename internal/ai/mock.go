package ai

import (
	"context"
	"fmt"

	"hackscout/internal/model"
)

// Mock produces deterministic output: the same input always yields the same
// result, and nothing touches the network. It backs both the unconfigured mode
// and the remote strategy's failure path.
type Mock struct{}

func NewMock() *Mock { return &Mock{} }

func (m *Mock) Available() bool { return false }

func (m *Mock) GenerateProjectIdeas(_ context.Context, theme string, _ []string, _ string) []model.Idea {
	return []model.Idea{
		{
			Name:         fmt.Sprintf("AI-Powered %s Assistant", theme),
			Description:  fmt.Sprintf("An intelligent assistant that helps users navigate and interact with %s related content using natural language processing.", theme),
			Technologies: []string{"Python", "React", "OpenAI API", "FastAPI"},
			Impact:       "Improves user experience and accessibility",
			TimeEstimate: "24-48 hours",
		},
		{
			Name:         fmt.Sprintf("%s Analytics Dashboard", theme),
			Description:  fmt.Sprintf("A comprehensive dashboard that visualizes %s data and provides actionable insights.", theme),
			Technologies: []string{"JavaScript", "D3.js", "Node.js", "MongoDB"},
			Impact:       "Data-driven decision making",
			TimeEstimate: "36-48 hours",
		},
		{
			Name:         fmt.Sprintf("%s Community Platform", theme),
			Description:  fmt.Sprintf("A social platform for %s enthusiasts to connect, share, and collaborate.", theme),
			Technologies: []string{"React", "Firebase", "Tailwind CSS", "Socket.io"},
			Impact:       "Builds community engagement",
			TimeEstimate: "48-72 hours",
		},
	}
}

// MatchTeammates scores the first five candidates 5 down to 1 in input order.
// This is a placeholder ranking; real matching semantics live on the remote
// path only.
func (m *Mock) MatchTeammates(_ context.Context, profile model.Profile, candidates []model.Candidate) []model.Match {
	skill := "collaboration"
	if len(profile.Skills) > 0 {
		skill = profile.Skills[0]
	}
	n := len(candidates)
	if n > 5 {
		n = 5
	}
	out := make([]model.Match, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Match{
			CandidateID: candidates[i].ID,
			Score:       5 - i,
			Reason:      fmt.Sprintf("Strong %s skills and similar interests", skill),
		})
	}
	return out
}

func (m *Mock) GenerateContent(_ context.Context, kind string, fields map[string]string) string {
	switch kind {
	case KindAnnouncement:
		return fmt.Sprintf("🎉 Welcome to %s! We're excited to have you join us for this incredible hackathon experience. Get ready to innovate, collaborate, and build something amazing!", fields["event"])
	case KindDescription:
		return fmt.Sprintf("%s is an exciting hackathon focused on %s. Join us for %s of intense coding, learning, and innovation!", fields["title"], fields["theme"], fields["duration"])
	case KindRules:
		return fmt.Sprintf("Hackathon Rules for %s (%s): 1) Be respectful and inclusive 2) Original work only 3) Submit on time 4) Have fun!", fields["event"], fields["duration"])
	default:
		return "Generated content here..."
	}
}

func (m *Mock) AnalyzeProject(_ context.Context, _ model.Project) model.ProjectAnalysis {
	return model.ProjectAnalysis{
		Innovation:   4.2,
		Technical:    3.8,
		UX:           4.0,
		Impact:       4.5,
		Improvements: "Consider adding more user testing and performance optimization.",
	}
}

func (m *Mock) GenerateLearningPath(_ context.Context, _ []string, _ string) model.LearningPath {
	return model.LearningPath{
		Technologies: []string{"React", "Node.js", "MongoDB"},
		Resources:    []string{"React docs", "Node.js tutorials", "MongoDB university"},
		Projects:     []string{"Todo app", "API development", "Database design"},
		Timeline:     "2-3 weeks",
	}
}

func (m *Mock) PredictSuccess(_ context.Context, _ model.Hackathon) model.SuccessForecast {
	return model.SuccessForecast{
		Engagement: 85,
		Completion: 78,
		Quality:    4.2,
		Feedback:   4.5,
	}
}
