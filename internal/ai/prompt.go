package ai

import (
	"fmt"
	"sort"
	"strings"

	"hackscout/internal/model"
)

func ideasPrompt(theme string, skills []string, difficulty string) string {
	return fmt.Sprintf(`Generate 5 innovative project ideas for a hackathon with theme %q.
Consider these skills: %s.
Difficulty level: %s.
For each idea, provide:
- Project name
- Brief description (2-3 sentences)
- Required technologies
- Potential impact
- Estimated development time

Format as JSON array with fields: name, description, technologies, impact, timeEstimate`,
		theme, strings.Join(skills, ", "), difficulty)
}

func matchPrompt(profile model.Profile, candidates []model.Candidate) string {
	var b strings.Builder
	for _, c := range candidates {
		fmt.Fprintf(&b, "- %s (id %s): Skills: %s, Experience: %s\n", c.Name, c.ID, strings.Join(c.Skills, ", "), c.Experience)
	}
	return fmt.Sprintf(`Given a user profile with skills: %s, preferences: %s, and experience: %s,

Rank the following available users for team matching (1-5, 5 being best match):
%s
Return JSON array with userId, matchScore (1-5) and reason for each user.`,
		strings.Join(profile.Skills, ", "), profile.Preferences, profile.Experience, b.String())
}

func contentPrompt(kind string, fields map[string]string) string {
	switch kind {
	case KindAnnouncement:
		return fmt.Sprintf(`Write a professional hackathon announcement for: %s.
Include: welcome message, key details, next steps, and encouraging tone.`, fields["event"])
	case KindDescription:
		return fmt.Sprintf(`Write an engaging hackathon description for: %s.
Theme: %s. Duration: %s.
Make it exciting and informative.`, fields["title"], fields["theme"], fields["duration"])
	case KindRules:
		return fmt.Sprintf(`Generate comprehensive hackathon rules for: %s.
Include: eligibility, submission guidelines, judging criteria, and code of conduct.`, fields["event"])
	default:
		return fmt.Sprintf("Generate %s content for: %s", kind, joinFields(fields))
	}
}

func analyzePrompt(p model.Project) string {
	return fmt.Sprintf(`Analyze this hackathon project and provide constructive feedback:
Project: %s
Description: %s
Technologies: %s

Provide feedback on:
- Innovation and creativity
- Technical implementation
- User experience
- Potential impact
- Areas for improvement

Format as JSON with fields: innovation, technical, ux, impact, improvements`,
		p.Name, p.Description, strings.Join(p.Technologies, ", "))
}

func learningPathPrompt(skills []string, theme string) string {
	return fmt.Sprintf(`Create a personalized learning path for a developer with skills: %s
preparing for a hackathon with theme: %s.

Include:
- Recommended technologies to learn
- Learning resources (courses, tutorials, docs)
- Practice projects
- Timeline (1-4 weeks)

Format as JSON with fields: technologies, resources, projects, timeline`,
		strings.Join(skills, ", "), theme)
}

func predictPrompt(h model.Hackathon) string {
	return fmt.Sprintf(`Based on this hackathon data, predict success metrics:
Theme: %s
Duration: %s
Expected participants: %d
Prize pool: %s

Predict:
- Participant engagement rate
- Project completion rate
- Quality of submissions
- Community feedback score

Format as JSON with fields: engagement, completion, quality, feedback`,
		h.Theme, h.Duration, h.ExpectedParticipants, h.PrizePool)
}

func joinFields(fields map[string]string) string {
	if len(fields) == 0 {
		return "general context"
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+fields[k])
	}
	return strings.Join(parts, ", ")
}
