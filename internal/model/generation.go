package model

// Idea is one generated project proposal.
type Idea struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Impact       string   `json:"impact"`
	TimeEstimate string   `json:"timeEstimate"`
}

// Profile describes the user asking for teammate matches.
type Profile struct {
	Skills      []string `json:"skills"`
	Preferences string   `json:"preferences"`
	Experience  string   `json:"experience"`
}

// Candidate is one potential teammate.
type Candidate struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
}

// Match scores a candidate against a profile. Score is 1 (worst) to 5 (best).
type Match struct {
	CandidateID string `json:"userId"`
	Score       int    `json:"matchScore"`
	Reason      string `json:"reason"`
}

// Project is a submitted hackathon project up for review.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ProjectAnalysis holds per-dimension review scores for a project.
type ProjectAnalysis struct {
	Innovation   float64 `json:"innovation"`
	Technical    float64 `json:"technical"`
	UX           float64 `json:"ux"`
	Impact       float64 `json:"impact"`
	Improvements string  `json:"improvements"`
}

// LearningPath is a preparation plan for an upcoming hackathon.
type LearningPath struct {
	Technologies []string `json:"technologies"`
	Resources    []string `json:"resources"`
	Projects     []string `json:"projects"`
	Timeline     string   `json:"timeline"`
}

// Hackathon carries the fields used for success forecasting.
type Hackathon struct {
	Theme                string `json:"theme"`
	Duration             string `json:"duration"`
	ExpectedParticipants int    `json:"expectedParticipants"`
	PrizePool            string `json:"prizePool"`
}

// SuccessForecast predicts engagement metrics for a planned hackathon.
type SuccessForecast struct {
	Engagement float64 `json:"engagement"`
	Completion float64 `json:"completion"`
	Quality    float64 `json:"quality"`
	Feedback   float64 `json:"feedback"`
}
