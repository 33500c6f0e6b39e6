package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"hackscout/internal/model"
)

// completionServer answers every chat completion request with content.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func remoteAssistant(srvURL string) Assistant {
	return New(Config{APIKey: "test-key", Model: "gpt-3.5-turbo", BaseURL: srvURL + "/v1"})
}

func TestRemoteModeIsAvailable(t *testing.T) {
	a := remoteAssistant("http://localhost:0")
	if !a.Available() {
		t.Errorf("Available() = false with a credential")
	}
}

func TestRemoteIdeasParsed(t *testing.T) {
	ideas := []model.Idea{
		{Name: "Solar Planner", Description: "Plans panels.", Technologies: []string{"Go"}, Impact: "High", TimeEstimate: "24h"},
	}
	b, _ := json.Marshal(ideas)
	srv := completionServer(t, string(b))

	got := remoteAssistant(srv.URL).GenerateProjectIdeas(context.Background(), "Energy", []string{"Go"}, "easy")
	if !reflect.DeepEqual(got, ideas) {
		t.Errorf("ideas = %+v, want %+v", got, ideas)
	}
}

func TestRemoteIdeasFencedJSONParsed(t *testing.T) {
	ideas := []model.Idea{{Name: "Fenced", Description: "d", Technologies: []string{"Go"}, Impact: "i", TimeEstimate: "24h"}}
	b, _ := json.Marshal(ideas)
	srv := completionServer(t, "```json\n"+string(b)+"\n```")

	got := remoteAssistant(srv.URL).GenerateProjectIdeas(context.Background(), "Energy", nil, "easy")
	if len(got) != 1 || got[0].Name != "Fenced" {
		t.Errorf("fenced JSON not parsed: %+v", got)
	}
}

func TestRemoteErrorFallsBackToMock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := remoteAssistant(srv.URL)
	got := a.GenerateProjectIdeas(context.Background(), "Energy", []string{"Go"}, "easy")
	want := NewMock().GenerateProjectIdeas(context.Background(), "Energy", []string{"Go"}, "easy")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback ideas differ from mock output")
	}
	if !a.Available() {
		t.Errorf("Available() must keep reporting the configured mode")
	}
}

func TestRemoteMalformedBodyFallsBackToMock(t *testing.T) {
	srv := completionServer(t, "sorry, here is prose instead of JSON")

	got := remoteAssistant(srv.URL).MatchTeammates(context.Background(),
		model.Profile{Skills: []string{"Go"}},
		[]model.Candidate{{ID: "u1"}, {ID: "u2"}})
	if len(got) != 2 {
		t.Fatalf("expected mock fallback matches, got %d", len(got))
	}
	if got[0].Score != 5 || got[1].Score != 4 {
		t.Errorf("fallback scores = %d,%d, want 5,4", got[0].Score, got[1].Score)
	}
}

func TestRemoteMatchesSortedStable(t *testing.T) {
	matches := []model.Match{
		{CandidateID: "low", Score: 2, Reason: "ok"},
		{CandidateID: "tie-a", Score: 4, Reason: "good"},
		{CandidateID: "tie-b", Score: 4, Reason: "good"},
		{CandidateID: "top", Score: 5, Reason: "great"},
	}
	b, _ := json.Marshal(matches)
	srv := completionServer(t, string(b))

	got := remoteAssistant(srv.URL).MatchTeammates(context.Background(), model.Profile{}, nil)
	wantOrder := []string{"top", "tie-a", "tie-b", "low"}
	for i, id := range wantOrder {
		if got[i].CandidateID != id {
			t.Errorf("position %d: %q, want %q", i, got[i].CandidateID, id)
		}
	}
}

func TestRemoteMatchScoreClamped(t *testing.T) {
	matches := []model.Match{
		{CandidateID: "big", Score: 11, Reason: "r"},
		{CandidateID: "small", Score: 0, Reason: "r"},
	}
	b, _ := json.Marshal(matches)
	srv := completionServer(t, string(b))

	got := remoteAssistant(srv.URL).MatchTeammates(context.Background(), model.Profile{}, nil)
	if got[0].Score != 5 {
		t.Errorf("score = %d, want clamp to 5", got[0].Score)
	}
	if got[1].Score != 1 {
		t.Errorf("score = %d, want clamp to 1", got[1].Score)
	}
}

func TestRemoteContentReturnedVerbatim(t *testing.T) {
	srv := completionServer(t, "  Welcome to MegaHack!  ")

	got := remoteAssistant(srv.URL).GenerateContent(context.Background(), KindAnnouncement, map[string]string{"event": "MegaHack"})
	if got != "Welcome to MegaHack!" {
		t.Errorf("content = %q", got)
	}
}

func TestRemoteContentFallsBackOnTransportError(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	got := remoteAssistant(url).GenerateContent(context.Background(), KindRules, map[string]string{"event": "X", "duration": "48h"})
	for _, want := range []string{"X", "48h"} {
		if !strings.Contains(got, want) {
			t.Errorf("fallback rules missing %q: %q", want, got)
		}
	}
}

func TestRemoteAnalysisParsed(t *testing.T) {
	analysis := model.ProjectAnalysis{Innovation: 4.8, Technical: 4.1, UX: 3.9, Impact: 4.6, Improvements: "Ship it."}
	b, _ := json.Marshal(analysis)
	srv := completionServer(t, string(b))

	got := remoteAssistant(srv.URL).AnalyzeProject(context.Background(), model.Project{Name: "P"})
	if got != analysis {
		t.Errorf("analysis = %+v, want %+v", got, analysis)
	}
}
