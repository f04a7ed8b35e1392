package db

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/jonathan/profile-analyzer/internal/types"
)

func TestDecodeStored(t *testing.T) {
	profile := &types.Profile{
		Name:   "Jane Doe",
		Skills: []string{"Python", "Go"},
	}
	analysis := &types.Analysis{
		CompletenessScore: 72.5,
		JobMatch:          &types.MatchResult{Score: 81, SkillsFactor: 1},
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		t.Fatalf("marshal analysis: %v", err)
	}

	stored := types.StoredAnalysis{ID: uuid.New()}
	if err := decodeStored(&stored, profileJSON, analysisJSON); err != nil {
		t.Fatalf("decodeStored: %v", err)
	}

	if stored.Profile.Name != "Jane Doe" {
		t.Errorf("Profile.Name = %q, want 'Jane Doe'", stored.Profile.Name)
	}
	if len(stored.Profile.Skills) != 2 {
		t.Errorf("Skills count = %d, want 2", len(stored.Profile.Skills))
	}
	if stored.Analysis.CompletenessScore != 72.5 {
		t.Errorf("CompletenessScore = %v, want 72.5", stored.Analysis.CompletenessScore)
	}
	if stored.Analysis.JobMatch == nil || stored.Analysis.JobMatch.Score != 81 {
		t.Errorf("JobMatch not restored: %+v", stored.Analysis.JobMatch)
	}
}

func TestDecodeStored_NilJobMatchSurvives(t *testing.T) {
	analysis := &types.Analysis{CompletenessScore: 10}
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		t.Fatalf("marshal analysis: %v", err)
	}

	var stored types.StoredAnalysis
	if err := decodeStored(&stored, []byte(`{}`), analysisJSON); err != nil {
		t.Fatalf("decodeStored: %v", err)
	}

	if stored.Analysis.JobMatch != nil {
		t.Errorf("JobMatch = %+v, want nil", stored.Analysis.JobMatch)
	}
}

func TestDecodeStored_InvalidJSON(t *testing.T) {
	var stored types.StoredAnalysis
	if err := decodeStored(&stored, []byte(`not json`), []byte(`{}`)); err == nil {
		t.Error("expected error for invalid profile JSON")
	}
	if err := decodeStored(&stored, []byte(`{}`), []byte(`not json`)); err == nil {
		t.Error("expected error for invalid analysis JSON")
	}
}
