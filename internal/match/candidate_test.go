package match

import (
	"testing"
)

func TestCandidateList_Rank(t *testing.T) {
	candidates := CandidateList{
		{ID: "a", DBName: "A", Quality: 50},
		{ID: "c", DBName: "C", Quality: 90},
		{ID: "b", DBName: "B", Quality: 70},
		{ID: "d", DBName: "B", Quality: 70},
	}.Rank()

	want := []string{"c", "b", "d", "a"}
	for i, id := range want {
		if candidates[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, candidates[i].ID, id)
		}
	}

	best := candidates.Best()
	if best == nil || best.ID != "c" {
		t.Errorf("Best() = %v, want c", best)
	}
}

func TestCandidateList_Top(t *testing.T) {
	candidates := CandidateList{
		{ID: "A", Quality: 90},
		{ID: "B", Quality: 80},
		{ID: "C", Quality: 70},
	}

	if top2 := candidates.Top(2); len(top2) != 2 {
		t.Errorf("Expected 2 candidates, got %d", len(top2))
	}

	// Request more than available
	if top10 := candidates.Top(10); len(top10) != 3 {
		t.Errorf("Expected 3 candidates (all), got %d", len(top10))
	}

	if all := candidates.Top(0); len(all) != 3 {
		t.Errorf("Expected Top(0) to keep all 3 candidates, got %d", len(all))
	}
}

func TestCandidateList_IsAmbiguous(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		margin   float64
		expected bool
	}{
		{"clear winner", []float64{90, 70}, 5, false},
		{"within margin", []float64{90, 86}, 5, true},
		{"exactly on margin", []float64{90, 85}, 5, false},
		{"tie with zero margin", []float64{80, 80}, 0, true},
		{"single candidate", []float64{90}, 5, false},
		{"no candidates", []float64{}, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var candidates CandidateList
			for i, score := range tt.scores {
				candidates = append(candidates, Candidate{ID: string(rune('A' + i)), Quality: score})
			}

			if got := candidates.IsAmbiguous(tt.margin); got != tt.expected {
				t.Errorf("IsAmbiguous() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	candidates := CandidateList{
		{ID: "A", Quality: 90},
		{ID: "B", Quality: 70},
		{ID: "C", Quality: 50},
		{ID: "D", Quality: 30},
	}

	if above := candidates.AboveThreshold(50); len(above) != 3 {
		t.Errorf("Expected 3 candidates at or above 50, got %d", len(above))
	}
}

func TestCandidateList_WithoutAndUnique(t *testing.T) {
	candidates := CandidateList{
		{ID: "1", Quality: 90},
		{ID: "2", Quality: 85},
		{ID: "1", Quality: 60},
		{ID: "3", Quality: 40},
	}

	unique := candidates.UniqueByID()
	if len(unique) != 3 || unique[0].Quality != 90 {
		t.Errorf("UniqueByID() = %v", unique)
	}

	used := map[string]bool{"1": true}
	rest := unique.Without(func(id string) bool { return used[id] })
	if len(rest) != 2 || rest[0].ID != "2" {
		t.Errorf("Without() = %v", rest)
	}
}

func TestCandidateList_HighConfidence(t *testing.T) {
	tests := []struct {
		name     string
		cands    CandidateList
		minScore float64
		minGap   float64
		wantNil  bool
	}{
		{
			name:     "sole candidate above floor",
			cands:    CandidateList{{ID: "A", Quality: 88}},
			minScore: 85,
			minGap:   10,
			wantNil:  false,
		},
		{
			name:     "clear lead",
			cands:    CandidateList{{ID: "A", Quality: 95}, {ID: "B", Quality: 80}},
			minScore: 85,
			minGap:   10,
			wantNil:  false,
		},
		{
			name:     "too close",
			cands:    CandidateList{{ID: "A", Quality: 92}, {ID: "B", Quality: 88}},
			minScore: 85,
			minGap:   10,
			wantNil:  true,
		},
		{
			name:     "below floor",
			cands:    CandidateList{{ID: "A", Quality: 84}},
			minScore: 85,
			minGap:   10,
			wantNil:  true,
		},
		{
			name:     "empty list",
			cands:    CandidateList{},
			minScore: 85,
			minGap:   10,
			wantNil:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.cands.HighConfidence(tt.minScore, tt.minGap)
			if (result == nil) != tt.wantNil {
				t.Errorf("HighConfidence() returned nil=%v, want nil=%v", result == nil, tt.wantNil)
			}
		})
	}
}
