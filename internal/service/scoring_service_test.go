package service

import (
	"math"
	"testing"
	"time"

	"github.com/algo-odyssey/backend/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeEfficiencyMidpoint(t *testing.T) {
	sub := &model.Submission{TimeTaken: 5, ExecutionTime: 0.25}
	eff := ComputeEfficiency(sub, 10, 0.5)
	if !almostEqual(eff, 50) {
		t.Fatalf("efficiency = %v, want 50", eff)
	}
}

func TestComputeEfficiencySlowestScoresZero(t *testing.T) {
	sub := &model.Submission{TimeTaken: 10, ExecutionTime: 0.5}
	eff := ComputeEfficiency(sub, 10, 0.5)
	if !almostEqual(eff, 0) {
		t.Fatalf("efficiency = %v, want 0", eff)
	}
}

func TestComputeEfficiencyClampedToRange(t *testing.T) {
	// A submission slower than the observed maximum in one dimension must
	// still land inside [0, 100] after clamping.
	sub := &model.Submission{TimeTaken: 20, ExecutionTime: 0.001}
	eff := ComputeEfficiency(sub, 10, 0.5)
	if eff < 0 || eff > 100 {
		t.Fatalf("efficiency = %v, want within [0, 100]", eff)
	}
}

func TestComputeEfficiencyZeroMaxima(t *testing.T) {
	// All-zero maxima must not divide by zero; the substituted denominator
	// makes every submission equally (in)efficient, never NaN or Inf.
	sub := &model.Submission{TimeTaken: 0, ExecutionTime: 0}
	eff := ComputeEfficiency(sub, 0, 0)
	if math.IsNaN(eff) || math.IsInf(eff, 0) {
		t.Fatalf("efficiency = %v, want a finite number", eff)
	}
	if eff < 0 || eff > 100 {
		t.Fatalf("efficiency = %v, want within [0, 100]", eff)
	}
}

func TestBuildPlagiarismMapFallbackSeverity(t *testing.T) {
	records := []model.ViolationRecord{
		{UserID: 1, Kind: model.ViolationPlagiarism},
		{UserID: 1, Kind: model.ViolationPlagiarism},
	}
	scores := BuildPlagiarismMap(records)
	if !almostEqual(scores[1], 40) {
		t.Fatalf("score = %v, want 40 (two fallback severities)", scores[1])
	}
}

func TestBuildPlagiarismMapExplicitSeverityAndCap(t *testing.T) {
	heavy := 80.0
	records := []model.ViolationRecord{
		{UserID: 1, Kind: model.ViolationPlagiarism, Severity: &heavy},
		{UserID: 1, Kind: model.ViolationPlagiarism, Severity: &heavy},
		{UserID: 2, Kind: model.ViolationPlagiarism, Severity: &heavy},
	}
	scores := BuildPlagiarismMap(records)
	if !almostEqual(scores[1], 100) {
		t.Fatalf("user 1 score = %v, want capped at 100", scores[1])
	}
	if !almostEqual(scores[2], 80) {
		t.Fatalf("user 2 score = %v, want 80", scores[2])
	}
}

func TestBuildPlagiarismMapIgnoresOtherKinds(t *testing.T) {
	severity := 50.0
	records := []model.ViolationRecord{
		{UserID: 1, Kind: model.ViolationBehavioral, Severity: &severity},
		{UserID: 1, Kind: model.ViolationIdentityMismatch},
		{UserID: 1, Kind: model.ViolationPlagiarism},
	}
	scores := BuildPlagiarismMap(records)
	if !almostEqual(scores[1], 20) {
		t.Fatalf("score = %v, want 20 (only the plagiarism record counts)", scores[1])
	}
}

func TestComputeLeaderboardEmptyScope(t *testing.T) {
	entries := ComputeLeaderboard(nil, nil)
	if entries == nil {
		t.Fatal("entries = nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Fatalf("len(entries) = %d, want 0", len(entries))
	}
}

func TestComputeLeaderboardSingleSubmission(t *testing.T) {
	subs := []model.Submission{
		{
			UserID:           1,
			User:             model.User{FullName: "Ada"},
			TimeTaken:        5,
			ExecutionTime:    0.25,
			CorrectnessScore: 90,
			CreatedAt:        time.Now(),
		},
	}
	entries := ComputeLeaderboard(subs, nil)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Rank != 1 {
		t.Errorf("rank = %d, want 1", e.Rank)
	}
	if e.UserName != "Ada" {
		t.Errorf("userName = %q, want Ada", e.UserName)
	}
	// The sole submission defines the maxima, so its efficiency is 0 and the
	// total reduces to the correctness component alone.
	if !almostEqual(e.TotalScore, 0.7*90) {
		t.Errorf("total = %v, want %v", e.TotalScore, 0.7*90)
	}
}

func TestComputeLeaderboardWeightedTotal(t *testing.T) {
	now := time.Now()
	subs := []model.Submission{
		{UserID: 1, User: model.User{FullName: "Ada"}, TimeTaken: 5, ExecutionTime: 0.25, CorrectnessScore: 80, CreatedAt: now},
		{UserID: 2, User: model.User{FullName: "Bob"}, TimeTaken: 10, ExecutionTime: 0.5, CorrectnessScore: 80, CreatedAt: now},
	}
	entries := ComputeLeaderboard(subs, nil)

	// Ada: correctness 80, efficiency 50 -> 0.7*80 + 0.3*50 = 71.
	if entries[0].UserID != 1 {
		t.Fatalf("top entry userID = %d, want 1", entries[0].UserID)
	}
	if !almostEqual(entries[0].TotalScore, 71) {
		t.Errorf("total = %v, want 71", entries[0].TotalScore)
	}
	if !almostEqual(entries[0].EfficiencyPercentile, 50) {
		t.Errorf("efficiency = %v, want 50", entries[0].EfficiencyPercentile)
	}
}

func TestComputeLeaderboardPlagiarismPenalty(t *testing.T) {
	now := time.Now()
	subs := []model.Submission{
		{UserID: 1, User: model.User{FullName: "Ada"}, TimeTaken: 5, ExecutionTime: 0.25, CorrectnessScore: 90, CreatedAt: now},
		{UserID: 2, User: model.User{FullName: "Bob"}, TimeTaken: 10, ExecutionTime: 0.5, CorrectnessScore: 90, CreatedAt: now},
	}
	plagiarism := []model.ViolationRecord{
		{UserID: 1, Kind: model.ViolationPlagiarism},
	}
	entries := ComputeLeaderboard(subs, plagiarism)
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	// User 1: correctness 90, efficiency 50, penalty 20 -> 63 + 15 - 2 = 76.
	// User 2: correctness 90, efficiency 0, no penalty   -> 63.
	if entries[0].UserID != 1 {
		t.Fatalf("top entry userID = %d, want 1", entries[0].UserID)
	}
	if !almostEqual(entries[0].TotalScore, 76) {
		t.Errorf("user 1 total = %v, want 76", entries[0].TotalScore)
	}
	if !almostEqual(entries[1].TotalScore, 63) {
		t.Errorf("user 2 total = %v, want 63", entries[1].TotalScore)
	}
	if !almostEqual(entries[0].PlagiarismScore, 20) {
		t.Errorf("user 1 plagiarism = %v, want 20", entries[0].PlagiarismScore)
	}
}

func TestComputeLeaderboardTotalNeverNegative(t *testing.T) {
	capped := 100.0
	subs := []model.Submission{
		{UserID: 1, User: model.User{FullName: "Ada"}, TimeTaken: 10, ExecutionTime: 0.5, CorrectnessScore: 0, CreatedAt: time.Now()},
	}
	plagiarism := []model.ViolationRecord{
		{UserID: 1, Kind: model.ViolationPlagiarism, Severity: &capped},
	}
	entries := ComputeLeaderboard(subs, plagiarism)
	if entries[0].TotalScore != 0 {
		t.Fatalf("total = %v, want floored at 0", entries[0].TotalScore)
	}
}

func TestComputeLeaderboardRanksAreContiguous(t *testing.T) {
	now := time.Now()
	subs := []model.Submission{
		{UserID: 3, User: model.User{FullName: "Cyn"}, TimeTaken: 9, ExecutionTime: 0.4, CorrectnessScore: 40, CreatedAt: now},
		{UserID: 1, User: model.User{FullName: "Ada"}, TimeTaken: 5, ExecutionTime: 0.2, CorrectnessScore: 100, CreatedAt: now},
		{UserID: 2, User: model.User{FullName: "Bob"}, TimeTaken: 7, ExecutionTime: 0.3, CorrectnessScore: 70, CreatedAt: now},
	}
	entries := ComputeLeaderboard(subs, nil)
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("entries[%d].Rank = %d, want %d", i, e.Rank, i+1)
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].TotalScore > entries[i-1].TotalScore {
			t.Errorf("entries not sorted: %v before %v", entries[i-1].TotalScore, entries[i].TotalScore)
		}
	}
}

func TestComputeLeaderboardTieBreakByFirstSubmission(t *testing.T) {
	early := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	late := early.Add(time.Minute)
	subs := []model.Submission{
		{UserID: 2, User: model.User{FullName: "Bob"}, TimeTaken: 5, ExecutionTime: 0.25, CorrectnessScore: 80, CreatedAt: late},
		{UserID: 1, User: model.User{FullName: "Ada"}, TimeTaken: 5, ExecutionTime: 0.25, CorrectnessScore: 80, CreatedAt: early},
	}
	entries := ComputeLeaderboard(subs, nil)
	if entries[0].UserID != 1 {
		t.Fatalf("top entry userID = %d, want 1 (earlier first submission)", entries[0].UserID)
	}
}

func TestComputeLeaderboardTieBreakByUserID(t *testing.T) {
	same := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	subs := []model.Submission{
		{UserID: 7, User: model.User{FullName: "Gus"}, TimeTaken: 5, ExecutionTime: 0.25, CorrectnessScore: 80, CreatedAt: same},
		{UserID: 3, User: model.User{FullName: "Cyn"}, TimeTaken: 5, ExecutionTime: 0.25, CorrectnessScore: 80, CreatedAt: same},
	}
	entries := ComputeLeaderboard(subs, nil)
	if entries[0].UserID != 3 || entries[1].UserID != 7 {
		t.Fatalf("order = [%d, %d], want [3, 7]", entries[0].UserID, entries[1].UserID)
	}
}

func TestComputeLeaderboardAveragesMultipleSubmissions(t *testing.T) {
	now := time.Now()
	subs := []model.Submission{
		{UserID: 1, User: model.User{FullName: "Ada"}, TimeTaken: 10, ExecutionTime: 0.5, CorrectnessScore: 60, CreatedAt: now},
		{UserID: 1, User: model.User{FullName: "Ada"}, TimeTaken: 10, ExecutionTime: 0.5, CorrectnessScore: 100, CreatedAt: now.Add(time.Minute)},
	}
	entries := ComputeLeaderboard(subs, nil)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if !almostEqual(entries[0].CorrectnessScore, 80) {
		t.Errorf("correctness = %v, want averaged 80", entries[0].CorrectnessScore)
	}
}
