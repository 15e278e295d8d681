package service

import (
	"sort"
	"time"

	"github.com/algo-odyssey/backend/internal/model"
)

const (
	// minNormDenominator replaces a zero observed maximum so the efficiency
	// normalization never divides by zero.
	minNormDenominator = 0.001
	// plagiarismFallbackSeverity is added for a plagiarism record that
	// carries no explicit severity.
	plagiarismFallbackSeverity = 20.0
	plagiarismCap              = 100.0
)

const (
	correctnessWeight = 0.7
	efficiencyWeight  = 0.3
	plagiarismWeight  = 0.1
)

// ComputeEfficiency normalizes one submission against the maxima observed in
// its scope. Lower time and runtime are better; the result is clamped to
// [0, 100].
func ComputeEfficiency(sub *model.Submission, maxTime, maxExec float64) float64 {
	t := sub.TimeTaken
	if t <= 0 {
		t = minNormDenominator
	}
	e := sub.ExecutionTime
	if e <= 0 {
		e = minNormDenominator
	}
	if maxTime <= 0 {
		maxTime = minNormDenominator
	}
	if maxExec <= 0 {
		maxExec = minNormDenominator
	}

	timeEff := (maxTime - t) / maxTime
	execEff := (maxExec - e) / maxExec

	efficiency := 0.5*timeEff + 0.5*execEff
	return clamp(efficiency*100, 0, 100)
}

// BuildPlagiarismMap sums plagiarism severities per user, capped at 100.
// Records of other kinds are ignored, so callers may pass unfiltered logs.
func BuildPlagiarismMap(records []model.ViolationRecord) map[uint]float64 {
	scores := make(map[uint]float64)
	for _, rec := range records {
		if rec.Kind != model.ViolationPlagiarism {
			continue
		}
		severity := plagiarismFallbackSeverity
		if rec.Severity != nil {
			severity = *rec.Severity
		}
		scores[rec.UserID] = min(scores[rec.UserID]+severity, plagiarismCap)
	}
	return scores
}

type userStats struct {
	userID           uint
	userName         string
	totalCorrectness float64
	totalEfficiency  float64
	count            int
	firstSubmission  time.Time
}

// ComputeLeaderboard ranks one scoring scope. It is a pure function over the
// submissions and plagiarism-kind violation records of that scope and always
// returns a well-formed (possibly empty) slice.
//
// Ties on total score are broken by earliest first submission, then by user
// ID, so repeated runs over the same data produce the same order.
func ComputeLeaderboard(submissions []model.Submission, plagiarism []model.ViolationRecord) []model.LeaderboardEntry {
	if len(submissions) == 0 {
		return []model.LeaderboardEntry{}
	}

	plagiarismMap := BuildPlagiarismMap(plagiarism)

	var maxTime, maxExec float64
	for _, sub := range submissions {
		maxTime = max(maxTime, sub.TimeTaken)
		maxExec = max(maxExec, sub.ExecutionTime)
	}

	stats := make(map[uint]*userStats)
	order := make([]uint, 0, len(submissions))
	for _, sub := range submissions {
		st, ok := stats[sub.UserID]
		if !ok {
			st = &userStats{
				userID:          sub.UserID,
				userName:        sub.User.FullName,
				firstSubmission: sub.CreatedAt,
			}
			stats[sub.UserID] = st
			order = append(order, sub.UserID)
		}
		st.totalCorrectness += clamp(sub.CorrectnessScore, 0, 100)
		st.totalEfficiency += ComputeEfficiency(&sub, maxTime, maxExec)
		st.count++
		if sub.CreatedAt.Before(st.firstSubmission) {
			st.firstSubmission = sub.CreatedAt
		}
	}

	now := time.Now()
	entries := make([]model.LeaderboardEntry, 0, len(stats))
	for _, userID := range order {
		st := stats[userID]
		correctness := st.totalCorrectness / float64(st.count)
		efficiency := st.totalEfficiency / float64(st.count)
		plagiarismScore := plagiarismMap[st.userID]

		raw := correctnessWeight*correctness +
			efficiencyWeight*efficiency -
			plagiarismWeight*plagiarismScore

		entries = append(entries, model.LeaderboardEntry{
			UserID:               st.userID,
			UserName:             st.userName,
			CorrectnessScore:     correctness,
			EfficiencyPercentile: efficiency,
			PlagiarismScore:      plagiarismScore,
			TotalScore:           max(raw, 0),
			ComputedAt:           now,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		fi := stats[entries[i].UserID].firstSubmission
		fj := stats[entries[j].UserID].firstSubmission
		if !fi.Equal(fj) {
			return fi.Before(fj)
		}
		return entries[i].UserID < entries[j].UserID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
