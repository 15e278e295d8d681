package model

import "time"

// LeaderboardEntry is one ranked row for a scoring scope. Rows with a zero
// ChallengeID belong to the global leaderboard; the scheduler persists
// per-challenge rows when a challenge window closes.
type LeaderboardEntry struct {
	ID          uint `gorm:"primarykey" json:"-"`
	ChallengeID uint `json:"challenge_id,omitempty" gorm:"index"`

	Rank                 int     `json:"rank"`
	UserID               uint    `json:"user_id"`
	UserName             string  `json:"user_name"`
	CorrectnessScore     float64 `json:"correctness_score"`
	EfficiencyPercentile float64 `json:"efficiency_percentile"`
	PlagiarismScore      float64 `json:"plagiarism_score"`
	TotalScore           float64 `json:"total_score"`

	ComputedAt time.Time `json:"computed_at"`
}
