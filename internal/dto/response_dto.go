package dto

import (
	"time"

	"github.com/algo-odyssey/backend/internal/model"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type LeaderboardResponse struct {
	ChallengeID uint                     `json:"challenge_id,omitempty"`
	Leaderboard []model.LeaderboardEntry `json:"leaderboard"`
	Message     string                   `json:"message,omitempty"`
}

type TestCaseResponse struct {
	ID             uint   `json:"id"`
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	OrderIndex     int    `json:"order_index"`
}

type ChallengeResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Difficulty  string             `json:"difficulty"`
	TimeLimit   int                `json:"time_limit"`
	StartTime   *time.Time         `json:"start_time,omitempty"`
	TestCases   []TestCaseResponse `json:"test_cases,omitempty"`
	StarterCode map[string]string  `json:"starter_code,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

type ChallengeSummaryResponse struct {
	ID         uint       `json:"id"`
	Title      string     `json:"title"`
	Difficulty string     `json:"difficulty"`
	TimeLimit  int        `json:"time_limit"`
	StartTime  *time.Time `json:"start_time,omitempty"`
}

type StudentResponse struct {
	ID         uint    `json:"id"`
	SeatNumber string  `json:"seat_number"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	ImageURL   *string `json:"image_url,omitempty"`
}

type SessionStateResponse struct {
	ID             uuid.UUID           `json:"id"`
	UserID         uint                `json:"user_id"`
	ChallengeID    uint                `json:"challenge_id"`
	Status         model.SessionStatus `json:"status"`
	ViolationCount int                 `json:"violation_count"`
	Warnings       int                 `json:"warnings"`
	StartedAt      time.Time           `json:"started_at"`
}

type SubmissionResponse struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"user_id"`
	ChallengeID      uint      `json:"challenge_id"`
	Language         string    `json:"language"`
	TimeTaken        float64   `json:"time_taken"`
	ExecutionTime    float64   `json:"execution_time"`
	CorrectnessScore float64   `json:"correctness_score"`
	CreatedAt        time.Time `json:"created_at"`
}

type BlockedUserResponse struct {
	Email     string    `json:"email"`
	Reason    string    `json:"reason"`
	BlockedAt time.Time `json:"blocked_at"`
	Active    bool      `json:"active"`
}
