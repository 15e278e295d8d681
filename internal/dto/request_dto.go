package dto

import "time"

type TestCaseRequest struct {
	Input          string `json:"input" binding:"required"`
	ExpectedOutput string `json:"expected_output" binding:"required"`
}

type CreateChallengeRequest struct {
	Title          string            `json:"title" binding:"required"`
	Description    string            `json:"description" binding:"required"`
	Difficulty     string            `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	TimeLimit      int               `json:"time_limit" binding:"required,min=1"` // seconds
	StartTime      *time.Time        `json:"start_time"`
	TestCases      []TestCaseRequest `json:"test_cases" binding:"required,min=1,dive"`
	StarterCode    map[string]string `json:"starter_code"`
	ParticipantIDs []uint            `json:"participant_ids"`
}

type RegisterStudentRequest struct {
	SeatNumber string `json:"seat_number" binding:"required"`
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	// Image is the base64-encoded registration photo the face comparator
	// extracts the reference descriptor from.
	Image string `json:"image" binding:"required"`
}

type StartSessionRequest struct {
	UserID      uint `json:"user_id" binding:"required"`
	ChallengeID uint `json:"challenge_id" binding:"required"`
}

// ViolationEventRequest is one client-observed behavioral signal. Debouncing
// of rapid repeats of the same physical trigger is the client's job.
type ViolationEventRequest struct {
	Detail string `json:"detail" binding:"required"` // e.g. "window_blur", "fullscreen_exit", "paste"
}

type FrameRequest struct {
	// Image is one base64-encoded webcam frame for identity verification.
	Image string `json:"image" binding:"required"`
}

type SubmitCodeRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language" binding:"required"`
}

type BlockRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Reason string `json:"reason" binding:"required"`
}
