package model

import "time"

type ViolationKind string

const (
	ViolationBehavioral       ViolationKind = "behavioral"
	ViolationIdentityMismatch ViolationKind = "identity_mismatch"
	ViolationPlagiarism       ViolationKind = "plagiarism"
)

// ViolationRecord is an append-only log entry; records are never mutated.
type ViolationRecord struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	UserID      uint          `json:"user_id" gorm:"not null;index"`
	ChallengeID uint          `json:"challenge_id" gorm:"not null;index"`
	Kind        ViolationKind `json:"kind" gorm:"not null;index"`
	Detail      string        `json:"detail,omitempty"`
	Severity    *float64      `json:"severity,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ProctorStatus classifies one identity verification cycle.
type ProctorStatus string

const (
	ProctorOK       ProctorStatus = "ok"
	ProctorMismatch ProctorStatus = "mismatch"
	ProctorNoFace   ProctorStatus = "noface"
	ProctorError    ProctorStatus = "error"
)
