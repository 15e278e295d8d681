package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionSubmitted SessionStatus = "submitted"
	SessionBlocked   SessionStatus = "blocked"
	SessionAbandoned SessionStatus = "abandoned"
)

// Session is one user's timed attempt at one challenge, from start to
// submission, block, or timeout.
type Session struct {
	ID          uuid.UUID     `gorm:"type:uuid;primarykey" json:"id"`
	UserID      uint          `json:"user_id" gorm:"not null;index"`
	ChallengeID uint          `json:"challenge_id" gorm:"not null;index"`
	Status      SessionStatus `json:"status" gorm:"not null;default:'active'"`
	StartedAt   time.Time     `json:"started_at" gorm:"not null"`
	EndedAt     *time.Time    `json:"ended_at,omitempty"`
}
