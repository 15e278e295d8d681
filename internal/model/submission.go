package model

import (
	"time"

	"gorm.io/gorm"
)

// Submission is immutable once written. One submission per (user, challenge)
// is the expected cardinality but is not enforced at this layer.
type Submission struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	User        User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ChallengeID uint      `json:"challenge_id" gorm:"not null;index"`
	Code        string    `json:"code" gorm:"type:text;not null"`
	Language    string    `json:"language" gorm:"not null"`
	// TimeTaken is the seconds elapsed in the session; ExecutionTime is the
	// sandbox-reported runtime in seconds.
	TimeTaken        float64   `json:"time_taken" gorm:"not null"`
	ExecutionTime    float64   `json:"execution_time" gorm:"not null"`
	CorrectnessScore float64   `json:"correctness_score" gorm:"not null"` // 0-100, test-case pass ratio
	CreatedAt        time.Time `json:"created_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
