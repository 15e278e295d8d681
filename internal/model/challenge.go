package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TestCase struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	ChallengeID    uint   `json:"challenge_id" gorm:"not null;index"`
	Input          string `json:"input" gorm:"type:text;not null"`
	ExpectedOutput string `json:"expected_output" gorm:"type:text;not null"`
	OrderIndex     int    `json:"order_index" gorm:"not null"`
}

type Challenge struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Difficulty  string     `json:"difficulty" gorm:"not null;default:'Easy'"` // "Easy", "Medium", "Hard"
	TimeLimit   int        `json:"time_limit" gorm:"not null;default:1"`      // seconds
	StartTime   *time.Time `json:"start_time,omitempty" gorm:"index"`

	// Lifecycle flags owned by the scheduler. Both only ever transition
	// false -> true, enforced with conditional updates.
	ReminderSent        bool `json:"reminder_sent" gorm:"not null;default:false"`
	LeaderboardComputed bool `json:"leaderboard_computed" gorm:"not null;default:false"`

	TestCases    []TestCase     `json:"test_cases,omitempty" gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE;"`
	StarterCode  datatypes.JSON `json:"starter_code,omitempty" gorm:"type:jsonb"` // language -> snippet
	Participants []User         `json:"participants,omitempty" gorm:"many2many:challenge_participants;"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// EndsAt reports when the challenge window closes; zero time when unscheduled.
func (c *Challenge) EndsAt() time.Time {
	if c.StartTime == nil {
		return time.Time{}
	}
	return c.StartTime.Add(time.Duration(c.TimeLimit) * time.Second)
}
