package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	SeatNumber string         `json:"seat_number" gorm:"index"`
	FullName   string         `json:"full_name" gorm:"not null"`
	Email      string         `json:"email" gorm:"not null;uniqueIndex"`
	Password   string         `json:"-" gorm:"not null"` // opaque hash, managed by the auth collaborator
	Role       string         `json:"role" gorm:"not null;default:'student'"` // "student", "admin"
	ImageURL   *string        `json:"image_url,omitempty"`
	// FaceDescriptor is the fixed-length (128 floats) reference embedding captured at
	// registration, compared against live frames during proctored sessions.
	FaceDescriptor datatypes.JSON `json:"-" gorm:"type:jsonb"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
