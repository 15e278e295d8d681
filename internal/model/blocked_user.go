package model

import "time"

// BlockedUser bars an identity from starting new sessions while Active is
// true. Created on the third violation of a session or by explicit admin
// action; cleared only by an explicit unblock.
type BlockedUser struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Reason    string    `json:"reason" gorm:"not null"`
	BlockedAt time.Time `json:"blocked_at" gorm:"not null"`
	Active    bool      `json:"active" gorm:"not null;default:true;index"`
}
