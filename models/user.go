package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a workspace member known from Slack sign-in. TotalPoints is a
// denormalized running sum over points_log, written only by the ledger
// accountant.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SlackID     string    `gorm:"size:32;uniqueIndex;not null" json:"slack_id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	PhotoURL    string    `gorm:"size:512" json:"photo_url"`
	TotalPoints int       `gorm:"not null;default:0" json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate ensures the UpdatedAt timestamp is refreshed.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
