package models

import "time"

// Challenge is a time-bounded team competition. Challenges are read-mostly:
// the check-in ingestion path never touches them.
type Challenge struct {
	ID           string                 `gorm:"size:36;primaryKey" json:"id"`
	Type         string                 `gorm:"size:32" json:"type"`
	Title        string                 `gorm:"size:191;not null" json:"title"`
	Description  string                 `gorm:"size:1024" json:"description"`
	StartDate    time.Time              `gorm:"not null;index" json:"start_date"`
	EndDate      time.Time              `gorm:"not null" json:"end_date"`
	CreatedAt    time.Time              `json:"created_at"`
	Participants []ChallengeParticipant `json:"participants,omitempty"`
}

// ChallengeParticipant is one user's entry in a challenge roster.
type ChallengeParticipant struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ChallengeID string    `gorm:"size:36;not null;uniqueIndex:idx_challenge_participant" json:"challenge_id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_challenge_participant" json:"user_id"`
	Points      int       `gorm:"not null;default:0" json:"points"`
	JoinedAt    time.Time `json:"joined_at"`
	User        *User     `json:"user,omitempty"`
}
