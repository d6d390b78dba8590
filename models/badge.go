package models

import "time"

// BadgeType enumerates the closed set of milestone badges.
type BadgeType string

const (
	BadgeFirstCheckIn  BadgeType = "first_check_in"
	BadgeWeeklyWarrior BadgeType = "weekly_warrior"
	BadgeCenturyClub   BadgeType = "century_club"
)

// Badge is a one-time milestone grant. Badges are never revoked, even when
// the triggering condition later becomes false (e.g. a removed check-in).
// The unique index on (user_id, badge_type) makes grants idempotent under
// concurrent evaluation.
type Badge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_badges_user_type" json:"user_id"`
	BadgeType BadgeType `gorm:"size:32;not null;uniqueIndex:idx_badges_user_type" json:"badge_type"`
	AwardedAt time.Time `gorm:"not null" json:"awarded_at"`
}
