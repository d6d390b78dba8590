package models

import "time"

// Point source tags form a closed set; admin adjustments carry the operator
// supplied reason as a suffix.
const (
	SourceDailyCheckIn   = "daily_check_in"
	SourceCheckInRemoval = "check_in_removal"

	adminAdjustmentPrefix = "admin_adjustment: "
)

// AdminAdjustmentSource builds the source tag for a manual point grant.
func AdminAdjustmentSource(reason string) string {
	return adminAdjustmentPrefix + reason
}

// PointsLogEntry is one signed delta in the append-only points ledger.
// Entries are never updated or deleted; reversals are new entries with the
// negated amount.
type PointsLogEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_points_log_user_ts" json:"user_id"`
	Amount    int       `gorm:"not null" json:"amount"`
	Source    string    `gorm:"size:191;not null" json:"source"`
	Timestamp time.Time `gorm:"not null;index:idx_points_log_user_ts" json:"timestamp"`
}

// TableName keeps the table name aligned with the original schema.
func (PointsLogEntry) TableName() string {
	return "points_log"
}
