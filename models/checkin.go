package models

import "time"

// CheckIn records one qualifying workout photo for one user on one calendar
// day. CheckinDate holds the 2006-01-02 date in the workspace timezone; the
// unique index on (user_id, checkin_date) turns a racing duplicate insert
// into a rejected write instead of a double-counted day.
type CheckIn struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_check_ins_user_day;index:idx_check_ins_user_ts" json:"user_id"`
	CheckinDate   string    `gorm:"size:10;not null;uniqueIndex:idx_check_ins_user_day" json:"checkin_date"`
	MessageID     string    `gorm:"size:64;index" json:"message_id"`
	ImageURL      string    `gorm:"size:512" json:"image_url"`
	PointsAwarded int       `gorm:"not null" json:"points_awarded"`
	Timestamp     time.Time `gorm:"not null;index:idx_check_ins_user_ts" json:"timestamp"`
	User          *User     `json:"user,omitempty"`
}

// TableName keeps the table name aligned with the original schema.
func (CheckIn) TableName() string {
	return "check_ins"
}
