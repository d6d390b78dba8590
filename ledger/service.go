// Package ledger implements the gamification core: it turns Slack message
// events into check-ins, keeps the append-only points log reconciled with
// each user's cached total, grants milestone badges, and computes windowed
// leaderboard rankings. All mutations go through gorm transactions that lock
// the affected user row, so concurrent deliveries for the same user
// serialize; unique indexes on (user, day) and (user, badge_type) back the
// locks up.
package ledger

import (
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Sentinel errors surfaced to callers. Store failures are wrapped instead.
var (
	ErrDuplicateCheckIn = errors.New("check-in already recorded for this day")
	ErrUserNotFound     = errors.New("user not found")
	ErrCheckInNotFound  = errors.New("check-in not found")
	ErrInvalidAmount    = errors.New("adjustment amount must be positive")
	ErrEmptyReason      = errors.New("adjustment reason must not be empty")
)

// Options configures a ledger Service.
type Options struct {
	// ChannelID is the Slack channel whose messages count as check-ins.
	ChannelID string
	// Location defines the workspace's sense of "today" for the daily
	// dedup rule. Defaults to UTC.
	Location *time.Location
	// RewardPoints is awarded per accepted check-in.
	RewardPoints int
}

// Service is the ledger subsystem. It is safe for concurrent use.
type Service struct {
	db           *gorm.DB
	channelID    string
	loc          *time.Location
	rewardPoints int
	now          func() time.Time
}

// NewService creates a ledger Service on top of the given store.
func NewService(db *gorm.DB, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	reward := opts.RewardPoints
	if reward <= 0 {
		reward = 1
	}
	return &Service{
		db:           db,
		channelID:    opts.ChannelID,
		loc:          loc,
		rewardPoints: reward,
		now:          time.Now,
	}
}

// dayKey formats the calendar day of t in the workspace timezone. It is the
// value stored in check_ins.checkin_date and part of the daily unique key.
func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// dayWindow returns [local midnight, next midnight) around t.
func dayWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

// isDuplicateKey reports whether err is a MySQL unique constraint violation.
func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}
