package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/sweatscore/sweatscore/models"
)

// Window scopes leaderboard aggregation in time.
type Window string

const (
	WindowWeek    Window = "week"
	WindowMonth   Window = "month"
	WindowQuarter Window = "quarter"
	WindowYear    Window = "year"
	WindowAll     Window = "all"
)

// ParseWindow validates a window query parameter.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowWeek, WindowMonth, WindowQuarter, WindowYear, WindowAll:
		return Window(s), nil
	}
	return "", fmt.Errorf("invalid leaderboard window %q", s)
}

// windowStart returns the lower bound of a bounded window relative to now.
// Windows roll with calendar arithmetic (7 days, 1 month, 3 months, 1 year).
func windowStart(now time.Time, w Window) time.Time {
	switch w {
	case WindowWeek:
		return now.AddDate(0, 0, -7)
	case WindowMonth:
		return now.AddDate(0, -1, 0)
	case WindowQuarter:
		return now.AddDate(0, -3, 0)
	case WindowYear:
		return now.AddDate(-1, 0, 0)
	}
	return now
}

// Entry is one row of a ranked leaderboard.
type Entry struct {
	Rank     int    `gorm:"-" json:"rank"`
	UserID   uint   `gorm:"column:user_id" json:"user_id"`
	SlackID  string `gorm:"column:slack_id" json:"slack_id"`
	Name     string `gorm:"column:name" json:"name"`
	PhotoURL string `gorm:"column:photo_url" json:"photo_url"`
	Points   int    `gorm:"column:points" json:"points"`
}

// Rank computes the leaderboard for a window. The all-time board reads the
// cached totals; bounded windows aggregate the points log so removed points
// and admin adjustments inside the window are reflected exactly. Users with
// no entries in the window score zero and rank last. Ranks are 1-based and
// contiguous; ties break by ascending user id.
func (s *Service) Rank(w Window) ([]Entry, error) {
	var rows []Entry

	if w == WindowAll {
		err := s.db.Model(&models.User{}).
			Select("id AS user_id, slack_id, name, photo_url, total_points AS points").
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("query all-time leaderboard: %w", err)
		}
	} else {
		since := windowStart(s.now(), w)
		err := s.db.Table("users u").
			Select("u.id AS user_id, u.slack_id, u.name, u.photo_url, COALESCE(SUM(p.amount), 0) AS points").
			Joins("LEFT JOIN points_log p ON p.user_id = u.id AND p.timestamp >= ?", since).
			Group("u.id, u.slack_id, u.name, u.photo_url").
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("query %s leaderboard: %w", w, err)
		}
	}

	return rankEntries(rows), nil
}

// rankEntries orders entries by points descending with user id as the
// deterministic tie break, then assigns contiguous 1-based ranks.
func rankEntries(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
