package ledger

import (
	"testing"
	"time"
)

func TestDayKeyUsesWorkspaceTimezone(t *testing.T) {
	// 23:30 UTC on Jan 1 is already Jan 2 in a UTC+9 workspace.
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	at := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)

	if got := dayKey(at, time.UTC); got != "2024-01-01" {
		t.Errorf("dayKey UTC = %q, want 2024-01-01", got)
	}
	if got := dayKey(at, tokyo); got != "2024-01-02" {
		t.Errorf("dayKey UTC+9 = %q, want 2024-01-02", got)
	}
}

func TestDayWindowCoversLocalDay(t *testing.T) {
	denver := time.FixedZone("UTC-7", -7*60*60)
	at := time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC) // Jun 14, 20:00 local

	start, end := dayWindow(at, denver)

	if !start.Equal(time.Date(2024, 6, 14, 0, 0, 0, 0, denver)) {
		t.Errorf("window start = %v, want local midnight Jun 14", start)
	}
	if got := end.Sub(start); got != 24*time.Hour {
		t.Errorf("window length = %v, want 24h", got)
	}
	if at.Before(start) || !at.Before(end) {
		t.Errorf("event time %v should fall inside [%v, %v)", at, start, end)
	}
}

func TestNewServiceDefaults(t *testing.T) {
	svc := NewService(nil, Options{ChannelID: "C1"})
	if svc.loc != time.UTC {
		t.Errorf("default location = %v, want UTC", svc.loc)
	}
	if svc.rewardPoints != 1 {
		t.Errorf("default reward = %d, want 1", svc.rewardPoints)
	}
}
