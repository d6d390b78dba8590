package ledger

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	for _, valid := range []string{"week", "month", "quarter", "year", "all"} {
		if _, err := ParseWindow(valid); err != nil {
			t.Errorf("ParseWindow(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "day", "WEEK", "fortnight"} {
		if _, err := ParseWindow(invalid); err == nil {
			t.Errorf("ParseWindow(%q) expected error", invalid)
		}
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		window Window
		want   time.Time
	}{
		{WindowWeek, time.Date(2024, 6, 8, 12, 0, 0, 0, time.UTC)},
		{WindowMonth, time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)},
		{WindowQuarter, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)},
		{WindowYear, time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := windowStart(now, tc.window); !got.Equal(tc.want) {
			t.Errorf("windowStart(%s) = %v, want %v", tc.window, got, tc.want)
		}
	}
}

func TestRankEntriesOrderingAndTies(t *testing.T) {
	entries := []Entry{
		{UserID: 4, Name: "dana", Points: 0},
		{UserID: 2, Name: "bo", Points: 12},
		{UserID: 3, Name: "cam", Points: 12},
		{UserID: 1, Name: "alex", Points: 30},
		{UserID: 5, Name: "eli", Points: 0},
	}

	ranked := rankEntries(entries)

	wantOrder := []uint{1, 2, 3, 4, 5}
	for i, want := range wantOrder {
		if ranked[i].UserID != want {
			t.Errorf("position %d: user %d, want %d", i, ranked[i].UserID, want)
		}
	}

	// Ranks are contiguous 1..N and scores never increase down the board.
	for i, e := range ranked {
		if e.Rank != i+1 {
			t.Errorf("rank at position %d = %d, want %d", i, e.Rank, i+1)
		}
		if i > 0 && e.Points > ranked[i-1].Points {
			t.Errorf("score increases from rank %d to %d", ranked[i-1].Rank, e.Rank)
		}
	}
}

func TestRankEntriesDeterministic(t *testing.T) {
	build := func() []Entry {
		return []Entry{
			{UserID: 9, Points: 5},
			{UserID: 3, Points: 5},
			{UserID: 7, Points: 5},
		}
	}

	first := rankEntries(build())
	second := rankEntries(build())
	for i := range first {
		if first[i].UserID != second[i].UserID || first[i].Rank != second[i].Rank {
			t.Fatalf("tie ordering not deterministic: %v vs %v", first, second)
		}
	}
	// Ties resolve by ascending user id.
	if first[0].UserID != 3 || first[1].UserID != 7 || first[2].UserID != 9 {
		t.Errorf("tie order = %v, want users 3,7,9", first)
	}
}

func TestRankEntriesEmpty(t *testing.T) {
	if got := rankEntries(nil); len(got) != 0 {
		t.Errorf("rankEntries(nil) = %v, want empty", got)
	}
}
