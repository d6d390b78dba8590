package ledger

import (
	"testing"

	"github.com/sweatscore/sweatscore/models"
)

func TestDecideBadges(t *testing.T) {
	none := map[models.BadgeType]bool{}

	cases := []struct {
		name  string
		stats badgeStats
		owned map[models.BadgeType]bool
		want  []models.BadgeType
	}{
		{
			name:  "first check-in",
			stats: badgeStats{LifetimeCheckIns: 1, TrailingWeek: 1, TotalPoints: 1},
			owned: none,
			want:  []models.BadgeType{models.BadgeFirstCheckIn},
		},
		{
			name:  "second check-in grants nothing",
			stats: badgeStats{LifetimeCheckIns: 2, TrailingWeek: 2, TotalPoints: 2},
			owned: map[models.BadgeType]bool{models.BadgeFirstCheckIn: true},
			want:  nil,
		},
		{
			name:  "fifth check-in of the week",
			stats: badgeStats{LifetimeCheckIns: 5, TrailingWeek: 5, TotalPoints: 5},
			owned: map[models.BadgeType]bool{models.BadgeFirstCheckIn: true},
			want:  []models.BadgeType{models.BadgeWeeklyWarrior},
		},
		{
			name:  "weekly badge never re-granted",
			stats: badgeStats{LifetimeCheckIns: 6, TrailingWeek: 6, TotalPoints: 6},
			owned: map[models.BadgeType]bool{models.BadgeFirstCheckIn: true, models.BadgeWeeklyWarrior: true},
			want:  nil,
		},
		{
			name:  "century at exactly 100 points",
			stats: badgeStats{LifetimeCheckIns: 40, TrailingWeek: 3, TotalPoints: 100},
			owned: map[models.BadgeType]bool{models.BadgeFirstCheckIn: true, models.BadgeWeeklyWarrior: true},
			want:  []models.BadgeType{models.BadgeCenturyClub},
		},
		{
			name:  "below century threshold",
			stats: badgeStats{LifetimeCheckIns: 40, TrailingWeek: 3, TotalPoints: 99},
			owned: map[models.BadgeType]bool{models.BadgeFirstCheckIn: true, models.BadgeWeeklyWarrior: true},
			want:  nil,
		},
		{
			name:  "multiple rules can fire on one evaluation",
			stats: badgeStats{LifetimeCheckIns: 1, TrailingWeek: 5, TotalPoints: 150},
			owned: none,
			want:  []models.BadgeType{models.BadgeFirstCheckIn, models.BadgeWeeklyWarrior, models.BadgeCenturyClub},
		},
		{
			name:  "owned badges survive state that no longer qualifies",
			stats: badgeStats{LifetimeCheckIns: 0, TrailingWeek: 0, TotalPoints: 0},
			owned: map[models.BadgeType]bool{models.BadgeFirstCheckIn: true},
			want:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := decideBadges(tc.stats, tc.owned)
			if len(got) != len(tc.want) {
				t.Fatalf("decideBadges = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("grant[%d] = %s, want %s", i, got[i], tc.want[i])
				}
			}
		})
	}
}

// Re-running the decision on unchanged state with the grants applied must
// yield nothing: grants are idempotent.
func TestDecideBadgesIdempotent(t *testing.T) {
	stats := badgeStats{LifetimeCheckIns: 1, TrailingWeek: 5, TotalPoints: 150}
	owned := map[models.BadgeType]bool{}

	first := decideBadges(stats, owned)
	if len(first) != 3 {
		t.Fatalf("first evaluation granted %d badges, want 3", len(first))
	}
	for _, b := range first {
		owned[b] = true
	}

	if second := decideBadges(stats, owned); len(second) != 0 {
		t.Errorf("second evaluation granted %v, want none", second)
	}
}
