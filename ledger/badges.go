package ledger

import (
	"fmt"

	"github.com/sweatscore/sweatscore/models"
	"github.com/sweatscore/sweatscore/utils"
)

// weeklyWarriorThreshold is the check-in count in the trailing seven days
// that earns the weekly badge.
const weeklyWarriorThreshold = 5

// centuryThreshold is the lifetime point total that earns the century badge.
const centuryThreshold = 100

// badgeStats is the aggregate state a user is judged on.
type badgeStats struct {
	LifetimeCheckIns int64
	TrailingWeek     int64
	TotalPoints      int
}

// decideBadges applies the closed badge rule set to a snapshot of user
// state. Grants are monotonic: a badge the user already owns is never
// re-evaluated.
func decideBadges(stats badgeStats, owned map[models.BadgeType]bool) []models.BadgeType {
	var grants []models.BadgeType
	if !owned[models.BadgeFirstCheckIn] && stats.LifetimeCheckIns == 1 {
		grants = append(grants, models.BadgeFirstCheckIn)
	}
	if !owned[models.BadgeWeeklyWarrior] && stats.TrailingWeek >= weeklyWarriorThreshold {
		grants = append(grants, models.BadgeWeeklyWarrior)
	}
	if !owned[models.BadgeCenturyClub] && stats.TotalPoints >= centuryThreshold {
		grants = append(grants, models.BadgeCenturyClub)
	}
	return grants
}

// EvaluateBadges checks all badge rules for a user and persists any new
// grants. Each grant is attempted independently: one failing rule is logged
// and does not block the others. The returned slice holds the badge types
// granted by this call.
func (s *Service) EvaluateBadges(userID uint) ([]models.BadgeType, error) {
	stats, err := s.collectBadgeStats(userID)
	if err != nil {
		return nil, err
	}

	var existing []models.Badge
	if err := s.db.Where("user_id = ?", userID).Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("load badges: %w", err)
	}
	owned := make(map[models.BadgeType]bool, len(existing))
	for _, b := range existing {
		owned[b.BadgeType] = true
	}

	var granted []models.BadgeType
	for _, badgeType := range decideBadges(stats, owned) {
		badge := models.Badge{UserID: userID, BadgeType: badgeType, AwardedAt: s.now()}
		if err := s.db.Create(&badge).Error; err != nil {
			if isDuplicateKey(err) {
				// A concurrent evaluation won the race; the grant exists.
				continue
			}
			utils.Sugar.Warnf("badge grant %s failed for user %d: %v", badgeType, userID, err)
			continue
		}
		granted = append(granted, badgeType)
	}
	return granted, nil
}

func (s *Service) collectBadgeStats(userID uint) (badgeStats, error) {
	var stats badgeStats

	if err := s.db.Model(&models.CheckIn{}).Where("user_id = ?", userID).Count(&stats.LifetimeCheckIns).Error; err != nil {
		return stats, fmt.Errorf("count check-ins: %w", err)
	}

	// Trailing window is inclusive of now, exclusive of seven days ago.
	weekAgo := s.now().AddDate(0, 0, -7)
	if err := s.db.Model(&models.CheckIn{}).
		Where("user_id = ? AND timestamp > ?", userID, weekAgo).
		Count(&stats.TrailingWeek).Error; err != nil {
		return stats, fmt.Errorf("count weekly check-ins: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return stats, fmt.Errorf("load user: %w", err)
	}
	stats.TotalPoints = user.TotalPoints

	return stats, nil
}
