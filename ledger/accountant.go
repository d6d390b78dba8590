package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sweatscore/sweatscore/models"
)

// ApplyDelta appends a points log entry and updates the user's cached total
// under a row lock. It is the only writer of users.total_points. The total
// floors at zero while the log entry keeps the full requested amount, so the
// audit trail survives the clamp.
func (s *Service) ApplyDelta(userID uint, amount int, source string) (int, error) {
	var newTotal int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		total, err := applyDeltaTx(tx, userID, amount, source, s.now())
		if err != nil {
			return err
		}
		newTotal = total
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("apply points delta: %w", err)
	}
	return newTotal, nil
}

// applyDeltaTx performs the log append and clamped total update inside an
// existing transaction, so check-in ingestion and check-in removal commit
// their whole write sequence atomically.
func applyDeltaTx(tx *gorm.DB, userID uint, amount int, source string, at time.Time) (int, error) {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
		return 0, err
	}

	entry := models.PointsLogEntry{
		UserID:    userID,
		Amount:    amount,
		Source:    source,
		Timestamp: at,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return 0, err
	}

	total := clampTotal(user.TotalPoints, amount)
	if err := tx.Model(&models.User{}).Where("id = ?", userID).Update("total_points", total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// clampTotal applies a signed delta with a floor at zero. Negative standings
// are a product rule, not an accounting one: the log keeps the full delta.
func clampTotal(current, amount int) int {
	total := current + amount
	if total < 0 {
		return 0
	}
	return total
}

// AddPoints is the privileged manual grant. The caller has already passed
// the admin capability check at the boundary.
func (s *Service) AddPoints(userID uint, amount int, reason string) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return 0, ErrEmptyReason
	}
	return s.ApplyDelta(userID, amount, models.AdminAdjustmentSource(reason))
}

// RemoveCheckIn deletes a check-in and reverses its points with a negated
// log entry, in one transaction. Badges granted on the strength of the
// removed check-in stay granted.
func (s *Service) RemoveCheckIn(checkInID uint) (int, error) {
	var newTotal int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var checkIn models.CheckIn
		if err := tx.First(&checkIn, checkInID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCheckInNotFound
			}
			return err
		}
		if err := tx.Delete(&models.CheckIn{}, checkIn.ID).Error; err != nil {
			return err
		}
		total, err := applyDeltaTx(tx, checkIn.UserID, -checkIn.PointsAwarded, models.SourceCheckInRemoval, s.now())
		if err != nil {
			return err
		}
		newTotal = total
		return nil
	})
	if errors.Is(err, ErrCheckInNotFound) {
		return 0, ErrCheckInNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("remove check-in: %w", err)
	}
	return newTotal, nil
}
