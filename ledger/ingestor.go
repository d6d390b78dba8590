package ledger

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sweatscore/sweatscore/models"
	"github.com/sweatscore/sweatscore/utils"
)

// Outcome classifies the result of ingesting one chat event.
type Outcome int

const (
	// OutcomeAccepted means a check-in was committed and points awarded.
	OutcomeAccepted Outcome = iota
	// OutcomeDuplicate means the user already checked in today; the event
	// is acknowledged but scored zero.
	OutcomeDuplicate
	// OutcomeRejected means the event failed eligibility (wrong channel,
	// no image, unknown sender). Not an error.
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return "rejected"
	}
}

// Result carries the outcome of one ingestion attempt.
type Result struct {
	Outcome  Outcome
	Reason   string
	NewTotal int
	Badges   []models.BadgeType
}

// Ingest consumes one inbound Slack callback and, when eligible, commits a
// check-in, a points log entry and the total update in a single transaction.
// Re-delivering the same event is safe: the second attempt lands on the same
// (user, day) slot and comes back as a duplicate. A returned error means the
// store failed mid-flight and nothing was committed.
func (s *Service) Ingest(cb SlackCallback) (Result, error) {
	file, reason := eligibility(cb.Event, s.channelID)
	if reason != "" {
		return Result{Outcome: OutcomeRejected, Reason: reason}, nil
	}

	var user models.User
	if err := s.db.Where("slack_id = ?", cb.Event.User).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{Outcome: OutcomeRejected, Reason: ReasonUnknownSender}, nil
		}
		return Result{}, fmt.Errorf("resolve sender: %w", err)
	}

	now := s.now()
	day := dayKey(now, s.loc)

	var newTotal int
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		// Serialize concurrent deliveries for the same user around the
		// dedup check and the writes.
		var locked models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, user.ID).Error; err != nil {
			return err
		}

		var existing models.CheckIn
		err := tx.Where("user_id = ? AND checkin_date = ?", user.ID, day).First(&existing).Error
		if err == nil {
			return ErrDuplicateCheckIn
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		checkIn := models.CheckIn{
			UserID:        user.ID,
			CheckinDate:   day,
			MessageID:     cb.Event.MessageRef(),
			ImageURL:      file.URLPrivate,
			PointsAwarded: s.rewardPoints,
			Timestamp:     now,
		}
		if err := tx.Create(&checkIn).Error; err != nil {
			// The unique (user, day) index backstops the dedup check.
			if isDuplicateKey(err) {
				return ErrDuplicateCheckIn
			}
			return err
		}

		total, err := applyDeltaTx(tx, user.ID, s.rewardPoints, models.SourceDailyCheckIn, now)
		if err != nil {
			return err
		}
		newTotal = total
		return nil
	})

	if errors.Is(txErr, ErrDuplicateCheckIn) {
		return Result{Outcome: OutcomeDuplicate, Reason: "already checked in today"}, nil
	}
	if txErr != nil {
		return Result{}, fmt.Errorf("commit check-in: %w", txErr)
	}

	// Badge grants run after the commit and never fail the check-in.
	granted, err := s.EvaluateBadges(user.ID)
	if err != nil {
		utils.Sugar.Warnf("badge evaluation failed for user %d: %v", user.ID, err)
	}

	return Result{Outcome: OutcomeAccepted, NewTotal: newTotal, Badges: granted}, nil
}
