package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweatscore/sweatscore/ledger"
	"github.com/sweatscore/sweatscore/utils"
)

// WebhookController receives Slack event deliveries. Responses follow the
// Slack events contract (raw ack / challenge echo), not the API envelope.
type WebhookController struct {
	svc *ledger.Service
}

// NewWebhookController creates a new controller instance.
func NewWebhookController(svc *ledger.Service) *WebhookController {
	return &WebhookController{svc: svc}
}

// HandleSlackEvent processes one delivery from the Slack events API.
// Ineligible and duplicate events are acknowledged 200 so Slack stops
// retrying them; store failures answer 500 so Slack redelivers, which is
// safe because re-ingestion deduplicates on (user, day).
func (w *WebhookController) HandleSlackEvent(ctx *gin.Context) {
	var cb ledger.SlackCallback
	if err := ctx.ShouldBindJSON(&cb); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	switch cb.Type {
	case "url_verification":
		ctx.JSON(http.StatusOK, gin.H{"challenge": cb.Challenge})
		return
	case "event_callback":
		res, err := w.svc.Ingest(cb)
		if err != nil {
			utils.Sugar.Errorf("check-in ingestion failed: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		switch res.Outcome {
		case ledger.OutcomeAccepted:
			utils.Sugar.Infow("check-in accepted",
				"slack_user", cb.Event.User,
				"new_total", res.NewTotal,
				"badges", res.Badges,
			)
			utils.InvalidateByPrefix("cache:leaderboard:")
			utils.InvalidateByPrefix("cache:profile:")
		case ledger.OutcomeDuplicate:
			utils.Sugar.Debugw("duplicate check-in ignored", "slack_user", cb.Event.User)
		default:
			utils.Sugar.Debugw("event rejected", "reason", res.Reason)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
