package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweatscore/sweatscore/config"
	"github.com/sweatscore/sweatscore/utils"
)

// AdminRequired gates privileged ledger operations. The decision is made
// once here, against the configured administrator set, and handlers behind
// it treat authorization as an established precondition. Must run after
// AuthRequired.
func AdminRequired() gin.HandlerFunc {
	admins := map[string]bool{}
	for _, id := range config.Get().AdminSlackIDs {
		admins[id] = true
	}

	return func(ctx *gin.Context) {
		slackID := ctx.GetString(ContextSlackIDKey)
		if slackID == "" || !admins[slackID] {
			utils.Error(ctx, http.StatusForbidden, 40301, "administrator access required")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
