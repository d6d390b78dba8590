package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var reasonPolicy = bluemonday.StrictPolicy()

// SanitizeReason strips any HTML from operator supplied free text before it
// is stored in the points log and rendered back in the admin panel.
func SanitizeReason(input string) string {
	return strings.TrimSpace(reasonPolicy.Sanitize(input))
}
