package middlewares

import (
	"net/http"
	"strings"

	"github.com/brunohenrs/northstar/internal/config"
)

var guardedPrefixes = []string{
	"/api/goals",
	"/api/tasks",
	"/api/focus",
	"/api/progress",
}

// ReadOnlyGuard rejects every non-GET method on the guarded API prefixes
// with a fixed 403 payload, before any storage work happens. OPTIONS is
// left alone so CORS preflights still succeed.
func ReadOnlyGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodOptions && isGuarded(r.URL.Path) {
			config.JSON(w, http.StatusForbidden, config.ErrorBody{
				Error:   "read-only mode",
				Message: "this dashboard does not accept modifications",
				Hint:    "use the full server to create or change data",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isGuarded(path string) bool {
	for _, prefix := range guardedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
