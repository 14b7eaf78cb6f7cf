package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/ads_resale_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are paths that never produce analytics events.
var untrackedPrefixes = []string{"/health", "/swagger"}

// RequestAnalytics records each successful request made with a session as an
// event named after its route, e.g. "/api/v1/contracts/:id" becomes
// "api_v1_contracts_:id". The operator's user id is the distinct id.
func RequestAnalytics(client *utils.AnalyticsClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !client.Enabled() || untracked(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		sess, ok := GetSessionFromContext(c)
		if !ok {
			return
		}

		event := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"role":        string(sess.User.Role),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}
		client.Track(sess.User.ID.String(), event, props)
	}
}

func untracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
