package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"rallypointwellness.com/site/internal/observability"
)

// WriteError logs err on the request logger and answers with a plain-text
// status message. The error detail never reaches the client.
func WriteError(w http.ResponseWriter, r *http.Request, code int, err error) {
	observability.FromContext(r.Context()).Error("request failed", zap.Int("status", code), zap.Error(err))
	http.Error(w, http.StatusText(code), code)
}
