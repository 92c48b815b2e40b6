package health

import (
	"encoding/json"
	"net/http"
	"time"
)

// SessionCounter reports the number of live sessions for the readiness
// payload.
type SessionCounter interface {
	Count() int
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Started  time.Time
	Sessions SessionCounter
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness. There are no external dependencies to probe; the
// payload carries uptime and session count for operators.
func (h Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	status := map[string]any{
		"status":   "ok",
		"uptime_s": int(time.Since(h.Started).Seconds()),
	}
	if h.Sessions != nil {
		status["active_sessions"] = h.Sessions.Count()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(status)
}
