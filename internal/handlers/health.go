package handlers

import "net/http"

// NewLivenessHandler returns a plain-text liveness probe.
// @Summary Liveness
// @Produce plain
// @Success 200 {string} string "hi bigstack"
// @Router / [get]
func NewLivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hi bigstack"))
	}
}
