package handlers

import "net/http"

// NewRootHandler returns the GET / service banner.
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "Station Service",
		})
	}
}
