package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint reporting the catalog size.
func Health(catalogSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := map[string]any{
			"status":      "ok",
			"attractions": catalogSize,
		}
		writeJSON(w, r, http.StatusOK, res)
	}
}
