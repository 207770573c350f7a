package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// GET /
func Welcome(port string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "Welcome to flashcardi backend %s", port)
	}
}

// GET /health
func (db *DBHandler) Health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := db.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		db.log(r).Error("Health: database unreachable", zap.Error(err))
		respondMessage(w, http.StatusServiceUnavailable, "Database unavailable.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
