package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/andrewpaige1/flashcardi-api/models"
)

const maxBodyBytes = 1 << 20

// MessageResponse is the body of every error and of delete confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, MessageResponse{Message: message})
}

var errTrailingData = errors.New("request body must contain a single JSON value")

// decodeBody reads exactly one JSON value from the request body.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// respondError maps the model sentinels onto status codes. Anything else is a 500.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		respondMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	default:
		logger.Error("unexpected error", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error.")
	}
}
