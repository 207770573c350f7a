package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrewpaige1/flashcardi-api/middleware"
)

// DBHandler serves the deck and card endpoints straight off the database.
type DBHandler struct {
	*gorm.DB
	Logger *zap.Logger

	// Location is the time zone of the YYYYMMDD prefix in deck IDs.
	Location *time.Location
	Now      func() time.Time
}

func NewDBHandler(db *gorm.DB, logger *zap.Logger, loc *time.Location) *DBHandler {
	if loc == nil {
		loc = time.Local
	}
	return &DBHandler{
		DB:       db,
		Logger:   logger,
		Location: loc,
		Now:      time.Now,
	}
}

func (db *DBHandler) today() time.Time {
	return db.Now().In(db.Location)
}

func (db *DBHandler) log(r *http.Request) *zap.Logger {
	return db.Logger.With(zap.String("requestId", middleware.RequestIDFromContext(r.Context())))
}
