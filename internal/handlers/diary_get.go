package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jasik/momsnagging-api/internal/logger"
	"github.com/jasik/momsnagging-api/internal/middlewares"
	"github.com/jasik/momsnagging-api/internal/models"
)

// DiaryGetter defines the interface that the service must implement.
type DiaryGetter interface {
	GetDiary(ctx context.Context, userID int64, date time.Time) (*models.DiaryDB, bool, error)
}

// GetDiaryResponse represents a diary entry projection with the today flag
// swagger:model GetDiaryResponse
type GetDiaryResponse struct {
	// Entry date
	// default: 2022-04-16
	Date string `json:"date"`

	// Entry title
	Title string `json:"title"`

	// Entry content
	Content string `json:"content"`

	// Whether the date equals the current date
	Today bool `json:"today"`
}

// NewGetDiaryHandler returns an HTTP handler for reading a day's diary entry.
// @Summary Read diary entry
// @Description Returns the entry for the given date plus a flag telling whether that date is today
// @Tags diary
// @Produce json
// @Param retrieveDate query string true "Date to read (YYYY-MM-DD)" example(2022-04-16)
// @Success 200 {object} handlers.GetDiaryResponse "Diary projection"
// @Failure 400 {object} handlers.DiaryErrorResponse "Invalid date"
// @Failure 401 {object} handlers.DiaryErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.DiaryErrorResponse "Internal server error"
// @Router /diary [get]
// @Security BearerAuth
func NewGetDiaryHandler(svc DiaryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DiaryErrorResponse{Error: "Unauthorized"})
			return
		}

		date, err := time.Parse(dateLayout, r.URL.Query().Get("retrieveDate"))
		if err != nil {
			logger.Log.Warnw("invalid retrieve date", "retrieveDate", r.URL.Query().Get("retrieveDate"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DiaryErrorResponse{Error: "Invalid date"})
			return
		}

		diary, today, err := svc.GetDiary(ctx, userID, date)
		if err != nil {
			logger.Log.Errorw("failed to get diary", "userID", userID, "date", date, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DiaryErrorResponse{Error: "Internal server error"})
			return
		}

		resp := GetDiaryResponse{
			Date:    diary.DiaryDate.Format(dateLayout),
			Title:   diary.Title,
			Content: diary.Content,
			Today:   today,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
