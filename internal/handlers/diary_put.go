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

const dateLayout = "2006-01-02"

// DiaryPutter defines the interface that the service must implement.
type DiaryPutter interface {
	PutDiary(ctx context.Context, userID int64, date time.Time, title, content string) (*models.DiaryDB, error)
}

// PutDiaryRequest represents the JSON body for writing a day's diary entry.
// Empty title and content signal deletion of that day's entry.
// swagger:model PutDiaryRequest
type PutDiaryRequest struct {
	// Entry date
	// required: true
	// default: 2022-04-16
	Date string `json:"date"`

	// Entry title; empty together with content deletes the entry
	// default: 좋은 하루
	Title string `json:"title"`

	// Entry content; empty together with title deletes the entry
	// default: 오늘은 산책을 했다
	Content string `json:"content"`
}

// DiaryResponse represents a diary entry projection
// swagger:model DiaryResponse
type DiaryResponse struct {
	// Entry date
	// default: 2022-04-16
	Date string `json:"date"`

	// Entry title
	Title string `json:"title"`

	// Entry content
	Content string `json:"content"`
}

// DiaryErrorResponse represents an error response for diary operations
// swagger:model DiaryErrorResponse
type DiaryErrorResponse struct {
	// Error message
	// default: Invalid request
	Error string `json:"error"`
}

// NewPutDiaryHandler returns an HTTP handler for upserting a day's diary entry.
// @Summary Write diary entry
// @Description Upserts the entry for the given date. A request with empty title and content deletes that day's entry.
// @Tags diary
// @Accept json
// @Produce json
// @Param putDiaryRequest body handlers.PutDiaryRequest true "Diary write request"
// @Success 200 {object} handlers.DiaryResponse "Updated diary projection"
// @Failure 400 {object} handlers.DiaryErrorResponse "Invalid request body or date"
// @Failure 401 {object} handlers.DiaryErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.DiaryErrorResponse "Internal server error"
// @Router /diary [put]
// @Security BearerAuth
func NewPutDiaryHandler(svc DiaryPutter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DiaryErrorResponse{Error: "Unauthorized"})
			return
		}

		var req PutDiaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode diary request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DiaryErrorResponse{Error: "Invalid request body"})
			return
		}

		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			logger.Log.Warnw("invalid diary date", "date", req.Date)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DiaryErrorResponse{Error: "Invalid date"})
			return
		}

		diary, err := svc.PutDiary(ctx, userID, date, req.Title, req.Content)
		if err != nil {
			logger.Log.Errorw("failed to put diary", "userID", userID, "date", req.Date, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DiaryErrorResponse{Error: "Internal server error"})
			return
		}

		resp := DiaryResponse{
			Date:    diary.DiaryDate.Format(dateLayout),
			Title:   diary.Title,
			Content: diary.Content,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
