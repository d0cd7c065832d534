package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jasik/momsnagging-api/internal/logger"
	"github.com/jasik/momsnagging-api/internal/middlewares"
	"github.com/jasik/momsnagging-api/internal/models"
)

// Year and month bounds accepted by the calendar query
const (
	minCalendarYear = 2022
	maxCalendarYear = 2122
)

// CalendarGetter defines the interface that the service must implement.
type CalendarGetter interface {
	GetCalendar(ctx context.Context, userID int64, year, month int) ([]models.DailyDiary, error)
}

// NewGetCalendarHandler returns an HTTP handler for the month calendar query.
// @Summary Read month calendar
// @Description Returns, for every day of the given month, whether a diary entry exists. Year and month are validated before the service runs.
// @Tags diary
// @Produce json
// @Param retrieveYear query int true "Year to read" minimum(2022) maximum(2122) example(2022)
// @Param retrieveMonth query int true "Month to read" minimum(1) maximum(12) example(5)
// @Success 200 {array} models.DailyDiary "Per-day existence flags"
// @Failure 400 {object} handlers.DiaryErrorResponse "Year or month out of range"
// @Failure 401 {object} handlers.DiaryErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.DiaryErrorResponse "Internal server error"
// @Router /diary/calendar [get]
// @Security BearerAuth
func NewGetCalendarHandler(svc CalendarGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DiaryErrorResponse{Error: "Unauthorized"})
			return
		}

		year, err := strconv.Atoi(r.URL.Query().Get("retrieveYear"))
		if err != nil || year < minCalendarYear || year > maxCalendarYear {
			logger.Log.Warnw("invalid retrieve year", "retrieveYear", r.URL.Query().Get("retrieveYear"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DiaryErrorResponse{Error: "Invalid year or month"})
			return
		}

		month, err := strconv.Atoi(r.URL.Query().Get("retrieveMonth"))
		if err != nil || month < 1 || month > 12 {
			logger.Log.Warnw("invalid retrieve month", "retrieveMonth", r.URL.Query().Get("retrieveMonth"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DiaryErrorResponse{Error: "Invalid year or month"})
			return
		}

		days, err := svc.GetCalendar(ctx, userID, year, month)
		if err != nil {
			logger.Log.Errorw("failed to get calendar", "userID", userID, "year", year, "month", month, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DiaryErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(days)
	}
}
