package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jasik/momsnagging-api/internal/middlewares"
	"github.com/jasik/momsnagging-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetCalendarHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := int64(42)

	days := []models.DailyDiary{
		{Date: "2022-05-01", Created: true},
		{Date: "2022-05-02", Created: false},
	}

	tests := []struct {
		name           string
		query          string
		withPrincipal  bool
		setupMocks     func(svc *MockCalendarGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:          "successful calendar fetch",
			query:         "retrieveYear=2022&retrieveMonth=5",
			withPrincipal: true,
			setupMocks: func(svc *MockCalendarGetter) {
				svc.EXPECT().
					GetCalendar(gomock.Any(), userID, 2022, 5).
					Return(days, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp []models.DailyDiary
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, days, resp)
			},
		},
		{
			name:           "no principal in context",
			query:          "retrieveYear=2022&retrieveMonth=5",
			withPrincipal:  false,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "year below lower bound",
			query:          "retrieveYear=2021&retrieveMonth=5",
			withPrincipal:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "year above upper bound",
			query:          "retrieveYear=2123&retrieveMonth=5",
			withPrincipal:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "month below lower bound",
			query:          "retrieveYear=2022&retrieveMonth=0",
			withPrincipal:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "month above upper bound",
			query:          "retrieveYear=2022&retrieveMonth=13",
			withPrincipal:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-numeric year",
			query:          "retrieveYear=abc&retrieveMonth=5",
			withPrincipal:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "internal server error",
			query:         "retrieveYear=2022&retrieveMonth=5",
			withPrincipal: true,
			setupMocks: func(svc *MockCalendarGetter) {
				svc.EXPECT().
					GetCalendar(gomock.Any(), userID, 2022, 5).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCalendarGetter(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSvc)
			}

			handler := NewGetCalendarHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/diary/calendar?"+tt.query, nil)
			if tt.withPrincipal {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}

			// out-of-range cases must fail before the service runs; the
			// absence of EXPECT calls on the mock enforces that
		})
	}
}
