package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jasik/momsnagging-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	token := "valid-token"

	tests := []struct {
		name           string
		setupMocks     func(tok *MockUserTokener, svc *MockUserRemover)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "successful deletion returns only the id",
			setupMocks: func(tok *MockUserTokener, svc *MockUserRemover) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				svc.EXPECT().RemoveUser(gomock.Any(), token).
					Return(int64(42), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp DeletedUserResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, int64(42), resp.ID)
				assert.Empty(t, resp.PersonalID)
				assert.Empty(t, resp.Nickname)
				assert.Zero(t, resp.NaggingLevel)
			},
		},
		{
			name: "unauthorized missing token",
			setupMocks: func(tok *MockUserTokener, svc *MockUserRemover) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "user does not exist",
			setupMocks: func(tok *MockUserTokener, svc *MockUserRemover) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				svc.EXPECT().RemoveUser(gomock.Any(), token).
					Return(int64(0), services.ErrUserDoesNotExist)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "internal server error",
			setupMocks: func(tok *MockUserTokener, svc *MockUserRemover) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				svc.EXPECT().RemoveUser(gomock.Any(), token).
					Return(int64(0), errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockUserTokener(ctrl)
			mockRemover := NewMockUserRemover(ctrl)
			tt.setupMocks(mockTokener, mockRemover)

			handler := NewDeleteUserHandler(mockRemover, mockTokener)

			req := httptest.NewRequest(http.MethodDelete, "/user", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
