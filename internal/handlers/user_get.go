package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jasik/momsnagging-api/internal/logger"
	"github.com/jasik/momsnagging-api/internal/models"
	"github.com/jasik/momsnagging-api/internal/services"
)

// UserTokener defines only the methods needed by the user handlers.
type UserTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserFinder defines the interface that the service must implement.
type UserFinder interface {
	FindUser(ctx context.Context, token string) (*models.UserDB, error)
}

// UserResponse represents a user profile projection
// swagger:model UserResponse
type UserResponse struct {
	// User id
	ID int64 `json:"id"`

	// Personal id used for login
	// default: kakao_12345
	PersonalID string `json:"personal_id"`

	// Display nickname
	// default: 엄마
	Nickname string `json:"nickname"`

	// Nagging intensity level
	// default: 1
	NaggingLevel int `json:"nagging_level"`

	// Notification category flags
	AllowGeneralNotice bool `json:"allow_general_notice"`
	AllowRoutineNotice bool `json:"allow_routine_notice"`
	AllowTodoNotice    bool `json:"allow_todo_notice"`
	AllowWeeklyNotice  bool `json:"allow_weekly_notice"`
	AllowOtherNotice   bool `json:"allow_other_notice"`
}

// UserErrorResponse represents an error response for user profile operations
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// default: user does not exist
	Error string `json:"error"`
}

func newUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		ID:                 user.ID,
		PersonalID:         user.PersonalID,
		Nickname:           user.Nickname,
		NaggingLevel:       user.NaggingLevel,
		AllowGeneralNotice: user.AllowGeneralNotice,
		AllowRoutineNotice: user.AllowRoutineNotice,
		AllowTodoNotice:    user.AllowTodoNotice,
		AllowWeeklyNotice:  user.AllowWeeklyNotice,
		AllowOtherNotice:   user.AllowOtherNotice,
	}
}

// writeUserError maps service errors to HTTP statuses shared by the user handlers.
func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(UserErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, services.ErrUserDoesNotExist):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(UserErrorResponse{Error: "user does not exist"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
	}
}

// NewGetUserHandler returns an HTTP handler for fetching the caller's profile.
// @Summary Get own profile
// @Description Resolves the bearer token and returns the caller's profile
// @Tags user
// @Produce json
// @Success 200 {object} handlers.UserResponse "User profile"
// @Failure 401 {object} handlers.UserErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UserErrorResponse "User does not exist"
// @Failure 500 {object} handlers.UserErrorResponse "Internal server error"
// @Router /user [get]
// @Security BearerAuth
func NewGetUserHandler(
	svc UserFinder,
	tokenGetter UserTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized profile request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := svc.FindUser(ctx, tokenStr)
		if err != nil {
			writeUserError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(user))
	}
}
