package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jasik/momsnagging-api/internal/logger"
	"github.com/jasik/momsnagging-api/internal/models"
)

// UserEditor defines the interface that the service must implement.
type UserEditor interface {
	EditUser(ctx context.Context, token string, update models.UserUpdate) (*models.UserDB, error)
}

// UpdateUserRequest represents the JSON body for a profile update.
// All fields are optional. Nickname, nagging level and the notification
// flags form three mutually exclusive groups applied in that priority
// order; only the first supplied group takes effect per call.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Display nickname; blank means not supplied
	// default: 엄마
	Nickname string `json:"nickname"`

	// Nagging intensity level; zero means not supplied
	// default: 0
	NaggingLevel int `json:"nagging_level"`

	// Notification category flags; null means not supplied
	AllowGeneralNotice *bool `json:"allow_general_notice"`
	AllowRoutineNotice *bool `json:"allow_routine_notice"`
	AllowTodoNotice    *bool `json:"allow_todo_notice"`
	AllowWeeklyNotice  *bool `json:"allow_weekly_notice"`
	AllowOtherNotice   *bool `json:"allow_other_notice"`
}

// NewUpdateUserHandler returns an HTTP handler for updating the caller's profile.
// @Summary Update own profile
// @Description Applies the profile update policy: a non-blank nickname wins, else a non-zero nagging level, else the supplied notification flags. Only the first matching group is applied per call.
// @Tags user
// @Accept json
// @Produce json
// @Param updateUserRequest body handlers.UpdateUserRequest true "Profile update request"
// @Success 200 {object} handlers.UserResponse "Updated user profile"
// @Failure 400 {object} handlers.UserErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.UserErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UserErrorResponse "User does not exist"
// @Failure 500 {object} handlers.UserErrorResponse "Internal server error"
// @Router /user [patch]
// @Security BearerAuth
func NewUpdateUserHandler(
	svc UserEditor,
	tokenGetter UserTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized profile update: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Unauthorized"})
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode update request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid request body"})
			return
		}

		update := models.UserUpdate{
			Nickname:           req.Nickname,
			NaggingLevel:       req.NaggingLevel,
			AllowGeneralNotice: req.AllowGeneralNotice,
			AllowRoutineNotice: req.AllowRoutineNotice,
			AllowTodoNotice:    req.AllowTodoNotice,
			AllowWeeklyNotice:  req.AllowWeeklyNotice,
			AllowOtherNotice:   req.AllowOtherNotice,
		}

		user, err := svc.EditUser(ctx, tokenStr, update)
		if err != nil {
			writeUserError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(user))
	}
}
