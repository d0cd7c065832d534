package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jasik/momsnagging-api/internal/logger"
)

// UserRemover defines the interface that the service must implement.
type UserRemover interface {
	RemoveUser(ctx context.Context, token string) (int64, error)
}

// DeletedUserResponse represents the envelope returned after profile deletion.
// Only the id is populated; the remaining fields stay at their zero values.
// swagger:model DeletedUserResponse
type DeletedUserResponse struct {
	// Id of the deleted user
	ID int64 `json:"id"`

	// Remaining profile fields are not populated from the deleted entity
	PersonalID   string `json:"personal_id"`
	Nickname     string `json:"nickname"`
	NaggingLevel int    `json:"nagging_level"`
}

// NewDeleteUserHandler returns an HTTP handler for deleting the caller's profile.
// @Summary Delete own profile
// @Description Resolves the bearer token, verifies the profile exists and deletes it unconditionally
// @Tags user
// @Produce json
// @Success 200 {object} handlers.DeletedUserResponse "Deleted user id"
// @Failure 401 {object} handlers.UserErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UserErrorResponse "User does not exist"
// @Failure 500 {object} handlers.UserErrorResponse "Internal server error"
// @Router /user [delete]
// @Security BearerAuth
func NewDeleteUserHandler(
	svc UserRemover,
	tokenGetter UserTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized profile deletion: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Unauthorized"})
			return
		}

		id, err := svc.RemoveUser(ctx, tokenStr)
		if err != nil {
			writeUserError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeletedUserResponse{ID: id})
	}
}
