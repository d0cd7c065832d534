package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jasik/momsnagging-api/internal/logger"
	"github.com/jasik/momsnagging-api/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrUnauthorized is returned when a bearer token does not resolve to a user id.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUserDoesNotExist is returned when the resolved id has no profile.
	ErrUserDoesNotExist = errors.New("user does not exist")
)

// TokenAuthenticator resolves a bearer token to a user id.
type TokenAuthenticator interface {
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByPersonalID(ctx context.Context, personalID string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
	DeleteByID(ctx context.Context, id int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// UserService handles profile lookups, the preference update policy and deletion.
type UserService struct {
	auth        TokenAuthenticator
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService.
func NewUserService(auth TokenAuthenticator, reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		auth:        auth,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a domain event to Kafka.
func (s *UserService) publishEvent(ctx context.Context, event models.Event) {
	publishEvent(ctx, s.kafkaWriter, event)
}

func publishEvent(ctx context.Context, writer KafkaWriter, event models.Event) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}

// resolve maps a bearer token to a user id through the authentication collaborator.
func (s *UserService) resolve(ctx context.Context, token string) (int64, error) {
	id, err := s.auth.GetUserID(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to resolve token", "error", err)
		return 0, ErrUnauthorized
	}
	return id, nil
}

// FindUser resolves the caller and returns their profile.
func (s *UserService) FindUser(ctx context.Context, token string) (*models.UserDB, error) {
	id, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", id, "error", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "userID", id)
		return nil, ErrUserDoesNotExist
	}

	return user, nil
}

// applyUpdate returns a copy of current with the update request applied.
//
// The three field groups are mutually exclusive and considered in priority
// order: a non-blank nickname wins, else a non-zero nagging level, else the
// notification flags are applied individually. Only the first matching group
// takes effect per call; a caller wanting nickname and flags updated together
// must issue two calls. This mirrors the system of record and must not be
// collapsed into independent updates.
func applyUpdate(current models.UserDB, update models.UserUpdate) models.UserDB {
	switch {
	case strings.TrimSpace(update.Nickname) != "":
		current.Nickname = update.Nickname
	case update.NaggingLevel != 0:
		current.NaggingLevel = update.NaggingLevel
	default:
		if update.AllowGeneralNotice != nil {
			current.AllowGeneralNotice = *update.AllowGeneralNotice
		}
		if update.AllowRoutineNotice != nil {
			current.AllowRoutineNotice = *update.AllowRoutineNotice
		}
		if update.AllowTodoNotice != nil {
			current.AllowTodoNotice = *update.AllowTodoNotice
		}
		if update.AllowWeeklyNotice != nil {
			current.AllowWeeklyNotice = *update.AllowWeeklyNotice
		}
		if update.AllowOtherNotice != nil {
			current.AllowOtherNotice = *update.AllowOtherNotice
		}
	}
	return current
}

// EditUser resolves the caller, applies the update policy and persists the result.
func (s *UserService) EditUser(ctx context.Context, token string, update models.UserUpdate) (*models.UserDB, error) {
	id, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", id, "error", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "userID", id)
		return nil, ErrUserDoesNotExist
	}

	updated := applyUpdate(*user, update)

	saved, err := s.writer.Save(ctx, &updated)
	if err != nil {
		logger.Log.Errorw("failed to save user", "userID", id, "error", err)
		return nil, err
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    id,
		Type:      models.EventUserSettingsChanged,
	}
	s.publishEvent(ctx, event)

	return saved, nil
}

// RemoveUser resolves the caller, verifies existence and deletes the profile.
// Only the deleted id is returned; the rest of the response envelope stays empty.
func (s *UserService) RemoveUser(ctx context.Context, token string) (int64, error) {
	id, err := s.resolve(ctx, token)
	if err != nil {
		return 0, err
	}

	user, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", id, "error", err)
		return 0, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "userID", id)
		return 0, ErrUserDoesNotExist
	}

	if err := s.writer.DeleteByID(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "userID", id, "error", err)
		return 0, err
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    id,
		Type:      models.EventUserDeleted,
	}
	s.publishEvent(ctx, event)

	return id, nil
}

// FindUserByID returns the user with the given id, or nil if absent.
func (s *UserService) FindUserByID(ctx context.Context, id int64) (*models.UserDB, error) {
	return s.reader.GetByID(ctx, id)
}

// FindUserIDByPersonalID translates a personal id to the internal id.
// Returns 0 when no user carries the personal id.
func (s *UserService) FindUserIDByPersonalID(ctx context.Context, personalID string) (int64, error) {
	user, err := s.reader.GetByPersonalID(ctx, personalID)
	if err != nil {
		logger.Log.Errorw("failed to get user by personal id", "personalID", personalID, "error", err)
		return 0, err
	}
	if user == nil {
		return 0, nil
	}
	return user.ID, nil
}
