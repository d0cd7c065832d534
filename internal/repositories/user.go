package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/jasik/momsnagging-api/internal/logger"
	"github.com/jasik/momsnagging-api/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil if no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, personal_id, nickname, nagging_level,
		       allow_general_notice, allow_routine_notice, allow_todo_notice,
		       allow_weekly_notice, allow_other_notice,
		       password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByPersonalID returns the user with the given personal id, or nil if absent.
func (r *UserReadRepository) GetByPersonalID(ctx context.Context, personalID string) (*models.UserDB, error) {
	const query = `
		SELECT id, personal_id, nickname, nagging_level,
		       allow_general_notice, allow_routine_notice, allow_todo_notice,
		       allow_weekly_notice, allow_other_notice,
		       password_hash, created_at, updated_at
		FROM users
		WHERE personal_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, personalID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{personalID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a new user with default notification preferences.
func (r *UserWriteRepository) Create(ctx context.Context, personalID, passwordHash, nickname string) error {
	query := `
		INSERT INTO users (personal_id, password_hash, nickname, nagging_level,
		                   allow_general_notice, allow_routine_notice, allow_todo_notice,
		                   allow_weekly_notice, allow_other_notice,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, 1, TRUE, TRUE, TRUE, TRUE, TRUE, NOW(), NOW())
	`
	args := []any{personalID, passwordHash, nickname}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{personalID, nickname},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Save persists the mutable profile fields of an existing user and returns the stored row.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET nickname = $2,
		    nagging_level = $3,
		    allow_general_notice = $4,
		    allow_routine_notice = $5,
		    allow_todo_notice = $6,
		    allow_weekly_notice = $7,
		    allow_other_notice = $8,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, personal_id, nickname, nagging_level,
		          allow_general_notice, allow_routine_notice, allow_todo_notice,
		          allow_weekly_notice, allow_other_notice,
		          password_hash, created_at, updated_at
	`
	args := []any{
		user.ID, user.Nickname, user.NaggingLevel,
		user.AllowGeneralNotice, user.AllowRoutineNotice, user.AllowTodoNotice,
		user.AllowWeeklyNotice, user.AllowOtherNotice,
	}

	var saved models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// DeleteByID removes the user with the given id.
func (r *UserWriteRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
