package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jasik/momsnagging-api/internal/logger"
	"github.com/jasik/momsnagging-api/internal/models"
)

// DiaryReadRepository handles diary read operations
type DiaryReadRepository struct {
	db *sqlx.DB
}

func NewDiaryReadRepository(db *sqlx.DB) *DiaryReadRepository {
	return &DiaryReadRepository{db: db}
}

// GetByUserIDAndDate returns the entry for the given user and date, or nil if absent.
func (r *DiaryReadRepository) GetByUserIDAndDate(ctx context.Context, userID int64, date time.Time) (*models.DiaryDB, error) {
	const query = `
		SELECT diary_id, user_id, diary_date, title, content, created_at, updated_at
		FROM diaries
		WHERE user_id = $1 AND diary_date = $2
	`

	var diary models.DiaryDB
	err := r.db.GetContext(ctx, &diary, query, userID, date)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, date},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &diary, nil
}

// GetDaysOfMonth returns the distinct dates within [from, to) that have an entry.
func (r *DiaryReadRepository) GetDaysOfMonth(ctx context.Context, userID int64, from, to time.Time) ([]time.Time, error) {
	const query = `
		SELECT diary_date
		FROM diaries
		WHERE user_id = $1 AND diary_date >= $2 AND diary_date < $3
		ORDER BY diary_date
	`

	var days []time.Time
	err := r.db.SelectContext(ctx, &days, query, userID, from, to)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, from, to},
		"result", len(days),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return days, nil
}

// DiaryWriteRepository handles diary write operations
type DiaryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDiaryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DiaryWriteRepository {
	return &DiaryWriteRepository{db: db, txGetter: txGetter}
}

func (r *DiaryWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save performs an UPSERT: creates the day's entry if not exists, otherwise replaces title and content.
func (r *DiaryWriteRepository) Save(ctx context.Context, userID int64, date time.Time, title, content string) (*models.DiaryDB, error) {
	query := `
		INSERT INTO diaries (user_id, diary_date, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, diary_date)
		DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content, updated_at = NOW()
		RETURNING diary_id, user_id, diary_date, title, content, created_at, updated_at
	`
	args := []any{userID, date, title, content}

	var diary models.DiaryDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &diary, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &diary, nil
}

// DeleteByUserIDAndDate removes the entry for the given user and date, if any.
func (r *DiaryWriteRepository) DeleteByUserIDAndDate(ctx context.Context, userID int64, date time.Time) error {
	query := `DELETE FROM diaries WHERE user_id = $1 AND diary_date = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, date)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, date},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
