package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jasik/momsnagging-api/internal/logger"
	"github.com/jasik/momsnagging-api/internal/models"
)

const dateLayout = "2006-01-02"

// DiaryReader defines read operations for diary entries.
type DiaryReader interface {
	GetByUserIDAndDate(ctx context.Context, userID int64, date time.Time) (*models.DiaryDB, error)
	GetDaysOfMonth(ctx context.Context, userID int64, from, to time.Time) ([]time.Time, error)
}

// DiaryWriter defines write operations for diary entries.
type DiaryWriter interface {
	Save(ctx context.Context, userID int64, date time.Time, title, content string) (*models.DiaryDB, error)
	DeleteByUserIDAndDate(ctx context.Context, userID int64, date time.Time) error
}

// CalendarCacheReader caches per-month diary existence flags.
type CalendarCacheReader interface {
	GetMonth(ctx context.Context, userID int64, year, month int) ([]bool, error)
	SetMonth(ctx context.Context, userID int64, year, month int, days []bool) error
	DeleteMonth(ctx context.Context, userID int64, year, month int) error
}

// DiaryService handles per-day diary writes and calendar reads.
type DiaryService struct {
	readRepo    DiaryReader
	writeRepo   DiaryWriter
	cacheRepo   CalendarCacheReader
	kafkaWriter KafkaWriter
}

// NewDiaryService creates a new DiaryService.
func NewDiaryService(
	readRepo DiaryReader,
	writeRepo DiaryWriter,
	cacheRepo CalendarCacheReader,
	kafkaWriter KafkaWriter,
) *DiaryService {
	return &DiaryService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// PutDiary upserts the entry for the given date. A request carrying empty
// title and content deletes that day's entry instead.
func (s *DiaryService) PutDiary(ctx context.Context, userID int64, date time.Time, title, content string) (*models.DiaryDB, error) {
	if title == "" && content == "" {
		if err := s.writeRepo.DeleteByUserIDAndDate(ctx, userID, date); err != nil {
			logger.Log.Errorw("failed to delete diary entry", "userID", userID, "date", date, "error", err)
			return nil, err
		}
		s.invalidateCalendar(ctx, userID, date)
		s.publishDiaryEvent(ctx, userID, models.EventDiaryDeleted)

		return &models.DiaryDB{UserID: userID, DiaryDate: date}, nil
	}

	diary, err := s.writeRepo.Save(ctx, userID, date, title, content)
	if err != nil {
		logger.Log.Errorw("failed to save diary entry", "userID", userID, "date", date, "error", err)
		return nil, err
	}
	s.invalidateCalendar(ctx, userID, date)
	s.publishDiaryEvent(ctx, userID, models.EventDiaryWritten)

	return diary, nil
}

// GetDiary returns the entry for the given date along with a flag telling
// whether the date is today. A date without an entry yields an empty projection.
func (s *DiaryService) GetDiary(ctx context.Context, userID int64, date time.Time) (*models.DiaryDB, bool, error) {
	diary, err := s.readRepo.GetByUserIDAndDate(ctx, userID, date)
	if err != nil {
		logger.Log.Errorw("failed to get diary entry", "userID", userID, "date", date, "error", err)
		return nil, false, err
	}

	today := date.Format(dateLayout) == time.Now().Format(dateLayout)

	if diary == nil {
		return &models.DiaryDB{UserID: userID, DiaryDate: date}, today, nil
	}

	return diary, today, nil
}

// GetCalendar returns, for every day of the given month, whether a diary
// entry exists. The month calendar is served from the Redis cache when
// possible and recomputed from the repository on a miss.
func (s *DiaryService) GetCalendar(ctx context.Context, userID int64, year, month int) ([]models.DailyDiary, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	numDays := to.Add(-24 * time.Hour).Day()

	days, err := s.cacheRepo.GetMonth(ctx, userID, year, month)
	if err != nil || len(days) != numDays {
		days = make([]bool, numDays)

		dates, err := s.readRepo.GetDaysOfMonth(ctx, userID, from, to)
		if err != nil {
			logger.Log.Errorw("failed to get diary days of month", "userID", userID, "year", year, "month", month, "error", err)
			return nil, err
		}
		for _, d := range dates {
			days[d.Day()-1] = true
		}

		if err := s.cacheRepo.SetMonth(ctx, userID, year, month, days); err != nil {
			logger.Log.Errorw("failed to cache calendar", "userID", userID, "year", year, "month", month, "error", err)
		}
	}

	result := make([]models.DailyDiary, numDays)
	for i := range days {
		result[i] = models.DailyDiary{
			Date:    from.AddDate(0, 0, i).Format(dateLayout),
			Created: days[i],
		}
	}

	return result, nil
}

// invalidateCalendar drops the cached calendar for the month the date falls in.
func (s *DiaryService) invalidateCalendar(ctx context.Context, userID int64, date time.Time) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.DeleteMonth(ctx, userID, date.Year(), int(date.Month())); err != nil {
		logger.Log.Errorw("failed to invalidate calendar cache", "userID", userID, "date", date, "error", err)
	}
}

func (s *DiaryService) publishDiaryEvent(ctx context.Context, userID int64, eventType string) {
	event := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		Type:      eventType,
	}
	publishEvent(ctx, s.kafkaWriter, event)
}
