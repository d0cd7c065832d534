package models

import "time"

// DiaryDB represents a diary entry row in the database
type DiaryDB struct {
	DiaryID   int64     `json:"diary_id" db:"diary_id"`     // Unique diary entry identifier
	UserID    int64     `json:"user_id" db:"user_id"`       // Identifier of the entry's owner
	DiaryDate time.Time `json:"diary_date" db:"diary_date"` // Calendar date the entry belongs to
	Title     string    `json:"title" db:"title"`           // Entry title
	Content   string    `json:"content" db:"content"`       // Entry free-text content
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the entry was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last entry update
}

// DailyDiary reports whether a diary entry exists for a single day of a month.
type DailyDiary struct {
	Date    string `json:"date"`    // Day in YYYY-MM-DD format
	Created bool   `json:"created"` // Whether an entry exists for that day
}
