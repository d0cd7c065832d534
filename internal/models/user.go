package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID                 int64     `json:"id" db:"id"`                                     // Primary key
	PersonalID         string    `json:"personal_id" db:"personal_id"`                   // Unique login identifier
	Nickname           string    `json:"nickname" db:"nickname"`                         // Display nickname
	NaggingLevel       int       `json:"nagging_level" db:"nagging_level"`               // Nagging intensity setting
	AllowGeneralNotice bool      `json:"allow_general_notice" db:"allow_general_notice"` // General notifications enabled
	AllowRoutineNotice bool      `json:"allow_routine_notice" db:"allow_routine_notice"` // Routine notifications enabled
	AllowTodoNotice    bool      `json:"allow_todo_notice" db:"allow_todo_notice"`       // Todo notifications enabled
	AllowWeeklyNotice  bool      `json:"allow_weekly_notice" db:"allow_weekly_notice"`   // Weekly notifications enabled
	AllowOtherNotice   bool      `json:"allow_other_notice" db:"allow_other_notice"`     // Other notifications enabled
	PasswordHash       string    `json:"-" db:"password_hash"`                           // Hashed password
	CreatedAt          time.Time `json:"created_at" db:"created_at"`                     // Creation timestamp
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`                     // Last update timestamp
}

// UserUpdate carries the optional fields of a profile update request.
// Nil flags mean "not supplied"; a zero nagging level means "not supplied".
type UserUpdate struct {
	Nickname           string `json:"nickname"`
	NaggingLevel       int    `json:"nagging_level"`
	AllowGeneralNotice *bool  `json:"allow_general_notice"`
	AllowRoutineNotice *bool  `json:"allow_routine_notice"`
	AllowTodoNotice    *bool  `json:"allow_todo_notice"`
	AllowWeeklyNotice  *bool  `json:"allow_weekly_notice"`
	AllowOtherNotice   *bool  `json:"allow_other_notice"`
}
