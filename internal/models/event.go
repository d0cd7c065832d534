package models

// Event types published to Kafka
const (
	EventUserSettingsChanged = "user_settings_changed"
	EventUserDeleted         = "user_deleted"
	EventDiaryWritten        = "diary_written"
	EventDiaryDeleted        = "diary_deleted"
)

// Event represents a domain event published to Kafka
type Event struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the event
	UserID    int64  `json:"user_id"`   // User the event concerns
	Type      string `json:"type"`      // Event type
}
