package events

import "time"

const PunchRecordedTopic = "checktime.punch.recorded.v1"

type PunchRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RecordID   string    `json:"record_id"`
	UserID     string    `json:"user_id"`
	RecordType string    `json:"record_type"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	OccurredAt time.Time `json:"occurred_at"`
}
