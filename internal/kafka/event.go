package kafka

import "time"

type EventType string

const (
	EventTypeSubmission EventType = "submission"
	EventTypeMigration  EventType = "migration"
)

// Event - анонимизированное событие о новом отзыве. Несет только категорию
// и анонимизированную метку времени: адрес кошелька в шину не попадает никогда.
type Event struct {
	Type                EventType `json:"type"`
	Category            string    `json:"category"`
	AnonymizedTimestamp time.Time `json:"timestamp"`
}
