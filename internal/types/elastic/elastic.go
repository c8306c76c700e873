package elastic

import "time"

// FeedbackDoc - документ индекса отзывов. Кошелек в индекс не попадает.
type FeedbackDoc struct {
	ID                  string    `json:"id"`
	Text                string    `json:"text"`
	Category            string    `json:"category"`
	XHandle             string    `json:"x_handle,omitempty"`
	AnonymizedTimestamp time.Time `json:"anonymous_timestamp"`
}
