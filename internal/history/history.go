package history

import "time"

// Record - приватная запись истории. Связывает кошелек с идентификатором
// отзыва и используется только для выдачи пользователю его собственной истории.
// AnonymizedTimestamp всегда равен метке времени парной записи отзыва.
type Record struct {
	FeedbackID          string    `json:"feedbackId"` // uuid, ссылка на feedback.Record.ID
	WalletAddress       string    `json:"walletAddress"`
	Category            string    `json:"category"`
	AnonymizedTimestamp time.Time `json:"timestamp"`
}
