package feedback

import (
	"time"

	feedbackRecord "monad-feedback/internal/feedback"
	historyRecord "monad-feedback/internal/history"
)

// SubmitRequest - тело POST /api/feedback-collection
type SubmitRequest struct {
	Feedback SubmissionInput `json:"feedback"`
}

// SubmissionInput - пользовательский ввод формы обратной связи
type SubmissionInput struct {
	Text     string `json:"feedback"`
	Category string `json:"category"`
	XHandle  string `json:"xHandle,omitempty"`
}

// SubmitResponse - ответ на успешную отправку отзыва
type SubmitResponse struct {
	Success     bool                  `json:"success"`
	Feedback    feedbackRecord.Record `json:"feedback"`
	UserHistory historyRecord.Record  `json:"userHistory"`
}

// CollectionResponse - тело GET /api/feedback-collection
type CollectionResponse struct {
	Feedback    []feedbackRecord.Record `json:"feedback"`
	UserHistory []historyRecord.Record  `json:"userHistory"`
}

// LegacyFeedback - отзыв в том виде, в котором он жил в локальном хранилище
// клиента. Старые записи держат текст в feedback_text и не имеют id,
// новые повторяют формат feedback.Record. Нормализация выполняется
// один раз при приеме миграции.
type LegacyFeedback struct {
	ID                  string    `json:"id,omitempty"`
	Text                string    `json:"feedback,omitempty"`
	LegacyText          string    `json:"feedback_text,omitempty"`
	Category            string    `json:"category,omitempty"`
	XHandle             string    `json:"xHandle,omitempty"`
	PaymentAmount       string    `json:"paymentAmount,omitempty"`
	LegacyPaymentAmount string    `json:"payment_amount,omitempty"`
	Timestamp           time.Time `json:"timestamp,omitempty"`
}

// LegacyHistory - запись истории из локального хранилища клиента
type LegacyHistory struct {
	FeedbackID    string    `json:"feedbackId,omitempty"`
	WalletAddress string    `json:"walletAddress,omitempty"`
	Category      string    `json:"category,omitempty"`
	Timestamp     time.Time `json:"timestamp,omitempty"`
}

// MigrateRequest - тело POST /api/migrate
type MigrateRequest struct {
	Feedback    []LegacyFeedback `json:"feedback"`
	UserHistory []LegacyHistory  `json:"userHistory"`
}

// MigrateResponse - результат миграции
type MigrateResponse struct {
	Success          bool `json:"success"`
	MigratedFeedback int  `json:"migratedFeedback"`
	MigratedHistory  int  `json:"migratedHistory"`
}
