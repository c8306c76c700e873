package anonymizer

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"monad-feedback/internal/feedback"
	"monad-feedback/internal/history"
	"monad-feedback/internal/kafka"
	"monad-feedback/internal/storage"
	myErr "monad-feedback/internal/types/errors"
)

// Submission - вход анонимайзера. Адрес кошелька известен только здесь
// и попадает исключительно в запись истории.
type Submission struct {
	Text          string
	Category      string
	XHandle       string
	WalletAddress string
}

// Значения по умолчанию: без настроенной задержки анонимизация
// превращается в мгновенную запись, поэтому пустой конфиг её не отключает.
const (
	DefaultDelayMin = 30 * time.Second
	DefaultDelayMax = 300 * time.Second
)

var defaultWindowStart = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

type Config struct {
	// Границы случайной задержки перед записью
	DelayMin time.Duration
	DelayMax time.Duration
	// Начало окна рандомизации меток времени, конец окна - текущий момент
	WindowStart time.Time
	// Отображаемая сумма платежа, например "1.1 MON"
	PaymentAmount string
}

// Anonymizer - разрывает временную и реляционную связь между платежом
// кошелька и сохраненным отзывом: случайная задержка, случайная метка
// времени из многолетнего окна, случайный идентификатор.
type Anonymizer struct {
	Storage  storage.Storage
	Producer kafka.EventProducer // nil - события не отправляются
	Logger   *zap.SugaredLogger
	Config   Config
}

func NewAnonymizer(
	st storage.Storage,
	producer kafka.EventProducer,
	logger *zap.SugaredLogger,
	config Config,
) *Anonymizer {
	if config.DelayMax <= 0 {
		config.DelayMin = DefaultDelayMin
		config.DelayMax = DefaultDelayMax
	}
	if config.WindowStart.IsZero() {
		config.WindowStart = defaultWindowStart
	}

	return &Anonymizer{
		Storage:  st,
		Producer: producer,
		Logger:   logger,
		Config:   config,
	}
}

// Submit - проводит отзыв через конвейер анонимизации и сохраняет пару записей.
// Блокируется на время случайной задержки; если контекст отменен до записи,
// отзыв теряется без повторов - это осознанное поведение.
func (anonymizer *Anonymizer) Submit(
	ctx context.Context,
	submission Submission,
) (feedback.Record, history.Record, error) {
	delay := anonymizer.randomDelay()
	anonymizer.Logger.Infof("Submission accepted, delaying persistence for %s", delay)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		anonymizer.Logger.Warnw("Submission abandoned mid-delay, nothing persisted")

		return feedback.Record{}, history.Record{}, myErr.ErrSubmissionAborted
	case <-timer.C:
	}

	anonymizedTimestamp := anonymizer.randomTimestamp()
	feedbackID := uuid.New().String()

	feedbackRecord := feedback.Record{
		ID:                  feedbackID,
		Text:                submission.Text,
		Category:            submission.Category,
		XHandle:             submission.XHandle,
		PaymentAmount:       anonymizer.Config.PaymentAmount,
		AnonymizedTimestamp: anonymizedTimestamp,
	}
	historyRecord := history.Record{
		FeedbackID:          feedbackID,
		WalletAddress:       submission.WalletAddress,
		Category:            submission.Category,
		AnonymizedTimestamp: anonymizedTimestamp,
	}

	if err := anonymizer.Storage.AppendPair(ctx, feedbackRecord, historyRecord); err != nil {
		// Логируется внутри бэкенда
		return feedback.Record{}, history.Record{}, err
	}

	anonymizer.Logger.Infof("Feedback %s persisted with anonymized timestamp %s",
		feedbackID, anonymizedTimestamp.Format(time.RFC3339))

	if anonymizer.Producer != nil {
		event := kafka.Event{
			Type:                kafka.EventTypeSubmission,
			Category:            submission.Category,
			AnonymizedTimestamp: anonymizedTimestamp,
		}
		if err := anonymizer.Producer.SendEvent(ctx, event); err != nil {
			// Событие вторично, сабмит уже сохранен
			anonymizer.Logger.Errorf("Failed to send submission event: %v", err)
		}
	}

	return feedbackRecord, historyRecord, nil
}

func (anonymizer *Anonymizer) randomDelay() time.Duration {
	spread := int64(anonymizer.Config.DelayMax - anonymizer.Config.DelayMin)
	if spread <= 0 {
		return anonymizer.Config.DelayMin
	}

	return anonymizer.Config.DelayMin + time.Duration(rand.Int63n(spread+1))
}

func (anonymizer *Anonymizer) randomTimestamp() time.Time {
	now := time.Now().UTC()
	span := now.Sub(anonymizer.Config.WindowStart)
	if span <= 0 {
		return now
	}

	return anonymizer.Config.WindowStart.Add(time.Duration(rand.Int63n(int64(span))))
}
