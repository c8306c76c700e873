package migration

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"monad-feedback/internal/feedback"
	"monad-feedback/internal/history"
	"monad-feedback/internal/kafka"
	"monad-feedback/internal/paymentgate"
	"monad-feedback/internal/storage"
	types "monad-feedback/internal/types/feedback"
)

// Service - одноразовая миграция записей, накопленных в локальном
// хранилище клиента, в серверное хранилище. Клиентский кэш считается
// eventually-consistent и никогда не авторитетным: сервер дедуплицирует
// по идентификатору, повторный вызов с тем же телом ничего не добавляет.
type Service struct {
	Storage  storage.Storage
	Producer kafka.EventProducer // nil - события не отправляются
	Logger   *zap.SugaredLogger
}

func NewService(st storage.Storage, producer kafka.EventProducer, logger *zap.SugaredLogger) *Service {
	return &Service{
		Storage:  st,
		Producer: producer,
		Logger:   logger,
	}
}

// Merge - нормализует и вливает легаси-массивы в хранилище.
// Возвращает количество добавленных отзывов и записей истории.
func (service *Service) Merge(ctx context.Context, request types.MigrateRequest) (int, int, error) {
	existingFeedback, err := service.Storage.ListFeedback(ctx)
	if err != nil {
		return 0, 0, err
	}
	existingIDs := make(map[string]struct{}, len(existingFeedback))
	for _, record := range existingFeedback {
		existingIDs[record.ID] = struct{}{}
	}

	existingHistory, err := service.Storage.ListHistory(ctx)
	if err != nil {
		return 0, 0, err
	}
	existingPairs := make(map[string]struct{}, len(existingHistory))
	for _, record := range existingHistory {
		existingPairs[historyKey(record.FeedbackID, record.WalletAddress)] = struct{}{}
	}

	migratedFeedback := 0
	for _, legacy := range request.Feedback {
		record := normalizeFeedback(legacy)
		if _, ok := existingIDs[record.ID]; ok {
			continue
		}

		if err := service.Storage.AppendFeedback(ctx, record); err != nil {
			service.Logger.Errorf("Failed to migrate feedback %s: %v", record.ID, err)
			continue
		}

		existingIDs[record.ID] = struct{}{}
		migratedFeedback++
	}

	migratedHistory := 0
	for _, legacy := range request.UserHistory {
		record := normalizeHistory(legacy)
		if record.FeedbackID == "" || record.WalletAddress == "" {
			continue
		}
		// История без соответствующего отзыва бесполезна для join
		if _, ok := existingIDs[record.FeedbackID]; !ok {
			continue
		}
		if _, ok := existingPairs[historyKey(record.FeedbackID, record.WalletAddress)]; ok {
			continue
		}

		if err := service.Storage.AppendHistory(ctx, record); err != nil {
			service.Logger.Errorf("Failed to migrate history for feedback %s: %v", record.FeedbackID, err)
			continue
		}

		existingPairs[historyKey(record.FeedbackID, record.WalletAddress)] = struct{}{}
		migratedHistory++
	}

	service.Logger.Infof("Migration merged %d feedback and %d history records", migratedFeedback, migratedHistory)

	if service.Producer != nil && migratedFeedback > 0 {
		event := kafka.Event{Type: kafka.EventTypeMigration}
		if err := service.Producer.SendEvent(ctx, event); err != nil {
			service.Logger.Errorf("Failed to send migration event: %v", err)
		}
	}

	return migratedFeedback, migratedHistory, nil
}

// normalizeFeedback - сводит обе формы легаси-записи к текущей.
// Выполняется ровно один раз, при приеме миграции.
func normalizeFeedback(legacy types.LegacyFeedback) feedback.Record {
	record := feedback.Record{
		ID:                  legacy.ID,
		Text:                legacy.Text,
		Category:            legacy.Category,
		XHandle:             legacy.XHandle,
		PaymentAmount:       legacy.PaymentAmount,
		AnonymizedTimestamp: legacy.Timestamp,
	}

	if record.Text == "" {
		record.Text = legacy.LegacyText
	}
	if record.PaymentAmount == "" {
		record.PaymentAmount = legacy.LegacyPaymentAmount
	}
	if record.PaymentAmount == "" {
		record.PaymentAmount = paymentgate.FeedbackCostMON
	}
	if !feedback.KnownCategory(record.Category) {
		record.Category = feedback.CategoryOther
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	return record
}

func normalizeHistory(legacy types.LegacyHistory) history.Record {
	record := history.Record{
		FeedbackID:          legacy.FeedbackID,
		WalletAddress:       legacy.WalletAddress,
		Category:            legacy.Category,
		AnonymizedTimestamp: legacy.Timestamp,
	}

	if !feedback.KnownCategory(record.Category) {
		record.Category = feedback.CategoryOther
	}

	return record
}

func historyKey(feedbackID, walletAddress string) string {
	return feedbackID + "|" + strings.ToLower(walletAddress)
}
