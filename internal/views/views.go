package views

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"monad-feedback/internal/feedback"
	"monad-feedback/internal/history"
	"monad-feedback/internal/storage"
)

// Service - восстанавливает представления из сохраненных записей:
// общий фид, админский фид с фильтром по категории и личную историю
// пользователя через join истории с отзывами по идентификатору.
type Service struct {
	Storage storage.Storage
	Logger  *zap.SugaredLogger
}

func NewService(st storage.Storage, logger *zap.SugaredLogger) *Service {
	return &Service{
		Storage: st,
		Logger:  logger,
	}
}

// Collection - все отзывы и вся история, новые первыми
func (service *Service) Collection(ctx context.Context) ([]feedback.Record, []history.Record, error) {
	feedbackRecords, err := service.Storage.ListFeedback(ctx)
	if err != nil {
		return nil, nil, err
	}

	historyRecords, err := service.Storage.ListHistory(ctx)
	if err != nil {
		return nil, nil, err
	}

	return feedbackRecords, historyRecords, nil
}

// UserHistory - отзывы, отправленные данным кошельком: записи истории
// фильтруются по адресу без учета регистра, по собранным идентификаторам
// выбираются записи отзывов. Кошелек без истории получает пустой список.
func (service *Service) UserHistory(ctx context.Context, walletAddress string) ([]feedback.Record, error) {
	historyRecords, err := service.Storage.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	wallet := strings.ToLower(walletAddress)
	ownIDs := make(map[string]struct{})
	for _, record := range historyRecords {
		if strings.ToLower(record.WalletAddress) == wallet {
			ownIDs[record.FeedbackID] = struct{}{}
		}
	}

	feedbackRecords, err := service.Storage.ListFeedback(ctx)
	if err != nil {
		return nil, err
	}

	own := make([]feedback.Record, 0, len(ownIDs))
	for _, record := range feedbackRecords {
		if _, ok := ownIDs[record.ID]; ok {
			own = append(own, record)
		}
	}

	sort.Slice(own, func(i, j int) bool {
		return own[i].AnonymizedTimestamp.After(own[j].AnonymizedTimestamp)
	})

	service.Logger.Infof("Reconstructed history of %d feedback records for wallet %s", len(own), walletAddress)

	return own, nil
}

// AdminFeed - все отзывы, опционально отфильтрованные по категории,
// по убыванию анонимизированной метки времени. Кошелек для этого
// представления не нужен.
func (service *Service) AdminFeed(ctx context.Context, category string) ([]feedback.Record, error) {
	feedbackRecords, err := service.Storage.ListFeedback(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" || category == "all" {
		return feedbackRecords, nil
	}

	filtered := make([]feedback.Record, 0, len(feedbackRecords))
	for _, record := range feedbackRecords {
		if record.Category == category {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}
