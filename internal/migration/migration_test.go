package migration

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"monad-feedback/internal/feedback"
	"monad-feedback/internal/history"
	"monad-feedback/internal/mocks"
	myErr "monad-feedback/internal/types/errors"
	types "monad-feedback/internal/types/feedback"
)

func setupService(t *testing.T) (*Service, *mocks.MockStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := mocks.NewMockStorage(ctrl)

	return NewService(mockStorage, nil, zaptest.NewLogger(t).Sugar()), mockStorage
}

func TestMerge_NewRecords(t *testing.T) {
	t.Parallel()
	service, mockStorage := setupService(t)

	ts := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	request := types.MigrateRequest{
		Feedback: []types.LegacyFeedback{
			{
				ID:            "f1",
				Text:          "love the new faucet",
				Category:      feedback.CategoryCommunitySupport,
				PaymentAmount: "1.1 MON",
				Timestamp:     ts,
			},
		},
		UserHistory: []types.LegacyHistory{
			{
				FeedbackID:    "f1",
				WalletAddress: "0xAAA0000000000000000000000000000000000001",
				Category:      feedback.CategoryCommunitySupport,
				Timestamp:     ts,
			},
		},
	}

	mockStorage.EXPECT().ListFeedback(gomock.Any()).Return(nil, nil)
	mockStorage.EXPECT().ListHistory(gomock.Any()).Return(nil, nil)
	mockStorage.EXPECT().AppendFeedback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record feedback.Record) error {
			require.Equal(t, "f1", record.ID)
			require.Equal(t, "love the new faucet", record.Text)
			return nil
		})
	mockStorage.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)

	migratedFeedback, migratedHistory, err := service.Merge(context.Background(), request)
	require.NoError(t, err)
	require.Equal(t, 1, migratedFeedback)
	require.Equal(t, 1, migratedHistory)
}

func TestMerge_IdempotentReplay(t *testing.T) {
	t.Parallel()
	service, mockStorage := setupService(t)

	ts := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	existing := []feedback.Record{{
		ID:                  "f1",
		Text:                "already here",
		Category:            feedback.CategoryOther,
		PaymentAmount:       "1.1 MON",
		AnonymizedTimestamp: ts,
	}}
	existingHistory := []history.Record{{
		FeedbackID:          "f1",
		WalletAddress:       "0xAAA0000000000000000000000000000000000001",
		Category:            feedback.CategoryOther,
		AnonymizedTimestamp: ts,
	}}

	request := types.MigrateRequest{
		Feedback: []types.LegacyFeedback{{ID: "f1", Text: "already here", Category: feedback.CategoryOther, Timestamp: ts}},
		UserHistory: []types.LegacyHistory{{
			// тот же кошелек в другом регистре - все еще дубликат
			FeedbackID:    "f1",
			WalletAddress: "0xaaa0000000000000000000000000000000000001",
			Category:      feedback.CategoryOther,
			Timestamp:     ts,
		}},
	}

	mockStorage.EXPECT().ListFeedback(gomock.Any()).Return(existing, nil)
	mockStorage.EXPECT().ListHistory(gomock.Any()).Return(existingHistory, nil)
	// Append* не ожидаются вовсе

	migratedFeedback, migratedHistory, err := service.Merge(context.Background(), request)
	require.NoError(t, err)
	require.Equal(t, 0, migratedFeedback)
	require.Equal(t, 0, migratedHistory)
}

func TestMerge_LegacyFieldNormalization(t *testing.T) {
	t.Parallel()
	service, mockStorage := setupService(t)

	request := types.MigrateRequest{
		Feedback: []types.LegacyFeedback{{
			// старый формат: текст в feedback_text, нет id, категория неизвестна
			LegacyText:          "stored in the old column",
			LegacyPaymentAmount: "1.1 MON",
			Category:            "something_else",
			Timestamp:           time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC),
		}},
	}

	mockStorage.EXPECT().ListFeedback(gomock.Any()).Return(nil, nil)
	mockStorage.EXPECT().ListHistory(gomock.Any()).Return(nil, nil)

	var saved feedback.Record
	mockStorage.EXPECT().AppendFeedback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record feedback.Record) error {
			saved = record
			return nil
		})

	migratedFeedback, _, err := service.Merge(context.Background(), request)
	require.NoError(t, err)
	require.Equal(t, 1, migratedFeedback)

	require.Equal(t, "stored in the old column", saved.Text)
	require.Equal(t, "1.1 MON", saved.PaymentAmount)
	require.Equal(t, feedback.CategoryOther, saved.Category)
	_, err = uuid.Parse(saved.ID)
	require.NoError(t, err)
}

func TestMerge_HistoryWithoutFeedbackSkipped(t *testing.T) {
	t.Parallel()
	service, mockStorage := setupService(t)

	request := types.MigrateRequest{
		UserHistory: []types.LegacyHistory{{
			FeedbackID:    "ghost",
			WalletAddress: "0xAAA0000000000000000000000000000000000001",
			Category:      feedback.CategoryOther,
		}},
	}

	mockStorage.EXPECT().ListFeedback(gomock.Any()).Return(nil, nil)
	mockStorage.EXPECT().ListHistory(gomock.Any()).Return(nil, nil)

	_, migratedHistory, err := service.Merge(context.Background(), request)
	require.NoError(t, err)
	require.Equal(t, 0, migratedHistory)
}

func TestMerge_PartialStorageFailure(t *testing.T) {
	t.Parallel()
	service, mockStorage := setupService(t)

	request := types.MigrateRequest{
		Feedback: []types.LegacyFeedback{
			{ID: "f1", Text: "first", Category: feedback.CategoryOther},
			{ID: "f2", Text: "second", Category: feedback.CategoryOther},
		},
	}

	mockStorage.EXPECT().ListFeedback(gomock.Any()).Return(nil, nil)
	mockStorage.EXPECT().ListHistory(gomock.Any()).Return(nil, nil)
	mockStorage.EXPECT().AppendFeedback(gomock.Any(), gomock.Any()).Return(myErr.ErrDBInternal)
	mockStorage.EXPECT().AppendFeedback(gomock.Any(), gomock.Any()).Return(nil)

	// сбой на одной записи не валит всю миграцию
	migratedFeedback, _, err := service.Merge(context.Background(), request)
	require.NoError(t, err)
	require.Equal(t, 1, migratedFeedback)
}

func TestMerge_ListError(t *testing.T) {
	t.Parallel()
	service, mockStorage := setupService(t)

	mockStorage.EXPECT().ListFeedback(gomock.Any()).Return(nil, myErr.ErrDBInternal)

	_, _, err := service.Merge(context.Background(), types.MigrateRequest{})
	require.ErrorIs(t, err, myErr.ErrDBInternal)
}
