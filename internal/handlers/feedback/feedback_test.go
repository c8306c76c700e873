package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"monad-feedback/internal/anonymizer"
	"monad-feedback/internal/feedback"
	"monad-feedback/internal/history"
	"monad-feedback/internal/middleware"
	"monad-feedback/internal/migration"
	"monad-feedback/internal/mocks"
	esDoc "monad-feedback/internal/types/elastic"
	myErr "monad-feedback/internal/types/errors"
	types "monad-feedback/internal/types/feedback"
	"monad-feedback/internal/views"
)

const testWallet = "0xAbC0000000000000000000000000000000000001"

type stubSearcher struct {
	docs []esDoc.FeedbackDoc
	err  error
}

func (s *stubSearcher) SearchByText(_ context.Context, _ string) ([]esDoc.FeedbackDoc, error) {
	return s.docs, s.err
}

func setupHandler(t *testing.T, searcher Searcher) (*FeedbackHandler, *mocks.MockStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := mocks.NewMockStorage(ctrl)
	logger := zaptest.NewLogger(t).Sugar()

	anon := anonymizer.NewAnonymizer(mockStorage, nil, logger, anonymizer.Config{
		DelayMin:      time.Millisecond,
		DelayMax:      2 * time.Millisecond,
		WindowStart:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		PaymentAmount: "1.1 MON",
	})
	viewService := views.NewService(mockStorage, logger)
	migrationService := migration.NewService(mockStorage, nil, logger)

	handler := NewFeedbackHandler(logger, anon, viewService, migrationService, mockStorage, searcher)

	return handler, mockStorage
}

func submitBody(t *testing.T, input types.SubmissionInput) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(types.SubmitRequest{Feedback: input})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func paidRequest(method, target string, body *bytes.Reader) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
	}
	ctx := middleware.ContextWithWallet(req.Context(), testWallet)
	return req.WithContext(ctx)
}

func TestSubmit_Success(t *testing.T) {
	t.Parallel()
	h, mockStorage := setupHandler(t, nil)

	var savedFeedback feedback.Record
	var savedHistory history.Record
	mockStorage.EXPECT().
		AppendPair(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fb feedback.Record, hr history.Record) error {
			savedFeedback = fb
			savedHistory = hr
			return nil
		})

	input := types.SubmissionInput{
		Text:     "the faucet could be faster",
		Category: feedback.CategoryIdeasRequests,
		XHandle:  "@some_handle",
	}
	req := paidRequest(http.MethodPost, "/api/feedback-collection", submitBody(t, input))
	w := httptest.NewRecorder()
	h.Submit(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var got types.SubmitResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.True(t, got.Success)
	assert.Equal(t, savedFeedback.ID, got.Feedback.ID)
	assert.Equal(t, savedHistory.FeedbackID, got.Feedback.ID)

	// @-префикс хэндла срезается при приеме
	assert.Equal(t, "some_handle", savedFeedback.XHandle)
	// кошелек уходит только в историю
	assert.Equal(t, testWallet, savedHistory.WalletAddress)
	assert.Equal(t, "1.1 MON", savedFeedback.PaymentAmount)
}

func TestSubmit_NoWalletInContext(t *testing.T) {
	t.Parallel()
	h, _ := setupHandler(t, nil)

	input := types.SubmissionInput{Text: "hello", Category: feedback.CategoryOther}
	req := httptest.NewRequest(http.MethodPost, "/api/feedback-collection", submitBody(t, input))
	w := httptest.NewRecorder()
	h.Submit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmit_Validation(t *testing.T) {
	t.Parallel()

	longText := make([]byte, 0, 1001)
	for i := 0; i < 1001; i++ {
		longText = append(longText, 'a')
	}

	cases := []struct {
		name  string
		input types.SubmissionInput
	}{
		{"empty_text", types.SubmissionInput{Text: "   ", Category: feedback.CategoryOther}},
		{"too_long_text", types.SubmissionInput{Text: string(longText), Category: feedback.CategoryOther}},
		{"unknown_category", types.SubmissionInput{Text: "ok", Category: "not_a_category"}},
		{"handle_too_long", types.SubmissionInput{Text: "ok", Category: feedback.CategoryOther, XHandle: "abcdefghijklmnop"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h, _ := setupHandler(t, nil)

			req := paidRequest(http.MethodPost, "/api/feedback-collection", submitBody(t, tc.input))
			w := httptest.NewRecorder()
			h.Submit(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmit_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := setupHandler(t, nil)

	req := paidRequest(http.MethodPost, "/api/feedback-collection", bytes.NewReader([]byte("{broken")))
	w := httptest.NewRecorder()
	h.Submit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCollection(t *testing.T) {
	t.Parallel()
	h, mockStorage := setupHandler(t, nil)

	ts := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	feedbackRecords := []feedback.Record{{
		ID: "f1", Text: "note", Category: feedback.CategoryApps,
		PaymentAmount: "1.1 MON", AnonymizedTimestamp: ts,
	}}
	historyRecords := []history.Record{{
		FeedbackID: "f1", WalletAddress: testWallet,
		Category: feedback.CategoryApps, AnonymizedTimestamp: ts,
	}}

	mockStorage.EXPECT().ListFeedback(gomock.Any()).Return(feedbackRecords, nil)
	mockStorage.EXPECT().ListHistory(gomock.Any()).Return(historyRecords, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feedback-collection", nil)
	w := httptest.NewRecorder()
	h.GetCollection(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var got types.CollectionResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, feedbackRecords, got.Feedback)
	assert.Equal(t, historyRecords, got.UserHistory)
}

func TestGetCollection_EmptyStorage(t *testing.T) {
	t.Parallel()
	h, mockStorage := setupHandler(t, nil)

	mockStorage.EXPECT().ListFeedback(gomock.Any()).Return(nil, nil)
	mockStorage.EXPECT().ListHistory(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feedback-collection", nil)
	w := httptest.NewRecorder()
	h.GetCollection(w, req)

	// пустое хранилище отдает пустые массивы, не null
	assert.JSONEq(t, `{"feedback":[],"userHistory":[]}`, w.Body.String())
}

func TestGetUserHistory(t *testing.T) {
	t.Parallel()
	h, mockStorage := setupHandler(t, nil)

	ts := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	mockStorage.EXPECT().ListHistory(gomock.Any()).Return([]history.Record{{
		FeedbackID: "f1", WalletAddress: testWallet,
		Category: feedback.CategoryApps, AnonymizedTimestamp: ts,
	}}, nil)
	mockStorage.EXPECT().ListFeedback(gomock.Any()).Return([]feedback.Record{{
		ID: "f1", Text: "mine", Category: feedback.CategoryApps,
		PaymentAmount: "1.1 MON", AnonymizedTimestamp: ts,
	}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feedback-collection/history/"+testWallet, nil)
	req = mux.SetURLVars(req, map[string]string{"wallet": testWallet})
	w := httptest.NewRecorder()
	h.GetUserHistory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var got []feedback.Record
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "f1", got[0].ID)
}

func TestGetUserHistory_InvalidWallet(t *testing.T) {
	t.Parallel()
	h, _ := setupHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feedback-collection/history/banana", nil)
	req = mux.SetURLVars(req, map[string]string{"wallet": "banana"})
	w := httptest.NewRecorder()
	h.GetUserHistory(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminFeed(t *testing.T) {
	t.Parallel()
	h, mockStorage := setupHandler(t, nil)

	ts := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	mockStorage.EXPECT().ListFeedback(gomock.Any()).Return([]feedback.Record{
		{ID: "f1", Category: feedback.CategoryApps, AnonymizedTimestamp: ts},
		{ID: "f2", Category: feedback.CategoryOther, AnonymizedTimestamp: ts},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/feedback?category=apps", nil)
	w := httptest.NewRecorder()
	h.AdminFeed(w, req)

	var got []feedback.Record
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "f1", got[0].ID)
}

func TestAdminFeed_UnknownCategory(t *testing.T) {
	t.Parallel()
	h, _ := setupHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/feedback?category=bogus", nil)
	w := httptest.NewRecorder()
	h.AdminFeed(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMigrate(t *testing.T) {
	t.Parallel()
	h, mockStorage := setupHandler(t, nil)

	mockStorage.EXPECT().ListFeedback(gomock.Any()).Return(nil, nil)
	mockStorage.EXPECT().ListHistory(gomock.Any()).Return(nil, nil)
	mockStorage.EXPECT().AppendFeedback(gomock.Any(), gomock.Any()).Return(nil)

	body, err := json.Marshal(types.MigrateRequest{
		Feedback: []types.LegacyFeedback{{ID: "f1", Text: "from local storage", Category: feedback.CategoryOther}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/migrate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.Migrate(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var got types.MigrateResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.True(t, got.Success)
	assert.Equal(t, 1, got.MigratedFeedback)
	assert.Equal(t, 0, got.MigratedHistory)
}

func TestUpgradeSchema(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		h, mockStorage := setupHandler(t, nil)
		mockStorage.EXPECT().UpgradeSchema(gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/schema-upgrade", nil)
		w := httptest.NewRecorder()
		h.UpgradeSchema(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("db_error", func(t *testing.T) {
		h, mockStorage := setupHandler(t, nil)
		mockStorage.EXPECT().UpgradeSchema(gomock.Any()).Return(myErr.ErrDBInternal)

		req := httptest.NewRequest(http.MethodPost, "/api/schema-upgrade", nil)
		w := httptest.NewRecorder()
		h.UpgradeSchema(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("not_configured", func(t *testing.T) {
		h, _ := setupHandler(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/feedback/search?q=faucet", nil)
		w := httptest.NewRecorder()
		h.Search(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("missing_query", func(t *testing.T) {
		h, _ := setupHandler(t, &stubSearcher{})

		req := httptest.NewRequest(http.MethodGet, "/api/feedback/search", nil)
		w := httptest.NewRecorder()
		h.Search(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("found", func(t *testing.T) {
		docs := []esDoc.FeedbackDoc{{ID: "f1", Text: "faucet is slow", Category: feedback.CategoryOther}}
		h, _ := setupHandler(t, &stubSearcher{docs: docs})

		req := httptest.NewRequest(http.MethodGet, "/api/feedback/search?q=faucet", nil)
		w := httptest.NewRecorder()
		h.Search(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []esDoc.FeedbackDoc
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, docs, got)
	})
}
