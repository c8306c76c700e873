package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"monad-feedback/internal/anonymizer"
	"monad-feedback/internal/contextutil"
	"monad-feedback/internal/feedback"
	"monad-feedback/internal/history"
	"monad-feedback/internal/migration"
	"monad-feedback/internal/paymentgate"
	"monad-feedback/internal/storage"
	esDoc "monad-feedback/internal/types/elastic"
	myErr "monad-feedback/internal/types/errors"
	types "monad-feedback/internal/types/feedback"
	"monad-feedback/internal/views"
)

const (
	maxFeedbackLength = 1000
	maxHandleLength   = 15
)

// Searcher - полнотекстовый поиск по отзывам
type Searcher interface {
	SearchByText(ctx context.Context, query string) ([]esDoc.FeedbackDoc, error)
}

type FeedbackHandler struct {
	Logger     *zap.SugaredLogger
	Anonymizer *anonymizer.Anonymizer
	Views      *views.Service
	Migration  *migration.Service
	Storage    storage.Storage
	Searcher   Searcher // nil - поиск не настроен
}

func NewFeedbackHandler(
	logger *zap.SugaredLogger,
	anon *anonymizer.Anonymizer,
	viewService *views.Service,
	migrationService *migration.Service,
	st storage.Storage,
	searcher Searcher,
) *FeedbackHandler {
	return &FeedbackHandler{
		Logger:     logger,
		Anonymizer: anon,
		Views:      viewService,
		Migration:  migrationService,
		Storage:    st,
		Searcher:   searcher,
	}
}

// GetCollection - GET /api/feedback-collection
// Отдает все отзывы и всю историю; персональную фильтрацию истории
// клиент делает по своему кошельку
func (h *FeedbackHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	feedbackRecords, historyRecords, err := h.Views.Collection(r.Context())
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}

	response := types.CollectionResponse{
		Feedback:    feedbackRecords,
		UserHistory: historyRecords,
	}
	if response.Feedback == nil {
		response.Feedback = []feedback.Record{}
	}
	if response.UserHistory == nil {
		response.UserHistory = []history.Record{}
	}

	writeJSON(w, http.StatusOK, response, h.Logger)
}

// Submit - POST /api/feedback-collection
// Кошелек уже проверен платежным middleware. Запрос держится открытым
// на время случайной задержки анонимайзера.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	walletAddress, ok := contextutil.GetWalletFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrMissingWallet, http.StatusBadRequest, h.Logger)

		return
	}

	var request types.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)

		return
	}

	input := request.Feedback
	input.XHandle = strings.TrimPrefix(strings.TrimSpace(input.XHandle), "@")

	if strings.TrimSpace(input.Text) == "" {
		myErr.SendErrorTo(w, myErr.ErrFeedbackEmpty, http.StatusBadRequest, h.Logger)
		return
	}
	if utf8.RuneCountInString(input.Text) > maxFeedbackLength {
		myErr.SendErrorTo(w, myErr.ErrFeedbackTooLong, http.StatusBadRequest, h.Logger)
		return
	}
	if !feedback.KnownCategory(input.Category) {
		myErr.SendErrorTo(w, myErr.ErrUnknownCategory, http.StatusBadRequest, h.Logger)
		return
	}
	if utf8.RuneCountInString(input.XHandle) > maxHandleLength {
		myErr.SendErrorTo(w, myErr.ErrHandleTooLong, http.StatusBadRequest, h.Logger)
		return
	}

	feedbackRecord, historyRecord, err := h.Anonymizer.Submit(r.Context(), anonymizer.Submission{
		Text:          input.Text,
		Category:      input.Category,
		XHandle:       input.XHandle,
		WalletAddress: walletAddress,
	})
	if err != nil {
		if errors.Is(err, myErr.ErrSubmissionAborted) {
			myErr.SendErrorTo(w, err, http.StatusRequestTimeout, h.Logger)
		} else {
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}

		return
	}

	writeJSON(w, http.StatusCreated, types.SubmitResponse{
		Success:     true,
		Feedback:    feedbackRecord,
		UserHistory: historyRecord,
	}, h.Logger)

	h.Logger.Infof("Created feedback with id: %s", feedbackRecord.ID)
}

// GetUserHistory - GET /api/feedback-collection/history/{wallet}
func (h *FeedbackHandler) GetUserHistory(w http.ResponseWriter, r *http.Request) {
	walletAddress := mux.Vars(r)["wallet"]
	if walletAddress == "" {
		myErr.SendErrorTo(w, myErr.ErrMissingWallet, http.StatusBadRequest, h.Logger)

		return
	}
	if !paymentgate.ValidWalletAddress(walletAddress) {
		myErr.SendErrorTo(w, myErr.ErrInvalidWallet, http.StatusBadRequest, h.Logger)

		return
	}

	records, err := h.Views.UserHistory(r.Context(), walletAddress)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}
	if records == nil {
		records = []feedback.Record{}
	}

	writeJSON(w, http.StatusOK, records, h.Logger)
}

// AdminFeed - GET /api/admin/feedback?category=
func (h *FeedbackHandler) AdminFeed(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && category != "all" && !feedback.KnownCategory(category) {
		myErr.SendErrorTo(w, myErr.ErrUnknownCategory, http.StatusBadRequest, h.Logger)

		return
	}

	records, err := h.Views.AdminFeed(r.Context(), category)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}
	if records == nil {
		records = []feedback.Record{}
	}

	writeJSON(w, http.StatusOK, records, h.Logger)
}

// Migrate - POST /api/migrate
func (h *FeedbackHandler) Migrate(w http.ResponseWriter, r *http.Request) {
	var request types.MigrateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)

		return
	}

	migratedFeedback, migratedHistory, err := h.Migration.Merge(r.Context(), request)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}

	writeJSON(w, http.StatusOK, types.MigrateResponse{
		Success:          true,
		MigratedFeedback: migratedFeedback,
		MigratedHistory:  migratedHistory,
	}, h.Logger)
}

// UpgradeSchema - POST /api/schema-upgrade
func (h *FeedbackHandler) UpgradeSchema(w http.ResponseWriter, r *http.Request) {
	if err := h.Storage.UpgradeSchema(r.Context()); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}

	myErr.SendErrorTo(w, nil, http.StatusOK, h.Logger)
}

// Search - GET /api/feedback/search?q=
func (h *FeedbackHandler) Search(w http.ResponseWriter, r *http.Request) {
	if h.Searcher == nil {
		myErr.SendErrorTo(w, myErr.ErrSearch, http.StatusServiceUnavailable, h.Logger)

		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)

		return
	}

	docs, err := h.Searcher.SearchByText(r.Context(), query)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)

		return
	}
	if docs == nil {
		docs = []esDoc.FeedbackDoc{}
	}

	writeJSON(w, http.StatusOK, docs, h.Logger)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(err)
	}
}
