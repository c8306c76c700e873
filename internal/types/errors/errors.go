package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrDBInternal = errors.New("database internal error")
	ErrNotFound   = errors.New("record not found")

	ErrInvalidJSONPayload = errors.New("invalid JSON payload")

	ErrMissingWallet   = errors.New("wallet address is missing")
	ErrInvalidWallet   = errors.New("wallet address is not a valid 0x address")
	ErrPaymentRequired = errors.New("payment of the feedback fee is required before submitting")
	ErrPaymentCheck    = errors.New("failed to check payment status on chain")

	ErrFeedbackEmpty     = errors.New("feedback text must not be empty")
	ErrFeedbackTooLong   = errors.New("feedback text must be less than 1000 characters")
	ErrUnknownCategory   = errors.New("unknown feedback category")
	ErrHandleTooLong     = errors.New("x handle must be at most 15 characters")
	ErrSubmissionAborted = errors.New("submission was cancelled before it was persisted")

	ErrIndexing = errors.New("indexing error")
	ErrSearch   = errors.New("search error")
)

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

/*
NewErrorServer
Функция имеет возможность принимать "nil ошибку"
при получении nil наша функция понимает, что нам
просто надо отдать саксесс клиенту
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}
