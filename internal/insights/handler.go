package insights

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type Handler struct {
	service InsightsService
	logger  *zap.SugaredLogger
}

func NewHandler(service InsightsService, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) GetTopCategories(w http.ResponseWriter, r *http.Request) {
	topN := 3 // По умолчанию
	if topParam := r.URL.Query().Get("top"); topParam != "" {
		if n, err := strconv.Atoi(topParam); err == nil && n > 0 {
			topN = n
		}
	}

	counts, err := h.service.TopCategories(r.Context(), topN)
	if err != nil {
		h.logger.Errorf("Failed to get category stats: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if len(counts) == 0 {
		counts = []CategoryCount{} // Пустой массив вместо null
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(counts); err != nil {
		h.logger.Errorf("Failed to encode response: %v", err)
	}
}
