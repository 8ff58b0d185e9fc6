package adaptor

import (
	"encoding/json"
	"net/http"

	"reviewflow/internal/dto/request"
	"reviewflow/internal/usecase"
	"reviewflow/pkg/utils"

	"go.uber.org/zap"
)

type SentimentHandler struct {
	service usecase.SentimentService
	log     *zap.Logger
}

func NewSentimentHandler(service usecase.SentimentService, log *zap.Logger) *SentimentHandler {
	return &SentimentHandler{
		service: service,
		log:     log.With(zap.String("handler", "sentiment")),
	}
}

// AnalyzeSentiment handles POST /analyze
func (h *SentimentHandler) AnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeSentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result := h.service.Analyze(r.Context(), req.Text)

	utils.ResponseSuccess(w, "success", result)
}
