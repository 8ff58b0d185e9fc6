package adaptor

import (
	"reviewflow/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Review    *ReviewHandler
	Sentiment *SentimentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Review:    NewReviewHandler(service.Review, log),
		Sentiment: NewSentimentHandler(service.Sentiment, log),
	}
}
