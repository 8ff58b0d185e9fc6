package wire

import (
	"reviewflow/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSentiment(r chi.Router, sentimentHandler *adaptor.SentimentHandler) {
	// POST /analyze - Standalone sentiment analysis
	r.Post("/analyze", sentimentHandler.AnalyzeSentiment)
}
