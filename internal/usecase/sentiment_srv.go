package usecase

import (
	"context"

	"reviewflow/internal/dto/response"
	"reviewflow/pkg/sentiment"

	"go.uber.org/zap"
)

// SentimentService exposes standalone sentiment analysis. It never errors:
// classifier failures are downgraded to the neutral fallback inside the
// adapter.
type SentimentService interface {
	Analyze(ctx context.Context, text string) *response.SentimentResponse
}

type sentimentService struct {
	classifier sentiment.Classifier
	log        *zap.Logger
}

func NewSentimentService(classifier sentiment.Classifier, log *zap.Logger) SentimentService {
	return &sentimentService{
		classifier: classifier,
		log:        log.With(zap.String("service", "sentiment")),
	}
}

func (s *sentimentService) Analyze(ctx context.Context, text string) *response.SentimentResponse {
	result := s.classifier.Classify(ctx, text)

	s.log.Debug("Sentiment analyzed",
		zap.String("label", result.Label),
		zap.Float64("confidence", result.Confidence),
	)

	return &response.SentimentResponse{
		Sentiment:  result.Label,
		Confidence: result.Confidence,
	}
}
