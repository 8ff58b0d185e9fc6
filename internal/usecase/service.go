package usecase

import (
	"reviewflow/internal/data/repository"
	"reviewflow/pkg/sentiment"
	"reviewflow/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Review    ReviewService
	Sentiment SentimentService
}

func NewService(repo *repository.Repository, classifier sentiment.Classifier, config *utils.Config, log *zap.Logger) *Service {
	validator := NewReviewValidator(config.Review)

	return &Service{
		Review:    NewReviewService(repo, classifier, validator, log),
		Sentiment: NewSentimentService(classifier, log),
	}
}
