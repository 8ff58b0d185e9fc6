package usecase

import (
	"context"
	"fmt"

	"reviewflow/internal/data/entity"
	"reviewflow/internal/data/repository"
	"reviewflow/internal/dto/request"
	"reviewflow/internal/dto/response"
	"reviewflow/pkg/sentiment"

	"go.uber.org/zap"
)

type ReviewService interface {
	Create(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
	Update(ctx context.Context, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, reviewID int64) error
}

type reviewService struct {
	repo       *repository.Repository
	classifier sentiment.Classifier
	validator  *ReviewValidator
	log        *zap.Logger
}

func NewReviewService(repo *repository.Repository, classifier sentiment.Classifier, validator *ReviewValidator, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:       repo,
		classifier: classifier,
		validator:  validator,
		log:        log.With(zap.String("service", "review")),
	}
}

// Create runs the full pipeline: validate, classify, persist. Validation
// failures stop the pipeline before the classifier runs; nothing is persisted.
func (s *reviewService) Create(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if err := s.validator.ValidateContent(req.Content); err != nil {
		s.log.Warn("Create review validation failed",
			zap.String("movie_id", req.MovieID),
			zap.String("reason", err.Message),
		)
		return nil, err
	}

	if err := s.validator.ValidateRating(req.Rating); err != nil {
		s.log.Warn("Create review validation failed",
			zap.String("movie_id", req.MovieID),
			zap.String("reason", err.Message),
		)
		return nil, err
	}

	// Never fails; degrades to the neutral fallback
	result := s.classifier.Classify(ctx, req.Content)

	review := &entity.Review{
		MovieID:   req.MovieID,
		UserID:    req.UserID,
		Content:   req.Content,
		Rating:    req.Rating,
		Sentiment: result.Label,
	}

	stored, err := s.repo.Review.Insert(ctx, review)
	if err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("movie_id", req.MovieID),
			zap.String("user_id", req.UserID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", stored.ID),
		zap.String("movie_id", stored.MovieID),
		zap.String("sentiment", stored.Sentiment),
		zap.Int("rating", stored.Rating),
	)

	resp := response.ReviewToResponse(stored)
	return &resp, nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	s.log.Info("Movie reviews retrieved",
		zap.String("movie_id", movieID),
		zap.Int("count", len(reviews)),
	)

	return response.ReviewsToResponse(reviews), nil
}

// Update validates every supplied field before any write, then reclassifies
// sentiment only when content changes.
func (s *reviewService) Update(ctx context.Context, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	existing, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review for update: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("review %d: %w", reviewID, repository.ErrReviewNotFound)
	}

	// All supplied fields are checked before anything is written
	if req.Content != nil {
		if err := s.validator.ValidateContent(*req.Content); err != nil {
			s.log.Warn("Update review validation failed",
				zap.Int64("review_id", reviewID),
				zap.String("reason", err.Message),
			)
			return nil, err
		}
	}

	if req.Rating != nil {
		if err := s.validator.ValidateRating(*req.Rating); err != nil {
			s.log.Warn("Update review validation failed",
				zap.Int64("review_id", reviewID),
				zap.String("reason", err.Message),
			)
			return nil, err
		}
	}

	fields := entity.ReviewUpdate{
		Content: req.Content,
		Rating:  req.Rating,
	}

	if req.Content != nil {
		result := s.classifier.Classify(ctx, *req.Content)
		fields.Sentiment = &result.Label
	}

	updated, err := s.repo.Review.Update(ctx, reviewID, fields)
	if err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.Int64("review_id", reviewID),
		zap.Bool("content_changed", req.Content != nil),
		zap.Bool("rating_changed", req.Rating != nil),
	)

	resp := response.ReviewToResponse(updated)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, reviewID int64) error {
	existing, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("find review for delete: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("review %d: %w", reviewID, repository.ErrReviewNotFound)
	}

	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.Int64("review_id", reviewID),
		zap.String("movie_id", existing.MovieID),
	)

	return nil
}
