package adaptor

import (
	"context"

	"reviewflow/internal/dto/request"
	"reviewflow/internal/dto/response"
)

type mockReviewService struct {
	createFn func(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	getFn    func(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
	updateFn func(ctx context.Context, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	deleteFn func(ctx context.Context, reviewID int64) error
}

func (m *mockReviewService) Create(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockReviewService) GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	return m.getFn(ctx, movieID)
}

func (m *mockReviewService) Update(ctx context.Context, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	return m.updateFn(ctx, reviewID, req)
}

func (m *mockReviewService) Delete(ctx context.Context, reviewID int64) error {
	return m.deleteFn(ctx, reviewID)
}

type mockSentimentService struct {
	analyzeFn func(ctx context.Context, text string) *response.SentimentResponse
}

func (m *mockSentimentService) Analyze(ctx context.Context, text string) *response.SentimentResponse {
	return m.analyzeFn(ctx, text)
}
