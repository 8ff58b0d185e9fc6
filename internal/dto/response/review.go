package response

import (
	"time"

	"reviewflow/internal/data/entity"
)

type ReviewResponse struct {
	ID        int64      `json:"id"`
	MovieID   string     `json:"movie_id"`
	UserID    string     `json:"user_id"`
	Content   string     `json:"content"`
	Rating    int        `json:"rating"`
	Sentiment string     `json:"sentiment,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type SentimentResponse struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		MovieID:   review.MovieID,
		UserID:    review.UserID,
		Content:   review.Content,
		Rating:    review.Rating,
		Sentiment: review.Sentiment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ReviewToResponse(review)
	}
	return responses
}
