package request

type CreateReviewRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required"`
	// Rating bounds are configured at runtime and checked by the review
	// validator, not by struct tags.
	Rating int `json:"rating"`
}

type UpdateReviewRequest struct {
	Content *string `json:"content,omitempty"`
	Rating  *int    `json:"rating,omitempty"`
}

type AnalyzeSentimentRequest struct {
	Text string `json:"text" validate:"required"`
}
