package wire

import (
	"reviewflow/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// POST /reviews - Create review with computed sentiment
	r.Post("/reviews", reviewHandler.CreateReview)

	// GET /reviews/{movieID} - List reviews for a movie
	r.Get("/reviews/{movieID}", reviewHandler.GetMovieReviews)

	// PUT /reviews/{reviewID} - Partial update, sentiment recomputed on content change
	r.Put("/reviews/{reviewID}", reviewHandler.UpdateReview)

	// DELETE /reviews/{reviewID} - Hard delete
	r.Delete("/reviews/{reviewID}", reviewHandler.DeleteReview)
}
