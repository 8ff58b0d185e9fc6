package repository

import (
	"context"
	"fmt"
	"strings"

	"reviewflow/internal/data/entity"
	"reviewflow/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *entity.Review) (*entity.Review, error)
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID string) ([]*entity.Review, error)
	Update(ctx context.Context, id int64, fields entity.ReviewUpdate) (*entity.Review, error)
	Delete(ctx context.Context, id int64) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Insert(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	query := `
		INSERT INTO reviews (movie_id, user_id, content, rating, sentiment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin insert review: %w", err)
	}
	defer tx.Rollback(ctx)

	stored := *review
	err = tx.QueryRow(ctx, query,
		review.MovieID,
		review.UserID,
		review.Content,
		review.Rating,
		review.Sentiment,
	).Scan(&stored.ID, &stored.CreatedAt)

	if err != nil {
		r.log.Error("Failed to insert review",
			zap.Error(err),
			zap.String("movie_id", review.MovieID),
			zap.String("user_id", review.UserID),
		)
		return nil, fmt.Errorf("insert review for movie %s: %w", review.MovieID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit insert review: %w", err)
	}

	return &stored, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := `
		SELECT id, movie_id, user_id, content, rating, COALESCE(sentiment, ''), created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.Content,
		&review.Rating,
		&review.Sentiment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID string) ([]*entity.Review, error) {
	// Ordered by id, i.e. creation order
	query := `
		SELECT id, movie_id, user_id, content, rating, COALESCE(sentiment, ''), created_at, updated_at
		FROM reviews
		WHERE movie_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("find reviews by movie ID %s: %w", movieID, err)
	}
	defer rows.Close()

	reviews := []*entity.Review{}
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.MovieID,
			&review.UserID,
			&review.Content,
			&review.Rating,
			&review.Sentiment,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, id int64, fields entity.ReviewUpdate) (*entity.Review, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}

	appendField := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Content != nil {
		appendField("content", *fields.Content)
	}
	if fields.Rating != nil {
		appendField("rating", *fields.Rating)
	}
	if fields.Sentiment != nil {
		appendField("sentiment", *fields.Sentiment)
	}

	query := fmt.Sprintf(`
		UPDATE reviews
		SET %s
		WHERE id = $1
		RETURNING id, movie_id, user_id, content, rating, COALESCE(sentiment, ''), created_at, updated_at
	`, strings.Join(set, ", "))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update review: %w", err)
	}
	defer tx.Rollback(ctx)

	var review entity.Review
	err = tx.QueryRow(ctx, query, args...).Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.Content,
		&review.Rating,
		&review.Sentiment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("update review %d: %w", id, ErrReviewNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("update review %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update review: %w", err)
	}

	return &review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reviews WHERE id = $1`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete review: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("delete review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete review %d: %w", id, ErrReviewNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete review: %w", err)
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}
