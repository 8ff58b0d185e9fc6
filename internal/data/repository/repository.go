package repository

import (
	"errors"

	"reviewflow/pkg/database"

	"go.uber.org/zap"
)

// ErrReviewNotFound is returned by mutations targeting an id that does not
// exist. Lookups report absence as a nil entity instead.
var ErrReviewNotFound = errors.New("review not found")

type Repository struct {
	Review ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Review: NewReviewRepository(db, log),
	}
}
