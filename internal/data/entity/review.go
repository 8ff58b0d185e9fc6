package entity

import "time"

type Review struct {
	ID        int64      `db:"id"`
	MovieID   string     `db:"movie_id"`
	UserID    string     `db:"user_id"`
	Content   string     `db:"content"`
	Rating    int        `db:"rating"`
	Sentiment string     `db:"sentiment"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// ReviewUpdate carries the fields of a partial update. Nil fields are left
// untouched by the store.
type ReviewUpdate struct {
	Content   *string
	Rating    *int
	Sentiment *string
}
