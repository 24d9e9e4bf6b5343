package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Review struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Username  *string   `db:"username"`
	FirstName *string   `db:"first_name"`
	LastName  *string   `db:"last_name"`
	Rating    int       `db:"rating"`
	Text      string    `db:"text"`
	Photo     *string   `db:"photo"`
	CreatedAt time.Time `db:"created_at"`
}

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
	}
}

func (r *ReviewRepository) Create(review *Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("ReviewRepository.Create: rating %d out of range", review.Rating)
	}

	_, err := r.db.Exec(`
	    INSERT INTO reviews
		(user_id, username, first_name, last_name, rating, text, photo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		review.UserID,
		review.Username,
		review.FirstName,
		review.LastName,
		review.Rating,
		review.Text,
		review.Photo,
		review.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("ReviewRepository.Create: %w", err)
	}

	return nil
}

// GetAll возвращает все отзывы, свежие первыми.
func (r *ReviewRepository) GetAll() ([]Review, error) {
	var reviews []Review

	err := r.db.Select(&reviews, `
	    SELECT * FROM reviews
		ORDER BY created_at DESC, id DESC
	`)

	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.GetAll: %w", err)
	}

	return reviews, nil
}
