package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type WelcomePost struct {
	ID        int64     `db:"id"`
	Text      string    `db:"text"`
	Photo     *string   `db:"photo"`
	Video     *string   `db:"video"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

type WelcomePostRepository struct {
	db *sqlx.DB
}

func NewWelcomePostRepository(db *sqlx.DB) *WelcomePostRepository {
	return &WelcomePostRepository{
		db: db,
	}
}

// GetActive возвращает текущий активный пост или nil, если поста ещё нет.
func (r *WelcomePostRepository) GetActive() (*WelcomePost, error) {
	var post WelcomePost

	err := r.db.Get(&post, `
	    SELECT * FROM welcome_posts
		WHERE is_active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("WelcomePostRepository.GetActive: %w", err)
	}

	return &post, nil
}

// Activate в одной транзакции деактивирует все посты и вставляет новый
// активный, так что активным всегда остаётся ровно один пост.
func (r *WelcomePostRepository) Activate(post *WelcomePost) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("WelcomePostRepository.Activate: %w", err)
	}

	if _, err := tx.Exec(`
	    UPDATE welcome_posts
		SET is_active = FALSE
		WHERE is_active = TRUE
	`); err != nil {
		tx.Rollback()
		return fmt.Errorf("WelcomePostRepository.Activate: %w", err)
	}

	if _, err := tx.Exec(`
	    INSERT INTO welcome_posts (text, photo, video, is_active, created_at)
		VALUES ($1, $2, $3, TRUE, $4)
	`,
		post.Text,
		post.Photo,
		post.Video,
		post.CreatedAt,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("WelcomePostRepository.Activate: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("WelcomePostRepository.Activate: %w", err)
	}

	return nil
}

// GetAll возвращает все посты, включая вытесненные (история правок).
func (r *WelcomePostRepository) GetAll() ([]WelcomePost, error) {
	var posts []WelcomePost

	err := r.db.Select(&posts, `
	    SELECT * FROM welcome_posts
		ORDER BY created_at DESC, id DESC
	`)

	if err != nil {
		return nil, fmt.Errorf("WelcomePostRepository.GetAll: %w", err)
	}

	return posts, nil
}
