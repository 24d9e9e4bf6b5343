package db

import (
	"testing"
	"time"

	"github.com/AlekSi/pointer"
)

func TestCreateAndListReviews(t *testing.T) {
	database := openTestDB(t)
	repo := NewReviewRepository(database.Conn)

	base := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"Старый", "Средний", "Новый"} {
		review := &Review{
			UserID:    int64(100 + i),
			Username:  pointer.To("user"),
			Rating:    i + 1,
			Text:      text,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := repo.Create(review); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	reviews, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(reviews))
	}

	// свежие первыми
	if reviews[0].Text != "Новый" || reviews[2].Text != "Старый" {
		t.Errorf("wrong order: %q, %q, %q", reviews[0].Text, reviews[1].Text, reviews[2].Text)
	}
	if reviews[0].Rating != 3 {
		t.Errorf("rating = %d, want 3", reviews[0].Rating)
	}
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	database := openTestDB(t)
	repo := NewReviewRepository(database.Conn)

	for _, rating := range []int{0, 6, -1} {
		review := &Review{UserID: 1, Rating: rating, Text: "x", CreatedAt: time.Now().UTC()}
		if err := repo.Create(review); err == nil {
			t.Errorf("rating %d must be rejected", rating)
		}
	}
}

func TestCreateStoresOptionalFieldsAsNull(t *testing.T) {
	database := openTestDB(t)
	repo := NewReviewRepository(database.Conn)

	review := &Review{UserID: 1, Rating: 5, Text: "Без имени", CreatedAt: time.Now().UTC()}
	if err := repo.Create(review); err != nil {
		t.Fatalf("Create: %v", err)
	}

	reviews, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	got := reviews[0]
	if got.Username != nil || got.FirstName != nil || got.LastName != nil || got.Photo != nil {
		t.Errorf("optional fields must stay NULL: %+v", got)
	}
}
