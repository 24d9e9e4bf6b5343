package bot

import (
	"fmt"
	"strconv"
	"strings"
)

type actionKind int

const (
	actionLeaveReview actionKind = iota
	actionViewReviews
	actionViewReviewsAdmin
	actionEditWelcome
	actionRating
	actionAddPhoto
	actionFinishReview
	actionWelcomePhoto
	actionWelcomeVideo
	actionWelcomeNoMedia
	actionReviewsPage
)

// action — разобранный callback payload кнопки.
type action struct {
	kind    actionKind
	rating  int  // только для actionRating
	page    int  // только для actionReviewsPage
	asAdmin bool // только для actionReviewsPage
}

// parseCallback разбирает payload вида "<action>_<params...>" в типизированное
// действие. Все параметры валидируются здесь, дальше по коду payload-строки
// не разбираются.
func parseCallback(data string) (action, error) {
	switch data {
	case "leave_review":
		return action{kind: actionLeaveReview}, nil
	case "view_reviews":
		return action{kind: actionViewReviews}, nil
	case "view_reviews_admin":
		return action{kind: actionViewReviewsAdmin}, nil
	case "edit_welcome":
		return action{kind: actionEditWelcome}, nil
	case "add_photo":
		return action{kind: actionAddPhoto}, nil
	case "finish_review":
		return action{kind: actionFinishReview}, nil
	case "welcome_photo":
		return action{kind: actionWelcomePhoto}, nil
	case "welcome_video":
		return action{kind: actionWelcomeVideo}, nil
	case "welcome_no_media":
		return action{kind: actionWelcomeNoMedia}, nil
	}

	switch {
	case strings.HasPrefix(data, "rating_"):
		rating, err := strconv.Atoi(strings.TrimPrefix(data, "rating_"))
		if err != nil || rating < 1 || rating > 5 {
			return action{}, fmt.Errorf("parseCallback: bad rating payload %q", data)
		}

		return action{kind: actionRating, rating: rating}, nil

	case strings.HasPrefix(data, "reviews_page_"):
		parts := strings.Split(data, "_")
		if len(parts) != 4 {
			return action{}, fmt.Errorf("parseCallback: bad reviews page payload %q", data)
		}

		page, err := strconv.Atoi(parts[2])
		if err != nil || page < 0 {
			return action{}, fmt.Errorf("parseCallback: bad page number in %q", data)
		}

		var asAdmin bool
		switch parts[3] {
		case "admin":
			asAdmin = true
		case "user":
			asAdmin = false
		default:
			return action{}, fmt.Errorf("parseCallback: bad viewer role in %q", data)
		}

		return action{kind: actionReviewsPage, page: page, asAdmin: asAdmin}, nil
	}

	return action{}, fmt.Errorf("parseCallback: unknown payload %q", data)
}

func ratingCallback(rating int) string {
	return fmt.Sprintf("rating_%d", rating)
}

func reviewsPageCallback(page int, asAdmin bool) string {
	role := "user"
	if asAdmin {
		role = "admin"
	}

	return fmt.Sprintf("reviews_page_%d_%s", page, role)
}
