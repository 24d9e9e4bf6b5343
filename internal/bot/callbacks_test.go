package bot

import "testing"

func TestParseCallbackValid(t *testing.T) {
	tests := []struct {
		data string
		want action
	}{
		{"leave_review", action{kind: actionLeaveReview}},
		{"view_reviews", action{kind: actionViewReviews}},
		{"view_reviews_admin", action{kind: actionViewReviewsAdmin}},
		{"edit_welcome", action{kind: actionEditWelcome}},
		{"add_photo", action{kind: actionAddPhoto}},
		{"finish_review", action{kind: actionFinishReview}},
		{"welcome_photo", action{kind: actionWelcomePhoto}},
		{"welcome_video", action{kind: actionWelcomeVideo}},
		{"welcome_no_media", action{kind: actionWelcomeNoMedia}},
		{"rating_1", action{kind: actionRating, rating: 1}},
		{"rating_5", action{kind: actionRating, rating: 5}},
		{"reviews_page_0_user", action{kind: actionReviewsPage, page: 0}},
		{"reviews_page_7_admin", action{kind: actionReviewsPage, page: 7, asAdmin: true}},
	}

	for _, tt := range tests {
		got, err := parseCallback(tt.data)
		if err != nil {
			t.Errorf("parseCallback(%q): unexpected error: %v", tt.data, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCallback(%q) = %+v, want %+v", tt.data, got, tt.want)
		}
	}
}

func TestParseCallbackInvalid(t *testing.T) {
	payloads := []string{
		"",
		"bogus",
		"rating_0",
		"rating_6",
		"rating_x",
		"rating_3_extra",
		"reviews_page_2",
		"reviews_page_x_user",
		"reviews_page_-1_user",
		"reviews_page_2_root",
	}

	for _, data := range payloads {
		if _, err := parseCallback(data); err == nil {
			t.Errorf("parseCallback(%q): expected error, got none", data)
		}
	}
}

func TestCallbackEncoding(t *testing.T) {
	if got := ratingCallback(4); got != "rating_4" {
		t.Errorf("ratingCallback(4) = %q", got)
	}
	if got := reviewsPageCallback(2, true); got != "reviews_page_2_admin" {
		t.Errorf("reviewsPageCallback(2, true) = %q", got)
	}
	if got := reviewsPageCallback(0, false); got != "reviews_page_0_user" {
		t.Errorf("reviewsPageCallback(0, false) = %q", got)
	}
}

func TestCallbackRoundTrip(t *testing.T) {
	act, err := parseCallback(reviewsPageCallback(3, true))
	if err != nil {
		t.Fatalf("parseCallback: %v", err)
	}
	if act.kind != actionReviewsPage || act.page != 3 || !act.asAdmin {
		t.Errorf("round trip lost data: %+v", act)
	}

	act, err = parseCallback(ratingCallback(2))
	if err != nil {
		t.Fatalf("parseCallback: %v", err)
	}
	if act.kind != actionRating || act.rating != 2 {
		t.Errorf("round trip lost data: %+v", act)
	}
}
