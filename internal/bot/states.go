package bot

// Шаги двух диалогов. Наборы не пересекаются, поэтому по шагу однозначно
// понятно, в каком диалоге находится пользователь.
const (
	StateAwaitingRating      = "awaiting_rating"
	StateAwaitingReviewText  = "awaiting_review_text"
	StateAwaitingPhotoChoice = "awaiting_photo_choice"
	StateAwaitingPhoto       = "awaiting_photo"

	StateAwaitingWelcomeText = "awaiting_welcome_text"
	StateAwaitingMediaChoice = "awaiting_media_choice"
	StateAwaitingMedia       = "awaiting_media"
)

const (
	MediaKindPhoto = "photo"
	MediaKindVideo = "video"
)

// UserState — черновик одного незавершённого диалога. Запись существует
// только пока диалог идёт и удаляется на любом терминальном переходе.
type UserState struct {
	Step        string
	Rating      int
	ReviewText  string
	WelcomeText string
	MediaKind   string
}
