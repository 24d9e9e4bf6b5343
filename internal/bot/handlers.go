package bot

import (
	"log"
	"time"

	"github.com/AlekSi/pointer"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gratefultolord/welcome_review_bot/internal/db"
)

// TelegramSender — часть tgbotapi.BotAPI, которая нужна сервису.
type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// MediaArchiver сохраняет локальную копию присланного медиа.
type MediaArchiver interface {
	SaveFile(fileID string) (string, error)
}

type BotService struct {
	botAPI       TelegramSender
	welcomeRepo  *db.WelcomePostRepository
	reviewRepo   *db.ReviewRepository
	fileService  MediaArchiver
	userStates   map[int64]*UserState
	adminChatIDs map[int64]bool
}

func New(
	botAPI TelegramSender,
	welcomeRepo *db.WelcomePostRepository,
	reviewRepo *db.ReviewRepository,
	fileService MediaArchiver,
	adminIDs []int64,
) *BotService {
	adminChatIDs := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		adminChatIDs[id] = true
	}

	return &BotService{
		botAPI:       botAPI,
		welcomeRepo:  welcomeRepo,
		reviewRepo:   reviewRepo,
		fileService:  fileService,
		userStates:   make(map[int64]*UserState),
		adminChatIDs: adminChatIDs,
	}
}

func (b *BotService) isAdmin(userID int64) bool {
	return b.adminChatIDs[userID]
}

// Start обрабатывает апдейты по одному до закрытия канала. Шаги диалога
// одного пользователя никогда не выполняются параллельно.
func (b *BotService) Start(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		b.handleUpdate(update)
	}
}

func (b *BotService) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

func (b *BotService) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}

	if _, err := b.botAPI.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("failed to answer callback query: %v", err)
	}

	act, err := parseCallback(query.Data)
	if err != nil {
		log.Printf("handleCallback: %v", err)
		return
	}

	chatID := query.Message.Chat.ID
	userID := query.From.ID
	messageID := query.Message.MessageID

	switch act.kind {
	case actionLeaveReview:
		b.startReviewFlow(chatID, messageID)
	case actionViewReviews:
		b.showReviews(chatID, messageID, 0, false)
	case actionViewReviewsAdmin:
		// Проверка прав на каждом действии, а не только при показе меню
		if !b.isAdmin(userID) {
			return
		}
		b.showReviews(chatID, messageID, 0, true)
	case actionReviewsPage:
		if act.asAdmin && !b.isAdmin(userID) {
			return
		}
		b.showReviews(chatID, messageID, act.page, act.asAdmin)
	case actionRating:
		b.handleRating(chatID, messageID, act.rating)
	case actionAddPhoto, actionFinishReview:
		b.handlePhotoChoice(chatID, query, act.kind == actionAddPhoto)
	case actionEditWelcome:
		if !b.isAdmin(userID) {
			return
		}
		b.startWelcomeFlow(chatID, messageID)
	case actionWelcomePhoto, actionWelcomeVideo, actionWelcomeNoMedia:
		if !b.isAdmin(userID) {
			return
		}
		b.handleWelcomeMediaChoice(chatID, query, act.kind)
	}
}

func (b *BotService) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if message.IsCommand() && message.Command() == "start" {
		// /start бросает незавершённый диалог
		delete(b.userStates, chatID)
		b.handleStart(message)
		return
	}

	state, exists := b.userStates[chatID]
	if !exists {
		return
	}

	switch state.Step {
	case StateAwaitingReviewText:
		b.handleReviewText(chatID, message)
	case StateAwaitingPhoto:
		b.handleReviewPhoto(chatID, message)
	case StateAwaitingWelcomeText:
		b.handleWelcomeText(chatID, message)
	case StateAwaitingMedia:
		b.handleWelcomeMedia(chatID, message)
	default:
		// Ждём нажатия кнопки, обычные сообщения здесь игнорируются
	}
}

func (b *BotService) handleStart(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if b.isAdmin(message.From.ID) {
		msg := tgbotapi.NewMessage(chatID, "👋 Добро пожаловать в админ панель!")
		msg.ReplyMarkup = AdminMenuKeyboard()
		b.send(msg)
		return
	}

	b.showWelcomePost(chatID)
}

func (b *BotService) showWelcomePost(chatID int64) {
	post, err := b.welcomeRepo.GetActive()
	if err != nil {
		log.Printf("showWelcomePost: %v", err)
	}

	markup := MainMenuKeyboard()

	switch {
	case post != nil && post.Photo != nil:
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(*post.Photo))
		photo.Caption = post.Text
		photo.ReplyMarkup = markup
		b.send(photo)
	case post != nil && post.Video != nil:
		video := tgbotapi.NewVideo(chatID, tgbotapi.FileID(*post.Video))
		video.Caption = post.Text
		video.ReplyMarkup = markup
		b.send(video)
	case post != nil:
		msg := tgbotapi.NewMessage(chatID, post.Text)
		msg.ReplyMarkup = markup
		b.send(msg)
	default:
		msg := tgbotapi.NewMessage(chatID, "👋 Добро пожаловать! Мы рады вас видеть!")
		msg.ReplyMarkup = markup
		b.send(msg)
	}
}

func (b *BotService) showReviews(chatID int64, messageID int, page int, asAdmin bool) {
	reviews, err := b.reviewRepo.GetAll()
	if err != nil {
		log.Printf("showReviews: %v", err)
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, "❌ Не удалось загрузить отзывы."))
		return
	}

	text, markup := RenderReviews(reviews, page, asAdmin)

	if markup != nil {
		b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *markup))
	} else {
		b.send(tgbotapi.NewEditMessageText(chatID, messageID, text))
	}
}

// Диалог отзыва

func (b *BotService) startReviewFlow(chatID int64, messageID int) {
	b.userStates[chatID] = &UserState{Step: StateAwaitingRating}

	b.send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID,
		"Пожалуйста, выберите оценку от 1 до 5:", RatingKeyboard()))
}

func (b *BotService) handleRating(chatID int64, messageID int, rating int) {
	state, exists := b.userStates[chatID]
	if !exists || state.Step != StateAwaitingRating {
		return
	}

	state.Rating = rating
	state.Step = StateAwaitingReviewText

	b.send(tgbotapi.NewEditMessageText(chatID, messageID,
		"Теперь напишите текст отзыва. Вы также можете прикрепить фото к отзыву."))
}

func (b *BotService) handleReviewText(chatID int64, message *tgbotapi.Message) {
	if message.Text == "" {
		return
	}

	state := b.userStates[chatID]
	state.ReviewText = message.Text
	state.Step = StateAwaitingPhotoChoice

	msg := tgbotapi.NewMessage(chatID, "Хотите прикрепить фото к отзыву?")
	msg.ReplyMarkup = PhotoChoiceKeyboard()
	b.send(msg)
}

func (b *BotService) handlePhotoChoice(chatID int64, query *tgbotapi.CallbackQuery, addPhoto bool) {
	state, exists := b.userStates[chatID]
	if !exists || state.Step != StateAwaitingPhotoChoice {
		return
	}

	if addPhoto {
		state.Step = StateAwaitingPhoto
		b.send(tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, "Пожалуйста, отправьте фото:"))
		return
	}

	b.finishReview(chatID, query.From, nil, query.Message.MessageID)
}

func (b *BotService) handleReviewPhoto(chatID int64, message *tgbotapi.Message) {
	if len(message.Photo) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "Пожалуйста, отправьте фото или нажмите 'Завершить без фото'"))
		return
	}

	fileID := message.Photo[len(message.Photo)-1].FileID
	b.archive(fileID)

	b.finishReview(chatID, message.From, pointer.To(fileID), 0)
}

func (b *BotService) finishReview(chatID int64, user *tgbotapi.User, photo *string, editMessageID int) {
	state := b.userStates[chatID]
	// Черновик очищается независимо от исхода записи
	delete(b.userStates, chatID)

	review := &db.Review{
		UserID:    user.ID,
		Rating:    state.Rating,
		Text:      state.ReviewText,
		Photo:     photo,
		CreatedAt: time.Now().UTC(),
	}

	if user.UserName != "" {
		review.Username = pointer.To(user.UserName)
	}
	if user.FirstName != "" {
		review.FirstName = pointer.To(user.FirstName)
	}
	if user.LastName != "" {
		review.LastName = pointer.To(user.LastName)
	}

	text := "✅ Спасибо за ваш отзыв!"
	if err := b.reviewRepo.Create(review); err != nil {
		log.Printf("finishReview: %v", err)
		text = "❌ Произошла ошибка при сохранении отзыва."
	}

	b.reply(chatID, editMessageID, text)
}

// Диалог редактирования приветственного поста (только для админов,
// проверка прав сделана в handleCallback)

func (b *BotService) startWelcomeFlow(chatID int64, messageID int) {
	b.userStates[chatID] = &UserState{Step: StateAwaitingWelcomeText}

	b.send(tgbotapi.NewEditMessageText(chatID, messageID,
		"Введите новый текст приветственного поста. Вы также можете прикрепить фото или видео."))
}

func (b *BotService) handleWelcomeText(chatID int64, message *tgbotapi.Message) {
	if message.Text == "" {
		return
	}

	state := b.userStates[chatID]
	state.WelcomeText = message.Text
	state.Step = StateAwaitingMediaChoice

	msg := tgbotapi.NewMessage(chatID, "Хотите прикрепить фото или видео к посту?")
	msg.ReplyMarkup = WelcomeMediaKeyboard()
	b.send(msg)
}

func (b *BotService) handleWelcomeMediaChoice(chatID int64, query *tgbotapi.CallbackQuery, kind actionKind) {
	state, exists := b.userStates[chatID]
	if !exists || state.Step != StateAwaitingMediaChoice {
		return
	}

	switch kind {
	case actionWelcomePhoto:
		state.MediaKind = MediaKindPhoto
		state.Step = StateAwaitingMedia
		b.send(tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, "Пожалуйста, отправьте фото:"))
	case actionWelcomeVideo:
		state.MediaKind = MediaKindVideo
		state.Step = StateAwaitingMedia
		b.send(tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, "Пожалуйста, отправьте видео:"))
	case actionWelcomeNoMedia:
		b.finishWelcomePost(chatID, nil, "", query.Message.MessageID)
	}
}

func (b *BotService) handleWelcomeMedia(chatID int64, message *tgbotapi.Message) {
	state := b.userStates[chatID]

	// Медиа должно совпасть с выбранным типом, иначе переспрашиваем
	switch {
	case state.MediaKind == MediaKindPhoto && len(message.Photo) > 0:
		fileID := message.Photo[len(message.Photo)-1].FileID
		b.archive(fileID)
		b.finishWelcomePost(chatID, pointer.To(fileID), MediaKindPhoto, 0)
	case state.MediaKind == MediaKindVideo && message.Video != nil:
		fileID := message.Video.FileID
		b.archive(fileID)
		b.finishWelcomePost(chatID, pointer.To(fileID), MediaKindVideo, 0)
	default:
		b.send(tgbotapi.NewMessage(chatID, "Пожалуйста, отправьте корректный медиа файл."))
	}
}

func (b *BotService) finishWelcomePost(chatID int64, media *string, mediaKind string, editMessageID int) {
	state := b.userStates[chatID]
	delete(b.userStates, chatID)

	post := &db.WelcomePost{
		Text:      state.WelcomeText,
		CreatedAt: time.Now().UTC(),
	}

	switch mediaKind {
	case MediaKindPhoto:
		post.Photo = media
	case MediaKindVideo:
		post.Video = media
	}

	text := "✅ Приветственный пост успешно обновлен!"
	if err := b.welcomeRepo.Activate(post); err != nil {
		log.Printf("finishWelcomePost: %v", err)
		text = "❌ Произошла ошибка при сохранении поста."
	}

	b.reply(chatID, editMessageID, text)
}

func (b *BotService) archive(fileID string) {
	if _, err := b.fileService.SaveFile(fileID); err != nil {
		log.Printf("failed to archive media %s: %v", fileID, err)
	}
}

func (b *BotService) reply(chatID int64, editMessageID int, text string) {
	if editMessageID != 0 {
		b.send(tgbotapi.NewEditMessageText(chatID, editMessageID, text))
		return
	}

	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *BotService) send(msg tgbotapi.Chattable) {
	if _, err := b.botAPI.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
