package bot

import (
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gratefultolord/welcome_review_bot/internal/db"
)

const reviewsPerPage = 5

// RenderReviews собирает текст одной страницы отзывов и кнопки навигации.
// Отзывы должны быть отсортированы по убыванию даты. Для страницы вне
// диапазона возвращается пустая страница, а не ошибка. Имя и ник автора
// попадают в текст только для админа.
func RenderReviews(reviews []db.Review, page int, asAdmin bool) (string, *tgbotapi.InlineKeyboardMarkup) {
	if len(reviews) == 0 {
		return "📝 Отзывов пока нет.", nil
	}

	totalPages := (len(reviews) + reviewsPerPage - 1) / reviewsPerPage

	if page < 0 {
		page = 0
	}

	start := page * reviewsPerPage
	if start > len(reviews) {
		start = len(reviews)
	}

	end := start + reviewsPerPage
	if end > len(reviews) {
		end = len(reviews)
	}

	var sb strings.Builder
	sb.WriteString("📊 Отзывы:\n\n")

	for i, review := range reviews[start:end] {
		stars := strings.Repeat("⭐", review.Rating)
		sb.WriteString(fmt.Sprintf("%d. %s\n", start+i+1, stars))

		if asAdmin {
			sb.WriteString(fmt.Sprintf("👤 %s %s (@%s)\n",
				pointer.Get(review.FirstName),
				pointer.Get(review.LastName),
				displayUsername(review.Username),
			))
		}

		sb.WriteString(review.Text + "\n")

		if review.Photo != nil {
			sb.WriteString("📷 Есть фото\n")
		}

		sb.WriteString(fmt.Sprintf("📅 %s\n\n", review.CreatedAt.Format("02.01.2006 15:04")))
	}

	var row []tgbotapi.InlineKeyboardButton

	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", reviewsPageCallback(page-1, asAdmin)))
	}

	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Вперед ▶️", reviewsPageCallback(page+1, asAdmin)))
	}

	if len(row) == 0 {
		return sb.String(), nil
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(row)

	return sb.String(), &markup
}

func displayUsername(username *string) string {
	if username == nil || *username == "" {
		return "нет"
	}

	return *username
}
