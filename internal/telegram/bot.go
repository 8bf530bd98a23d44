package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-hh-hunter/internal/models"
	"go-hh-hunter/internal/scraper"
)

// Bot delivers vacancy and statistics messages to a single chat.
// Delivery methods report success as a bool and never propagate transport
// errors: one failed send must not abort the rest of a poll cycle.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

// SendVacancy pushes one formatted vacancy to the chat.
func (b *Bot) SendVacancy(v scraper.Vacancy) bool {
	msg := tgbotapi.NewMessage(b.chatID, FormatVacancy(v))
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("⚠️ Failed to send vacancy to Telegram: %v", err)
		return false
	}
	log.Printf("📨 Sent to Telegram: %s", v.Title)
	return true
}

// SendStatistics pushes the daily summary to the chat.
func (b *Bot) SendStatistics(stats *models.DailyStats) bool {
	msg := tgbotapi.NewMessage(b.chatID, FormatStatistics(stats))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("⚠️ Failed to send statistics to Telegram: %v", err)
		return false
	}
	return true
}
