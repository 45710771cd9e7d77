// Package notify pushes new-complaint alerts to the staff Telegram chat so
// administrators hear about submissions without watching the dashboard.
package notify

import (
	"fmt"
	"log"
	"strconv"

	"cityvoice/backend/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier sends outbound alerts. It never reads updates.
type TelegramNotifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewTelegramNotifier authorizes the bot and resolves the staff chat id.
func NewTelegramNotifier(token, chatID string) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_ADMIN_CHAT_ID %q: %w", chatID, err)
	}

	log.Printf("INFO: Telegram alerts authorized on account %s", bot.Self.UserName)
	return &TelegramNotifier{BotAPI: bot, ChatID: id}, nil
}

// ComplaintCreated sends an alert for a freshly submitted complaint.
// Failures are logged and swallowed; alerting never fails a submission.
func (n *TelegramNotifier) ComplaintCreated(complaint *models.Complaint) {
	msg := tgbotapi.NewMessage(n.ChatID, formatComplaintAlert(complaint))
	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("ERROR: Failed to send Telegram alert for complaint %s: %v", complaint.ID, err)
	}
}

// formatComplaintAlert renders the alert text for one complaint.
func formatComplaintAlert(c *models.Complaint) string {
	return fmt.Sprintf(
		"New complaint [%s]\n%s\n\n%s\n\nImages: %d, status: %s",
		c.ID, c.Title, c.Description, len(c.Images), c.Status,
	)
}
