// Package notify pushes reservation activity to the property owner's
// Telegram chat.  The notifier is optional: without a bot token the rest of
// the pipeline still logs events to disk.
package notify

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/bellathena/cityhill-backoffice/internal/queue"
)

// Telegram is a send-only client bound to a single chat.
type Telegram struct {
	bot  *telebot.Bot
	chat *telebot.Chat
}

// NewTelegramFromEnv builds a notifier from TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID.  It returns nil (no error) when the token is unset, and
// an error only when a token is present but unusable.
func NewTelegramFromEnv() (*Telegram, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, nil
	}
	chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("telegram: invalid TELEGRAM_CHAT_ID: %w", err)
	}
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &Telegram{bot: bot, chat: &telebot.Chat{ID: chatID}}, nil
}

// NotifyReservation formats and sends a reservation event.  Send errors are
// swallowed; notification is best-effort.
func (t *Telegram) NotifyReservation(ev queue.ReservationEvent) {
	if t == nil {
		return
	}
	end := ev.EndDate
	if end == "" {
		end = "open"
	}
	text := fmt.Sprintf("%s\nroom %s, %s\n%s — %s",
		ev.Action, ev.RoomNumber, ev.CustomerName, ev.StartDate, end)
	if ev.Amount > 0 {
		text += fmt.Sprintf("\namount: %.2f", ev.Amount)
	}
	_, _ = t.bot.Send(t.chat, text)
}
