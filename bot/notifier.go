package bot

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier adapts the Telegram client to the services.Notifier boundary.
// It is a separate type from Bot so the game services can be constructed
// before the dispatcher that depends on them.
type Notifier struct {
	api *tgbotapi.BotAPI
}

func NewNotifier(api *tgbotapi.BotAPI) *Notifier {
	return &Notifier{api: api}
}

func (n *Notifier) SendDirect(userID, text string) error {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return err
	}
	_, err = n.api.Send(tgbotapi.NewMessage(id, text))
	return err
}

func (n *Notifier) Broadcast(chatID, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return err
	}
	_, err = n.api.Send(tgbotapi.NewMessage(id, text))
	return err
}
