// Package bot is the Telegram transport: it dispatches commands, inline
// keyboard callbacks and payment events onto the game services, and keeps
// the per-user conversation step in the store.
package bot

import (
	"context"
	"log"

	"secret-santa-bot/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	db      *gorm.DB
	games   *services.GameService
	players *services.PlayerService
	guesses *services.GuessService
	premium *services.PremiumService
}

func New(api *tgbotapi.BotAPI, db *gorm.DB, games *services.GameService,
	players *services.PlayerService, guesses *services.GuessService,
	premium *services.PremiumService) *Bot {
	return &Bot{
		api:     api,
		db:      db,
		games:   games,
		players: players,
		guesses: guesses,
		premium: premium,
	}
}

// Run registers the command menu and consumes updates until ctx is done.
func (b *Bot) Run(ctx context.Context) {
	b.setCommands()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	log.Printf("Bot authorized as @%s, receiving updates", b.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.dispatch(ctx, update)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.PreCheckoutQuery != nil:
		b.handlePreCheckout(update.PreCheckoutQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) setCommands() {
	cfg := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Запустить бота"},
		tgbotapi.BotCommand{Command: "help", Description: "Помощь по игре"},
		tgbotapi.BotCommand{Command: "setup", Description: "Настроить игру"},
		tgbotapi.BotCommand{Command: "mygift", Description: "Указать желание"},
		tgbotapi.BotCommand{Command: "santabingo", Description: "Угадать личность"},
		tgbotapi.BotCommand{Command: "leaderboard", Description: "Таблица лидеров"},
		tgbotapi.BotCommand{Command: "premium", Description: "Премиум-ники"},
		tgbotapi.BotCommand{Command: "lang", Description: "Сменить язык"},
		tgbotapi.BotCommand{Command: "donate", Description: "Поддержать ⭐"},
	)
	if _, err := b.api.Request(cfg); err != nil {
		log.Printf("⚠️ failed to register bot commands: %v", err)
	}
}

// reply sends text as a reply to msg, ignoring delivery errors beyond a log
// line (chat delivery is best-effort everywhere in this bot).
func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	if _, err := b.api.Send(out); err != nil {
		log.Printf("⚠️ reply to chat %d failed: %v", msg.Chat.ID, err)
	}
}

func (b *Bot) send(chatID int64, text string, markup interface{}) {
	out := tgbotapi.NewMessage(chatID, text)
	out.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		out.ReplyMarkup = markup
	}
	if _, err := b.api.Send(out); err != nil {
		log.Printf("⚠️ message to chat %d failed: %v", chatID, err)
	}
}

func (b *Bot) editText(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("⚠️ edit in chat %d failed: %v", chatID, err)
	}
}
