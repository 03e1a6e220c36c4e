package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"secret-santa-bot/i18n"
	"secret-santa-bot/models"
	"secret-santa-bot/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Telegram wants every callback acknowledged or the button keeps its
	// spinner.
	defer func() {
		if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			log.Printf("⚠️ callback ack failed: %v", err)
		}
	}()

	if cb.Message == nil {
		return
	}
	chatID := strconv.FormatInt(cb.Message.Chat.ID, 10)
	userID := strconv.FormatInt(cb.From.ID, 10)
	lang := b.games.Lang(chatID)

	switch {
	case cb.Data == "help":
		b.editText(cb.Message.Chat.ID, cb.Message.MessageID, i18n.T(lang, "help"))

	case strings.HasPrefix(cb.Data, "theme_"):
		b.handleThemeCallback(cb, chatID, userID)

	case strings.HasPrefix(cb.Data, "guess_"):
		b.handleGuessCallback(cb, chatID, userID, lang)

	case strings.HasPrefix(cb.Data, "buy_"):
		b.handleBuyCallback(cb, chatID, userID, lang)
	}
}

func (b *Bot) handleThemeCallback(cb *tgbotapi.CallbackQuery, chatID, userID string) {
	theme := strings.TrimPrefix(cb.Data, "theme_")
	if err := b.games.SetTheme(chatID, theme, cb.From.LanguageCode); err != nil {
		log.Printf("⚠️ theme selection for chat %s failed: %v", chatID, err)
		return
	}
	lang := b.games.Lang(chatID)
	b.send(cb.Message.Chat.ID, fmt.Sprintf(i18n.T(lang, "theme_selected"), i18n.ThemeLabel(lang, theme)), nil)
	b.send(cb.Message.Chat.ID, i18n.T(lang, "setup_prompt_draw"), nil)
	b.setSession(chatID, userID, models.SessionAwaitingDrawTime)
}

func (b *Bot) handleGuessCallback(cb *tgbotapi.CallbackQuery, chatID, userID, lang string) {
	parts := strings.Split(cb.Data, "_")
	if len(parts) != 3 {
		return
	}
	hiddenID, selectedID := parts[1], parts[2]

	result, err := b.guesses.ScoreGuess(chatID, hiddenID, selectedID, userID)
	if err != nil {
		log.Printf("⚠️ guess scoring for chat %s failed: %v", chatID, err)
		return
	}
	if result.Correct {
		b.editText(cb.Message.Chat.ID, cb.Message.MessageID, i18n.T(lang, "guess_correct"))
		return
	}
	b.editText(cb.Message.Chat.ID, cb.Message.MessageID,
		fmt.Sprintf(i18n.T(lang, "guess_wrong"), result.HiddenFullName))
}

func (b *Bot) handleBuyCallback(cb *tgbotapi.CallbackQuery, chatID, userID, lang string) {
	key := strings.TrimPrefix(cb.Data, "buy_")

	purchase, err := b.premium.BeginPurchase(chatID, userID, key)
	if err != nil {
		if errors.Is(err, services.ErrNickTaken) {
			b.editText(cb.Message.Chat.ID, cb.Message.MessageID, i18n.T(lang, "premium_sold"))
			return
		}
		log.Printf("⚠️ premium purchase start for chat %s failed: %v", chatID, err)
		return
	}

	prices := []tgbotapi.LabeledPrice{{
		Label:  purchase.Nick,
		Amount: services.PremiumNickPriceXTR,
	}}
	invoice := tgbotapi.NewInvoice(cb.Message.Chat.ID,
		i18n.T(lang, "premium_title"),
		fmt.Sprintf(i18n.T(lang, "premium_desc"), purchase.Nick),
		purchase.ID, "", "", "XTR", prices)
	if _, err := b.api.Send(invoice); err != nil {
		log.Printf("⚠️ premium invoice to chat %s failed: %v", chatID, err)
	}
}

func (b *Bot) handlePreCheckout(q *tgbotapi.PreCheckoutQuery) {
	cfg := tgbotapi.PreCheckoutConfig{PreCheckoutQueryID: q.ID, OK: true}
	if _, err := b.api.Request(cfg); err != nil {
		log.Printf("⚠️ pre-checkout answer failed: %v", err)
	}
}

func (b *Bot) handlePayment(msg *tgbotapi.Message) {
	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	userID := strconv.FormatInt(msg.From.ID, 10)
	lang := b.games.Lang(chatID)
	payload := msg.SuccessfulPayment.InvoicePayload

	if payload == donationPayload {
		b.send(msg.Chat.ID, i18n.T(lang, "donate_thanks"), nil)
		return
	}

	purchase, err := b.premium.ConfirmPurchase(payload, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNickTaken):
			b.send(msg.Chat.ID, i18n.T(lang, "premium_sold"), nil)
		case errors.Is(err, services.ErrNotRegistered):
			b.send(msg.Chat.ID, i18n.T(lang, "not_in_game"), nil)
		default:
			log.Printf("⚠️ premium confirmation for payload %s failed: %v", payload, err)
		}
		return
	}
	b.send(msg.Chat.ID, fmt.Sprintf(i18n.T(lang, "nick_unlocked"), purchase.Nick), nil)
}
