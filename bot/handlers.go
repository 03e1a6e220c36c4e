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

// Telegram Stars donation ladder.
var donationOptions = []int{1, 10, 25, 50, 100, 500, 1000, 5000}

const donationPayload = "donation"

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := strconv.FormatInt(msg.Chat.ID, 10)

	switch {
	case msg.SuccessfulPayment != nil:
		b.handlePayment(msg)
		return
	case len(msg.NewChatMembers) > 0:
		b.handleNewMembers(msg)
		return
	}

	if msg.From == nil {
		return
	}
	userID := strconv.FormatInt(msg.From.ID, 10)

	// Anyone active in a group counts as a participant, not only the ones
	// who joined after the bot did.
	if !msg.Chat.IsPrivate() && !msg.From.IsBot {
		b.registerPlayer(msg.Chat.ID, msg.From, false)
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	b.handleSessionInput(msg, chatID, userID)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	userID := strconv.FormatInt(msg.From.ID, 10)
	lang := b.games.Lang(chatID)

	switch msg.Command() {
	case "start":
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("ℹ️", "help"),
			),
		)
		b.send(msg.Chat.ID, i18n.T(lang, "start"), kb)

	case "help":
		b.send(msg.Chat.ID, i18n.T(lang, "help"), nil)

	case "setup":
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, 3)
		for _, theme := range []string{models.ThemeChristmas, models.ThemeHalloween, models.ThemeOffice} {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(i18n.ThemeLabel(lang, theme), "theme_"+theme),
			))
		}
		b.send(msg.Chat.ID, i18n.T(lang, "setup_intro"), tgbotapi.NewInlineKeyboardMarkup(rows...))

	case "mygift":
		b.reply(msg, i18n.T(lang, "gift_prompt"))
		b.setSession(chatID, userID, models.SessionAwaitingGift)

	case "santabingo":
		b.handleSantaBingo(msg, chatID, userID, lang)

	case "leaderboard":
		b.handleLeaderboard(msg, chatID, lang)

	case "premium":
		b.handlePremium(msg, chatID, lang)

	case "lang":
		if _, err := b.games.ToggleLanguage(chatID); err != nil {
			log.Printf("⚠️ language toggle for chat %s failed: %v", chatID, err)
			return
		}
		b.reply(msg, i18n.T(b.games.Lang(chatID), "lang_changed"))

	case "donate":
		prices := make([]tgbotapi.LabeledPrice, 0, len(donationOptions))
		for _, amount := range donationOptions {
			prices = append(prices, tgbotapi.LabeledPrice{
				Label:  fmt.Sprintf("%d ⭐", amount),
				Amount: amount,
			})
		}
		invoice := tgbotapi.NewInvoice(msg.Chat.ID,
			i18n.T(lang, "donate_title"), i18n.T(lang, "donate_desc"),
			donationPayload, "", "", "XTR", prices)
		if _, err := b.api.Send(invoice); err != nil {
			log.Printf("⚠️ donate invoice to chat %s failed: %v", chatID, err)
		}
	}
}

// handleSessionInput routes free text to whatever step the user is parked
// in: draw time, reveal time or gift wish entry.
func (b *Bot) handleSessionInput(msg *tgbotapi.Message, chatID, userID string) {
	state := b.sessionState(chatID, userID)
	if state == "" {
		return
	}
	lang := b.games.Lang(chatID)

	switch state {
	case models.SessionAwaitingDrawTime:
		t, err := b.games.ScheduleDraw(chatID, msg.Text)
		if err != nil {
			b.reply(msg, i18n.T(lang, "invalid_date"))
			return // state unchanged, user may retry
		}
		b.reply(msg, fmt.Sprintf(i18n.T(lang, "draw_set"), t.Format(services.TimeLayout)))
		b.reply(msg, i18n.T(lang, "setup_prompt_reveal"))
		b.setSession(chatID, userID, models.SessionAwaitingRevealTime)

	case models.SessionAwaitingRevealTime:
		t, err := b.games.ScheduleReveal(chatID, msg.Text)
		if err != nil {
			if errors.Is(err, services.ErrDrawNotScheduled) {
				b.reply(msg, i18n.T(lang, "draw_not_scheduled"))
				b.clearSession(chatID, userID)
				return
			}
			b.reply(msg, i18n.T(lang, "invalid_date"))
			return
		}
		b.reply(msg, fmt.Sprintf(i18n.T(lang, "reveal_set"), t.Format(services.TimeLayout)))
		b.clearSession(chatID, userID)

	case models.SessionAwaitingGift:
		if err := b.players.SetGift(chatID, userID, msg.Text); err != nil {
			switch {
			case errors.Is(err, services.ErrWishTooShort):
				b.reply(msg, i18n.T(lang, "gift_too_short"))
			case errors.Is(err, services.ErrNotRegistered):
				b.reply(msg, i18n.T(lang, "not_in_game"))
				b.clearSession(chatID, userID)
			default:
				log.Printf("⚠️ gift save for chat %s user %s failed: %v", chatID, userID, err)
			}
			return
		}
		b.reply(msg, i18n.T(lang, "gift_saved"))
		b.clearSession(chatID, userID)
	}
}

func (b *Bot) handleSantaBingo(msg *tgbotapi.Message, chatID, userID, lang string) {
	challenge, err := b.guesses.PickChallenge(chatID, userID)
	if err != nil {
		if errors.Is(err, services.ErrNoCandidates) {
			b.reply(msg, i18n.T(lang, "no_candidates"))
			return
		}
		log.Printf("⚠️ challenge pick for chat %s failed: %v", chatID, err)
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(challenge.Candidates))
	for _, c := range challenge.Candidates {
		data := fmt.Sprintf("guess_%s_%s", challenge.HiddenUserID, c.UserID)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(c.Nick, data),
		))
	}
	text := fmt.Sprintf(i18n.T(lang, "santabingo_intro"), challenge.HiddenNick)
	b.send(msg.Chat.ID, text, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleLeaderboard(msg *tgbotapi.Message, chatID, lang string) {
	players, err := b.games.Leaderboard(chatID, 10)
	if err != nil {
		log.Printf("⚠️ leaderboard for chat %s failed: %v", chatID, err)
		return
	}
	var sb strings.Builder
	sb.WriteString(i18n.T(lang, "leaderboard"))
	for i, p := range players {
		sb.WriteString(fmt.Sprintf("%d. %s — %d\n", i+1, p.Nick, p.Score))
	}
	b.reply(msg, sb.String())
}

func (b *Bot) handlePremium(msg *tgbotapi.Message, chatID, lang string) {
	catalog, err := b.premium.Catalog(chatID)
	if err != nil {
		b.reply(msg, i18n.T(lang, "theme_unknown"))
		return
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(catalog))
	for _, n := range catalog {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✨ "+n.Name, "buy_"+n.Key),
		))
	}
	b.send(msg.Chat.ID, i18n.T(lang, "premium_intro"), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleNewMembers(msg *tgbotapi.Message) {
	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	for i := range msg.NewChatMembers {
		user := &msg.NewChatMembers[i]
		if user.IsBot {
			continue
		}
		welcomed := b.registerPlayer(msg.Chat.ID, user, true)
		if welcomed {
			b.send(msg.Chat.ID, i18n.T(b.games.Lang(chatID), "game_active"), nil)
		}
	}
}

// registerPlayer registers a chat member, minting their nick against the
// chat's theme. Returns true when this was a first-time registration in a
// chat that has a configured game (the caller may then welcome them).
func (b *Bot) registerPlayer(chat int64, user *tgbotapi.User, announce bool) bool {
	chatID := strconv.FormatInt(chat, 10)
	userID := strconv.FormatInt(user.ID, 10)
	fullName := user.FirstName
	if user.LastName != "" {
		fullName += " " + user.LastName
	}

	created, err := b.players.Register(chatID, userID, fullName, b.games.Theme(chatID))
	if err != nil {
		log.Printf("⚠️ registration of user %s in chat %s failed: %v", userID, chatID, err)
		return false
	}
	if !created || !announce {
		return false
	}
	_, err = b.games.Game(chatID)
	return err == nil
}
