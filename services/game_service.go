package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"secret-santa-bot/i18n"
	"secret-santa-bot/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TimeLayout is the user-facing timestamp format for draw and reveal dates.
const TimeLayout = "02.01.2006 15:04"

// MinPlayersForDraw: a 2-player "rotation" is just a swap and makes the
// guessing game pointless, so scheduled draws require a 3-cycle at least.
// AssignTargets itself still accepts 2 for manually triggered draws.
const MinPlayersForDraw = 3

var (
	ErrBadTimestamp     = errors.New("timestamp not in DD.MM.YYYY HH:MM format")
	ErrDrawNotScheduled = errors.New("draw time must be set before the reveal time")
	ErrUnknownTheme     = errors.New("unknown theme")
	ErrGameNotFound     = errors.New("no game configured for this chat")
)

// GameService owns one game instance per chat: configuration, the draw and
// reveal lifecycle, and the final summary. All outbound effects go through
// the injected Notifier/Archiver boundaries.
type GameService struct {
	DB       *gorm.DB
	Players  *PlayerService
	Notifier Notifier
	Archiver Archiver
}

func NewGameService(db *gorm.DB, players *PlayerService, notifier Notifier, archiver Archiver) *GameService {
	return &GameService{DB: db, Players: players, Notifier: notifier, Archiver: archiver}
}

// Game fetches the chat's game row.
func (s *GameService) Game(chatID string) (*models.Game, error) {
	var game models.Game
	if err := s.DB.First(&game, "chat_id = ?", chatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

// Lang returns the chat's language, defaulting to Russian for chats that
// have not configured a game yet.
func (s *GameService) Lang(chatID string) string {
	game, err := s.Game(chatID)
	if err != nil {
		return i18n.LangRU
	}
	return game.Lang
}

// Theme returns the chat's theme, defaulting to christmas.
func (s *GameService) Theme(chatID string) string {
	game, err := s.Game(chatID)
	if err != nil {
		return models.ThemeChristmas
	}
	return game.Theme
}

// SetTheme creates the game on first use and persists the chosen theme.
// langCode is the configurer's Telegram language_code, used only when the
// game does not exist yet.
func (s *GameService) SetTheme(chatID, theme, langCode string) error {
	if !models.KnownTheme(theme) {
		return ErrUnknownTheme
	}
	game := models.Game{ChatID: chatID, Lang: i18n.Match(langCode), Theme: theme}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"theme"}),
	}).Create(&game).Error
}

// ToggleLanguage flips the chat between the two supported locales and
// returns the new one.
func (s *GameService) ToggleLanguage(chatID string) (string, error) {
	game, err := s.Game(chatID)
	if err != nil {
		return "", err
	}
	next := i18n.LangRU
	if game.Lang == i18n.LangRU {
		next = i18n.LangEN
	}
	if err := s.DB.Model(game).Update("lang", next).Error; err != nil {
		return "", err
	}
	return next, nil
}

// ScheduleDraw parses and persists the draw timestamp. A malformed value
// mutates nothing and is reported as a validation failure.
func (s *GameService) ScheduleDraw(chatID, raw string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, ErrBadTimestamp
	}
	game, err := s.Game(chatID)
	if err != nil {
		return time.Time{}, err
	}
	if err := s.DB.Model(game).Update("draw_time", &t).Error; err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// ScheduleReveal is symmetric to ScheduleDraw, and additionally requires a
// draw time to already be set.
func (s *GameService) ScheduleReveal(chatID, raw string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, ErrBadTimestamp
	}
	game, err := s.Game(chatID)
	if err != nil {
		return time.Time{}, err
	}
	if game.DrawTime == nil {
		return time.Time{}, ErrDrawNotScheduled
	}
	if err := s.DB.Model(game).Update("reveal_time", &t).Error; err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// RunDraw snapshots the registry, computes the rotation and notifies every
// player of their target. With fewer than MinPlayersForDraw registered the
// draw is skipped, the chat gets a one-time stall notice, and the
// scheduler will try again on its next tick.
func (s *GameService) RunDraw(ctx context.Context, chatID string) error {
	return s.runDraw(ctx, chatID, MinPlayersForDraw)
}

// ForceDraw is the operator override: it accepts the 2-player mutual pair
// that scheduled draws refuse.
func (s *GameService) ForceDraw(ctx context.Context, chatID string) error {
	return s.runDraw(ctx, chatID, 2)
}

func (s *GameService) runDraw(ctx context.Context, chatID string, minPlayers int) error {
	lang := s.Lang(chatID)

	players, err := s.Players.Players(chatID)
	if err != nil {
		return err
	}
	if len(players) < minPlayers {
		s.notifyStalledDraw(chatID, lang, len(players), minPlayers)
		return ErrNotEnoughPlayers
	}

	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.UserID
	}
	targets, err := AssignTargets(ids)
	if err != nil {
		return err
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for giver, receiver := range targets {
			if err := tx.Model(&models.Player{}).
				Where("user_id = ? AND chat_id = ?", giver, chatID).
				Update("target_id", receiver).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Game{}).
			Where("chat_id = ?", chatID).
			Update("drawn_at", &now).Error
	})
	if err != nil {
		return err
	}

	// Best-effort per-recipient delivery: one blocked bot must not hide the
	// draw from everyone else.
	byID := make(map[string]models.Player, len(players))
	for _, p := range players {
		byID[p.UserID] = p
	}
	for _, p := range players {
		target := byID[targets[p.UserID]]
		text := fmt.Sprintf(i18n.T(lang, "your_target"), target.Nick)
		if target.Gift != "" {
			text += "\n" + fmt.Sprintf(i18n.T(lang, "target_wish"), target.Gift)
		}
		if err := s.Notifier.SendDirect(p.UserID, text); err != nil {
			log.Printf("⚠️ draw notification to user %s failed: %v", p.UserID, err)
		}
	}
	if err := s.Notifier.Broadcast(chatID, i18n.T(lang, "draw_done")); err != nil {
		log.Printf("⚠️ draw announcement to chat %s failed: %v", chatID, err)
	}
	return nil
}

func (s *GameService) notifyStalledDraw(chatID, lang string, registered, required int) {
	game, err := s.Game(chatID)
	if err != nil || game.DrawStalledNotified {
		return
	}
	text := fmt.Sprintf(i18n.T(lang, "draw_stalled"), registered, required)
	if err := s.Notifier.Broadcast(chatID, text); err != nil {
		log.Printf("⚠️ stall notice to chat %s failed: %v", chatID, err)
		return
	}
	if err := s.DB.Model(game).Update("draw_stalled_notified", true).Error; err != nil {
		log.Printf("[Game] failed to mark stall notice for chat %s: %v", chatID, err)
	}
}

// revealEntry is one line of the archived summary.
type revealEntry struct {
	Nick         string   `json:"nick"`
	FullName     string   `json:"full_name"`
	Score        int      `json:"score"`
	Achievements []string `json:"achievements"`
}

// FinishGame produces the ranked final summary, awards threshold
// achievements and marks the game finished. Safe to run twice: awarding is
// an idempotent insert and the summary is simply broadcast again.
func (s *GameService) FinishGame(ctx context.Context, chatID string) error {
	lang := s.Lang(chatID)

	var players []models.Player
	if err := s.DB.Where("chat_id = ?", chatID).
		Order("score DESC").
		Find(&players).Error; err != nil {
		return err
	}

	if err := s.awardAchievements(players); err != nil {
		return err
	}

	var summary strings.Builder
	summary.WriteString(i18n.T(lang, "final_intro"))
	entries := make([]revealEntry, 0, len(players))
	for _, p := range players {
		var achs []models.Achievement
		if err := s.DB.Where("player_id = ?", p.UserID).Find(&achs).Error; err != nil {
			return err
		}
		names := make([]string, 0, len(achs))
		for _, a := range achs {
			names = append(names, i18n.AchievementName(lang, a.Name))
		}
		achText := "—"
		if len(names) > 0 {
			achText = strings.Join(names, ", ")
		}
		summary.WriteString(fmt.Sprintf("👤 %s (%s) | ⭐ %d | 🏆 %s\n", p.Nick, p.FullName, p.Score, achText))
		entries = append(entries, revealEntry{
			Nick:         p.Nick,
			FullName:     p.FullName,
			Score:        p.Score,
			Achievements: names,
		})
	}

	now := time.Now()
	if err := s.DB.Model(&models.Game{}).
		Where("chat_id = ?", chatID).
		Update("revealed_at", &now).Error; err != nil {
		return err
	}

	if err := s.Notifier.Broadcast(chatID, summary.String()); err != nil {
		log.Printf("⚠️ reveal broadcast to chat %s failed: %v", chatID, err)
	}

	if s.Archiver != nil {
		payload, err := json.Marshal(entries)
		if err == nil {
			err = s.Archiver.ArchiveReveal(ctx, chatID, payload)
		}
		if err != nil {
			log.Printf("⚠️ reveal archive for chat %s failed: %v", chatID, err)
		}
	}
	return nil
}

func (s *GameService) awardAchievements(players []models.Player) error {
	for _, p := range players {
		for _, trigger := range models.AchievementTriggers {
			if p.Score < trigger.MinScore {
				continue
			}
			ach := models.Achievement{PlayerID: p.UserID, Name: trigger.Code}
			if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&ach).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// Leaderboard returns the top players by score.
func (s *GameService) Leaderboard(chatID string, limit int) ([]models.Player, error) {
	var players []models.Player
	err := s.DB.Where("chat_id = ?", chatID).
		Order("score DESC").
		Limit(limit).
		Find(&players).Error
	return players, err
}

// GameStatus is the admin API view of a game.
type GameStatus struct {
	ChatID      string     `json:"chat_id"`
	State       string     `json:"state"`
	Lang        string     `json:"lang"`
	Theme       string     `json:"theme"`
	DrawTime    *time.Time `json:"draw_time,omitempty"`
	RevealTime  *time.Time `json:"reveal_time,omitempty"`
	PlayerCount int64      `json:"player_count"`
}

// Status reports the game's lifecycle state and headline numbers.
func (s *GameService) Status(chatID string) (*GameStatus, error) {
	game, err := s.Game(chatID)
	if err != nil {
		return nil, err
	}
	var count int64
	if err := s.DB.Model(&models.Player{}).
		Where("chat_id = ?", chatID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	return &GameStatus{
		ChatID:      game.ChatID,
		State:       game.State(),
		Lang:        game.Lang,
		Theme:       game.Theme,
		DrawTime:    game.DrawTime,
		RevealTime:  game.RevealTime,
		PlayerCount: count,
	}, nil
}
