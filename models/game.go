// models/game.go
package models

import (
	"time"
)

const (
	ThemeChristmas = "christmas"
	ThemeHalloween = "halloween"
	ThemeOffice    = "office"
)

// Game lifecycle states, derived from which timestamps are set.
const (
	StateThemeSet        = "theme_set"
	StateDrawScheduled   = "draw_scheduled"
	StateDrawn           = "drawn"
	StateRevealScheduled = "reveal_scheduled"
	StateFinished        = "finished"
)

// Game is one gift-exchange event, scoped to a single chat.
type Game struct {
	ChatID string `json:"chat_id" gorm:"primaryKey"`
	Lang   string `json:"lang" gorm:"default:'ru'"`
	Theme  string `json:"theme" gorm:"default:'christmas'"`

	// 📅 Scheduled events
	DrawTime   *time.Time `json:"draw_time"`
	RevealTime *time.Time `json:"reveal_time"`

	// Completion markers. The scheduler polls persisted times, so a fired
	// callback must be recorded or a restart would run it again.
	DrawnAt    *time.Time `json:"drawn_at"`
	RevealedAt *time.Time `json:"revealed_at"`

	// Set after the first skipped draw attempt so the chat is warned once,
	// not on every scheduler tick.
	DrawStalledNotified bool `json:"draw_stalled_notified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// State reports where the game sits in its lifecycle. A chat with no Game
// row at all is unconfigured; that case never reaches this method.
func (g *Game) State() string {
	switch {
	case g.RevealedAt != nil:
		return StateFinished
	case g.DrawnAt != nil && g.RevealTime != nil:
		return StateRevealScheduled
	case g.DrawnAt != nil:
		return StateDrawn
	case g.DrawTime != nil:
		return StateDrawScheduled
	default:
		return StateThemeSet
	}
}

// KnownTheme reports whether theme is one of the supported vocabularies.
func KnownTheme(theme string) bool {
	switch theme {
	case ThemeChristmas, ThemeHalloween, ThemeOffice:
		return true
	}
	return false
}
