package models

import (
	"time"
)

// Player is one participant of a game. The composite key mirrors the fact
// that the same user may play in several chats at once.
type Player struct {
	UserID string `json:"user_id" gorm:"primaryKey"`
	ChatID string `json:"chat_id" gorm:"primaryKey"`

	// FullName is the real display identity; shown to others only at reveal.
	FullName string `json:"full_name"`

	// Nick is the pseudonym everyone else sees. Unique within a chat.
	// A completed premium purchase overwrites it (and sets PremiumNick).
	Nick        string `json:"nick"`
	PremiumNick string `json:"premium_nick,omitempty"`

	Gift     string `json:"gift,omitempty"`
	Score    int    `json:"score" gorm:"default:0"`
	TargetID string `json:"target_id,omitempty"` // unset until the draw runs

	CreatedAt time.Time `json:"created_at"` // registration order drives the draw snapshot
	UpdatedAt time.Time `json:"updated_at"`
}
