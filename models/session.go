package models

import (
	"time"
)

// Conversation steps a user can be parked in while the bot waits for their
// next free-text message.
const (
	SessionAwaitingDrawTime   = "awaiting_draw_time"
	SessionAwaitingRevealTime = "awaiting_reveal_time"
	SessionAwaitingGift       = "awaiting_gift"
)

// Session is the explicit per-(chat, user) conversational state. Keeping it
// in the store instead of in-process means a restart cannot orphan a user
// mid-dialogue.
type Session struct {
	ChatID string `json:"chat_id" gorm:"primaryKey"`
	UserID string `json:"user_id" gorm:"primaryKey"`
	State  string `json:"state"`

	UpdatedAt time.Time `json:"updated_at"`
}
