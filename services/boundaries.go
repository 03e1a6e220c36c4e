package services

import (
	"context"
)

// Notifier is the outbound chat boundary. The Telegram transport implements
// it in production; tests inject a recording fake.
type Notifier interface {
	// SendDirect delivers a private message to one participant.
	SendDirect(userID, text string) error
	// Broadcast posts a message into the game's chat.
	Broadcast(chatID, text string) error
}

// Archiver stores a finished game's reveal summary outside the database.
// A nil Archiver disables archiving.
type Archiver interface {
	ArchiveReveal(ctx context.Context, chatID string, payload []byte) error
}
