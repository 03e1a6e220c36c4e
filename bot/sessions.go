package bot

import (
	"errors"
	"log"

	"secret-santa-bot/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionState returns the pending conversation step for a (chat, user)
// pair, or "" when the user is not mid-dialogue.
func (b *Bot) sessionState(chatID, userID string) string {
	var s models.Session
	err := b.db.Where("chat_id = ? AND user_id = ?", chatID, userID).First(&s).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[Session] lookup failed for chat %s user %s: %v", chatID, userID, err)
		}
		return ""
	}
	return s.State
}

func (b *Bot) setSession(chatID, userID, state string) {
	s := models.Session{ChatID: chatID, UserID: userID, State: state}
	err := b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state"}),
	}).Create(&s).Error
	if err != nil {
		log.Printf("[Session] save failed for chat %s user %s: %v", chatID, userID, err)
	}
}

func (b *Bot) clearSession(chatID, userID string) {
	err := b.db.Where("chat_id = ? AND user_id = ?", chatID, userID).
		Delete(&models.Session{}).Error
	if err != nil {
		log.Printf("[Session] clear failed for chat %s user %s: %v", chatID, userID, err)
	}
}
