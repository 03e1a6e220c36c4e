package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"secret-santa-bot/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const minWishLength = 3

var (
	ErrWishTooShort  = errors.New("gift wish too short")
	ErrNotRegistered = errors.New("user is not a player of this game")
)

// PlayerService is the registry of participants per game.
type PlayerService struct {
	DB    *gorm.DB
	Nicks *NicknameService
}

func NewPlayerService(db *gorm.DB, nicks *NicknameService) *PlayerService {
	return &PlayerService{DB: db, Nicks: nicks}
}

// Register adds a participant to a game, minting a nick that is unique
// among the chat's existing nicks. Registering an existing (user, chat)
// pair is a no-op; the returned flag tells the caller whether a welcome
// notice is due.
func (s *PlayerService) Register(chatID, userID, fullName, theme string) (bool, error) {
	var created bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.Model(&models.Player{}).
			Where("chat_id = ?", chatID).
			Pluck("nick", &existing).Error; err != nil {
			return err
		}
		taken := make(map[string]bool, len(existing))
		for _, n := range existing {
			taken[n] = true
		}

		player := models.Player{
			UserID:   userID,
			ChatID:   chatID,
			FullName: fullName,
			Nick:     s.Nicks.MintUnique(theme, taken),
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&player)
		if res.Error != nil {
			return res.Error
		}
		created = res.RowsAffected > 0
		return nil
	})
	return created, err
}

// SetGift stores (or overwrites) the player's wish text. Empty and
// near-empty wishes are rejected before any mutation.
func (s *PlayerService) SetGift(chatID, userID, text string) error {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minWishLength {
		return ErrWishTooShort
	}
	res := s.DB.Model(&models.Player{}).
		Where("user_id = ? AND chat_id = ?", userID, chatID).
		Update("gift", text)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotRegistered
	}
	return nil
}

// Players returns the game's participants in registration order. This is
// the snapshot the draw consumes; anyone registering later simply has no
// target until a future draw.
func (s *PlayerService) Players(chatID string) ([]models.Player, error) {
	var players []models.Player
	err := s.DB.Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&players).Error
	return players, err
}

// Player fetches a single participant.
func (s *PlayerService) Player(chatID, userID string) (*models.Player, error) {
	var p models.Player
	if err := s.DB.Where("user_id = ? AND chat_id = ?", userID, chatID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, err
	}
	return &p, nil
}

// AwardScore atomically increments a player's score. Negative deltas are
// refused; the score only ever grows.
func (s *PlayerService) AwardScore(chatID, userID string, delta int) error {
	if delta < 0 {
		return errors.New("score delta must not be negative")
	}
	return s.DB.Model(&models.Player{}).
		Where("user_id = ? AND chat_id = ?", userID, chatID).
		Update("score", gorm.Expr("score + ?", delta)).Error
}
