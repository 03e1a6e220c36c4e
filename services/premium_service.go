package services

import (
	"errors"

	"secret-santa-bot/i18n"
	"secret-santa-bot/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// PremiumNickPriceXTR is the fixed price of a premium nick in Telegram Stars.
const PremiumNickPriceXTR = 50

var (
	ErrNickTaken        = errors.New("premium nick already held by another player")
	ErrUnknownNick      = errors.New("unknown premium nick")
	ErrPurchaseNotFound = errors.New("purchase not found")
)

// PremiumNick is a purchasable exclusive identity. Key is an ASCII slug of
// the name, safe to embed in Telegram callback data (the names themselves
// contain spaces and Cyrillic).
type PremiumNick struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// PremiumService sells exclusive nicknames. The payment itself is the chat
// platform's business; this service records intent and binds the nick on
// confirmed payment.
type PremiumService struct {
	DB    *gorm.DB
	Games *GameService
}

func NewPremiumService(db *gorm.DB, games *GameService) *PremiumService {
	return &PremiumService{DB: db, Games: games}
}

// Catalog lists the premium nicks for the chat's language and theme.
func (s *PremiumService) Catalog(chatID string) ([]PremiumNick, error) {
	names := i18n.PremiumNicks(s.Games.Lang(chatID), s.Games.Theme(chatID))
	if len(names) == 0 {
		return nil, ErrUnknownTheme
	}
	out := make([]PremiumNick, 0, len(names))
	for _, n := range names {
		out = append(out, PremiumNick{Name: n, Key: slug.Make(n)})
	}
	return out, nil
}

func (s *PremiumService) resolve(chatID, key string) (string, error) {
	catalog, err := s.Catalog(chatID)
	if err != nil {
		return "", err
	}
	for _, n := range catalog {
		if n.Key == key {
			return n.Name, nil
		}
	}
	return "", ErrUnknownNick
}

func (s *PremiumService) nickHeld(tx *gorm.DB, chatID, nick string) (bool, error) {
	var count int64
	err := tx.Model(&models.Player{}).
		Where("premium_nick = ? AND chat_id = ?", nick, chatID).
		Count(&count).Error
	return count > 0, err
}

// BeginPurchase resolves a catalog key, refuses nicks already held in this
// chat, and records a pending purchase whose id becomes the invoice
// payload.
func (s *PremiumService) BeginPurchase(chatID, userID, key string) (*models.PremiumPurchase, error) {
	nick, err := s.resolve(chatID, key)
	if err != nil {
		return nil, err
	}
	held, err := s.nickHeld(s.DB, chatID, nick)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, ErrNickTaken
	}

	purchase := models.PremiumPurchase{
		ID:     uuid.NewString(),
		ChatID: chatID,
		UserID: userID,
		Nick:   nick,
		Status: models.PurchasePending,
	}
	if err := s.DB.Create(&purchase).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

// ConfirmPurchase runs after the payment provider confirms the charge: in
// one transaction the payer must still be a player of the purchase's chat
// and the nick must still be free, then it replaces the payer's pseudonym.
// A lost race marks the purchase rejected; refunding the charge is the
// payment provider's responsibility.
func (s *PremiumService) ConfirmPurchase(purchaseID, payerID string) (*models.PremiumPurchase, error) {
	var purchase models.PremiumPurchase
	if err := s.DB.First(&purchase, "id = ?", purchaseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.Where("user_id = ? AND chat_id = ?", payerID, purchase.ChatID).
			First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotRegistered
			}
			return err
		}

		held, err := s.nickHeld(tx, purchase.ChatID, purchase.Nick)
		if err != nil {
			return err
		}
		if held {
			return ErrNickTaken
		}

		if err := tx.Model(&player).Updates(map[string]interface{}{
			"nick":         purchase.Nick,
			"premium_nick": purchase.Nick,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&purchase).Update("status", models.PurchaseCompleted).Error
	})
	if err != nil {
		if errors.Is(err, ErrNickTaken) || errors.Is(err, ErrNotRegistered) {
			s.DB.Model(&purchase).Update("status", models.PurchaseRejected)
		}
		return nil, err
	}

	purchase.Status = models.PurchaseCompleted
	return &purchase, nil
}
