package models

import (
	"time"
)

const (
	PurchasePending   = "pending"
	PurchaseCompleted = "completed"
	PurchaseRejected  = "rejected"
)

// PremiumPurchase tracks one premium-nick payment from invoice to binding.
// The uuid primary key doubles as the invoice payload, so a confirmed
// payment can be matched back without parsing nick names out of payloads.
type PremiumPurchase struct {
	ID     string `json:"id" gorm:"primaryKey"`
	ChatID string `json:"chat_id" gorm:"index;not null"`
	UserID string `json:"user_id" gorm:"not null"`
	Nick   string `json:"nick" gorm:"not null"`
	Status string `json:"status" gorm:"default:'pending'"` // pending | completed | rejected

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
