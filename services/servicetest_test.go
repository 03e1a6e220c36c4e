package services

import (
	"testing"

	"secret-santa-bot/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Game{},
		&models.Player{},
		&models.Achievement{},
		&models.PremiumPurchase{},
		&models.Session{},
	))
	return db
}

// fakeNotifier records outbound messages instead of talking to Telegram.
type fakeNotifier struct {
	direct     map[string][]string
	broadcasts map[string][]string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		direct:     map[string][]string{},
		broadcasts: map[string][]string{},
	}
}

func (f *fakeNotifier) SendDirect(userID, text string) error {
	f.direct[userID] = append(f.direct[userID], text)
	return nil
}

func (f *fakeNotifier) Broadcast(chatID, text string) error {
	f.broadcasts[chatID] = append(f.broadcasts[chatID], text)
	return nil
}

func newTestGameService(t *testing.T) (*GameService, *PlayerService, *fakeNotifier) {
	t.Helper()
	db := newTestDB(t)
	players := NewPlayerService(db, NewNicknameService())
	notifier := newFakeNotifier()
	games := NewGameService(db, players, notifier, nil)
	return games, players, notifier
}
