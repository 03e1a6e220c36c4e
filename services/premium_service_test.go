package services

import (
	"testing"

	"secret-santa-bot/models"

	"github.com/stretchr/testify/require"
)

func newTestPremiumService(t *testing.T) (*PremiumService, *GameService, *PlayerService) {
	t.Helper()
	games, players, _ := newTestGameService(t)
	premium := NewPremiumService(games.DB, games)
	return premium, games, players
}

func TestCatalogKeysAreCallbackSafe(t *testing.T) {
	premium, games, _ := newTestPremiumService(t)
	require.NoError(t, games.SetTheme("chat1", models.ThemeChristmas, "ru"))

	catalog, err := premium.Catalog("chat1")
	require.NoError(t, err)
	require.NotEmpty(t, catalog)

	seen := map[string]bool{}
	for _, n := range catalog {
		require.NotEmpty(t, n.Key)
		require.False(t, seen[n.Key], "duplicate key %q", n.Key)
		seen[n.Key] = true
		for _, r := range n.Key {
			ok := r == '-' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z')
			require.True(t, ok, "key %q contains %q", n.Key, r)
		}
	}
}

func TestBeginPurchaseUnknownKey(t *testing.T) {
	premium, games, _ := newTestPremiumService(t)
	require.NoError(t, games.SetTheme("chat1", models.ThemeChristmas, "ru"))

	_, err := premium.BeginPurchase("chat1", "user1", "no-such-nick")
	require.ErrorIs(t, err, ErrUnknownNick)
}

func TestPurchaseFlow(t *testing.T) {
	premium, games, players := newTestPremiumService(t)
	require.NoError(t, games.SetTheme("chat1", models.ThemeChristmas, "ru"))
	_, err := players.Register("chat1", "user1", "Alice", models.ThemeChristmas)
	require.NoError(t, err)

	catalog, err := premium.Catalog("chat1")
	require.NoError(t, err)
	nick := catalog[0]

	purchase, err := premium.BeginPurchase("chat1", "user1", nick.Key)
	require.NoError(t, err)
	require.Equal(t, models.PurchasePending, purchase.Status)
	require.Equal(t, nick.Name, purchase.Nick)

	confirmed, err := premium.ConfirmPurchase(purchase.ID, "user1")
	require.NoError(t, err)
	require.Equal(t, models.PurchaseCompleted, confirmed.Status)

	p, err := players.Player("chat1", "user1")
	require.NoError(t, err)
	require.Equal(t, nick.Name, p.Nick)
	require.Equal(t, nick.Name, p.PremiumNick)
}

func TestPurchaseExclusivity(t *testing.T) {
	premium, games, players := newTestPremiumService(t)
	require.NoError(t, games.SetTheme("chat1", models.ThemeChristmas, "ru"))
	_, err := players.Register("chat1", "user1", "Alice", models.ThemeChristmas)
	require.NoError(t, err)
	_, err = players.Register("chat1", "user2", "Bob", models.ThemeChristmas)
	require.NoError(t, err)

	catalog, err := premium.Catalog("chat1")
	require.NoError(t, err)
	nick := catalog[0]

	// both invoices go out before either payment lands
	first, err := premium.BeginPurchase("chat1", "user1", nick.Key)
	require.NoError(t, err)
	second, err := premium.BeginPurchase("chat1", "user2", nick.Key)
	require.NoError(t, err)

	_, err = premium.ConfirmPurchase(first.ID, "user1")
	require.NoError(t, err)

	_, err = premium.ConfirmPurchase(second.ID, "user2")
	require.ErrorIs(t, err, ErrNickTaken)

	var rejected models.PremiumPurchase
	require.NoError(t, premium.DB.First(&rejected, "id = ?", second.ID).Error)
	require.Equal(t, models.PurchaseRejected, rejected.Status)

	// once sold, new invoices for the nick are refused up front
	_, err = premium.BeginPurchase("chat1", "user2", nick.Key)
	require.ErrorIs(t, err, ErrNickTaken)

	// a different chat is a different market
	require.NoError(t, games.SetTheme("chat2", models.ThemeChristmas, "ru"))
	_, err = players.Register("chat2", "user3", "Carol", models.ThemeChristmas)
	require.NoError(t, err)
	_, err = premium.BeginPurchase("chat2", "user3", nick.Key)
	require.NoError(t, err)
}

func TestConfirmPurchaseUnregisteredPayer(t *testing.T) {
	premium, games, players := newTestPremiumService(t)
	require.NoError(t, games.SetTheme("chat1", models.ThemeChristmas, "ru"))
	_, err := players.Register("chat1", "user1", "Alice", models.ThemeChristmas)
	require.NoError(t, err)

	catalog, err := premium.Catalog("chat1")
	require.NoError(t, err)

	purchase, err := premium.BeginPurchase("chat1", "ghost", catalog[0].Key)
	require.NoError(t, err)

	_, err = premium.ConfirmPurchase(purchase.ID, "ghost")
	require.ErrorIs(t, err, ErrNotRegistered)

	var rejected models.PremiumPurchase
	require.NoError(t, premium.DB.First(&rejected, "id = ?", purchase.ID).Error)
	require.Equal(t, models.PurchaseRejected, rejected.Status)
}

func TestConfirmPurchaseUnknownID(t *testing.T) {
	premium, _, _ := newTestPremiumService(t)
	_, err := premium.ConfirmPurchase("definitely-not-a-purchase", "user1")
	require.ErrorIs(t, err, ErrPurchaseNotFound)
}
