package services

import (
	"fmt"
	"testing"

	"secret-santa-bot/models"

	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	s := NewPlayerService(db, NewNicknameService())

	created, err := s.Register("chat1", "user1", "Alice Smith", models.ThemeChristmas)
	require.NoError(t, err)
	require.True(t, created)

	first, err := s.Player("chat1", "user1")
	require.NoError(t, err)

	require.NoError(t, s.AwardScore("chat1", "user1", 3))

	created, err = s.Register("chat1", "user1", "Somebody Else", models.ThemeChristmas)
	require.NoError(t, err)
	require.False(t, created)

	second, err := s.Player("chat1", "user1")
	require.NoError(t, err)
	require.Equal(t, first.Nick, second.Nick)
	require.Equal(t, "Alice Smith", second.FullName)
	require.Equal(t, 3, second.Score)
}

func TestRegisterKeepsNicksUniquePerChat(t *testing.T) {
	db := newTestDB(t)
	s := NewPlayerService(db, NewNicknameService())

	for i := 0; i < 40; i++ {
		_, err := s.Register("chat1", fmt.Sprintf("user%d", i), fmt.Sprintf("Player %d", i), models.ThemeHalloween)
		require.NoError(t, err)
	}

	players, err := s.Players("chat1")
	require.NoError(t, err)
	require.Len(t, players, 40)

	seen := map[string]bool{}
	for _, p := range players {
		require.False(t, seen[p.Nick], "duplicate nick %q", p.Nick)
		seen[p.Nick] = true
	}
}

func TestSetGiftValidation(t *testing.T) {
	db := newTestDB(t)
	s := NewPlayerService(db, NewNicknameService())

	_, err := s.Register("chat1", "user1", "Alice", models.ThemeChristmas)
	require.NoError(t, err)

	require.ErrorIs(t, s.SetGift("chat1", "user1", ""), ErrWishTooShort)
	require.ErrorIs(t, s.SetGift("chat1", "user1", "   "), ErrWishTooShort)
	require.ErrorIs(t, s.SetGift("chat1", "user1", "ab"), ErrWishTooShort)

	p, err := s.Player("chat1", "user1")
	require.NoError(t, err)
	require.Empty(t, p.Gift)

	require.NoError(t, s.SetGift("chat1", "user1", "warm socks"))
	require.NoError(t, s.SetGift("chat1", "user1", "a red bicycle"))

	p, err = s.Player("chat1", "user1")
	require.NoError(t, err)
	require.Equal(t, "a red bicycle", p.Gift)
}

func TestSetGiftUnregisteredUser(t *testing.T) {
	db := newTestDB(t)
	s := NewPlayerService(db, NewNicknameService())
	require.ErrorIs(t, s.SetGift("chat1", "ghost", "warm socks"), ErrNotRegistered)
}

func TestAwardScore(t *testing.T) {
	db := newTestDB(t)
	s := NewPlayerService(db, NewNicknameService())

	_, err := s.Register("chat1", "user1", "Alice", models.ThemeChristmas)
	require.NoError(t, err)

	require.NoError(t, s.AwardScore("chat1", "user1", 1))
	require.NoError(t, s.AwardScore("chat1", "user1", 1))
	require.Error(t, s.AwardScore("chat1", "user1", -1))

	p, err := s.Player("chat1", "user1")
	require.NoError(t, err)
	require.Equal(t, 2, p.Score)
}
