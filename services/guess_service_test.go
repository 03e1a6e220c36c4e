package services

import (
	"fmt"
	"testing"

	"secret-santa-bot/models"

	"github.com/stretchr/testify/require"
)

func newTestGuessService(t *testing.T) (*GuessService, *PlayerService) {
	t.Helper()
	db := newTestDB(t)
	players := NewPlayerService(db, NewNicknameService())
	return NewGuessService(players), players
}

func TestPickChallengeExcludesAsker(t *testing.T) {
	guesses, players := newTestGuessService(t)

	for i := 0; i < 4; i++ {
		_, err := players.Register("chat1", fmt.Sprintf("user%d", i), fmt.Sprintf("Player %d", i), models.ThemeChristmas)
		require.NoError(t, err)
	}

	for round := 0; round < 30; round++ {
		ch, err := guesses.PickChallenge("chat1", "user0")
		require.NoError(t, err)
		require.NotEqual(t, "user0", ch.HiddenUserID)
	}
}

func TestPickChallengeNoCandidates(t *testing.T) {
	guesses, players := newTestGuessService(t)

	_, err := guesses.PickChallenge("chat1", "user0")
	require.ErrorIs(t, err, ErrNoCandidates)

	_, err = players.Register("chat1", "user0", "Alone", models.ThemeChristmas)
	require.NoError(t, err)

	_, err = guesses.PickChallenge("chat1", "user0")
	require.ErrorIs(t, err, ErrNoCandidates)
}

func TestPickChallengeOffersFullRoster(t *testing.T) {
	guesses, players := newTestGuessService(t)

	for i := 0; i < 5; i++ {
		_, err := players.Register("chat1", fmt.Sprintf("user%d", i), fmt.Sprintf("Player %d", i), models.ThemeOffice)
		require.NoError(t, err)
	}

	ch, err := guesses.PickChallenge("chat1", "user0")
	require.NoError(t, err)
	require.Len(t, ch.Candidates, 5)

	byID := map[string]string{}
	for _, c := range ch.Candidates {
		byID[c.UserID] = c.Nick
	}
	require.Len(t, byID, 5)
	// the hidden player's own nick must be among the options
	require.Equal(t, ch.HiddenNick, byID[ch.HiddenUserID])
}

func TestScoreGuessCorrect(t *testing.T) {
	guesses, players := newTestGuessService(t)

	_, err := players.Register("chat1", "asker", "Asker", models.ThemeChristmas)
	require.NoError(t, err)
	_, err = players.Register("chat1", "hidden", "Hidden Person", models.ThemeChristmas)
	require.NoError(t, err)

	res, err := guesses.ScoreGuess("chat1", "hidden", "hidden", "asker")
	require.NoError(t, err)
	require.True(t, res.Correct)
	require.Empty(t, res.HiddenFullName)

	asker, err := players.Player("chat1", "asker")
	require.NoError(t, err)
	require.Equal(t, 1, asker.Score)

	hidden, err := players.Player("chat1", "hidden")
	require.NoError(t, err)
	require.Equal(t, 0, hidden.Score)
}

func TestScoreGuessWrongRevealsName(t *testing.T) {
	guesses, players := newTestGuessService(t)

	_, err := players.Register("chat1", "asker", "Asker", models.ThemeChristmas)
	require.NoError(t, err)
	_, err = players.Register("chat1", "hidden", "Hidden Person", models.ThemeChristmas)
	require.NoError(t, err)
	_, err = players.Register("chat1", "other", "Other", models.ThemeChristmas)
	require.NoError(t, err)

	res, err := guesses.ScoreGuess("chat1", "hidden", "other", "asker")
	require.NoError(t, err)
	require.False(t, res.Correct)
	require.Equal(t, "Hidden Person", res.HiddenFullName)

	asker, err := players.Player("chat1", "asker")
	require.NoError(t, err)
	require.Equal(t, 0, asker.Score)
}

func TestScoreGuessHiddenPlayerGone(t *testing.T) {
	guesses, players := newTestGuessService(t)

	_, err := players.Register("chat1", "asker", "Asker", models.ThemeChristmas)
	require.NoError(t, err)

	res, err := guesses.ScoreGuess("chat1", "vanished", "asker", "asker")
	require.NoError(t, err)
	require.False(t, res.Correct)
	require.Equal(t, "Unknown", res.HiddenFullName)
}
