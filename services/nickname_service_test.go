package services

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"secret-santa-bot/models"

	"github.com/stretchr/testify/require"
)

var nickPattern = regexp.MustCompile(`\d{2}$`)

func TestMintUsesThemeVocabulary(t *testing.T) {
	s := NewNicknameService()
	for i := 0; i < 100; i++ {
		nick := s.Mint(models.ThemeHalloween)
		require.Regexp(t, nickPattern, nick)

		word := nick[:len(nick)-2]
		require.Contains(t, nickVocabulary[models.ThemeHalloween], word)
	}
}

func TestMintUnknownThemeFallsBack(t *testing.T) {
	s := NewNicknameService()
	nick := s.Mint("pirates")
	require.Regexp(t, nickPattern, nick)
	word := nick[:len(nick)-2]
	require.Contains(t, nickVocabulary[models.ThemeChristmas], word)
}

func TestMintUniqueAvoidsTaken(t *testing.T) {
	s := NewNicknameService()
	taken := map[string]bool{}
	for i := 0; i < 50; i++ {
		nick := s.MintUnique(models.ThemeChristmas, taken)
		require.False(t, taken[nick], "minted an already taken nick %q", nick)
		taken[nick] = true
	}
}

func TestMintUniqueTerminatesOnExhaustedVocabulary(t *testing.T) {
	s := NewNicknameService()

	// every plain combination is taken; only the counter fallback remains
	taken := map[string]bool{}
	for _, word := range nickVocabulary[models.ThemeChristmas] {
		for n := 1; n <= nickSuffixMax; n++ {
			taken[fmt.Sprintf("%s%02d", word, n)] = true
		}
	}

	nick := s.MintUnique(models.ThemeChristmas, taken)
	require.False(t, taken[nick])
	require.Contains(t, nick, "-", "expected the disambiguating counter suffix")
	require.True(t, strings.Count(nick, "-") >= 1)
}
