package i18n

import (
	"testing"

	"secret-santa-bot/models"

	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	cases := map[string]string{
		"en":    LangEN,
		"en-US": LangEN,
		"en-GB": LangEN,
		"ru":    LangRU,
		"ru-RU": LangRU,
		"de":    LangRU,
		"uk":    LangRU,
		"":      LangRU,
	}
	for code, want := range cases {
		require.Equal(t, want, Match(code), "language_code %q", code)
	}
}

func TestTFallsBackToRussian(t *testing.T) {
	require.NotEmpty(t, T(LangEN, "start"))
	require.NotEqual(t, T(LangEN, "start"), T(LangRU, "start"))

	// unknown language falls back to the Russian table
	require.Equal(t, T(LangRU, "start"), T("de", "start"))

	// missing keys resolve the same way for every language
	require.Equal(t, T(LangRU, "no_such_key"), T(LangEN, "no_such_key"))
}

func TestTextTablesMirrorEachOther(t *testing.T) {
	ru := texts[LangRU]
	en := texts[LangEN]
	require.Equal(t, len(ru), len(en))
	for key := range ru {
		require.Contains(t, en, key, "key %q missing from the English table", key)
	}
}

func TestThemeLabel(t *testing.T) {
	require.Equal(t, "🎄 Christmas", ThemeLabel(LangEN, models.ThemeChristmas))
	require.Equal(t, "🎃 Хэллоуин", ThemeLabel(LangRU, models.ThemeHalloween))
	require.Equal(t, ThemeLabel(LangRU, models.ThemeOffice), ThemeLabel("de", models.ThemeOffice))
	require.Equal(t, "pirates", ThemeLabel(LangEN, "pirates"))
}

func TestAchievementName(t *testing.T) {
	require.Equal(t, T(LangEN, "ach_guess_master"), AchievementName(LangEN, models.AchievementGuessMaster))
	require.Equal(t, T(LangRU, "ach_party_legend"), AchievementName(LangRU, models.AchievementPartyLegend))
	require.Equal(t, "mystery_code", AchievementName(LangEN, "mystery_code"))
}

func TestPremiumNicksCoverage(t *testing.T) {
	for _, lang := range []string{LangRU, LangEN} {
		for _, theme := range []string{models.ThemeChristmas, models.ThemeHalloween, models.ThemeOffice} {
			require.Len(t, PremiumNicks(lang, theme), 15, "%s/%s", lang, theme)
		}
	}
	require.Nil(t, PremiumNicks(LangEN, "pirates"))
	// unknown language serves the Russian catalog
	require.Equal(t, PremiumNicks(LangRU, models.ThemeChristmas), PremiumNicks("de", models.ThemeChristmas))
}
