package services

import (
	"fmt"
	"math/rand"

	"secret-santa-bot/models"
)

// Theme-flavored nickname vocabularies. The christmas list doubles as the
// fallback for unknown themes.
var nickVocabulary = map[string][]string{
	models.ThemeChristmas: {
		"Санта", "Эльф", "Мороз", "Подарок", "Новогодик", "Снежок",
		"Frost", "Gift", "Jingle",
	},
	models.ThemeHalloween: {
		"Призрак", "Тыковка", "Скелетик", "Паучок", "Мистер Бу",
		"Ghoul", "Pumpkin", "Spooky",
	},
	models.ThemeOffice: {
		"Стажёр", "Курьер", "Бухгалтер", "Степлер", "Дедлайн",
		"Intern", "Memo", "Printer",
	},
}

const (
	nickSuffixMax = 20
	mintAttempts  = 10
)

// NicknameService mints theme-flavored pseudonyms. Generation is pure;
// uniqueness within a game is the caller's job (PlayerService.Register).
type NicknameService struct{}

func NewNicknameService() *NicknameService {
	return &NicknameService{}
}

// Mint produces a random nickname for the theme: a vocabulary word plus a
// zero-padded suffix in [01..20]. Unknown themes use the christmas list.
func (s *NicknameService) Mint(theme string) string {
	words, ok := nickVocabulary[theme]
	if !ok {
		words = nickVocabulary[models.ThemeChristmas]
	}
	return fmt.Sprintf("%s%02d", words[rand.Intn(len(words))], 1+rand.Intn(nickSuffixMax))
}

// MintUnique mints until the nickname is not in taken, giving up on random
// attempts after a fixed budget and switching to a counter suffix. The
// counter guarantees termination even when the vocabulary is smaller than
// the player count.
func (s *NicknameService) MintUnique(theme string, taken map[string]bool) string {
	for i := 0; i < mintAttempts; i++ {
		nick := s.Mint(theme)
		if !taken[nick] {
			return nick
		}
	}
	base := s.Mint(theme)
	for i := 2; ; i++ {
		nick := fmt.Sprintf("%s-%d", base, i)
		if !taken[nick] {
			return nick
		}
	}
}
