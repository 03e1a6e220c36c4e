package i18n

import (
	"secret-santa-bot/models"
)

// Theme labels with icons, shown on the /setup keyboard.
var themeLabels = map[string]map[string]string{
	LangRU: {
		models.ThemeChristmas: "🎄 Рождество",
		models.ThemeHalloween: "🎃 Хэллоуин",
		models.ThemeOffice:    "👔 Корпоратив",
	},
	LangEN: {
		models.ThemeChristmas: "🎄 Christmas",
		models.ThemeHalloween: "🎃 Halloween",
		models.ThemeOffice:    "👔 Office Party",
	},
}

// ThemeLabel returns the localized label for a theme key, or the key itself
// when no label exists.
func ThemeLabel(lang, theme string) string {
	if m, ok := themeLabels[lang]; ok {
		if s, ok := m[theme]; ok {
			return s
		}
	}
	if s, ok := themeLabels[LangRU][theme]; ok {
		return s
	}
	return theme
}

// AchievementName localizes an achievement code for display.
func AchievementName(lang, code string) string {
	switch code {
	case models.AchievementGuessMaster:
		return T(lang, "ach_guess_master")
	case models.AchievementPartyLegend:
		return T(lang, "ach_party_legend")
	}
	return code
}

// Premium nick catalogs per language and theme.
var premiumNicks = map[string]map[string][]string{
	LangRU: {
		models.ThemeChristmas: {
			"Санта", "Гринч", "Скрудж", "Снегурочка", "Баба Яга",
			"Снежная Королева", "Дед Мороз", "Олаф", "Эльза", "Анна",
			"Кай", "Ледяной Трон", "Метелица", "Дюймовочка", "Снежинка",
		},
		models.ThemeHalloween: {
			"Ведьма", "Призрак", "Вампир", "Оборотень", "Франкенштейн",
			"Зомби", "Мумия", "Пум-Бум", "Чёрная Кошка", "Джек-фонарь",
			"Смерть", "Ведьмин Кот", "Летучая Мышь", "Тёмный Рыцарь", "Привидение",
		},
		models.ThemeOffice: {
			"Дуайт", "Джим", "Майкл", "Принтер", "Скрепка",
			"Кофе", "Стол", "Стул", "Лампа", "Папка",
			"Бейдж", "Ручка", "Ноутбук", "Переговорка", "Задание",
		},
	},
	LangEN: {
		models.ThemeChristmas: {
			"Santa", "Grinch", "Scrooge", "Snegurochka", "Baba Yaga",
			"Snow Queen", "Father Frost", "Olaf", "Elsa", "Anna",
			"Kai", "Ice Throne", "Blitzen", "Rudolph", "Frosty",
		},
		models.ThemeHalloween: {
			"Witch", "Ghost", "Vampire", "Werewolf", "Frankenstein",
			"Zombie", "Mummy", "Pumpking", "Black Cat", "JackOlantern",
			"Reaper", "WitchCat", "Bat", "DarkKnight", "Phantom",
		},
		models.ThemeOffice: {
			"Dwight", "Jim", "Michael", "Printer", "Stapler",
			"Coffee", "Desk", "Chair", "Lamp", "Folder",
			"Badge", "Pen", "Laptop", "MeetingRoom", "Task",
		},
	},
}

// PremiumNicks returns the purchasable nick list for a language/theme pair,
// or nil when the theme has no catalog.
func PremiumNicks(lang, theme string) []string {
	m, ok := premiumNicks[lang]
	if !ok {
		m = premiumNicks[LangRU]
	}
	return m[theme]
}
