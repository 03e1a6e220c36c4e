package i18n

// Formatted entries use fmt verbs; callers pass the arguments in the order
// the placeholders appear.
var texts = map[string]map[string]string{
	LangRU: {
		"start": "🎁 Привет! Я — бот для *Тайного Санты*.\n\n" +
			"Добавьте меня в группу, и я помогу организовать игру с подарками, угадываниями и анонимностью.",
		"help": "📖 *Как играть*\n\n" +
			"1. Добавьте бота в группу\n" +
			"2. Назначьте его админом\n" +
			"3. Используйте /setup, чтобы выбрать тему и даты\n" +
			"4. Все участники автоматически зарегистрированы\n" +
			"5. Каждый пишет, что хочет в подарок (/mygift)\n" +
			"6. В день жеребьёвки — вы узнаете, кому дарите\n" +
			"7. Угадывайте, кто за каким ником — получайте очки!\n" +
			"8. В день раскрытия — финал: таблица, ачивки, смех\n\n" +
			"🔹 /setup — настроить игру\n" +
			"🔹 /mygift — указать желание\n" +
			"🔹 /santabingo — угадать личность\n" +
			"🔹 /leaderboard — таблица лидеров\n" +
			"🔹 /lang — сменить язык\n" +
			"🔹 /premium — премиум-ники\n" +
			"🔹 /donate — поддержать ⭐",
		"donate_thanks": "🙏 Спасибо за поддержку!\n\n" +
			"Вы можете отправить звёзды Telegram, чтобы помочь в развитии бота.",
		"setup_intro":         "🎨 Выберите тему игры:",
		"setup_prompt_draw":   "📅 Установите дату жеребьёвки (ДД.ММ.ГГГГ ЧЧ:ММ):",
		"setup_prompt_reveal": "📅 Установите дату раскрытия (когда покажем, кто за каким ником):",
		"draw_set":            "🎉 Жеребьёвка назначена на %s",
		"reveal_set":          "🎉 Дата раскрытия установлена на %s",
		"invalid_date":        "❌ Неверный формат. Пример: 25.12.2025 18:00",
		"draw_not_scheduled":  "❌ Сначала назначьте дату жеребьёвки.",
		"game_active":         "✅ Все участники зарегистрированы.",
		"gift_prompt":         "🎁 Напишите, что вы хотите получить:",
		"gift_saved":          "✅ Ваше желание сохранено!",
		"gift_too_short":      "❌ Желание слишком короткое. Напишите хотя бы пару слов.",
		"draw_done":           "🎉 Жеребьёвка завершена! Все получили своих 'подопечных'.",
		"draw_stalled":        "⏳ Жеребьёвка отложена: зарегистрировано %d из %d участников. Добавьте участников в группу.",
		"your_target":         "🎁 Вы дарите: %s",
		"target_wish":         "📝 Желание: %s",
		"final_intro":         "🎊 Игра завершена! Все личности раскрыты:\n\n",
		"ach_guess_master":    "Мастер Угадывания",
		"ach_party_legend":    "Легенда вечеринки",
		"leaderboard":         "🏆 Таблица лидеров:\n\n",
		"santabingo_intro":    "🔍 Кто скрывается за ником *%s*?\nВыберите реальное имя:",
		"guess_correct":       "✅ Правильно! +1 очко",
		"guess_wrong":         "❌ Неверно. Это был %s",
		"no_candidates":       "🤷 Пока некого угадывать — кроме вас никто не зарегистрирован.",
		"lang_changed":        "✅ Язык изменён на русский",
		"theme_selected":      "🎨 Тема установлена: %s",
		"theme_unknown":       "❌ Тема не установлена.",
		"premium_intro":       "✨ Разблокируйте премиум-ник за 50 звёзд Telegram!\nВыберите один:",
		"premium_title":       "Разблокировать ник",
		"premium_desc":        "Ник: %s",
		"nick_unlocked":       "🎉 Ник активирован: %s\n\n✨ Спасибо за поддержку! Ты сделал праздник ярче!",
		"premium_sold":        "🚫 Этот ник уже куплен другим участником.",
		"not_in_game":         "❌ Вы не участвуете в этой игре.",
		"donate_title":        "Поддержать бота",
		"donate_desc":         "Спасибо за поддержку!",
	},
	LangEN: {
		"start": "🎁 Hi! I'm a *Secret Santa* bot.\n\n" +
			"Add me to a group and I'll help organize gifts, guessing, and anonymity.",
		"help": "📖 *How to play*\n\n" +
			"1. Add bot to group\n" +
			"2. Make it admin\n" +
			"3. Use /setup to choose theme and dates\n" +
			"4. All members auto-registered\n" +
			"5. Each writes their gift wish (/mygift)\n" +
			"6. On draw day — you'll know who to gift\n" +
			"7. Guess who's behind nicks — earn points!\n" +
			"8. On reveal day — final: leaderboard, achievements, fun\n\n" +
			"🔹 /setup — configure game\n" +
			"🔹 /mygift — set wish\n" +
			"🔹 /santabingo — guess identity\n" +
			"🔹 /leaderboard — leaderboard\n" +
			"🔹 /lang — change language\n" +
			"🔹 /premium — premium nicks\n" +
			"🔹 /donate — support ⭐",
		"donate_thanks": "🙏 Thank you for your support!\n\n" +
			"You can send Telegram Stars to help develop the bot.",
		"setup_intro":         "🎨 Choose game theme:",
		"setup_prompt_draw":   "📅 Set draw date (DD.MM.YYYY HH:MM):",
		"setup_prompt_reveal": "📅 Set reveal date (when we show who was behind nicks):",
		"draw_set":            "🎉 Draw set to %s",
		"reveal_set":          "🎉 Reveal date set to %s",
		"invalid_date":        "❌ Invalid format. Example: 25.12.2025 18:00",
		"draw_not_scheduled":  "❌ Set the draw date first.",
		"game_active":         "✅ All members registered.",
		"gift_prompt":         "🎁 Write what you'd like to receive:",
		"gift_saved":          "✅ Your wish saved!",
		"gift_too_short":      "❌ That wish is too short. Give us at least a couple of words.",
		"draw_done":           "🎉 Draw completed! Everyone got their target.",
		"draw_stalled":        "⏳ Draw postponed: %d of %d players registered. Add more members to the group.",
		"your_target":         "🎁 You're gifting: %s",
		"target_wish":         "📝 Wish: %s",
		"final_intro":         "🎊 Game finished! All identities revealed:\n\n",
		"ach_guess_master":    "Guessing Master",
		"ach_party_legend":    "Party Legend",
		"leaderboard":         "🏆 Leaderboard:\n\n",
		"santabingo_intro":    "🔍 Who is behind *%s*?\nChoose real name:",
		"guess_correct":       "✅ Correct! +1 point",
		"guess_wrong":         "❌ Wrong. It was %s",
		"no_candidates":       "🤷 Nobody to guess yet — you're the only registered player.",
		"lang_changed":        "✅ Language changed to English",
		"theme_selected":      "🎨 Theme set: %s",
		"theme_unknown":       "❌ Theme is not set.",
		"premium_intro":       "✨ Unlock a premium nick for 50 Telegram Stars!\nChoose one:",
		"premium_title":       "Unlock nick",
		"premium_desc":        "Nick: %s",
		"nick_unlocked":       "🎉 Nick unlocked: %s\n\n✨ Thank you for support! You made the party brighter!",
		"premium_sold":        "🚫 This nick is already purchased by another player.",
		"not_in_game":         "❌ You are not part of this game.",
		"donate_title":        "Support the bot",
		"donate_desc":         "Thank you for your support!",
	},
}
