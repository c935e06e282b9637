package flow

import (
	"strconv"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/staybot/bot/session"
	"github.com/m3rciful/staybot/core/telegram/keyboard"
)

// Callback keys. Payloads are kept short: candidate indexes and fixed verbs,
// never free-form user text, to stay under Telegram's callback data limit.
const (
	cbSearchCmd = "search_cmd"
	cbCity      = "pick_city"
	cbPhotos    = "need_photos"
	cbMore      = "more_results"
	cbNewSearch = "new_search"
	cbEndSearch = "end_search"
	cbHistory   = "show_history"
)

const menuButtonText = "🔍 Menu"

func menuReplyKeyboard() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{menuButtonText})
}

func commandKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "💰 Cheapest", Unique: cbSearchCmd, Data: string(session.CommandLowPrice)},
		{Text: "💎 Most expensive", Unique: cbSearchCmd, Data: string(session.CommandHighPrice)},
		{Text: "🎯 Best deal", Unique: cbSearchCmd, Data: string(session.CommandBestDeal)},
		{Text: "🕘 History", Unique: cbHistory, Data: "open"},
	})
}

func cityKeyboard(locations []session.Location) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(locations))
	for i, loc := range locations {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   loc.Name,
			Unique: cbCity,
			Data:   strconv.Itoa(i),
		})
	}
	return keyboard.InlineButtons(buttons)
}

func photoChoiceKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "Yes", Unique: cbPhotos, Data: "yes"},
		{Text: "No", Unique: cbPhotos, Data: "no"},
	})
}

func continuationKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "➕ Show more", Unique: cbMore, Data: "go"},
		{Text: "🔁 New search", Unique: cbNewSearch, Data: "go"},
		{Text: "✅ Done", Unique: cbEndSearch, Data: "go"},
	})
}

func exhaustedKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🔁 New search", Unique: cbNewSearch, Data: "go"},
		{Text: "✅ Done", Unique: cbEndSearch, Data: "go"},
	})
}

func websiteKeyboard(url string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	btn := markup.URL(textWebsiteButton, url)
	markup.InlineKeyboard = [][]tele.InlineButton{{*btn.Inline()}}
	return markup
}
