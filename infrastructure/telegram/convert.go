// ABOUTME: Conversions between Bot API types and domain events/controls

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ukazaniya-bot/core/domain"
)

const startCommand = "start"

// EventFromUpdate decodes an update into a domain event.
// It reports false for updates the bot does not react to.
func EventFromUpdate(update tgbotapi.Update) (domain.Event, bool) {
	if cq := update.CallbackQuery; cq != nil {
		event := domain.Event{
			Kind:       domain.EventButton,
			CallbackID: cq.ID,
			Payload:    cq.Data,
		}
		if cq.Message != nil {
			event.MessageID = cq.Message.MessageID
			if cq.Message.Chat != nil {
				event.ChatID = cq.Message.Chat.ID
			}
		}
		return event, true
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return domain.Event{}, false
	}

	event := domain.Event{
		ChatID:    msg.Chat.ID,
		MessageID: msg.MessageID,
	}

	switch {
	case msg.IsCommand() && msg.Command() == startCommand:
		event.Kind = domain.EventStart
	case msg.Text != "":
		event.Kind = domain.EventText
		event.Text = msg.Text
	default:
		event.Kind = domain.EventOther
	}

	return event, true
}

// InlineKeyboard converts control rows into an inline keyboard
func InlineKeyboard(controls [][]domain.Control) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(controls))

	for _, row := range controls {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, control := range row {
			if control.IsLink() {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(control.Label, control.URL))
			} else {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(control.Label, control.Action))
			}
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
