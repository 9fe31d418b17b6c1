// ABOUTME: Messaging boundary used by the bot adapter to talk to chat users
// ABOUTME: Implemented by the Telegram client, faked in tests

package interfaces

import (
	"context"

	"ukazaniya-bot/core/domain"
)

// Messenger delivers rendered output to a chat
type Messenger interface {
	// SendText sends a Markdown message without controls
	SendText(ctx context.Context, chatID int64, text string) error

	// SendRendered sends a rendered message with its inline controls
	SendRendered(ctx context.Context, chatID int64, msg *domain.RenderedMessage) error

	// EditRendered replaces the text and controls of a previously sent message
	EditRendered(ctx context.Context, chatID int64, messageID int, msg *domain.RenderedMessage) error

	// Acknowledge answers a button press so the client stops its spinner
	Acknowledge(ctx context.Context, callbackID string) error
}

// EventHandler consumes inbound chat events
type EventHandler interface {
	Handle(ctx context.Context, event domain.Event)
}
