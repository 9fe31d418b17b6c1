// ABOUTME: Inbound chat events decoded from the messaging transport
// ABOUTME: The bot adapter dispatches on Kind without knowing the transport

package domain

// EventKind classifies an inbound interaction
type EventKind int

const (
	// EventOther is any message without usable text (stickers, photos, ...)
	EventOther EventKind = iota

	// EventStart is the /start command
	EventStart

	// EventText is a plain text message, expected to hold a date
	EventText

	// EventButton is a press on one of the inline toggle controls
	EventButton
)

// Event is one inbound interaction from a chat
type Event struct {
	Kind EventKind

	ChatID int64

	// MessageID is the message the event refers to; for buttons it is the
	// message carrying the pressed control
	MessageID int

	// Text is the message text for EventText
	Text string

	// CallbackID identifies a button press so it can be acknowledged
	CallbackID string

	// Payload is the action token carried by a pressed button
	Payload string
}
