// ABOUTME: Bot adapter turning chat events into instructions requests and replies
// ABOUTME: Every pipeline failure collapses into the same instructional message

package bot

import (
	"context"
	"fmt"
	"time"

	"ukazaniya-bot/core/domain"
	coreerrors "ukazaniya-bot/core/errors"
	"ukazaniya-bot/core/interfaces"
)

const (
	infoTemplate    = "*Для того, чтобы просмотреть Богослужебные указания, пожалуйста введите дату*\n\n_Формат даты для ввода -_ *ДД.ММ.ГГГГ*\n\nПример: %s"
	welcomeTemplate = "*Добро пожаловать!*\n\n%s"
)

// Adapter implements interfaces.EventHandler
type Adapter struct {
	service     interfaces.InstructionsService
	messenger   interfaces.Messenger
	defaultMode domain.Mode
	now         func() time.Time
	deps        interfaces.Dependencies
}

// NewAdapter creates a bot adapter. defaultMode is used for plain text dates.
func NewAdapter(
	service interfaces.InstructionsService,
	messenger interfaces.Messenger,
	defaultMode domain.Mode,
	deps interfaces.Dependencies,
) *Adapter {
	return &Adapter{
		service:     service,
		messenger:   messenger,
		defaultMode: defaultMode,
		now:         time.Now,
		deps:        deps,
	}
}

// SetClock replaces the clock used for the example date
func (a *Adapter) SetClock(now func() time.Time) {
	a.now = now
}

// InfoMessage returns the instructional message with today's date as the example
func (a *Adapter) InfoMessage() string {
	return fmt.Sprintf(infoTemplate, domain.DateOf(a.now()).UserString())
}

// Handle processes one inbound event. Failures are logged, never returned.
func (a *Adapter) Handle(ctx context.Context, event domain.Event) {
	switch event.Kind {
	case domain.EventStart:
		a.deliver("send", event, a.messenger.SendText(ctx, event.ChatID, fmt.Sprintf(welcomeTemplate, a.InfoMessage())))
	case domain.EventText:
		a.handleText(ctx, event)
	case domain.EventButton:
		a.handleButton(ctx, event)
	default:
		a.sendInfo(ctx, event)
	}
}

func (a *Adapter) handleText(ctx context.Context, event domain.Event) {
	msg, err := a.service.Render(ctx, event.Text, a.defaultMode)
	if err != nil {
		a.sendInfo(ctx, event)
		return
	}

	a.deliver("send", event, a.messenger.SendRendered(ctx, event.ChatID, msg))
}

// handleButton replays the request encoded in the pressed control and edits
// the message in place. The press is acknowledged whatever the outcome.
func (a *Adapter) handleButton(ctx context.Context, event domain.Event) {
	defer func() {
		a.deliver("acknowledge", event, a.messenger.Acknowledge(ctx, event.CallbackID))
	}()

	mode, rawDate := domain.DecodeActionToken(event.Payload)

	msg, err := a.service.Render(ctx, rawDate, mode)
	if err != nil {
		a.sendInfo(ctx, event)
		return
	}

	a.deliver("edit", event, a.messenger.EditRendered(ctx, event.ChatID, event.MessageID, msg))
}

func (a *Adapter) sendInfo(ctx context.Context, event domain.Event) {
	a.deliver("send", event, a.messenger.SendText(ctx, event.ChatID, a.InfoMessage()))
}

func (a *Adapter) deliver(op string, event domain.Event, err error) {
	if err == nil || a.deps.Logger == nil {
		return
	}

	if !coreerrors.IsDelivery(err) {
		err = coreerrors.Delivery(op, err)
	}

	a.deps.Logger.Warn("Delivery failed", map[string]interface{}{
		"op":      op,
		"chat_id": event.ChatID,
		"error":   err.Error(),
	})
}
