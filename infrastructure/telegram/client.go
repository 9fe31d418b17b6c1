// ABOUTME: Telegram Bot API client: long-poll update loop and Messenger implementation
// ABOUTME: Outbound calls are paced by a token bucket shared by all chats

package telegram

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"ukazaniya-bot/core/domain"
	coreerrors "ukazaniya-bot/core/errors"
	"ukazaniya-bot/core/interfaces"
)

// Options configures the Telegram client
type Options struct {
	Token string

	// APIEndpoint is a format string taking the token and the method name,
	// defaults to tgbotapi.APIEndpoint
	APIEndpoint string

	// PollTimeout is the long-poll timeout in seconds
	PollTimeout int

	// SendRate is the maximum number of outbound calls per second
	SendRate float64
}

// Client implements interfaces.Messenger on top of the Bot API
type Client struct {
	api         *tgbotapi.BotAPI
	limiter     *rate.Limiter
	pollTimeout int
	deps        interfaces.Dependencies
	wg          sync.WaitGroup
}

// NewClient authenticates against the Bot API and returns a ready client
func NewClient(opts Options, deps interfaces.Dependencies) (*Client, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	endpoint := opts.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	pollTimeout := opts.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = 60
	}

	httpClient := &http.Client{
		Timeout: time.Duration(pollTimeout+15) * time.Second,
	}

	api, err := tgbotapi.NewBotAPIWithClient(opts.Token, endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}

	limit := rate.Inf
	if opts.SendRate > 0 {
		limit = rate.Limit(opts.SendRate)
	}

	c := &Client{
		api:         api,
		limiter:     rate.NewLimiter(limit, 1),
		pollTimeout: pollTimeout,
		deps:        deps,
	}

	c.logInfo("Authorized on telegram", map[string]interface{}{
		"username": api.Self.UserName,
	})

	return c, nil
}

// Run polls for updates and dispatches each one to handler on its own
// goroutine. It returns once ctx is canceled and in-flight handlers finish.
func (c *Client) Run(ctx context.Context, handler interfaces.EventHandler) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = c.pollTimeout

	updates := c.api.GetUpdatesChan(u)
	handlerCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			c.api.StopReceivingUpdates()
			c.wg.Wait()
			return nil
		case update, ok := <-updates:
			if !ok {
				c.wg.Wait()
				return nil
			}

			event, ok := EventFromUpdate(update)
			if !ok {
				continue
			}

			c.wg.Add(1)
			go func() {
				defer c.wg.Done()
				handler.Handle(handlerCtx, event)
			}()
		}
	}
}

// SendText sends a Markdown message without controls
func (c *Client) SendText(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true

	return c.send(ctx, "send", msg)
}

// SendRendered sends a rendered message with its controls
func (c *Client) SendRendered(ctx context.Context, chatID int64, rendered *domain.RenderedMessage) error {
	msg := tgbotapi.NewMessage(chatID, rendered.Text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true
	if len(rendered.Controls) > 0 {
		msg.ReplyMarkup = InlineKeyboard(rendered.Controls)
	}

	return c.send(ctx, "send", msg)
}

// EditRendered replaces the text and controls of an existing message
func (c *Client) EditRendered(ctx context.Context, chatID int64, messageID int, rendered *domain.RenderedMessage) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, rendered.Text, InlineKeyboard(rendered.Controls))
	edit.ParseMode = tgbotapi.ModeMarkdown
	edit.DisableWebPagePreview = true

	return c.send(ctx, "edit", edit)
}

// Acknowledge answers a button press with an empty notification
func (c *Client) Acknowledge(ctx context.Context, callbackID string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return coreerrors.Delivery("acknowledge", err)
	}

	if _, err := c.api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		return coreerrors.Delivery("acknowledge", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, op string, chattable tgbotapi.Chattable) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return coreerrors.Delivery(op, err)
	}

	if _, err := c.api.Send(chattable); err != nil {
		return coreerrors.Delivery(op, err)
	}
	return nil
}

func (c *Client) logInfo(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Info(msg, fields)
	}
}
