package bot

import (
	"context"
	"errors"
	"sync"

	"ukazaniya-bot/core/domain"
	coreerrors "ukazaniya-bot/core/errors"
	"github.com/stretchr/testify/mock"
)

type renderCall struct {
	rawDate string
	mode    domain.Mode
}

// fakeService parses dates for real and records every call
type fakeService struct {
	calls []renderCall
	err   error
}

func (f *fakeService) Render(ctx context.Context, rawDate string, mode domain.Mode) (*domain.RenderedMessage, error) {
	f.calls = append(f.calls, renderCall{rawDate: rawDate, mode: mode})
	if f.err != nil {
		return nil, f.err
	}
	date, err := domain.ParseUserDate(rawDate)
	if err != nil {
		return nil, err
	}
	return &domain.RenderedMessage{
		Text: "*Богослужебные указания " + date.UserString() + "*",
		Controls: [][]domain.Control{{
			{Label: "Короткие указания", Action: domain.ActionToken(domain.ModeShort, date.UserString())},
			{Label: "Полные указания", Action: domain.ActionToken(domain.ModeFull, date.UserString())},
		}},
		Date: date,
		Mode: mode,
	}, nil
}

type sentMessage struct {
	op        string
	chatID    int64
	messageID int
	text      string
	rendered  *domain.RenderedMessage
}

// fakeMessenger records deliveries and can be told to fail
type fakeMessenger struct {
	mu      sync.Mutex
	sent    []sentMessage
	acked   []string
	failOps map[string]bool
}

func (f *fakeMessenger) fail(op string) error {
	if f.failOps[op] {
		return coreerrors.Delivery(op, errors.New("Bad Request: chat not found"))
	}
	return nil
}

func (f *fakeMessenger) SendText(ctx context.Context, chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{op: "send_text", chatID: chatID, text: text})
	return f.fail("send_text")
}

func (f *fakeMessenger) SendRendered(ctx context.Context, chatID int64, msg *domain.RenderedMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{op: "send_rendered", chatID: chatID, text: msg.Text, rendered: msg})
	return f.fail("send_rendered")
}

func (f *fakeMessenger) EditRendered(ctx context.Context, chatID int64, messageID int, msg *domain.RenderedMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{op: "edit", chatID: chatID, messageID: messageID, text: msg.Text, rendered: msg})
	return f.fail("edit")
}

func (f *fakeMessenger) Acknowledge(ctx context.Context, callbackID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, callbackID)
	return f.fail("acknowledge")
}

// MockLogger is a mock implementation of the Logger interface
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}
