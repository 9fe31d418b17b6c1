package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	"ukazaniya-bot/core/domain"
	coreerrors "ukazaniya-bot/core/errors"
	"ukazaniya-bot/core/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const expectedInfo = "*Для того, чтобы просмотреть Богослужебные указания, пожалуйста введите дату*\n\n" +
	"_Формат даты для ввода -_ *ДД.ММ.ГГГГ*\n\nПример: 07.01.2025"

func newTestAdapter(svc *fakeService, m *fakeMessenger, mode domain.Mode) *Adapter {
	a := NewAdapter(svc, m, mode, interfaces.Dependencies{})
	a.SetClock(func() time.Time {
		return time.Date(2025, time.January, 7, 9, 30, 0, 0, time.UTC)
	})
	return a
}

func TestAdapter_Start(t *testing.T) {
	svc := &fakeService{}
	m := &fakeMessenger{}

	newTestAdapter(svc, m, domain.ModeShort).Handle(context.Background(), domain.Event{Kind: domain.EventStart, ChatID: 42})

	require.Len(t, m.sent, 1)
	assert.Equal(t, "send_text", m.sent[0].op)
	assert.Equal(t, int64(42), m.sent[0].chatID)
	assert.Equal(t, "*Добро пожаловать!*\n\n"+expectedInfo, m.sent[0].text)
	assert.Empty(t, svc.calls)
}

func TestAdapter_InfoMessageUsesCurrentDate(t *testing.T) {
	a := newTestAdapter(&fakeService{}, &fakeMessenger{}, domain.ModeShort)
	assert.Equal(t, expectedInfo, a.InfoMessage())

	a.SetClock(func() time.Time { return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC) })
	assert.Contains(t, a.InfoMessage(), "Пример: 01.03.2025")
}

func TestAdapter_TextUsesDefaultMode(t *testing.T) {
	tests := []struct {
		name string
		mode domain.Mode
	}{
		{"short default", domain.ModeShort},
		{"full default", domain.ModeFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			m := &fakeMessenger{}

			newTestAdapter(svc, m, tt.mode).Handle(context.Background(), domain.Event{
				Kind: domain.EventText, ChatID: 1, Text: "05.01.2025",
			})

			require.Len(t, svc.calls, 1)
			assert.Equal(t, renderCall{rawDate: "05.01.2025", mode: tt.mode}, svc.calls[0])
			require.Len(t, m.sent, 1)
			assert.Equal(t, "send_rendered", m.sent[0].op)
		})
	}
}

func TestAdapter_TextFailureSendsInfo(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{"not a date", "привет", nil},
		{"impossible date", "31.02.2024", nil},
		{"transport failure", "05.01.2025", coreerrors.Transport("2025-01-05", errors.New("unexpected status 404"))},
		{"extraction failure", "05.01.2025", coreerrors.Extraction("2025-01-05", errors.New("main section not found"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			m := &fakeMessenger{}

			newTestAdapter(svc, m, domain.ModeShort).Handle(context.Background(), domain.Event{
				Kind: domain.EventText, ChatID: 1, Text: tt.text,
			})

			require.Len(t, m.sent, 1)
			assert.Equal(t, "send_text", m.sent[0].op)
			assert.Equal(t, expectedInfo, m.sent[0].text)
		})
	}
}

func TestAdapter_NonTextSendsInfo(t *testing.T) {
	svc := &fakeService{}
	m := &fakeMessenger{}

	newTestAdapter(svc, m, domain.ModeShort).Handle(context.Background(), domain.Event{Kind: domain.EventOther, ChatID: 3})

	require.Len(t, m.sent, 1)
	assert.Equal(t, expectedInfo, m.sent[0].text)
	assert.Empty(t, svc.calls)
}

func TestAdapter_ButtonEditsAndAcknowledges(t *testing.T) {
	svc := &fakeService{}
	m := &fakeMessenger{}

	newTestAdapter(svc, m, domain.ModeShort).Handle(context.Background(), domain.Event{
		Kind: domain.EventButton, ChatID: 5, MessageID: 77, CallbackID: "cb-1", Payload: "full_05.01.2025",
	})

	require.Len(t, svc.calls, 1)
	assert.Equal(t, renderCall{rawDate: "05.01.2025", mode: domain.ModeFull}, svc.calls[0])

	require.Len(t, m.sent, 1)
	assert.Equal(t, "edit", m.sent[0].op)
	assert.Equal(t, 77, m.sent[0].messageID)
	assert.Equal(t, []string{"cb-1"}, m.acked)
}

func TestAdapter_ButtonFailureSendsInfoAndAcknowledges(t *testing.T) {
	svc := &fakeService{}
	m := &fakeMessenger{}

	newTestAdapter(svc, m, domain.ModeShort).Handle(context.Background(), domain.Event{
		Kind: domain.EventButton, ChatID: 5, MessageID: 77, CallbackID: "cb-2", Payload: "full_garbage",
	})

	require.Len(t, m.sent, 1)
	assert.Equal(t, "send_text", m.sent[0].op)
	assert.Equal(t, expectedInfo, m.sent[0].text)
	assert.Equal(t, []string{"cb-2"}, m.acked)
}

func TestAdapter_ButtonReplaysTextRequest(t *testing.T) {
	svc := &fakeService{}
	m := &fakeMessenger{}
	a := newTestAdapter(svc, m, domain.ModeShort)

	a.Handle(context.Background(), domain.Event{Kind: domain.EventText, ChatID: 9, Text: "05.01.2025"})
	require.Len(t, m.sent, 1)
	fullToggle := m.sent[0].rendered.Controls[0][1]

	a.Handle(context.Background(), domain.Event{
		Kind: domain.EventButton, ChatID: 9, MessageID: 100, CallbackID: "a", Payload: fullToggle.Action,
	})
	a.Handle(context.Background(), domain.Event{
		Kind: domain.EventButton, ChatID: 9, MessageID: 100, CallbackID: "b", Payload: "full_05.01.2025",
	})

	require.Len(t, svc.calls, 3)
	assert.Equal(t, renderCall{rawDate: "05.01.2025", mode: domain.ModeFull}, svc.calls[1])
	assert.Equal(t, svc.calls[1], svc.calls[2])
	assert.Equal(t, m.sent[1].rendered, m.sent[2].rendered)
}

func TestAdapter_DeliveryErrorsAreLoggedOnly(t *testing.T) {
	svc := &fakeService{}
	m := &fakeMessenger{failOps: map[string]bool{"edit": true, "acknowledge": true}}
	logger := &MockLogger{}
	logger.On("Warn", "Delivery failed", mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["op"] == "edit"
	})).Return().Once()
	logger.On("Warn", "Delivery failed", mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["op"] == "acknowledge"
	})).Return().Once()

	a := NewAdapter(svc, m, domain.ModeShort, interfaces.Dependencies{Logger: logger})

	assert.NotPanics(t, func() {
		a.Handle(context.Background(), domain.Event{
			Kind: domain.EventButton, ChatID: 1, MessageID: 2, CallbackID: "c", Payload: "short_05.01.2025",
		})
	})

	assert.Len(t, m.sent, 1)
	logger.AssertExpectations(t)
}
