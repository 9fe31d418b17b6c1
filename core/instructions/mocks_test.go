package instructions

import (
	"context"

	"ukazaniya-bot/core/domain"
	"github.com/stretchr/testify/mock"
)

// mockFetcher is a mock implementation of the PageFetcher interface
type mockFetcher struct {
	fetchCalls int
	fetchFunc  func(ctx context.Context, siteDate string) (*domain.RawMarkup, error)
}

func (m *mockFetcher) PageURL(siteDate string) string {
	return "http://www.patriarchia.ru/bu/" + siteDate
}

func (m *mockFetcher) Fetch(ctx context.Context, siteDate string) (*domain.RawMarkup, error) {
	m.fetchCalls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, siteDate)
	}
	return &domain.RawMarkup{URL: m.PageURL(siteDate)}, nil
}

// mockExtractor is a mock implementation of the ContentExtractor interface
type mockExtractor struct {
	extractFunc func(raw *domain.RawMarkup) (*domain.Page, error)
}

func (m *mockExtractor) Extract(raw *domain.RawMarkup) (*domain.Page, error) {
	if m.extractFunc != nil {
		return m.extractFunc(raw)
	}
	return &domain.Page{Title: "Title"}, nil
}

// mockRenderer is a mock implementation of the MessageRenderer interface
type mockRenderer struct {
	lastRequest   domain.RenderRequest
	lastSourceURL string
}

func (m *mockRenderer) Render(req domain.RenderRequest, page *domain.Page, sourceURL string) *domain.RenderedMessage {
	m.lastRequest = req
	m.lastSourceURL = sourceURL
	return &domain.RenderedMessage{
		Text:      page.Title,
		Date:      req.Date,
		Mode:      req.Mode,
		SourceURL: sourceURL,
	}
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
