// ABOUTME: Service interfaces for the instructions pipeline
// ABOUTME: Each stage sits behind a narrow interface so it can be tested and swapped alone

package interfaces

import (
	"context"

	"ukazaniya-bot/core/domain"
)

// PageFetcher retrieves the raw markup for one site date
type PageFetcher interface {
	// PageURL returns the address the page for siteDate is fetched from
	PageURL(siteDate string) string

	// Fetch performs a single request, without retries
	Fetch(ctx context.Context, siteDate string) (*domain.RawMarkup, error)
}

// ContentExtractor turns fetched markup into structured page content.
// It is the only component coupled to the site's DOM shape.
type ContentExtractor interface {
	Extract(raw *domain.RawMarkup) (*domain.Page, error)
}

// MessageRenderer joins extracted content into a size-bounded message with controls
type MessageRenderer interface {
	Render(req domain.RenderRequest, page *domain.Page, sourceURL string) *domain.RenderedMessage
}

// InstructionsService runs the whole pipeline for one date+mode request
type InstructionsService interface {
	Render(ctx context.Context, rawDate string, mode domain.Mode) (*domain.RenderedMessage, error)
}
