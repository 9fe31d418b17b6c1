// ABOUTME: Instructions service runs one date+mode request through the pipeline
// ABOUTME: Validate, fetch, extract, render; every failure is logged with its kind

package instructions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ukazaniya-bot/core/domain"
	coreerrors "ukazaniya-bot/core/errors"
	"ukazaniya-bot/core/interfaces"
)

// Service coordinates the instructions pipeline for a single request.
// It keeps no state between requests.
type Service struct {
	fetcher   interfaces.PageFetcher
	extractor interfaces.ContentExtractor
	renderer  interfaces.MessageRenderer
	deps      interfaces.Dependencies
}

// NewService creates a new instructions service
func NewService(
	fetcher interfaces.PageFetcher,
	extractor interfaces.ContentExtractor,
	renderer interfaces.MessageRenderer,
	deps interfaces.Dependencies,
) *Service {
	return &Service{
		fetcher:   fetcher,
		extractor: extractor,
		renderer:  renderer,
		deps:      deps,
	}
}

// Render turns a user-supplied date and mode into a rendered message.
// The returned error is a *coreerrors.PipelineError; callers are expected to
// treat every kind the same way.
func (s *Service) Render(ctx context.Context, rawDate string, mode domain.Mode) (*domain.RenderedMessage, error) {
	requestID := uuid.New().String()
	start := time.Now()

	date, err := domain.ParseUserDate(rawDate)
	if err != nil {
		return nil, s.fail(requestID, rawDate, mode, err)
	}

	req := domain.RenderRequest{Date: date, Mode: mode}
	siteDate := date.ToSiteFormat()

	raw, err := s.fetcher.Fetch(ctx, siteDate)
	if err != nil {
		if coreerrors.KindOf(err) == coreerrors.KindUnknown {
			err = coreerrors.Transport(siteDate, err)
		}
		return nil, s.fail(requestID, rawDate, mode, err)
	}

	page, err := s.extractor.Extract(raw)
	if err != nil {
		if coreerrors.KindOf(err) == coreerrors.KindUnknown {
			err = coreerrors.Extraction(siteDate, err)
		}
		return nil, s.fail(requestID, rawDate, mode, err)
	}

	sourceURL := raw.URL
	if sourceURL == "" {
		sourceURL = s.fetcher.PageURL(siteDate)
	}

	msg := s.renderer.Render(req, page, sourceURL)

	s.logInfo("Rendered instructions", map[string]interface{}{
		"request_id":  requestID,
		"date":        date.UserString(),
		"mode":        mode.String(),
		"items":       len(page.Items),
		"text_bytes":  len(msg.Text),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return msg, nil
}

func (s *Service) fail(requestID, rawDate string, mode domain.Mode, err error) error {
	fields := map[string]interface{}{
		"request_id": requestID,
		"input":      rawDate,
		"mode":       mode.String(),
		"kind":       string(coreerrors.KindOf(err)),
		"error":      err.Error(),
	}

	if coreerrors.IsInvalidDateFormat(err) {
		s.logDebug("Instructions request rejected", fields)
	} else {
		s.logWarn("Instructions request failed", fields)
	}

	return err
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
