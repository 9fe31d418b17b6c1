// ABOUTME: Page fetcher retrieves the instructions page for one site date
// ABOUTME: One attempt, no retries; the HTTP status decides success

package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ukazaniya-bot/core/domain"
	coreerrors "ukazaniya-bot/core/errors"
	"ukazaniya-bot/core/interfaces"
)

// Fetcher implements interfaces.PageFetcher over an HTTPClient
type Fetcher struct {
	baseURL string
	deps    interfaces.Dependencies
}

// NewFetcher creates a fetcher for pages under baseURL
func NewFetcher(baseURL string, deps interfaces.Dependencies) *Fetcher {
	return &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		deps:    deps,
	}
}

// PageURL returns {baseURL}/{siteDate}
func (f *Fetcher) PageURL(siteDate string) string {
	return f.baseURL + "/" + siteDate
}

// Fetch retrieves the page for siteDate.
//
// The status code is the ground truth: anything but 200 fails with a
// transport error, while an error reported next to a 200 response is logged
// and the body read so far is used. The request is detached from caller
// cancellation; only the client's own timeout bounds it.
func (f *Fetcher) Fetch(ctx context.Context, siteDate string) (*domain.RawMarkup, error) {
	if f.deps.HTTPClient == nil {
		return nil, coreerrors.Transport(siteDate, fmt.Errorf("HTTP client not configured"))
	}

	pageURL := f.PageURL(siteDate)

	resp, err := f.deps.HTTPClient.Get(context.WithoutCancel(ctx), pageURL)

	status := 0
	if resp != nil {
		status = resp.StatusCode()
		defer resp.Body().Close()
	}

	if status != http.StatusOK {
		if err == nil {
			err = fmt.Errorf("unexpected status %d", status)
		}
		return nil, coreerrors.Transport(siteDate, err)
	}

	if err != nil {
		f.logDebug("Ignoring transport error on successful response", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
	}

	body, readErr := io.ReadAll(resp.Body())
	if readErr != nil {
		f.logDebug("Partial body read on successful response", map[string]interface{}{
			"url":   pageURL,
			"error": readErr.Error(),
		})
	}

	return &domain.RawMarkup{
		URL:  pageURL,
		Body: body,
	}, nil
}

func (f *Fetcher) logDebug(msg string, fields map[string]interface{}) {
	if f.deps.Logger != nil {
		f.deps.Logger.Debug(msg, fields)
	}
}
