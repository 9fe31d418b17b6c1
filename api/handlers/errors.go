// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts pipeline errors to appropriate HTTP responses

package handlers

import (
	"ukazaniya-bot/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts pipeline errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch errors.KindOf(err) {
	case errors.KindInvalidDateFormat:
		return huma.Error400BadRequest("Date must be a real date in DD.MM.YYYY format", err)
	case errors.KindTransport:
		return huma.Error502BadGateway("Instructions page could not be fetched", err)
	case errors.KindExtraction:
		return huma.Error502BadGateway("Instructions page has an unexpected structure", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
