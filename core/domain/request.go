// ABOUTME: RenderRequest domain model and the action token codec used by inline buttons
// ABOUTME: A token like "full_05.01.2025" carries the whole request, nothing is kept server side

package domain

import "strings"

// Mode selects between the short and the full rendering of a date
type Mode int

const (
	// ModeShort omits the commentary paragraphs
	ModeShort Mode = iota

	// ModeFull adds as many commentary paragraphs as fit under the size ceiling
	ModeFull
)

const (
	shortToken = "short"
	fullToken  = "full"

	tokenSeparator = "_"
)

// String returns the token used for the mode inside action payloads
func (m Mode) String() string {
	if m == ModeFull {
		return fullToken
	}
	return shortToken
}

// ParseMode maps a mode token to a Mode. Only "full" selects ModeFull,
// anything else falls back to ModeShort.
func ParseMode(token string) Mode {
	if token == fullToken {
		return ModeFull
	}
	return ModeShort
}

// RenderRequest is one date+mode request, built once per interaction
type RenderRequest struct {
	Date DateValue
	Mode Mode
}

// ActionToken encodes mode and user date as a button payload
func ActionToken(mode Mode, userDate string) string {
	return mode.String() + tokenSeparator + userDate
}

// DecodeActionToken splits a button payload into mode and raw user date.
// The date is returned unvalidated; validation happens in the pipeline.
func DecodeActionToken(payload string) (Mode, string) {
	modeToken, rawDate, _ := strings.Cut(payload, tokenSeparator)
	return ParseMode(modeToken), rawDate
}
