// ABOUTME: DateValue domain model and the codec between user and site date formats
// ABOUTME: User dates are DD.MM.YYYY, the site addresses pages by YYYY-MM-DD

package domain

import (
	"time"

	coreerrors "ukazaniya-bot/core/errors"
)

const (
	// UserDateLayout is the format users type and see
	UserDateLayout = "02.01.2006"

	// SiteDateLayout is the format used in the site's URL path
	SiteDateLayout = "2006-01-02"
)

// DateValue is a calendar date without a time component
type DateValue struct {
	t time.Time
}

// NewDateValue builds a DateValue for the given calendar day
func NewDateValue(year int, month time.Month, day int) DateValue {
	return DateValue{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location
func DateOf(t time.Time) DateValue {
	return NewDateValue(t.Year(), t.Month(), t.Day())
}

// ParseUserDate parses strict DD.MM.YYYY text into a DateValue.
// Impossible calendar dates such as 31.02.2024 are rejected.
func ParseUserDate(text string) (DateValue, error) {
	t, err := time.Parse(UserDateLayout, text)
	if err != nil {
		return DateValue{}, coreerrors.InvalidDateFormat(text, err)
	}
	return DateValue{t: t}, nil
}

// FromSiteFormat is the inverse of ToSiteFormat. Input is expected to come
// from ToSiteFormat, so a malformed value yields the zero DateValue.
func FromSiteFormat(siteDate string) DateValue {
	t, _ := time.Parse(SiteDateLayout, siteDate)
	return DateValue{t: t}
}

// ToSiteFormat renders the date as used in the site's URL path
func (d DateValue) ToSiteFormat() string {
	return d.t.Format(SiteDateLayout)
}

// UserString renders the date in the user-facing format
func (d DateValue) UserString() string {
	return d.t.Format(UserDateLayout)
}

// String implements fmt.Stringer using the user-facing format
func (d DateValue) String() string {
	return d.UserString()
}

// IsZero reports whether the date is unset
func (d DateValue) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports whether both values denote the same calendar day
func (d DateValue) Equal(other DateValue) bool {
	return d.t.Equal(other.t)
}
