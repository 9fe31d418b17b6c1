// ABOUTME: Custom error types for the instructions pipeline and the messaging boundary
// ABOUTME: Classifies failures so callers can log the kind while treating them uniformly

package errors

import (
	"errors"
	"fmt"
)

// Kind identifies which pipeline stage failed
type Kind string

const (
	// KindInvalidDateFormat means the date text was not a real DD.MM.YYYY date
	KindInvalidDateFormat Kind = "invalid_date_format"

	// KindTransport means the remote page could not be fetched
	KindTransport Kind = "transport"

	// KindExtraction means the fetched markup did not have the expected structure
	KindExtraction Kind = "extraction"

	// KindDelivery means sending, editing or acknowledging at the messaging boundary failed
	KindDelivery Kind = "delivery"

	// KindUnknown is returned by KindOf for errors outside this taxonomy
	KindUnknown Kind = "unknown"
)

// PipelineError represents a failure of one request inside the content pipeline
type PipelineError struct {
	Kind Kind
	// Input is the raw date text or site date the stage was working on
	Input string
	Err   error
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s error for %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("%s error for %q: %v", e.Kind, e.Input, e.Err)
}

// Unwrap returns the underlying cause
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// DeliveryError represents a failed call to the messaging collaborator
type DeliveryError struct {
	// Op is the boundary operation, e.g. "send", "edit" or "ack"
	Op  string
	Err error
}

// Error implements the error interface
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// InvalidDateFormat builds a PipelineError for a malformed user date
func InvalidDateFormat(input string, err error) error {
	return &PipelineError{Kind: KindInvalidDateFormat, Input: input, Err: err}
}

// Transport builds a PipelineError for a failed page fetch
func Transport(siteDate string, err error) error {
	return &PipelineError{Kind: KindTransport, Input: siteDate, Err: err}
}

// Extraction builds a PipelineError for markup that does not match the page contract
func Extraction(siteDate string, err error) error {
	return &PipelineError{Kind: KindExtraction, Input: siteDate, Err: err}
}

// Delivery builds a DeliveryError for the given boundary operation
func Delivery(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DeliveryError{Op: op, Err: err}
}

// KindOf reports the kind of err, or KindUnknown when err is outside the taxonomy
func KindOf(err error) Kind {
	var pipelineErr *PipelineError
	if errors.As(err, &pipelineErr) {
		return pipelineErr.Kind
	}
	var deliveryErr *DeliveryError
	if errors.As(err, &deliveryErr) {
		return KindDelivery
	}
	return KindUnknown
}

// IsInvalidDateFormat checks if an error is an invalid date failure
func IsInvalidDateFormat(err error) bool {
	return KindOf(err) == KindInvalidDateFormat
}

// IsTransport checks if an error is a fetch failure
func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}

// IsExtraction checks if an error is an extraction failure
func IsExtraction(err error) bool {
	return KindOf(err) == KindExtraction
}

// IsDelivery checks if an error happened at the messaging boundary
func IsDelivery(err error) bool {
	return KindOf(err) == KindDelivery
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
