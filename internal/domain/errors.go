package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "invalid amount"

	// Plot errors
	ErrMsgInvalidPlotState = "invalid plot state"
	ErrMsgPlotNotFound     = "plot not found"

	// Crop errors
	ErrMsgUnknownCrop = "unknown crop"

	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	// Plot errors
	ErrInvalidPlotState = errors.New(ErrMsgInvalidPlotState)
	ErrPlotNotFound     = errors.New(ErrMsgPlotNotFound)

	// Crop errors
	ErrUnknownCrop = errors.New(ErrMsgUnknownCrop)

	// Session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
