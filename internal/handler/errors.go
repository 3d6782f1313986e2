package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgBodyTooLarge          = "Request body too large"
	ErrMsgInvalidPlotID         = "Invalid plot ID"
	ErrMsgMissingSessionID      = "Missing session ID"

	// Parameter validation error messages
	ErrMsgInvalidLimit = "Invalid limit parameter"
	ErrMsgInvalidSince = "Invalid since parameter, expected RFC3339"

	// Farm operation error messages
	ErrMsgCreateSessionFailed = "Failed to create farm"
	ErrMsgGetEventsFailed     = "Failed to retrieve events"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgUnknownError           = "Unknown error"
	ErrMsgNotEnoughSunEnergy     = "Not enough sun energy"
	ErrMsgPlotStateConflict      = "Plot is not in the right state for that action"
	ErrMsgPlotNotFoundError      = "Plot not found"
	ErrMsgSessionNotFoundError   = "Farm session not found"
	ErrMsgInvalidAmountError     = "Invalid amount"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError       = "Server is temporarily unavailable. Please try again later."
	ErrMsgValidationFormatError  = "Invalid request format"
	ErrMsgValidationRequired     = "This field is required"
	ErrMsgValidationWeather      = "Invalid weather, expected sunny, rainy or snowy"
	ErrMsgValidationSeason       = "Invalid season, expected spring, summer, autumn or winter"
	ErrMsgValidationCropID       = "Crop id may only contain lowercase letters, digits and underscores"
	ErrMsgValidationMaxFmt       = "Must be at most %s characters"
	ErrMsgValidationInvalidValue = "Invalid value"
)

// Success messages for API responses
const (
	MsgSessionDeleted = "Farm session ended"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request body"
	LogMsgValidationFailed  = "Request failed validation"
	LogMsgOperationFailed   = "Farm operation failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgSessionCreated    = "Farm session created via API"
	LogMsgSessionDeletedAPI = "Farm session deleted via API"
)

// Log field keys
const (
	LogFieldOperation = "operation"
)
