package economy

// Formatted error messages
const (
	ErrMsgInsufficientFundsFmt = "%w: need %d, balance %d"
	ErrMsgNegativeAmountFmt    = "%w: %d is negative"
)

// DefaultStartingBalance is the sun energy a new farm starts with
const DefaultStartingBalance = 50
