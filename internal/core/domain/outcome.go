package domain

import "atm-simulator/pkg/apperror"

// Outcome is the value returned by every mutating account operation.
// Business-rule rejections are data, not errors: callers branch on Success
// and show Message verbatim. Code carries the violated rule for callers
// that need to tell rejections apart programmatically.
type Outcome struct {
	Success bool
	Code    string
	Message string
}

// Accepted builds a successful outcome with a display message.
func Accepted(message string) Outcome {
	return Outcome{Success: true, Message: message}
}

// Rejected converts a business-rule error into a failed outcome.
func Rejected(err *apperror.AppError) Outcome {
	return Outcome{Success: false, Code: err.Code, Message: err.Message}
}
