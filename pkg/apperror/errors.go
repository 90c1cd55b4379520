package apperror

import "fmt"

// AppError is a structured error with a stable machine-readable code. The
// message is written for direct display to the person at the terminal, so
// amounts arrive preformatted.
type AppError struct {
	Code    string
	Message string
	Err     error // Wrapped internal error (not shown on screen)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ---- Account construction (ACC) ----

// ErrValidation marks a malformed account seed. Construction is the one
// place where failure is fatal: the engine must not exist with bad state.
func ErrValidation(message string) *AppError {
	return New("ACC_001", message)
}

// ---- Banking business rules (ATM) ----

func ErrInsufficientFunds(currentBalance string) *AppError {
	return New("ATM_001", "Insufficient balance. Current: "+currentBalance)
}

func ErrLimitExceeded(limit string) *AppError {
	return New("ATM_002", "Daily limit exceeded. Max: "+limit)
}

func ErrInvalidAmount() *AppError {
	return New("ATM_003", "Amount cannot be negative")
}

func ErrSameAccount() *AppError {
	return New("ATM_004", "Cannot transfer to same account")
}

func ErrInvalidInput(field string) *AppError {
	return New("ATM_005", field+" cannot be empty")
}
