package ports

//go:generate mockgen -source=services.go -destination=mocks/services_mocks.go -package=mocks

import (
	"atm-simulator/internal/core/domain"

	"github.com/shopspring/decimal"
)

// AccountOperations is the banking surface the presentation shell drives.
// The shell parses raw input into these calls and renders what comes back;
// every business rule lives behind this interface.
type AccountOperations interface {
	// ValidatePIN checks the entered PIN against the stored one. Repeated
	// failures block the account for the rest of the process lifetime;
	// attempts on a blocked account always return false.
	ValidatePIN(entered string) bool

	Withdraw(amount decimal.Decimal) domain.Outcome
	Deposit(amount decimal.Decimal) domain.Outcome
	Transfer(amount decimal.Decimal, targetAccount string) domain.Outcome

	// ChangePIN swaps the stored PIN. It returns false, mutating nothing,
	// when the old PIN is wrong or the new PIN is not 4 digits.
	ChangePIN(oldPIN, newPIN string) bool

	Balance() decimal.Decimal
	// History returns the chronological transaction history as a copy the
	// caller may not mutate engine state through.
	History() []domain.Transaction
	AccountNumber() string
	HolderName() string
	Blocked() bool
	FailedAttempts() int
	AttemptsLeft() int
}

// AuditSink receives one event per significant account action. Recording
// is best-effort: implementations swallow their own failures and never
// push an error back into the banking operation that emitted the event.
type AuditSink interface {
	Record(event domain.AuditEvent)
}
