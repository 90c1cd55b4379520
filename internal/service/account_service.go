package service

import (
	"fmt"
	"regexp"
	"strings"

	"atm-simulator/internal/core/domain"
	"atm-simulator/internal/core/ports"
	"atm-simulator/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	pinPattern     = regexp.MustCompile(`^\d{4}$`)
	accountPattern = regexp.MustCompile(`^ACC\d{9}$`)
)

// Limits bound single transactions and the PIN lockout threshold.
type Limits struct {
	MaxWithdrawal     decimal.Decimal
	MaxDeposit        decimal.Decimal
	MaxTransfer       decimal.Decimal
	MaxFailedAttempts int
}

// DefaultLimits returns the stock ATM limits.
func DefaultLimits() Limits {
	return Limits{
		MaxWithdrawal:     decimal.NewFromInt(50000),
		MaxDeposit:        decimal.NewFromInt(200000),
		MaxTransfer:       decimal.NewFromInt(100000),
		MaxFailedAttempts: 3,
	}
}

// Params seeds a new account engine.
type Params struct {
	Balance       decimal.Decimal
	PIN           string
	AccountNumber string
	HolderName    string
	Limits        Limits // zero value means DefaultLimits
}

// AccountService owns the single account: balance, PIN, lockout state and
// the append-only transaction history. It enforces every business rule;
// the presentation shell only parses input and renders what comes back.
//
// The engine models exactly one synchronous session and is not safe for
// concurrent use.
type AccountService struct {
	balance        decimal.Decimal
	pin            string
	accountNumber  string
	holderName     string
	limits         Limits
	blocked        bool
	failedAttempts int
	history        []domain.Transaction
	audit          ports.AuditSink
	log            zerolog.Logger
}

var _ ports.AccountOperations = (*AccountService)(nil)

// NewAccountService validates the seed parameters and builds the engine.
// A malformed seed is the one unrecoverable failure in the system: the
// engine must not come into existence with bad state. A nil audit sink
// disables the audit trail without affecting banking behavior.
func NewAccountService(p Params, audit ports.AuditSink, log zerolog.Logger) (*AccountService, error) {
	if p.Balance.IsNegative() {
		return nil, apperror.ErrValidation("initial balance cannot be negative")
	}
	if !pinPattern.MatchString(p.PIN) {
		return nil, apperror.ErrValidation("PIN must be 4 digits")
	}
	if !accountPattern.MatchString(p.AccountNumber) {
		return nil, apperror.ErrValidation("invalid account number format")
	}
	if strings.TrimSpace(p.HolderName) == "" {
		return nil, apperror.ErrValidation("account holder name cannot be empty")
	}
	if p.Limits == (Limits{}) {
		p.Limits = DefaultLimits()
	}

	s := &AccountService{
		balance:       p.Balance,
		pin:           p.PIN,
		accountNumber: p.AccountNumber,
		holderName:    strings.TrimSpace(p.HolderName),
		limits:        p.Limits,
		audit:         audit,
		log:           log,
	}
	s.log.Info().Str("account", s.accountNumber).Msg("account engine ready")
	return s, nil
}

// ValidatePIN compares the entered PIN against the stored one. Attempts on
// a blocked account are rejected outright without touching the failure
// counter. Every attempt lands in the audit trail.
func (s *AccountService) ValidatePIN(entered string) bool {
	if s.blocked {
		s.log.Warn().Str("account", s.accountNumber).Msg("login attempt on blocked account")
		s.emit(domain.AuditActionLoginBlocked, "")
		return false
	}

	if entered == s.pin {
		s.failedAttempts = 0
		s.log.Info().Str("account", s.accountNumber).Msg("login successful")
		s.emit(domain.AuditActionLoginSuccess, "")
		return true
	}

	s.failedAttempts++
	s.log.Warn().
		Str("account", s.accountNumber).
		Int("failed_attempts", s.failedAttempts).
		Msg("login failed")
	s.emit(domain.AuditActionLoginFailed, fmt.Sprintf("attempt=%d", s.failedAttempts))

	if s.failedAttempts >= s.limits.MaxFailedAttempts {
		s.blocked = true
		s.log.Error().Str("account", s.accountNumber).Msg("account blocked after repeated failed logins")
		s.emit(domain.AuditActionAccountBlocked, "")
	}
	return false
}

// Withdraw debits the account. Balance sufficiency is checked before the
// withdrawal limit: an amount that violates both rules reports
// insufficient funds.
func (s *AccountService) Withdraw(amount decimal.Decimal) domain.Outcome {
	if amount.IsNegative() {
		return domain.Rejected(apperror.ErrInvalidAmount())
	}
	if amount.GreaterThan(s.balance) {
		return domain.Rejected(apperror.ErrInsufficientFunds(domain.FormatINR(s.balance)))
	}
	if amount.GreaterThan(s.limits.MaxWithdrawal) {
		return domain.Rejected(apperror.ErrLimitExceeded(domain.FormatINR(s.limits.MaxWithdrawal)))
	}

	s.balance = s.balance.Sub(amount)
	txn := s.append(domain.TransactionTypeWithdrawal, amount)
	s.log.Info().
		Str("txn_id", txn.ID).
		Str("account", s.accountNumber).
		Str("amount", amount.String()).
		Msg("withdrawal successful")
	s.emit(domain.AuditActionWithdrawal, "amount="+domain.FormatINR(amount))
	return domain.Accepted("Successfully withdrawn " + domain.FormatINR(amount))
}

// Deposit credits the account, bounded by the deposit limit.
func (s *AccountService) Deposit(amount decimal.Decimal) domain.Outcome {
	if amount.IsNegative() {
		return domain.Rejected(apperror.ErrInvalidAmount())
	}
	if amount.GreaterThan(s.limits.MaxDeposit) {
		return domain.Rejected(apperror.ErrLimitExceeded(domain.FormatINR(s.limits.MaxDeposit)))
	}

	s.balance = s.balance.Add(amount)
	txn := s.append(domain.TransactionTypeDeposit, amount)
	s.log.Info().
		Str("txn_id", txn.ID).
		Str("account", s.accountNumber).
		Str("amount", amount.String()).
		Msg("deposit successful")
	s.emit(domain.AuditActionDeposit, "amount="+domain.FormatINR(amount))
	return domain.Accepted("Successfully deposited " + domain.FormatINR(amount))
}

// Transfer debits the account in favor of another account number. This is
// a single-account model: the debit has no corresponding credit anywhere.
// Check order: empty target, then sufficiency, then limit, then
// same-account.
func (s *AccountService) Transfer(amount decimal.Decimal, targetAccount string) domain.Outcome {
	if amount.IsNegative() {
		return domain.Rejected(apperror.ErrInvalidAmount())
	}
	if strings.TrimSpace(targetAccount) == "" {
		return domain.Rejected(apperror.ErrInvalidInput("Target account"))
	}
	if amount.GreaterThan(s.balance) {
		return domain.Rejected(apperror.ErrInsufficientFunds(domain.FormatINR(s.balance)))
	}
	if amount.GreaterThan(s.limits.MaxTransfer) {
		return domain.Rejected(apperror.ErrLimitExceeded(domain.FormatINR(s.limits.MaxTransfer)))
	}
	if targetAccount == s.accountNumber {
		return domain.Rejected(apperror.ErrSameAccount())
	}

	s.balance = s.balance.Sub(amount)
	txn := s.append(domain.TransferTo(targetAccount), amount)
	s.log.Info().
		Str("txn_id", txn.ID).
		Str("account", s.accountNumber).
		Str("target", targetAccount).
		Str("amount", amount.String()).
		Msg("transfer successful")
	s.emit(domain.AuditActionTransfer, fmt.Sprintf("target=%s amount=%s", targetAccount, domain.FormatINR(amount)))
	return domain.Accepted("Successfully transferred " + domain.FormatINR(amount))
}

// ChangePIN swaps the stored PIN after verifying the old one. A wrong old
// PIN and a malformed new PIN both come back as plain false: nothing
// mutates and the caller prompts again. A successful change is recorded as
// a zero-amount transaction.
func (s *AccountService) ChangePIN(oldPIN, newPIN string) bool {
	if oldPIN != s.pin {
		return false
	}
	if !pinPattern.MatchString(newPIN) {
		return false
	}

	s.pin = newPIN
	s.append(domain.TransactionTypePINChange, decimal.Zero)
	s.log.Info().Str("account", s.accountNumber).Msg("PIN changed")
	s.emit(domain.AuditActionPINChange, "")
	return true
}

func (s *AccountService) Balance() decimal.Decimal {
	return s.balance
}

func (s *AccountService) AccountNumber() string {
	return s.accountNumber
}

func (s *AccountService) HolderName() string {
	return s.holderName
}

func (s *AccountService) Blocked() bool {
	return s.blocked
}

func (s *AccountService) FailedAttempts() int {
	return s.failedAttempts
}

// AttemptsLeft reports how many failed logins remain before lockout.
func (s *AccountService) AttemptsLeft() int {
	left := s.limits.MaxFailedAttempts - s.failedAttempts
	if left < 0 {
		return 0
	}
	return left
}

// History returns a copy; callers cannot reorder or grow the ledger
// through it.
func (s *AccountService) History() []domain.Transaction {
	out := make([]domain.Transaction, len(s.history))
	copy(out, s.history)
	return out
}

// append records a completed mutation against the current balance.
func (s *AccountService) append(txType domain.TransactionType, amount decimal.Decimal) domain.Transaction {
	txn := domain.NewTransaction(txType, amount, s.balance)
	s.history = append(s.history, txn)
	return txn
}

// emit pushes an event to the audit sink, if one is attached.
func (s *AccountService) emit(action domain.AuditAction, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.NewAuditEvent(action, s.accountNumber, detail))
}
