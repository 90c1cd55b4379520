package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType labels a completed ledger event. Transfers carry the
// target account inside the label itself, e.g. "TRANSFER TO ACC987654321".
type TransactionType string

const (
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypePINChange  TransactionType = "PIN CHANGE"
)

// TransferTo builds the type label for a transfer to the given account.
func TransferTo(targetAccount string) TransactionType {
	return TransactionType("TRANSFER TO " + targetAccount)
}

// Transaction is an immutable record of one completed ledger event.
// BalanceAfter snapshots the account balance at the moment the event
// completed.
type Transaction struct {
	ID           string
	Type         TransactionType
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Timestamp    time.Time
}

// NewTransaction stamps a fresh record. IDs are opaque unique strings; a
// UUID suffix rules out the collisions a millisecond-clock suffix allows
// under rapid successive operations.
func NewTransaction(txType TransactionType, amount, balanceAfter decimal.Decimal) Transaction {
	return Transaction{
		ID:           "TXN-" + uuid.NewString(),
		Type:         txType,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Timestamp:    time.Now(),
	}
}

// FormattedAmount renders the amount as shown on receipts and history.
func (t Transaction) FormattedAmount() string {
	return FormatINR(t.Amount)
}

// FormattedBalance renders the post-transaction balance.
func (t Transaction) FormattedBalance() string {
	return FormatINR(t.BalanceAfter)
}

// FormattedTimestamp renders the wall-clock moment as dd/MM/yyyy HH:mm:ss.
func (t Transaction) FormattedTimestamp() string {
	return t.Timestamp.Format("02/01/2006 15:04:05")
}
