package domain

import (
	"fmt"
	"time"
)

// AuditAction classifies an audited account event.
type AuditAction string

const (
	AuditActionLoginSuccess   AuditAction = "LOGIN_SUCCESS"
	AuditActionLoginFailed    AuditAction = "LOGIN_FAILED"
	AuditActionLoginBlocked   AuditAction = "LOGIN_BLOCKED"
	AuditActionAccountBlocked AuditAction = "ACCOUNT_BLOCKED"
	AuditActionWithdrawal     AuditAction = "WITHDRAWAL"
	AuditActionDeposit        AuditAction = "DEPOSIT"
	AuditActionTransfer       AuditAction = "TRANSFER"
	AuditActionPINChange      AuditAction = "PIN_CHANGE"
)

// AuditEvent is one line's worth of audit trail.
type AuditEvent struct {
	Action  AuditAction
	Account string
	Detail  string
	At      time.Time
}

// NewAuditEvent stamps an event with the current wall clock.
func NewAuditEvent(action AuditAction, account, detail string) AuditEvent {
	return AuditEvent{Action: action, Account: account, Detail: detail, At: time.Now()}
}

// Line renders the event as a single human-readable audit log line. The
// format is free-form text with no schema contract beyond one line per
// event.
func (e AuditEvent) Line() string {
	ts := e.At.Format("2006-01-02 15:04:05")
	if e.Detail == "" {
		return fmt.Sprintf("%s %s account=%s", ts, e.Action, e.Account)
	}
	return fmt.Sprintf("%s %s account=%s %s", ts, e.Action, e.Account, e.Detail)
}
