// Package terminal implements the interactive session shell: the screen
// flow that drives the account engine and renders its results. The shell
// parses raw input into numbers and strings and nothing more; every
// business rule lives behind the AccountOperations port.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"atm-simulator/internal/core/domain"
	"atm-simulator/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Session runs the welcome -> PIN -> menu screen flow over a reader/writer
// pair, usually stdin/stdout.
type Session struct {
	account ports.AccountOperations
	in      *bufio.Scanner
	out     io.Writer
	log     zerolog.Logger
}

// NewSession wires a session shell to an account engine.
func NewSession(account ports.AccountOperations, in io.Reader, out io.Writer, log zerolog.Logger) *Session {
	return &Session{
		account: account,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log,
	}
}

// Run drives the session until the user exits or input runs out.
func (s *Session) Run() {
	s.log.Info().Str("account", s.account.AccountNumber()).Msg("session started")
	s.printf("=== SecureBank ATM ===\n")
	s.printf("Welcome, %s\n", s.account.HolderName())

	for {
		s.printf("\n1) Start banking\n0) Exit\n> ")
		choice, ok := s.readLine()
		if !ok || choice == "0" {
			s.printf("Goodbye.\n")
			s.log.Info().Msg("session ended")
			return
		}
		if choice != "1" {
			s.printf("Unknown option.\n")
			continue
		}
		if s.login() {
			s.menu()
		}
	}
}

// login prompts for the PIN until it validates, the account blocks, or the
// user cancels with a blank line.
func (s *Session) login() bool {
	for {
		if s.account.Blocked() {
			s.printf("Account blocked. Please contact your branch.\n")
			return false
		}
		s.printf("Enter 4-digit PIN (blank to cancel): ")
		pin, ok := s.readLine()
		if !ok || pin == "" {
			return false
		}
		if s.account.ValidatePIN(pin) {
			return true
		}
		if s.account.Blocked() {
			s.printf("Account blocked!\n")
			return false
		}
		s.printf("Invalid PIN. Attempts left: %d\n", s.account.AttemptsLeft())
	}
}

func (s *Session) menu() {
	for {
		s.printf("\n--- Main Menu ---\n")
		s.printf("1) Balance\n2) Withdraw\n3) Deposit\n4) Transfer\n5) History\n6) Change PIN\n0) Logout\n> ")
		choice, ok := s.readLine()
		if !ok {
			return
		}
		switch choice {
		case "1":
			s.printf("Current balance: %s\n", domain.FormatINR(s.account.Balance()))
		case "2":
			s.withdraw()
		case "3":
			s.deposit()
		case "4":
			s.transfer()
		case "5":
			s.history()
		case "6":
			s.changePIN()
		case "0":
			return
		default:
			s.printf("Unknown option.\n")
		}
	}
}

func (s *Session) withdraw() {
	amount, ok := s.promptAmount("Withdrawal amount: ")
	if !ok {
		return
	}
	s.render(s.account.Withdraw(amount))
}

func (s *Session) deposit() {
	amount, ok := s.promptAmount("Deposit amount: ")
	if !ok {
		return
	}
	s.render(s.account.Deposit(amount))
}

func (s *Session) transfer() {
	s.printf("Target account: ")
	target, ok := s.readLine()
	if !ok {
		return
	}
	amount, ok := s.promptAmount("Transfer amount: ")
	if !ok {
		return
	}
	s.render(s.account.Transfer(amount, target))
}

func (s *Session) history() {
	h := s.account.History()
	if len(h) == 0 {
		s.printf("No transactions yet.\n")
		return
	}
	s.printf("%-20s %-30s %14s %14s\n", "Date/Time", "Type", "Amount", "Balance")
	for _, t := range h {
		s.printf("%-20s %-30s %14s %14s\n",
			t.FormattedTimestamp(), t.Type, t.FormattedAmount(), t.FormattedBalance())
	}
}

func (s *Session) changePIN() {
	s.printf("Current PIN: ")
	oldPIN, ok := s.readLine()
	if !ok {
		return
	}
	s.printf("New PIN: ")
	newPIN, ok := s.readLine()
	if !ok {
		return
	}
	if s.account.ChangePIN(oldPIN, newPIN) {
		s.printf("PIN changed successfully.\n")
	} else {
		s.printf("ERROR: PIN change failed. Check the current PIN and use 4 digits.\n")
	}
}

// render shows an operation outcome. Successful mutations also get the
// fresh balance and a receipt for the transaction just recorded.
func (s *Session) render(out domain.Outcome) {
	if !out.Success {
		s.printf("ERROR: %s\n", out.Message)
		return
	}
	s.printf("%s\n", out.Message)
	s.printf("New balance: %s\n", domain.FormatINR(s.account.Balance()))
	if h := s.account.History(); len(h) > 0 {
		s.receipt(h[len(h)-1])
	}
}

func (s *Session) receipt(t domain.Transaction) {
	s.printf("--- Receipt ---\n")
	s.printf("Txn:     %s\n", t.ID)
	s.printf("Type:    %s\n", t.Type)
	s.printf("Amount:  %s\n", t.FormattedAmount())
	s.printf("Balance: %s\n", t.FormattedBalance())
	s.printf("Time:    %s\n", t.FormattedTimestamp())
}

// promptAmount reads and parses a decimal amount. Parsing is the shell's
// job; range and limit checks belong to the engine.
func (s *Session) promptAmount(prompt string) (decimal.Decimal, bool) {
	s.printf("%s", prompt)
	raw, ok := s.readLine()
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		s.printf("Please enter a valid amount.\n")
		return decimal.Zero, false
	}
	return amount, true
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
