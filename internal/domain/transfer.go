package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrBotCounterparty indicates that the receiver is a bot account.
	ErrBotCounterparty = errors.New("bots cannot hold coins")
	// ErrSelfTransfer indicates that the sender and receiver are the same user.
	ErrSelfTransfer = errors.New("cannot transfer coins to yourself")
	// ErrNegativeBalance indicates that a mutation would drive a wallet below zero.
	ErrNegativeBalance = errors.New("balance cannot go negative")
	// ErrNotYourTransfer indicates that the responding user did not start the transfer.
	ErrNotYourTransfer = errors.New("only the sender can resolve this transfer")
	// ErrNegotiationClosed indicates that the transfer was already resolved or expired.
	ErrNegotiationClosed = errors.New("transfer is no longer pending")
)

// InsufficientBalanceError indicates that the sender's wallet cannot cover the
// requested amount. Shortfall is how many more coins the sender would need.
type InsufficientBalanceError struct {
	Shortfall int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %d more coins needed", e.Shortfall)
}

// TransferRequest is the input data for one /give invocation. Not persisted.
type TransferRequest struct {
	SenderID      string
	ReceiverID    string
	GuildID       string
	Amount        int64 // must be >= 1, enforced by the command schema
	ReceiverIsBot bool
}

// Choice is a decision delivered to a pending transfer.
type Choice int

// The two button choices a sender has.
const (
	ChoiceConfirm Choice = iota
	ChoiceCancel
)

// Outcome is the terminal state of a transfer negotiation.
type Outcome int

// Outcomes of a negotiation that opened a confirmation window.
const (
	OutcomeConfirmed Outcome = iota
	OutcomeCancelled
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeTimedOut:
		return "timed_out"
	}

	return "unknown"
}

// TransferWalletParams is the input data for the atomic wallet mutation.
type TransferWalletParams struct {
	SenderID   string
	ReceiverID string
	GuildID    string
	Amount     int64
}

// TransferTxResult holds both accounts as returned by the atomic mutation.
type TransferTxResult struct {
	Sender   Account `json:"sender"`
	Receiver Account `json:"receiver"`
}

// TransferResult is the resolved negotiation handed back for presentation.
type TransferResult struct {
	Outcome  Outcome
	Sender   Account
	Receiver Account
}
