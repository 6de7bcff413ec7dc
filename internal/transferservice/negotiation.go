package transferservice

import (
	"sync"

	"github.com/avion-bot/avion/internal/domain"
)

// Negotiation is one pending transfer awaiting the sender's confirmation.
//
// It carries the validated request and both wallet balances as observed when
// the negotiation started. The snapshot is advisory: it feeds the
// confirmation preview and the insufficient funds check, while the commit
// itself applies relative deltas and stays correct even if balances moved in
// the meantime.
type Negotiation struct {
	Token          string
	Request        domain.TransferRequest
	SenderWallet   int64
	ReceiverWallet int64

	mu       sync.Mutex
	closed   bool
	decision chan domain.Choice
}

func newNegotiation(token string, req domain.TransferRequest, sender, receiver domain.Account) *Negotiation {
	return &Negotiation{
		Token:          token,
		Request:        req,
		SenderWallet:   sender.WalletBalance,
		ReceiverWallet: receiver.WalletBalance,
		decision:       make(chan domain.Choice, 1),
	}
}

// ProposedView returns the wallet balances to preview in the confirmation
// prompt, computed from the negotiation start snapshot.
func (n *Negotiation) ProposedView() (senderWallet, receiverWallet int64) {
	return n.SenderWallet - n.Request.Amount, n.ReceiverWallet + n.Request.Amount
}

// deliver hands a choice to the waiting negotiation. It reports false if the
// negotiation already resolved; a negotiation resolves at most once.
func (n *Negotiation) deliver(c domain.Choice) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return false
	}

	n.closed = true
	n.decision <- c // buffered, never blocks

	return true
}

// expire closes the negotiation on timeout. If a choice won the race with the
// timer, expire yields that choice instead.
func (n *Negotiation) expire() (domain.Choice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return <-n.decision, true
	}

	n.closed = true

	return 0, false
}
