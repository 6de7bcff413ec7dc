// Package transferservice manages business logic layer of wallet transfers.
//
// A transfer is a short negotiation: the request is validated, both balances
// are read once, and a confirmation window opens that only the sender can
// resolve. The ledger is touched exactly once, and only on confirmation.
package transferservice

import (
	"context"
	"sync"
	"time"

	"github.com/avion-bot/avion/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	TransferWallet(ctx context.Context, arg domain.TransferWalletParams) (domain.TransferTxResult, error)
}

// AccountService provides account service layer interface needed by transfer service layer.
type AccountService interface {
	Get(ctx context.Context, userID, guildID string) (domain.Account, error)
}

// Service drives transfer negotiations and executes confirmed ones.
type Service struct {
	repo     Repo
	accounts AccountService
	timeout  time.Duration

	mu      sync.Mutex
	pending map[string]*Negotiation
}

// New returns transfer service struct to manage transfer business logic.
// Negotiations left unresolved for confirmTimeout resolve as timed out.
func New(tr Repo, as AccountService, confirmTimeout time.Duration) *Service {
	return &Service{
		repo:     tr,
		accounts: as,
		timeout:  confirmTimeout,
		pending:  make(map[string]*Negotiation),
	}
}

// Begin validates the request and opens a negotiation.
//
// Bot and self checks run before any balance read. Validation failures are
// terminal: domain.ErrBotCounterparty, domain.ErrSelfTransfer,
// domain.ErrAccountNotFound for either party, or
// *domain.InsufficientBalanceError carrying the shortfall. No confirmation
// window opens on any of them and the ledger is never touched.
func (s *Service) Begin(ctx context.Context, req domain.TransferRequest) (*Negotiation, error) {
	l := zerolog.Ctx(ctx)

	if req.ReceiverIsBot {
		l.Info().Str("receiver", req.ReceiverID).Msg("transfer to bot rejected")
		return nil, domain.ErrBotCounterparty
	}

	if req.ReceiverID == req.SenderID {
		l.Info().Str("sender", req.SenderID).Msg("self transfer rejected")
		return nil, domain.ErrSelfTransfer
	}

	sender, err := s.accounts.Get(ctx, req.SenderID, req.GuildID)
	if err != nil {
		return nil, err
	}

	receiver, err := s.accounts.Get(ctx, req.ReceiverID, req.GuildID)
	if err != nil {
		return nil, err
	}

	if sender.WalletBalance < req.Amount {
		return nil, &domain.InsufficientBalanceError{Shortfall: req.Amount - sender.WalletBalance}
	}

	n := newNegotiation(uuid.NewString(), req, sender, receiver)

	s.mu.Lock()
	s.pending[n.Token] = n
	s.mu.Unlock()

	return n, nil
}

// Resolve delivers a confirm or cancel choice to the pending negotiation.
//
// Only the sender may resolve; anyone else gets domain.ErrNotYourTransfer and
// the negotiation state does not advance. Unknown or already resolved tokens
// get domain.ErrNegotiationClosed.
func (s *Service) Resolve(token, actorID string, choice domain.Choice) error {
	s.mu.Lock()
	n, ok := s.pending[token]
	s.mu.Unlock()

	if !ok {
		return domain.ErrNegotiationClosed
	}

	if actorID != n.Request.SenderID {
		return domain.ErrNotYourTransfer
	}

	if !n.deliver(choice) {
		return domain.ErrNegotiationClosed
	}

	return nil
}

// Conclude blocks until the negotiation resolves and executes it if confirmed.
//
// This is the single suspension point of a transfer: it waits on the decision
// channel, the confirmation timeout, or ctx, whichever comes first. The
// pending token is invalidated on every path, so a late confirm is a no-op.
func (s *Service) Conclude(ctx context.Context, n *Negotiation) (domain.TransferResult, error) {
	l := zerolog.Ctx(ctx)

	defer s.forget(n.Token)

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	var choice domain.Choice

	select {
	case choice = <-n.decision:
	case <-timer.C:
		c, resolved := n.expire()
		if !resolved {
			l.Info().Str("token", n.Token).Msg("transfer confirmation timed out")
			return domain.TransferResult{Outcome: domain.OutcomeTimedOut}, nil
		}

		choice = c
	case <-ctx.Done():
		n.expire()
		return domain.TransferResult{}, ctx.Err()
	}

	if choice == domain.ChoiceCancel {
		return domain.TransferResult{Outcome: domain.OutcomeCancelled}, nil
	}

	result, err := s.repo.TransferWallet(ctx, domain.TransferWalletParams{
		SenderID:   n.Request.SenderID,
		ReceiverID: n.Request.ReceiverID,
		GuildID:    n.Request.GuildID,
		Amount:     n.Request.Amount,
	})
	if err != nil {
		l.Error().Err(err).Str("token", n.Token).Msg("transfer execution failed")
		return domain.TransferResult{}, err
	}

	return domain.TransferResult{
		Outcome:  domain.OutcomeConfirmed,
		Sender:   result.Sender,
		Receiver: result.Receiver,
	}, nil
}

func (s *Service) forget(token string) {
	s.mu.Lock()
	delete(s.pending, token)
	s.mu.Unlock()
}
