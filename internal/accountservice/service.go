// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/avion-bot/avion/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, userID, guildID string) (domain.Account, error)
	Get(ctx context.Context, userID, guildID string) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account business logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Get returns the account for the given user in the given guild.
func (s *Service) Get(ctx context.Context, userID, guildID string) (domain.Account, error) {
	account, err := s.repo.Get(ctx, userID, guildID)
	if err != nil {
		return account, err
	}

	return account, nil
}

// Register provisions an account with zero balances for the given user.
func (s *Service) Register(ctx context.Context, userID, guildID string) (domain.Account, error) {
	account, err := s.repo.Create(ctx, userID, guildID)
	if err != nil {
		return account, err
	}

	return account, nil
}
