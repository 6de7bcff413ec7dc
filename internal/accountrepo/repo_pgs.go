// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/avion-bot/avion/internal/domain"
	"github.com/avion-bot/avion/pkg/dbpkg"
	"github.com/avion-bot/avion/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    users (user_id, guild_id)
VALUES
    ($1, $2)
RETURNING user_id, guild_id, wallet_balance, bank_balance, created_at
`

// Create provisions the account with zero balances and then returns it.
func (r *RepoPGS) Create(ctx context.Context, userID, guildID string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, userID, guildID)

	var a domain.Account

	err := row.Scan(
		&a.UserID,
		&a.GuildID,
		&a.WalletBalance,
		&a.BankBalance,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "users_pkey" {
				return a, domain.ErrAccountAlreadyExists
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	user_id, guild_id, wallet_balance, bank_balance, created_at
FROM users
WHERE user_id = $1 AND guild_id = $2
`

// Get returns the account for the given user in the given guild.
func (r *RepoPGS) Get(ctx context.Context, userID, guildID string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, userID, guildID)

	var a domain.Account

	err := row.Scan(
		&a.UserID,
		&a.GuildID,
		&a.WalletBalance,
		&a.BankBalance,
		&a.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const addWalletBalanceQuery = `
UPDATE users
SET wallet_balance = wallet_balance + $1
WHERE user_id = $2 AND guild_id = $3
RETURNING user_id, guild_id, wallet_balance, bank_balance, created_at
`

// AddWalletBalance changes the wallet balance by the given delta and returns the changed account.
func (r *RepoPGS) AddWalletBalance(ctx context.Context, delta int64, userID, guildID string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addWalletBalanceQuery, delta, userID, guildID)

	var a domain.Account

	err := row.Scan(
		&a.UserID,
		&a.GuildID,
		&a.WalletBalance,
		&a.BankBalance,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "users_wallet_balance_check" {
				return a, domain.ErrNegativeBalance
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}
