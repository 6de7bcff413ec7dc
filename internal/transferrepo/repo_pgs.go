// Package transferrepo manages repository layer of wallet transfers.
package transferrepo

import (
	"context"
	"database/sql"

	"github.com/avion-bot/avion/internal/accountrepo"
	"github.com/avion-bot/avion/internal/domain"
	"github.com/avion-bot/avion/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates transfer repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns transfer RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn: db,
	}
}

// TransferWallet moves coins between two wallets in the same guild.
//
// Both wallet mutations are expressed as relative deltas and run within a
// single transaction: either both apply or neither does. Statements execute
// in consistent user id order to avoid deadlocks between concurrent
// transfers touching the same accounts.
func (r *RepoPGS) TransferWallet(ctx context.Context, arg domain.TransferWalletParams) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransferTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	accountRepo := accountrepo.NewRepoPGS(tx)

	var sender, receiver domain.Account

	if arg.SenderID < arg.ReceiverID {
		sender, receiver, err = addWalletBalances(ctx, accountRepo, addBalanceParams{
			user1ID: arg.SenderID,
			delta1:  -arg.Amount,
			user2ID: arg.ReceiverID,
			delta2:  arg.Amount,
			guildID: arg.GuildID,
		})
	} else {
		receiver, sender, err = addWalletBalances(ctx, accountRepo, addBalanceParams{
			user1ID: arg.ReceiverID,
			delta1:  arg.Amount,
			user2ID: arg.SenderID,
			delta2:  -arg.Amount,
			guildID: arg.GuildID,
		})
	}

	if err != nil {
		l.Error().Err(err).Send()

		switch err {
		case domain.ErrAccountNotFound, domain.ErrNegativeBalance:
			return result, err
		}

		return result, errorspkg.ErrInternal
	}

	result.Sender, result.Receiver = sender, receiver

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

type addBalanceParams struct {
	user1ID string
	delta1  int64
	user2ID string
	delta2  int64
	guildID string
}

func addWalletBalances(ctx context.Context, r *accountrepo.RepoPGS, arg addBalanceParams) (domain.Account, domain.Account, error) {
	account1, err := r.AddWalletBalance(ctx, arg.delta1, arg.user1ID, arg.guildID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	account2, err := r.AddWalletBalance(ctx, arg.delta2, arg.user2ID, arg.guildID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	return account1, account2, nil
}
