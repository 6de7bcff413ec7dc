package transferrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avion-bot/avion/internal/domain"
	"github.com/avion-bot/avion/pkg/errorspkg"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var (
	accountColumns = []string{"user_id", "guild_id", "wallet_balance", "bank_balance", "created_at"}
	updatePattern  = regexp.QuoteMeta("SET wallet_balance = wallet_balance + $1")
)

func newTestRepo(t *testing.T) (*RepoPGS, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return NewRepoPGS(db), mock
}

func TestTransferWallet(t *testing.T) {
	guildID := "300000000000000000"
	createdAt := time.Now().Truncate(time.Second).UTC()

	arg := domain.TransferWalletParams{
		SenderID:   "100000000000000001",
		ReceiverID: "100000000000000002",
		GuildID:    guildID,
		Amount:     100,
	}

	t.Run("Both rows mutate in one transaction", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectBegin()
		// Sender id sorts first, so the debit runs first.
		mock.ExpectQuery(updatePattern).
			WithArgs(int64(-100), arg.SenderID, guildID).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow(arg.SenderID, guildID, 900, 0, createdAt))
		mock.ExpectQuery(updatePattern).
			WithArgs(int64(100), arg.ReceiverID, guildID).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow(arg.ReceiverID, guildID, 1100, 0, createdAt))
		mock.ExpectCommit()

		result, err := repo.TransferWallet(context.Background(), arg)
		require.NoError(t, err)

		require.Equal(t, int64(900), result.Sender.WalletBalance)
		require.Equal(t, int64(1100), result.Receiver.WalletBalance)
		require.Equal(t, arg.SenderID, result.Sender.UserID)
		require.Equal(t, arg.ReceiverID, result.Receiver.UserID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Statements run in user id order", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		reversed := domain.TransferWalletParams{
			SenderID:   "100000000000000002",
			ReceiverID: "100000000000000001",
			GuildID:    guildID,
			Amount:     100,
		}

		mock.ExpectBegin()
		// Receiver id sorts first here, so the credit runs first.
		mock.ExpectQuery(updatePattern).
			WithArgs(int64(100), reversed.ReceiverID, guildID).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow(reversed.ReceiverID, guildID, 1100, 0, createdAt))
		mock.ExpectQuery(updatePattern).
			WithArgs(int64(-100), reversed.SenderID, guildID).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow(reversed.SenderID, guildID, 900, 0, createdAt))
		mock.ExpectCommit()

		result, err := repo.TransferWallet(context.Background(), reversed)
		require.NoError(t, err)

		require.Equal(t, int64(900), result.Sender.WalletBalance)
		require.Equal(t, int64(1100), result.Receiver.WalletBalance)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second mutation failure rolls back the first", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(updatePattern).
			WithArgs(int64(-100), arg.SenderID, guildID).
			WillReturnRows(sqlmock.NewRows(accountColumns).
				AddRow(arg.SenderID, guildID, 900, 0, createdAt))
		mock.ExpectQuery(updatePattern).
			WithArgs(int64(100), arg.ReceiverID, guildID).
			WillReturnError(&pq.Error{Code: "57014"})
		mock.ExpectRollback()

		_, err := repo.TransferWallet(context.Background(), arg)
		require.ErrorIs(t, err, errorspkg.ErrInternal)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing account rolls back", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(updatePattern).
			WithArgs(int64(-100), arg.SenderID, guildID).
			WillReturnRows(sqlmock.NewRows(accountColumns))
		mock.ExpectRollback()

		_, err := repo.TransferWallet(context.Background(), arg)
		require.ErrorIs(t, err, domain.ErrAccountNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin failure", func(t *testing.T) {
		repo, mock := newTestRepo(t)

		mock.ExpectBegin().WillReturnError(&pq.Error{Code: "53300"})

		_, err := repo.TransferWallet(context.Background(), arg)
		require.ErrorIs(t, err, errorspkg.ErrInternal)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
