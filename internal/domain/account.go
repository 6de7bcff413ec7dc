// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that the user is already registered in the guild economy.
	ErrAccountAlreadyExists = errors.New("account already exists")
)

// Account holds economy balances for one user in one guild.
type Account struct {
	UserID        string    `json:"user_id"`
	GuildID       string    `json:"guild_id"`
	WalletBalance int64     `json:"wallet_balance"`
	BankBalance   int64     `json:"bank_balance"`
	CreatedAt     time.Time `json:"created_at"`
}
