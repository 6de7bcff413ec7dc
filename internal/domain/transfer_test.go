package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "confirmed", OutcomeConfirmed.String())
	require.Equal(t, "cancelled", OutcomeCancelled.String())
	require.Equal(t, "timed_out", OutcomeTimedOut.String())
	require.Equal(t, "unknown", Outcome(42).String())
}

func TestInsufficientBalanceErrorMessage(t *testing.T) {
	err := &InsufficientBalanceError{Shortfall: 50}
	require.EqualError(t, err, "insufficient balance: 50 more coins needed")
	require.False(t, errors.Is(err, ErrNegotiationClosed))
}
