package timestamppkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDiscord(t *testing.T) {
	at := time.Unix(1700000000, 0)

	testCases := []struct {
		name   string
		format Format
		want   string
	}{
		{name: "LongDate", format: LongDate, want: "<t:1700000000:D>"},
		{name: "LongDateShortTime", format: LongDateShortTime, want: "<t:1700000000:f>"},
		{name: "Relative", format: Relative, want: "<t:1700000000:R>"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Discord(at, tc.format))
		})
	}
}
