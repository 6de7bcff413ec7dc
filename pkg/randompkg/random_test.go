package randompkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntn(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := Intn(10)
		require.GreaterOrEqual(t, n, int64(0))
		require.Less(t, n, int64(10))
	}
}

func TestSnowflake(t *testing.T) {
	for i := 0; i < 10; i++ {
		id := Snowflake()
		require.Len(t, id, 18)
		require.NotEqual(t, byte('0'), id[0])

		for _, c := range id {
			require.Contains(t, digits, string(c))
		}
	}
}
