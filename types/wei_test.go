package types

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestWeiToEth(t *testing.T) {
	// test with valid input
	f := WeiToEth(uint256.NewInt(1))
	require.Equal(t, "0.000000000000000001", f.Text('f', 18))

	f = WeiToEth(uint256.NewInt(1_500_000_000_000_000_000))
	require.Equal(t, "1.500000", f.Text('f', 6))

	// test with nil
	f = WeiToEth(nil)
	require.Equal(t, "0.000000000000000000", f.Text('f', 18))
}
