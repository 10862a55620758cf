package types

import (
	"math/big"

	"github.com/holiman/uint256"
)

// WeiToEth converts a wei amount into an eth denominated big.Float. A nil value converts to zero.
func WeiToEth(wei *uint256.Int) *big.Float {
	if wei == nil {
		return new(big.Float)
	}
	f := new(big.Float).SetInt(wei.ToBig())
	return f.Quo(f, big.NewFloat(1e18))
}
