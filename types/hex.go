package types

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/flashbots/go-boost-utils/utils"
)

// PubkeyHex returns the 0x-prefixed lowercase hex of all 48 bytes of a BLS public key.
func PubkeyHex(pk phase0.BLSPubKey) string {
	return hexutil.Encode(pk[:])
}

// HashHex returns the 0x-prefixed lowercase hex of all 32 bytes of a hash.
func HashHex(h phase0.Hash32) string {
	return hexutil.Encode(h[:])
}

// ParsePubkey parses a 0x-prefixed hex BLS public key.
func ParsePubkey(s string) (phase0.BLSPubKey, error) {
	return utils.HexToPubkey(s)
}

// ParseHash parses a 0x-prefixed hex 32-byte hash.
func ParseHash(s string) (phase0.Hash32, error) {
	return utils.HexToHash(s)
}
