package types

import (
	"strings"
	"testing"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/stretchr/testify/require"
)

func TestPubkeyHex(t *testing.T) {
	// All-zero keys keep their full width
	s := PubkeyHex(phase0.BLSPubKey{})
	require.Len(t, s, 2+2*48)
	require.Equal(t, "0x"+strings.Repeat("0", 96), s)

	pkHex := "0x82f6e7cc57a2ce68ec41321bebc55bcb31945fe66a8e67eb8251425fab4c6a38c10c53210aea9796dd0ba0441b46762a"
	pk, err := ParsePubkey(pkHex)
	require.NoError(t, err)
	require.Equal(t, pkHex, PubkeyHex(pk))

	// Output is always lowercase
	pk, err = ParsePubkey("0x" + strings.ToUpper(pkHex[2:]))
	require.NoError(t, err)
	require.Equal(t, pkHex, PubkeyHex(pk))

	_, err = ParsePubkey("0x1234")
	require.Error(t, err)
}

func TestHashHex(t *testing.T) {
	s := HashHex(phase0.Hash32{})
	require.Equal(t, "0x"+strings.Repeat("0", 64), s)

	hashHex := "0x0100000000000000000000000000000000000000000000000000000000000000"
	h, err := ParseHash(hashHex)
	require.NoError(t, err)
	require.Equal(t, phase0.Hash32{0x01}, h)
	require.Equal(t, hashHex, HashHex(h))

	_, err = ParseHash("0xzz")
	require.Error(t, err)
}
