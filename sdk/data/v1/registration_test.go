package v1_test

import (
	"testing"
	"time"

	"github.com/flashbots/go-boost-utils/ssz"
	v1 "github.com/flashbots/relay-data/sdk/data/v1"
	"github.com/flashbots/relay-data/testutils"
	"github.com/flashbots/relay-data/types"
	"github.com/stretchr/testify/require"
)

func TestVerifyRegistrationSignature(t *testing.T) {
	mockRelay := testutils.NewMockRelay(t)
	reg := mockRelay.MakeValidatorRegistration(testutils.FeeRecipientHex, 36000000, time.Unix(1700000000, 0))

	t.Run("mainnet domain", func(t *testing.T) {
		ok, err := v1.VerifyRegistrationSignature(reg, ssz.DomainBuilder)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("other network", func(t *testing.T) {
		domain, err := types.ComputeBuilderDomain(types.GenesisForkVersionHolesky)
		require.NoError(t, err)
		ok, err := v1.VerifyRegistrationSignature(reg, domain)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("tampered message", func(t *testing.T) {
		tampered := mockRelay.MakeValidatorRegistration(testutils.FeeRecipientHex, 36000000, time.Unix(1700000000, 0))
		tampered.Message.GasLimit = 1
		ok, err := v1.VerifyRegistrationSignature(tampered, ssz.DomainBuilder)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("empty registration", func(t *testing.T) {
		_, err := v1.VerifyRegistrationSignature(nil, ssz.DomainBuilder)
		require.ErrorIs(t, err, v1.ErrEmptyRegistration)
	})
}
