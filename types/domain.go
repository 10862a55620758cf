package types

import (
	"errors"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/flashbots/go-boost-utils/ssz"
)

const (
	GenesisForkVersionMainnet = "0x00000000"
	GenesisForkVersionSepolia = "0x90000069"
	GenesisForkVersionHolesky = "0x01017000"
)

var ErrInvalidForkVersion = errors.New("invalid fork version passed")

// ComputeBuilderDomain computes the builder signing domain for a genesis fork version.
// Builder domains always use an empty genesis validators root.
func ComputeBuilderDomain(forkVersionHex string) (domain phase0.Domain, err error) {
	forkVersionBytes, err := hexutil.Decode(forkVersionHex)
	if err != nil || len(forkVersionBytes) != 4 {
		return domain, ErrInvalidForkVersion
	}
	var forkVersion phase0.Version
	copy(forkVersion[:], forkVersionBytes)
	return ssz.ComputeDomain(ssz.DomainTypeAppBuilder, forkVersion, phase0.Root{}), nil
}
