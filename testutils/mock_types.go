package testutils

import (
	"github.com/attestantio/go-eth2-client/spec/bellatrix"
	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/flashbots/go-boost-utils/utils"
	"github.com/sirupsen/logrus"
)

// TestLog is used to log information in the test methods
var TestLog = logrus.WithField("testing", true)

// HexToHashP converts a hexadecimal string to a 32-byte hash
func HexToHashP(s string) phase0.Hash32 {
	ret, err := utils.HexToHash(s)
	if err != nil {
		TestLog.Error(err, " HexToHashP: ", s)
		panic(err)
	}
	return ret
}

// HexToAddressP converts a hexadecimal string to an execution address
func HexToAddressP(s string) bellatrix.ExecutionAddress {
	ret, err := utils.HexToAddress(s)
	if err != nil {
		TestLog.Error(err, " HexToAddressP: ", s)
		panic(err)
	}
	return ret
}

// HexToPubkeyP converts a hexadecimal string to a BLS Public Key
func HexToPubkeyP(s string) phase0.BLSPubKey {
	ret, err := utils.HexToPubkey(s)
	if err != nil {
		TestLog.Error(err, " HexToPubkeyP: ", s)
		panic(err)
	}
	return ret
}
