package v1

import (
	builderApiV1 "github.com/attestantio/go-builder-client/api/v1"
	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/flashbots/go-boost-utils/ssz"
)

// VerifyRegistrationSignature checks the registration signature against the registered pubkey in the given builder domain.
func VerifyRegistrationSignature(registration *builderApiV1.SignedValidatorRegistration, domain phase0.Domain) (bool, error) {
	if registration == nil || registration.Message == nil {
		return false, ErrEmptyRegistration
	}
	return ssz.VerifySignature(registration.Message, domain, registration.Message.Pubkey[:], registration.Signature[:])
}
