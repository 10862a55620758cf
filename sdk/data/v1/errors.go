package v1

import "errors"

var (
	// ErrConflictingParams is returned if a bids delivered request sets both slot and cursor.
	ErrConflictingParams = errors.New("conflicting params, cannot specify both slot and cursor")

	// ErrMissingMandatoryParam is returned if a bids received request has none of slot, block_hash, block_number or builder_pubkey.
	ErrMissingMandatoryParam = errors.New("need to query for specific slot or block_hash or block_number or builder_pubkey")

	// ErrEmptyRegistration is returned when verifying a registration without a message.
	ErrEmptyRegistration = errors.New("validator registration has no message")
)
