package v1

import (
	"strconv"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/flashbots/relay-data/relay/params"
	"github.com/flashbots/relay-data/types"
)

// ResultsOrder sorts bids delivered by value.
type ResultsOrder int

const (
	// IncreasingValue sorts the lowest value first, sent as order_by=value
	IncreasingValue ResultsOrder = iota + 1
	// DecreasingValue sorts the highest value first, sent as order_by=-value
	DecreasingValue
)

// String returns the order_by argument, or an empty string for an unknown order.
func (o ResultsOrder) String() string {
	switch o {
	case IncreasingValue:
		return "value"
	case DecreasingValue:
		return "-value"
	default:
		return ""
	}
}

// GetBidsDeliveredRequest filters /relay/v1/data/bidtraces/proposer_payload_delivered.
// Nil fields are not sent.
type GetBidsDeliveredRequest struct {
	Slot           *phase0.Slot
	Cursor         *uint64
	Limit          *uint64
	BlockHash      *phase0.Hash32
	BlockNumber    *uint64
	ProposerPubkey *phase0.BLSPubKey
	BuilderPubkey  *phase0.BLSPubKey
	Order          *ResultsOrder
}

// WithSlot returns a copy of the request with the slot filter set.
func (r GetBidsDeliveredRequest) WithSlot(slot phase0.Slot) GetBidsDeliveredRequest {
	r.Slot = &slot
	return r
}

// WithCursor returns a copy of the request that only returns bids up to the cursor slot.
func (r GetBidsDeliveredRequest) WithCursor(cursor uint64) GetBidsDeliveredRequest {
	r.Cursor = &cursor
	return r
}

// WithLimit returns a copy of the request with the maximum number of results set.
func (r GetBidsDeliveredRequest) WithLimit(limit uint64) GetBidsDeliveredRequest {
	r.Limit = &limit
	return r
}

// WithBlockHash returns a copy of the request with the block hash filter set.
func (r GetBidsDeliveredRequest) WithBlockHash(blockHash phase0.Hash32) GetBidsDeliveredRequest {
	r.BlockHash = &blockHash
	return r
}

// WithBlockNumber returns a copy of the request with the block number filter set.
func (r GetBidsDeliveredRequest) WithBlockNumber(blockNumber uint64) GetBidsDeliveredRequest {
	r.BlockNumber = &blockNumber
	return r
}

// WithProposerPubkey returns a copy of the request with the proposer pubkey filter set.
func (r GetBidsDeliveredRequest) WithProposerPubkey(pk phase0.BLSPubKey) GetBidsDeliveredRequest {
	r.ProposerPubkey = &pk
	return r
}

// WithBuilderPubkey returns a copy of the request with the builder pubkey filter set.
func (r GetBidsDeliveredRequest) WithBuilderPubkey(pk phase0.BLSPubKey) GetBidsDeliveredRequest {
	r.BuilderPubkey = &pk
	return r
}

// WithOrder returns a copy of the request sorted by value in the given order.
func (r GetBidsDeliveredRequest) WithOrder(order ResultsOrder) GetBidsDeliveredRequest {
	r.Order = &order
	return r
}

// Validate checks the request before it is sent. Slot and cursor are mutually exclusive.
func (r GetBidsDeliveredRequest) Validate() error {
	if r.Slot != nil && r.Cursor != nil {
		return ErrConflictingParams
	}
	return nil
}

// QueryParams returns one query argument per set field.
func (r GetBidsDeliveredRequest) QueryParams() map[string]string {
	args := make(map[string]string)
	if r.Slot != nil {
		args[params.ArgSlot] = strconv.FormatUint(uint64(*r.Slot), 10)
	}
	if r.Cursor != nil {
		args[params.ArgCursor] = strconv.FormatUint(*r.Cursor, 10)
	}
	if r.Limit != nil {
		args[params.ArgLimit] = strconv.FormatUint(*r.Limit, 10)
	}
	if r.BlockHash != nil {
		args[params.ArgBlockHash] = types.HashHex(*r.BlockHash)
	}
	if r.BlockNumber != nil {
		args[params.ArgBlockNumber] = strconv.FormatUint(*r.BlockNumber, 10)
	}
	if r.ProposerPubkey != nil {
		args[params.ArgProposerPubkey] = types.PubkeyHex(*r.ProposerPubkey)
	}
	if r.BuilderPubkey != nil {
		args[params.ArgBuilderPubkey] = types.PubkeyHex(*r.BuilderPubkey)
	}
	if r.Order != nil && r.Order.String() != "" {
		args[params.ArgOrderBy] = r.Order.String()
	}
	return args
}

// GetBidsReceivedRequest filters /relay/v1/data/bidtraces/builder_blocks_received.
// At least one of Slot, BlockHash, BlockNumber or BuilderPubkey is required.
type GetBidsReceivedRequest struct {
	Slot          *phase0.Slot
	BlockHash     *phase0.Hash32
	BlockNumber   *uint64
	BuilderPubkey *phase0.BLSPubKey
	Limit         *uint64
}

// WithSlot returns a copy of the request with the slot filter set.
func (r GetBidsReceivedRequest) WithSlot(slot phase0.Slot) GetBidsReceivedRequest {
	r.Slot = &slot
	return r
}

// WithBlockHash returns a copy of the request with the block hash filter set.
func (r GetBidsReceivedRequest) WithBlockHash(blockHash phase0.Hash32) GetBidsReceivedRequest {
	r.BlockHash = &blockHash
	return r
}

// WithBlockNumber returns a copy of the request with the block number filter set.
func (r GetBidsReceivedRequest) WithBlockNumber(blockNumber uint64) GetBidsReceivedRequest {
	r.BlockNumber = &blockNumber
	return r
}

// WithBuilderPubkey returns a copy of the request with the builder pubkey filter set.
func (r GetBidsReceivedRequest) WithBuilderPubkey(pk phase0.BLSPubKey) GetBidsReceivedRequest {
	r.BuilderPubkey = &pk
	return r
}

// WithLimit returns a copy of the request with the maximum number of results set.
func (r GetBidsReceivedRequest) WithLimit(limit uint64) GetBidsReceivedRequest {
	r.Limit = &limit
	return r
}

// Validate checks the request before it is sent. At least one of the mandatory filters must be set.
func (r GetBidsReceivedRequest) Validate() error {
	if r.Slot == nil && r.BlockHash == nil && r.BlockNumber == nil && r.BuilderPubkey == nil {
		return ErrMissingMandatoryParam
	}
	return nil
}

// QueryParams returns one query argument per set field.
func (r GetBidsReceivedRequest) QueryParams() map[string]string {
	args := make(map[string]string)
	if r.Slot != nil {
		args[params.ArgSlot] = strconv.FormatUint(uint64(*r.Slot), 10)
	}
	if r.BlockHash != nil {
		args[params.ArgBlockHash] = types.HashHex(*r.BlockHash)
	}
	if r.BlockNumber != nil {
		args[params.ArgBlockNumber] = strconv.FormatUint(*r.BlockNumber, 10)
	}
	if r.BuilderPubkey != nil {
		args[params.ArgBuilderPubkey] = types.PubkeyHex(*r.BuilderPubkey)
	}
	if r.Limit != nil {
		args[params.ArgLimit] = strconv.FormatUint(*r.Limit, 10)
	}
	return args
}
