package v1

import (
	"encoding/json"
	"errors"

	builderApiV1 "github.com/attestantio/go-builder-client/api/v1"
	"github.com/flashbots/relay-data/types"
)

// BidDelivered is an entry of the proposer_payload_delivered response. On the wire the bid trace
// fields are siblings of BlockNumber and NumTx.
type BidDelivered struct {
	BidTrace    builderApiV1.BidTrace
	BlockNumber uint64
	NumTx       uint64
}

type bidDeliveredJSON struct {
	BlockNumber *types.Uint64Str `json:"block_number"`
	NumTx       *types.Uint64Str `json:"num_tx"`
}

// UnmarshalJSON decodes a flat bid delivered object. block_number and num_tx are required.
func (b *BidDelivered) UnmarshalJSON(input []byte) error {
	var trace builderApiV1.BidTrace
	if err := json.Unmarshal(input, &trace); err != nil {
		return err
	}

	var data bidDeliveredJSON
	if err := json.Unmarshal(input, &data); err != nil {
		return err
	}
	if data.BlockNumber == nil {
		return errors.New("block_number missing")
	}
	if data.NumTx == nil {
		return errors.New("num_tx missing")
	}

	b.BidTrace = trace
	b.BlockNumber = uint64(*data.BlockNumber)
	b.NumTx = uint64(*data.NumTx)
	return nil
}

func (b BidDelivered) MarshalJSON() ([]byte, error) {
	return flattenBidTrace(&b.BidTrace, map[string]any{
		"block_number": types.Uint64Str(b.BlockNumber),
		"num_tx":       types.Uint64Str(b.NumTx),
	})
}

// BidReceived is an entry of the builder_blocks_received response.
type BidReceived struct {
	BidTrace             builderApiV1.BidTrace
	BlockNumber          uint64
	NumTx                uint64
	Timestamp            uint64
	TimestampMs          uint64
	OptimisticSubmission bool
}

type bidReceivedJSON struct {
	BlockNumber          *types.Uint64Str `json:"block_number"`
	NumTx                *types.Uint64Str `json:"num_tx"`
	Timestamp            *types.Uint64Str `json:"timestamp"`
	TimestampMs          *types.Uint64Str `json:"timestamp_ms"`
	OptimisticSubmission bool             `json:"optimistic_submission"`
}

// UnmarshalJSON decodes a flat bid received object. optimistic_submission is optional since
// not every relay implementation sends it.
func (b *BidReceived) UnmarshalJSON(input []byte) error {
	var trace builderApiV1.BidTrace
	if err := json.Unmarshal(input, &trace); err != nil {
		return err
	}

	var data bidReceivedJSON
	if err := json.Unmarshal(input, &data); err != nil {
		return err
	}
	if data.BlockNumber == nil {
		return errors.New("block_number missing")
	}
	if data.NumTx == nil {
		return errors.New("num_tx missing")
	}
	if data.Timestamp == nil {
		return errors.New("timestamp missing")
	}
	if data.TimestampMs == nil {
		return errors.New("timestamp_ms missing")
	}

	b.BidTrace = trace
	b.BlockNumber = uint64(*data.BlockNumber)
	b.NumTx = uint64(*data.NumTx)
	b.Timestamp = uint64(*data.Timestamp)
	b.TimestampMs = uint64(*data.TimestampMs)
	b.OptimisticSubmission = data.OptimisticSubmission
	return nil
}

func (b BidReceived) MarshalJSON() ([]byte, error) {
	return flattenBidTrace(&b.BidTrace, map[string]any{
		"block_number":          types.Uint64Str(b.BlockNumber),
		"num_tx":                types.Uint64Str(b.NumTx),
		"timestamp":             types.Uint64Str(b.Timestamp),
		"timestamp_ms":          types.Uint64Str(b.TimestampMs),
		"optimistic_submission": b.OptimisticSubmission,
	})
}

// flattenBidTrace encodes the bid trace and adds fields next to its own.
func flattenBidTrace(trace *builderApiV1.BidTrace, fields map[string]any) ([]byte, error) {
	traceBytes, err := json.Marshal(trace)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(traceBytes, &merged); err != nil {
		return nil, err
	}

	for key, value := range fields {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[key] = raw
	}
	return json.Marshal(merged)
}
