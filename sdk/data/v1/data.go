// Package v1 implements the v1 relay data API: bids delivered to proposers, bids received from
// builders and validator registrations.
package v1

import (
	"context"

	builderApiV1 "github.com/attestantio/go-builder-client/api/v1"
	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/flashbots/relay-data/relay"
	"github.com/flashbots/relay-data/relay/params"
	"github.com/flashbots/relay-data/types"
)

// Doer sends a relay request and decodes the response into dst. *relay.Client implements it.
type Doer interface {
	Do(ctx context.Context, r relay.Request, dst any) (code int, err error)
}

// DataV1SDK issues v1 data API calls. Every call is a single request, nothing is retried.
type DataV1SDK struct {
	client Doer
}

// New returns the v1 data API for client.
func New(client Doer) *DataV1SDK {
	return &DataV1SDK{client: client}
}

// GetBidsDelivered returns the payloads delivered to proposers that match the request.
func (s *DataV1SDK) GetBidsDelivered(ctx context.Context, r GetBidsDeliveredRequest) ([]BidDelivered, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var bids []BidDelivered
	req := relay.NewGetRequest(params.PathDataProposerPayloadDelivered, r.QueryParams())
	if _, err := s.client.Do(ctx, req, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// GetBidsReceived returns the builder block submissions that match the request.
func (s *DataV1SDK) GetBidsReceived(ctx context.Context, r GetBidsReceivedRequest) ([]BidReceived, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var bids []BidReceived
	req := relay.NewGetRequest(params.PathDataBuilderBidsReceived, r.QueryParams())
	if _, err := s.client.Do(ctx, req, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// GetValidatorRegistration returns the latest registration the relay holds for the validator.
func (s *DataV1SDK) GetValidatorRegistration(ctx context.Context, pubkey phase0.BLSPubKey) (*builderApiV1.SignedValidatorRegistration, error) {
	registration := new(builderApiV1.SignedValidatorRegistration)
	req := relay.NewGetRequest(params.PathDataValidatorRegistration, map[string]string{
		params.ArgPubkey: types.PubkeyHex(pubkey),
	})
	if _, err := s.client.Do(ctx, req, registration); err != nil {
		return nil, err
	}
	return registration, nil
}
