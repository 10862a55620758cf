// Package sdk groups the relay APIs behind a single entrypoint:
//
//	client, err := relay.NewClient(relay.ClientOpts{APIURL: "https://boost-relay.flashbots.net"})
//	bids, err := sdk.New(client).Data().V1().GetBidsDelivered(ctx, dataV1.GetBidsDeliveredRequest{})
package sdk

import (
	"github.com/flashbots/relay-data/sdk/data"
	dataV1 "github.com/flashbots/relay-data/sdk/data/v1"
)

// RelaySDK is the entrypoint to the relay APIs.
type RelaySDK struct {
	data *data.DataSDK
}

// New returns an SDK sending every request through client, usually a *relay.Client.
func New(client dataV1.Doer) *RelaySDK {
	return &RelaySDK{
		data: data.New(client),
	}
}

// Data returns the relay data API
func (s *RelaySDK) Data() *data.DataSDK {
	return s.data
}
