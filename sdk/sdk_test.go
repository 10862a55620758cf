package sdk

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/flashbots/relay-data/relay"
	"github.com/flashbots/relay-data/relay/params"
	dataV1 "github.com/flashbots/relay-data/sdk/data/v1"
	"github.com/flashbots/relay-data/testutils"
	"github.com/stretchr/testify/require"
)

type recordingDoer struct {
	requests []relay.Request
	body     string
}

func (d *recordingDoer) Do(_ context.Context, r relay.Request, dst any) (int, error) {
	d.requests = append(d.requests, r)
	return 200, json.Unmarshal([]byte(d.body), dst)
}

func TestRelaySDK(t *testing.T) {
	doer := &recordingDoer{body: "[" + testutils.BidDeliveredJSON + "]"}
	relaySDK := New(doer)
	require.Same(t, relaySDK.Data(), relaySDK.Data())
	require.Same(t, relaySDK.Data().V1(), relaySDK.Data().V1())

	bids, err := relaySDK.Data().V1().GetBidsDelivered(context.Background(), dataV1.GetBidsDeliveredRequest{}.WithSlot(7898580))
	require.NoError(t, err)
	require.Len(t, bids, 1)

	require.Len(t, doer.requests, 1)
	require.Equal(t, relay.Request{
		Method:      "GET",
		Path:        params.PathDataProposerPayloadDelivered,
		QueryParams: map[string]string{"slot": "7898580"},
	}, doer.requests[0])
}

func TestRelaySDKWithClient(t *testing.T) {
	mockRelay := testutils.NewMockRelay(t)
	client, err := relay.NewClient(relay.ClientOpts{APIURL: mockRelay.Server.URL})
	require.NoError(t, err)

	reg, err := New(client).Data().V1().GetValidatorRegistration(context.Background(), mockRelay.ValidatorPubkey)
	require.NoError(t, err)
	require.Equal(t, mockRelay.ValidatorPubkey, reg.Message.Pubkey)
	require.Equal(t, 1, mockRelay.GetRequestCount(params.PathDataValidatorRegistration))
}
