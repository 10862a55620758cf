package relay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/flashbots/relay-data/config"
	"github.com/flashbots/relay-data/relay/params"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

func newMockedClient(t *testing.T, apiURL string) (*Client, *httpmock.MockTransport) {
	t.Helper()
	transport := httpmock.NewMockTransport()
	client, err := NewClient(ClientOpts{
		APIURL:     apiURL,
		HTTPClient: &http.Client{Transport: transport},
	})
	require.NoError(t, err)
	return client, transport
}

func TestNewClient(t *testing.T) {
	testCases := []struct {
		name        string
		apiURL      string
		expectedErr error
	}{
		{name: "Default API URL", apiURL: ""},
		{name: "https URL", apiURL: "https://boost-relay.flashbots.net"},
		{name: "URL with port", apiURL: "http://127.0.0.1:18550"},
		{name: "URL with path", apiURL: "https://example.org/relay-api"},
		{name: "Trailing slash", apiURL: "https://boost-relay.flashbots.net/", expectedErr: ErrTrailingSlash},
		{name: "Trailing slash after path", apiURL: "https://example.org/relay-api/", expectedErr: ErrTrailingSlash},
		{name: "Not a URL", apiURL: "boost-relay", expectedErr: ErrInvalidAPIURL},
		{name: "Opaque URL", apiURL: "http:example.org"},
		{name: "URL without host", apiURL: "unix:relay"},
		{name: "Missing scheme", apiURL: "/relay", expectedErr: ErrInvalidAPIURL},
		{name: "Bad IPv6 host", apiURL: "http://[::1", expectedErr: ErrInvalidAPIURL},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(ClientOpts{APIURL: tt.apiURL})
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				require.Nil(t, client)
				return
			}

			require.NoError(t, err)
			if tt.apiURL == "" {
				require.Equal(t, config.DefaultAPIURL, client.APIURL())
			} else {
				require.Equal(t, tt.apiURL, client.APIURL())
			}
		})
	}
}

func TestClientDo(t *testing.T) {
	t.Run("decodes 2xx response", func(t *testing.T) {
		client, transport := newMockedClient(t, "https://example.org")
		transport.RegisterResponder(http.MethodGet, "https://example.org/relay/v1/data/bidtraces/builder_blocks_received?slot=7898580",
			httpmock.NewStringResponder(http.StatusOK, `[{"a":1}]`))

		var dst []map[string]int
		code, err := client.Do(context.Background(), NewGetRequest(params.PathDataBuilderBidsReceived, map[string]string{"slot": "7898580"}), &dst)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, []map[string]int{{"a": 1}}, dst)
		require.Equal(t, 1, transport.GetTotalCallCount())
	})

	t.Run("non-2xx response is a response error", func(t *testing.T) {
		client, transport := newMockedClient(t, "https://example.org")
		transport.RegisterResponder(http.MethodGet, "https://example.org/relay/v1/data/bidtraces/proposer_payload_delivered",
			httpmock.NewStringResponder(http.StatusNotFound, "not found"))

		var dst []map[string]int
		code, err := client.Do(context.Background(), NewGetRequest(params.PathDataProposerPayloadDelivered, nil), &dst)
		require.Equal(t, http.StatusNotFound, code)

		var respErr *ResponseError
		require.ErrorAs(t, err, &respErr)
		require.Equal(t, http.StatusNotFound, respErr.StatusCode)
		require.Equal(t, "not found", respErr.Body)

		var decodeErr *DeserializationError
		require.False(t, errors.As(err, &decodeErr))
	})

	t.Run("undecodable body is a deserialization error", func(t *testing.T) {
		client, transport := newMockedClient(t, "https://example.org")
		transport.RegisterResponder(http.MethodGet, "https://example.org/relay/v1/data/bidtraces/proposer_payload_delivered",
			httpmock.NewStringResponder(http.StatusOK, `{"not":"a list"}`))

		var dst []map[string]int
		_, err := client.Do(context.Background(), NewGetRequest(params.PathDataProposerPayloadDelivered, nil), &dst)

		var decodeErr *DeserializationError
		require.ErrorAs(t, err, &decodeErr)
		require.Error(t, decodeErr.Unwrap())
	})

	t.Run("transport errors are propagated", func(t *testing.T) {
		transportErr := fmt.Errorf("connection refused")
		client, transport := newMockedClient(t, "https://example.org")
		transport.RegisterResponder(http.MethodGet, "https://example.org/relay/v1/data/validator_registration",
			httpmock.NewErrorResponder(transportErr))

		_, err := client.Do(context.Background(), NewGetRequest(params.PathDataValidatorRegistration, nil), nil)
		require.ErrorIs(t, err, transportErr)
	})

	t.Run("canceled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer ts.Close()
		client, err := NewClient(ClientOpts{APIURL: ts.URL})
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = client.Do(ctx, NewGetRequest(params.PathDataValidatorRegistration, nil), nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClientDoHeaders(t *testing.T) {
	headers := make(chan http.Header, 1)

	customUA := "test-user-agent"
	expectedUA := fmt.Sprintf("relay-data/%s %s", config.Version, customUA)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
	}))
	defer ts.Close()

	client, err := NewClient(ClientOpts{APIURL: ts.URL, UserAgent: UserAgent(customUA)})
	require.NoError(t, err)
	code, err := client.Do(context.Background(), NewGetRequest("/", nil), nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)

	h := <-headers
	require.Equal(t, expectedUA, h.Get("User-Agent"))
	require.Equal(t, "application/json", h.Get("Accept"))
	require.NotEmpty(t, h.Get("X-Request-Id"))
}

func TestClientConcurrentUse(t *testing.T) {
	client, transport := newMockedClient(t, "https://example.org")
	transport.RegisterResponder(http.MethodGet, "https://example.org/relay/v1/data/bidtraces/proposer_payload_delivered",
		httpmock.NewStringResponder(http.StatusOK, `[]`))

	errs := make(chan error, 10)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var dst []map[string]int
			_, err := client.Do(context.Background(), NewGetRequest(params.PathDataProposerPayloadDelivered, nil), &dst)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, 10, transport.GetTotalCallCount())
}
