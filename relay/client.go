package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/flashbots/relay-data/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UserAgent is a custom string type to avoid confusing url + userAgent parameters
type UserAgent string

// ClientOpts configures a Client. All fields are optional.
type ClientOpts struct {
	// APIURL is the relay base URL without a trailing slash, e.g. https://boost-relay.flashbots.net
	APIURL string

	// HTTPClient executes the requests. It is shared, so it must be safe for concurrent use.
	HTTPClient *http.Client

	// UserAgent is appended to the default relay-data/<version> user agent
	UserAgent UserAgent

	Log *logrus.Entry
}

// Client sends requests to a single relay. It is immutable after construction and safe for concurrent use.
type Client struct {
	apiURL     string
	httpClient *http.Client
	userAgent  string
	log        *logrus.Entry
}

// NewClient validates the API URL and returns a client. An empty APIURL falls back to config.DefaultAPIURL.
// Any absolute URL without a trailing slash is accepted, including URLs without a host.
func NewClient(opts ClientOpts) (*Client, error) {
	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = config.DefaultAPIURL
	}

	if err := validateAPIURL(apiURL); err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.RequestTimeout()}
	}

	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}

	return &Client{
		apiURL:     apiURL,
		httpClient: httpClient,
		userAgent:  strings.TrimSpace(fmt.Sprintf("relay-data/%s %s", config.Version, opts.UserAgent)),
		log:        log.WithField("relay", apiURL),
	}, nil
}

func validateAPIURL(apiURL string) error {
	u, err := url.ParseRequestURI(apiURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAPIURL, err)
	}

	if strings.HasSuffix(apiURL, "/") {
		return ErrTrailingSlash
	}

	if u.Scheme == "" {
		return fmt.Errorf("%w: %s is not an absolute url", ErrInvalidAPIURL, apiURL)
	}
	return nil
}

// APIURL returns the relay base URL
func (c *Client) APIURL() string {
	return c.apiURL
}

// Do sends the request and decodes a 2xx response body into dst if dst is set.
// Non-2xx responses return a *ResponseError, undecodable bodies a *DeserializationError.
func (c *Client) Do(ctx context.Context, r Request, dst any) (code int, err error) {
	u, err := r.URL(c.apiURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAPIURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("could not prepare request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	log := c.log.WithFields(logrus.Fields{
		"method":    r.Method,
		"url":       u.String(),
		"requestID": requestID,
	})
	log.Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("could not read response body for status code %d: %w", resp.StatusCode, err)
	}
	log.WithField("code", resp.StatusCode).Debug("received response")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, &ResponseError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	if dst != nil {
		if err := json.Unmarshal(bodyBytes, dst); err != nil {
			return resp.StatusCode, &DeserializationError{Err: err}
		}
	}

	return resp.StatusCode, nil
}
