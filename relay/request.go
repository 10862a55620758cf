package relay

import (
	"net/http"
	"net/url"
)

// Request describes a single call against the relay API.
type Request struct {
	Method      string
	Path        string
	QueryParams map[string]string
}

// NewGetRequest returns a GET request for path with the given query params.
func NewGetRequest(path string, queryParams map[string]string) Request {
	return Request{
		Method:      http.MethodGet,
		Path:        path,
		QueryParams: queryParams,
	}
}

// URL resolves the request against apiURL. Each query param is set once, so a key can only hold a single value.
func (r Request) URL(apiURL string) (*url.URL, error) {
	u, err := url.Parse(apiURL + r.Path)
	if err != nil {
		return nil, err
	}

	if len(r.QueryParams) == 0 {
		return u, nil
	}

	args := u.Query()
	for key, value := range r.QueryParams {
		args.Set(key, value)
	}
	u.RawQuery = args.Encode()
	return u, nil
}
