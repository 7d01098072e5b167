package bay

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"github.com/micahco/dduwash/internal/bayerr"
)

// Fetcher fetches the latest status list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Result, error)
}

// Transformer reshapes the decoded response body before it is bound to []Result.
type Transformer interface {
	Transform(ctx context.Context, v any) (any, error)
}

// Client fetches the status list from the API with a single GET request.
//
// Client does not retry, and does not set any timeout by itself.
// Use the context to stop a hanging request.
type Client struct {
	URL *url.URL

	// HTTPClient is the client to send request. http.DefaultClient is used if nil.
	HTTPClient *http.Client

	// Transformer is applied to the response body if not nil.
	Transformer Transformer
}

// ResolveEndpoint resolves the API endpoint.
//
// An absolute endpoint is used as-is.
// A relative endpoint such as "/api" is resolved against origin.
func ResolveEndpoint(origin, endpoint string) (*url.URL, error) {
	e, err := url.Parse(endpoint)
	if err != nil {
		return nil, bayerr.New(ErrInvalidEndpoint, err, "failed to parse endpoint")
	}
	if e.IsAbs() {
		return e, nil
	}

	if origin == "" {
		return nil, bayerr.New(ErrInvalidEndpoint, nil, "origin is required for relative endpoint %q", endpoint)
	}
	o, err := url.Parse(origin)
	if err != nil {
		return nil, bayerr.New(ErrInvalidEndpoint, err, "failed to parse origin")
	}
	if !o.IsAbs() || o.Host == "" {
		return nil, bayerr.New(ErrInvalidEndpoint, nil, "origin must be an absolute URL: %q", origin)
	}

	return o.ResolveReference(e), nil
}

// NewClient makes a Client for the endpoint that resolved by ResolveEndpoint.
func NewClient(origin, endpoint string) (*Client, error) {
	u, err := ResolveEndpoint(origin, endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{URL: u}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// Fetch sends GET request to the API and decodes the result list.
//
// The error is ErrCommunicate, ErrHTTPStatus (as *StatusError), ErrInvalidResponse or ErrNoResults.
func (c *Client) Fetch(ctx context.Context) ([]Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL.String(), nil)
	if err != nil {
		return nil, bayerr.New(ErrCommunicate, err, "failed to make request")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, bayerr.New(ErrCommunicate, err, "failed to fetch")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, bayerr.New(ErrCommunicate, err, "failed to read response")
	}

	results, err := c.decode(ctx, raw)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, bayerr.New(ErrNoResults, nil, "No results")
	}

	return results, nil
}

func (c *Client) decode(ctx context.Context, raw []byte) ([]Result, error) {
	if c.Transformer != nil {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, bayerr.New(ErrInvalidResponse, err, "failed to parse response")
		}

		v, err := c.Transformer.Transform(ctx, v)
		if err != nil {
			return nil, bayerr.New(ErrInvalidResponse, err, "failed to transform response")
		}

		raw, err = json.Marshal(v)
		if err != nil {
			return nil, bayerr.New(ErrInvalidResponse, err, "failed to encode transformed response")
		}
	}

	return decodeResults(raw)
}
