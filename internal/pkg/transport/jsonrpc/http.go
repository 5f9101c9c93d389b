package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// httpClient sends JSON-RPC requests as HTTP POSTs.
type httpClient struct {
	endpoint string
	client   *retryablehttp.Client
}

// Compile-time assertion that httpClient implements the Client interface.
var _ Client = (*httpClient)(nil)

// NewHTTPClient returns a Client that posts requests to endpoint through client.
// Transport-level retries are the client's; see pkg/transport/http.
func NewHTTPClient(client *retryablehttp.Client, endpoint string) *httpClient {
	return &httpClient{
		endpoint: endpoint,
		client:   client,
	}
}

// Fetch implements Client.
func (c *httpClient) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	body, err := json.Marshal(newRequest(method, params))
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var data response
	if err := json.Unmarshal(payload, &data); err != nil {
		if res.StatusCode < 200 || res.StatusCode > 299 {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status)
		}

		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.result(), nil
}
