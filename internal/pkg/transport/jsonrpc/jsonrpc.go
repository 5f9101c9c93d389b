// Package jsonrpc provides JSON-RPC 2.0 clients over HTTP and WebSocket.
// The HTTP client is request/response only; the WebSocket client also
// supports server-pushed subscriptions (eth_subscribe).
package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const version = "2.0"

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus is returned when an HTTP response carries no JSON-RPC payload.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrClientClosed is returned by calls made after the connection ended.
	ErrClientClosed = errors.New("jsonrpc client closed")
)

// Client sends JSON-RPC requests.
type Client interface {
	// Fetch sends a request with the given method name and parameters and
	// returns the raw result. A JSON null result is returned as the literal
	// "null" so callers can tell it apart from a transport failure.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// Subscriber is a Client that can also receive server-pushed notifications.
type Subscriber interface {
	Client

	// Subscribe calls eth_subscribe with params and streams the result of
	// every notification for the new subscription. The channel is closed when
	// ctx is canceled, the connection ends or the caller falls too far behind
	// the notifications.
	Subscribe(ctx context.Context, params ...any) (<-chan json.RawMessage, error)

	// Close ends the connection and every subscription on it.
	Close() error
}

// request is a JSON-RPC 2.0 request. IDs are random UUID strings.
type request struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

func newRequest(method string, params []any) request {
	if params == nil {
		params = []any{}
	}

	return request{
		JsonRPC: version,
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	}
}

// rpcError is the error object of a JSON-RPC response.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// response is a JSON-RPC 2.0 response or, over WebSocket, a notification.
type response struct {
	JsonRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`

	// Set on subscription notifications only.
	Method string        `json:"method,omitempty"`
	Params *notification `json:"params,omitempty"`
}

// notification is the params object of an eth_subscription message.
type notification struct {
	Subscription string          `json:"subscription"`
	Result       json.RawMessage `json:"result"`
}

// Err returns an error if the response includes a JSON-RPC error object.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// id returns the request id the response answers, or "" for notifications.
func (r response) id() string {
	var id string
	if err := json.Unmarshal(r.ID, &id); err != nil {
		return ""
	}

	return id
}

// result returns the result payload, mapping an absent result to null.
func (r response) result() json.RawMessage {
	if len(r.Result) == 0 {
		return json.RawMessage("null")
	}

	return r.Result
}
