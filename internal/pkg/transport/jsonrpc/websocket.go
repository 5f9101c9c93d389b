package jsonrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/netflow/internal/pkg/logger"
	"github.com/gabapcia/netflow/internal/pkg/x/chflow"

	"github.com/gorilla/websocket"
)

// subscriptionBufferSize absorbs notification bursts while the consumer is busy.
const subscriptionBufferSize = 64

// wsConfig holds the WebSocket client settings.
type wsConfig struct {
	handshakeTimeout time.Duration // dial and upgrade deadline
	writeTimeout     time.Duration // deadline for a single frame write
	pingInterval     time.Duration // keepalive ping period
	readTimeout      time.Duration // silence tolerated before the connection is considered dead
}

// WebSocketOption configures the WebSocket client.
type WebSocketOption func(*wsConfig)

// WithHandshakeTimeout bounds the dial. Default: 10 seconds.
func WithHandshakeTimeout(d time.Duration) WebSocketOption {
	return func(c *wsConfig) {
		c.handshakeTimeout = d
	}
}

// WithWriteTimeout bounds every frame write. Default: 10 seconds.
func WithWriteTimeout(d time.Duration) WebSocketOption {
	return func(c *wsConfig) {
		c.writeTimeout = d
	}
}

// WithPingInterval sets the keepalive ping period. Default: 30 seconds.
func WithPingInterval(d time.Duration) WebSocketOption {
	return func(c *wsConfig) {
		c.pingInterval = d
	}
}

// WithReadTimeout sets how long the connection may stay silent (no message,
// no pong) before it is dropped. It should exceed the ping interval.
// Default: 60 seconds.
func WithReadTimeout(d time.Duration) WebSocketOption {
	return func(c *wsConfig) {
		c.readTimeout = d
	}
}

// call is a request waiting for its response.
type call struct {
	resp chan response
	sub  *subscription // set for eth_subscribe calls
}

// subscription routes notifications from the read loop to one forwarder.
// ch is closed by the read loop when the connection ends or the buffer
// overflows; quit is closed by the forwarder when the caller goes away.
type subscription struct {
	ch   chan json.RawMessage
	quit chan struct{}
}

// wsClient is a JSON-RPC client over a single WebSocket connection. It does
// not reconnect: when the connection ends every subscription channel closes
// and later calls fail with ErrClientClosed.
type wsClient struct {
	cfg  wsConfig
	conn *websocket.Conn

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]*call
	subs    map[string]*subscription

	closing   chan struct{} // closed by Close
	done      chan struct{} // closed by the read loop on exit
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Compile-time assertion that wsClient implements the Subscriber interface.
var _ Subscriber = (*wsClient)(nil)

// DialWebSocket connects to endpoint and starts the read and keepalive loops.
func DialWebSocket(ctx context.Context, endpoint string, opts ...WebSocketOption) (*wsClient, error) {
	cfg := wsConfig{
		handshakeTimeout: 10 * time.Second,
		writeTimeout:     10 * time.Second,
		pingInterval:     30 * time.Second,
		readTimeout:      60 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dialer := websocket.Dialer{HandshakeTimeout: cfg.handshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial: %w", err)
	}

	c := &wsClient{
		cfg:     cfg,
		conn:    conn,
		pending: make(map[string]*call),
		subs:    make(map[string]*subscription),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}

	_ = conn.SetReadDeadline(time.Now().Add(cfg.readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(cfg.readTimeout))
	})

	c.wg.Add(2)
	go c.readLoop()
	go c.pingLoop()

	return c, nil
}

// Fetch implements Client.
func (c *wsClient) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	return c.roundTrip(ctx, newRequest(method, params), nil)
}

// Subscribe implements Subscriber.
func (c *wsClient) Subscribe(ctx context.Context, params ...any) (<-chan json.RawMessage, error) {
	sub := &subscription{
		ch:   make(chan json.RawMessage, subscriptionBufferSize),
		quit: make(chan struct{}),
	}

	result, err := c.roundTrip(ctx, newRequest("eth_subscribe", params), sub)
	if err != nil {
		c.discard(sub)
		return nil, err
	}

	var id string
	if err := json.Unmarshal(result, &id); err != nil {
		c.discard(sub)
		return nil, fmt.Errorf("decode subscription id: %w", err)
	}

	out := make(chan json.RawMessage)
	go c.forward(ctx, id, sub, out)

	return out, nil
}

// forward hands notifications of one subscription to its consumer until ctx
// is canceled or the connection ends.
func (c *wsClient) forward(ctx context.Context, id string, sub *subscription, out chan<- json.RawMessage) {
	defer close(out)
	defer c.unsubscribe(id, sub)

	chflow.Forward(ctx, sub.ch, out)
}

// discard drops a subscription that never reached its consumer.
func (c *wsClient) discard(sub *subscription) {
	close(sub.quit)

	c.mu.Lock()
	defer c.mu.Unlock()

	for id, s := range c.subs {
		if s == sub {
			delete(c.subs, id)
		}
	}
}

// unsubscribe stops routing notifications for id and, if the connection is
// still up, tells the server.
func (c *wsClient) unsubscribe(id string, sub *subscription) {
	close(sub.quit)

	c.mu.Lock()
	_, active := c.subs[id]
	delete(c.subs, id)
	c.mu.Unlock()

	if !active {
		return
	}

	c.cancelRemote(id)
}

// cancelRemote asks the server to stop sending notifications for id.
func (c *wsClient) cancelRemote(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.writeTimeout)
	defer cancel()

	if _, err := c.Fetch(ctx, "eth_unsubscribe", id); err != nil {
		logger.Debug(ctx, "failed to cancel subscription", "subscription.id", id, "error", err)
	}
}

// roundTrip writes req and waits for its response. When sub is set and the
// call succeeds, the read loop registers sub under the returned id before it
// reads the next message, so no notification is missed.
func (c *wsClient) roundTrip(ctx context.Context, req request, sub *subscription) (json.RawMessage, error) {
	pending := &call{resp: make(chan response, 1), sub: sub}

	c.mu.Lock()
	select {
	case <-c.done:
		c.mu.Unlock()
		return nil, ErrClientClosed
	default:
	}
	c.pending[req.ID] = pending
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, req.ID)
		c.mu.Unlock()
	}()

	if err := c.write(req); err != nil {
		return nil, fmt.Errorf("write %s request: %w", req.Method, err)
	}

	select {
	case resp := <-pending.resp:
		if err := resp.Err(); err != nil {
			return nil, err
		}

		return resp.result(), nil
	case <-c.done:
		return nil, ErrClientClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *wsClient) write(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(c.cfg.writeTimeout)); err != nil {
		return err
	}

	return c.conn.WriteJSON(v)
}

// readLoop dispatches responses and notifications until the connection ends.
func (c *wsClient) readLoop() {
	defer c.wg.Done()
	defer c.shutdown()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.closing:
			default:
				logger.Warn(context.Background(), "websocket connection ended", "error", err)
			}
			return
		}

		_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.readTimeout))

		var msg response
		if err := json.Unmarshal(payload, &msg); err != nil {
			logger.Warn(context.Background(), "discarding malformed websocket message", "error", err)
			continue
		}

		if msg.Params != nil {
			c.dispatchNotification(msg.Params)
			continue
		}

		c.dispatchResponse(msg)
	}
}

func (c *wsClient) dispatchResponse(msg response) {
	c.mu.Lock()
	pending, ok := c.pending[msg.id()]
	if ok && pending.sub != nil && msg.Error == nil {
		var id string
		if err := json.Unmarshal(msg.Result, &id); err == nil {
			c.subs[id] = pending.sub
		}
	}
	c.mu.Unlock()

	if !ok {
		return
	}

	select {
	case pending.resp <- msg:
	default:
	}
}

// dispatchNotification never blocks: the read loop also carries every
// response, so a consumer that falls more than subscriptionBufferSize
// notifications behind loses its subscription instead of stalling the
// connection. Its channel closes and the server is told to stop.
func (c *wsClient) dispatchNotification(n *notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sub, ok := c.subs[n.Subscription]
	if !ok {
		return
	}

	select {
	case sub.ch <- n.Result:
		return
	case <-sub.quit:
		return
	default:
	}

	logger.Warn(context.Background(), "subscription consumer too slow, dropping subscription",
		"subscription.id", n.Subscription,
		"buffer.size", subscriptionBufferSize,
	)

	delete(c.subs, n.Subscription)
	close(sub.ch)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.cancelRemote(n.Subscription)
	}()
}

// pingLoop keeps the connection alive; a failed ping is left to the read
// deadline to detect.
func (c *wsClient) pingLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cfg.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			_ = c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.cfg.writeTimeout))
		}
	}
}

// shutdown runs once, when the read loop exits: it marks the client closed
// and closes every live subscription. Only the read loop sends on
// subscription channels, so only it may close them.
func (c *wsClient) shutdown() {
	c.mu.Lock()
	close(c.done)
	for id, sub := range c.subs {
		close(sub.ch)
		delete(c.subs, id)
	}
	c.mu.Unlock()

	_ = c.conn.Close()
}

// Close implements Subscriber. It is safe to call more than once.
func (c *wsClient) Close() error {
	c.closeOnce.Do(func() {
		close(c.closing)

		_ = c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(c.cfg.writeTimeout),
		)
		_ = c.conn.Close()
	})

	c.wg.Wait()
	return nil
}
