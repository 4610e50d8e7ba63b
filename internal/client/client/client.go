// Package client implements the wire transport for the Orderly CLI: one TLS
// connection carrying newline-framed JSON requests, answered strictly in
// order by the server.
package client

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/orderly-app/orderly/internal/protocol"
)

// Client is the request/response surface the CLI services depend on.
type Client interface {
	Do(ctx context.Context, req protocol.Request) (protocol.Response, error)
	Close() error
}

// TCPClient is a Client over a single TLS connection. Do is serialized with
// a mutex because the protocol has no request ids: the next frame on the
// wire always answers the last request written.
type TCPClient struct {
	mu   sync.Mutex
	conn net.Conn
	sc   *bufio.Scanner
}

// Dial connects to addr and completes the TLS handshake. With insecure set
// the server certificate is not verified, which is how self-signed
// development certificates are used.
func Dial(addr string, insecure bool, timeout time.Duration) (*TCPClient, error) {

	dialer := &net.Dialer{Timeout: timeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{InsecureSkipVerify: insecure})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &TCPClient{
		conn: conn,
		sc:   protocol.NewScanner(conn, protocol.DefaultMaxMessageSize),
	}, nil
}

// Do writes one request and reads the matching response. A context deadline
// is applied to the whole exchange.
func (c *TCPClient) Do(ctx context.Context, req protocol.Request) (protocol.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetDeadline(deadline)
		defer func() { _ = c.conn.SetDeadline(time.Time{}) }()
	}

	if err := protocol.Write(c.conn, req); err != nil {
		return protocol.Response{}, fmt.Errorf("write error: %w", err)
	}

	if !c.sc.Scan() {
		if err := c.sc.Err(); err != nil {
			return protocol.Response{}, fmt.Errorf("read error: %w", err)
		}
		return protocol.Response{}, ErrConnectionClosed
	}

	var resp protocol.Response
	if err := json.Unmarshal(c.sc.Bytes(), &resp); err != nil {
		return protocol.Response{}, fmt.Errorf("decode error: %w", err)
	}

	return resp, nil
}

func (c *TCPClient) Close() error {
	return c.conn.Close()
}
