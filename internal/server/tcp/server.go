// Package tcp implements the Orderly wire server: a TLS listener that runs
// one worker goroutine per client connection. Each worker reads
// newline-framed JSON requests, dispatches them to a handler and writes the
// response back on the same connection, strictly one request at a time.
package tcp

import (
	"bufio"
	"context"
	"crypto/tls"
	"errors"
	"net"
	"os"
	"sync"
	"time"

	"github.com/orderly-app/orderly/internal/logging"
	"github.com/orderly-app/orderly/internal/protocol"
	"github.com/orderly-app/orderly/internal/server/config"
	"github.com/orderly-app/orderly/internal/server/models"
	"github.com/orderly-app/orderly/internal/server/services"
	"github.com/orderly-app/orderly/internal/server/session"
)

// userSvc and friendSvc are the service surfaces the router needs.
// The real services satisfy them; tests provide fakes.
type userSvc interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

type friendSvc interface {
	List(ctx context.Context, userID string) ([]models.Friend, error)
	Count(ctx context.Context, userID string) (int64, error)
	Add(ctx context.Context, userID, friendID string) error
	Remove(ctx context.Context, userID, friendID string) error
}

type Server struct {
	address        string
	tlsConfig      *tls.Config
	readTimeout    time.Duration
	maxConns       int
	maxMessageSize int
	users          userSvc
	friends        friendSvc
	sessions       *session.Registry
	logger         logging.Logger
}

// NewServer loads the TLS keypair and assembles the server. A missing or
// unreadable certificate is the only fatal condition besides bind failure.
func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, fs *services.FriendService, sessions *session.Registry) (*Server, error) {

	cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
	if err != nil {
		return nil, err
	}

	return &Server{
		address:        cfg.EndpointAddr,
		tlsConfig:      &tls.Config{Certificates: []tls.Certificate{cert}},
		readTimeout:    cfg.ReadTimeout,
		maxConns:       cfg.MaxConnections,
		maxMessageSize: cfg.MaxMessageSize,
		users:          us,
		friends:        fs,
		sessions:       sessions,
		logger:         l.With("module", "tcp_server"),
	}, nil
}

// Listen announces the configured address in TLS server mode.
func (s *Server) Listen() (net.Listener, error) {
	return tls.Listen("tcp", s.address, s.tlsConfig)
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections until ctx is cancelled or the listener fails.
// The accept loop itself never blocks on per-connection work; each accepted
// connection gets its own goroutine. A full connection semaphore makes new
// connections wait in the kernel backlog rather than spawning workers
// without bound.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping TCP server...")
		_ = listener.Close()
	}()

	s.logger.Info(ctx, "Starting TCP server", "address", listener.Addr().String())

	sem := make(chan struct{}, s.maxConns)
	var wg sync.WaitGroup

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Error(ctx, "accept error", "error", err)
			continue
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			_ = conn.Close()
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			s.handleConn(ctx, conn)
		}()
	}

	wg.Wait()
	return nil
}

// handleConn runs one connection's request/response loop until the peer
// closes, the idle timeout fires, or a frame cannot be read. Requests on a
// single connection are processed strictly in arrival order.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {

	log := s.logger.With("remote", conn.RemoteAddr().String())
	log.Info(ctx, "Client connected")

	defer func() {
		s.sessions.Release(conn)
		_ = conn.Close()
		log.Info(ctx, "Client disconnected")
	}()

	sc := protocol.NewScanner(conn, s.maxMessageSize)

	for {
		if s.readTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.readTimeout))
		}

		if !sc.Scan() {
			switch err := sc.Err(); {
			case err == nil:
				// clean EOF
			case errors.Is(err, bufio.ErrTooLong):
				log.Warn(ctx, "frame exceeds message size limit, closing connection")
				_ = protocol.Write(conn, protocol.Failed(protocol.TypeErrorResponse, "Message too large"))
			case errors.Is(err, os.ErrDeadlineExceeded):
				log.Warn(ctx, "idle timeout, closing connection")
			default:
				log.Warn(ctx, "read error", "error", err)
			}
			return
		}

		if len(sc.Bytes()) == 0 {
			continue
		}

		resp := s.route(ctx, conn, sc.Bytes())

		if err := protocol.Write(conn, resp); err != nil {
			log.Warn(ctx, "write error", "error", err)
			return
		}
	}
}
