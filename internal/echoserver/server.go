package echoserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaxRequestSize bounds how much a single client may send before half-closing.
const MaxRequestSize = 64 * 1024

const writeTimeout = 5 * time.Second

var errRequestTooLarge = fmt.Errorf("request exceeds %d bytes", MaxRequestSize)

var readBufPool = sync.Pool{
	New: func() any { return make([]byte, 4096) },
}

// Server is the peer the probe talks to: it reads a request until the client
// half-closes the connection and answers according to its Mode.
type Server struct {
	cfg       *Config
	metrics   *metrics
	mu        sync.Mutex
	listener  net.Listener
	handlers  errgroup.Group
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	logger    *zap.Logger
}

func New(logger *zap.Logger, cfg *Config, registerMetrics bool) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:     cfg,
		metrics: initMetrics(registerMetrics),
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
	}
	s.handlers.SetLimit(cfg.MaxConnections)
	return s
}

// Listen binds the server's address. Serve calls it when it was not called before.
func (s *Server) Listen() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr(), nil
	}
	if s.ctx.Err() != nil {
		return nil, net.ErrClosed
	}
	listener, err := net.Listen("tcp", s.cfg.BindAddr)
	if err != nil {
		return nil, err
	}
	s.listener = listener
	return listener.Addr(), nil
}

func (s *Server) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, s.cancel)
	defer stop()

	addr, err := s.Listen()
	if err != nil {
		return err
	}

	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	s.logger.Info("echo server started", zap.Stringer("addr", addr), zap.String("mode", string(s.cfg.Mode)))

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || s.ctx.Err() != nil {
				return nil // graceful shutdown
			}

			s.logger.Error("tcp accept failed", zap.Error(err))
			s.metrics.incError()
			continue
		}

		started := s.handlers.TryGo(func() error {
			s.handleConn(conn)
			return nil
		})
		if !started {
			s.logger.Warn("too many connections - rejecting client", zap.Stringer("remote", conn.RemoteAddr()))
			s.metrics.rejected.Inc()
			conn.Close()
			continue
		}
		s.metrics.accepted.Inc()
	}
}

func (s *Server) Close(ctx context.Context) error {
	var err error
	s.closeOnce.Do(func() {
		s.logger.Info("echo server shutting down...")

		s.cancel()

		s.mu.Lock()
		if s.listener != nil {
			err = s.listener.Close()
		}
		s.mu.Unlock()

		done := make(chan struct{})
		go func() {
			_ = s.handlers.Wait()
			close(done)
		}()

		select {
		case <-done:
			s.logger.Info("echo server shutdown complete")
		case <-ctx.Done():
			err = ctx.Err()
			s.logger.Warn("echo server shutdown timeout", zap.Error(err))
		}
	})
	return err
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	logger := s.logger.With(zap.String("method", "handleConn"), zap.Stringer("remote", conn.RemoteAddr()))

	req, err := s.readRequest(conn)
	if err != nil {
		if os.IsTimeout(err) {
			logger.Warn("timeout waiting for client half-close")
		} else {
			logger.Error("read request error", zap.Error(err))
		}
		s.metrics.incError()
		return
	}
	logger.Debug("request received", zap.Int("bytes", len(req)))

	switch s.cfg.Mode {
	case ModeSilent:
		<-s.ctx.Done()
		return
	case ModeClose:
		return
	}

	resp := s.cfg.Mode.response(req)
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	n, err := conn.Write(resp)
	s.metrics.bytesEchoed.Add(float64(n))
	if err != nil {
		logger.Error("write response error", zap.Error(err))
		s.metrics.incError()
		return
	}
	logger.Debug("response sent", zap.Int("bytes", n))
}

// readRequest reads until EOF, which the client produces by half-closing.
func (s *Server) readRequest(conn net.Conn) ([]byte, error) {
	buf := readBufPool.Get().([]byte)
	defer readBufPool.Put(buf)

	var req []byte
	for {
		select {
		case <-s.ctx.Done():
			return nil, s.ctx.Err()
		default:
		}

		_ = conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
		n, err := conn.Read(buf)
		req = append(req, buf[:n]...)
		if len(req) > MaxRequestSize {
			return nil, errRequestTooLarge
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return req, nil
			}
			return nil, err
		}
	}
}

func (m Mode) response(req []byte) []byte {
	switch m {
	case ModePartial:
		return req[:len(req)/2]
	case ModeCorrupt:
		out := make([]byte, len(req))
		for i, b := range req {
			out[i] = ^b
		}
		return out
	case ModeSilent, ModeClose:
		return nil
	default:
		return req
	}
}
