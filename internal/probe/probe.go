package probe

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"time"

	"go.uber.org/zap"
)

// DefaultAddr is the fixed endpoint of the echo peer.
const DefaultAddr = "localhost:6666"

const payload = "Cross-VM TCP Test"

var ErrHalfCloseUnsupported = errors.New("connection does not support write half-close")

// Payload returns a copy of the bytes sent on every run.
func Payload() []byte {
	return []byte(payload)
}

type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

type halfCloser interface {
	CloseWrite() error
}

// Probe sends the fixed payload to an echo peer and checks what comes back.
// A Probe holds no per-run state and may be run repeatedly.
type Probe struct {
	cfg      Config
	addr     string
	dialer   Dialer
	reporter Reporter
	metrics  *metrics
	logger   *zap.Logger
}

func New(logger *zap.Logger, cfg Config, reporter Reporter, registerMetrics bool) *Probe {
	return &Probe{
		cfg:      cfg,
		addr:     DefaultAddr,
		dialer:   &net.Dialer{},
		reporter: reporter,
		metrics:  initMetrics(registerMetrics),
		logger:   logger,
	}
}

// Run performs one connect/send/receive/verify cycle. It never returns an
// error: failures end up in Result.Err with VerdictError. The connection,
// once established, is closed exactly once before Run returns.
func (p *Probe) Run(ctx context.Context) (res Result) {
	start := time.Now()
	res.Expected = len(payload)

	logger := p.logger.With(zap.String("method", "Run"), zap.String("addr", p.addr))

	defer func() {
		res.Duration = time.Since(start)
		p.metrics.record(res)
		logger.Info("probe finished",
			zap.Stringer("verdict", res.Verdict),
			zap.Int("received", len(res.Received)),
			zap.Int("expected", res.Expected),
			zap.Duration("duration", res.Duration),
		)
	}()

	conn, err := p.connect(ctx)
	if err != nil {
		return p.errored(logger, res, err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Warn("close connection failed", zap.Error(err))
		}
	}()

	if err := p.exchange(ctx, conn, &res); err != nil {
		return p.errored(logger, res, err)
	}

	if bytes.Equal(res.Received, []byte(payload)) {
		res.Verdict = VerdictPass
		p.reporter.Passed()
	} else {
		res.Verdict = VerdictFail
		p.reporter.Failed(len(res.Received), res.Expected)
	}
	return res
}

func (p *Probe) connect(ctx context.Context) (net.Conn, error) {
	p.reporter.Connecting()

	dialCtx, cancel := context.WithTimeout(ctx, p.cfg.IOTimeout)
	defer cancel()

	return p.dialer.DialContext(dialCtx, "tcp", p.addr)
}

func (p *Probe) exchange(ctx context.Context, conn net.Conn, res *Result) error {
	data := Payload()

	p.reporter.Sending(len(data))
	_ = conn.SetWriteDeadline(time.Now().Add(p.cfg.IOTimeout))
	n, err := conn.Write(data)
	res.Sent = n
	if err != nil {
		return err
	}
	if n != len(data) {
		return io.ErrShortWrite
	}
	p.reporter.SendCompleted()

	hc, ok := conn.(halfCloser)
	if !ok {
		return ErrHalfCloseUnsupported
	}
	if err := hc.CloseWrite(); err != nil {
		return err
	}

	buf := make([]byte, p.cfg.ReadChunkSize)
	for len(res.Received) < res.Expected {
		p.reporter.Waiting()
		if err := sleepCtx(ctx, p.cfg.PollInterval); err != nil {
			return err
		}

		_ = conn.SetReadDeadline(time.Now().Add(p.cfg.IOTimeout))
		n, err := conn.Read(buf)
		if n > 0 {
			res.Received = append(res.Received, buf[:n]...)
			p.reporter.Received(n, len(res.Received))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break // peer closed
			}
			return err
		}
	}
	return nil
}

func (p *Probe) errored(logger *zap.Logger, res Result, err error) Result {
	logger.Error("probe error", zap.Error(err))
	res.Verdict = VerdictError
	res.Err = err
	p.reporter.Error(err)
	return res
}
