package probe

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/zhukov-alex/echoprobe/internal/echoserver"
	"github.com/zhukov-alex/echoprobe/internal/mocks"
)

type countingConn struct {
	*net.TCPConn
	closes *atomic.Int32
}

func (c countingConn) Close() error {
	c.closes.Add(1)
	return c.TCPConn.Close()
}

type countingDialer struct {
	d      net.Dialer
	dials  atomic.Int32
	closes atomic.Int32
}

func (d *countingDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	conn, err := d.d.DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}
	d.dials.Add(1)
	return countingConn{TCPConn: conn.(*net.TCPConn), closes: &d.closes}, nil
}

type pipeDialer struct {
	closes atomic.Int32
}

type pipeConn struct {
	net.Conn
	closes *atomic.Int32
}

func (c pipeConn) Close() error {
	c.closes.Add(1)
	return c.Conn.Close()
}

func (d *pipeDialer) DialContext(context.Context, string, string) (net.Conn, error) {
	client, server := net.Pipe()
	go func() {
		_, _ = io.Copy(io.Discard, server)
		server.Close()
	}()
	return pipeConn{Conn: client, closes: &d.closes}, nil
}

func testConfig() Config {
	return Config{
		IOTimeout:     500 * time.Millisecond,
		PollInterval:  10 * time.Millisecond,
		ReadChunkSize: DefaultReadChunkSize,
	}
}

func startServer(t *testing.T, mode echoserver.Mode) string {
	t.Helper()

	srv := echoserver.New(zaptest.NewLogger(t), &echoserver.Config{
		BindAddr:       "127.0.0.1:0",
		MaxConnections: 4,
		ReadTimeout:    time.Second,
		Mode:           mode,
	}, false)
	addr, err := srv.Listen()
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- srv.Serve(context.Background()) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Close(ctx)
		assert.NoError(t, <-served)
	})
	return addr.String()
}

func newTestProbe(t *testing.T, cfg Config, addr string, dialer Dialer, reporter Reporter) *Probe {
	t.Helper()
	return &Probe{
		cfg:      cfg,
		addr:     addr,
		dialer:   dialer,
		reporter: reporter,
		metrics:  initMetrics(false),
		logger:   zaptest.NewLogger(t),
	}
}

func consoleReporter(out *bytes.Buffer) *ConsoleReporter {
	return NewConsoleReporter(out, ConsoleConfig{NoColor: true})
}

func TestRun_EchoPasses(t *testing.T) {
	t.Parallel()
	addr := startServer(t, echoserver.ModeEcho)
	dialer := &countingDialer{}
	var out bytes.Buffer

	p := newTestProbe(t, testConfig(), addr, dialer, consoleReporter(&out))
	res := p.Run(context.Background())

	assert.Equal(t, VerdictPass, res.Verdict)
	assert.True(t, res.Passed())
	assert.NoError(t, res.Err)
	assert.Equal(t, Payload(), res.Received)
	assert.Equal(t, len(Payload()), res.Sent)
	assert.Equal(t, len(Payload()), res.Expected)
	assert.Equal(t, int32(1), dialer.closes.Load())

	assert.Equal(t, ""+
		"[Host] Connecting...\n"+
		"[Host] Sending 17 bytes\n"+
		"[Host] Send completed\n"+
		"[Host] Waiting for response...\n"+
		"[Host] Received 17 bytes (total 17)\n"+
		"[Host] Test PASSED!\n", out.String())

	assert.Equal(t, 1.0, testutil.ToFloat64(p.metrics.runs.WithLabelValues("pass")))
	assert.Equal(t, 17.0, testutil.ToFloat64(p.metrics.bytesReceived))
}

func TestRun_PartialEchoFails(t *testing.T) {
	t.Parallel()
	addr := startServer(t, echoserver.ModePartial)
	dialer := &countingDialer{}
	var out bytes.Buffer

	p := newTestProbe(t, testConfig(), addr, dialer, consoleReporter(&out))
	res := p.Run(context.Background())

	assert.Equal(t, VerdictFail, res.Verdict)
	assert.NoError(t, res.Err)
	assert.Equal(t, Payload()[:8], res.Received)
	assert.Contains(t, out.String(), "[Host] Test FAILED! Received 8/17 bytes\n")
	assert.Equal(t, int32(1), dialer.closes.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(p.metrics.runs.WithLabelValues("fail")))
}

func TestRun_CorruptEchoFails(t *testing.T) {
	t.Parallel()
	addr := startServer(t, echoserver.ModeCorrupt)
	var out bytes.Buffer

	p := newTestProbe(t, testConfig(), addr, &countingDialer{}, consoleReporter(&out))
	res := p.Run(context.Background())

	assert.Equal(t, VerdictFail, res.Verdict)
	assert.Len(t, res.Received, 17)
	assert.NotEqual(t, Payload(), res.Received)
	assert.Contains(t, out.String(), "[Host] Test FAILED! Received 17/17 bytes\n")
}

func TestRun_SilentServerTimesOut(t *testing.T) {
	t.Parallel()
	addr := startServer(t, echoserver.ModeSilent)
	dialer := &countingDialer{}
	var out bytes.Buffer

	cfg := testConfig()
	cfg.IOTimeout = 200 * time.Millisecond
	p := newTestProbe(t, cfg, addr, dialer, consoleReporter(&out))
	res := p.Run(context.Background())

	assert.Equal(t, VerdictError, res.Verdict)
	require.Error(t, res.Err)
	assert.True(t, os.IsTimeout(res.Err), "expected timeout, got %v", res.Err)
	assert.Empty(t, res.Received)
	assert.Contains(t, out.String(), "[Host] Error: ")
	assert.Equal(t, int32(1), dialer.dials.Load())
	assert.Equal(t, int32(1), dialer.closes.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(p.metrics.runs.WithLabelValues("error")))
}

func TestRun_ConnectionRefused(t *testing.T) {
	t.Parallel()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reporter := mocks.NewMockReporter(ctrl)
	gomock.InOrder(
		reporter.EXPECT().Connecting(),
		reporter.EXPECT().Error(gomock.Any()),
	)

	dialer := &countingDialer{}
	p := newTestProbe(t, testConfig(), addr, dialer, reporter)

	var res Result
	assert.NotPanics(t, func() { res = p.Run(context.Background()) })

	assert.Equal(t, VerdictError, res.Verdict)
	assert.ErrorContains(t, res.Err, "refused")
	assert.Equal(t, int32(0), dialer.dials.Load())
	assert.Equal(t, int32(0), dialer.closes.Load())
}

func TestRun_TwiceAgainstSameServer(t *testing.T) {
	t.Parallel()
	addr := startServer(t, echoserver.ModeEcho)
	dialer := &countingDialer{}
	var out bytes.Buffer

	p := newTestProbe(t, testConfig(), addr, dialer, consoleReporter(&out))

	first := p.Run(context.Background())
	second := p.Run(context.Background())

	assert.Equal(t, VerdictPass, first.Verdict)
	assert.Equal(t, VerdictPass, second.Verdict)
	assert.Equal(t, int32(2), dialer.dials.Load())
	assert.Equal(t, int32(2), dialer.closes.Load())
	assert.Equal(t, 2.0, testutil.ToFloat64(p.metrics.runs.WithLabelValues("pass")))
}

func TestRun_PeerClosesWithoutData(t *testing.T) {
	t.Parallel()
	addr := startServer(t, echoserver.ModeClose)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reporter := mocks.NewMockReporter(ctrl)
	gomock.InOrder(
		reporter.EXPECT().Connecting(),
		reporter.EXPECT().Sending(17),
		reporter.EXPECT().SendCompleted(),
		reporter.EXPECT().Waiting().Times(1),
		reporter.EXPECT().Failed(0, 17),
	)

	dialer := &countingDialer{}
	p := newTestProbe(t, testConfig(), addr, dialer, reporter)
	res := p.Run(context.Background())

	assert.Equal(t, VerdictFail, res.Verdict)
	assert.Empty(t, res.Received)
	assert.Equal(t, int32(1), dialer.closes.Load())
}

func TestRun_ContextCanceledDuringPoll(t *testing.T) {
	t.Parallel()
	addr := startServer(t, echoserver.ModeEcho)
	dialer := &countingDialer{}
	var out bytes.Buffer

	cfg := testConfig()
	cfg.PollInterval = time.Hour
	p := newTestProbe(t, cfg, addr, dialer, consoleReporter(&out))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan Result, 1)
	go func() { done <- p.Run(ctx) }()

	select {
	case res := <-done:
		assert.Equal(t, VerdictError, res.Verdict)
		assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("probe did not stop after context cancel")
	}
	assert.Equal(t, int32(1), dialer.closes.Load())
}

func TestRun_HalfCloseUnsupported(t *testing.T) {
	t.Parallel()
	dialer := &pipeDialer{}
	var out bytes.Buffer

	p := newTestProbe(t, testConfig(), "pipe", dialer, consoleReporter(&out))
	res := p.Run(context.Background())

	assert.Equal(t, VerdictError, res.Verdict)
	assert.ErrorIs(t, res.Err, ErrHalfCloseUnsupported)
	assert.Equal(t, 17, res.Sent)
	assert.Equal(t, int32(1), dialer.closes.Load())
}

func TestPayload_IsCopy(t *testing.T) {
	b := Payload()
	b[0] = 'X'
	assert.Equal(t, "Cross-VM TCP Test", string(Payload()))
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.PollInterval = 0
	assert.NoError(t, cfg.Validate())

	bad := []Config{
		{IOTimeout: 0, ReadChunkSize: 1},
		{IOTimeout: time.Second, PollInterval: -time.Second, ReadChunkSize: 1},
		{IOTimeout: time.Second, ReadChunkSize: 0},
	}
	for _, c := range bad {
		assert.Error(t, c.Validate())
	}
}
