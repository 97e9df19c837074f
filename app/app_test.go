package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubServer 可控的 transport.Server 实现
type stubServer struct {
	running  chan struct{}
	stop     chan struct{}
	shutdown atomic.Bool
}

func newStubServer() *stubServer {
	return &stubServer{
		running: make(chan struct{}),
		stop:    make(chan struct{}),
	}
}

func (s *stubServer) Run() error {
	close(s.running)
	<-s.stop
	return nil
}

func (s *stubServer) Shutdown(context.Context) error {
	s.shutdown.Store(true)
	close(s.stop)
	return nil
}

func TestStartAndStop(t *testing.T) {
	server := newStubServer()
	application := New(WithServer(server), WithShutdownTimeout(time.Second))

	errCh := make(chan error, 1)
	go func() { errCh <- application.Start() }()

	select {
	case <-server.running:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start")
	}

	application.Stop()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("application did not stop")
	}
	assert.True(t, server.shutdown.Load())
}

func TestStartTwice(t *testing.T) {
	application := New()

	errCh := make(chan error, 1)
	go func() { errCh <- application.Start() }()
	time.Sleep(50 * time.Millisecond)

	assert.ErrorIs(t, application.Start(), ErrAlreadyStarted)

	application.Stop()
	require.NoError(t, <-errCh)
}

func TestCloseFuncsRunOnShutdown(t *testing.T) {
	var closed atomic.Bool
	application := New(
		WithClose("test", func(context.Context) error {
			closed.Store(true)
			return nil
		}, time.Second),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- application.Start() }()
	time.Sleep(50 * time.Millisecond)

	application.Stop()
	require.NoError(t, <-errCh)
	assert.True(t, closed.Load())
}

func TestCloseFuncTimeout(t *testing.T) {
	application := New(
		WithClose("slow", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}, 50*time.Millisecond),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- application.Start() }()
	time.Sleep(50 * time.Millisecond)

	start := time.Now()
	application.Stop()
	require.NoError(t, <-errCh)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCloseFuncPanicIsContained(t *testing.T) {
	application := New(
		WithClose("panics", func(context.Context) error {
			panic("boom")
		}, time.Second),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- application.Start() }()
	time.Sleep(50 * time.Millisecond)

	application.Stop()
	require.NoError(t, <-errCh)
}
