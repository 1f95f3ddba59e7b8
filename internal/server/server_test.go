package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-check/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newListener(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

// startServer runs srv in the background and returns a client pointed at it.
// The server is shut down when the test ends.
func startServer(t *testing.T, srv Server) *resty.Client {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- srv.RunServer() }()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, srv.Shutdown(ctx))
		assert.NoError(t, <-done)
	})

	return resty.New().
		SetBaseURL("http://" + srv.Addr().String()).
		SetTimeout(5 * time.Second).
		SetAllowGetMethodPayload(true)
}

// ── Run: construction ────────────────────────────────────────────────────────

func TestRun_ValidListener(t *testing.T) {
	ln := newListener(t)

	srv, err := Run(ln, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)
	assert.Equal(t, ln.Addr().String(), srv.Addr().String())

	// never driven: Shutdown still releases the socket
	require.NoError(t, srv.Shutdown(context.Background()))
	_, err = ln.Accept()
	assert.ErrorIs(t, err, net.ErrClosed)
}

func TestRun_InvalidListener(t *testing.T) {
	tests := []struct {
		name    string
		make    func(t *testing.T) net.Listener
		wantErr error
	}{
		{
			name:    "nil listener",
			make:    func(t *testing.T) net.Listener { return nil },
			wantErr: errNilListener,
		},
		{
			name: "typed nil TCP listener",
			make: func(t *testing.T) net.Listener {
				var ln *net.TCPListener
				return ln
			},
			wantErr: errNilListener,
		},
		{
			name: "typed nil unix listener",
			make: func(t *testing.T) net.Listener {
				var ln *net.UnixListener
				return ln
			},
			wantErr: errNilListener,
		},
		{
			name: "already closed listener",
			make: func(t *testing.T) net.Listener {
				ln := newListener(t)
				require.NoError(t, ln.Close())
				return ln
			},
		},
		{
			name: "unix socket listener",
			make: func(t *testing.T) net.Listener {
				ln, err := net.Listen("unix", filepath.Join(t.TempDir(), "hc.sock"))
				require.NoError(t, err)
				return ln
			},
			wantErr: errUnsupportedNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln := tt.make(t)

			var (
				srv Server
				err error
			)
			require.NotPanics(t, func() { srv, err = Run(ln, logger.Nop()) })

			assert.Nil(t, srv)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSocketAttach)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			// ownership was transferred: the socket is closed either way
			if !isNilListener(ln) {
				_, acceptErr := ln.Accept()
				assert.Error(t, acceptErr)
			}
		})
	}
}

// wrappedListener hides the descriptor of the embedded listener, the way
// TLS or instrumentation wrappers do.
type wrappedListener struct {
	net.Listener
}

func TestRun_WrappedListenerAccepted(t *testing.T) {
	srv, err := Run(wrappedListener{newListener(t)}, logger.Nop())
	require.NoError(t, err)

	client := startServer(t, srv)
	resp, err := client.R().Get("/health_check")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

// ── RunServer: driven handle ─────────────────────────────────────────────────

func TestRunServer_Routes(t *testing.T) {
	srv, err := Run(newListener(t), logger.Nop())
	require.NoError(t, err)
	client := startServer(t, srv)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantEmpty  bool
	}{
		{
			name:       "GET /health_check",
			method:     resty.MethodGet,
			path:       "/health_check",
			wantStatus: http.StatusOK,
			wantEmpty:  true,
		},
		{
			name:       "GET /health_check with body",
			method:     resty.MethodGet,
			path:       "/health_check",
			body:       `{"ignored":true}`,
			wantStatus: http.StatusOK,
			wantEmpty:  true,
		},
		{
			name:       "POST /health_check",
			method:     resty.MethodPost,
			path:       "/health_check",
			body:       "ping",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "GET /other_path",
			method:     resty.MethodGet,
			path:       "/other_path",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := client.R()
			if tt.body != nil {
				req.SetBody(tt.body)
			}

			resp, err := req.Execute(tt.method, tt.path)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode())
			assert.NotEmpty(t, resp.Header().Get("X-Trace-ID"))
			if tt.wantEmpty {
				assert.Empty(t, resp.Body())
				assert.Equal(t, "0", resp.Header().Get("Content-Length"))
			}
		})
	}
}

func TestRunServer_SequentialProbes(t *testing.T) {
	srv, err := Run(newListener(t), logger.Nop())
	require.NoError(t, err)
	client := startServer(t, srv)

	for i := 0; i < 20; i++ {
		resp, err := client.R().Get("/health_check")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode(), "probe %d", i)
		assert.Empty(t, resp.Body(), "probe %d", i)
	}
}

func TestRunServer_ConcurrentProbes(t *testing.T) {
	srv, err := Run(newListener(t), logger.Nop())
	require.NoError(t, err)
	client := startServer(t, srv)

	const m = 32
	var g errgroup.Group
	for i := 0; i < m; i++ {
		g.Go(func() error {
			resp, err := client.R().Get("/health_check")
			if err != nil {
				return err
			}
			if resp.StatusCode() != http.StatusOK || len(resp.Body()) != 0 {
				return errors.New("unexpected response: " + resp.Status())
			}
			return nil
		})
	}

	assert.NoError(t, g.Wait())
}

func TestRunServer_SecondCallRejected(t *testing.T) {
	srv, err := Run(newListener(t), logger.Nop())
	require.NoError(t, err)
	client := startServer(t, srv)

	// wait until the first RunServer is serving
	_, err = client.R().Get("/health_check")
	require.NoError(t, err)

	assert.ErrorIs(t, srv.RunServer(), ErrServerAlreadyRunning)
}

func TestRunServer_AfterShutdownReturnsImmediately(t *testing.T) {
	srv, err := Run(newListener(t), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, srv.RunServer())
}
