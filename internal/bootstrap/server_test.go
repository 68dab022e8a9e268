package bootstrap_test

import (
	"context"
	"net"
	"net/http"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"go-hrm/internal/audit"
	"go-hrm/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (r *recordingAudit) Log(ctx context.Context, entry audit.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}

func TestServe_GracefulShutdownIsAudited(t *testing.T) {
	port := freePort(t)
	rec := &recordingAudit{}
	stop := make(chan os.Signal, 1)

	done := make(chan error, 1)
	go func() {
		done <- bootstrap.Serve(http.NotFoundHandler(), bootstrap.ServerConfig{Port: port}, rec, stop)
	}()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", "127.0.0.1:"+port)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)

	stop <- syscall.SIGTERM

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.entries, 1)
	assert.Equal(t, audit.ActionServerShutdown, rec.entries[0].Action)
	assert.Equal(t, "terminated", rec.entries[0].Meta["signal"])
}
