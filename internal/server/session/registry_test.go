package session

import (
	"fmt"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipeConn(t *testing.T) net.Conn {
	t.Helper()
	a, b := net.Pipe()
	t.Cleanup(func() {
		_ = a.Close()
		_ = b.Close()
	})
	return a
}

func TestBindAndGet(t *testing.T) {
	r := NewRegistry()
	conn := pipeConn(t)

	r.Bind("u1", "alice", conn)

	s, ok := r.Get("u1")
	require.True(t, ok)
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, conn, s.Conn)
	assert.Equal(t, 1, r.Count())
}

func TestBind_NewLoginOverwrites(t *testing.T) {
	r := NewRegistry()
	first := pipeConn(t)
	second := pipeConn(t)

	r.Bind("u1", "alice", first)
	r.Bind("u1", "alice", second)

	s, ok := r.Get("u1")
	require.True(t, ok)
	assert.Equal(t, second, s.Conn)
	assert.Equal(t, 1, r.Count())
}

func TestRelease_RemovesOnlyOwnedSessions(t *testing.T) {
	r := NewRegistry()
	first := pipeConn(t)
	second := pipeConn(t)

	r.Bind("u1", "alice", first)
	r.Bind("u2", "bob", second)

	// u1 logs in again elsewhere before the old connection dies
	r.Bind("u1", "alice", second)

	r.Release(first)

	_, ok := r.Get("u1")
	assert.True(t, ok, "newer login must survive the stale disconnect")
	_, ok = r.Get("u2")
	assert.True(t, ok)

	r.Release(second)
	assert.Equal(t, 0, r.Count())
}

func TestBind_ConcurrentLoginsNoLostUpdates(t *testing.T) {
	r := NewRegistry()
	conn := pipeConn(t)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Bind(fmt.Sprintf("u%d", i), "user", conn)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, r.Count())

	r.Release(conn)
	assert.Equal(t, 0, r.Count())
}
