package broadcaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLifecycle(t *testing.T) {
	logger := zap.NewNop()
	registry := NewInMemoryRegistry(logger)
	listener := &countingListener{}
	registry.AddListener(listener)
	lifecycle := NewLifecycle(logger, registry)

	t.Run("reconnect supersedes and stale disconnect is ignored", func(t *testing.T) {
		first := NewConnection(8)
		second := NewConnection(8)

		require.NoError(t, lifecycle.OnConnect("alice", first))
		require.NoError(t, lifecycle.OnConnect("alice", second))
		assert.Equal(t, StateClosed, first.State())

		lifecycle.OnDisconnect(first)

		resolved, ok := registry.Resolve("alice")
		require.True(t, ok)
		assert.Equal(t, second.Id(), resolved.Id())
		assert.Len(t, listener.calls(), 2)

		lifecycle.OnDisconnect(second)
		_, ok = registry.Resolve("alice")
		assert.False(t, ok)
		assert.Equal(t, StateClosed, second.State())
		assert.Len(t, listener.calls(), 3)
	})

	t.Run("binding twice is rejected", func(t *testing.T) {
		conn := NewConnection(8)
		require.NoError(t, lifecycle.OnConnect("bob", conn))

		err := lifecycle.OnConnect("mallory", conn)
		assert.ErrorIs(t, err, ErrAlreadyBound)
		assert.Equal(t, "bob", conn.UserId())

		lifecycle.OnDisconnect(conn)
	})

	t.Run("disconnect before auth does not touch registry", func(t *testing.T) {
		before := len(listener.calls())
		conn := NewConnection(8)

		lifecycle.OnDisconnect(conn)

		assert.Equal(t, StateClosed, conn.State())
		assert.Len(t, listener.calls(), before)
	})
}
