package broadcaster

import (
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRegistry(t *testing.T) (*InMemoryRegistry, *countingListener) {
	t.Helper()

	registry := NewInMemoryRegistry(zap.NewNop())
	listener := &countingListener{}
	registry.AddListener(listener)

	return registry, listener
}

func TestInMemoryRegistry_Register(t *testing.T) {
	t.Run("register makes user resolvable", func(t *testing.T) {
		registry, listener := newTestRegistry(t)
		handle := newFakeHandle("c1", "alice")

		previous := registry.Register("alice", handle)

		assert.Nil(t, previous)
		resolved, ok := registry.Resolve("alice")
		assert.True(t, ok)
		assert.Equal(t, "c1", resolved.Id())
		assert.Equal(t, []string{"alice"}, registry.SnapshotRoster())
		assert.Equal(t, [][]string{{"alice"}}, listener.calls())
	})

	t.Run("second registration supersedes the first", func(t *testing.T) {
		registry, listener := newTestRegistry(t)
		first := newFakeHandle("c1", "alice")
		second := newFakeHandle("c2", "alice")

		registry.Register("alice", first)
		previous := registry.Register("alice", second)

		require.NotNil(t, previous)
		assert.Equal(t, "c1", previous.Id())
		assert.False(t, first.closed, "registry must not close superseded handles")

		resolved, ok := registry.Resolve("alice")
		assert.True(t, ok)
		assert.Equal(t, "c2", resolved.Id())
		assert.Len(t, registry.Handles(), 1)
		assert.Len(t, listener.calls(), 2)
	})

	t.Run("empty user is ignored", func(t *testing.T) {
		registry, listener := newTestRegistry(t)

		registry.Register("", newFakeHandle("c1", ""))

		assert.Empty(t, registry.SnapshotRoster())
		assert.Empty(t, listener.calls())
	})
}

func TestInMemoryRegistry_Unregister(t *testing.T) {
	t.Run("removes current handle", func(t *testing.T) {
		registry, listener := newTestRegistry(t)
		handle := newFakeHandle("c1", "alice")
		registry.Register("alice", handle)

		removed := registry.Unregister("alice", handle)

		assert.True(t, removed)
		_, ok := registry.Resolve("alice")
		assert.False(t, ok)
		assert.Equal(t, [][]string{{"alice"}, {}}, listener.calls())
	})

	t.Run("stale handle does not remove newer entry", func(t *testing.T) {
		registry, listener := newTestRegistry(t)
		stale := newFakeHandle("c1", "alice")
		fresh := newFakeHandle("c2", "alice")
		registry.Register("alice", stale)
		registry.Register("alice", fresh)

		removed := registry.Unregister("alice", stale)

		assert.False(t, removed)
		resolved, ok := registry.Resolve("alice")
		assert.True(t, ok)
		assert.Equal(t, "c2", resolved.Id())
		assert.Len(t, listener.calls(), 2, "no-op unregister must not notify")
	})

	t.Run("unknown user is a no-op", func(t *testing.T) {
		registry, listener := newTestRegistry(t)

		removed := registry.Unregister("ghost", newFakeHandle("c1", "ghost"))

		assert.False(t, removed)
		assert.Empty(t, listener.calls())
	})
}

func TestInMemoryRegistry_RosterMatchesLastOperation(t *testing.T) {
	registry, listener := newTestRegistry(t)
	random := rand.New(rand.NewSource(42))

	users := []string{"u1", "u2", "u3", "u4", "u5"}
	current := make(map[string]Handle)
	var history []Handle
	effective := 0

	for i := 0; i < 500; i++ {
		userId := users[random.Intn(len(users))]

		switch random.Intn(3) {
		case 0:
			handle := newFakeHandle(fmt.Sprintf("c%d", i), userId)
			history = append(history, handle)
			registry.Register(userId, handle)
			current[userId] = handle
			effective++
		case 1:
			handle, ok := current[userId]
			if !ok {
				continue
			}
			assert.True(t, registry.Unregister(userId, handle))
			delete(current, userId)
			effective++
		default:
			if len(history) == 0 {
				continue
			}
			handle := history[random.Intn(len(history))]
			expected := current[handle.UserId()] != nil && current[handle.UserId()].Id() == handle.Id()
			assert.Equal(t, expected, registry.Unregister(handle.UserId(), handle))
			if expected {
				delete(current, handle.UserId())
				effective++
			}
		}

		want := lo.Keys(current)
		slices.Sort(want)
		assert.Equal(t, want, registry.SnapshotRoster())
	}

	calls := listener.calls()
	assert.Len(t, calls, effective)
}

func TestInMemoryRegistry_ConcurrentAccess(t *testing.T) {
	registry, listener := newTestRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			userId := fmt.Sprintf("user-%d", i)
			handle := newFakeHandle(fmt.Sprintf("c%d", i), userId)
			registry.Register(userId, handle)
			registry.SnapshotRoster()
			registry.Resolve(userId)
			registry.Unregister(userId, handle)
		}(i)
	}
	wg.Wait()

	assert.Empty(t, registry.SnapshotRoster())
	assert.Len(t, listener.calls(), 100)
}

func TestInMemoryRegistry_Close(t *testing.T) {
	registry, listener := newTestRegistry(t)
	alice := newFakeHandle("c1", "alice")
	bob := newFakeHandle("c2", "bob")
	registry.Register("alice", alice)
	registry.Register("bob", bob)

	registry.Close()

	assert.True(t, alice.closed)
	assert.True(t, bob.closed)
	assert.Empty(t, registry.SnapshotRoster())

	registry.Register("carol", newFakeHandle("c3", "carol"))
	assert.Empty(t, registry.SnapshotRoster())
	assert.Len(t, listener.calls(), 2)
}
