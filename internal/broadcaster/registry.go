package broadcaster

import (
	"slices"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type RosterListener interface {
	RosterChanged(roster []string)
}

type Registry interface {
	Register(userId string, handle Handle) Handle
	Unregister(userId string, handle Handle) bool
	Resolve(userId string) (Handle, bool)
	SnapshotRoster() []string
	Handles() []Handle
}

// InMemoryRegistry maps a user to its single live handle. One instance is
// built per process and closed on shutdown.
type InMemoryRegistry struct {
	logger *zap.Logger

	// lifecycleMu serializes mutations together with their roster
	// notification; mu guards the map itself.
	lifecycleMu sync.Mutex
	mu          sync.RWMutex

	handles   map[string]Handle
	listeners []RosterListener
	closed    bool
}

func NewInMemoryRegistry(
	logger *zap.Logger,
) *InMemoryRegistry {
	return &InMemoryRegistry{
		logger:  logger,
		handles: make(map[string]Handle),
	}
}

// AddListener must be called before the registry is handed to the transport.
func (r *InMemoryRegistry) AddListener(listener RosterListener) {
	r.lifecycleMu.Lock()
	defer r.lifecycleMu.Unlock()

	r.listeners = append(r.listeners, listener)
}

// Register stores handle as the user's connection and returns the handle it
// superseded, if any. Closing the superseded handle is up to the caller.
func (r *InMemoryRegistry) Register(userId string, handle Handle) Handle {
	if userId == "" || handle == nil {
		r.logger.Warn("ignoring registration without user or handle")

		return nil
	}

	r.lifecycleMu.Lock()
	defer r.lifecycleMu.Unlock()

	r.mu.Lock()

	if r.closed {
		r.mu.Unlock()

		r.logger.Warn("registry is closed, ignoring registration",
			zap.String("userId", userId),
			zap.String("connectionId", handle.Id()))

		return nil
	}

	previous := r.handles[userId]
	r.handles[userId] = handle
	roster := r.snapshotLocked()

	r.mu.Unlock()

	if previous != nil && previous.Id() != handle.Id() {
		r.logger.Info("connection superseded",
			zap.String("userId", userId),
			zap.String("previousConnectionId", previous.Id()),
			zap.String("connectionId", handle.Id()))
	} else {
		previous = nil
	}

	r.notifyLocked(roster)

	return previous
}

// Unregister removes the user's entry only when it still points at handle.
func (r *InMemoryRegistry) Unregister(userId string, handle Handle) bool {
	if handle == nil {
		return false
	}

	r.lifecycleMu.Lock()
	defer r.lifecycleMu.Unlock()

	r.mu.Lock()

	current, ok := r.handles[userId]
	if !ok || current.Id() != handle.Id() {
		r.mu.Unlock()

		r.logger.Debug("stale unregister ignored",
			zap.String("userId", userId),
			zap.String("connectionId", handle.Id()))

		return false
	}

	delete(r.handles, userId)
	roster := r.snapshotLocked()

	r.mu.Unlock()

	r.notifyLocked(roster)

	return true
}

func (r *InMemoryRegistry) Resolve(userId string) (Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handle, ok := r.handles[userId]

	return handle, ok
}

func (r *InMemoryRegistry) SnapshotRoster() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshotLocked()
}

func (r *InMemoryRegistry) Handles() []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Values(r.handles)
}

// Close drops every entry and closes the remaining handles. Later
// registrations are ignored. No roster notification is emitted.
func (r *InMemoryRegistry) Close() {
	r.lifecycleMu.Lock()
	defer r.lifecycleMu.Unlock()

	r.mu.Lock()
	handles := lo.Values(r.handles)
	r.handles = make(map[string]Handle)
	r.closed = true
	r.mu.Unlock()

	for _, handle := range handles {
		if err := handle.Close(); err != nil {
			r.logger.Warn("failed to close connection",
				zap.String("connectionId", handle.Id()),
				zap.Error(err))
		}
	}
}

// IMPORTANT: It must be called only when a read or write lock is already held.
func (r *InMemoryRegistry) snapshotLocked() []string {
	roster := lo.Keys(r.handles)
	slices.Sort(roster)

	return roster
}

// IMPORTANT: It must be called only when lifecycleMu is already held.
func (r *InMemoryRegistry) notifyLocked(roster []string) {
	for _, listener := range r.listeners {
		listener.RosterChanged(roster)
	}
}
