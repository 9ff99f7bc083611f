package broadcaster

import "go.uber.org/zap"

// PresenceTracker pushes the full online roster to everyone whenever the
// registry membership changes.
type PresenceTracker struct {
	logger   *zap.Logger
	notifier Notifier
}

func NewPresenceTracker(
	logger *zap.Logger,
	notifier Notifier,
) *PresenceTracker {
	return &PresenceTracker{
		logger,
		notifier,
	}
}

func (t *PresenceTracker) RosterChanged(roster []string) {
	t.logger.Debug("roster changed", zap.Int("online", len(roster)))

	t.notifier.Broadcast(EventOnlineUsers, roster)
}
