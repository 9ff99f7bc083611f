package broadcaster

import "go.uber.org/zap"

// Lifecycle is the transport's entry point into the registry.
type Lifecycle struct {
	logger   *zap.Logger
	registry Registry
}

func NewLifecycle(
	logger *zap.Logger,
	registry Registry,
) *Lifecycle {
	return &Lifecycle{
		logger,
		registry,
	}
}

// OnConnect binds the connection to userId and registers it. A connection
// it supersedes is closed here, which lets its own disconnect run as a
// stale unregister.
func (l *Lifecycle) OnConnect(userId string, conn *Connection) error {
	err := conn.Bind(userId)
	if err != nil {
		return err
	}

	previous := l.registry.Register(userId, conn)
	if previous != nil {
		err := previous.Close()
		if err != nil {
			l.logger.Warn("failed to close superseded connection",
				zap.String("connectionId", previous.Id()),
				zap.Error(err))
		}
	}

	return nil
}

func (l *Lifecycle) OnDisconnect(conn *Connection) {
	conn.BeginUnregister()

	if userId := conn.UserId(); userId != "" {
		l.registry.Unregister(userId, conn)
	}

	conn.Close()
}
