package broadcaster

import (
	"fmt"

	"go.uber.org/zap"
)

// Notifier is what domain producers see of the dispatcher.
type Notifier interface {
	SendToUser(userId string, event string, payload any)
	Broadcast(event string, payload any)
}

// Dispatcher delivers events to registered handles. Delivery is best effort:
// an offline user is a no-op and a failed send is logged, never returned.
type Dispatcher struct {
	logger   *zap.Logger
	registry Registry
}

func NewDispatcher(
	logger *zap.Logger,
	registry Registry,
) *Dispatcher {
	return &Dispatcher{
		logger,
		registry,
	}
}

func (d *Dispatcher) SendToUser(userId string, event string, payload any) {
	handle, ok := d.registry.Resolve(userId)
	if !ok {
		d.logger.Debug("user offline, event dropped",
			zap.String("userId", userId),
			zap.String("event", event))

		return
	}

	d.deliver(handle, NewMessage(event, payload))
}

func (d *Dispatcher) Broadcast(event string, payload any) {
	message := NewMessage(event, payload)

	for _, handle := range d.registry.Handles() {
		d.deliver(handle, message)
	}
}

func (d *Dispatcher) deliver(handle Handle, message Message) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("panic while delivering event",
				zap.String("connectionId", handle.Id()),
				zap.String("event", message.Event),
				zap.Error(fmt.Errorf("%v", r)))
		}
	}()

	err := handle.Send(message)
	if err != nil {
		d.logger.Warn("failed to deliver event",
			zap.String("connectionId", handle.Id()),
			zap.String("userId", handle.UserId()),
			zap.String("event", message.Event),
			zap.Error(err))
	}
}
