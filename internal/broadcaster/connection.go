package broadcaster

import (
	"context"
	"errors"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	ErrConnectionNotAddressable = errors.New("connection is not addressable")
	ErrSendBufferFull           = errors.New("connection send buffer is full")
	ErrAlreadyBound             = errors.New("connection is already bound to a user")
)

type State int

const (
	StateConnecting State = iota
	StateRegistered
	StateActive
	StateUnregistering
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateRegistered:
		return "registered"
	case StateActive:
		return "active"
	case StateUnregistering:
		return "unregistering"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

func (s State) Addressable() bool {
	return s == StateRegistered || s == StateActive
}

// Handle is one live channel to a single client process.
type Handle interface {
	Id() string
	UserId() string
	Send(message Message) error
	Close() error
}

type Connection struct {
	id   string
	send chan Message

	mu     sync.Mutex
	userId string
	state  State
}

func NewConnection(sendBufferSize int) *Connection {
	return &Connection{
		id:    gonanoid.Must(),
		send:  make(chan Message, sendBufferSize),
		state: StateConnecting,
	}
}

func (c *Connection) Id() string {
	return c.id
}

func (c *Connection) UserId() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.userId
}

func (c *Connection) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Bind sets the user once. The connection becomes addressable.
func (c *Connection) Bind(userId string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConnecting {
		return ErrAlreadyBound
	}

	c.userId = userId
	c.state = StateRegistered

	return nil
}

// BeginUnregister stops the connection from accepting new events.
func (c *Connection) BeginUnregister() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return
	}

	c.state = StateUnregistering
}

// Send enqueues the message for the write pump without waiting for it.
func (c *Connection) Send(message Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Addressable() {
		return ErrConnectionNotAddressable
	}

	select {
	case c.send <- message:
		c.state = StateActive

		return nil
	default:
		return ErrSendBufferFull
	}
}

// Outbound is closed once the connection is closed.
func (c *Connection) Outbound() <-chan Message {
	return c.send
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return nil
	}

	c.state = StateClosed
	close(c.send)

	return nil
}

type contextKey string

const connectionKey contextKey = "connection"

func WithConnection(ctx context.Context, conn *Connection) context.Context {
	return context.WithValue(ctx, connectionKey, conn)
}

func ConnectionFromContext(ctx context.Context) (*Connection, bool) {
	conn, ok := ctx.Value(connectionKey).(*Connection)

	return conn, ok
}
