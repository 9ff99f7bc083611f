package broadcaster

import (
	"errors"
	"sync"
)

type fakeHandle struct {
	id     string
	userId string
	err    error
	panics bool

	mu       sync.Mutex
	messages []Message
	closed   bool
}

func newFakeHandle(id string, userId string) *fakeHandle {
	return &fakeHandle{id: id, userId: userId}
}

func (h *fakeHandle) Id() string     { return h.id }
func (h *fakeHandle) UserId() string { return h.userId }

func (h *fakeHandle) Send(message Message) error {
	if h.panics {
		panic("socket exploded")
	}

	if h.err != nil {
		return h.err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.messages = append(h.messages, message)

	return nil
}

func (h *fakeHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}

func (h *fakeHandle) received() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Message(nil), h.messages...)
}

func (h *fakeHandle) receivedEvents(event string) []Message {
	var out []Message
	for _, m := range h.received() {
		if m.Event == event {
			out = append(out, m)
		}
	}

	return out
}

var errBrokenPipe = errors.New("write: broken pipe")

type countingListener struct {
	mu      sync.Mutex
	rosters [][]string
}

func (l *countingListener) RosterChanged(roster []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rosters = append(l.rosters, roster)
}

func (l *countingListener) calls() [][]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([][]string(nil), l.rosters...)
}
