package broadcaster

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

type Message struct {
	Id         string    `json:"id"`
	CreateTime time.Time `json:"createTime"`
	Event      string    `json:"event"`
	Payload    any       `json:"payload"`
}

// NewMessage stamps an outbound event. The payload is carried as given.
func NewMessage(event string, payload any) Message {
	return Message{
		Id:         gonanoid.Must(),
		CreateTime: time.Now(),
		Event:      event,
		Payload:    payload,
	}
}
