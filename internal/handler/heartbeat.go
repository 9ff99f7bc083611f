package handler

import (
	"context"
	"time"

	"github.com/goevery/chat/internal/broadcaster"
)

type HeartbeatResponse struct {
	Timestamp time.Time `json:"timestamp"`
	State     string    `json:"state,omitempty"`
}

type HeartbeatHandler struct{}

func NewHeartbeatHandler() *HeartbeatHandler {
	return &HeartbeatHandler{}
}

func (h *HeartbeatHandler) Handle(ctx context.Context) HeartbeatResponse {
	response := HeartbeatResponse{
		Timestamp: time.Now(),
	}

	if connection, ok := broadcaster.ConnectionFromContext(ctx); ok {
		response.State = connection.State().String()
	}

	return response
}
