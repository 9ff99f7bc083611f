package handler

import (
	"context"

	"github.com/goevery/chat/internal/broadcaster"
)

type OnlineUsersResponse struct {
	UserIds []string `json:"userIds"`
}

type OnlineUsersHandler struct {
	registry broadcaster.Registry
}

func NewOnlineUsersHandler(registry broadcaster.Registry) *OnlineUsersHandler {
	return &OnlineUsersHandler{
		registry,
	}
}

func (h *OnlineUsersHandler) Handle(ctx context.Context) OnlineUsersResponse {
	return OnlineUsersResponse{
		UserIds: h.registry.SnapshotRoster(),
	}
}
