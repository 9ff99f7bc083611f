package handler

import (
	"context"
	"errors"

	"github.com/goevery/chat/internal/auth"
	"github.com/goevery/chat/internal/broadcaster"
	"github.com/goevery/chat/internal/ierr"
)

type NotifyRequest struct {
	UserId  string `json:"userId" validate:"required,entityid"`
	Event   string `json:"event" validate:"required,eventname"`
	Payload any    `json:"payload"`
}

type NotifyResponse struct {
	Accepted bool `json:"accepted"`
}

// NotifyHandler lets backend services push an event to one user. Whether
// the user was online is deliberately not reported.
type NotifyHandler struct {
	validator *Validator
	notifier  broadcaster.Notifier
}

func NewNotifyHandler(
	validator *Validator,
	notifier broadcaster.Notifier,
) *NotifyHandler {
	return &NotifyHandler{
		validator,
		notifier,
	}
}

func (h *NotifyHandler) Handle(ctx context.Context, req NotifyRequest) (NotifyResponse, error) {
	authentication, ok := auth.AuthenticationFromContext(ctx)
	if !ok {
		return NotifyResponse{}, ierr.New(ierr.ErrorCodeUnauthenticated, errors.New("caller not authenticated"))
	}

	if !authentication.IsService {
		return NotifyResponse{},
			ierr.New(ierr.ErrorCodePermissionDenied, errors.New("only services may send notifications"))
	}

	err := h.validator.Validate(req)
	if err != nil {
		return NotifyResponse{}, err
	}

	if broadcaster.IsReservedEvent(req.Event) {
		return NotifyResponse{},
			ierr.New(ierr.ErrorCodeInvalidArgument, errors.New("event is reserved: "+req.Event))
	}

	h.notifier.SendToUser(req.UserId, req.Event, req.Payload)

	return NotifyResponse{
		Accepted: true,
	}, nil
}
