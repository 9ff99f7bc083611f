package handler

import (
	"context"

	"github.com/goevery/chat/internal/auth"
	"github.com/goevery/chat/internal/broadcaster"
	"github.com/goevery/chat/internal/persistence"
)

type SendMessageRequest struct {
	ReceiverId string `json:"-" validate:"required,entityid"`
	Text       string `json:"text" validate:"required_without=Image,max=4096"`
	Image      string `json:"image" validate:"omitempty,url"`
}

type SendMessageHandler struct {
	validator *Validator
	store     persistence.MessageStore
	notifier  broadcaster.Notifier
}

func NewSendMessageHandler(
	validator *Validator,
	store persistence.MessageStore,
	notifier broadcaster.Notifier,
) *SendMessageHandler {
	return &SendMessageHandler{
		validator,
		store,
		notifier,
	}
}

func (h *SendMessageHandler) Handle(ctx context.Context, req SendMessageRequest) (persistence.Message, error) {
	senderId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return persistence.Message{}, err
	}

	err = h.validator.Validate(req)
	if err != nil {
		return persistence.Message{}, err
	}

	message, err := h.store.SaveMessage(ctx, persistence.Message{
		SenderId:   senderId,
		ReceiverId: req.ReceiverId,
		Text:       req.Text,
		Image:      req.Image,
	})
	if err != nil {
		return persistence.Message{}, err
	}

	h.notifier.SendToUser(req.ReceiverId, broadcaster.EventNewMessage, message)

	return message, nil
}

type ListMessagesRequest struct {
	OtherUserId string `json:"-" validate:"required,entityid"`
}

type ListMessagesHandler struct {
	validator *Validator
	store     persistence.MessageStore
}

func NewListMessagesHandler(
	validator *Validator,
	store persistence.MessageStore,
) *ListMessagesHandler {
	return &ListMessagesHandler{
		validator,
		store,
	}
}

func (h *ListMessagesHandler) Handle(ctx context.Context, req ListMessagesRequest) ([]persistence.Message, error) {
	userId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return nil, err
	}

	err = h.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	messages, err := h.store.ListConversation(ctx, userId, req.OtherUserId)
	if err != nil {
		return nil, err
	}

	if messages == nil {
		messages = []persistence.Message{}
	}

	return messages, nil
}
