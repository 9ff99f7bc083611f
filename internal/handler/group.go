package handler

import (
	"context"
	"errors"
	"slices"

	"github.com/goevery/chat/internal/auth"
	"github.com/goevery/chat/internal/broadcaster"
	"github.com/goevery/chat/internal/ierr"
	"github.com/goevery/chat/internal/persistence"
	"github.com/samber/lo"
)

type SendGroupMessageRequest struct {
	GroupId string `json:"-" validate:"required,entityid"`
	Text    string `json:"text" validate:"required_without=Image,max=4096"`
	Image   string `json:"image" validate:"omitempty,url"`
}

// SendGroupMessageHandler stores a group message and addresses it to every
// other member individually. Offline members simply miss the event.
type SendGroupMessageHandler struct {
	validator *Validator
	store     persistence.GroupStore
	notifier  broadcaster.Notifier
}

func NewSendGroupMessageHandler(
	validator *Validator,
	store persistence.GroupStore,
	notifier broadcaster.Notifier,
) *SendGroupMessageHandler {
	return &SendGroupMessageHandler{
		validator,
		store,
		notifier,
	}
}

func (h *SendGroupMessageHandler) Handle(ctx context.Context, req SendGroupMessageRequest) (persistence.GroupMessage, error) {
	senderId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return persistence.GroupMessage{}, err
	}

	err = h.validator.Validate(req)
	if err != nil {
		return persistence.GroupMessage{}, err
	}

	group, err := loadGroupAsMember(ctx, h.store, req.GroupId, senderId)
	if err != nil {
		return persistence.GroupMessage{}, err
	}

	message, err := h.store.SaveGroupMessage(ctx, persistence.GroupMessage{
		GroupId:  group.Id,
		SenderId: senderId,
		Text:     req.Text,
		Image:    req.Image,
	})
	if err != nil {
		return persistence.GroupMessage{}, err
	}

	for _, memberId := range lo.Uniq(lo.Without(group.MemberIds, senderId)) {
		h.notifier.SendToUser(memberId, broadcaster.EventNewGroupMessage, message)
	}

	return message, nil
}

type ListGroupMessagesRequest struct {
	GroupId string `json:"-" validate:"required,entityid"`
}

type ListGroupMessagesHandler struct {
	validator *Validator
	store     persistence.GroupStore
}

func NewListGroupMessagesHandler(
	validator *Validator,
	store persistence.GroupStore,
) *ListGroupMessagesHandler {
	return &ListGroupMessagesHandler{
		validator,
		store,
	}
}

func (h *ListGroupMessagesHandler) Handle(ctx context.Context, req ListGroupMessagesRequest) ([]persistence.GroupMessage, error) {
	userId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return nil, err
	}

	err = h.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	group, err := loadGroupAsMember(ctx, h.store, req.GroupId, userId)
	if err != nil {
		return nil, err
	}

	messages, err := h.store.ListGroupMessages(ctx, group.Id)
	if err != nil {
		return nil, err
	}

	if messages == nil {
		messages = []persistence.GroupMessage{}
	}

	return messages, nil
}

func loadGroupAsMember(ctx context.Context, store persistence.GroupStore, groupId string, userId string) (persistence.Group, error) {
	group, err := store.GetGroup(ctx, groupId)
	if err != nil {
		return persistence.Group{}, storeError(err, "group")
	}

	if !slices.Contains(group.MemberIds, userId) {
		return persistence.Group{},
			ierr.New(ierr.ErrorCodePermissionDenied, errors.New("not a member of this group"))
	}

	return group, nil
}
