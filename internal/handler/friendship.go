package handler

import (
	"context"
	"errors"

	"github.com/goevery/chat/internal/auth"
	"github.com/goevery/chat/internal/broadcaster"
	"github.com/goevery/chat/internal/ierr"
	"github.com/goevery/chat/internal/persistence"
)

type InitiateFriendshipRequest struct {
	UserId string `json:"userId" validate:"required,entityid"`
}

type InitiateFriendshipHandler struct {
	validator *Validator
	store     persistence.FriendshipStore
	notifier  broadcaster.Notifier
}

func NewInitiateFriendshipHandler(
	validator *Validator,
	store persistence.FriendshipStore,
	notifier broadcaster.Notifier,
) *InitiateFriendshipHandler {
	return &InitiateFriendshipHandler{
		validator,
		store,
		notifier,
	}
}

func (h *InitiateFriendshipHandler) Handle(ctx context.Context, req InitiateFriendshipRequest) (persistence.Friendship, error) {
	requesterId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return persistence.Friendship{}, err
	}

	err = h.validator.Validate(req)
	if err != nil {
		return persistence.Friendship{}, err
	}

	if req.UserId == requesterId {
		return persistence.Friendship{},
			ierr.New(ierr.ErrorCodeInvalidArgument, errors.New("cannot befriend yourself"))
	}

	_, err = h.store.FindFriendshipBetween(ctx, requesterId, req.UserId)
	if err == nil {
		return persistence.Friendship{},
			ierr.New(ierr.ErrorCodeAlreadyExists, errors.New("friendship already exists"))
	}
	if !errors.Is(err, persistence.ErrNotFound) {
		return persistence.Friendship{}, err
	}

	friendship, err := h.store.CreateFriendship(ctx, requesterId, req.UserId)
	if err != nil {
		return persistence.Friendship{}, storeError(err, "friendship")
	}

	h.notifier.SendToUser(req.UserId, broadcaster.EventFriendRequestSent, FriendRequestSentEvent{
		Message:    "You have a new friend request",
		From:       requesterId,
		Friendship: friendship,
	})

	return friendship, nil
}

type RespondFriendshipRequest struct {
	Id     string `json:"-" validate:"required,entityid"`
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

type RespondFriendshipResponse struct {
	Status     string                  `json:"status"`
	Friendship *persistence.Friendship `json:"friendship,omitempty"`
}

// RespondFriendshipHandler lets the addressee of a pending request accept
// or reject it. Rejected requests are deleted.
type RespondFriendshipHandler struct {
	validator *Validator
	store     persistence.FriendshipStore
	notifier  broadcaster.Notifier
}

func NewRespondFriendshipHandler(
	validator *Validator,
	store persistence.FriendshipStore,
	notifier broadcaster.Notifier,
) *RespondFriendshipHandler {
	return &RespondFriendshipHandler{
		validator,
		store,
		notifier,
	}
}

func (h *RespondFriendshipHandler) Handle(ctx context.Context, req RespondFriendshipRequest) (RespondFriendshipResponse, error) {
	userId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return RespondFriendshipResponse{}, err
	}

	err = h.validator.Validate(req)
	if err != nil {
		return RespondFriendshipResponse{}, err
	}

	friendship, err := h.store.GetFriendship(ctx, req.Id)
	if err != nil {
		return RespondFriendshipResponse{}, storeError(err, "friendship")
	}

	if friendship.AddresseeId != userId {
		return RespondFriendshipResponse{},
			ierr.New(ierr.ErrorCodePermissionDenied, errors.New("only the addressee can respond to a friend request"))
	}

	if friendship.Status != persistence.FriendshipStatusPending {
		return RespondFriendshipResponse{},
			ierr.New(ierr.ErrorCodeFailedPrecondition, errors.New("friend request is no longer pending"))
	}

	response := RespondFriendshipResponse{
		Status: req.Status,
	}

	if req.Status == ResponseStatusAccepted {
		updated, err := h.store.SetFriendshipStatus(ctx, friendship.Id, persistence.FriendshipStatusAccepted)
		if err != nil {
			return RespondFriendshipResponse{}, storeError(err, "friendship")
		}

		response.Friendship = &updated
	} else {
		err := h.store.DeleteFriendship(ctx, friendship.Id)
		if err != nil {
			return RespondFriendshipResponse{}, storeError(err, "friendship")
		}
	}

	h.notifier.SendToUser(friendship.RequesterId, broadcaster.EventFriendRequestResponse, FriendRequestResponseEvent{
		Message:      "Your friend request was " + req.Status,
		From:         userId,
		FriendshipId: friendship.Id,
		Status:       req.Status,
	})

	return response, nil
}

type DeleteFriendshipRequest struct {
	Id string `json:"-" validate:"required,entityid"`
}

type DeleteFriendshipResponse struct {
	Success bool `json:"success"`
}

// DeleteFriendshipHandler removes a friendship either participant is part of.
// Deleting an accepted friendship tells the other side it was removed;
// the addressee deleting a pending request counts as a rejection.
type DeleteFriendshipHandler struct {
	validator *Validator
	store     persistence.FriendshipStore
	notifier  broadcaster.Notifier
}

func NewDeleteFriendshipHandler(
	validator *Validator,
	store persistence.FriendshipStore,
	notifier broadcaster.Notifier,
) *DeleteFriendshipHandler {
	return &DeleteFriendshipHandler{
		validator,
		store,
		notifier,
	}
}

func (h *DeleteFriendshipHandler) Handle(ctx context.Context, req DeleteFriendshipRequest) (DeleteFriendshipResponse, error) {
	userId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return DeleteFriendshipResponse{}, err
	}

	err = h.validator.Validate(req)
	if err != nil {
		return DeleteFriendshipResponse{}, err
	}

	friendship, err := h.store.GetFriendship(ctx, req.Id)
	if err != nil {
		return DeleteFriendshipResponse{}, storeError(err, "friendship")
	}

	if !friendship.Involves(userId) {
		return DeleteFriendshipResponse{},
			ierr.New(ierr.ErrorCodePermissionDenied, errors.New("not authorized to delete this friendship"))
	}

	err = h.store.DeleteFriendship(ctx, friendship.Id)
	if err != nil {
		return DeleteFriendshipResponse{}, storeError(err, "friendship")
	}

	switch {
	case friendship.Status == persistence.FriendshipStatusAccepted:
		h.notifier.SendToUser(friendship.Other(userId), broadcaster.EventFriendRemoved, FriendRemovedEvent{
			Message: "A friend removed you from their friends",
			From:    userId,
		})
	case friendship.AddresseeId == userId:
		h.notifier.SendToUser(friendship.RequesterId, broadcaster.EventFriendRequestResponse, FriendRequestResponseEvent{
			Message:      "Your friend request was " + ResponseStatusRejected,
			From:         userId,
			FriendshipId: friendship.Id,
			Status:       ResponseStatusRejected,
		})
	}

	return DeleteFriendshipResponse{
		Success: true,
	}, nil
}

type RemoveFriendRequest struct {
	UserId string `json:"-" validate:"required,entityid"`
}

type RemoveFriendHandler struct {
	validator *Validator
	store     persistence.FriendshipStore
	notifier  broadcaster.Notifier
}

func NewRemoveFriendHandler(
	validator *Validator,
	store persistence.FriendshipStore,
	notifier broadcaster.Notifier,
) *RemoveFriendHandler {
	return &RemoveFriendHandler{
		validator,
		store,
		notifier,
	}
}

func (h *RemoveFriendHandler) Handle(ctx context.Context, req RemoveFriendRequest) (DeleteFriendshipResponse, error) {
	userId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return DeleteFriendshipResponse{}, err
	}

	err = h.validator.Validate(req)
	if err != nil {
		return DeleteFriendshipResponse{}, err
	}

	friendship, err := h.store.FindFriendshipBetween(ctx, userId, req.UserId)
	if err != nil {
		return DeleteFriendshipResponse{}, storeError(err, "friend")
	}

	if friendship.Status != persistence.FriendshipStatusAccepted {
		return DeleteFriendshipResponse{},
			ierr.New(ierr.ErrorCodeNotFound, errors.New("friend not found"))
	}

	err = h.store.DeleteFriendship(ctx, friendship.Id)
	if err != nil {
		return DeleteFriendshipResponse{}, storeError(err, "friend")
	}

	h.notifier.SendToUser(req.UserId, broadcaster.EventFriendRemoved, FriendRemovedEvent{
		Message: "A friend removed you from their friends",
		From:    userId,
	})

	return DeleteFriendshipResponse{
		Success: true,
	}, nil
}
