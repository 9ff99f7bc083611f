package handler

import (
	"context"

	"github.com/goevery/chat/internal/auth"
	"github.com/goevery/chat/internal/broadcaster"
	"github.com/goevery/chat/internal/persistence"
	"github.com/samber/lo"
)

type Friend struct {
	UserId string `json:"userId"`
	Online bool   `json:"online"`
}

type ListFriendsResponse struct {
	Friends []Friend `json:"friends"`
}

type ListFriendsHandler struct {
	store    persistence.FriendshipStore
	registry broadcaster.Registry
}

func NewListFriendsHandler(
	store persistence.FriendshipStore,
	registry broadcaster.Registry,
) *ListFriendsHandler {
	return &ListFriendsHandler{
		store,
		registry,
	}
}

func (h *ListFriendsHandler) Handle(ctx context.Context) (ListFriendsResponse, error) {
	userId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return ListFriendsResponse{}, err
	}

	friendIds, err := h.store.ListFriendIds(ctx, userId)
	if err != nil {
		return ListFriendsResponse{}, err
	}

	online := lo.Intersect(friendIds, h.registry.SnapshotRoster())

	return ListFriendsResponse{
		Friends: lo.Map(friendIds, func(friendId string, _ int) Friend {
			return Friend{
				UserId: friendId,
				Online: lo.Contains(online, friendId),
			}
		}),
	}, nil
}

type FriendRequestsResponse struct {
	Requests []persistence.Friendship `json:"requests"`
}

type FriendRequestCountResponse struct {
	Count int64 `json:"count"`
}

// FriendRequestsHandler serves the pending request views of the current user.
type FriendRequestsHandler struct {
	store persistence.FriendshipStore
}

func NewFriendRequestsHandler(store persistence.FriendshipStore) *FriendRequestsHandler {
	return &FriendRequestsHandler{
		store,
	}
}

func (h *FriendRequestsHandler) Inbox(ctx context.Context) (FriendRequestsResponse, error) {
	return h.list(ctx, h.store.ListIncomingRequests)
}

func (h *FriendRequestsHandler) Outgoing(ctx context.Context) (FriendRequestsResponse, error) {
	return h.list(ctx, h.store.ListOutgoingRequests)
}

func (h *FriendRequestsHandler) Count(ctx context.Context) (FriendRequestCountResponse, error) {
	userId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return FriendRequestCountResponse{}, err
	}

	count, err := h.store.CountIncomingRequests(ctx, userId)
	if err != nil {
		return FriendRequestCountResponse{}, err
	}

	return FriendRequestCountResponse{
		Count: count,
	}, nil
}

func (h *FriendRequestsHandler) list(
	ctx context.Context,
	query func(ctx context.Context, userId string) ([]persistence.Friendship, error),
) (FriendRequestsResponse, error) {
	userId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return FriendRequestsResponse{}, err
	}

	requests, err := query(ctx, userId)
	if err != nil {
		return FriendRequestsResponse{}, err
	}

	if requests == nil {
		requests = []persistence.Friendship{}
	}

	return FriendRequestsResponse{
		Requests: requests,
	}, nil
}
