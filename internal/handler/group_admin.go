package handler

import (
	"context"

	"github.com/goevery/chat/internal/auth"
	"github.com/goevery/chat/internal/persistence"
	"github.com/samber/lo"
)

type CreateGroupRequest struct {
	Name        string   `json:"name" validate:"required,max=64"`
	Description string   `json:"description" validate:"max=256"`
	MemberIds   []string `json:"memberIds" validate:"max=256,dive,entityid"`
}

// CreateGroupHandler creates a group administered by the caller. The
// caller is always a member and members are de-duplicated.
type CreateGroupHandler struct {
	validator *Validator
	store     persistence.GroupStore
}

func NewCreateGroupHandler(
	validator *Validator,
	store persistence.GroupStore,
) *CreateGroupHandler {
	return &CreateGroupHandler{
		validator,
		store,
	}
}

func (h *CreateGroupHandler) Handle(ctx context.Context, req CreateGroupRequest) (persistence.Group, error) {
	adminId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return persistence.Group{}, err
	}

	err = h.validator.Validate(req)
	if err != nil {
		return persistence.Group{}, err
	}

	return h.store.CreateGroup(ctx, persistence.Group{
		Name:        req.Name,
		Description: req.Description,
		AdminId:     adminId,
		MemberIds:   lo.Uniq(append([]string{adminId}, req.MemberIds...)),
	})
}

type ListGroupsResponse struct {
	Groups []persistence.Group `json:"groups"`
}

type ListGroupsHandler struct {
	store persistence.GroupStore
}

func NewListGroupsHandler(store persistence.GroupStore) *ListGroupsHandler {
	return &ListGroupsHandler{
		store,
	}
}

func (h *ListGroupsHandler) Handle(ctx context.Context) (ListGroupsResponse, error) {
	userId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return ListGroupsResponse{}, err
	}

	groups, err := h.store.ListGroupsForUser(ctx, userId)
	if err != nil {
		return ListGroupsResponse{}, err
	}

	if groups == nil {
		groups = []persistence.Group{}
	}

	return ListGroupsResponse{
		Groups: groups,
	}, nil
}

type GetGroupRequest struct {
	GroupId string `json:"-" validate:"required,entityid"`
}

type GetGroupHandler struct {
	validator *Validator
	store     persistence.GroupStore
}

func NewGetGroupHandler(
	validator *Validator,
	store persistence.GroupStore,
) *GetGroupHandler {
	return &GetGroupHandler{
		validator,
		store,
	}
}

func (h *GetGroupHandler) Handle(ctx context.Context, req GetGroupRequest) (persistence.Group, error) {
	userId, err := auth.UserIdFromContext(ctx)
	if err != nil {
		return persistence.Group{}, err
	}

	err = h.validator.Validate(req)
	if err != nil {
		return persistence.Group{}, err
	}

	return loadGroupAsMember(ctx, h.store, req.GroupId, userId)
}
