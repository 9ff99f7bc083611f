package handler

import (
	"errors"
	"fmt"

	"github.com/goevery/chat/internal/ierr"
	"github.com/goevery/chat/internal/persistence"
)

type FriendRequestSentEvent struct {
	Message    string                 `json:"message"`
	From       string                 `json:"from"`
	Friendship persistence.Friendship `json:"friendship"`
}

type FriendRequestResponseEvent struct {
	Message      string `json:"message"`
	From         string `json:"from"`
	FriendshipId string `json:"friendshipId"`
	Status       string `json:"status"`
}

type FriendRemovedEvent struct {
	Message string `json:"message"`
	From    string `json:"from"`
}

const (
	ResponseStatusAccepted = "accepted"
	ResponseStatusRejected = "rejected"
)

// storeError maps missing and duplicate records to coded errors and passes
// anything else through.
func storeError(err error, what string) error {
	if errors.Is(err, persistence.ErrNotFound) {
		return ierr.New(ierr.ErrorCodeNotFound, fmt.Errorf("%s not found", what))
	}

	if errors.Is(err, persistence.ErrAlreadyExists) {
		return ierr.New(ierr.ErrorCodeAlreadyExists, fmt.Errorf("%s already exists", what))
	}

	return err
}
