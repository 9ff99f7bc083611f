package handler

import (
	"context"
	"testing"

	"github.com/goevery/chat/internal/broadcaster"
	"github.com/goevery/chat/internal/ierr"
	"github.com/stretchr/testify/assert"
)

func TestNotifyHandler(t *testing.T) {
	validator := NewValidator()
	payload := map[string]any{"postId": "p1", "likes": 3}

	t.Run("forwards payload verbatim", func(t *testing.T) {
		notifier := broadcaster.NewMockNotifier(t)
		handler := NewNotifyHandler(validator, notifier)

		notifier.On("SendToUser", "bob", "postLiked", payload).Return().Once()

		response, err := handler.Handle(serviceContext(), NotifyRequest{
			UserId:  "bob",
			Event:   "postLiked",
			Payload: payload,
		})

		assert.NoError(t, err)
		assert.True(t, response.Accepted)
	})

	t.Run("users cannot notify", func(t *testing.T) {
		handler := NewNotifyHandler(validator, broadcaster.NewMockNotifier(t))

		_, err := handler.Handle(userContext("alice"), NotifyRequest{UserId: "bob", Event: "postLiked"})

		assert.True(t, ierr.HasCode(err, ierr.ErrorCodePermissionDenied))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewNotifyHandler(validator, broadcaster.NewMockNotifier(t))

		_, err := handler.Handle(context.Background(), NotifyRequest{UserId: "bob", Event: "postLiked"})

		assert.True(t, ierr.HasCode(err, ierr.ErrorCodeUnauthenticated))
	})

	t.Run("presence event cannot be forged", func(t *testing.T) {
		handler := NewNotifyHandler(validator, broadcaster.NewMockNotifier(t))

		_, err := handler.Handle(serviceContext(), NotifyRequest{
			UserId:  "bob",
			Event:   broadcaster.EventOnlineUsers,
			Payload: []string{"mallory"},
		})

		assert.True(t, ierr.HasCode(err, ierr.ErrorCodeInvalidArgument))
	})

	t.Run("invalid event name", func(t *testing.T) {
		handler := NewNotifyHandler(validator, broadcaster.NewMockNotifier(t))

		_, err := handler.Handle(serviceContext(), NotifyRequest{UserId: "bob", Event: "1 bad event"})

		assert.True(t, ierr.HasCode(err, ierr.ErrorCodeInvalidArgument))
	})
}
