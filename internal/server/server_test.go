package server

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goevery/chat/internal/auth"
	"github.com/goevery/chat/internal/broadcaster"
	"github.com/goevery/chat/internal/handler"
	"github.com/goevery/chat/internal/persistence"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret = "test-secret"
	testAPIKey = "test-api-key"
)

type testStack struct {
	server   *httptest.Server
	registry *broadcaster.InMemoryRegistry
	messages *persistence.MockMessageStore
	friends  *persistence.MockFriendshipStore
	groups   *persistence.MockGroupStore
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	logger := zap.NewNop()

	registry := broadcaster.NewInMemoryRegistry(logger)
	dispatcher := broadcaster.NewDispatcher(logger, registry)
	registry.AddListener(broadcaster.NewPresenceTracker(logger, dispatcher))
	lifecycle := broadcaster.NewLifecycle(logger, registry)

	messages := persistence.NewMockMessageStore(t)
	friends := persistence.NewMockFriendshipStore(t)
	groups := persistence.NewMockGroupStore(t)

	authenticator := auth.NewAuthenticator(testSecret, []string{testAPIKey})
	validator := handler.NewValidator()
	originChecker := NewOriginChecker(nil)

	authHandler := handler.NewAuthHandler(validator, authenticator, lifecycle)
	onlineUsersHandler := handler.NewOnlineUsersHandler(registry)
	router := NewRouter(logger, handler.NewHeartbeatHandler(), authHandler, onlineUsersHandler)

	settings := DefaultWebSocketSettings()
	settings.SendBufferSize = 16

	websocketServer := NewWebSocketServer(
		logger,
		&websocket.Upgrader{CheckOrigin: originChecker.Check},
		settings,
		lifecycle,
		authenticator,
		authHandler,
		router,
	)
	restServer := NewRESTServer(logger, authenticator, originChecker, RESTHandlers{
		SendMessage:       handler.NewSendMessageHandler(validator, messages, dispatcher),
		ListMessages:      handler.NewListMessagesHandler(validator, messages),
		InitiateFriend:    handler.NewInitiateFriendshipHandler(validator, friends, dispatcher),
		RespondFriend:     handler.NewRespondFriendshipHandler(validator, friends, dispatcher),
		DeleteFriendship:  handler.NewDeleteFriendshipHandler(validator, friends, dispatcher),
		RemoveFriend:      handler.NewRemoveFriendHandler(validator, friends, dispatcher),
		ListFriends:       handler.NewListFriendsHandler(friends, registry),
		FriendRequests:    handler.NewFriendRequestsHandler(friends),
		CreateGroup:       handler.NewCreateGroupHandler(validator, groups),
		ListGroups:        handler.NewListGroupsHandler(groups),
		GetGroup:          handler.NewGetGroupHandler(validator, groups),
		SendGroupMessage:  handler.NewSendGroupMessageHandler(validator, groups, dispatcher),
		ListGroupMessages: handler.NewListGroupMessagesHandler(validator, groups),
		OnlineUsers:       onlineUsersHandler,
		Notify:            handler.NewNotifyHandler(validator, dispatcher),
	})

	mainRouter := mux.NewRouter()
	websocketServer.Register(mainRouter)
	restServer.Register(mainRouter)

	server := httptest.NewServer(mainRouter)
	t.Cleanup(func() {
		registry.Close()
		server.Close()
	})

	return &testStack{
		server:   server,
		registry: registry,
		messages: messages,
		friends:  friends,
		groups:   groups,
	}
}

func signToken(t *testing.T, subject string) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{auth.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})

	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}
