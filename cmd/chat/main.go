package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/goevery/chat/internal/auth"
	"github.com/goevery/chat/internal/broadcaster"
	"github.com/goevery/chat/internal/handler"
	"github.com/goevery/chat/internal/persistence"
	"github.com/goevery/chat/internal/persistence/mongodb"
	"github.com/goevery/chat/internal/server"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type App struct {
	logger          *zap.Logger
	settings        Settings
	registry        *broadcaster.InMemoryRegistry
	websocketServer *server.WebSocketServer
	restServer      *server.RESTServer
}

func NewApp(logger *zap.Logger, settings Settings, engine persistence.Engine) *App {
	originChecker := server.NewOriginChecker(settings.AllowedOriginList())
	websocketUpgrader := &websocket.Upgrader{
		ReadBufferSize:    1024,
		WriteBufferSize:   1024,
		CheckOrigin:       originChecker.Check,
		EnableCompression: true,
	}

	authenticator := auth.NewAuthenticator(settings.JWTSecret, settings.APIKeyList())
	validator := handler.NewValidator()

	registry := broadcaster.NewInMemoryRegistry(logger)
	dispatcher := broadcaster.NewDispatcher(logger, registry)
	registry.AddListener(broadcaster.NewPresenceTracker(logger, dispatcher))
	lifecycle := broadcaster.NewLifecycle(logger, registry)

	authHandler := handler.NewAuthHandler(validator, authenticator, lifecycle)
	onlineUsersHandler := handler.NewOnlineUsersHandler(registry)

	router := server.NewRouter(
		logger,
		handler.NewHeartbeatHandler(),
		authHandler,
		onlineUsersHandler,
	)

	websocketServer := server.NewWebSocketServer(
		logger,
		websocketUpgrader,
		server.WebSocketSettings{
			SendBufferSize: settings.SendBufferSize,
			ReadLimit:      settings.ReadLimit,
			PingInterval:   settings.PingInterval,
			PongTimeout:    settings.PongTimeout,
			WriteTimeout:   settings.WriteTimeout,
		},
		lifecycle,
		authenticator,
		authHandler,
		router,
	)
	restServer := server.NewRESTServer(
		logger,
		authenticator,
		originChecker,
		server.RESTHandlers{
			SendMessage:       handler.NewSendMessageHandler(validator, engine, dispatcher),
			ListMessages:      handler.NewListMessagesHandler(validator, engine),
			InitiateFriend:    handler.NewInitiateFriendshipHandler(validator, engine, dispatcher),
			RespondFriend:     handler.NewRespondFriendshipHandler(validator, engine, dispatcher),
			DeleteFriendship:  handler.NewDeleteFriendshipHandler(validator, engine, dispatcher),
			RemoveFriend:      handler.NewRemoveFriendHandler(validator, engine, dispatcher),
			ListFriends:       handler.NewListFriendsHandler(engine, registry),
			FriendRequests:    handler.NewFriendRequestsHandler(engine),
			CreateGroup:       handler.NewCreateGroupHandler(validator, engine),
			ListGroups:        handler.NewListGroupsHandler(engine),
			GetGroup:          handler.NewGetGroupHandler(validator, engine),
			SendGroupMessage:  handler.NewSendGroupMessageHandler(validator, engine, dispatcher),
			ListGroupMessages: handler.NewListGroupMessagesHandler(validator, engine),
			OnlineUsers:       onlineUsersHandler,
			Notify:            handler.NewNotifyHandler(validator, dispatcher),
		},
	)

	return &App{
		logger,
		settings,
		registry,
		websocketServer,
		restServer,
	}
}

func (a *App) startHttpServer(ctx context.Context) {
	notifyCtx, notifyCtxCancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer notifyCtxCancel()

	address := fmt.Sprintf("0.0.0.0:%d", a.settings.Port)

	router := mux.NewRouter().
		PathPrefix(a.settings.BasePath).
		Subrouter()

	a.websocketServer.Register(router)
	a.restServer.Register(router)

	httpServer := &http.Server{
		Addr:    address,
		Handler: router,
	}

	a.logger.Info("starting http server",
		zap.String("address", address))

	go func() {
		err := httpServer.ListenAndServe()

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("failed to start http server",
				zap.Error(err))
		}
	}()

	<-notifyCtx.Done()

	a.logger.Info("stopping http server")

	shutdownCtx, shutdownCtxCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCtxCancel()

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		a.logger.Error("http server shutdown failed",
			zap.Error(err))
	}

	// Shutdown does not wait for hijacked websocket connections.
	a.registry.Close()

	a.logger.Info("http server stopped")
}

func connectMongo(ctx context.Context, settings Settings) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(settings.MongoDBURI))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = client.Ping(pingCtx, nil)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	var settings Settings
	_, err := env.UnmarshalFromEnviron(&settings)
	if err != nil {
		panic(fmt.Errorf("failed to parse settings from environment: %w", err))
	}

	logger, err := buildZapLogger(settings.LogEncoding, settings.LogLevel)
	if err != nil {
		panic(fmt.Errorf("failed to build logger: %w", err))
	}
	defer logger.Sync()

	client, err := connectMongo(ctx, settings)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	engine := mongodb.NewPersistenceEngine(client, settings.MongoDBDatabase)

	err = engine.Setup(ctx)
	if err != nil {
		logger.Fatal("failed to set up mongodb indexes", zap.Error(err))
	}

	app := NewApp(logger, settings, engine)
	app.startHttpServer(ctx)
}
