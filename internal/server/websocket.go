package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/goevery/chat/internal/auth"
	"github.com/goevery/chat/internal/broadcaster"
	"github.com/goevery/chat/internal/handler"
	"github.com/goevery/chat/internal/rpc"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const TokenCookieName = "jwt"

type WebSocketSettings struct {
	SendBufferSize int
	ReadLimit      int64
	PingInterval   time.Duration
	PongTimeout    time.Duration
	WriteTimeout   time.Duration
}

func DefaultWebSocketSettings() WebSocketSettings {
	return WebSocketSettings{
		SendBufferSize: 64,
		ReadLimit:      4096,
		PingInterval:   25 * time.Second,
		PongTimeout:    60 * time.Second,
		WriteTimeout:   10 * time.Second,
	}
}

type WebSocketServer struct {
	logger   *zap.Logger
	upgrader *websocket.Upgrader
	settings WebSocketSettings

	lifecycle     *broadcaster.Lifecycle
	authenticator *auth.Authenticator
	authHandler   *handler.AuthHandler
	router        *Router
}

func NewWebSocketServer(
	logger *zap.Logger,
	upgrader *websocket.Upgrader,
	settings WebSocketSettings,
	lifecycle *broadcaster.Lifecycle,
	authenticator *auth.Authenticator,
	authHandler *handler.AuthHandler,
	router *Router,
) *WebSocketServer {
	return &WebSocketServer{
		logger,
		upgrader,
		settings,
		lifecycle,
		authenticator,
		authHandler,
		router,
	}
}

func (s *WebSocketServer) Register(router *mux.Router) {
	router.HandleFunc("/websocket", s.serve)
}

func (s *WebSocketServer) serve(w http.ResponseWriter, r *http.Request) {
	authentication, err := s.upgradeAuthentication(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	conn := broadcaster.NewConnection(s.settings.SendBufferSize)
	session := &session{
		logger:   s.logger.With(zap.String("connectionId", conn.Id()), zap.String("remoteAddr", r.RemoteAddr)),
		settings: s.settings,
		ws:       ws,
		conn:     conn,
		replies:  make(chan rpc.Response, 8),
		done:     make(chan struct{}),
	}

	session.logger.Info("websocket connection established")

	if authentication != nil {
		_, err := s.authHandler.Connect(conn, authentication)
		if err != nil {
			session.logger.Warn("failed to register connection", zap.Error(err))
		}
	}

	go session.writePump()

	ctx := broadcaster.WithConnection(r.Context(), conn)
	session.readPump(ctx, s.router)

	s.lifecycle.OnDisconnect(conn)

	<-session.done

	session.logger.Info("websocket connection closed", zap.String("userId", conn.UserId()))
}

// upgradeAuthentication reads an optional token from the query string or
// the jwt cookie. No token is not an error; the client may send auth later.
func (s *WebSocketServer) upgradeAuthentication(r *http.Request) (*auth.Authentication, error) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		if cookie, err := r.Cookie(TokenCookieName); err == nil {
			token = cookie.Value
		}
	}

	if token == "" {
		return nil, nil
	}

	return s.authenticator.AuthenticateJWT(token)
}

// session owns one websocket. writePump is the only goroutine writing to
// ws; readPump hands its replies over through the replies channel.
type session struct {
	logger   *zap.Logger
	settings WebSocketSettings

	ws   *websocket.Conn
	conn *broadcaster.Connection

	replies   chan rpc.Response
	done      chan struct{}
	closeCode atomic.Int32
}

func (s *session) readPump(ctx context.Context, router *Router) {
	s.ws.SetReadLimit(s.settings.ReadLimit)
	s.ws.SetReadDeadline(time.Now().Add(s.settings.PongTimeout))
	s.ws.SetPongHandler(func(string) error {
		return s.ws.SetReadDeadline(time.Now().Add(s.settings.PongTimeout))
	})

	for {
		messageType, data, err := s.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("websocket read failed", zap.Error(err))
			}

			return
		}

		if messageType != websocket.TextMessage {
			s.closeCode.Store(websocket.CloseUnsupportedData)
			return
		}

		var request rpc.Request
		if err := json.Unmarshal(data, &request); err != nil {
			s.logger.Debug("malformed frame", zap.Error(err))
			s.closeCode.Store(websocket.CloseUnsupportedData)

			return
		}

		response := router.RouteRequest(ctx, request)
		if response == nil {
			continue
		}

		select {
		case s.replies <- *response:
		case <-s.done:
			return
		}
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(s.settings.PingInterval)

	defer func() {
		ticker.Stop()
		s.ws.Close()
		close(s.done)
	}()

	for {
		select {
		case message, ok := <-s.conn.Outbound():
			if !ok {
				s.writeClose()
				return
			}

			notification, err := rpc.NewEventNotification(message.Event, message.Id, message.CreateTime, message.Payload)
			if err != nil {
				s.logger.Error("failed to encode event",
					zap.String("event", message.Event),
					zap.String("messageId", message.Id),
					zap.Error(err))

				continue
			}

			if err := s.writeJSON(notification); err != nil {
				s.logger.Warn("failed to write event", zap.String("event", message.Event), zap.Error(err))
				return
			}
		case response := <-s.replies:
			if err := s.writeJSON(response); err != nil {
				s.logger.Warn("failed to write reply", zap.Int("requestId", response.RequestId), zap.Error(err))
				return
			}
		case <-ticker.C:
			s.ws.SetWriteDeadline(time.Now().Add(s.settings.WriteTimeout))
			if err := s.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.logger.Debug("ping failed", zap.Error(err))
				return
			}
		}
	}
}

func (s *session) writeJSON(v any) error {
	s.ws.SetWriteDeadline(time.Now().Add(s.settings.WriteTimeout))

	return s.ws.WriteJSON(v)
}

func (s *session) writeClose() {
	code := int(s.closeCode.Load())
	if code == 0 {
		code = websocket.CloseNormalClosure
	}

	err := s.ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, ""),
		time.Now().Add(s.settings.WriteTimeout),
	)
	if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		s.logger.Debug("failed to send close frame", zap.Error(err))
	}
}
