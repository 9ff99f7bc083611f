package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/goevery/chat/internal/auth"
	"github.com/goevery/chat/internal/handler"
	"github.com/goevery/chat/internal/ierr"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type RESTHandlers struct {
	SendMessage       *handler.SendMessageHandler
	ListMessages      *handler.ListMessagesHandler
	InitiateFriend    *handler.InitiateFriendshipHandler
	RespondFriend     *handler.RespondFriendshipHandler
	DeleteFriendship  *handler.DeleteFriendshipHandler
	RemoveFriend      *handler.RemoveFriendHandler
	ListFriends       *handler.ListFriendsHandler
	FriendRequests    *handler.FriendRequestsHandler
	CreateGroup       *handler.CreateGroupHandler
	ListGroups        *handler.ListGroupsHandler
	GetGroup          *handler.GetGroupHandler
	SendGroupMessage  *handler.SendGroupMessageHandler
	ListGroupMessages *handler.ListGroupMessagesHandler
	OnlineUsers       *handler.OnlineUsersHandler
	Notify            *handler.NotifyHandler
}

type ErrorResponse struct {
	Error ierr.Error `json:"error"`
}

type RESTServer struct {
	logger        *zap.Logger
	authenticator *auth.Authenticator
	originChecker *OriginChecker
	handlers      RESTHandlers
}

func NewRESTServer(
	logger *zap.Logger,
	authenticator *auth.Authenticator,
	originChecker *OriginChecker,
	handlers RESTHandlers,
) *RESTServer {
	return &RESTServer{
		logger,
		authenticator,
		originChecker,
		handlers,
	}
}

func (s *RESTServer) Register(router *mux.Router) {
	h := s.handlers

	router.HandleFunc("/messages/{userId}", s.user(func(w http.ResponseWriter, r *http.Request) {
		var req handler.SendMessageRequest
		if !s.decode(w, r, &req) {
			return
		}
		req.ReceiverId = mux.Vars(r)["userId"]

		res, err := h.SendMessage.Handle(r.Context(), req)
		s.respond(w, http.StatusCreated, res, err)
	})).Methods(http.MethodPost, http.MethodOptions)

	router.HandleFunc("/messages/{userId}", s.user(func(w http.ResponseWriter, r *http.Request) {
		res, err := h.ListMessages.Handle(r.Context(), handler.ListMessagesRequest{
			OtherUserId: mux.Vars(r)["userId"],
		})
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/friendships", s.user(func(w http.ResponseWriter, r *http.Request) {
		var req handler.InitiateFriendshipRequest
		if !s.decode(w, r, &req) {
			return
		}

		res, err := h.InitiateFriend.Handle(r.Context(), req)
		s.respond(w, http.StatusCreated, res, err)
	})).Methods(http.MethodPost, http.MethodOptions)

	router.HandleFunc("/friendships/inbox", s.user(func(w http.ResponseWriter, r *http.Request) {
		res, err := h.FriendRequests.Inbox(r.Context())
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/friendships/outgoing", s.user(func(w http.ResponseWriter, r *http.Request) {
		res, err := h.FriendRequests.Outgoing(r.Context())
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/friendships/count", s.user(func(w http.ResponseWriter, r *http.Request) {
		res, err := h.FriendRequests.Count(r.Context())
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/friendships/{id}", s.user(func(w http.ResponseWriter, r *http.Request) {
		var req handler.RespondFriendshipRequest
		if !s.decode(w, r, &req) {
			return
		}
		req.Id = mux.Vars(r)["id"]

		res, err := h.RespondFriend.Handle(r.Context(), req)
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodPatch, http.MethodOptions)

	router.HandleFunc("/friendships/{id}", s.user(func(w http.ResponseWriter, r *http.Request) {
		res, err := h.DeleteFriendship.Handle(r.Context(), handler.DeleteFriendshipRequest{
			Id: mux.Vars(r)["id"],
		})
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodDelete, http.MethodOptions)

	router.HandleFunc("/friends", s.user(func(w http.ResponseWriter, r *http.Request) {
		res, err := h.ListFriends.Handle(r.Context())
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/friends/{userId}", s.user(func(w http.ResponseWriter, r *http.Request) {
		res, err := h.RemoveFriend.Handle(r.Context(), handler.RemoveFriendRequest{
			UserId: mux.Vars(r)["userId"],
		})
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodDelete, http.MethodOptions)

	router.HandleFunc("/groups", s.user(func(w http.ResponseWriter, r *http.Request) {
		var req handler.CreateGroupRequest
		if !s.decode(w, r, &req) {
			return
		}

		res, err := h.CreateGroup.Handle(r.Context(), req)
		s.respond(w, http.StatusCreated, res, err)
	})).Methods(http.MethodPost, http.MethodOptions)

	router.HandleFunc("/groups", s.user(func(w http.ResponseWriter, r *http.Request) {
		res, err := h.ListGroups.Handle(r.Context())
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/groups/{groupId}", s.user(func(w http.ResponseWriter, r *http.Request) {
		res, err := h.GetGroup.Handle(r.Context(), handler.GetGroupRequest{
			GroupId: mux.Vars(r)["groupId"],
		})
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/groups/{groupId}/messages", s.user(func(w http.ResponseWriter, r *http.Request) {
		var req handler.SendGroupMessageRequest
		if !s.decode(w, r, &req) {
			return
		}
		req.GroupId = mux.Vars(r)["groupId"]

		res, err := h.SendGroupMessage.Handle(r.Context(), req)
		s.respond(w, http.StatusCreated, res, err)
	})).Methods(http.MethodPost, http.MethodOptions)

	router.HandleFunc("/groups/{groupId}/messages", s.user(func(w http.ResponseWriter, r *http.Request) {
		res, err := h.ListGroupMessages.Handle(r.Context(), handler.ListGroupMessagesRequest{
			GroupId: mux.Vars(r)["groupId"],
		})
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/online", s.user(func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, http.StatusOK, h.OnlineUsers.Handle(r.Context()), nil)
	})).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/notify", s.service(func(w http.ResponseWriter, r *http.Request) {
		var req handler.NotifyRequest
		if !s.decode(w, r, &req) {
			return
		}

		res, err := h.Notify.Handle(r.Context(), req)
		s.respond(w, http.StatusOK, res, err)
	})).Methods(http.MethodPost, http.MethodOptions)
}

// user authenticates end users by bearer token or the jwt cookie.
func (s *RESTServer) user(next http.HandlerFunc) http.HandlerFunc {
	return s.withCORS(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			if cookie, err := r.Cookie(TokenCookieName); err == nil {
				token = cookie.Value
			}
		}

		if token == "" {
			s.writeError(w, ierr.New(ierr.ErrorCodeUnauthenticated, errors.New("missing token")))
			return
		}

		authentication, err := s.authenticator.AuthenticateJWT(token)
		if err != nil {
			s.writeError(w, err)
			return
		}

		next(w, r.WithContext(auth.WithAuthentication(r.Context(), authentication)))
	})
}

// service authenticates backend callers by api key.
func (s *RESTServer) service(next http.HandlerFunc) http.HandlerFunc {
	return s.withCORS(func(w http.ResponseWriter, r *http.Request) {
		authentication, err := s.authenticator.AuthenticateAPIKey(bearerToken(r))
		if err != nil {
			s.writeError(w, err)
			return
		}

		next(w, r.WithContext(auth.WithAuthentication(r.Context(), authentication)))
	})
}

func (s *RESTServer) withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The origin is echoed rather than "*" so browsers send the jwt cookie.
		origin := r.Header.Get("Origin")
		w.Header().Add("Vary", "Origin")

		if origin != "" && s.originChecker.Allowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

func (s *RESTServer) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		s.writeError(w, ierr.New(ierr.ErrorCodeInvalidArgument, errors.New("invalid request body")))
		return false
	}

	return true
}

func (s *RESTServer) respond(w http.ResponseWriter, status int, body any, err error) {
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, status, body)
}

func (s *RESTServer) writeError(w http.ResponseWriter, err error) {
	var handlerErr ierr.Error
	if !errors.As(err, &handlerErr) {
		s.logger.Error("error in rest handler", zap.Error(err))

		handlerErr = ierr.New(ierr.ErrorCodeInternal, errors.New("internal error"))
	}

	s.writeJSON(w, handlerErr.HTTPStatus(), ErrorResponse{
		Error: handlerErr,
	})
}

func (s *RESTServer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}

	return strings.TrimSpace(token)
}
