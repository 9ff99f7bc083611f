package handler

import (
	"context"
	"errors"

	"github.com/goevery/chat/internal/auth"
	"github.com/goevery/chat/internal/broadcaster"
	"github.com/goevery/chat/internal/ierr"
)

type AuthRequest struct {
	Token string `json:"token" validate:"required"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	UserId  string `json:"userId"`
}

type Connector interface {
	OnConnect(userId string, conn *broadcaster.Connection) error
}

// AuthHandler authenticates a websocket connection and registers it for
// its user. A connection authenticates at most once.
type AuthHandler struct {
	validator     *Validator
	authenticator *auth.Authenticator
	connector     Connector
}

func NewAuthHandler(
	validator *Validator,
	authenticator *auth.Authenticator,
	connector Connector,
) *AuthHandler {
	return &AuthHandler{
		validator,
		authenticator,
		connector,
	}
}

func (h *AuthHandler) Handle(ctx context.Context, req AuthRequest) (AuthResponse, error) {
	err := h.validator.Validate(req)
	if err != nil {
		return AuthResponse{}, err
	}

	connection, ok := broadcaster.ConnectionFromContext(ctx)
	if !ok {
		return AuthResponse{}, errors.New("connection not found in context")
	}

	if connection.UserId() != "" {
		return AuthResponse{},
			ierr.New(ierr.ErrorCodeFailedPrecondition, errors.New("connection is already authenticated"))
	}

	authentication, err := h.authenticator.AuthenticateJWT(req.Token)
	if err != nil {
		return AuthResponse{}, err
	}

	return h.Connect(connection, authentication)
}

// Connect registers an already authenticated connection, as done for
// tokens presented during the websocket upgrade.
func (h *AuthHandler) Connect(connection *broadcaster.Connection, authentication *auth.Authentication) (AuthResponse, error) {
	userId := authentication.UserId()
	if userId == "" {
		return AuthResponse{},
			ierr.New(ierr.ErrorCodePermissionDenied, errors.New("service credentials cannot open a user connection"))
	}

	err := h.connector.OnConnect(userId, connection)
	if errors.Is(err, broadcaster.ErrAlreadyBound) {
		return AuthResponse{},
			ierr.New(ierr.ErrorCodeFailedPrecondition, errors.New("connection is already authenticated"))
	}
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{
		Success: true,
		UserId:  userId,
	}, nil
}
