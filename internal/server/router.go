package server

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/goevery/chat/internal/handler"
	"github.com/goevery/chat/internal/ierr"
	"github.com/goevery/chat/internal/rpc"
	"go.uber.org/zap"
)

const (
	MethodHeartbeat      = "heartbeat"
	MethodAuth           = "auth"
	MethodGetOnlineUsers = "getOnlineUsers"
)

type methodFunc func(ctx context.Context, params *json.RawMessage) (any, error)

// Router dispatches inbound websocket frames by method name. Each method
// has exactly one handler.
type Router struct {
	logger  *zap.Logger
	methods map[string]methodFunc
}

func NewRouter(
	logger *zap.Logger,
	heartbeatHandler *handler.HeartbeatHandler,
	authHandler *handler.AuthHandler,
	onlineUsersHandler *handler.OnlineUsersHandler,
) *Router {
	return &Router{
		logger: logger,
		methods: map[string]methodFunc{
			MethodHeartbeat: func(ctx context.Context, _ *json.RawMessage) (any, error) {
				return heartbeatHandler.Handle(ctx), nil
			},
			MethodAuth: func(ctx context.Context, params *json.RawMessage) (any, error) {
				var authReq handler.AuthRequest
				if err := decodeParams(params, &authReq); err != nil {
					return nil, err
				}

				return authHandler.Handle(ctx, authReq)
			},
			MethodGetOnlineUsers: func(ctx context.Context, _ *json.RawMessage) (any, error) {
				return onlineUsersHandler.Handle(ctx), nil
			},
		},
	}
}

func (r *Router) RouteRequest(ctx context.Context, request rpc.Request) *rpc.Response {
	response, err := r.Handle(ctx, request)

	if !request.ReplyExpected() {
		// Nobody is waiting for the outcome; internal errors are still logged.
		if err != nil {
			r.mapError(err)
		}

		return nil
	}

	if err != nil {
		reply := request.ReplyWithError(r.mapError(err))

		return &reply
	}

	rawJson, err := json.Marshal(response)
	if err != nil {
		reply := request.ReplyWithError(r.mapError(err))

		return &reply
	}

	payload := json.RawMessage(rawJson)
	reply := request.Reply(&payload)

	return &reply
}

func (r *Router) Handle(ctx context.Context, request rpc.Request) (any, error) {
	method, ok := r.methods[request.Method]
	if !ok {
		return nil, ierr.New(ierr.ErrorCodeNotFound, errors.New("method not found: "+request.Method))
	}

	return method(ctx, request.Params)
}

func (r *Router) mapError(err error) ierr.Error {
	var handlerErr ierr.Error
	if errors.As(err, &handlerErr) {
		return handlerErr
	}

	r.logger.Error("error in rpc handler", zap.Error(err))

	return ierr.New(ierr.ErrorCodeInternal, errors.New("internal error"))
}

func decodeParams(params *json.RawMessage, v any) error {
	if params == nil {
		return ierr.New(ierr.ErrorCodeInvalidArgument, errors.New("missing params"))
	}

	if err := json.Unmarshal(*params, v); err != nil {
		return ierr.New(ierr.ErrorCodeInvalidArgument, errors.New("invalid params: "+err.Error()))
	}

	return nil
}
