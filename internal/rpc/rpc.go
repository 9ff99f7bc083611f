package rpc

import (
	"encoding/json"
	"time"

	"github.com/goevery/chat/internal/ierr"
)

// Request is a frame in either direction. A zero Id marks a notification
// that expects no reply. Server events also carry EventId and CreateTime.
type Request struct {
	Id         int              `json:"id,omitempty"`
	Method     string           `json:"method"`
	Params     *json.RawMessage `json:"params,omitempty"`
	EventId    string           `json:"eventId,omitempty"`
	CreateTime *time.Time       `json:"createTime,omitempty"`
}

func NewNotification(method string, params any) (Request, error) {
	rawJson, err := json.Marshal(params)
	if err != nil {
		return Request{}, err
	}

	payload := json.RawMessage(rawJson)

	return Request{
		Method: method,
		Params: &payload,
	}, nil
}

// NewEventNotification is a notification stamped with the event's identity.
func NewEventNotification(method string, eventId string, createTime time.Time, params any) (Request, error) {
	notification, err := NewNotification(method, params)
	if err != nil {
		return Request{}, err
	}

	notification.EventId = eventId
	notification.CreateTime = &createTime

	return notification, nil
}

func (r Request) ReplyExpected() bool {
	return r.Id != 0
}

func (r Request) Reply(result *json.RawMessage) Response {
	return Response{
		RequestId: r.Id,
		Result:    result,
	}
}

func (r Request) ReplyWithError(err ierr.Error) Response {
	return Response{
		RequestId: r.Id,
		Error:     &err,
	}
}

type Response struct {
	RequestId int              `json:"requestId,omitempty"`
	Result    *json.RawMessage `json:"result,omitempty"`
	Error     *ierr.Error      `json:"error,omitempty"`
}

func (r Response) IsFailure() bool {
	return r.Error != nil
}
