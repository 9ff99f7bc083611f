package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/goevery/chat/internal/broadcaster"
	"github.com/goevery/chat/internal/handler"
	"github.com/goevery/chat/internal/ierr"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readTimeout = 2 * time.Second

// frame covers both server notifications and replies.
type frame struct {
	Method     string           `json:"method"`
	Params     *json.RawMessage `json:"params"`
	EventId    string           `json:"eventId"`
	CreateTime *time.Time       `json:"createTime"`
	RequestId  int              `json:"requestId"`
	Result     *json.RawMessage `json:"result"`
	Error      *ierr.Error      `json:"error"`
}

type testClient struct {
	t      *testing.T
	ws     *websocket.Conn
	events []frame
}

func websocketURL(stack *testStack, token string) string {
	u, _ := url.Parse(stack.server.URL)
	u.Scheme = "ws"
	u.Path = "/websocket"

	if token != "" {
		u.RawQuery = url.Values{"token": {token}}.Encode()
	}

	return u.String()
}

func dial(t *testing.T, stack *testStack, token string) *testClient {
	t.Helper()

	ws, _, err := websocket.DefaultDialer.Dial(websocketURL(stack, token), nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	return &testClient{t: t, ws: ws}
}

func (c *testClient) read() frame {
	c.t.Helper()

	var f frame
	c.ws.SetReadDeadline(time.Now().Add(readTimeout))
	err := c.ws.ReadJSON(&f)
	require.NoError(c.t, err)

	return f
}

// call sends a request and returns its reply. Notifications read meanwhile
// are kept for later.
func (c *testClient) call(id int, method string, params any) frame {
	c.t.Helper()

	request := map[string]any{"id": id, "method": method}
	if params != nil {
		request["params"] = params
	}
	require.NoError(c.t, c.ws.WriteJSON(request))

	for {
		f := c.read()
		if f.Method != "" {
			c.events = append(c.events, f)
			continue
		}

		require.Equal(c.t, id, f.RequestId)

		return f
	}
}

func (c *testClient) nextEvent(method string) json.RawMessage {
	c.t.Helper()

	return *c.nextEventFrame(method).Params
}

func (c *testClient) nextEventFrame(method string) frame {
	c.t.Helper()

	for i, f := range c.events {
		if f.Method == method {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return f
		}
	}

	for {
		f := c.read()
		if f.Method == method {
			return f
		}
		if f.Method != "" {
			c.events = append(c.events, f)
		}
	}
}

// waitRoster reads roster events until one matches want. Earlier rosters
// may still be in flight.
func (c *testClient) waitRoster(want ...string) {
	c.t.Helper()

	for {
		var roster []string
		require.NoError(c.t, json.Unmarshal(c.nextEvent(broadcaster.EventOnlineUsers), &roster))

		if assert.ObjectsAreEqual(want, roster) {
			return
		}
	}
}

func notify(t *testing.T, stack *testStack, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, stack.server.URL+"/notify", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestWebSocketServer_PresenceScenario(t *testing.T) {
	stack := newTestStack(t)

	alice := dial(t, stack, signToken(t, "alice"))
	alice.waitRoster("alice")

	bob := dial(t, stack, "")
	reply := bob.call(1, MethodAuth, handler.AuthRequest{Token: signToken(t, "bob")})
	require.Nil(t, reply.Error)

	var authResponse handler.AuthResponse
	require.NoError(t, json.Unmarshal(*reply.Result, &authResponse))
	assert.Equal(t, handler.AuthResponse{Success: true, UserId: "bob"}, authResponse)

	alice.waitRoster("alice", "bob")
	bob.waitRoster("alice", "bob")

	reply = bob.call(2, MethodGetOnlineUsers, nil)
	require.Nil(t, reply.Error)
	assert.JSONEq(t, `{"userIds":["alice","bob"]}`, string(*reply.Result))

	resp := notify(t, stack, `{"userId":"bob","event":"postLiked","payload":{"postId":"p1","by":"alice"}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	liked := bob.nextEventFrame("postLiked")
	assert.JSONEq(t, `{"postId":"p1","by":"alice"}`, string(*liked.Params))
	assert.NotEmpty(t, liked.EventId)
	require.NotNil(t, liked.CreateTime)
	assert.WithinDuration(t, time.Now(), *liked.CreateTime, readTimeout)

	require.NoError(t, bob.ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

	alice.waitRoster("alice")
	assert.Eventually(t, func() bool {
		return assert.ObjectsAreEqual([]string{"alice"}, stack.registry.SnapshotRoster())
	}, readTimeout, 10*time.Millisecond)

	resp = notify(t, stack, `{"userId":"bob","event":"postLiked","payload":{}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWebSocketServer_SecondLoginSupersedesFirst(t *testing.T) {
	stack := newTestStack(t)

	first := dial(t, stack, signToken(t, "alice"))
	first.waitRoster("alice")

	second := dial(t, stack, signToken(t, "alice"))
	second.waitRoster("alice")

	first.ws.SetReadDeadline(time.Now().Add(readTimeout))
	for {
		_, _, err := first.ws.ReadMessage()
		if err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
			break
		}
	}

	handle, ok := stack.registry.Resolve("alice")
	require.True(t, ok)
	assert.Equal(t, []string{"alice"}, stack.registry.SnapshotRoster())

	notify(t, stack, `{"userId":"alice","event":"ping","payload":"still here"}`)
	assert.JSONEq(t, `"still here"`, string(second.nextEvent("ping")))

	current, ok := stack.registry.Resolve("alice")
	require.True(t, ok)
	assert.Equal(t, handle.Id(), current.Id())
}

func TestWebSocketServer_Methods(t *testing.T) {
	stack := newTestStack(t)

	t.Run("heartbeat", func(t *testing.T) {
		client := dial(t, stack, "")

		reply := client.call(1, MethodHeartbeat, nil)
		require.Nil(t, reply.Error)

		var heartbeat handler.HeartbeatResponse
		require.NoError(t, json.Unmarshal(*reply.Result, &heartbeat))
		assert.WithinDuration(t, time.Now(), heartbeat.Timestamp, readTimeout)
		assert.Equal(t, "connecting", heartbeat.State)
	})

	t.Run("unknown method", func(t *testing.T) {
		client := dial(t, stack, "")

		reply := client.call(1, "join", nil)
		require.NotNil(t, reply.Error)
		assert.Equal(t, ierr.ErrorCodeNotFound, reply.Error.Code)
	})

	t.Run("auth with bad token", func(t *testing.T) {
		client := dial(t, stack, "")

		reply := client.call(1, MethodAuth, handler.AuthRequest{Token: "garbage"})
		require.NotNil(t, reply.Error)
		assert.Equal(t, ierr.ErrorCodeUnauthenticated, reply.Error.Code)
		assert.Empty(t, stack.registry.SnapshotRoster())
	})

	t.Run("auth without params", func(t *testing.T) {
		client := dial(t, stack, "")

		reply := client.call(1, MethodAuth, nil)
		require.NotNil(t, reply.Error)
		assert.Equal(t, ierr.ErrorCodeInvalidArgument, reply.Error.Code)
	})

	t.Run("malformed frame closes the connection", func(t *testing.T) {
		client := dial(t, stack, "")

		require.NoError(t, client.ws.WriteMessage(websocket.TextMessage, []byte("invalid-json")))

		client.ws.SetReadDeadline(time.Now().Add(readTimeout))
		_, _, err := client.ws.ReadMessage()
		assert.True(t, websocket.IsCloseError(err, websocket.CloseUnsupportedData))
	})

	t.Run("invalid token at upgrade is rejected", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(websocketURL(stack, "garbage"), nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token from cookie", func(t *testing.T) {
		header := http.Header{}
		header.Set("Cookie", TokenCookieName+"="+signToken(t, "carol"))

		ws, _, err := websocket.DefaultDialer.Dial(websocketURL(stack, ""), header)
		require.NoError(t, err)
		defer ws.Close()

		client := &testClient{t: t, ws: ws}
		client.waitRoster("carol")
	})
}
