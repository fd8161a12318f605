package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"turak/internal/domain"
)

// chatSocketPath is where the backend upgrades to the chat push channel.
const chatSocketPath = "/ws/chat/"

// SocketDialer opens authenticated websocket connections for chat push
// events.
type SocketDialer struct {
	base   string
	tokens domain.TokenSource
	dialer *websocket.Dialer
}

// NewSocketDialer returns a dialer against the given HTTP origin. The
// ws:// or wss:// scheme is derived from the origin's scheme.
func NewSocketDialer(base string, tokens domain.TokenSource) *SocketDialer {
	return &SocketDialer{
		base:   strings.TrimRight(base, "/"),
		tokens: tokens,
		dialer: websocket.DefaultDialer,
	}
}

func (d *SocketDialer) Dial(ctx context.Context) (domain.ChatSocket, error) {
	u := d.base + chatSocketPath
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}

	header := http.Header{}
	if d.tokens != nil {
		if token, ok := d.tokens.AccessToken(); ok {
			header.Set("Authorization", "Bearer "+token)
		}
	}

	conn, resp, err := d.dialer.DialContext(ctx, u, header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	return &socket{conn: conn}, nil
}

type socket struct {
	conn *websocket.Conn
}

func (s *socket) Next() (domain.ChatEvent, error) {
	var ev domain.ChatEvent
	err := s.conn.ReadJSON(&ev)
	return ev, err
}

func (s *socket) Close() error {
	deadline := time.Now().Add(time.Second)
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	return s.conn.Close()
}

var _ domain.ChatSocketDialer = (*SocketDialer)(nil)
