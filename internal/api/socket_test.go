package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/websocket"

	"turak/internal/api"
	"turak/internal/domain"
)

func TestSocketDialer_DialAndRead(t *testing.T) {
	upgrader := websocket.Upgrader{}
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/chat/" {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteJSON(domain.ChatEvent{
			Type:    domain.EventNewMessage,
			Message: domain.ChatMessage{ID: "m1", SenderID: "u2", Text: "hello"},
		})
	}))
	defer srv.Close()

	dialer := api.NewSocketDialer(srv.URL, fixedTokens{token: "tok123"})
	sock, err := dialer.Dial(context.Background())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer sock.Close()

	if gotAuth != "Bearer tok123" {
		t.Fatalf("handshake auth: want Bearer tok123, got %q", gotAuth)
	}

	ev, err := sock.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if ev.Type != domain.EventNewMessage || ev.Message.Text != "hello" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
