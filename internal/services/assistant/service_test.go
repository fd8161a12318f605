package assistant_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"turak/internal/api"
	"turak/internal/notify"
	"turak/internal/services/assistant"
)

func newService(t *testing.T, handler http.Handler) *assistant.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return assistant.New(api.New(srv.URL, nil), notify.Discard{})
}

func threadsHandler(extra func(rw http.ResponseWriter, r *http.Request) bool) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if extra != nil && extra(rw, r) {
			return
		}
		switch r.URL.Path {
		case "/chats/":
			fmt.Fprint(rw, `[{"id":1,"name":"first"},{"id":2,"name":"second"}]`)
		case "/chats/1/messages/":
			fmt.Fprint(rw, `[{"text":"hi","is_user":true},{"text":"hello","is_user":false}]`)
		default:
			http.NotFound(rw, r)
		}
	}
}

func TestFetchThreads_SelectsFirstWhenNoneSelected(t *testing.T) {
	s := newService(t, threadsHandler(nil))
	if err := s.FetchThreads(context.Background()); err != nil {
		t.Fatalf("fetch threads: %v", err)
	}

	if got := s.Threads(); len(got) != 2 || got[0].Name != "first" {
		t.Fatalf("threads: %+v", got)
	}
	if id, ok := s.SelectedThread(); !ok || id != 1 {
		t.Fatalf("selected: %d ok=%v", id, ok)
	}
}

func TestFetchThreads_KeepsExistingSelection(t *testing.T) {
	s := newService(t, threadsHandler(nil))
	s.SelectThread(2)
	if err := s.FetchThreads(context.Background()); err != nil {
		t.Fatalf("fetch threads: %v", err)
	}
	if id, _ := s.SelectedThread(); id != 2 {
		t.Fatalf("refetch must not steal the selection, got %d", id)
	}
}

func TestSend_AppendsPromptAndReply(t *testing.T) {
	var body map[string]string
	s := newService(t, threadsHandler(func(rw http.ResponseWriter, r *http.Request) bool {
		if r.URL.Path == "/chats/1/send/" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&body)
			fmt.Fprint(rw, `{"bot_reply":"three bedrooms","image_url":"http://img/1.png"}`)
			return true
		}
		return false
	}))
	ctx := context.Background()

	if err := s.FetchMessages(ctx, 1); err != nil {
		t.Fatalf("fetch messages: %v", err)
	}

	reply, err := s.Send(ctx, "how many bedrooms?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if body["text"] != "how many bedrooms?" {
		t.Fatalf("request body: %v", body)
	}
	if reply.Text != "three bedrooms" || reply.Image != "http://img/1.png" || reply.IsUser {
		t.Fatalf("reply: %+v", reply)
	}

	msgs := s.Messages()
	if len(msgs) != 4 {
		t.Fatalf("transcript length: %d", len(msgs))
	}
	if !msgs[2].IsUser || msgs[2].Text != "how many bedrooms?" {
		t.Fatalf("prompt entry: %+v", msgs[2])
	}
	if msgs[3].IsUser || msgs[3].Text != "three bedrooms" {
		t.Fatalf("reply entry: %+v", msgs[3])
	}
}

func TestSend_FailureKeepsPromptInTranscript(t *testing.T) {
	s := newService(t, threadsHandler(func(rw http.ResponseWriter, r *http.Request) bool {
		if r.URL.Path == "/chats/1/send/" {
			rw.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(rw, `{"message":"bot offline"}`)
			return true
		}
		return false
	}))
	ctx := context.Background()

	if err := s.FetchMessages(ctx, 1); err != nil {
		t.Fatalf("fetch messages: %v", err)
	}
	if _, err := s.Send(ctx, "anyone there?"); err == nil {
		t.Fatal("expected error")
	}

	msgs := s.Messages()
	if len(msgs) != 3 || !msgs[2].IsUser || msgs[2].Text != "anyone there?" {
		t.Fatalf("failed send must keep the prompt, got %+v", msgs)
	}
}

func TestSend_RequiresSelection(t *testing.T) {
	s := newService(t, threadsHandler(nil))
	if _, err := s.Send(context.Background(), "hi"); !errors.Is(err, assistant.ErrNoSelectedThread) {
		t.Fatalf("want ErrNoSelectedThread, got %v", err)
	}
}

func TestCreateThread_SelectsNewAndClearsTranscript(t *testing.T) {
	created := false
	s := newService(t, func() http.HandlerFunc {
		return func(rw http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/chats/create/" && r.Method == http.MethodPost:
				created = true
				fmt.Fprint(rw, `{"chat_id":3}`)
			case r.URL.Path == "/chats/":
				if created {
					fmt.Fprint(rw, `[{"id":1,"name":"first"},{"id":3,"name":"new chat"}]`)
				} else {
					fmt.Fprint(rw, `[{"id":1,"name":"first"}]`)
				}
			case r.URL.Path == "/chats/1/messages/":
				fmt.Fprint(rw, `[{"text":"old","is_user":true}]`)
			default:
				http.NotFound(rw, r)
			}
		}
	}())
	ctx := context.Background()

	if err := s.FetchMessages(ctx, 1); err != nil {
		t.Fatalf("fetch messages: %v", err)
	}

	id, err := s.CreateThread(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 3 {
		t.Fatalf("new thread id: %d", id)
	}
	if sel, _ := s.SelectedThread(); sel != 3 {
		t.Fatalf("selection after create: %d", sel)
	}
	if len(s.Messages()) != 0 {
		t.Fatal("a fresh thread starts with an empty transcript")
	}
	if got := s.Threads(); len(got) != 2 {
		t.Fatalf("roster after create: %+v", got)
	}
}

func TestRenameThread_RefetchesRoster(t *testing.T) {
	renamed := false
	var renameBody map[string]string
	s := newService(t, func() http.HandlerFunc {
		return func(rw http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/chats/2/rename/" && r.Method == http.MethodPost:
				json.NewDecoder(r.Body).Decode(&renameBody)
				renamed = true
				rw.WriteHeader(http.StatusOK)
			case r.URL.Path == "/chats/":
				if renamed {
					fmt.Fprint(rw, `[{"id":2,"name":"flat hunt"}]`)
				} else {
					fmt.Fprint(rw, `[{"id":2,"name":"second"}]`)
				}
			default:
				http.NotFound(rw, r)
			}
		}
	}())

	if err := s.RenameThread(context.Background(), 2, "flat hunt"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renameBody["name"] != "flat hunt" {
		t.Fatalf("rename body: %v", renameBody)
	}
	if got := s.Threads(); len(got) != 1 || got[0].Name != "flat hunt" {
		t.Fatalf("roster after rename: %+v", got)
	}
}
