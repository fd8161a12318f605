package moderation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"turak/internal/api"
	"turak/internal/domain"
	"turak/internal/notify"
	"turak/internal/services/moderation"
)

func newService(t *testing.T, handler http.Handler) *moderation.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return moderation.New(api.New(srv.URL, nil), notify.Discard{})
}

func TestFetchPending_AcceptsBothPayloadShapes(t *testing.T) {
	shapes := []string{
		`[{"id":1,"name":"bare"}]`,
		`{"houses":[{"id":2,"name":"wrapped"}]}`,
	}

	for _, shape := range shapes {
		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(shape))
		}))
		if err := svc.FetchPending(context.Background()); err != nil {
			t.Fatalf("fetch %s: %v", shape, err)
		}
		if pending := svc.Pending(); len(pending) != 1 {
			t.Fatalf("payload %s: want 1 house, got %d", shape, len(pending))
		}
	}
}

func TestVerifyHouse_RefetchesQueueOnce(t *testing.T) {
	var fetches atomic.Int32
	verified := false
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/houses/unverified/":
			fetches.Add(1)
			queue := []domain.House{{ID: 1}, {ID: 2}}
			if verified {
				queue = queue[1:]
			}
			json.NewEncoder(w).Encode(queue)
		case r.Method == http.MethodPost && r.URL.Path == "/houses/verify/1/":
			verified = true
			w.Write([]byte(`{}`))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	if err := svc.VerifyHouse(context.Background(), 1); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if n := fetches.Load(); n != 1 {
		t.Fatalf("want exactly one queue refetch, got %d", n)
	}
	if pending := svc.Pending(); len(pending) != 1 || pending[0].ID != 2 {
		t.Fatalf("queue not refreshed: %+v", pending)
	}
}

func TestRejectHouse_DeletesAndRefetches(t *testing.T) {
	var deleteSeen bool
	var fetches atomic.Int32
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete && r.URL.Path == "/houses/reject/9/":
			deleteSeen = true
			w.Write([]byte(`{}`))
		case r.Method == http.MethodGet && r.URL.Path == "/houses/unverified/":
			fetches.Add(1)
			w.Write([]byte(`[]`))
		}
	}))

	if err := svc.RejectHouse(context.Background(), 9); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if !deleteSeen {
		t.Fatal("reject must issue a DELETE")
	}
	if fetches.Load() != 1 {
		t.Fatalf("want one refetch, got %d", fetches.Load())
	}
}

func TestBlockUser_RefetchesRoster(t *testing.T) {
	blocked := false
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/users/block/u2/":
			blocked = true
			w.Write([]byte(`{}`))
		case r.Method == http.MethodGet && r.URL.Path == "/users":
			json.NewEncoder(w).Encode([]domain.User{
				{ID: "u1"},
				{ID: "u2", IsBlocked: blocked},
			})
		}
	}))

	if err := svc.BlockUser(context.Background(), "u2"); err != nil {
		t.Fatalf("block: %v", err)
	}
	users := svc.Users()
	if len(users) != 2 || !users[1].IsBlocked {
		t.Fatalf("roster not refreshed after block: %+v", users)
	}
}

func TestFetchStats(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin-stats/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"total_users":10,"total_houses":4,"pending_houses":1}`))
	}))

	stats, err := svc.FetchStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalUsers != 10 || stats.TotalHouses != 4 || stats.PendingHouses != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
