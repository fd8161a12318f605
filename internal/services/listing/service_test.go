package listing_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"turak/internal/api"
	"turak/internal/domain"
	"turak/internal/notify"
	"turak/internal/services/listing"
)

func newService(t *testing.T, handler http.Handler) *listing.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return listing.New(api.New(srv.URL, nil), notify.Discard{})
}

func TestFetchHouses_TotalReplace(t *testing.T) {
	payloads := [][]domain.House{
		{{ID: 1, Name: "old"}, {ID: 2, Name: "older"}, {ID: 3, Name: "oldest"}},
		{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}},
	}
	call := 0
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(payloads[call])
		call++
	}))
	ctx := context.Background()

	if err := svc.FetchHouses(ctx); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if err := svc.FetchHouses(ctx); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	houses := svc.Houses()
	if len(houses) != 2 {
		t.Fatalf("replace semantics: want 2 houses, got %d", len(houses))
	}
	if houses[0].ID != 1 || houses[0].Name != "first" || houses[1].ID != 2 {
		t.Fatalf("order or content wrong: %+v", houses)
	}
}

func TestFetchHouses_FailureKeepsPriorState(t *testing.T) {
	fail := false
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode([]domain.House{{ID: 1, Name: "kept"}})
	}))
	ctx := context.Background()

	if err := svc.FetchHouses(ctx); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	fail = true
	if err := svc.FetchHouses(ctx); err == nil {
		t.Fatal("expected error")
	}
	if houses := svc.Houses(); len(houses) != 1 || houses[0].Name != "kept" {
		t.Fatalf("failure must leave prior catalog intact: %+v", houses)
	}
	if svc.LastError() == "" {
		t.Fatal("error flag not set")
	}
}

func TestSubmitComment_RefetchesExactlyOnce(t *testing.T) {
	var fetches atomic.Int32
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/houses/1/comments/":
			fetches.Add(1)
			json.NewEncoder(w).Encode([]domain.Comment{{ID: 9, HouseID: 1, Content: "nice"}})
		case r.Method == http.MethodPost && r.URL.Path == "/comments/create/":
			w.Write([]byte(`{}`))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	if err := svc.SubmitComment(context.Background(), 1, "nice"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if n := fetches.Load(); n != 1 {
		t.Fatalf("want exactly one refetch, got %d", n)
	}
	if comments := svc.Comments(1); len(comments) != 1 || comments[0].ID != 9 {
		t.Fatalf("comments not replaced from refetch: %+v", comments)
	}
}

func TestDeleteComment_ThenFetchExcludesIt(t *testing.T) {
	deleted := false
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete && r.URL.Path == "/comments/5/delete/":
			deleted = true
			w.Write([]byte(`{}`))
		case r.Method == http.MethodGet && r.URL.Path == "/houses/1/comments/":
			comments := []domain.Comment{{ID: 4, HouseID: 1}, {ID: 5, HouseID: 1}}
			if deleted {
				comments = comments[:1]
			}
			json.NewEncoder(w).Encode(comments)
		}
	}))
	ctx := context.Background()

	if err := svc.FetchComments(ctx, 1); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if err := svc.DeleteComment(ctx, 5, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for _, c := range svc.Comments(1) {
		if c.ID == 5 {
			t.Fatal("comment 5 still present after delete+refetch")
		}
	}
}

func TestToggleLike_AppliesServerTruthVerbatim(t *testing.T) {
	responses := []domain.LikeStatus{
		{Liked: true, LikeCount: 8},
		// A second viewer liked meanwhile: count does not simply decrement.
		{Liked: false, LikeCount: 9},
	}
	call := 0
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/houses/7/like/" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(responses[call])
		call++
	}))
	ctx := context.Background()

	first, err := svc.ToggleLike(ctx, 7)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if first != responses[0] {
		t.Fatalf("first toggle: want %+v, got %+v", responses[0], first)
	}

	second, err := svc.ToggleLike(ctx, 7)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if second != responses[1] {
		t.Fatalf("second toggle must be the server's value verbatim: %+v", second)
	}
	if got, ok := svc.LikeStatus(7); !ok || got != responses[1] {
		t.Fatalf("stored status: %+v ok=%v", got, ok)
	}
}

func TestContactSeller_FlowHitsEndpointsInOrder(t *testing.T) {
	var paths []string
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	ctx := context.Background()

	if err := svc.SendContactCode(ctx, "b@c.kg"); err != nil {
		t.Fatalf("send code: %v", err)
	}
	if err := svc.VerifyContactCode(ctx, "b@c.kg", "0000"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := svc.ContactSeller(ctx, 3, domain.ContactRequest{Email: "b@c.kg", Message: "hi"}); err != nil {
		t.Fatalf("contact: %v", err)
	}

	want := []string{"/send-code/", "/verify-code/", "/contact-seller/3/"}
	if fmt.Sprint(paths) != fmt.Sprint(want) {
		t.Fatalf("paths: want %v, got %v", want, paths)
	}
}
