package agent_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"turak/internal/api"
	"turak/internal/domain"
	"turak/internal/notify"
	"turak/internal/services/agent"
)

func newService(t *testing.T, handler http.Handler) *agent.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return agent.New(api.New(srv.URL, nil), notify.Discard{})
}

func TestApply_PostsForm(t *testing.T) {
	var hit atomic.Bool
	s := newService(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/apply/" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		hit.Store(true)
		rw.WriteHeader(http.StatusCreated)
	}))

	err := s.Apply(context.Background(), domain.AgentApplicationForm{
		FullName: "Aibek Toktogulov", Phone: "+996700000000",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !hit.Load() {
		t.Fatal("application never reached the server")
	}
}

func TestApprove_RefetchesListOnce(t *testing.T) {
	var fetches atomic.Int32
	s := newService(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/applications/" && r.Method == http.MethodGet:
			if fetches.Add(1) == 1 {
				fmt.Fprint(rw, `[{"id":4,"applicant":"aibek","status":"pending"}]`)
			} else {
				fmt.Fprint(rw, `[{"id":4,"applicant":"aibek","status":"approved"}]`)
			}
		case r.URL.Path == "/applications/4/approve/" && r.Method == http.MethodPost:
			rw.WriteHeader(http.StatusOK)
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	ctx := context.Background()

	if err := s.FetchApplications(ctx); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if err := s.Approve(ctx, 4); err != nil {
		t.Fatalf("approve: %v", err)
	}

	if got := fetches.Load(); got != 2 {
		t.Fatalf("approve must refetch exactly once, got %d total fetches", got)
	}
	apps := s.Applications()
	if len(apps) != 1 || apps[0].Status != "approved" {
		t.Fatalf("applications after approve: %+v", apps)
	}
}

func TestReject_ServerFailureKeepsList(t *testing.T) {
	s := newService(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/applications/":
			fmt.Fprint(rw, `[{"id":4,"applicant":"aibek","status":"pending"}]`)
		case "/applications/4/reject/":
			rw.WriteHeader(http.StatusForbidden)
			fmt.Fprint(rw, `{"detail":"admin only"}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	ctx := context.Background()

	if err := s.FetchApplications(ctx); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if err := s.Reject(ctx, 4); err == nil {
		t.Fatal("expected error")
	}
	if apps := s.Applications(); len(apps) != 1 || apps[0].Status != "pending" {
		t.Fatalf("failed reject must keep the list, got %+v", apps)
	}
}
