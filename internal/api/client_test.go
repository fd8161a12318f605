package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"turak/internal/api"
)

type fixedTokens struct {
	token string
}

func (f fixedTokens) AccessToken() (string, bool) { return f.token, f.token != "" }

func TestClient_AttachesBearerToPrivatePaths(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, fixedTokens{token: "tok123"})
	if err := c.Get(context.Background(), "/houses/", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "Bearer tok123" {
		t.Fatalf("want Bearer tok123, got %q", got)
	}
}

func TestClient_SkipsBearerOnPublicPaths(t *testing.T) {
	public := []string{
		"/register/", "/login/", "/forgot-password/", "/reset-password/",
		"/verify-email/", "/confirm-email/", "/resend-code/",
	}

	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, fixedTokens{token: "tok123"})
	for _, path := range public {
		if err := c.Post(context.Background(), path, map[string]string{}, nil); err != nil {
			t.Fatalf("post %s: %v", path, err)
		}
		if got != "" {
			t.Fatalf("path %s: token must not be attached, got %q", path, got)
		}
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var has bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, has = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, fixedTokens{})
	if err := c.Get(context.Background(), "/houses/", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if has {
		t.Fatal("Authorization header set without a stored token")
	}
}

func TestClient_ServerMessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message key", `{"message":"email already taken"}`, "email already taken"},
		{"error key", `{"error":"bad refresh"}`, "bad refresh"},
		{"detail key", `{"detail":"not found"}`, "not found"},
		{"no body", ``, "request failed"},
		{"not json", `<html>oops</html>`, "request failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := api.New(srv.URL, nil).Get(context.Background(), "/houses/", nil)
			if err == nil {
				t.Fatal("expected error")
			}
			apiErr, ok := err.(*api.Error)
			if !ok {
				t.Fatalf("expected *api.Error, got %T", err)
			}
			if apiErr.Status != http.StatusBadRequest {
				t.Fatalf("status: want 400, got %d", apiErr.Status)
			}
			if apiErr.Message != tc.want {
				t.Fatalf("message: want %q, got %q", tc.want, apiErr.Message)
			}
		})
	}
}

func TestClient_RequestIDSet(t *testing.T) {
	ids := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[r.Header.Get("X-Request-ID")] = true
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	for range 3 {
		if err := c.Get(context.Background(), "/houses/", nil); err != nil {
			t.Fatalf("get: %v", err)
		}
	}
	if len(ids) != 3 || ids[""] {
		t.Fatalf("expected 3 distinct non-empty request ids, got %v", ids)
	}
}

func TestUserMessage(t *testing.T) {
	if got := api.UserMessage(&api.Error{Status: 400, Message: "taken"}, "fallback"); got != "taken" {
		t.Fatalf("want server message, got %q", got)
	}
	if got := api.UserMessage(context.DeadlineExceeded, "fallback"); got != "fallback" {
		t.Fatalf("want fallback, got %q", got)
	}
	if got := api.UserMessage(&api.Error{Status: 500, Message: "request failed"}, "fallback"); got != "fallback" {
		t.Fatalf("generic server message must fall back, got %q", got)
	}
}
