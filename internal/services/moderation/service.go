package moderation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"turak/internal/api"
	"turak/internal/domain"
)

// pendingPayload tolerates both shapes the backend has used for the
// unverified queue: a bare array, or an object wrapping it under "houses".
type pendingPayload []domain.House

func (p *pendingPayload) UnmarshalJSON(b []byte) error {
	var houses []domain.House
	if err := json.Unmarshal(b, &houses); err == nil {
		*p = houses
		return nil
	}
	var wrapped struct {
		Houses []domain.House `json:"houses"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	*p = wrapped.Houses
	return nil
}

// Service is the admin state container: the pending (unverified) house
// queue, the user roster, and the dashboard counters.
//
// Verify and reject do not patch the queue locally; each one refetches the
// whole pending collection, eventual consistency by refetch.
type Service struct {
	apiClient domain.APIClient
	notify    domain.Notifier

	mu      sync.Mutex
	pending []domain.House
	users   []domain.User
	lastErr string
}

// New constructs a moderation service.
func New(apiClient domain.APIClient, notify domain.Notifier) *Service {
	return &Service{apiClient: apiClient, notify: notify}
}

// FetchPending replaces the unverified queue from the server.
func (s *Service) FetchPending(ctx context.Context) error {
	var payload pendingPayload
	if err := s.apiClient.Get(ctx, "/houses/unverified/", &payload); err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		s.notify.Error("Failed to load pending houses")
		return err
	}

	s.mu.Lock()
	s.pending = payload
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// Pending returns a snapshot of the unverified queue.
func (s *Service) Pending() []domain.House {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.House, len(s.pending))
	copy(out, s.pending)
	return out
}

// VerifyHouse publishes a pending house, then refetches the queue once.
func (s *Service) VerifyHouse(ctx context.Context, id domain.HouseID) error {
	if err := s.apiClient.Post(ctx, fmt.Sprintf("/houses/verify/%d/", id), nil, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to verify house"))
		return err
	}
	s.notify.Success("House verified")
	return s.FetchPending(ctx)
}

// RejectHouse deletes a pending house, then refetches the queue once.
func (s *Service) RejectHouse(ctx context.Context, id domain.HouseID) error {
	if err := s.apiClient.Delete(ctx, fmt.Sprintf("/houses/reject/%d/", id)); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to reject house"))
		return err
	}
	s.notify.Success("House rejected")
	return s.FetchPending(ctx)
}

// FetchUsers replaces the admin user roster.
func (s *Service) FetchUsers(ctx context.Context) error {
	var users []domain.User
	if err := s.apiClient.Get(ctx, "/users", &users); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to load users"))
		return err
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

// Users returns a snapshot of the roster.
func (s *Service) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// BlockUser blocks an account, then refetches the roster once.
func (s *Service) BlockUser(ctx context.Context, id domain.UserID) error {
	if err := s.apiClient.Post(ctx, fmt.Sprintf("/users/block/%s/", id), nil, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to block user"))
		return err
	}
	s.notify.Success("User blocked")
	return s.FetchUsers(ctx)
}

// FetchStats reads the dashboard counters. Not stored; the dashboard
// re-reads on every render.
func (s *Service) FetchStats(ctx context.Context) (domain.AdminStats, error) {
	var stats domain.AdminStats
	if err := s.apiClient.Get(ctx, "/admin-stats/", &stats); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to load stats"))
		return domain.AdminStats{}, err
	}
	return stats, nil
}

// Compile-time assertion that Service implements domain.ModerationService.
var _ domain.ModerationService = (*Service)(nil)
