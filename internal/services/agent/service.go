package agent

import (
	"context"
	"fmt"
	"sync"

	"turak/internal/api"
	"turak/internal/domain"
)

// Service handles agent applications: users submit them, admins review
// them. Approve and reject refetch the list rather than patching it.
type Service struct {
	apiClient domain.APIClient
	notify    domain.Notifier

	mu           sync.Mutex
	applications []domain.AgentApplication
}

// New constructs an agent application service.
func New(apiClient domain.APIClient, notify domain.Notifier) *Service {
	return &Service{apiClient: apiClient, notify: notify}
}

// Apply submits an application to become an agent.
func (s *Service) Apply(ctx context.Context, form domain.AgentApplicationForm) error {
	if err := s.apiClient.Post(ctx, "/apply/", form, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to submit application"))
		return err
	}
	s.notify.Success("Application submitted")
	return nil
}

// FetchApplications replaces the review list.
func (s *Service) FetchApplications(ctx context.Context) error {
	var apps []domain.AgentApplication
	if err := s.apiClient.Get(ctx, "/applications/", &apps); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to load applications"))
		return err
	}

	s.mu.Lock()
	s.applications = apps
	s.mu.Unlock()
	return nil
}

// Applications returns a snapshot of the review list.
func (s *Service) Applications() []domain.AgentApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AgentApplication, len(s.applications))
	copy(out, s.applications)
	return out
}

// Approve grants an application, then refetches the list once.
func (s *Service) Approve(ctx context.Context, id domain.ApplicationID) error {
	if err := s.apiClient.Post(ctx, fmt.Sprintf("/applications/%d/approve/", id), nil, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to approve application"))
		return err
	}
	s.notify.Success("Application approved")
	return s.FetchApplications(ctx)
}

// Reject declines an application, then refetches the list once.
func (s *Service) Reject(ctx context.Context, id domain.ApplicationID) error {
	if err := s.apiClient.Post(ctx, fmt.Sprintf("/applications/%d/reject/", id), nil, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to reject application"))
		return err
	}
	s.notify.Success("Application rejected")
	return s.FetchApplications(ctx)
}

// Compile-time assertion that Service implements domain.AgentService.
var _ domain.AgentService = (*Service)(nil)
