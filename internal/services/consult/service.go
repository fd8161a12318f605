package consult

import (
	"context"
	"fmt"
	"sync"

	"turak/internal/api"
	"turak/internal/domain"
)

// ErrUnknownField is returned by SetField for a name outside the form.
var ErrUnknownField = fmt.Errorf("unknown form field")

// Service holds the free-consultation request form.
type Service struct {
	apiClient domain.APIClient
	notify    domain.Notifier

	mu   sync.Mutex
	form domain.ConsultationForm
}

// New constructs a consultation service.
func New(apiClient domain.APIClient, notify domain.Notifier) *Service {
	return &Service{apiClient: apiClient, notify: notify}
}

// SetField mutates one form field by name.
func (s *Service) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "name":
		s.form.Name = value
	case "city":
		s.form.City = value
	case "phone":
		s.form.Phone = value
	case "message":
		s.form.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Form returns a snapshot of the form.
func (s *Service) Form() domain.ConsultationForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Reset clears every field.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = domain.ConsultationForm{}
}

// Submit posts the form and resets it on success.
func (s *Service) Submit(ctx context.Context) error {
	s.mu.Lock()
	form := s.form
	s.mu.Unlock()

	if err := s.apiClient.Post(ctx, "/consultation/", form, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to request consultation"))
		return err
	}

	s.Reset()
	s.notify.Success("Consultation requested")
	return nil
}

// Compile-time assertion that Service implements domain.ConsultService.
var _ domain.ConsultService = (*Service)(nil)
