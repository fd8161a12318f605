package listing

import (
	"context"
	"fmt"
	"sync"

	"turak/internal/api"
	"turak/internal/domain"
)

// Service is the house catalog state container.
//
// Comment mutations deliberately refetch the house's comments instead of
// splicing locally: server truth over optimism, at the cost of one round
// trip per mutation. Like state is likewise applied verbatim from the
// toggle response and never computed client-side.
type Service struct {
	apiClient domain.APIClient
	notify    domain.Notifier

	mu       sync.Mutex
	houses   []domain.House
	comments map[domain.HouseID][]domain.Comment
	likes    map[domain.HouseID]domain.LikeStatus
	lastErr  string
}

// New constructs a listing service.
func New(apiClient domain.APIClient, notify domain.Notifier) *Service {
	return &Service{
		apiClient: apiClient,
		notify:    notify,
		comments:  make(map[domain.HouseID][]domain.Comment),
		likes:     make(map[domain.HouseID]domain.LikeStatus),
	}
}

// FetchHouses replaces the whole catalog from the server. No pagination, no
// partial update. A failure leaves the prior catalog intact.
func (s *Service) FetchHouses(ctx context.Context) error {
	var houses []domain.House
	if err := s.apiClient.Get(ctx, "/houses/", &houses); err != nil {
		s.setErr(err.Error())
		s.notify.Error("Failed to load houses")
		return err
	}

	s.mu.Lock()
	s.houses = houses
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// Houses returns a snapshot of the catalog.
func (s *Service) Houses() []domain.House {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.House, len(s.houses))
	copy(out, s.houses)
	return out
}

// House looks a listing up in the fetched catalog.
func (s *Service) House(id domain.HouseID) (domain.House, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.houses {
		if h.ID == id {
			return h, true
		}
	}
	return domain.House{}, false
}

// FetchComments replaces the stored comments for one house.
func (s *Service) FetchComments(ctx context.Context, house domain.HouseID) error {
	var comments []domain.Comment
	if err := s.apiClient.Get(ctx, fmt.Sprintf("/houses/%d/comments/", house), &comments); err != nil {
		s.setErr(err.Error())
		s.notify.Error(api.UserMessage(err, "Failed to load comments"))
		return err
	}

	s.mu.Lock()
	s.comments[house] = comments
	s.mu.Unlock()
	return nil
}

// SubmitComment creates a comment, then refetches that house's comments
// exactly once.
func (s *Service) SubmitComment(ctx context.Context, house domain.HouseID, content string) error {
	body := map[string]any{"house": house, "content": content}
	if err := s.apiClient.Post(ctx, "/comments/create/", body, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to add comment"))
		return err
	}
	s.notify.Success("Comment added")
	return s.FetchComments(ctx, house)
}

// DeleteComment removes a comment, then refetches that house's comments
// exactly once.
func (s *Service) DeleteComment(ctx context.Context, id domain.CommentID, house domain.HouseID) error {
	if err := s.apiClient.Delete(ctx, fmt.Sprintf("/comments/%d/delete/", id)); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to delete comment"))
		return err
	}
	s.notify.Success("Comment deleted")
	return s.FetchComments(ctx, house)
}

// Comments returns the stored comments for a house, oldest first, as the
// server ordered them.
func (s *Service) Comments(house domain.HouseID) []domain.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Comment, len(s.comments[house]))
	copy(out, s.comments[house])
	return out
}

// ToggleLike flips the viewer's like on the server and stores the returned
// {liked, like_count} pair verbatim.
func (s *Service) ToggleLike(ctx context.Context, house domain.HouseID) (domain.LikeStatus, error) {
	var status domain.LikeStatus
	if err := s.apiClient.Post(ctx, fmt.Sprintf("/houses/%d/like/", house), nil, &status); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to toggle like"))
		return domain.LikeStatus{}, err
	}

	s.mu.Lock()
	s.likes[house] = status
	s.mu.Unlock()
	return status, nil
}

// LikeStatus returns the last server-reported like state for a house.
func (s *Service) LikeStatus(house domain.HouseID) (domain.LikeStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.likes[house]
	return status, ok
}

// SendContactCode emails a one-time code so an anonymous buyer can prove
// the address before contacting a seller.
func (s *Service) SendContactCode(ctx context.Context, email string) error {
	if err := s.apiClient.Post(ctx, "/send-code/", map[string]string{"email": email}, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to send code"))
		return err
	}
	s.notify.Success("Code sent")
	return nil
}

// VerifyContactCode checks the emailed code.
func (s *Service) VerifyContactCode(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	if err := s.apiClient.Post(ctx, "/verify-code/", body, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Invalid code"))
		return err
	}
	return nil
}

// ContactSeller forwards the buyer's message for one listing.
func (s *Service) ContactSeller(ctx context.Context, house domain.HouseID, req domain.ContactRequest) error {
	if err := s.apiClient.Post(ctx, fmt.Sprintf("/contact-seller/%d/", house), req, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to contact seller"))
		return err
	}
	s.notify.Success("Message sent to seller")
	return nil
}

// LastError reports the most recent fetch failure, empty after a success.
func (s *Service) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Service) setErr(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

// Compile-time assertion that Service implements domain.ListingService.
var _ domain.ListingService = (*Service)(nil)
