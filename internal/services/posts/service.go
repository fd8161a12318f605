package posts

import (
	"context"
	"fmt"
	"sync"

	"turak/internal/api"
	"turak/internal/domain"
)

// Service is the blog post state container.
//
// Creates prepend the server's response; updates replace the matching
// element; deletes prune the local list after the server confirms, so the
// collection never shows an entry the server no longer has.
type Service struct {
	apiClient domain.APIClient
	notify    domain.Notifier

	mu    sync.Mutex
	posts []domain.Post
}

// New constructs a post service.
func New(apiClient domain.APIClient, notify domain.Notifier) *Service {
	return &Service{apiClient: apiClient, notify: notify}
}

// FetchPosts replaces the collection from the server.
func (s *Service) FetchPosts(ctx context.Context) error {
	var posts []domain.Post
	if err := s.apiClient.Get(ctx, "/posts", &posts); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to load posts"))
		return err
	}

	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
	return nil
}

// Posts returns a snapshot of the collection.
func (s *Service) Posts() []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// CreatePost submits a draft and prepends the created post.
func (s *Service) CreatePost(ctx context.Context, draft domain.PostDraft) error {
	var created domain.Post
	if err := s.apiClient.Post(ctx, "/posts", draft, &created); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to create post"))
		return err
	}

	s.mu.Lock()
	s.posts = append([]domain.Post{created}, s.posts...)
	s.mu.Unlock()

	s.notify.Success("Post created")
	return nil
}

// UpdatePost submits a draft for an existing post and swaps the returned
// version into place.
func (s *Service) UpdatePost(ctx context.Context, id domain.PostID, draft domain.PostDraft) error {
	var updated domain.Post
	if err := s.apiClient.Put(ctx, fmt.Sprintf("/posts/%s", id), draft, &updated); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to update post"))
		return err
	}

	s.mu.Lock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i] = updated
			break
		}
	}
	s.mu.Unlock()

	s.notify.Success("Post updated")
	return nil
}

// DeletePost removes a post server-side, then prunes it locally.
func (s *Service) DeletePost(ctx context.Context, id domain.PostID) error {
	if err := s.apiClient.Delete(ctx, fmt.Sprintf("/posts/%s", id)); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to delete post"))
		return err
	}

	s.mu.Lock()
	kept := s.posts[:0]
	for _, p := range s.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.posts = kept
	s.mu.Unlock()

	s.notify.Success("Post deleted")
	return nil
}

// Compile-time assertion that Service implements domain.PostService.
var _ domain.PostService = (*Service)(nil)
