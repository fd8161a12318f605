package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"turak/internal/api"
	"turak/internal/domain"
)

// ErrNoSelectedThread is returned by Send when no thread is open.
var ErrNoSelectedThread = errors.New("no assistant thread selected")

// createResponse is the /chats/create/ payload.
type createResponse struct {
	ChatID domain.ThreadID `json:"chat_id"`
}

// sendResponse is the /chats/{id}/send/ payload: the bot's answer, sometimes
// with an illustration.
type sendResponse struct {
	BotReply string `json:"bot_reply"`
	ImageURL string `json:"image_url"`
}

// Service is the assistant-chat state container.
//
// The user's prompt enters the transcript before the request goes out and
// stays there when the bot fails to answer, so the user can see what was
// asked and retry.
type Service struct {
	apiClient domain.APIClient
	notify    domain.Notifier

	mu       sync.Mutex
	threads  []domain.AssistantThread
	messages []domain.AssistantMessage
	selected domain.ThreadID
	hasSel   bool
}

// New constructs an assistant service.
func New(apiClient domain.APIClient, notify domain.Notifier) *Service {
	return &Service{apiClient: apiClient, notify: notify}
}

// FetchThreads replaces the thread roster. When nothing is selected yet, the
// first thread becomes the selection.
func (s *Service) FetchThreads(ctx context.Context) error {
	var threads []domain.AssistantThread
	if err := s.apiClient.Get(ctx, "/chats/", &threads); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to load chats"))
		return err
	}

	s.mu.Lock()
	s.threads = threads
	if !s.hasSel && len(threads) > 0 {
		s.selected = threads[0].ID
		s.hasSel = true
	}
	s.mu.Unlock()
	return nil
}

// Threads returns a snapshot of the roster.
func (s *Service) Threads() []domain.AssistantThread {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AssistantThread, len(s.threads))
	copy(out, s.threads)
	return out
}

// SelectThread opens a thread.
func (s *Service) SelectThread(id domain.ThreadID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
	s.hasSel = true
}

// SelectedThread reports the open thread, if any.
func (s *Service) SelectedThread() (domain.ThreadID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.hasSel
}

// FetchMessages loads one thread's transcript and selects that thread.
func (s *Service) FetchMessages(ctx context.Context, id domain.ThreadID) error {
	var messages []domain.AssistantMessage
	if err := s.apiClient.Get(ctx, fmt.Sprintf("/chats/%d/messages/", id), &messages); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to load messages"))
		return err
	}

	s.mu.Lock()
	s.selected = id
	s.hasSel = true
	s.messages = messages
	s.mu.Unlock()
	return nil
}

// Messages returns a snapshot of the open transcript.
func (s *Service) Messages() []domain.AssistantMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AssistantMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Send posts the prompt to the selected thread and appends the bot's reply.
func (s *Service) Send(ctx context.Context, text string) (domain.AssistantMessage, error) {
	s.mu.Lock()
	if !s.hasSel {
		s.mu.Unlock()
		return domain.AssistantMessage{}, ErrNoSelectedThread
	}
	thread := s.selected
	s.messages = append(s.messages, domain.AssistantMessage{Text: text, IsUser: true})
	s.mu.Unlock()

	var resp sendResponse
	if err := s.apiClient.Post(ctx, fmt.Sprintf("/chats/%d/send/", thread), map[string]string{"text": text}, &resp); err != nil {
		s.notify.Error(api.UserMessage(err, "Assistant did not answer"))
		return domain.AssistantMessage{}, err
	}

	reply := domain.AssistantMessage{Text: resp.BotReply, Image: resp.ImageURL}
	s.mu.Lock()
	s.messages = append(s.messages, reply)
	s.mu.Unlock()
	return reply, nil
}

// CreateThread opens a fresh thread, refetches the roster and selects it.
func (s *Service) CreateThread(ctx context.Context) (domain.ThreadID, error) {
	var resp createResponse
	if err := s.apiClient.Post(ctx, "/chats/create/", nil, &resp); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to create chat"))
		return 0, err
	}
	if err := s.FetchThreads(ctx); err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.selected = resp.ChatID
	s.hasSel = true
	s.messages = nil
	s.mu.Unlock()
	return resp.ChatID, nil
}

// RenameThread renames a thread, then refetches the roster once.
func (s *Service) RenameThread(ctx context.Context, id domain.ThreadID, name string) error {
	if err := s.apiClient.Post(ctx, fmt.Sprintf("/chats/%d/rename/", id), map[string]string{"name": name}, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to rename chat"))
		return err
	}
	return s.FetchThreads(ctx)
}

// Compile-time assertion that Service implements domain.AssistantService.
var _ domain.AssistantService = (*Service)(nil)
