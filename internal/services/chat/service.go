package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"turak/internal/api"
	"turak/internal/domain"
)

// ErrNoSelectedUser is returned by SendMessage when no conversation is open.
var ErrNoSelectedUser = errors.New("no conversation selected")

// Service is the chat state container: the roster of conversation
// partners, the open conversation's messages, and the live push
// subscription feeding both.
type Service struct {
	apiClient domain.APIClient
	notify    domain.Notifier
	dialer    domain.ChatSocketDialer

	mu         sync.Mutex
	users      []domain.ChatUser
	messages   []domain.ChatMessage
	selected   domain.UserID
	socket     domain.ChatSocket
	socketDone chan struct{}
}

// New constructs a chat service. dialer may be nil for a poll-only client;
// Subscribe then fails cleanly.
func New(apiClient domain.APIClient, notify domain.Notifier, dialer domain.ChatSocketDialer) *Service {
	return &Service{apiClient: apiClient, notify: notify, dialer: dialer}
}

// FetchUsers replaces the conversation roster.
func (s *Service) FetchUsers(ctx context.Context) error {
	var users []domain.ChatUser
	if err := s.apiClient.Get(ctx, "/messages/users", &users); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to load chat users"))
		return err
	}

	s.mu.Lock()
	s.users = users
	s.sortUsersLocked()
	s.mu.Unlock()
	return nil
}

// ChatUsers returns a roster snapshot, most recent conversation first.
func (s *Service) ChatUsers() []domain.ChatUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatUser, len(s.users))
	copy(out, s.users)
	return out
}

// SelectUser opens a conversation and clears that peer's unread flag.
func (s *Service) SelectUser(id domain.UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].HasUnread = false
		}
	}
}

// SelectedUser reports the open conversation, if any.
func (s *Service) SelectedUser() (domain.UserID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.selected != ""
}

// FetchMessages loads one conversation and selects that peer.
func (s *Service) FetchMessages(ctx context.Context, peer domain.UserID) error {
	var messages []domain.ChatMessage
	if err := s.apiClient.Get(ctx, fmt.Sprintf("/messages/%s", peer), &messages); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to load messages"))
		return err
	}

	s.mu.Lock()
	s.selected = peer
	s.messages = messages
	s.mu.Unlock()
	return nil
}

// Messages returns a snapshot of the open conversation.
func (s *Service) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// SendMessage posts to the selected peer, appends the server's echo and
// bumps the peer to the top of the roster.
func (s *Service) SendMessage(ctx context.Context, text, image string) error {
	s.mu.Lock()
	peer := s.selected
	s.mu.Unlock()
	if peer == "" {
		return ErrNoSelectedUser
	}

	body := map[string]string{"text": text}
	if image != "" {
		body["image"] = image
	}
	var sent domain.ChatMessage
	if err := s.apiClient.Post(ctx, fmt.Sprintf("/messages/send/%s", peer), body, &sent); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to send message"))
		return err
	}

	s.mu.Lock()
	s.messages = append(s.messages, sent)
	s.bumpUserLocked(peer, time.Now())
	s.mu.Unlock()
	return nil
}

// Subscribe opens the push channel and applies events until the connection
// fails, Unsubscribe is called, or ctx is cancelled.
func (s *Service) Subscribe(ctx context.Context) error {
	if s.dialer == nil {
		return errors.New("chat push is not configured")
	}

	socket, err := s.dialer.Dial(ctx)
	if err != nil {
		s.notify.Error("Failed to connect to chat")
		return err
	}

	done := make(chan struct{})
	s.mu.Lock()
	if s.socket != nil {
		s.socket.Close()
		close(s.socketDone)
	}
	s.socket = socket
	s.socketDone = done
	s.mu.Unlock()

	// The watcher exits on done as well as ctx, so unsubscribing under a
	// long-lived ctx does not leave it behind.
	go func() {
		select {
		case <-ctx.Done():
			socket.Close()
		case <-done:
		}
	}()

	go func() {
		for {
			ev, err := socket.Next()
			if err != nil {
				return
			}
			s.apply(ev)
		}
	}()
	return nil
}

// Unsubscribe closes the push channel, if open, and releases its watcher.
func (s *Service) Unsubscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.socket != nil {
		s.socket.Close()
		close(s.socketDone)
		s.socket = nil
		s.socketDone = nil
	}
}

// apply folds one push event into local state.
func (s *Service) apply(ev domain.ChatEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Type {
	case domain.EventNewMessage:
		if ev.Message.SenderID == s.selected {
			s.messages = append(s.messages, ev.Message)
		} else {
			for i := range s.users {
				if s.users[i].ID == ev.Message.SenderID {
					s.users[i].HasUnread = true
				}
			}
		}
		s.bumpUserLocked(ev.Message.SenderID, ev.Message.CreatedAt)
	case domain.EventMessageRead:
		for i := range s.messages {
			if s.messages[i].ID == ev.MessageID {
				s.messages[i].IsRead = true
			}
		}
	}
}

func (s *Service) bumpUserLocked(id domain.UserID, at time.Time) {
	if at.IsZero() {
		at = time.Now()
	}
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].LastMessageTime = at
		}
	}
	s.sortUsersLocked()
}

func (s *Service) sortUsersLocked() {
	sort.SliceStable(s.users, func(i, j int) bool {
		return s.users[i].LastMessageTime.After(s.users[j].LastMessageTime)
	})
}

// Compile-time assertion that Service implements domain.ChatService.
var _ domain.ChatService = (*Service)(nil)
