package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"turak/internal/domain"
)

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one transient, dismissible message.
type Notification struct {
	ID      uuid.UUID
	Level   Level
	Message string
	At      time.Time
}

// feedCap bounds how many notifications the feed retains.
const feedCap = 64

// Feed collects notifications for a UI to drain. It keeps the most recent
// feedCap entries and pushes each one to a buffered channel; a slow or
// absent consumer loses messages rather than blocking a service action.
type Feed struct {
	mu      sync.Mutex
	entries []Notification
	ch      chan Notification
}

// NewFeed returns an empty feed.
func NewFeed() *Feed {
	return &Feed{ch: make(chan Notification, feedCap)}
}

func (f *Feed) Success(message string) { f.push(LevelSuccess, message) }
func (f *Feed) Error(message string)   { f.push(LevelError, message) }

// Recent returns the retained notifications, oldest first.
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.entries))
	copy(out, f.entries)
	return out
}

// C streams notifications as they arrive. Messages are dropped, not
// queued indefinitely, when the consumer lags.
func (f *Feed) C() <-chan Notification {
	return f.ch
}

func (f *Feed) push(level Level, message string) {
	n := Notification{ID: uuid.New(), Level: level, Message: message, At: time.Now()}

	f.mu.Lock()
	f.entries = append(f.entries, n)
	if len(f.entries) > feedCap {
		f.entries = f.entries[len(f.entries)-feedCap:]
	}
	f.mu.Unlock()

	select {
	case f.ch <- n:
	default:
	}
}

// Logger forwards notifications to a slog.Logger. The CLI uses it so action
// outcomes land on stderr instead of an in-memory feed.
type Logger struct {
	log *slog.Logger
}

// NewLogger returns a Notifier writing through log.
func NewLogger(log *slog.Logger) *Logger { return &Logger{log: log} }

func (l *Logger) Success(message string) { l.log.Info(message) }
func (l *Logger) Error(message string)   { l.log.Error(message) }

// Discard drops every notification. Handy in tests that assert on returned
// errors instead.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}

var (
	_ domain.Notifier = (*Feed)(nil)
	_ domain.Notifier = (*Logger)(nil)
	_ domain.Notifier = Discard{}
)
