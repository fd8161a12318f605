package interfaces

import (
	"context"
	"io"

	domaintypes "turak/internal/domain/types"
)

// APIClient issues JSON requests against the marketplace backend. Paths are
// relative to the configured origin. A nil out discards the response body.
//
// Implementations attach the bearer token from their TokenSource to every
// request except the public auth endpoints, and normalize non-2xx responses
// into *api.Error values.
type APIClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, in, out any) error
	Put(ctx context.Context, path string, in, out any) error
	Delete(ctx context.Context, path string) error

	// PutMultipart sends a multipart form, optionally with one file part.
	// A nil file sends fields only.
	PutMultipart(
		ctx context.Context,
		path string,
		fields map[string]string,
		fileField, fileName string,
		file io.Reader,
		out any,
	) error
}

// ChatSocket is one live connection to the chat push channel.
type ChatSocket interface {
	// Next blocks until the next event arrives or the connection fails.
	Next() (domaintypes.ChatEvent, error)
	Close() error
}

// ChatSocketDialer opens chat push connections.
type ChatSocketDialer interface {
	Dial(ctx context.Context) (ChatSocket, error)
}
