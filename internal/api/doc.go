// Package api implements the HTTP transport against the marketplace backend.
//
// All traffic is JSON over a single configured origin. The client attaches
// Authorization: Bearer <token> from its injected token source to every
// request except the public auth endpoints, and normalizes failures into:
//   - *Error for non-2xx responses, carrying the server's message when the
//     body provides one under "message", "error" or "detail";
//   - wrapped transport errors otherwise.
//
// There is deliberately no caching, retry or deduplication: one invocation,
// one request. The package also provides the websocket dialer for the chat
// push channel.
package api
