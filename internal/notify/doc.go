// Package notify carries the transient, user-facing outcome of service
// actions to whatever front end embeds the SDK. Every failed or succeeded
// action surfaces here; nothing in the feed is load-bearing.
package notify
