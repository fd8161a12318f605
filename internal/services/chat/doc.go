// Package chat holds direct-message state: the roster (sorted by last
// activity, with unread flags), the open conversation, and a websocket
// subscription that folds pushed newMessage/messageRead events into both.
package chat
