// Package commands defines the turak CLI: auth and session management,
// listing browsing, moderation, predictions, posts, chat and the
// consultation/agent-application forms, all driven through the SDK's state
// services.
package commands
