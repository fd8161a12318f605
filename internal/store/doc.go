// Package store persists the client's only durable state: the access and
// refresh token strings. Writes go through a temp file and rename so a
// crash never leaves a torn pair on disk.
package store
