package types

import "time"

// Post is an independent blog entry, unrelated to any house.
type Post struct {
	ID        PostID    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// PostDraft carries the writable fields of a post.
type PostDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}
