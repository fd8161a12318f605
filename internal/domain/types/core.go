package types

// UserID identifies a marketplace account.
type UserID string

// String returns the string form of the user identifier.
func (id UserID) String() string { return string(id) }

// HouseID identifies a house listing.
type HouseID int64

// CommentID identifies a comment on a house.
type CommentID int64

// PostID identifies a blog post.
type PostID string

// String returns the string form of the post identifier.
func (id PostID) String() string { return string(id) }

// ApplicationID identifies an agent application.
type ApplicationID int64

// ThreadID identifies an assistant conversation thread.
type ThreadID int64
