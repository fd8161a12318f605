package types

import "time"

// House is a single listing in the catalog.
//
// Verified houses appear in the public catalog; unverified ones live only in
// the moderation queue until an admin verifies or rejects them.
type House struct {
	ID               HouseID  `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Price            float64  `json:"price"`
	Rooms            int      `json:"rooms"`
	Square           float64  `json:"square"`
	HasPool          bool     `json:"has_pool"`
	FeaturesInternal []string `json:"features_internal"`
	FeaturesExternal []string `json:"features_external"`
	Image            string   `json:"image"`
	Likes            []UserID `json:"likes"`
	Views            int64    `json:"views"`
	Verified         bool     `json:"verified"`
}

// Comment belongs to exactly one house.
type Comment struct {
	ID        CommentID `json:"id"`
	HouseID   HouseID   `json:"house"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeStatus is the per-viewer projection the backend returns from the like
// toggle. The client applies it verbatim and never computes it locally.
type LikeStatus struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// ContactRequest is the message a buyer sends to a seller after verifying
// their email with a one-time code.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
