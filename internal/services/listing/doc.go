// Package listing owns the public house catalog, per-house comments, like
// state and the contact-seller flow. Only verified houses ever appear here;
// the moderation queue is a disjoint collection.
package listing
