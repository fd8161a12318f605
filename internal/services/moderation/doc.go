// Package moderation is the admin side of the marketplace: the queue of
// houses awaiting verification, the user roster with blocking, and the
// dashboard counters. Mutations refetch their collection rather than patch
// it locally.
package moderation
