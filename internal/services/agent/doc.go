// Package agent submits applications to become a listing agent and gives
// admins the review queue with approve/reject.
package agent
