// Package assistant holds the property-bot conversations: a roster of named
// threads and the selected thread's transcript of prompts and bot replies.
package assistant
