// Package posts owns the blog post collection: fetch-all, create, update,
// delete, with local state kept consistent with each server response.
package posts
