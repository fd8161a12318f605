// Package consult holds the free-consultation form and submits it.
package consult
