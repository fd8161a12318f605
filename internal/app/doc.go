// Package app wires application dependencies for the CLI and for any other
// front end embedding the SDK.
//
// It builds the token store, HTTP transport and state services from Config,
// exposing them via the Wire struct.
package app
