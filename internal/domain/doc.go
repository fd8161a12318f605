// Package domain defines the shared types and contracts of the turak client:
// the entities mirrored from the marketplace backend, the capability
// interfaces the state services are built from (API client, token storage,
// notifications), and the service contracts themselves.
//
// Concrete types live in domain/types and contracts in domain/interfaces;
// this package re-exports both so most code imports only domain.
package domain
