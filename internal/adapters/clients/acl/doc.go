// Package acl holds the Anti-Corruption Layer adapters for external
// services: the OpenAI quote generator and the Warpcast identity and
// cast APIs.
//
// Each adapter translates at the boundary in both directions:
//
//   - External DTOs never leak into the domain; translation functions
//     validate external data before building domain objects.
//   - External failures (HTTP status codes, error bodies, transport and
//     circuit breaker errors) map to domain errors via [MapHTTPError],
//     so the application layer only ever branches on domain error types.
//
// DTO structs are unexported and live next to the adapter that owns
// them. Shared plumbing lives in translator.go and errors.go.
package acl
