// Package httpclient issues HTTP requests and normalizes the results.
//
// It wraps the standard library's http package with:
//   - Functional client options (timeout, redirects, TLS, proxy,
//     default headers, request IDs)
//   - An immutable-style per-request configuration builder with
//     bearer and basic auth helpers
//   - JSON payload validation before any network I/O
//   - A plain response value carrying status, headers, body text,
//     content type, and elapsed time
package httpclient
