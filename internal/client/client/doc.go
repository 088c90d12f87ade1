// Package client talks to the platform's admin REST API.
//
// HTTPClient sends JSON requests, attaches the bearer token from a
// TokenSource and maps failures to sentinel errors:
//
//   - transport failures: ErrUnavailable (GETs are retried with backoff)
//   - 401: ErrUnauthorized
//   - 403: ErrForbidden, server message kept
//   - 500: ErrServer, server message kept
//   - other non-2xx: *APIError without a sentinel
//
// Login and Refresh never consult the TokenSource, so the session manager
// can use the client as its refresher.
//
// InitDatabase and RunMigrations bootstrap the local SQLite database used to
// persist the session between runs.
package client
