// Package session keeps the admin's bearer token fresh.
//
// A Session is an immutable snapshot of what the credential exchange
// returned: access token, refresh token and the access token's expiry.
// EnsureFresh is the whole refresh policy as a pure function of
// (prior session, now, refresher): inside the refresh buffer the token is
// reused; past it the refresh endpoint is called once. A failed refresh never
// returns an error; it is recorded on the returned Session (Err wraps
// common.ErrRefreshAccessToken) and the session stays in the Expired state
// until a new credential exchange.
//
// Manager threads snapshots through a Store, and collapses concurrent reads
// of an expiring session into a single refresh call.
//
//	Unauthenticated --Begin--> Authenticated --(now >= exp-buffer)--> Refreshing
//	Refreshing --ok--> Authenticated
//	Refreshing --fail--> Expired (terminal until Begin)
package session
