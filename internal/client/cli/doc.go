// Package cli implements the hradmin command line: a cobra command tree
// with one-shot commands and an interactive shell for the admin console.
//
// The shell keeps the admin session fresh in the background, refreshing the
// access token ahead of expiry, and tells the user once when the session can
// no longer be refreshed. See NewRootCommand and (*App).RunShell.
package cli
