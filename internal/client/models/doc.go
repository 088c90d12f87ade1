// Package models defines the admin API resources handled by the hradmin CLI:
// affiliations, contracts, workspaces, users and weekly work schedules.
package models
