// Package services holds the application services behind the hradmin CLI.
// Each service validates input, applies the field cipher where the API
// expects encrypted values and delegates to client.Client.
package services
