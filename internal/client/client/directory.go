package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/hradmin/internal/client/models"
)

func (c *HTTPClient) ListAffiliations(ctx context.Context) ([]models.Affiliation, error) {
	return call[[]models.Affiliation](ctx, c, request{method: http.MethodGet, path: "/api/admin/affiliations"})
}

// ListUsers lists users, filtered by workspace when workspaceID > 0.
func (c *HTTPClient) ListUsers(ctx context.Context, workspaceID int64) ([]models.User, error) {
	r := request{method: http.MethodGet, path: "/api/admin/users"}
	if workspaceID > 0 {
		r.query = url.Values{"workspaceId": {strconv.FormatInt(workspaceID, 10)}}
	}
	return call[[]models.User](ctx, c, r)
}
