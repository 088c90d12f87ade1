package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/hradmin/internal/client/models"
)

const workspacesPath = "/api/admin/workspaces"

func (c *HTTPClient) CreateWorkspace(ctx context.Context, req models.WorkspaceRequest) (*models.Workspace, error) {
	return call[*models.Workspace](ctx, c, request{method: http.MethodPost, path: workspacesPath, body: req})
}

func (c *HTTPClient) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	return call[[]models.Workspace](ctx, c, request{method: http.MethodGet, path: workspacesPath})
}

func (c *HTTPClient) GetWorkspace(ctx context.Context, id int64) (*models.Workspace, error) {
	return call[*models.Workspace](ctx, c, request{method: http.MethodGet, path: idPath(workspacesPath, id)})
}

func (c *HTTPClient) UpdateWorkspace(ctx context.Context, id int64, req models.WorkspaceRequest) (*models.Workspace, error) {
	return call[*models.Workspace](ctx, c, request{method: http.MethodPut, path: idPath(workspacesPath, id), body: req})
}

func (c *HTTPClient) DeleteWorkspace(ctx context.Context, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: idPath(workspacesPath, id)}, nil)
}
