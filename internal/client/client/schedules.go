package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/hradmin/internal/client/models"
)

const schedulesPath = "/api/admin/schedules"

func (c *HTTPClient) ListPendingSchedules(ctx context.Context, p PageRequest) (*Page[models.WorkSchedule], error) {
	p = p.normalize()
	return call[*Page[models.WorkSchedule]](ctx, c, request{
		method: http.MethodGet,
		path:   schedulesPath + "/pending",
		query:  url.Values{"page": {strconv.Itoa(p.Page)}, "size": {strconv.Itoa(p.Size)}},
	})
}

func (c *HTTPClient) ListWorkspaceSchedules(ctx context.Context, workspaceID int64) ([]models.WorkSchedule, error) {
	return call[[]models.WorkSchedule](ctx, c, request{
		method: http.MethodGet,
		path:   idPath(schedulesPath+"/workspace", workspaceID),
	})
}

func (c *HTTPClient) ApproveSchedule(ctx context.Context, id int64) (*models.WorkSchedule, error) {
	return call[*models.WorkSchedule](ctx, c, request{
		method: http.MethodPut,
		path:   idPath(schedulesPath, id) + "/approve",
	})
}

// RejectSchedule rejects a schedule. The body is {"reason": …} when reason
// is set and {} otherwise.
func (c *HTTPClient) RejectSchedule(ctx context.Context, id int64, reason string) (*models.WorkSchedule, error) {
	return call[*models.WorkSchedule](ctx, c, request{
		method: http.MethodPut,
		path:   idPath(schedulesPath, id) + "/reject",
		body:   models.RejectRequest{Reason: reason},
	})
}
