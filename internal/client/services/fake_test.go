package services

import (
	"context"

	"github.com/dmitrijs2005/hradmin/internal/client/client"
	"github.com/dmitrijs2005/hradmin/internal/client/models"
)

// fakeClient records the last call and returns preset values.
type fakeClient struct {
	loginRes       *client.LoginResult
	loginErr       error
	lastEmail      string
	lastPassword   string
	contract       *models.Contract
	contracts      *client.Page[models.Contract]
	lastContract   models.ContractRequest
	lastID         int64
	lastReason     string
	workspaces     []models.Workspace
	lastWorkspace  models.WorkspaceRequest
	schedules      []models.WorkSchedule
	lastPage       client.PageRequest
	lastUsersQuery int64
	err            error
	calls          int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, email, encryptedPassword string) (*client.LoginResult, error) {
	f.calls++
	f.lastEmail, f.lastPassword = email, encryptedPassword
	return f.loginRes, f.loginErr
}

func (f *fakeClient) Refresh(ctx context.Context, refreshToken string) (string, error) {
	f.calls++
	return "", f.err
}

func (f *fakeClient) ListAffiliations(ctx context.Context) ([]models.Affiliation, error) {
	f.calls++
	return []models.Affiliation{{ID: 1, Code: "AF1"}}, f.err
}

func (f *fakeClient) ListUsers(ctx context.Context, workspaceID int64) ([]models.User, error) {
	f.calls++
	f.lastUsersQuery = workspaceID
	return nil, f.err
}

func (f *fakeClient) CreateContract(ctx context.Context, req models.ContractRequest) (*models.Contract, error) {
	f.calls++
	f.lastContract = req
	return f.contract, f.err
}

func (f *fakeClient) ListContracts(ctx context.Context, p client.PageRequest) (*client.Page[models.Contract], error) {
	f.calls++
	f.lastPage = p
	return f.contracts, f.err
}

func (f *fakeClient) GetContract(ctx context.Context, id int64) (*models.Contract, error) {
	f.calls++
	f.lastID = id
	return f.contract, f.err
}

func (f *fakeClient) UpdateContract(ctx context.Context, id int64, req models.ContractRequest) (*models.Contract, error) {
	f.calls++
	f.lastID, f.lastContract = id, req
	return f.contract, f.err
}

func (f *fakeClient) DeleteContract(ctx context.Context, id int64) error {
	f.calls++
	f.lastID = id
	return f.err
}

func (f *fakeClient) CreateWorkspace(ctx context.Context, req models.WorkspaceRequest) (*models.Workspace, error) {
	f.calls++
	f.lastWorkspace = req
	return &models.Workspace{ID: 1, Name: req.Name}, f.err
}

func (f *fakeClient) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	f.calls++
	return f.workspaces, f.err
}

func (f *fakeClient) GetWorkspace(ctx context.Context, id int64) (*models.Workspace, error) {
	f.calls++
	f.lastID = id
	return &models.Workspace{ID: id}, f.err
}

func (f *fakeClient) UpdateWorkspace(ctx context.Context, id int64, req models.WorkspaceRequest) (*models.Workspace, error) {
	f.calls++
	f.lastID, f.lastWorkspace = id, req
	return &models.Workspace{ID: id, Name: req.Name}, f.err
}

func (f *fakeClient) DeleteWorkspace(ctx context.Context, id int64) error {
	f.calls++
	f.lastID = id
	return f.err
}

func (f *fakeClient) ListPendingSchedules(ctx context.Context, p client.PageRequest) (*client.Page[models.WorkSchedule], error) {
	f.calls++
	f.lastPage = p
	return &client.Page[models.WorkSchedule]{ResultList: f.schedules}, f.err
}

func (f *fakeClient) ListWorkspaceSchedules(ctx context.Context, workspaceID int64) ([]models.WorkSchedule, error) {
	f.calls++
	f.lastID = workspaceID
	return f.schedules, f.err
}

func (f *fakeClient) ApproveSchedule(ctx context.Context, id int64) (*models.WorkSchedule, error) {
	f.calls++
	f.lastID = id
	return &models.WorkSchedule{ID: id, Status: models.StatusApproved}, f.err
}

func (f *fakeClient) RejectSchedule(ctx context.Context, id int64, reason string) (*models.WorkSchedule, error) {
	f.calls++
	f.lastID, f.lastReason = id, reason
	return &models.WorkSchedule{ID: id, Status: models.StatusRejected}, f.err
}
