package client

import (
	"context"

	"github.com/dmitrijs2005/hradmin/internal/client/models"
)

// LoginResult is the data of a credential exchange. Code is kept so callers
// can check it and notice numeric codes.
type LoginResult struct {
	Code         Code
	Message      string
	AccessToken  string
	RefreshToken string
}

// Client is the admin REST API.
type Client interface {
	Login(ctx context.Context, email, encryptedPassword string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)

	ListAffiliations(ctx context.Context) ([]models.Affiliation, error)
	ListUsers(ctx context.Context, workspaceID int64) ([]models.User, error)

	CreateContract(ctx context.Context, req models.ContractRequest) (*models.Contract, error)
	ListContracts(ctx context.Context, p PageRequest) (*Page[models.Contract], error)
	GetContract(ctx context.Context, id int64) (*models.Contract, error)
	UpdateContract(ctx context.Context, id int64, req models.ContractRequest) (*models.Contract, error)
	DeleteContract(ctx context.Context, id int64) error

	CreateWorkspace(ctx context.Context, req models.WorkspaceRequest) (*models.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]models.Workspace, error)
	GetWorkspace(ctx context.Context, id int64) (*models.Workspace, error)
	UpdateWorkspace(ctx context.Context, id int64, req models.WorkspaceRequest) (*models.Workspace, error)
	DeleteWorkspace(ctx context.Context, id int64) error

	ListPendingSchedules(ctx context.Context, p PageRequest) (*Page[models.WorkSchedule], error)
	ListWorkspaceSchedules(ctx context.Context, workspaceID int64) ([]models.WorkSchedule, error)
	ApproveSchedule(ctx context.Context, id int64) (*models.WorkSchedule, error)
	RejectSchedule(ctx context.Context, id int64, reason string) (*models.WorkSchedule, error)
}

// TokenSource supplies the bearer token for authenticated calls.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}
