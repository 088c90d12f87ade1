package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/hradmin/internal/client/client"
	"github.com/dmitrijs2005/hradmin/internal/client/models"
)

type WorkspaceService interface {
	List(ctx context.Context) ([]models.Workspace, error)
	Get(ctx context.Context, id int64) (*models.Workspace, error)
	Create(ctx context.Context, req models.WorkspaceRequest) (*models.Workspace, error)
	Update(ctx context.Context, id int64, req models.WorkspaceRequest) (*models.Workspace, error)
	Delete(ctx context.Context, id int64) error
}

type workspaceService struct {
	client client.Client
}

func NewWorkspaceService(c client.Client) WorkspaceService {
	return &workspaceService{client: c}
}

func (s *workspaceService) List(ctx context.Context) ([]models.Workspace, error) {
	return s.client.ListWorkspaces(ctx)
}

func (s *workspaceService) Get(ctx context.Context, id int64) (*models.Workspace, error) {
	if err := requireID("workspace id", id); err != nil {
		return nil, err
	}
	return s.client.GetWorkspace(ctx, id)
}

func (s *workspaceService) Create(ctx context.Context, req models.WorkspaceRequest) (*models.Workspace, error) {
	req, err := checkWorkspace(req)
	if err != nil {
		return nil, err
	}
	return s.client.CreateWorkspace(ctx, req)
}

func (s *workspaceService) Update(ctx context.Context, id int64, req models.WorkspaceRequest) (*models.Workspace, error) {
	if err := requireID("workspace id", id); err != nil {
		return nil, err
	}
	req, err := checkWorkspace(req)
	if err != nil {
		return nil, err
	}
	return s.client.UpdateWorkspace(ctx, id, req)
}

func (s *workspaceService) Delete(ctx context.Context, id int64) error {
	if err := requireID("workspace id", id); err != nil {
		return err
	}
	return s.client.DeleteWorkspace(ctx, id)
}

func checkWorkspace(req models.WorkspaceRequest) (models.WorkspaceRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.PostNo = strings.TrimSpace(req.PostNo)
	req.BasicAddr = strings.TrimSpace(req.BasicAddr)
	req.AddrDetail = strings.TrimSpace(req.AddrDetail)
	req.Description = strings.TrimSpace(req.Description)

	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"postal code", req.PostNo},
		{"address", req.BasicAddr},
	} {
		if err := requireField(f.name, f.value); err != nil {
			return req, err
		}
	}
	return req, nil
}
