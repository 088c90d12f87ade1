package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hradmin/internal/client/client"
	"github.com/dmitrijs2005/hradmin/internal/client/models"
	"github.com/dmitrijs2005/hradmin/internal/common"
)

// DirectoryService lists affiliations and users.
type DirectoryService interface {
	Affiliations(ctx context.Context) ([]models.Affiliation, error)
	// Users lists all users, or those of one workspace when workspaceID > 0.
	Users(ctx context.Context, workspaceID int64) ([]models.User, error)
}

type directoryService struct {
	client client.Client
}

func NewDirectoryService(c client.Client) DirectoryService {
	return &directoryService{client: c}
}

func (s *directoryService) Affiliations(ctx context.Context) ([]models.Affiliation, error) {
	return s.client.ListAffiliations(ctx)
}

func (s *directoryService) Users(ctx context.Context, workspaceID int64) ([]models.User, error) {
	if workspaceID < 0 {
		return nil, fmt.Errorf("%w: workspace id must not be negative", common.ErrValidation)
	}
	return s.client.ListUsers(ctx, workspaceID)
}
