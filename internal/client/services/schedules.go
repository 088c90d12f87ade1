package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/hradmin/internal/client/client"
	"github.com/dmitrijs2005/hradmin/internal/client/models"
	"github.com/dmitrijs2005/hradmin/internal/logging"
)

// ScheduleService reviews weekly work schedules.
type ScheduleService interface {
	Pending(ctx context.Context, page, size int) (*client.Page[models.WorkSchedule], error)
	ByWorkspace(ctx context.Context, workspaceID int64) ([]models.WorkSchedule, error)
	Approve(ctx context.Context, id int64) (*models.WorkSchedule, error)
	Reject(ctx context.Context, id int64, reason string) (*models.WorkSchedule, error)
}

type scheduleService struct {
	client client.Client
	log    logging.Logger
}

func NewScheduleService(c client.Client, log logging.Logger) ScheduleService {
	return &scheduleService{client: c, log: log}
}

func (s *scheduleService) Pending(ctx context.Context, page, size int) (*client.Page[models.WorkSchedule], error) {
	p, err := s.client.ListPendingSchedules(ctx, client.PageRequest{Page: page, Size: size})
	if err != nil {
		return nil, err
	}
	s.check(ctx, p.ResultList)
	return p, nil
}

func (s *scheduleService) ByWorkspace(ctx context.Context, workspaceID int64) ([]models.WorkSchedule, error) {
	if err := requireID("workspace id", workspaceID); err != nil {
		return nil, err
	}
	list, err := s.client.ListWorkspaceSchedules(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	s.check(ctx, list)
	return list, nil
}

func (s *scheduleService) Approve(ctx context.Context, id int64) (*models.WorkSchedule, error) {
	if err := requireID("schedule id", id); err != nil {
		return nil, err
	}
	return s.client.ApproveSchedule(ctx, id)
}

// Reject rejects a schedule. A blank reason is sent as no reason.
func (s *scheduleService) Reject(ctx context.Context, id int64, reason string) (*models.WorkSchedule, error) {
	if err := requireID("schedule id", id); err != nil {
		return nil, err
	}
	return s.client.RejectSchedule(ctx, id, strings.TrimSpace(reason))
}

// check logs schedules carrying waves other than ENTRY or OFF. They are
// still returned so the admin can see and reject them.
func (s *scheduleService) check(ctx context.Context, list []models.WorkSchedule) {
	for _, sc := range list {
		if err := sc.Validate(); err != nil {
			s.log.Warn(ctx, "schedule has invalid waves", "schedule_id", sc.ID, "error", err)
		}
	}
}
