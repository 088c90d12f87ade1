package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hradmin/internal/client/client"
	"github.com/dmitrijs2005/hradmin/internal/client/models"
)

var weekdayHeader = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

func scheduleTable(list []models.WorkSchedule) *table {
	header := append([]string{"ID", "WORKSPACE", "WEEK", "STATUS"}, weekdayHeader...)
	t := newTable(append(header, "CREATED")...)
	for _, s := range list {
		row := []string{strconv.FormatInt(s.ID, 10), strconv.FormatInt(s.WorkspaceID, 10), s.Period(), string(s.Status)}
		for _, d := range s.Days() {
			row = append(row, orDash(string(d.Wave)))
		}
		t.add(append(row, s.CreatedAt.Date())...)
	}
	return t
}

func (a *App) Pending(ctx context.Context, args []string) error {
	page, err := argInt(args, 0, "page", client.DefaultPage)
	if err != nil {
		return err
	}
	size, err := argInt(args, 1, "page size", client.DefaultPageSize)
	if err != nil {
		return err
	}
	p, err := a.schedules.Pending(ctx, page, size)
	if err != nil {
		return err
	}
	scheduleTable(p.ResultList).render(a.out)
	a.printf("page %d/%d, %d total\n", p.CurrentPage, p.TotalPages, p.TotalCount)
	return nil
}

func (a *App) Schedules(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "workspace id")
	if err != nil {
		return err
	}
	list, err := a.schedules.ByWorkspace(ctx, id)
	if err != nil {
		return err
	}
	scheduleTable(list).render(a.out)
	return nil
}

func (a *App) Approve(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "schedule id")
	if err != nil {
		return err
	}
	s, err := a.schedules.Approve(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Schedule %d %s\n", s.ID, strings.ToLower(string(s.Status)))
	return nil
}

// Reject takes the rest of the line as the reason.
func (a *App) Reject(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "schedule id")
	if err != nil {
		return err
	}
	reason := ""
	if len(args) > 1 {
		reason = strings.Join(args[1:], " ")
	}
	s, err := a.schedules.Reject(ctx, id, reason)
	if err != nil {
		return err
	}
	a.printf("Schedule %d %s\n", s.ID, strings.ToLower(string(s.Status)))
	return nil
}
