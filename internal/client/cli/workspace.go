package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/hradmin/internal/client/models"
)

func (a *App) Workspaces(ctx context.Context) error {
	list, err := a.workspaces.List(ctx)
	if err != nil {
		return err
	}
	t := newTable("ID", "NAME", "ADDRESS", "CREATED")
	for _, w := range list {
		t.add(strconv.FormatInt(w.ID, 10), w.Name, orDash(w.Address()), w.CreatedAt.Date())
	}
	t.render(a.out)
	return nil
}

func (a *App) ShowWorkspace(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "workspace id")
	if err != nil {
		return err
	}
	w, err := a.workspaces.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printWorkspace(w)
	return nil
}

func (a *App) printWorkspace(w *models.Workspace) {
	fields(a.out,
		"ID", strconv.FormatInt(w.ID, 10),
		"Name", w.Name,
		"Description", w.Description,
		"Postal code", w.PostNo,
		"Address", w.Address(),
		"Location", strconv.FormatFloat(w.Latitude, 'f', 6, 64)+", "+strconv.FormatFloat(w.Longitude, 'f', 6, 64),
		"Created", w.CreatedAt.DateTime(),
	)
}

// workspaceForm prompts for every field, offering cur as the default.
func (a *App) workspaceForm(cur models.WorkspaceRequest) (models.WorkspaceRequest, error) {
	var err error
	steps := []struct {
		label string
		dst   *string
	}{
		{"Name", &cur.Name},
		{"Description", &cur.Description},
		{"Postal code", &cur.PostNo},
		{"Address", &cur.BasicAddr},
		{"Address detail", &cur.AddrDetail},
	}
	for _, s := range steps {
		if *s.dst, err = GetWithDefault(a.in, s.label, *s.dst); err != nil {
			return models.WorkspaceRequest{}, err
		}
	}
	return cur, nil
}

func (a *App) AddWorkspace(ctx context.Context) error {
	req, err := a.workspaceForm(models.WorkspaceRequest{})
	if err != nil {
		return err
	}
	w, err := a.workspaces.Create(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Workspace %d created\n", w.ID)
	return nil
}

func (a *App) EditWorkspace(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "workspace id")
	if err != nil {
		return err
	}
	cur, err := a.workspaces.Get(ctx, id)
	if err != nil {
		return err
	}
	req, err := a.workspaceForm(models.WorkspaceRequest{
		Name:        cur.Name,
		Description: cur.Description,
		PostNo:      cur.PostNo,
		BasicAddr:   cur.BasicAddr,
		AddrDetail:  cur.AddrDetail,
	})
	if err != nil {
		return err
	}
	if _, err := a.workspaces.Update(ctx, id, req); err != nil {
		return err
	}
	a.printf("Workspace %d updated\n", id)
	return nil
}

func (a *App) DeleteWorkspace(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "workspace id")
	if err != nil {
		return err
	}
	ok, err := Confirm(a.in, "Delete workspace "+strconv.FormatInt(id, 10)+"?")
	if err != nil || !ok {
		return err
	}
	if err := a.workspaces.Delete(ctx, id); err != nil {
		return err
	}
	a.printf("Workspace %d deleted\n", id)
	return nil
}
