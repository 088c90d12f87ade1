package cli

import (
	"context"
	"strconv"
)

func (a *App) Affiliations(ctx context.Context) error {
	list, err := a.directory.Affiliations(ctx)
	if err != nil {
		return err
	}
	t := newTable("ID", "CODE", "NAME", "DESCRIPTION", "CREATED")
	for _, af := range list {
		t.add(strconv.FormatInt(af.ID, 10), af.Code, af.Name, orDash(af.Description), af.CreatedAt.Date())
	}
	t.render(a.out)
	return nil
}

// Users lists users, narrowed to one workspace when an id is given.
func (a *App) Users(ctx context.Context, args []string) error {
	var wsID int64
	if len(args) > 0 {
		id, err := argID(args, 0, "workspace id")
		if err != nil {
			return err
		}
		wsID = id
	}
	list, err := a.directory.Users(ctx, wsID)
	if err != nil {
		return err
	}
	t := newTable("ID", "EMAIL", "NAME", "USERNAME", "AFFILIATION", "ROLE", "CREATED")
	for _, u := range list {
		t.add(strconv.FormatInt(u.ID, 10), u.Email, u.Name, u.Username,
			strconv.FormatInt(u.AffiliationID, 10), u.Role, u.CreatedAt.Date())
	}
	t.render(a.out)
	return nil
}
