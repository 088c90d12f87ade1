package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/hradmin/internal/client/client"
	"github.com/dmitrijs2005/hradmin/internal/client/models"
)

func (a *App) Contracts(ctx context.Context, args []string) error {
	page, err := argInt(args, 0, "page", client.DefaultPage)
	if err != nil {
		return err
	}
	size, err := argInt(args, 1, "page size", client.DefaultPageSize)
	if err != nil {
		return err
	}
	p, err := a.contracts.List(ctx, page, size)
	if err != nil {
		return err
	}
	t := newTable("ID", "NAME", "PHONE", "BRN", "AFFILIATION", "CREATED")
	for _, c := range p.ResultList {
		t.add(strconv.FormatInt(c.ID, 10), c.Name, c.PhoneNumber, c.BusinessRegistrationNumber,
			strconv.FormatInt(c.AffiliationID, 10), c.CreatedAt.Date())
	}
	t.render(a.out)
	a.printf("page %d/%d, %d total\n", p.CurrentPage, p.TotalPages, p.TotalCount)
	return nil
}

func (a *App) ShowContract(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "contract id")
	if err != nil {
		return err
	}
	c, err := a.contracts.Get(ctx, id)
	if err != nil {
		return err
	}
	fields(a.out,
		"ID", strconv.FormatInt(c.ID, 10),
		"Name", c.Name,
		"Phone", c.PhoneNumber,
		"Business reg. no", c.BusinessRegistrationNumber,
		"Affiliation", strconv.FormatInt(c.AffiliationID, 10),
		"Contractor code", c.ContractorCode,
		"Region", c.Region,
		"Delivery app ID", c.DeliveryAppID,
		"Vehicle number", c.VehicleNumber,
		"Created", c.CreatedAt.DateTime(),
		"Updated", c.UpdatedAt.DateTime(),
	)
	return nil
}

func (a *App) contractForm(cur models.ContractRequest) (models.ContractRequest, error) {
	var err error
	steps := []struct {
		label string
		dst   *string
	}{
		{"Name", &cur.Name},
		{"Phone", &cur.PhoneNumber},
		{"Business reg. no", &cur.BusinessRegistrationNumber},
		{"Affiliation code", &cur.AffiliationCode},
		{"Contractor code", &cur.ContractorCode},
		{"Region", &cur.Region},
		{"Delivery app ID", &cur.DeliveryAppID},
		{"Vehicle number", &cur.VehicleNumber},
	}
	for _, s := range steps {
		if *s.dst, err = GetWithDefault(a.in, s.label, *s.dst); err != nil {
			return models.ContractRequest{}, err
		}
	}
	return cur, nil
}

func (a *App) AddContract(ctx context.Context) error {
	req, err := a.contractForm(models.ContractRequest{})
	if err != nil {
		return err
	}
	c, err := a.contracts.Create(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Contract %d registered\n", c.ID)
	return nil
}

// EditContract prefills the form with the decrypted phone number. The
// affiliation code is only sent when entered.
func (a *App) EditContract(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "contract id")
	if err != nil {
		return err
	}
	cur, err := a.contracts.Get(ctx, id)
	if err != nil {
		return err
	}
	req, err := a.contractForm(models.ContractRequest{
		Name:                       cur.Name,
		PhoneNumber:                cur.PhoneNumber,
		BusinessRegistrationNumber: cur.BusinessRegistrationNumber,
		ContractorCode:             cur.ContractorCode,
		Region:                     cur.Region,
		DeliveryAppID:              cur.DeliveryAppID,
		VehicleNumber:              cur.VehicleNumber,
	})
	if err != nil {
		return err
	}
	if _, err := a.contracts.Update(ctx, id, req); err != nil {
		return err
	}
	a.printf("Contract %d updated\n", id)
	return nil
}

func (a *App) DeleteContract(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "contract id")
	if err != nil {
		return err
	}
	ok, err := Confirm(a.in, fmt.Sprintf("Delete contract %d?", id))
	if err != nil || !ok {
		return err
	}
	if err := a.contracts.Delete(ctx, id); err != nil {
		return err
	}
	a.printf("Contract %d deleted\n", id)
	return nil
}

// PhoneKey prints the lookup key of a phone number.
func (a *App) PhoneKey(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing phone number")
	}
	a.println(a.contracts.PhoneLookupKey(args[0]))
	return nil
}
