package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/hradmin/internal/client/models"
)

const contractsPath = "/api/contracts"

func (c *HTTPClient) CreateContract(ctx context.Context, req models.ContractRequest) (*models.Contract, error) {
	return call[*models.Contract](ctx, c, request{method: http.MethodPost, path: contractsPath, body: req})
}

func (c *HTTPClient) ListContracts(ctx context.Context, p PageRequest) (*Page[models.Contract], error) {
	p = p.normalize()
	return call[*Page[models.Contract]](ctx, c, request{
		method: http.MethodGet,
		path:   contractsPath,
		query:  url.Values{"page": {strconv.Itoa(p.Page)}, "size": {strconv.Itoa(p.Size)}},
	})
}

func (c *HTTPClient) GetContract(ctx context.Context, id int64) (*models.Contract, error) {
	return call[*models.Contract](ctx, c, request{method: http.MethodGet, path: idPath(contractsPath, id)})
}

func (c *HTTPClient) UpdateContract(ctx context.Context, id int64, req models.ContractRequest) (*models.Contract, error) {
	return call[*models.Contract](ctx, c, request{method: http.MethodPut, path: idPath(contractsPath, id), body: req})
}

func (c *HTTPClient) DeleteContract(ctx context.Context, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: idPath(contractsPath, id)}, nil)
}
