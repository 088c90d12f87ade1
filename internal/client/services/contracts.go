package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hradmin/internal/client/client"
	"github.com/dmitrijs2005/hradmin/internal/client/models"
	"github.com/dmitrijs2005/hradmin/internal/cryptox"
	"github.com/dmitrijs2005/hradmin/internal/logging"
)

// ContractService manages contractor agreements. Phone numbers are sent
// encrypted and returned decrypted.
type ContractService interface {
	List(ctx context.Context, page, size int) (*client.Page[models.Contract], error)
	Get(ctx context.Context, id int64) (*models.Contract, error)
	Create(ctx context.Context, req models.ContractRequest) (*models.Contract, error)
	Update(ctx context.Context, id int64, req models.ContractRequest) (*models.Contract, error)
	Delete(ctx context.Context, id int64) error
	// PhoneLookupKey returns the HMAC of the normalized phone number.
	PhoneLookupKey(phone string) string
}

type contractService struct {
	client client.Client
	cipher *cryptox.Cipher
	log    logging.Logger
}

func NewContractService(c client.Client, cipher *cryptox.Cipher, log logging.Logger) ContractService {
	return &contractService{client: c, cipher: cipher, log: log}
}

// NormalizePhone drops hyphens and surrounding spaces: 010-1234-5678 becomes
// 01012345678.
func NormalizePhone(phone string) string {
	return strings.ReplaceAll(strings.TrimSpace(phone), "-", "")
}

// looksEncrypted matches the Base64 padding every encrypted phone number
// carries.
func looksEncrypted(v string) bool {
	return strings.Contains(v, "==")
}

func (s *contractService) List(ctx context.Context, page, size int) (*client.Page[models.Contract], error) {
	p, err := s.client.ListContracts(ctx, client.PageRequest{Page: page, Size: size})
	if err != nil {
		return nil, err
	}
	for i := range p.ResultList {
		s.revealPhone(ctx, &p.ResultList[i])
	}
	return p, nil
}

func (s *contractService) Get(ctx context.Context, id int64) (*models.Contract, error) {
	if err := requireID("contract id", id); err != nil {
		return nil, err
	}
	c, err := s.client.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if c != nil {
		s.revealPhone(ctx, c)
	}
	return c, nil
}

func (s *contractService) Create(ctx context.Context, req models.ContractRequest) (*models.Contract, error) {
	if err := requireField("affiliation code", req.AffiliationCode); err != nil {
		return nil, err
	}
	req, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	return s.client.CreateContract(ctx, req)
}

func (s *contractService) Update(ctx context.Context, id int64, req models.ContractRequest) (*models.Contract, error) {
	if err := requireID("contract id", id); err != nil {
		return nil, err
	}
	req, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	return s.client.UpdateContract(ctx, id, req)
}

func (s *contractService) Delete(ctx context.Context, id int64) error {
	if err := requireID("contract id", id); err != nil {
		return err
	}
	return s.client.DeleteContract(ctx, id)
}

func (s *contractService) PhoneLookupKey(phone string) string {
	return s.cipher.HMAC(NormalizePhone(phone))
}

func (s *contractService) prepare(req models.ContractRequest) (models.ContractRequest, error) {
	if err := requireField("name", req.Name); err != nil {
		return req, err
	}
	phone := NormalizePhone(req.PhoneNumber)
	if err := requireField("phone number", phone); err != nil {
		return req, err
	}

	enc, err := s.cipher.Encrypt(phone)
	if err != nil {
		return req, fmt.Errorf("encrypt phone number: %w", err)
	}
	req.Name = strings.TrimSpace(req.Name)
	req.PhoneNumber = enc
	return req, nil
}

// revealPhone decrypts the phone number in place. Values that fail to
// decrypt are left as received.
func (s *contractService) revealPhone(ctx context.Context, c *models.Contract) {
	if !looksEncrypted(c.PhoneNumber) {
		return
	}
	plain, err := s.cipher.Decrypt(c.PhoneNumber)
	if err != nil {
		s.log.Warn(ctx, "phone number decryption failed", "contract_id", c.ID, "error", err)
		return
	}
	c.PhoneNumber = plain
}
