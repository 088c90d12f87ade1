package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hradmin/internal/common"
)

func requireID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be positive", common.ErrValidation, name)
	}
	return nil
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", common.ErrValidation, name)
	}
	return nil
}
