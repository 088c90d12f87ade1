package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Code is the envelope's code field. The backend sends it as a string on
// most endpoints and as a number on some; both decode here.
type Code struct {
	Value   string
	Numeric bool
}

func (c *Code) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*c = Code{}
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Code{Value: s}
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("code: %w", err)
		}
		*c = Code{Value: n.String(), Numeric: true}
	}
	return nil
}

func (c Code) MarshalJSON() ([]byte, error) {
	if c.Numeric {
		if _, err := strconv.ParseFloat(c.Value, 64); err == nil {
			return []byte(c.Value), nil
		}
	}
	return json.Marshal(c.Value)
}

// IsOK reports whether the code is 200 in either form.
func (c Code) IsOK() bool {
	return c.Value == "200"
}

func (c Code) String() string {
	return c.Value
}

// Response is the common response envelope.
type Response[T any] struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
	Data    T      `json:"data"`
}

// Page is a paginated list payload.
type Page[T any] struct {
	TotalCount  int `json:"totalCount"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	ResultList  []T `json:"resultList"`
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageRequest selects a page. Non-positive values fall back to the defaults.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) normalize() PageRequest {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	return p
}
