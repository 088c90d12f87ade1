package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/hradmin/internal/common"
)

// ErrNoSession is returned by Store.Load when nothing has been saved.
var ErrNoSession = errors.New("no session")

// refreshErrorCode is the persisted marker of a failed refresh.
const refreshErrorCode = "RefreshAccessTokenError"

// Store persists the current session snapshot.
type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context) error
}

// Record is the serialized form of a Session. Expiry is kept in epoch
// milliseconds; Error is empty or "RefreshAccessTokenError".
type Record struct {
	Email              string `json:"email"`
	AccessToken        string `json:"accessToken"`
	RefreshToken       string `json:"refreshToken"`
	AccessTokenExpires int64  `json:"accessTokenExpires"`
	Error              string `json:"error,omitempty"`
}

// ToRecord converts s for persistence. The refresh failure cause is reduced
// to its code.
func (s Session) ToRecord() Record {
	r := Record{
		Email:              s.Email,
		AccessToken:        s.AccessToken,
		RefreshToken:       s.RefreshToken,
		AccessTokenExpires: s.ExpiresAtMillis(),
	}
	if s.Err != nil {
		r.Error = refreshErrorCode
	}
	return r
}

// FromRecord restores a Session saved with ToRecord.
func FromRecord(r Record) Session {
	s := Session{
		Email:              r.Email,
		AccessToken:        r.AccessToken,
		RefreshToken:       r.RefreshToken,
		AccessTokenExpires: time.UnixMilli(r.AccessTokenExpires),
	}
	if r.Error != "" {
		s.Err = common.ErrRefreshAccessToken
	}
	return s
}

// MemoryStore keeps the session in process memory.
type MemoryStore struct {
	mu  sync.Mutex
	rec *Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return Session{}, ErrNoSession
	}
	return FromRecord(*m.rec), nil
}

func (m *MemoryStore) Save(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := s.ToRecord()
	m.rec = &r
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = nil
	return nil
}
