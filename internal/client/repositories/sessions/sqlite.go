// Package sessions persists the admin session in the local SQLite database.
// The record is sealed with AES-GCM under a key derived from the deployment
// secret and a per-database salt kept in the metadata table.
package sessions

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/hradmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/hradmin/internal/common"
	"github.com/dmitrijs2005/hradmin/internal/cryptox"
	"github.com/dmitrijs2005/hradmin/internal/dbx"
	"github.com/dmitrijs2005/hradmin/internal/session"
)

const saltSize = 16

// ErrCorrupted is returned when a stored session exists but its salt does not.
var ErrCorrupted = errors.New("session record corrupted")

type SQLiteStore struct {
	db     *sql.DB
	secret []byte

	mu      sync.Mutex
	keySalt []byte
	key     []byte
}

var _ session.Store = (*SQLiteStore)(nil)

// NewSQLiteStore returns a store sealing records under secret.
func NewSQLiteStore(db *sql.DB, secret string) *SQLiteStore {
	return &SQLiteStore{db: db, secret: []byte(secret)}
}

// sealingKey derives the key for salt, reusing the last derivation.
func (s *SQLiteStore) sealingKey(salt []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.key == nil || !bytes.Equal(s.keySalt, salt) {
		s.key = cryptox.DeriveSealingKey(s.secret, salt)
		s.keySalt = append([]byte(nil), salt...)
	}
	return s.key
}

func (s *SQLiteStore) Save(ctx context.Context, sess session.Session) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		meta := metadata.NewSQLiteRepository(tx)

		salt, err := meta.Get(ctx, metadata.KeySessionSalt)
		if err != nil {
			return err
		}
		if salt == nil {
			salt = common.GenerateRandByteArray(saltSize)
			if err := meta.Set(ctx, metadata.KeySessionSalt, salt); err != nil {
				return err
			}
		}

		ct, nonce, err := cryptox.Seal(sess.ToRecord(), s.sealingKey(salt))
		if err != nil {
			return fmt.Errorf("seal session: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO sessions (id, email, ciphertext, nonce, updated_at)
			VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(id) DO UPDATE SET
				email = excluded.email,
				ciphertext = excluded.ciphertext,
				nonce = excluded.nonce,
				updated_at = excluded.updated_at`,
			sess.Email, ct, nonce)
		if err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		return nil
	})
}

func (s *SQLiteStore) Load(ctx context.Context) (session.Session, error) {
	var ct, nonce []byte
	err := s.db.QueryRowContext(ctx, `SELECT ciphertext, nonce FROM sessions WHERE id = 1`).Scan(&ct, &nonce)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Session{}, session.ErrNoSession
	}
	if err != nil {
		return session.Session{}, fmt.Errorf("load session: %w", err)
	}

	salt, err := metadata.NewSQLiteRepository(s.db).Get(ctx, metadata.KeySessionSalt)
	if err != nil {
		return session.Session{}, err
	}
	if salt == nil {
		return session.Session{}, ErrCorrupted
	}

	var rec session.Record
	if err := cryptox.Open(ct, nonce, s.sealingKey(salt), &rec); err != nil {
		return session.Session{}, fmt.Errorf("open session: %w", err)
	}
	return session.FromRecord(rec), nil
}

// Delete removes the stored session. The salt is kept.
func (s *SQLiteStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = 1`); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
