package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SessionRepo records issued login tokens so they can be revoked.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Create(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, user_id, issued_at, expires_at) VALUES (?, ?, ?, ?)`,
		s.ID, s.UserID, s.IssuedAt, s.ExpiresAt)
	return err
}

// Get returns nil, nil when the session is unknown.
func (r *SessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, user_id, issued_at, expires_at, revoked_at FROM sessions WHERE id = ?`, id)
	var s Session
	var revoked sql.NullTime
	if err := row.Scan(&s.ID, &s.UserID, &s.IssuedAt, &s.ExpiresAt, &revoked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if revoked.Valid {
		t := revoked.Time
		s.RevokedAt = &t
	}
	return &s, nil
}

// Revoke marks the session revoked. Revoking twice keeps the first time.
func (r *SessionRepo) Revoke(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE sessions SET revoked_at = COALESCE(revoked_at, ?) WHERE id = ?`, at, id)
	return err
}

// PurgeExpired deletes sessions that expired before now.
func (r *SessionRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
