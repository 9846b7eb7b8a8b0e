package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/evhub/event-booking/internal/model"
)

// TokenRepo is the session side of the identity store: it keeps the
// SHA-256 hashes of issued refresh tokens so sessions can be rotated
// and revoked. Access tokens are stateless and never touch this table.
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

const refreshColumns = "id,user_id,token_hash,expires_at,revoked_at,created_at"

// StoreRefresh records the hash of a freshly issued refresh token.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, tokenHash, exp)
	return err
}

// ValidateRefresh resolves a token hash to its owning user. Revoked and
// expired tokens answer sql.ErrNoRows just like unknown ones, so a
// caller cannot tell which way a stale token died.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
	var (
		t       model.RefreshToken
		revoked sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+refreshColumns+" FROM refresh_tokens WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &revoked, &t.CreatedAt)
	if err != nil {
		return 0, err
	}
	if revoked.Valid || time.Now().UTC().After(t.ExpiresAt) {
		return 0, sql.ErrNoRows
	}
	return t.UserID, nil
}

// RevokeByHash retires a single refresh token: logout of one session.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	return err
}

// RevokeAllForUser retires every active token the user holds, ending
// all of their sessions at once.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL",
		userID)
	return err
}
