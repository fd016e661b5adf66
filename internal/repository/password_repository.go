package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"linktrack/internal/model"
)

type PasswordRepo struct {
	DB *sqlx.DB
}

func NewPasswordRepo(db *sqlx.DB) *PasswordRepo {
	return &PasswordRepo{DB: db}
}

// FindActive returns the authoritative credential for linkID.
func (r *PasswordRepo) FindActive(ctx context.Context, linkID uuid.UUID) (*model.LinkPassword, error) {
	q := `SELECT id, link_id, password_hash, is_active, created_at FROM link_passwords
		WHERE link_id = $1 AND is_active
		ORDER BY created_at DESC LIMIT 1`
	var p model.LinkPassword
	if err := r.DB.GetContext(ctx, &p, q, linkID); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PasswordRepo) Create(ctx context.Context, linkID uuid.UUID, hash string) (*model.LinkPassword, error) {
	return insertPassword(ctx, r.DB, linkID, hash)
}

func (r *PasswordRepo) DeactivateAll(ctx context.Context, linkID uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE link_passwords SET is_active = FALSE WHERE link_id = $1 AND is_active`, linkID)
	return err
}

// replacePassword deactivates the current credential and inserts hash. q is
// expected to be a transaction.
func replacePassword(ctx context.Context, q sqlx.ExtContext, linkID uuid.UUID, hash string) error {
	if _, err := q.ExecContext(ctx, `UPDATE link_passwords SET is_active = FALSE WHERE link_id = $1 AND is_active`, linkID); err != nil {
		return err
	}
	_, err := insertPassword(ctx, q, linkID, hash)
	return err
}

func insertPassword(ctx context.Context, q sqlx.QueryerContext, linkID uuid.UUID, hash string) (*model.LinkPassword, error) {
	p := model.LinkPassword{
		ID:           uuid.New(),
		LinkID:       linkID,
		PasswordHash: hash,
		IsActive:     true,
	}
	row := q.QueryRowxContext(ctx,
		`INSERT INTO link_passwords (id, link_id, password_hash, is_active) VALUES ($1, $2, $3, TRUE) RETURNING created_at`,
		p.ID, p.LinkID, p.PasswordHash)
	if err := row.Scan(&p.CreatedAt); err != nil {
		if pgCode(err) == uniqueViolation {
			return nil, fmt.Errorf("%w: link %s", ErrCredentialConflict, linkID)
		}
		return nil, translate(err)
	}
	return &p, nil
}
