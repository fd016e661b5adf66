package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"linktrack/internal/model"
)

const domainColumns = `id, owner_profile_id, hostname, status, verification_token, created_at, updated_at`

type DomainRepo struct {
	DB *sqlx.DB
}

func NewDomainRepo(db *sqlx.DB) *DomainRepo {
	return &DomainRepo{DB: db}
}

func (r *DomainRepo) FindByHostname(ctx context.Context, hostname string) (*model.Domain, error) {
	var d model.Domain
	q := `SELECT ` + domainColumns + ` FROM domains WHERE hostname = $1`
	if err := r.DB.GetContext(ctx, &d, q, hostname); err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *DomainRepo) Create(ctx context.Context, d *model.Domain) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	q := `INSERT INTO domains (id, owner_profile_id, hostname, status, verification_token)
		VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at`
	row := r.DB.QueryRowxContext(ctx, q, d.ID, d.OwnerProfileID, d.Hostname, d.Status, d.VerificationToken)
	if err := row.Scan(&d.CreatedAt, &d.UpdatedAt); err != nil {
		if pgCode(err) == uniqueViolation {
			return fmt.Errorf("%w: %s", ErrHostnameExists, d.Hostname)
		}
		return err
	}
	return nil
}

func (r *DomainRepo) ListByOwner(ctx context.Context, owner uuid.UUID) ([]model.Domain, error) {
	res := []model.Domain{}
	q := `SELECT ` + domainColumns + ` FROM domains WHERE owner_profile_id = $1 ORDER BY hostname`
	if err := r.DB.SelectContext(ctx, &res, q, owner); err != nil {
		return nil, err
	}
	return res, nil
}
