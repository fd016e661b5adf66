package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"linktrack/internal/model"
)

// Visibility selects the row filters applied by short-code lookups.
type Visibility int

const (
	// VisibilityPublic hides soft-deleted and inactive links.
	VisibilityPublic Visibility = iota
	// VisibilityOwner hides soft-deleted links only.
	VisibilityOwner
)

const linkColumns = `id, short_code, original_url, title, is_active, is_password_protected,
	click_count, expires_at, max_clicks, deleted_at, owner_profile_id, domain_id,
	last_clicked_at, created_at, updated_at`

type LinkRepo struct {
	DB *sqlx.DB
}

func NewLinkRepo(db *sqlx.DB) *LinkRepo {
	return &LinkRepo{DB: db}
}

func (r *LinkRepo) FindVisibleByShortCode(ctx context.Context, code string, vis Visibility) (*model.Link, error) {
	q := `SELECT ` + linkColumns + ` FROM links WHERE short_code = $1 AND deleted_at IS NULL`
	if vis == VisibilityPublic {
		q += ` AND is_active`
	}
	return r.getOne(ctx, q, code)
}

// FindVisibleByShortCodeAndDomain is the public lookup restricted to one custom domain.
func (r *LinkRepo) FindVisibleByShortCodeAndDomain(ctx context.Context, code string, domainID uuid.UUID) (*model.Link, error) {
	q := `SELECT ` + linkColumns + ` FROM links
		WHERE short_code = $1 AND domain_id = $2 AND deleted_at IS NULL AND is_active`
	return r.getOne(ctx, q, code, domainID)
}

func (r *LinkRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Link, error) {
	q := `SELECT ` + linkColumns + ` FROM links WHERE id = $1 AND deleted_at IS NULL`
	return r.getOne(ctx, q, id)
}

func (r *LinkRepo) ShortCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM links WHERE short_code = $1 AND deleted_at IS NULL)`
	if err := r.DB.GetContext(ctx, &exists, q, code); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *LinkRepo) ListByOwner(ctx context.Context, owner uuid.UUID, limit, offset int) ([]model.Link, error) {
	q := `SELECT ` + linkColumns + ` FROM links
		WHERE owner_profile_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	res := make([]model.Link, 0, limit)
	if err := r.DB.SelectContext(ctx, &res, q, owner, limit, offset); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *LinkRepo) CountByOwner(ctx context.Context, owner uuid.UUID) (int64, error) {
	var n int64
	q := `SELECT COUNT(*) FROM links WHERE owner_profile_id = $1 AND deleted_at IS NULL`
	if err := r.DB.GetContext(ctx, &n, q, owner); err != nil {
		return 0, err
	}
	return n, nil
}

// Create inserts link. The partial unique index on short_code is the final
// authority on uniqueness; a violation becomes ErrShortCodeExists.
func (r *LinkRepo) Create(ctx context.Context, link *model.Link) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	q := `INSERT INTO links (id, short_code, original_url, title, is_active, is_password_protected,
			expires_at, max_clicks, owner_profile_id, domain_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING click_count, created_at, updated_at`
	row := r.DB.QueryRowxContext(ctx, q,
		link.ID, link.ShortCode, link.OriginalURL, link.Title, link.IsActive, link.IsPasswordProtected,
		link.ExpiresAt, link.MaxClicks, link.OwnerProfileID, link.DomainID)
	if err := row.Scan(&link.ClickCount, &link.CreatedAt, &link.UpdatedAt); err != nil {
		return translate(err)
	}
	return nil
}

// Update writes the mutable owner fields of link. Click count is never
// written here; see IncrementClicks.
func (r *LinkRepo) Update(ctx context.Context, link *model.Link) error {
	return updateLink(ctx, r.DB, link)
}

// UpdateWithPassword writes link and replaces its active credential with
// hash in one transaction, so neither change is kept without the other.
func (r *LinkRepo) UpdateWithPassword(ctx context.Context, link *model.Link, hash string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := updateLink(ctx, tx, link); err != nil {
		return err
	}
	if err := replacePassword(ctx, tx, link.ID, hash); err != nil {
		return fmt.Errorf("replace link password: %w", err)
	}
	return tx.Commit()
}

func updateLink(ctx context.Context, q sqlx.QueryerContext, link *model.Link) error {
	stmt := `UPDATE links SET original_url = $2, short_code = $3, title = $4, is_active = $5,
			is_password_protected = $6, expires_at = $7, max_clicks = $8, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING click_count, updated_at`
	row := q.QueryRowxContext(ctx, stmt,
		link.ID, link.OriginalURL, link.ShortCode, link.Title, link.IsActive,
		link.IsPasswordProtected, link.ExpiresAt, link.MaxClicks)
	if err := row.Scan(&link.ClickCount, &link.UpdatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (r *LinkRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := `UPDATE links SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// HardDelete removes the link's credentials and then the link in one transaction.
func (r *LinkRepo) HardDelete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM link_passwords WHERE link_id = $1`, id); err != nil {
		return fmt.Errorf("delete link passwords: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

// IncrementClicks bumps click_count in the database, not from a value read
// earlier, so concurrent clicks are not lost.
func (r *LinkRepo) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	q := `
		UPDATE links
		SET click_count = click_count + 1, last_clicked_at = now()
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Dump returns every row including soft-deleted ones.
func (r *LinkRepo) Dump(ctx context.Context) ([]model.Link, error) {
	var res []model.Link
	q := `SELECT ` + linkColumns + ` FROM links ORDER BY created_at`
	if err := r.DB.SelectContext(ctx, &res, q); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *LinkRepo) getOne(ctx context.Context, q string, args ...any) (*model.Link, error) {
	var l model.Link
	if err := r.DB.GetContext(ctx, &l, q, args...); err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	switch pgCode(err) {
	case uniqueViolation:
		return fmt.Errorf("%w: %v", ErrShortCodeExists, err)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
