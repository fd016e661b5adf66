package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"linktrack/internal/model"
	"linktrack/internal/password"
	"linktrack/internal/repository"
)

var (
	// ErrNotFound is returned for links and domains that are absent or
	// belong to another owner.
	ErrNotFound        = repository.ErrNotFound
	ErrShortCodeExists = repository.ErrShortCodeExists
	ErrHostnameExists  = repository.ErrHostnameExists

	// ErrCredentialConflict means a concurrent password change won.
	ErrCredentialConflict = repository.ErrCredentialConflict

	// ErrStoreUnavailable wraps failures to reach the link store. It is
	// never reported as a missing link.
	ErrStoreUnavailable = errors.New("link store unavailable")
	// ErrIntegrityFault means a protected link has no usable credential.
	ErrIntegrityFault = errors.New("protected link has no active credential")
)

// ValidationError reports bad owner input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

type ClickStore interface {
	IncrementClicks(ctx context.Context, id uuid.UUID) error
}

type LinkStore interface {
	ClickStore
	FindVisibleByShortCode(ctx context.Context, code string, vis repository.Visibility) (*model.Link, error)
	FindVisibleByShortCodeAndDomain(ctx context.Context, code string, domainID uuid.UUID) (*model.Link, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Link, error)
	ShortCodeExists(ctx context.Context, code string) (bool, error)
	ListByOwner(ctx context.Context, owner uuid.UUID, limit, offset int) ([]model.Link, error)
	CountByOwner(ctx context.Context, owner uuid.UUID) (int64, error)
	Create(ctx context.Context, link *model.Link) error
	Update(ctx context.Context, link *model.Link) error
	// UpdateWithPassword writes link and makes hash its only active
	// credential in one transaction.
	UpdateWithPassword(ctx context.Context, link *model.Link, hash string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type PasswordStore interface {
	FindActive(ctx context.Context, linkID uuid.UUID) (*model.LinkPassword, error)
	Create(ctx context.Context, linkID uuid.UUID, hash string) (*model.LinkPassword, error)
	DeactivateAll(ctx context.Context, linkID uuid.UUID) error
}

type DomainStore interface {
	FindByHostname(ctx context.Context, hostname string) (*model.Domain, error)
	Create(ctx context.Context, d *model.Domain) error
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]model.Domain, error)
}

type DomainCache interface {
	GetDomain(ctx context.Context, hostname string) (*model.Domain, error)
	SetDomain(ctx context.Context, hostname string, d *model.Domain) error
	DeleteDomain(ctx context.Context, hostname string) error
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}

// HostLookup maps an inbound Host header to a verified custom domain.
type HostLookup interface {
	LookupHost(ctx context.Context, host string) (*model.Domain, error)
}

var (
	_ LinkStore      = (*repository.LinkRepo)(nil)
	_ PasswordStore  = (*repository.PasswordRepo)(nil)
	_ DomainStore    = (*repository.DomainRepo)(nil)
	_ PasswordHasher = (*password.Hasher)(nil)
)
