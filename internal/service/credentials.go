package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"linktrack/internal/repository"
)

// Credentials stores and checks link passwords. Plaintext never reaches
// the store.
type Credentials struct {
	store  PasswordStore
	hasher PasswordHasher
}

func NewCredentials(store PasswordStore, hasher PasswordHasher) *Credentials {
	return &Credentials{store: store, hasher: hasher}
}

// Set stores the first credential of a newly protected link.
func (c *Credentials) Set(ctx context.Context, linkID uuid.UUID, plaintext string) error {
	hash, err := c.hash(plaintext)
	if err != nil {
		return err
	}
	if _, err := c.store.Create(ctx, linkID, hash); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	return nil
}

// hash is used directly by callers that write the credential together with
// the link.
func (c *Credentials) hash(plaintext string) (string, error) {
	hash, err := c.hasher.Hash(plaintext)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (c *Credentials) Clear(ctx context.Context, linkID uuid.UUID) error {
	return c.store.DeactivateAll(ctx, linkID)
}

// Verify checks plaintext against the active credential. A missing or
// unreadable credential is ErrIntegrityFault, never a plain mismatch.
func (c *Credentials) Verify(ctx context.Context, linkID uuid.UUID, plaintext string) (bool, error) {
	cred, err := c.store.FindActive(ctx, linkID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("%w: link %s", ErrIntegrityFault, linkID)
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	ok, err := c.hasher.Verify(plaintext, cred.PasswordHash)
	if err != nil {
		return false, fmt.Errorf("%w: link %s: %v", ErrIntegrityFault, linkID, err)
	}
	return ok, nil
}
