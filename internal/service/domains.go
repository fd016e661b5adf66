package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"linktrack/internal/cache"
	"linktrack/internal/model"
	"linktrack/internal/repository"
	"linktrack/internal/util"
)

type DomainService struct {
	store DomainStore
	cache DomainCache
}

// NewDomainService builds the service. c may be nil to always read the store.
func NewDomainService(store DomainStore, c DomainCache) *DomainService {
	return &DomainService{store: store, cache: c}
}

// Register records hostname for owner as unverified. Verification happens
// elsewhere.
func (s *DomainService) Register(ctx context.Context, owner uuid.UUID, hostname string) (*model.Domain, error) {
	host := util.NormalizeHost(hostname)
	if !util.ValidHostname(host) {
		return nil, invalid("hostname", "must be a fully qualified host name")
	}
	token, err := util.RandomToken()
	if err != nil {
		return nil, err
	}

	d := &model.Domain{
		OwnerProfileID:    owner,
		Hostname:          host,
		Status:            model.DomainUnverified,
		VerificationToken: token,
	}
	if err := s.store.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("register domain: %w", err)
	}
	s.forget(ctx, host)
	return d, nil
}

func (s *DomainService) List(ctx context.Context, owner uuid.UUID) ([]model.Domain, error) {
	ds, err := s.store.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	return ds, nil
}

// LookupHost returns the verified domain serving host, or nil when there is
// none. Results, including misses, are cached.
func (s *DomainService) LookupHost(ctx context.Context, host string) (*model.Domain, error) {
	host = util.NormalizeHost(host)
	if host == "" {
		return nil, nil
	}

	if s.cache != nil {
		d, err := s.cache.GetDomain(ctx, host)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("domain cache read failed", "host", host, "error", err)
		}
	}

	d, err := s.store.FindByHostname(ctx, host)
	if errors.Is(err, repository.ErrNotFound) {
		d, err = nil, nil
	}
	if err != nil {
		return nil, err
	}
	if d != nil && d.Status != model.DomainVerified {
		d = nil
	}

	if s.cache != nil {
		if err := s.cache.SetDomain(ctx, host, d); err != nil {
			slog.Warn("domain cache write failed", "host", host, "error", err)
		}
	}
	return d, nil
}

func (s *DomainService) forget(ctx context.Context, host string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteDomain(ctx, host); err != nil {
		slog.Warn("domain cache invalidation failed", "host", host, "error", err)
	}
}
