package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"linktrack/internal/model"
	"linktrack/internal/password"
	"linktrack/internal/repository"
	"linktrack/internal/util"
)

const (
	GeneratedCodeLength = 7
	generateAttempts    = 5

	DefaultPageSize = 20
	MaxPageSize     = 100
)

// reservedCodes are first path segments the router serves itself.
var reservedCodes = []string{"api", "healthz"}

// LinkPage is one page of an owner's links.
type LinkPage struct {
	Links []model.Link `json:"links"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

// LinkService manages links on behalf of their owners. A link that belongs
// to someone else is reported as ErrNotFound.
type LinkService struct {
	links    LinkStore
	domains  DomainStore
	creds    *Credentials
	reserved map[string]bool
	now      func() time.Time
}

func NewLinkService(links LinkStore, domains DomainStore, creds *Credentials) *LinkService {
	s := &LinkService{links: links, domains: domains, creds: creds, reserved: make(map[string]bool), now: time.Now}
	s.Reserve(reservedCodes...)
	return s
}

// Reserve keeps paths such as the not-found and expired pages from being
// taken as short codes. Leading and trailing slashes are ignored.
func (s *LinkService) Reserve(paths ...string) {
	for _, p := range paths {
		if code := strings.Trim(p, "/"); util.ValidShortCode(code) {
			s.reserved[code] = true
		}
	}
}

func (s *LinkService) Create(ctx context.Context, owner uuid.UUID, in model.LinkInput) (*model.Link, error) {
	in.OriginalURL = strings.TrimSpace(in.OriginalURL)
	if !util.ValidateURL(in.OriginalURL) {
		return nil, invalid("original_url", "must be an absolute http or https URL")
	}
	if in.Password != "" {
		if st := password.ValidateStrength(in.Password); !st.Valid {
			return nil, invalid("password", st.Reason)
		}
	}
	if err := s.checkLimits(in.ExpiresAt, in.MaxClicks); err != nil {
		return nil, err
	}
	if in.DomainID != nil {
		if err := s.checkDomain(ctx, owner, *in.DomainID); err != nil {
			return nil, err
		}
	}

	code, err := s.pickShortCode(ctx, strings.TrimSpace(in.ShortCode))
	if err != nil {
		return nil, err
	}

	link := &model.Link{
		ShortCode:           code,
		OriginalURL:         in.OriginalURL,
		Title:               strings.TrimSpace(in.Title),
		IsActive:            true,
		IsPasswordProtected: in.Password != "",
		ExpiresAt:           in.ExpiresAt,
		MaxClicks:           in.MaxClicks,
		OwnerProfileID:      owner,
		DomainID:            in.DomainID,
	}
	if err := s.links.Create(ctx, link); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, invalid("domain_id", "unknown domain")
		}
		return nil, fmt.Errorf("create link: %w", err)
	}

	if link.IsPasswordProtected {
		if err := s.creds.Set(ctx, link.ID, in.Password); err != nil {
			// a protected link without a credential can never be opened
			if derr := s.links.HardDelete(ctx, link.ID); derr != nil {
				slog.Error("compensating delete failed", "link_id", link.ID, "short_code", code, "error", derr)
			}
			return nil, fmt.Errorf("create link credential: %w", err)
		}
	}

	slog.Info("link created", "link_id", link.ID, "short_code", code, "protected", link.IsPasswordProtected)
	return link, nil
}

func (s *LinkService) Get(ctx context.Context, owner, id uuid.UUID) (*model.Link, error) {
	link, err := s.links.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link.OwnerProfileID != owner {
		return nil, ErrNotFound
	}
	return link, nil
}

func (s *LinkService) List(ctx context.Context, owner uuid.UUID, page, limit int) (*LinkPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	links, err := s.links.ListByOwner(ctx, owner, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	total, err := s.links.CountByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("count links: %w", err)
	}
	return &LinkPage{Links: links, Total: total, Page: page, Limit: limit}, nil
}

// Update applies patch to the owner's link. A new password is written in the
// same transaction as the link; removing protection unmarks the link before
// its credentials are deactivated.
func (s *LinkService) Update(ctx context.Context, owner, id uuid.UUID, patch model.LinkPatch) (*model.Link, error) {
	link, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if patch.OriginalURL != nil {
		u := strings.TrimSpace(*patch.OriginalURL)
		if !util.ValidateURL(u) {
			return nil, invalid("original_url", "must be an absolute http or https URL")
		}
		link.OriginalURL = u
	}
	if patch.ShortCode != nil && *patch.ShortCode != link.ShortCode {
		code := strings.TrimSpace(*patch.ShortCode)
		if !util.ValidShortCode(code) {
			return nil, invalid("short_code", "must be 1-128 characters of letters, digits, '-' or '_'")
		}
		if s.reserved[code] {
			return nil, invalid("short_code", "is reserved")
		}
		if err := s.ensureFree(ctx, code); err != nil {
			return nil, err
		}
		link.ShortCode = code
	}
	if patch.Title != nil {
		link.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.IsActive != nil {
		link.IsActive = *patch.IsActive
	}

	switch {
	case patch.ClearExpiry:
		link.ExpiresAt = nil
	case patch.ExpiresAt != nil:
		link.ExpiresAt = patch.ExpiresAt
	}
	switch {
	case patch.ClearMaxClicks:
		link.MaxClicks = nil
	case patch.MaxClicks != nil:
		link.MaxClicks = patch.MaxClicks
	}
	if err := s.checkLimits(patch.ExpiresAt, patch.MaxClicks); err != nil {
		return nil, err
	}

	if patch.Password != nil && patch.RemovePassword {
		return nil, invalid("password", "cannot set and remove the password at once")
	}
	var hash string
	if patch.Password != nil {
		if st := password.ValidateStrength(*patch.Password); !st.Valid {
			return nil, invalid("password", st.Reason)
		}
		if hash, err = s.creds.hash(*patch.Password); err != nil {
			return nil, err
		}
		link.IsPasswordProtected = true
	}
	unprotect := patch.RemovePassword && link.IsPasswordProtected
	if unprotect {
		link.IsPasswordProtected = false
	}

	if hash != "" {
		err = s.links.UpdateWithPassword(ctx, link, hash)
	} else {
		err = s.links.Update(ctx, link)
	}
	if err != nil {
		return nil, fmt.Errorf("update link: %w", err)
	}
	if unprotect {
		if err := s.creds.Clear(ctx, link.ID); err != nil {
			slog.Warn("stale credentials left active", "link_id", link.ID, "error", err)
		}
	}
	return link, nil
}

// Delete soft-deletes the owner's link. Its short code becomes free again.
func (s *LinkService) Delete(ctx context.Context, owner, id uuid.UUID) error {
	if _, err := s.Get(ctx, owner, id); err != nil {
		return err
	}
	if err := s.links.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	return nil
}

// HardDelete removes a link and its credentials regardless of owner.
func (s *LinkService) HardDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.links.HardDelete(ctx, id); err != nil {
		return fmt.Errorf("hard delete link %s: %w", id, err)
	}
	slog.Info("link hard deleted", "link_id", id)
	return nil
}

func (s *LinkService) pickShortCode(ctx context.Context, requested string) (string, error) {
	if requested != "" {
		if !util.ValidShortCode(requested) {
			return "", invalid("short_code", "must be 1-128 characters of letters, digits, '-' or '_'")
		}
		if s.reserved[requested] {
			return "", invalid("short_code", "is reserved")
		}
		if err := s.ensureFree(ctx, requested); err != nil {
			return "", err
		}
		return requested, nil
	}

	for _i := 0; _i < generateAttempts; _i++ {
		code, err := util.RandomShortCode(GeneratedCodeLength)
		if err != nil {
			return "", err
		}
		if s.reserved[code] {
			continue
		}
		err = s.ensureFree(ctx, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, ErrShortCodeExists) {
			return "", err
		}
	}
	return "", fmt.Errorf("no free short code after %d attempts", generateAttempts)
}

// ensureFree is the early uniqueness check. The unique index still decides
// when two creates race.
func (s *LinkService) ensureFree(ctx context.Context, code string) error {
	exists, err := s.links.ShortCodeExists(ctx, code)
	if err != nil {
		return fmt.Errorf("check short code: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrShortCodeExists, code)
	}
	return nil
}

func (s *LinkService) checkLimits(expiresAt *time.Time, maxClicks *int64) error {
	if expiresAt != nil && !expiresAt.After(s.now()) {
		return invalid("expires_at", "must be in the future")
	}
	if maxClicks != nil && *maxClicks < 1 {
		return invalid("max_clicks", "must be greater than zero")
	}
	return nil
}

func (s *LinkService) checkDomain(ctx context.Context, owner, domainID uuid.UUID) error {
	owned, err := s.domains.ListByOwner(ctx, owner)
	if err != nil {
		return fmt.Errorf("list domains: %w", err)
	}
	if !slices.ContainsFunc(owned, func(d model.Domain) bool { return d.ID == domainID }) {
		return invalid("domain_id", "unknown domain")
	}
	return nil
}
