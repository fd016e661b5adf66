package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"linktrack/internal/model"
	"linktrack/internal/repository"
	"linktrack/internal/util"
)

type Outcome int

const (
	OutcomeRedirect Outcome = iota + 1
	OutcomeNotFound
	OutcomeExpired
	OutcomePasswordRequired
	OutcomeWrongPassword
	OutcomeRateLimited
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRedirect:
		return "redirect"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeExpired:
		return "expired"
	case OutcomePasswordRequired:
		return "password_required"
	case OutcomeWrongPassword:
		return "wrong_password"
	case OutcomeRateLimited:
		return "rate_limited"
	}
	return "unknown"
}

// Lookup identifies an inbound short link request.
type Lookup struct {
	ShortCode string
	Host      string
	ClientIP  string
}

// Result is the decision for a lookup. URL is only set for OutcomeRedirect.
type Result struct {
	Outcome   Outcome
	URL       string
	ShortCode string
	LinkID    uuid.UUID
}

type Resolver interface {
	Resolve(ctx context.Context, l Lookup) (Result, error)
	ResolveWithPassword(ctx context.Context, l Lookup, plaintext string) (Result, error)
}

// Engine resolves short codes to destinations. Expected outcomes are
// returned as Results; only ErrStoreUnavailable and ErrIntegrityFault
// come back as errors.
type Engine struct {
	links   LinkStore
	creds   *Credentials
	clicks  *ClickRecorder
	domains HostLookup
	now     func() time.Time
}

// NewEngine wires the resolution dependencies. domains may be nil, in which
// case the Host header is ignored.
func NewEngine(links LinkStore, creds *Credentials, clicks *ClickRecorder, domains HostLookup) *Engine {
	return &Engine{
		links:   links,
		creds:   creds,
		clicks:  clicks,
		domains: domains,
		now:     time.Now,
	}
}

func (e *Engine) Resolve(ctx context.Context, l Lookup) (Result, error) {
	link, res, err := e.admit(ctx, l)
	if link == nil {
		return res, err
	}
	if link.IsPasswordProtected {
		return Result{Outcome: OutcomePasswordRequired, ShortCode: l.ShortCode, LinkID: link.ID}, nil
	}
	return e.redirect(ctx, link), nil
}

// ResolveWithPassword is Resolve for a submitted password. A password sent
// for an unprotected link is ignored.
func (e *Engine) ResolveWithPassword(ctx context.Context, l Lookup, plaintext string) (Result, error) {
	link, res, err := e.admit(ctx, l)
	if link == nil {
		return res, err
	}
	if !link.IsPasswordProtected {
		return e.redirect(ctx, link), nil
	}
	if plaintext == "" {
		return Result{Outcome: OutcomePasswordRequired, ShortCode: l.ShortCode, LinkID: link.ID}, nil
	}

	ok, err := e.creds.Verify(ctx, link.ID, plaintext)
	if err != nil {
		slog.Error("password verification failed",
			"short_code", l.ShortCode, "host", l.Host, "link_id", link.ID,
			"at", e.now().UTC(), "error", err)
		return Result{}, err
	}
	if !ok {
		return Result{Outcome: OutcomeWrongPassword, ShortCode: l.ShortCode, LinkID: link.ID}, nil
	}
	return e.redirect(ctx, link), nil
}

// admit runs the checks shared by both verbs: lookup, expiry and click
// ceiling. A nil link means res (or err) is final.
func (e *Engine) admit(ctx context.Context, l Lookup) (*model.Link, Result, error) {
	notFound := Result{Outcome: OutcomeNotFound, ShortCode: l.ShortCode}
	if !util.ValidShortCode(l.ShortCode) {
		return nil, notFound, nil
	}

	link, err := e.find(ctx, l)
	if err != nil {
		slog.Error("link lookup failed",
			"short_code", l.ShortCode, "host", l.Host, "at", e.now().UTC(), "error", err)
		return nil, Result{}, err
	}
	if link == nil {
		return nil, notFound, nil
	}
	if link.Expired(e.now()) {
		return nil, Result{Outcome: OutcomeExpired, ShortCode: l.ShortCode, LinkID: link.ID}, nil
	}
	return link, Result{}, nil
}

// find prefers a link bound to the request's custom domain and falls back
// to the global short-code lookup.
func (e *Engine) find(ctx context.Context, l Lookup) (*model.Link, error) {
	if e.domains != nil && l.Host != "" {
		d, err := e.domains.LookupHost(ctx, l.Host)
		if err != nil {
			slog.Warn("domain lookup failed, using global lookup", "host", l.Host, "error", err)
		} else if d != nil {
			link, err := e.links.FindVisibleByShortCodeAndDomain(ctx, l.ShortCode, d.ID)
			if err == nil {
				return link, nil
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
			}
		}
	}

	link, err := e.links.FindVisibleByShortCode(ctx, l.ShortCode, repository.VisibilityPublic)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return link, nil
}

func (e *Engine) redirect(ctx context.Context, link *model.Link) Result {
	e.clicks.RecordClick(ctx, link.ID)
	return Result{Outcome: OutcomeRedirect, URL: link.OriginalURL, ShortCode: link.ShortCode, LinkID: link.ID}
}
