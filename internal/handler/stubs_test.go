package handler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"linktrack/internal/model"
	"linktrack/internal/ratelimit"
	"linktrack/internal/service"
)

const testSecret = "test-secret"

type resolveCall struct {
	lookup   service.Lookup
	password string
}

// stubResolver answers from a fixed table keyed by short code.
type stubResolver struct {
	mu      sync.Mutex
	results map[string]service.Result
	err     error
	calls   []resolveCall
}

func (s *stubResolver) Resolve(_ context.Context, l service.Lookup) (service.Result, error) {
	return s.answer(l, "")
}

func (s *stubResolver) ResolveWithPassword(_ context.Context, l service.Lookup, pw string) (service.Result, error) {
	return s.answer(l, pw)
}

func (s *stubResolver) answer(l service.Lookup, pw string) (service.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, resolveCall{lookup: l, password: pw})
	if s.err != nil {
		return service.Result{}, s.err
	}
	res, ok := s.results[l.ShortCode]
	if !ok {
		return service.Result{Outcome: service.OutcomeNotFound, ShortCode: l.ShortCode}, nil
	}
	return res, nil
}

func (s *stubResolver) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubResolver) last() resolveCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

type stubLinks struct {
	mu        sync.Mutex
	links     map[uuid.UUID]*model.Link
	updateErr error
}

func newStubLinks() *stubLinks {
	return &stubLinks{links: make(map[uuid.UUID]*model.Link)}
}

func (s *stubLinks) Create(_ context.Context, owner uuid.UUID, in model.LinkInput) (*model.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.OriginalURL == "" {
		return nil, &service.ValidationError{Field: "original_url", Message: "must be an absolute http or https URL"}
	}
	for _, l := range s.links {
		if l.ShortCode == in.ShortCode {
			return nil, service.ErrShortCodeExists
		}
	}
	code := in.ShortCode
	if code == "" {
		code = "gen1234"
	}
	l := &model.Link{
		ID:                  uuid.New(),
		ShortCode:           code,
		OriginalURL:         in.OriginalURL,
		IsActive:            true,
		IsPasswordProtected: in.Password != "",
		OwnerProfileID:      owner,
		CreatedAt:           time.Now(),
	}
	s.links[l.ID] = l
	return l, nil
}

func (s *stubLinks) Get(_ context.Context, owner, id uuid.UUID) (*model.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.links[id]
	if !ok || l.OwnerProfileID != owner {
		return nil, service.ErrNotFound
	}
	c := *l
	return &c, nil
}

func (s *stubLinks) List(_ context.Context, owner uuid.UUID, page, limit int) (*service.LinkPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := &service.LinkPage{Page: page, Limit: limit}
	for _, l := range s.links {
		if l.OwnerProfileID == owner {
			res.Links = append(res.Links, *l)
			res.Total++
		}
	}
	return res, nil
}

func (s *stubLinks) Update(ctx context.Context, owner, id uuid.UUID, patch model.LinkPatch) (*model.Link, error) {
	l, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	if patch.Title != nil {
		l.Title = *patch.Title
	}
	s.mu.Lock()
	s.links[id] = l
	s.mu.Unlock()
	return l, nil
}

func (s *stubLinks) Delete(ctx context.Context, owner, id uuid.UUID) error {
	if _, err := s.Get(ctx, owner, id); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.links, id)
	s.mu.Unlock()
	return nil
}

type stubDomains struct {
	registered []model.Domain
}

func (s *stubDomains) Register(_ context.Context, owner uuid.UUID, hostname string) (*model.Domain, error) {
	if hostname == "" {
		return nil, &service.ValidationError{Field: "hostname", Message: "must be a fully qualified host name"}
	}
	d := model.Domain{ID: uuid.New(), OwnerProfileID: owner, Hostname: hostname, Status: model.DomainUnverified}
	s.registered = append(s.registered, d)
	return &d, nil
}

func (s *stubDomains) List(_ context.Context, owner uuid.UUID) ([]model.Domain, error) {
	res := []model.Domain{}
	for _, d := range s.registered {
		if d.OwnerProfileID == owner {
			res = append(res, d)
		}
	}
	return res, nil
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func newTestHandler(resolver service.Resolver) *Handler {
	return &Handler{
		Resolver:     resolver,
		Links:        newStubLinks(),
		Domains:      &stubDomains{},
		Auth:         NewMiddleware(testSecret),
		RateLimiter:  ratelimit.NewTokenBucket(100, time.Minute),
		DB:           stubPinger{},
		BaseURL:      "https://lt.example",
		NotFoundPath: "/404",
		ExpiredPath:  "/expired",
	}
}

func generateTestToken(t *testing.T, secret, subject string) string {
	t.Helper()
	expirationTime := time.Now().Add(5 * time.Minute)
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expirationTime),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return tokenString
}

var errDown = errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
