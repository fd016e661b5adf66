package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"linktrack/internal/model"
	"linktrack/internal/password"
	"linktrack/internal/repository"
)

// fakeLinks is an in-memory LinkStore with the same visibility and
// uniqueness rules as the Postgres repository.
type fakeLinks struct {
	mu    sync.Mutex
	rows  map[uuid.UUID]*model.Link
	creds *fakePasswords
	err   error
	clock time.Time
}

func newFakeLinks(creds *fakePasswords) *fakeLinks {
	return &fakeLinks{
		rows:  make(map[uuid.UUID]*model.Link),
		creds: creds,
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeLinks) put(l model.Link) *model.Link {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	f.clock = f.clock.Add(time.Second)
	l.CreatedAt, l.UpdatedAt = f.clock, f.clock
	f.rows[l.ID] = &l
	return &l
}

func (f *fakeLinks) row(id uuid.UUID) model.Link {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.rows[id]
}

func (f *fakeLinks) FindVisibleByShortCode(_ context.Context, code string, vis repository.Visibility) (*model.Link, error) {
	return f.find(func(l *model.Link) bool {
		return l.ShortCode == code && (vis == repository.VisibilityOwner || l.IsActive)
	})
}

func (f *fakeLinks) FindVisibleByShortCodeAndDomain(_ context.Context, code string, domainID uuid.UUID) (*model.Link, error) {
	return f.find(func(l *model.Link) bool {
		return l.ShortCode == code && l.IsActive && l.DomainID != nil && *l.DomainID == domainID
	})
}

func (f *fakeLinks) find(match func(*model.Link) bool) (*model.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.rows {
		if l.DeletedAt == nil && match(l) {
			c := *l
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeLinks) GetByID(_ context.Context, id uuid.UUID) (*model.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	l, ok := f.rows[id]
	if !ok || l.DeletedAt != nil {
		return nil, repository.ErrNotFound
	}
	c := *l
	return &c, nil
}

func (f *fakeLinks) ShortCodeExists(_ context.Context, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	return f.taken(code, uuid.Nil), nil
}

func (f *fakeLinks) taken(code string, except uuid.UUID) bool {
	for _, l := range f.rows {
		if l.ID != except && l.DeletedAt == nil && l.ShortCode == code {
			return true
		}
	}
	return false
}

func (f *fakeLinks) ListByOwner(_ context.Context, owner uuid.UUID, limit, offset int) ([]model.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var res []model.Link
	for _, l := range f.rows {
		if l.OwnerProfileID == owner && l.DeletedAt == nil {
			res = append(res, *l)
		}
	}
	slices.SortFunc(res, func(a, b model.Link) int { return b.CreatedAt.Compare(a.CreatedAt) })
	if offset >= len(res) {
		return []model.Link{}, nil
	}
	return res[offset:min(offset+limit, len(res))], nil
}

func (f *fakeLinks) CountByOwner(_ context.Context, owner uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, l := range f.rows {
		if l.OwnerProfileID == owner && l.DeletedAt == nil {
			n++
		}
	}
	return n, nil
}

func (f *fakeLinks) Create(_ context.Context, link *model.Link) error {
	f.mu.Lock()
	if f.err != nil {
		f.mu.Unlock()
		return f.err
	}
	if f.taken(link.ShortCode, uuid.Nil) {
		f.mu.Unlock()
		return fmt.Errorf("%w: %s", repository.ErrShortCodeExists, link.ShortCode)
	}
	f.mu.Unlock()
	*link = *f.put(*link)
	return nil
}

func (f *fakeLinks) Update(_ context.Context, link *model.Link) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	cur, ok := f.rows[link.ID]
	if !ok || cur.DeletedAt != nil {
		return repository.ErrNotFound
	}
	if f.taken(link.ShortCode, link.ID) {
		return fmt.Errorf("%w: %s", repository.ErrShortCodeExists, link.ShortCode)
	}
	c := *link
	c.ClickCount = cur.ClickCount
	f.rows[link.ID] = &c
	link.ClickCount = cur.ClickCount
	return nil
}

// UpdateWithPassword only touches the credentials once the link write
// succeeded, like the repository transaction.
func (f *fakeLinks) UpdateWithPassword(ctx context.Context, link *model.Link, hash string) error {
	if err := f.Update(ctx, link); err != nil {
		return err
	}
	return f.creds.replace(link.ID, hash)
}

func (f *fakeLinks) SoftDelete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	l, ok := f.rows[id]
	if !ok || l.DeletedAt != nil {
		return repository.ErrNotFound
	}
	now := f.clock
	l.DeletedAt = &now
	return nil
}

func (f *fakeLinks) HardDelete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	if f.creds != nil {
		f.creds.drop(id)
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeLinks) IncrementClicks(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	l, ok := f.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	l.ClickCount++
	return nil
}

type fakePasswords struct {
	mu   sync.Mutex
	rows []model.LinkPassword
	err  error
}

func (f *fakePasswords) FindActive(_ context.Context, linkID uuid.UUID) (*model.LinkPassword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.rows {
		if p.LinkID == linkID && p.IsActive {
			c := p
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePasswords) Create(_ context.Context, linkID uuid.UUID, hash string) (*model.LinkPassword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.rows {
		if p.LinkID == linkID && p.IsActive {
			return nil, errors.New("active credential exists")
		}
	}
	return f.insert(linkID, hash), nil
}

func (f *fakePasswords) replace(linkID uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.deactivate(linkID)
	f.insert(linkID, hash)
	return nil
}

func (f *fakePasswords) DeactivateAll(_ context.Context, linkID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.deactivate(linkID)
	return nil
}

func (f *fakePasswords) insert(linkID uuid.UUID, hash string) *model.LinkPassword {
	p := model.LinkPassword{ID: uuid.New(), LinkID: linkID, PasswordHash: hash, IsActive: true, CreatedAt: time.Now()}
	f.rows = append(f.rows, p)
	return &p
}

func (f *fakePasswords) deactivate(linkID uuid.UUID) {
	for i := range f.rows {
		if f.rows[i].LinkID == linkID {
			f.rows[i].IsActive = false
		}
	}
}

func (f *fakePasswords) drop(linkID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = slices.DeleteFunc(f.rows, func(p model.LinkPassword) bool { return p.LinkID == linkID })
}

func (f *fakePasswords) active(linkID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.rows {
		if p.LinkID == linkID && p.IsActive {
			n++
		}
	}
	return n
}

type fakeDomains struct {
	mu   sync.Mutex
	rows []model.Domain
	err  error
	hits int
}

func (f *fakeDomains) FindByHostname(_ context.Context, hostname string) (*model.Domain, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hits++
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.rows {
		if d.Hostname == hostname {
			c := d
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDomains) Create(_ context.Context, d *model.Domain) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, cur := range f.rows {
		if cur.Hostname == d.Hostname {
			return fmt.Errorf("%w: %s", repository.ErrHostnameExists, d.Hostname)
		}
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	f.rows = append(f.rows, *d)
	return nil
}

func (f *fakeDomains) ListByOwner(_ context.Context, owner uuid.UUID) ([]model.Domain, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	res := []model.Domain{}
	for _, d := range f.rows {
		if d.OwnerProfileID == owner {
			res = append(res, d)
		}
	}
	return res, nil
}

// testHasher keeps bcrypt fast enough for table tests.
func testHasher() *password.Hasher {
	return password.NewHasher(4)
}

type fixture struct {
	links     *fakeLinks
	passwords *fakePasswords
	creds     *Credentials
	engine    *Engine
	svc       *LinkService
	now       time.Time
}

func newFixture() *fixture {
	pw := &fakePasswords{}
	links := newFakeLinks(pw)
	creds := NewCredentials(pw, testHasher())
	f := &fixture{
		links:     links,
		passwords: pw,
		creds:     creds,
		engine:    NewEngine(links, creds, NewClickRecorder(links), nil),
		svc:       NewLinkService(links, &fakeDomains{}, creds),
		now:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.engine.now = func() time.Time { return f.now }
	f.svc.now = f.engine.now
	return f
}

// protect stores plaintext as the link's active credential.
func (f *fixture) protect(id uuid.UUID, plaintext string) {
	if err := f.creds.Set(context.Background(), id, plaintext); err != nil {
		panic(err)
	}
}

func ptr[T any](v T) *T { return &v }
