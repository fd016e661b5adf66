package repository

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"linktrack/internal/model"
)

// openTestDB connects to TEST_DATABASE_DSN and applies migrations. Tests
// are skipped when it is unset.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := Connect(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newLink(code string) *model.Link {
	return &model.Link{
		ShortCode:      code,
		OriginalURL:    "https://example.com/" + code,
		IsActive:       true,
		OwnerProfileID: uuid.New(),
	}
}

func uniqueCode(prefix string) string {
	return prefix + "_" + uuid.NewString()[:8]
}

func TestLinkRepoVisibility(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkRepo(openTestDB(t))

	active := newLink(uniqueCode("vis"))
	if err := repo.Create(ctx, active); err != nil {
		t.Fatal(err)
	}
	inactive := newLink(uniqueCode("vis"))
	inactive.IsActive = false
	if err := repo.Create(ctx, inactive); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.FindVisibleByShortCode(ctx, active.ShortCode, VisibilityPublic); err != nil {
		t.Fatalf("active public lookup: %v", err)
	}
	if _, err := repo.FindVisibleByShortCode(ctx, inactive.ShortCode, VisibilityPublic); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive public lookup err = %v", err)
	}
	if _, err := repo.FindVisibleByShortCode(ctx, inactive.ShortCode, VisibilityOwner); err != nil {
		t.Fatalf("inactive owner lookup: %v", err)
	}

	if err := repo.SoftDelete(ctx, active.ID); err != nil {
		t.Fatal(err)
	}
	for _, vis := range []Visibility{VisibilityPublic, VisibilityOwner} {
		if _, err := repo.FindVisibleByShortCode(ctx, active.ShortCode, vis); !errors.Is(err, ErrNotFound) {
			t.Fatalf("deleted lookup (%d) err = %v", vis, err)
		}
	}
	if exists, _ := repo.ShortCodeExists(ctx, active.ShortCode); exists {
		t.Fatal("deleted code still reported as taken")
	}
}

func TestLinkRepoUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkRepo(openTestDB(t))
	code := uniqueCode("dup")

	first := newLink(code)
	if err := repo.Create(ctx, first); err != nil {
		t.Fatal(err)
	}
	err := repo.Create(ctx, newLink(code))
	if !errors.Is(err, ErrShortCodeExists) {
		t.Fatalf("duplicate err = %v, want ErrShortCodeExists", err)
	}

	got, err := repo.GetByID(ctx, first.ID)
	if err != nil || got.OriginalURL != first.OriginalURL {
		t.Fatalf("existing row = %+v, %v", got, err)
	}

	if err := repo.SoftDelete(ctx, first.ID); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, newLink(code)); err != nil {
		t.Fatalf("reuse after soft delete: %v", err)
	}
}

func TestLinkRepoConcurrentClicks(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkRepo(openTestDB(t))
	link := newLink(uniqueCode("clk"))
	if err := repo.Create(ctx, link); err != nil {
		t.Fatal(err)
	}

	const n = 20
	var wg sync.WaitGroup
	for _i := 0; _i < n; _i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.IncrementClicks(ctx, link.ID); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, link.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ClickCount != n || got.LastClickedAt == nil {
		t.Fatalf("click_count = %d, last_clicked_at = %v", got.ClickCount, got.LastClickedAt)
	}
	if err := repo.IncrementClicks(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("increment of unknown link err = %v", err)
	}
}

func TestPasswordRepoSingleActive(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	links := NewLinkRepo(db)
	passwords := NewPasswordRepo(db)

	link := newLink(uniqueCode("pw"))
	link.IsPasswordProtected = true
	if err := links.Create(ctx, link); err != nil {
		t.Fatal(err)
	}
	if _, err := passwords.Create(ctx, link.ID, "hash-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := passwords.Create(ctx, link.ID, "hash-x"); !errors.Is(err, ErrCredentialConflict) || errors.Is(err, ErrShortCodeExists) {
		t.Fatalf("second active credential err = %v, want ErrCredentialConflict", err)
	}
	link.Title = "renamed"
	if err := links.UpdateWithPassword(ctx, link, "hash-2"); err != nil {
		t.Fatal(err)
	}
	active, err := passwords.FindActive(ctx, link.ID)
	if err != nil || active.PasswordHash != "hash-2" {
		t.Fatalf("active = %+v, %v", active, err)
	}

	// a failed link write leaves the credential untouched
	other := newLink(uniqueCode("pw"))
	if err := links.Create(ctx, other); err != nil {
		t.Fatal(err)
	}
	clash := *link
	clash.ShortCode = other.ShortCode
	if err := links.UpdateWithPassword(ctx, &clash, "hash-3"); !errors.Is(err, ErrShortCodeExists) {
		t.Fatalf("update onto taken code err = %v", err)
	}
	active, err = passwords.FindActive(ctx, link.ID)
	if err != nil || active.PasswordHash != "hash-2" {
		t.Fatalf("active after rolled back update = %+v, %v", active, err)
	}

	if err := passwords.DeactivateAll(ctx, link.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := passwords.FindActive(ctx, link.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after deactivate err = %v", err)
	}

	if err := links.HardDelete(ctx, link.ID); err != nil {
		t.Fatal(err)
	}
	var left int
	if err := db.GetContext(ctx, &left, `SELECT COUNT(*) FROM link_passwords WHERE link_id = $1`, link.ID); err != nil {
		t.Fatal(err)
	}
	if left != 0 {
		t.Fatalf("%d credentials left after hard delete", left)
	}
}

func TestDomainRepo(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	domains := NewDomainRepo(db)
	links := NewLinkRepo(db)

	d := &model.Domain{
		OwnerProfileID: uuid.New(),
		Hostname:       uniqueCode("go") + ".acme.test",
		Status:         model.DomainVerified,
	}
	if err := domains.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	dup := *d
	dup.ID = uuid.Nil
	if err := domains.Create(ctx, &dup); !errors.Is(err, ErrHostnameExists) {
		t.Fatalf("duplicate hostname err = %v", err)
	}

	link := newLink(uniqueCode("dom"))
	link.DomainID = &d.ID
	if err := links.Create(ctx, link); err != nil {
		t.Fatal(err)
	}
	if _, err := links.FindVisibleByShortCodeAndDomain(ctx, link.ShortCode, d.ID); err != nil {
		t.Fatalf("scoped lookup: %v", err)
	}
	if _, err := links.FindVisibleByShortCodeAndDomain(ctx, link.ShortCode, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("scoped lookup on other domain err = %v", err)
	}

	bad := newLink(uniqueCode("dom"))
	bad.DomainID = ptrUUID(uuid.New())
	if err := links.Create(ctx, bad); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("unknown domain err = %v", err)
	}
}

func ptrUUID(id uuid.UUID) *uuid.UUID { return &id }
