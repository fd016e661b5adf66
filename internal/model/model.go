package model

import (
	"time"

	"github.com/google/uuid"
)

// Link is a shortened URL owned by a profile.
type Link struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	ShortCode           string     `db:"short_code" json:"short_code"`
	OriginalURL         string     `db:"original_url" json:"original_url"`
	Title               string     `db:"title" json:"title"`
	IsActive            bool       `db:"is_active" json:"is_active"`
	IsPasswordProtected bool       `db:"is_password_protected" json:"is_password_protected"`
	ClickCount          int64      `db:"click_count" json:"click_count"`
	ExpiresAt           *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	MaxClicks           *int64     `db:"max_clicks" json:"max_clicks,omitempty"`
	DeletedAt           *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	OwnerProfileID      uuid.UUID  `db:"owner_profile_id" json:"owner_profile_id"`
	DomainID            *uuid.UUID `db:"domain_id" json:"domain_id,omitempty"`
	LastClickedAt       *time.Time `db:"last_clicked_at" json:"last_clicked_at,omitempty"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}

// Expired reports whether the link is past its expiry time or click ceiling at now.
func (l *Link) Expired(now time.Time) bool {
	if l.ExpiresAt != nil && !l.ExpiresAt.After(now) {
		return true
	}
	if l.MaxClicks != nil && l.ClickCount >= *l.MaxClicks {
		return true
	}
	return false
}

// LinkPassword is the stored credential of a protected link. Only the row
// with IsActive set is authoritative.
type LinkPassword struct {
	ID           uuid.UUID `db:"id" json:"id"`
	LinkID       uuid.UUID `db:"link_id" json:"link_id"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type DomainStatus string

const (
	DomainUnverified DomainStatus = "unverified"
	DomainPending    DomainStatus = "pending"
	DomainVerified   DomainStatus = "verified"
	DomainFailed     DomainStatus = "failed"
)

// Domain is a custom hostname registered by an owner.
type Domain struct {
	ID                uuid.UUID    `db:"id" json:"id"`
	OwnerProfileID    uuid.UUID    `db:"owner_profile_id" json:"owner_profile_id"`
	Hostname          string       `db:"hostname" json:"hostname"`
	Status            DomainStatus `db:"status" json:"status"`
	VerificationToken string       `db:"verification_token" json:"verification_token"`
	CreatedAt         time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at" json:"updated_at"`
}

// LinkInput carries the owner supplied fields for a new link.
type LinkInput struct {
	OriginalURL string     `json:"original_url"`
	ShortCode   string     `json:"short_code,omitempty"`
	Title       string     `json:"title,omitempty"`
	Password    string     `json:"password,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	MaxClicks   *int64     `json:"max_clicks,omitempty"`
	DomainID    *uuid.UUID `json:"domain_id,omitempty"`
}

// LinkPatch is a partial update; nil fields are left untouched.
// ClearExpiry and ClearMaxClicks remove the respective limit.
// RemovePassword switches protection off.
type LinkPatch struct {
	OriginalURL    *string    `json:"original_url,omitempty"`
	ShortCode      *string    `json:"short_code,omitempty"`
	Title          *string    `json:"title,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	ClearExpiry    bool       `json:"clear_expiry,omitempty"`
	MaxClicks      *int64     `json:"max_clicks,omitempty"`
	ClearMaxClicks bool       `json:"clear_max_clicks,omitempty"`
	Password       *string    `json:"password,omitempty"`
	RemovePassword bool       `json:"remove_password,omitempty"`
}
