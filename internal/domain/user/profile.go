package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
)

// Profile is the reader account aggregate.
type Profile struct {
	id          uint
	email       string
	username    string
	displayName string
	role        authorization.UserRole
	betaStatus  rules.BetaApplicationStatus
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProfile creates a basic reader profile.
func NewProfile(email, username string) (*Profile, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if v := rules.ValidateUsername(username); !v.Valid {
		return nil, fmt.Errorf("invalid username: %s", strings.Join(v.Errors, "; "))
	}

	now := time.Now().UTC()
	return &Profile{
		email:      email,
		username:   username,
		role:       authorization.RoleUser,
		betaStatus: rules.BetaStatusNone,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructProfile reconstructs a profile from persistence
func ReconstructProfile(
	id uint,
	email, username, displayName string,
	role authorization.UserRole,
	betaStatus rules.BetaApplicationStatus,
	version int,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid user role: %s", role)
	}

	return &Profile{
		id:          id,
		email:       email,
		username:    username,
		displayName: displayName,
		role:        role,
		betaStatus:  betaStatus,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Profile) ID() uint                     { return p.id }
func (p *Profile) Email() string                { return p.email }
func (p *Profile) Username() string             { return p.username }
func (p *Profile) DisplayName() string          { return p.displayName }
func (p *Profile) Role() authorization.UserRole { return p.role }
func (p *Profile) BetaStatus() rules.BetaApplicationStatus {
	return p.betaStatus
}
func (p *Profile) Version() int         { return p.version }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the profile ID (only for persistence layer use)
func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

// ChangeUsername validates and replaces the username.
func (p *Profile) ChangeUsername(username string) error {
	if v := rules.ValidateUsername(username); !v.Valid {
		return fmt.Errorf("invalid username: %s", strings.Join(v.Errors, "; "))
	}
	if username == p.username {
		return nil
	}

	p.username = username
	p.updatedAt = time.Now().UTC()
	p.version++
	return nil
}

// SetDisplayName replaces the display name.
func (p *Profile) SetDisplayName(displayName string) {
	if displayName == p.displayName {
		return
	}
	p.displayName = displayName
	p.updatedAt = time.Now().UTC()
	p.version++
}

// ChangeRole assigns a new role to the profile.
func (p *Profile) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid user role: %s", role)
	}
	if role == p.role {
		return nil
	}

	p.role = role
	p.updatedAt = time.Now().UTC()
	p.version++
	return nil
}

// SetBetaStatus tracks the profile's standing in the beta reader program.
func (p *Profile) SetBetaStatus(status rules.BetaApplicationStatus) {
	if status == p.betaStatus {
		return
	}
	p.betaStatus = status
	p.updatedAt = time.Now().UTC()
	p.version++
}
