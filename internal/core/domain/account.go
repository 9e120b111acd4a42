package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the kind of account. It decides which operations are allowed.
type Role string

const (
	RoleStartup  Role = "startup"
	RoleInvestor Role = "investor"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStartup, RoleInvestor, RoleAdmin:
		return true
	}
	return false
}

// Account is a registered user. Totals are stored in integer units (cents)
// and only change through the funding ledger.
type Account struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          Role      `json:"role"`
	Company       string    `json:"company,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	IsActive      bool      `json:"isActive"`
	TotalRaised   int64     `json:"totalRaised"`
	TotalInvested int64     `json:"totalInvested"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Identity returns the request-scoped identity of the account.
func (a *Account) Identity() Identity {
	return Identity{AccountID: a.ID, Role: a.Role, Name: a.Name}
}

// Identity is the authenticated caller of an operation. It is resolved from
// the bearer token once per request and passed explicitly into usecases.
type Identity struct {
	AccountID uuid.UUID
	Role      Role
	Name      string
}

// IsAdmin reports whether the caller has the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// AccountRef is the public projection of an account embedded in other
// resources (campaign creator, backer, chat participant).
type AccountRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Company string    `json:"company,omitempty"`
	Role    Role      `json:"role,omitempty"`
}
