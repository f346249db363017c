// Package entity contains the core business objects of the tracking domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a registered company account. It is the unit of data isolation
// and carries the subscription plan used for quota checks.
type Tenant struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CompanyName  string
	Plan         Plan
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile returns the tenant without its credential hash.
func (t *Tenant) Profile() *TenantProfile {
	return &TenantProfile{
		ID:          t.ID,
		Email:       t.Email,
		CompanyName: t.CompanyName,
		Plan:        t.Plan,
		CreatedAt:   t.CreatedAt,
	}
}

// TenantProfile is the account view returned to the authenticated tenant.
type TenantProfile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	CompanyName string    `json:"companyName"`
	Plan        Plan      `json:"plan"`
	CreatedAt   time.Time `json:"createdAt"`
}
