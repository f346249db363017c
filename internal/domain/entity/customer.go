package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer belongs to exactly one tenant.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// ShipmentCount is filled by list and detail queries.
	ShipmentCount int64 `json:"shipmentCount"`
}

// CustomerSummary is the customer projection embedded in shipment listings.
type CustomerSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   *string   `json:"email"`
	Phone   *string   `json:"phone"`
	Address *string   `json:"address,omitempty"`
}

// CustomerPatch carries a partial customer update. Nil fields are left
// untouched, an empty optional string clears the field.
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// Apply merges the patch into c.
func (p CustomerPatch) Apply(c *Customer, now time.Time) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = NullableString(*p.Email)
	}
	if p.Phone != nil {
		c.Phone = NullableString(*p.Phone)
	}
	if p.Address != nil {
		c.Address = NullableString(*p.Address)
	}
	c.UpdatedAt = now
}

// NullableString maps the empty string to nil.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// CustomerFilter narrows a tenant's customer listing.
type CustomerFilter struct {
	TenantID uuid.UUID
	Search   string
	Page     Page
}

// CustomerDetail is a customer with its most recent shipments.
type CustomerDetail struct {
	*Customer
	Shipments []*Shipment `json:"shipments"`
}
