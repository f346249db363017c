package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus is the lifecycle state of a shipment. Any status may follow
// any other; the owning tenant decides which transitions make sense.
type ShipmentStatus string

const (
	StatusPending        ShipmentStatus = "PENDING"
	StatusPickedUp       ShipmentStatus = "PICKED_UP"
	StatusInTransit      ShipmentStatus = "IN_TRANSIT"
	StatusOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      ShipmentStatus = "DELIVERED"
	StatusCancelled      ShipmentStatus = "CANCELLED"
	StatusReturned       ShipmentStatus = "RETURNED"
)

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []ShipmentStatus{
	StatusPending,
	StatusPickedUp,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
	StatusReturned,
}

// ActiveStatuses are the statuses counted as "on the way" on the dashboard.
var ActiveStatuses = []ShipmentStatus{
	StatusPickedUp,
	StatusInTransit,
	StatusOutForDelivery,
}

// IsValid reports whether s is a known status.
func (s ShipmentStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}

	return false
}

const createdDescription = "Shipment created"

// Shipment is a tracked consignment owned by a tenant and a customer.
type Shipment struct {
	ID                uuid.UUID        `json:"id"`
	TenantID          uuid.UUID        `json:"userId"`
	CustomerID        uuid.UUID        `json:"customerId"`
	TrackingCode      string           `json:"trackingNumber"`
	Status            ShipmentStatus   `json:"status"`
	Origin            string           `json:"origin"`
	Destination       string           `json:"destination"`
	CurrentLocation   *string          `json:"currentLocation"`
	EstimatedDelivery *time.Time       `json:"estimatedDelivery"`
	ActualDelivery    *time.Time       `json:"actualDelivery"`
	Notes             *string          `json:"notes"`
	Timeline          Timeline         `json:"timeline"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
	Customer          *CustomerSummary `json:"customer,omitempty"`
}

// NewShipmentParams holds the caller-supplied fields of a new shipment.
type NewShipmentParams struct {
	TenantID          uuid.UUID
	CustomerID        uuid.UUID
	TrackingCode      string
	Origin            string
	Destination       string
	EstimatedDelivery *time.Time
	Notes             *string
}

// NewShipment builds a PENDING shipment located at its origin with a single
// "created" timeline entry.
func NewShipment(p NewShipmentParams, now time.Time) *Shipment {
	origin := p.Origin

	return &Shipment{
		TenantID:          p.TenantID,
		CustomerID:        p.CustomerID,
		TrackingCode:      p.TrackingCode,
		Status:            StatusPending,
		Origin:            p.Origin,
		Destination:       p.Destination,
		CurrentLocation:   &origin,
		EstimatedDelivery: p.EstimatedDelivery,
		Notes:             p.Notes,
		Timeline: Timeline{}.Append(TimelineEvent{
			Status:      StatusPending,
			Timestamp:   now,
			Location:    p.Origin,
			Description: createdDescription,
		}),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ShipmentUpdate is a partial update of a shipment. Nil fields are left
// untouched.
type ShipmentUpdate struct {
	Status *ShipmentStatus

	// Location moves the shipment when non-empty.
	Location *string

	// Notes replaces the notes; an empty string clears them.
	Notes *string

	EstimatedDelivery      *time.Time
	ClearEstimatedDelivery bool
}

// Apply performs the update at time now and reports whether a timeline
// entry was appended.
//
// A status different from the current one appends an entry located at the
// supplied location, else the current location, else "". Entering
// DELIVERED stamps ActualDelivery. The same status again is a no-op for the
// timeline while location, notes and estimated delivery still apply.
func (s *Shipment) Apply(u ShipmentUpdate, now time.Time) bool {
	appended := false

	if u.Status != nil && *u.Status != s.Status {
		location := ""
		switch {
		case u.Location != nil && *u.Location != "":
			location = *u.Location
		case s.CurrentLocation != nil:
			location = *s.CurrentLocation
		}

		s.Timeline = s.Timeline.Append(TimelineEvent{
			Status:      *u.Status,
			Timestamp:   now,
			Location:    location,
			Description: fmt.Sprintf("Status updated to %s", *u.Status),
		})
		s.Status = *u.Status
		appended = true

		if s.Status == StatusDelivered {
			delivered := now
			s.ActualDelivery = &delivered
		}
	}

	if u.Location != nil && *u.Location != "" {
		location := *u.Location
		s.CurrentLocation = &location
	}

	if u.Notes != nil {
		s.Notes = NullableString(*u.Notes)
	}

	switch {
	case u.ClearEstimatedDelivery:
		s.EstimatedDelivery = nil
	case u.EstimatedDelivery != nil:
		eta := *u.EstimatedDelivery
		s.EstimatedDelivery = &eta
	}

	s.UpdatedAt = now

	return appended
}

// Consistent reports whether the status mirrors the last timeline entry.
func (s *Shipment) Consistent() bool {
	last, ok := s.Timeline.Last()

	return ok && last.Status == s.Status
}

// ShipmentFilter narrows a tenant's shipment listing.
type ShipmentFilter struct {
	TenantID   uuid.UUID
	Status     ShipmentStatus
	CustomerID *uuid.UUID
	Search     string
	Page       Page
}
