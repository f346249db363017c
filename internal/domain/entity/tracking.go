package entity

import "time"

// PublicShipmentView is what unauthenticated tracking callers see. It holds
// no internal identifiers and no customer contact data.
type PublicShipmentView struct {
	TrackingCode      string          `json:"trackingNumber"`
	Status            ShipmentStatus  `json:"status"`
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination"`
	CurrentLocation   *string         `json:"currentLocation"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery"`
	ActualDelivery    *time.Time      `json:"actualDelivery"`
	Timeline          Timeline        `json:"timeline"`
	Customer          PublicNameField `json:"customer"`
	Company           PublicNameField `json:"company"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// PublicNameField wraps a display name.
type PublicNameField struct {
	Name string `json:"name"`
}

// TrackedShipment is a shipment joined with the display names needed by
// the public view.
type TrackedShipment struct {
	Shipment     *Shipment
	CustomerName string
	CompanyName  string
}

// PublicView projects the tracked shipment for public callers.
func (t *TrackedShipment) PublicView() *PublicShipmentView {
	s := t.Shipment

	return &PublicShipmentView{
		TrackingCode:      s.TrackingCode,
		Status:            s.Status,
		Origin:            s.Origin,
		Destination:       s.Destination,
		CurrentLocation:   s.CurrentLocation,
		EstimatedDelivery: s.EstimatedDelivery,
		ActualDelivery:    s.ActualDelivery,
		Timeline:          s.Timeline.Clone(),
		Customer:          PublicNameField{Name: t.CustomerName},
		Company:           PublicNameField{Name: t.CompanyName},
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
