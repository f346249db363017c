package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShipment(t *testing.T, now time.Time) *Shipment {
	t.Helper()

	return NewShipment(NewShipmentParams{
		TenantID:     uuid.New(),
		CustomerID:   uuid.New(),
		TrackingCode: "TKS-ABCD1234",
		Origin:       "New York, NY",
		Destination:  "Boston, MA",
	}, now)
}

func statusPtr(s ShipmentStatus) *ShipmentStatus { return &s }

func strPtr(s string) *string { return &s }

func TestNewShipment_InitialState(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := newTestShipment(t, now)

	assert.Equal(t, StatusPending, s.Status)
	require.NotNil(t, s.CurrentLocation)
	assert.Equal(t, "New York, NY", *s.CurrentLocation)
	require.Len(t, s.Timeline, 1)
	assert.Equal(t, TimelineEvent{
		Status:      StatusPending,
		Timestamp:   now,
		Location:    "New York, NY",
		Description: "Shipment created",
	}, s.Timeline[0])
	assert.Nil(t, s.ActualDelivery)
	assert.True(t, s.Consistent())
}

func TestShipment_Apply_DeliveredStampsActualDelivery(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := newTestShipment(t, created)

	at := created.Add(48 * time.Hour)
	appended := s.Apply(ShipmentUpdate{Status: statusPtr(StatusDelivered)}, at)

	assert.True(t, appended)
	assert.Len(t, s.Timeline, 2)
	assert.Equal(t, StatusDelivered, s.Status)
	require.NotNil(t, s.ActualDelivery)
	assert.Equal(t, at, *s.ActualDelivery)
	assert.Equal(t, "Status updated to DELIVERED", s.Timeline[1].Description)
	assert.Equal(t, "New York, NY", s.Timeline[1].Location)
	assert.True(t, s.Consistent())
}

func TestShipment_Apply_SameStatusIsNoOp(t *testing.T) {
	now := time.Now()
	s := newTestShipment(t, now)

	appended := s.Apply(ShipmentUpdate{
		Status:   statusPtr(StatusPending),
		Location: strPtr("Newark, NJ"),
		Notes:    strPtr("fragile"),
	}, now.Add(time.Minute))

	assert.False(t, appended)
	assert.Len(t, s.Timeline, 1)
	assert.Equal(t, "Newark, NJ", *s.CurrentLocation)
	assert.Equal(t, "fragile", *s.Notes)
	assert.True(t, s.Consistent())
}

func TestShipment_Apply_LocationFallbacks(t *testing.T) {
	now := time.Now()
	s := newTestShipment(t, now)

	s.Apply(ShipmentUpdate{Status: statusPtr(StatusPickedUp), Location: strPtr("Hub 7")}, now)
	assert.Equal(t, "Hub 7", s.Timeline[1].Location)
	assert.Equal(t, "Hub 7", *s.CurrentLocation)

	s.Apply(ShipmentUpdate{Status: statusPtr(StatusInTransit), Location: strPtr("")}, now)
	assert.Equal(t, "Hub 7", s.Timeline[2].Location)

	s.CurrentLocation = nil
	s.Apply(ShipmentUpdate{Status: statusPtr(StatusOutForDelivery)}, now)
	assert.Equal(t, "", s.Timeline[3].Location)
}

func TestShipment_Apply_ArbitraryTransitionsKeepInvariants(t *testing.T) {
	now := time.Now()
	s := newTestShipment(t, now)

	sequence := []ShipmentStatus{
		StatusDelivered, StatusPending, StatusReturned, StatusReturned,
		StatusCancelled, StatusInTransit, StatusDelivered, StatusPickedUp,
	}

	wantLen := 1
	everDelivered := false
	for i, next := range sequence {
		prev := s.Status
		at := now.Add(time.Duration(i+1) * time.Minute)
		s.Apply(ShipmentUpdate{Status: statusPtr(next)}, at)

		if next != prev {
			wantLen++
		}
		if next == StatusDelivered {
			everDelivered = true
		}

		assert.Len(t, s.Timeline, wantLen)
		assert.True(t, s.Consistent(), "status must mirror last timeline entry after %s", next)
		assert.Equal(t, everDelivered, s.ActualDelivery != nil)
	}
}

func TestShipment_Apply_RedeliveryRefreshesTimestamp(t *testing.T) {
	now := time.Now()
	s := newTestShipment(t, now)

	first := now.Add(time.Hour)
	s.Apply(ShipmentUpdate{Status: statusPtr(StatusDelivered)}, first)

	s.Apply(ShipmentUpdate{Status: statusPtr(StatusDelivered)}, first.Add(time.Hour))
	assert.Equal(t, first, *s.ActualDelivery, "same status again must not restamp")

	s.Apply(ShipmentUpdate{Status: statusPtr(StatusReturned)}, first.Add(2*time.Hour))
	second := first.Add(3 * time.Hour)
	s.Apply(ShipmentUpdate{Status: statusPtr(StatusDelivered)}, second)
	assert.Equal(t, second, *s.ActualDelivery)
}

func TestShipment_Apply_EstimatedDeliveryAndNotes(t *testing.T) {
	now := time.Now()
	s := newTestShipment(t, now)
	eta := now.Add(72 * time.Hour)

	s.Apply(ShipmentUpdate{EstimatedDelivery: &eta, Notes: strPtr("leave at door")}, now)
	require.NotNil(t, s.EstimatedDelivery)
	assert.Equal(t, eta, *s.EstimatedDelivery)

	s.Apply(ShipmentUpdate{ClearEstimatedDelivery: true, Notes: strPtr("")}, now)
	assert.Nil(t, s.EstimatedDelivery)
	assert.Nil(t, s.Notes)
	assert.Len(t, s.Timeline, 1)
}

func TestTimeline_AppendDoesNotAlias(t *testing.T) {
	base := make(Timeline, 1, 4)
	base[0] = TimelineEvent{Status: StatusPending}

	a := base.Append(TimelineEvent{Status: StatusPickedUp})
	b := base.Append(TimelineEvent{Status: StatusCancelled})

	assert.Len(t, base, 1)
	assert.Equal(t, StatusPickedUp, a[1].Status)
	assert.Equal(t, StatusCancelled, b[1].Status)
}

func TestIsValidTrackingCode(t *testing.T) {
	assert.True(t, IsValidTrackingCode("TKS-0A1B2C3D"))
	assert.False(t, IsValidTrackingCode("TKS-0a1b2c3d"))
	assert.False(t, IsValidTrackingCode("TKS-0A1B2C3"))
	assert.False(t, IsValidTrackingCode("ABC-0A1B2C3D"))
	assert.False(t, IsValidTrackingCode("TKS0A1B2C3D"))
	assert.False(t, IsValidTrackingCode(""))
}

func TestIsValidTrackingCode_FollowsFormatConstants(t *testing.T) {
	suffix := strings.Repeat(TrackingCodeAlphabet[len(TrackingCodeAlphabet)-1:], TrackingCodeLength)

	assert.True(t, IsValidTrackingCode(TrackingCodePrefix+"-"+suffix))
	assert.False(t, IsValidTrackingCode(TrackingCodePrefix+"-"+suffix+"0"))
	assert.False(t, IsValidTrackingCode(TrackingCodePrefix+"-"+suffix[1:]))
}

func TestShipmentStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid())
	}
	assert.False(t, ShipmentStatus("LOST").IsValid())
}

func TestNewPagination(t *testing.T) {
	p := NewPage(0, 500)
	assert.Equal(t, Page{Number: 1, Size: MaxPageSize}, p)
	assert.Equal(t, 0, p.Offset())

	p = NewPage(3, 0)
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, Pagination{Page: 3, Limit: 20, Total: 41, Pages: 3}, NewPagination(p, 41))
	assert.Equal(t, int64(0), NewPagination(p, 0).Pages)
}

func TestTrackedShipment_PublicView(t *testing.T) {
	now := time.Now()
	s := newTestShipment(t, now)
	tracked := &TrackedShipment{Shipment: s, CustomerName: "John Smith", CompanyName: "Acme"}

	view := tracked.PublicView()

	assert.Equal(t, s.TrackingCode, view.TrackingCode)
	assert.Equal(t, "John Smith", view.Customer.Name)
	assert.Equal(t, "Acme", view.Company.Name)

	view.Timeline[0].Location = "tampered"
	assert.Equal(t, "New York, NY", s.Timeline[0].Location)
}
