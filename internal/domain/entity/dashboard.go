package entity

// DashboardStats summarises a tenant's account.
type DashboardStats struct {
	TotalCustomers     int64 `json:"totalCustomers"`
	TotalShipments     int64 `json:"totalShipments"`
	ActiveShipments    int64 `json:"activeShipments"`
	DeliveredShipments int64 `json:"deliveredShipments"`
	PendingShipments   int64 `json:"pendingShipments"`
}
