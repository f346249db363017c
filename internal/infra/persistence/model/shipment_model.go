package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimelineEventModel is one element of the JSONB timeline column.
type TimelineEventModel struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

// ShipmentModel mirrors the 'shipments' table. The timeline is stored
// inline as a JSONB array.
type ShipmentModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TrackingCode      string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Status            string    `gorm:"type:varchar(32);not null;index"`
	Origin            string    `gorm:"type:varchar(255);not null"`
	Destination       string    `gorm:"type:varchar(255);not null"`
	CurrentLocation   *string   `gorm:"type:varchar(255)"`
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Notes             *string                                 `gorm:"type:text"`
	Timeline          datatypes.JSONSlice[TimelineEventModel] `gorm:"type:jsonb;not null"`
	CreatedAt         time.Time                               `gorm:"index"`
	UpdatedAt         time.Time

	Customer *CustomerModel `gorm:"foreignKey:CustomerID"`
	Tenant   *TenantModel   `gorm:"foreignKey:TenantID"`
}

// TableName explicitly sets the table name for GORM.
func (ShipmentModel) TableName() string {
	return "shipments"
}
