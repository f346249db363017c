package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     *string   `gorm:"type:varchar(255)"`
	Phone     *string   `gorm:"type:varchar(64)"`
	Address   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Tenant    *TenantModel    `gorm:"foreignKey:TenantID"`
	Shipments []ShipmentModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// CustomerWithCount is a customers row joined with its shipment count.
type CustomerWithCount struct {
	CustomerModel
	ShipmentCount int64
}
