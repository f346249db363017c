package model

import (
	"time"

	"github.com/google/uuid"
)

// TenantModel mirrors the 'tenants' table. PostgreSQL generates UUIDs via gen_random_uuid().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type TenantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CompanyName  string    `gorm:"type:varchar(255);not null"`
	Plan         string    `gorm:"type:varchar(16);not null;default:FREE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Customers []CustomerModel `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Shipments []ShipmentModel `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}
