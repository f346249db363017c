package usecase

import (
	"context"

	"shiptrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCustomerInput defines the data of a new customer. Empty optional
// fields are stored as null.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// ListInput carries the paging and search parameters of a listing.
type ListInput struct {
	Search string
	Page   int
	Limit  int
}

// CustomerListOutput is one page of customers.
type CustomerListOutput struct {
	Customers  []*entity.Customer
	Pagination entity.Pagination
}

// CustomerUsecase defines the tenant-scoped customer operations.
type CustomerUsecase interface {
	List(ctx context.Context, tenantID uuid.UUID, input *ListInput) (*CustomerListOutput, error)

	// Create adds a customer if the tenant's plan allows one more.
	Create(ctx context.Context, tenant *Identity, input *CreateCustomerInput) (*entity.Customer, error)

	// Get returns the customer with its most recent shipments.
	Get(ctx context.Context, tenantID, customerID uuid.UUID) (*entity.CustomerDetail, error)

	Update(ctx context.Context, tenantID, customerID uuid.UUID, patch entity.CustomerPatch) (*entity.Customer, error)

	// Delete removes the customer and every shipment it owns.
	Delete(ctx context.Context, tenantID, customerID uuid.UUID) error
}
