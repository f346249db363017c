package handler

import (
	"net/http"
	"testing"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	mockUsecase "shiptrack/internal/mocks/usecase"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCustomerHandler(t *testing.T) (*CustomerHandler, *mockUsecase.MockCustomerUsecase) {
	customerUC := mockUsecase.NewMockCustomerUsecase(t)

	return NewCustomerHandler(CustomerHandlerParams{
		CustomerUC: customerUC,
		Logger:     newDiscardLogger(),
	}), customerUC
}

func TestCustomerHandler_List_PassesQuery(t *testing.T) {
	h, customerUC := createTestCustomerHandler(t)
	e := newTestEcho()
	c, rec := newRequestContext(e, http.MethodGet, "/api/customers?search=jane&page=2&limit=5", "")
	identity := authenticate(c, entity.PlanFree)

	customerUC.EXPECT().
		List(mock.Anything, identity.TenantID, &usecase.ListInput{Search: "jane", Page: 2, Limit: 5}).
		Return(&usecase.CustomerListOutput{
			Customers:  []*entity.Customer{{ID: uuid.New(), Name: "Jane"}},
			Pagination: entity.NewPagination(entity.NewPage(2, 5), 6),
		}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pagination":{"page":2,"limit":5,"total":6,"pages":2}`)
}

func TestCustomerHandler_List_RejectsNonNumericPage(t *testing.T) {
	h, _ := createTestCustomerHandler(t)
	e := newTestEcho()
	c, rec := newRequestContext(e, http.MethodGet, "/api/customers?page=two", "")
	authenticate(c, entity.PlanFree)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerHandler_Create_QuotaExceeded(t *testing.T) {
	h, customerUC := createTestCustomerHandler(t)
	e := newTestEcho()
	c, rec := newRequestContext(e, http.MethodPost, "/api/customers", `{"name":"Customer 51"}`)
	identity := authenticate(c, entity.PlanFree)

	customerUC.EXPECT().
		Create(mock.Anything, identity, &usecase.CreateCustomerInput{Name: "Customer 51"}).
		Return(nil, domainerrors.ErrCustomerQuotaExceeded)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.NotEqual(t, "FORBIDDEN", env.Error.Code)
	assert.Equal(t, domainerrors.ErrCustomerQuotaExceeded.ErrorCode(), env.Error.Code)
}

func TestCustomerHandler_Create_RequiresName(t *testing.T) {
	h, _ := createTestCustomerHandler(t)
	e := newTestEcho()
	c, rec := newRequestContext(e, http.MethodPost, "/api/customers", `{"email":"jane@example.com"}`)
	authenticate(c, entity.PlanFree)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"name"`)
}

func TestCustomerHandler_Get_MalformedIDIsNotFound(t *testing.T) {
	h, _ := createTestCustomerHandler(t)
	e := newTestEcho()
	c, rec := newRequestContext(e, http.MethodGet, "/api/customers/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	authenticate(c, entity.PlanFree)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomerHandler_Update_ClearsOptionalField(t *testing.T) {
	h, customerUC := createTestCustomerHandler(t)
	e := newTestEcho()
	customerID := uuid.New()
	c, rec := newRequestContext(e, http.MethodPatch, "/api/customers/"+customerID.String(), `{"phone":"","name":" Jane Roe "}`)
	c.SetParamNames("id")
	c.SetParamValues(customerID.String())
	identity := authenticate(c, entity.PlanFree)

	customerUC.EXPECT().
		Update(mock.Anything, identity.TenantID, customerID, mock.MatchedBy(func(p entity.CustomerPatch) bool {
			return p.Name != nil && *p.Name == "Jane Roe" &&
				p.Phone != nil && *p.Phone == "" &&
				p.Email == nil && p.Address == nil
		})).
		Return(&entity.Customer{ID: customerID, Name: "Jane Roe"}, nil)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerHandler_Delete_OtherTenant(t *testing.T) {
	h, customerUC := createTestCustomerHandler(t)
	e := newTestEcho()
	customerID := uuid.New()
	c, rec := newRequestContext(e, http.MethodDelete, "/api/customers/"+customerID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(customerID.String())
	identity := authenticate(c, entity.PlanFree)

	customerUC.EXPECT().Delete(mock.Anything, identity.TenantID, customerID).Return(domainerrors.ErrCustomerNotFound)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
