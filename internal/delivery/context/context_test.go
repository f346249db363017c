package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWithTenant(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	tenantID := uuid.New()

	ctx := WithTenant(WithLogger(context.Background(), base), tenantID)

	got, ok := GetTenantID(ctx)
	assert.True(t, ok)
	assert.Equal(t, tenantID, got)

	GetLoggerOrDefault(ctx, base).Info("shipment created")
	assert.Contains(t, buf.String(), `"tenantID":"`+tenantID.String()+`"`)
}

func TestWithTenant_NoLogger(t *testing.T) {
	ctx := WithTenant(context.Background(), uuid.New())

	assert.Nil(t, GetLogger(ctx))
	_, ok := GetTenantID(ctx)
	assert.True(t, ok)
}

func TestGetTenantID_Absent(t *testing.T) {
	_, ok := GetTenantID(context.Background())
	assert.False(t, ok)
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NoError(t, uuid.Validate(GetRequestID(c)))

	SetRequestID(c, "req-7")
	assert.Equal(t, "req-7", GetRequestID(c))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
