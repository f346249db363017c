package auth

import (
	"strings"
	"testing"
	"time"

	"shiptrack/config"
	"shiptrack/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Hour}}
	cfg.SecretKey.Session = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func testTenant() *entity.Tenant {
	return &entity.Tenant{
		ID:          uuid.New(),
		Email:       "ops@acme.test",
		CompanyName: "Acme",
		Plan:        entity.PlanBasic,
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t, "test_session_secret_key_very_long")
	tenant := testTenant()

	token, err := svc.Issue(tenant)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, claims.TenantID)
	assert.Equal(t, tenant.Email, claims.Email)
	assert.Equal(t, entity.PlanBasic, claims.Plan)
	assert.Equal(t, time.Hour, svc.SessionTTL())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t, "test_session_secret_key_very_long")
	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(testTenant())
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "first_secret_key_for_signing")
	verifier := newTestJWTService(t, "second_secret_key_for_signing")

	token, err := issuer.Issue(testTenant())
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Tampered(t *testing.T) {
	svc := newTestJWTService(t, "test_session_secret_key_very_long")

	token, err := svc.Issue(testTenant())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	other, err := svc.Issue(testTenant())
	require.NoError(t, err)
	forged := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]

	claims, err := svc.Verify(forged)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestJWTService(t, "test_session_secret_key_very_long")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId": uuid.New().String(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Garbage(t *testing.T) {
	svc := newTestJWTService(t, "test_session_secret_key_very_long")

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		claims, err := svc.Verify(token)
		assert.Error(t, err, token)
		assert.Nil(t, claims)
	}
}
