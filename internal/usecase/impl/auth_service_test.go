package impl

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/domain/service"
	mockRepo "shiptrack/internal/mocks/repository"
	mockSvc "shiptrack/internal/mocks/service"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	tenantRepo   *mockRepo.MockTenantRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	tenantRepo := mockRepo.NewMockTenantRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		TenantRepo:   tenantRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		tenantRepo:   tenantRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	tenantID := uuid.New()

	fx.tenantRepo.EXPECT().
		FindByEmail(ctx, "ops@acme.test").
		Return(nil, repository.ErrTenantNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Run(func(_ context.Context, tenant *entity.Tenant) {
			tenant.ID = tenantID
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("*entity.Tenant")).
		Return("signed-token", nil)
	fx.tokenService.EXPECT().SessionTTL().Return(7 * 24 * time.Hour)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		CompanyName: "  Acme Logistics ",
		Email:       " OPS@Acme.test",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, 7*24*time.Hour, out.ExpiresIn)
	assert.Equal(t, tenantID, out.Tenant.ID)
	assert.Equal(t, "ops@acme.test", out.Tenant.Email)
	assert.Equal(t, "Acme Logistics", out.Tenant.CompanyName)
	assert.Equal(t, entity.PlanFree, out.Tenant.Plan)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().
		FindByEmail(ctx, "ops@acme.test").
		Return(&entity.Tenant{ID: uuid.New(), Email: "ops@acme.test"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		CompanyName: "Acme",
		Email:       "ops@acme.test",
		Password:    "s3cret-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrTenantAlreadyExists)
}

func TestAuthService_Register_RaceOnUniqueIndex(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindByEmail(ctx, "ops@acme.test").Return(nil, repository.ErrTenantNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		CompanyName: "Acme",
		Email:       "ops@acme.test",
		Password:    "s3cret-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrTenantAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tenantRepo.EXPECT().FindByEmail(ctx, "ops@acme.test").Return(nil, repository.ErrTenantNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("", errors.New("bcrypt: boom"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		CompanyName: "Acme",
		Email:       "ops@acme.test",
		Password:    "s3cret-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login(t *testing.T) {
	tenant := &entity.Tenant{
		ID:           uuid.New(),
		Email:        "ops@acme.test",
		PasswordHash: "hashed",
		CompanyName:  "Acme",
		Plan:         entity.PlanBasic,
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tenantRepo.EXPECT().FindByEmail(ctx, "ops@acme.test").Return(tenant, nil)
		fx.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
		fx.hasher.EXPECT().NeedsRehash("hashed").Return(false)
		fx.tokenService.EXPECT().Issue(tenant).Return("signed-token", nil)
		fx.tokenService.EXPECT().SessionTTL().Return(time.Hour)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "Ops@acme.test", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.Token)
		assert.Equal(t, entity.PlanBasic, out.Tenant.Plan)
	})

	t.Run("outdated hash is upgraded", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		stale := *tenant

		fx.tenantRepo.EXPECT().FindByEmail(ctx, "ops@acme.test").Return(&stale, nil)
		fx.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
		fx.hasher.EXPECT().NeedsRehash("hashed").Return(true)
		fx.hasher.EXPECT().Hash("s3cret-pass").Return("rehashed", nil)
		fx.tenantRepo.EXPECT().UpdatePasswordHash(ctx, tenant.ID, "rehashed").Return(nil)
		fx.tokenService.EXPECT().Issue(&stale).Return("signed-token", nil)
		fx.tokenService.EXPECT().SessionTTL().Return(time.Hour)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ops@acme.test", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "rehashed", stale.PasswordHash)
	})

	t.Run("failed upgrade still logs in", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		stale := *tenant

		fx.tenantRepo.EXPECT().FindByEmail(ctx, "ops@acme.test").Return(&stale, nil)
		fx.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
		fx.hasher.EXPECT().NeedsRehash("hashed").Return(true)
		fx.hasher.EXPECT().Hash("s3cret-pass").Return("rehashed", nil)
		fx.tenantRepo.EXPECT().UpdatePasswordHash(ctx, tenant.ID, "rehashed").Return(errors.New("conn reset"))
		fx.tokenService.EXPECT().Issue(&stale).Return("signed-token", nil)
		fx.tokenService.EXPECT().SessionTTL().Return(time.Hour)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ops@acme.test", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.Token)
		assert.Equal(t, "hashed", stale.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tenantRepo.EXPECT().FindByEmail(ctx, "ops@acme.test").Return(tenant, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ops@acme.test", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tenantRepo.EXPECT().FindByEmail(ctx, "ghost@acme.test").Return(nil, repository.ErrTenantNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@acme.test", Password: "whatever"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Verify("good").Return(&service.Claims{
			TenantID: tenantID,
			Email:    "ops@acme.test",
			Plan:     entity.PlanPro,
		}, nil)

		identity, err := fx.service.Authenticate(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, tenantID, identity.TenantID)
		assert.Equal(t, entity.PlanPro, identity.Plan)
	})

	t.Run("empty token", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Authenticate(ctx, "")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("rejected token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Verify("expired").Return(nil, errors.New("token is expired"))

		_, err := fx.service.Authenticate(ctx, "expired")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("profile without hash", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tenantRepo.EXPECT().FindByID(ctx, tenantID).Return(&entity.Tenant{
			ID:           tenantID,
			Email:        "ops@acme.test",
			PasswordHash: "hashed",
			CompanyName:  "Acme",
			Plan:         entity.PlanFree,
		}, nil)

		profile, err := fx.service.Me(ctx, tenantID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", profile.CompanyName)
	})

	t.Run("deleted account", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tenantRepo.EXPECT().FindByID(ctx, tenantID).Return(nil, repository.ErrTenantNotFound)

		_, err := fx.service.Me(ctx, tenantID)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}
