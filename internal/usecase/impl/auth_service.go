// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/domain/service"
	"shiptrack/internal/infra/metrics"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	tenantRepo   repository.TenantRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TenantRepo   repository.TenantRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		tenantRepo:   params.TenantRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register opens a FREE account and starts a session for it.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	email := normalizeEmail(input.Email)

	_, err := srv.tenantRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrTenantAlreadyExists
	}
	if !errors.Is(err, repository.ErrTenantNotFound) {
		return nil, errors.Wrap(err, "failed to check existing tenant")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	tenant := &entity.Tenant{
		Email:        email,
		PasswordHash: hash,
		CompanyName:  strings.TrimSpace(input.CompanyName),
		Plan:         entity.PlanFree,
	}
	if err := srv.tenantRepo.Create(ctx, tenant); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrTenantAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create tenant")
	}

	metrics.TenantsRegisteredTotal.Inc()
	srv.log(ctx).Info("Tenant registered", slog.String("tenantID", tenant.ID.String()))

	return srv.startSession(tenant)
}

// Login verifies the credentials and starts a session. Unknown email and
// wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	tenant, err := srv.tenantRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, repository.ErrTenantNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tenant")
	}

	if !srv.hasher.Check(input.Password, tenant.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.String("tenantID", tenant.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if srv.hasher.NeedsRehash(tenant.PasswordHash) {
		srv.rehash(ctx, tenant, input.Password)
	}

	return srv.startSession(tenant)
}

// rehash upgrades a stored hash to the current cost. Failure keeps the old
// hash, which still verifies.
func (srv *authService) rehash(ctx context.Context, tenant *entity.Tenant, password string) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Failed to rehash password", slog.Any("error", err))

		return
	}

	if err := srv.tenantRepo.UpdatePasswordHash(ctx, tenant.ID, hash); err != nil {
		srv.log(ctx).Warn("Failed to store rehashed password", slog.Any("error", err))

		return
	}

	tenant.PasswordHash = hash
}

// Authenticate resolves a session token into the caller's identity.
func (srv *authService) Authenticate(ctx context.Context, token string) (*usecase.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil || claims == nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated
	}

	return &usecase.Identity{
		TenantID: claims.TenantID,
		Email:    claims.Email,
		Plan:     claims.Plan,
	}, nil
}

// Me returns the authenticated tenant's profile. A token outliving its
// account is treated as unauthenticated.
func (srv *authService) Me(ctx context.Context, tenantID uuid.UUID) (*entity.TenantProfile, error) {
	tenant, err := srv.tenantRepo.FindByID(ctx, tenantID)
	if errors.Is(err, repository.ErrTenantNotFound) {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tenant")
	}

	return tenant.Profile(), nil
}

func (srv *authService) SessionTTL() time.Duration {
	return srv.tokenService.SessionTTL()
}

func (srv *authService) startSession(tenant *entity.Tenant) (*usecase.SessionOutput, error) {
	token, err := srv.tokenService.Issue(tenant)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.SessionOutput{
		Token:     token,
		ExpiresIn: srv.tokenService.SessionTTL(),
		Tenant:    tenant.Profile(),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
