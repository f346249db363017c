package impl

import (
	"io"
	"log/slog"
	"time"

	"shiptrack/config"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxAttempts int) *config.Config {
	return &config.Config{
		Tracking: &config.TrackingConfig{
			MaxAttempts:   maxAttempts,
			PublicBaseURL: "https://track.example.com",
		},
	}
}

func newIdentity(plan entity.Plan) *usecase.Identity {
	return &usecase.Identity{
		TenantID: uuid.New(),
		Email:    "ops@acme.test",
		Plan:     plan,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T {
	return &v
}
