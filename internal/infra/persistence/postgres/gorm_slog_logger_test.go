package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"shiptrack/config"
	deliverycontext "shiptrack/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, baseBuf := newBufferedLogger(slog.LevelDebug)
	reqLogger, reqBuf := newBufferedLogger(slog.LevelDebug)
	tenantID := uuid.New()

	ctx := deliverycontext.WithLogger(context.Background(), reqLogger.With(slog.String("request_id", "req-9")))
	ctx = deliverycontext.WithTenant(ctx, tenantID)

	l := newGormSlogLogger(base, &config.Config{})
	l.Trace(ctx, time.Now(), sqlFn(`SELECT * FROM "shipments"`), assert.AnError)

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), `"request_id":"req-9"`)
	assert.Contains(t, reqBuf.String(), `"tenantID":"`+tenantID.String()+`"`)
	assert.Contains(t, reqBuf.String(), `"component":"gorm"`)
	assert.Contains(t, reqBuf.String(), `"level":"ERROR"`)
}

func TestGormSlogLogger_TraceLevels(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "record not found is silent", err: gorm.ErrRecordNotFound, want: ""},
		{name: "unique violation is debug", err: &pgconn.PgError{Code: pgUniqueViolation}, want: `"level":"DEBUG"`},
		{name: "canceled is warn", err: context.Canceled, want: `"level":"WARN"`},
		{name: "slow query is warn", elapsed: time.Second, want: `"msg":"GORM slow query"`},
		{name: "fast query is silent without debug", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := newBufferedLogger(slog.LevelDebug)
			l := newGormSlogLogger(base, &config.Config{})

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn("SELECT 1"), tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.want)
			}
		})
	}
}

func TestGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.SlowQuery = time.Second

	l := newGormSlogLogger(nil, cfg).(*gormSlogLogger)
	assert.Equal(t, time.Second, l.slowThreshold)

	l = newGormSlogLogger(nil, &config.Config{}).(*gormSlogLogger)
	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
}
