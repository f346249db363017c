package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"shiptrack/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	logger, buf := newBufferedLogger(slog.LevelDebug)
	m := &poolMonitor{logger: logger}

	waitsBefore := testutil.ToFloat64(metrics.DBPoolWaitsTotal)

	m.observe(context.Background(), sql.DBStats{OpenConnections: 4, InUse: 3, Idle: 1})
	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.DBPoolConnections.WithLabelValues("open")))
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.DBPoolConnections.WithLabelValues("in_use")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.DBPoolConnections.WithLabelValues("idle")))
	assert.Empty(t, buf.String())

	m.observe(context.Background(), sql.DBStats{
		OpenConnections: 4,
		InUse:           4,
		WaitCount:       2,
		WaitDuration:    10 * time.Millisecond,
	})
	assert.Equal(t, waitsBefore+2, testutil.ToFloat64(metrics.DBPoolWaitsTotal))
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"waits":2`)

	buf.Reset()
	m.observe(context.Background(), sql.DBStats{
		WaitCount:    3,
		WaitDuration: 10*time.Millisecond + time.Second,
	})
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waits":1`)
}

func TestMonitorDBPool_NilDB(t *testing.T) {
	done := make(chan struct{})
	go func() {
		monitorDBPool(context.Background(), slog.Default(), nil, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not return for a nil pool")
	}
}
