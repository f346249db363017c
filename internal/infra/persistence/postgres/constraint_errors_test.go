package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "idx_shipments_tracking_code"}, "insert")
	fk := &pgconn.PgError{Code: "23503"}
	notNull := &pgconn.PgError{Code: "23502"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.Equal(t, "idx_shipments_tracking_code", pgConstraintName(unique))
	assert.True(t, isTrackingCodeViolation(unique))
	assert.False(t, isTrackingCodeViolation(&pgconn.PgError{Code: "23505", ConstraintName: "shipments_pkey"}))
	assert.False(t, isTrackingCodeViolation(gorm.ErrDuplicatedKey))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.True(t, isCheckConstraintViolation(check))

	assert.False(t, isUniqueConstraintViolation(fk))
	assert.False(t, isUniqueConstraintViolation(nil))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("boom")))
	assert.Empty(t, pgConstraintName(errors.New("boom")))
}
