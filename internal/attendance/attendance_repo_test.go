package attendance

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_WithTxRoutesThroughTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)

	mock.ExpectBegin()
	tx, err := db.Begin()
	assert.NoError(t, err)

	ctx := context.Background()
	base := NewRepository(gdb).(*repository)
	bound := base.WithTx(tx).(*repository)

	// without a bound tx, statements run on the shared pool
	assert.Equal(t, gdb.ConnPool, base.conn(ctx).Statement.ConnPool)

	// with a bound tx, every statement must ride that exact transaction
	pool, ok := bound.conn(ctx).Statement.ConnPool.(*sql.Tx)
	assert.True(t, ok)
	assert.Same(t, tx, pool)

	// the context still flows through the tx-bound session
	assert.Equal(t, ctx, bound.conn(ctx).Statement.Context)
}
