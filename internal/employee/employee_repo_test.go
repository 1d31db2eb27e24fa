package employee

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

// Calls without a bound transaction must fall back to the plain connection.
func TestFindAllActiveOutsideTransaction(t *testing.T) {
	db, mock := newGormMock(t)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "status"}).
		AddRow(id.String(), "Dana", "Flores", "dana.flores@example.com", StatusActive)
	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE status = \$1`).
		WithArgs(StatusActive).
		WillReturnRows(rows)

	got, err := NewRepository(db).FindAllActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, "Dana Flores", got[0].FullName())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateOutsideTransaction(t *testing.T) {
	db, mock := newGormMock(t)

	id := uuid.NewString()
	mock.ExpectExec(`UPDATE "employees" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := NewRepository(db).Deactivate(context.Background(), id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
