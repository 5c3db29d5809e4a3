package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/retail-management/internal/sale/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func productRows(id uint, stock int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
		AddRow(id, "Keyboard", 19.99, stock)
}

func TestCreateWithItems(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormSaleRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "sales"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id" = \$1`).
		WillReturnRows(productRows(10, 10))
	mock.ExpectExec(`UPDATE "products" SET "stock"=\$1 WHERE id = \$2`).
		WithArgs(7, uint(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "sale_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	sale := &domain.Sale{ClientID: 1, EmployeeID: 2, TotalAmount: 59.97, Status: domain.StatusPending}
	created, err := repo.CreateWithItems(sale, []domain.SaleItem{
		{ProductID: 10, Quantity: 3, Price: 19.99},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), created.ID)
	require.Len(t, created.Items, 1)
	assert.Equal(t, uint(1), created.Items[0].SaleID)
	assert.Equal(t, 7, created.Items[0].Product.Stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure halfway through the items must leave nothing behind: the
// header insert and the first item's stock decrement roll back with it.
func TestCreateWithItemsRollsBackOnItemFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormSaleRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "sales"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	// First item goes through in full.
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id" = \$1`).
		WillReturnRows(productRows(10, 10))
	mock.ExpectExec(`UPDATE "products" SET "stock"=\$1 WHERE id = \$2`).
		WithArgs(8, uint(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "sale_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	// Second item's product read fails mid-transaction.
	readErr := errors.New("connection reset")
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id" = \$1`).
		WillReturnError(readErr)
	mock.ExpectRollback()

	sale := &domain.Sale{ClientID: 1, EmployeeID: 2, TotalAmount: 100, Status: domain.StatusPending}
	created, err := repo.CreateWithItems(sale, []domain.SaleItem{
		{ProductID: 10, Quantity: 2, Price: 25},
		{ProductID: 20, Quantity: 8, Price: 6.25},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Nil(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithItemsRollsBackOnHeaderFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormSaleRepository(db)

	insertErr := errors.New("duplicate key value")
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "sales"`).WillReturnError(insertErr)
	mock.ExpectRollback()

	sale := &domain.Sale{ClientID: 1, EmployeeID: 2, TotalAmount: 10, Status: domain.StatusPending}
	created, err := repo.CreateWithItems(sale, []domain.SaleItem{
		{ProductID: 10, Quantity: 1, Price: 10},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, insertErr)
	assert.Nil(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}
