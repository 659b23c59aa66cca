package cartControllers_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	cartControllers "github.com/nurshapagat1/electronix-app/controllers/cart"
	"github.com/nurshapagat1/electronix-app/models"
)

func TestCheckoutWithoutCartOrder(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	order, err := cartControllers.Checkout(gormDB, 3)
	assert.ErrorIs(t, err, cartControllers.ErrEmptyCart)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckoutWithEmptyCart(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	// A cart order exists but carries no lines; nothing is written
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRow(7, 3, models.OrderStatusCart, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id"}))

	order, err := cartControllers.Checkout(gormDB, 3)
	assert.ErrorIs(t, err, cartControllers.ErrEmptyCart)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckoutSuccess(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRow(7, 3, models.OrderStatusCart, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(11, 7, 5, 3, 100.0))

	// Status flip is guarded on status = cart
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Reload of the now-pending order
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "status", "total_price", "order_ref"}).
			AddRow(7, 3, string(models.OrderStatusPending), 300.0, "20250101000000-ref"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(11, 7, 5, 3, 100.0))

	order, err := cartControllers.Checkout(gormDB, 3)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 300.0, order.TotalPrice)
	assert.NotEmpty(t, order.OrderRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckoutDoubleSubmit(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRow(7, 3, models.OrderStatusCart, 300))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(11, 7, 5, 3, 100.0))

	// A concurrent checkout already advanced the order; the guard matches
	// zero rows and the second submit loses
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	order, err := cartControllers.Checkout(gormDB, 3)
	assert.ErrorIs(t, err, cartControllers.ErrEmptyCart)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}
