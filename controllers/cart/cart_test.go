package cartControllers_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	cartControllers "github.com/nurshapagat1/electronix-app/controllers/cart"
	"github.com/nurshapagat1/electronix-app/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func productRow(id uint, price float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "price", "stock", "is_active"}).
		AddRow(id, "Test product", price, 10, true)
}

func orderRow(id, customerID uint, status models.OrderStatus, total float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_id", "status", "total_price", "order_ref"}).
		AddRow(id, customerID, string(status), total, "")
}

func TestAddToCartNewItem(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	// Active product lookup
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(productRow(5, 100))

	mock.ExpectBegin()
	// Cart order get-or-create: no-op insert, then read back
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRow(7, 3, models.OrderStatusCart, 0))
	// Line upsert: an existing line must gain quantity instead of
	// duplicating
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_products"`) + `.*` +
		regexp.QuoteMeta(`ON CONFLICT ("order_id","product_id") DO UPDATE SET "quantity"=order_products.quantity + 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	// Total recalculation
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(11, 7, 5, 1, 100.0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Reload with lines
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRow(7, 3, models.OrderStatusCart, 100))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(11, 7, 5, 1, 100.0))

	order, err := cartControllers.AddToCart(gormDB, 3, 5)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), order.ID)
	assert.Equal(t, 100.0, order.TotalPrice)
	assert.Len(t, order.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddToCartRepeatAddMergesIntoOneLine(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(productRow(5, 100))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRow(7, 3, models.OrderStatusCart, 100))
	// The product already has a line: the conflict clause turns this
	// insert into a quantity bump on the existing row
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_products"`) + `.*` +
		regexp.QuoteMeta(`ON CONFLICT ("order_id","product_id") DO UPDATE SET "quantity"=order_products.quantity + 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(11, 7, 5, 2, 100.0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRow(7, 3, models.OrderStatusCart, 200))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(11, 7, 5, 2, 100.0))

	order, err := cartControllers.AddToCart(gormDB, 3, 5)
	assert.NoError(t, err)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 200.0, order.TotalPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddToCartProductMissing(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	// Inactive and missing products look identical to the caller
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	order, err := cartControllers.AddToCart(gormDB, 3, 99)
	assert.ErrorIs(t, err, cartControllers.ErrProductNotFound)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustCartItemInvalidAction(t *testing.T) {
	gormDB, _ := setupMockDB(t)

	err := cartControllers.AdjustCartItem(gormDB, 3, 5, "double")
	assert.ErrorIs(t, err, cartControllers.ErrInvalidAction)
}

func TestAdjustCartItemSubtractLastLineDeletesOrder(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(productRow(5, 100))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRow(7, 3, models.OrderStatusCart, 100))
	// Quantity-1 line: subtract deletes it
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(11, 7, 5, 1, 100.0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "order_products"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// No lines left: the cart order goes too
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := cartControllers.AdjustCartItem(gormDB, 3, 5, cartControllers.ActionSubtract)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustCartItemAddIncrementsQuantity(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
		WillReturnRows(productRow(5, 100))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRow(7, 3, models.OrderStatusCart, 200))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(11, 7, 5, 2, 100.0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "order_products"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price"}).
			AddRow(11, 7, 5, 3, 100.0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := cartControllers.AdjustCartItem(gormDB, 3, 5, cartControllers.ActionAdd)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveCartItemForeignLine(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRow(7, 3, models.OrderStatusCart, 100))
	// Delete is scoped to the caller's order, so another customer's line
	// matches nothing
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "order_products"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := cartControllers.RemoveCartItem(gormDB, 3, 42)
	assert.ErrorIs(t, err, cartControllers.ErrItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearCartWithoutCart(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := cartControllers.ClearCart(gormDB, 3)
	assert.ErrorIs(t, err, cartControllers.ErrEmptyCart)
	assert.NoError(t, mock.ExpectationsWereMet())
}
