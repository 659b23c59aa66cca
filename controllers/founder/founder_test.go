package founderControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	founderControllers "github.com/nurshapagat1/electronix-app/controllers/founder"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestGetAboutPageCountsOnlyLiveRows(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	// Only active founders are listed
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "founder_infos" WHERE is_active = $1`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "position", "is_active"}).
			AddRow(1, "Shapagat Nur", "Founder & CEO", true))

	// Inactive products, cart orders, and unapproved reviews stay out of
	// the aggregates
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products" WHERE is_active = $1`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "orders" WHERE status IN ($1,$2,$3)`)).
		WithArgs("processing", "shipped", "completed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "reviews" WHERE is_approved = $1`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	r := gin.New()
	r.GET("/store/about", founderControllers.GetAboutPage(gormDB))

	req := httptest.NewRequest(http.MethodGet, "/store/about", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TotalProducts int64 `json:"total_products"`
		TotalOrders   int64 `json:"total_orders"`
		TotalReviews  int64 `json:"total_reviews"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.TotalProducts)
	assert.Equal(t, int64(7), body.TotalOrders)
	assert.Equal(t, int64(9), body.TotalReviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}
