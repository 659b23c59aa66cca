package userControllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	userControllers "github.com/nurshapagat1/electronix-app/controllers/user"
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

func profileRouter(db *gorm.DB, userID interface{}) *gin.Engine {
	r := gin.New()
	r.GET("/store/profile", func(c *gin.Context) {
		if userID != nil {
			c.Set("user_id", userID)
		}
		c.Next()
	}, userControllers.GetProfile(db))
	return r
}

func TestGetProfileRejectsNonStringUserID(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	// A malformed user_id claim must be refused, not dereferenced
	r := profileRouter(gormDB, 12345)

	req := httptest.NewRequest(http.MethodGet, "/store/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileRejectsMissingUserID(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	r := profileRouter(gormDB, nil)

	req := httptest.NewRequest(http.MethodGet, "/store/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
