package reviewControllers_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	reviewControllers "github.com/nurshapagat1/electronix-app/controllers/review"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func reviewRow(id uint, likes int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_id", "title", "rating", "is_approved", "likes"}).
		AddRow(id, 3, "Great store", 5, true, likes)
}

func TestToggleReviewLikeFirstToggle(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reviews"`)).
		WillReturnRows(reviewRow(9, 0))

	mock.ExpectBegin()
	// No existing like row, so one is created
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "review_likes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "review_likes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	// Counter is rewritten as the exact row count
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "review_likes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "reviews"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, likes, err := reviewControllers.ToggleReviewLike(gormDB, 9, 3)
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleReviewLikeSecondToggle(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reviews"`)).
		WillReturnRows(reviewRow(9, 1))

	mock.ExpectBegin()
	// The pair already has a like row: toggling deletes it
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "review_likes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "review_id", "customer_id"}).
			AddRow(21, 9, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "review_likes"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "review_likes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "reviews"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, likes, err := reviewControllers.ToggleReviewLike(gormDB, 9, 3)
	assert.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleReviewLikeMissingReview(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reviews"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	liked, likes, err := reviewControllers.ToggleReviewLike(gormDB, 99, 3)
	assert.ErrorIs(t, err, reviewControllers.ErrReviewNotFound)
	assert.False(t, liked)
	assert.Equal(t, int64(0), likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
