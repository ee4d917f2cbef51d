package sql

import (
	"context"
	"errors"
	"regexp"
	"safetytips/internal/entity"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepository(t *testing.T) (*GormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewGormRepository(db), mock
}

func TestNilRepositoryReportsNotInitialised(t *testing.T) {
	var repo *GormRepository
	ctx := context.Background()

	require.Error(t, repo.CreateUser(ctx, &entity.User{}))
	_, err := repo.ListUsers(ctx)
	require.Error(t, err)
	_, err = repo.SearchTips(ctx, "")
	require.Error(t, err)
	_, err = repo.ListActivities(ctx)
	require.Error(t, err)
	require.Error(t, repo.Transaction(ctx, func(*GormRepository) error { return nil }))
	require.Nil(t, repo.DB())
}

func TestCountTipsPropagatesStoreFailure(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `tips`").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.CountTips(context.Background())
	require.EqualError(t, err, "disk I/O error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchTipsLowersBothSidesInSQL(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"tip_id", "title", "content", "created_at"}).
		AddRow(2, "Home Fire Safety", "Keep an extinguisher.", now).
		AddRow(1, "Fire Safety", "Install smoke alarms.", now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `tips` WHERE LOWER(title) LIKE LOWER(?) ORDER BY created_at DESC, tip_id DESC")).
		WithArgs("%FiRe%").
		WillReturnRows(rows)

	tips, err := repo.SearchTips(context.Background(), "FiRe")
	require.NoError(t, err)
	require.Len(t, tips, 2)
	require.Equal(t, uint(2), tips[0].TipID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserMissingRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `activities`").WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `users`").WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteUser(context.Background(), 7)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserFailureRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `activities`").WithArgs(3).WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	err := repo.DeleteUser(context.Background(), 3)
	require.EqualError(t, err, "locked")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTipNoRowsIsNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	title := "Updated"
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `tips` SET `title`=\\? WHERE tip_id = \\?").
		WithArgs(title, 42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateTip(context.Background(), 42, entity.TipUpdates{Title: &title})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidIDsRejectedBeforeQuery(t *testing.T) {
	repo, mock := newMockRepository(t)
	ctx := context.Background()

	require.Error(t, repo.DeleteUser(ctx, 0))
	require.Error(t, repo.DeleteTip(ctx, 0))
	_, err := repo.GetTip(ctx, 0)
	require.Error(t, err)
	require.Error(t, repo.CreateActivity(ctx, &entity.Activity{Activity: "x"}))
	require.NoError(t, mock.ExpectationsWereMet())
}
