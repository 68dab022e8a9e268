package statistics_test

import (
	"context"
	"testing"

	"go-hrm/internal/department"
	"go-hrm/internal/statistics"
	"go-hrm/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStatistics_StoreBacked(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:statistics_repo_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&department.Department{}, &user.User{}))

	ctx := context.Background()
	sqlDB, err := db.DB()
	require.NoError(t, err)

	deptSvc := department.NewService(sqlDB, department.NewRepository(db))
	userSvc := user.NewService(sqlDB, user.NewRepository(db))
	svc := statistics.NewService(statistics.NewRepository(db))

	eng, err := deptSvc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)
	_, err = deptSvc.Create(ctx, department.CreateDepartmentRequest{Name: "Sales"})
	require.NoError(t, err)

	_, err = userSvc.Create(ctx, user.CreateUserRequest{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		DepartmentID: eng.ID,
		Status:       "active",
	})
	require.NoError(t, err)

	t.Run("department stats after one active hire", func(t *testing.T) {
		got, err := svc.DepartmentStats(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "Engineering", got[0].Name)
		assert.Equal(t, int64(1), got[0].TotalUsers)
		assert.Equal(t, int64(1), got[0].ActiveUsers)
		assert.Equal(t, int64(0), got[0].InactiveUsers)
		assert.Equal(t, int64(0), got[0].OnLeaveUsers)

		assert.Equal(t, "Sales", got[1].Name)
		assert.Equal(t, int64(0), got[1].TotalUsers)
	})

	t.Run("global statistics", func(t *testing.T) {
		_, err := userSvc.Create(ctx, user.CreateUserRequest{
			FirstName: "Alan",
			LastName:  "Turing",
			Email:     "alan@example.com",
			Status:    "on_leave",
		})
		require.NoError(t, err)

		got, err := svc.UserStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.TotalUsers)
		assert.Equal(t, int64(1), got.ActiveUsers)
		assert.Equal(t, int64(1), got.OnLeaveUsers)
		require.Len(t, got.DepartmentBreakdown, 2)
		assert.Equal(t, int64(1), got.DepartmentBreakdown[0].UserCount)
	})

	t.Run("status change moves the partition", func(t *testing.T) {
		users, err := userSvc.GetAll(ctx, user.ListFilter{DepartmentID: eng.ID})
		require.NoError(t, err)
		require.Len(t, users, 1)

		_, err = userSvc.ChangeStatus(ctx, users[0].ID, "inactive")
		require.NoError(t, err)

		got, err := svc.DepartmentStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got[0].ActiveUsers)
		assert.Equal(t, int64(1), got[0].InactiveUsers)
	})

	t.Run("deleting a department keeps its users", func(t *testing.T) {
		require.NoError(t, deptSvc.Delete(ctx, eng.ID))

		got, err := svc.UserStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.TotalUsers)
		require.Len(t, got.DepartmentBreakdown, 1)
		assert.Equal(t, "Sales", got.DepartmentBreakdown[0].Name)
	})
}
