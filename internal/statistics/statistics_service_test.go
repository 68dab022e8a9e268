package statistics_test

import (
	"context"
	"errors"
	"testing"

	"go-hrm/internal/statistics"
	statisticsMock "go-hrm/internal/statistics/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupServiceTest(t *testing.T) (statistics.Service, *statisticsMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := statisticsMock.NewMockRepository(ctrl)
	return statistics.NewService(repo), repo
}

func TestStatisticsService_UserStatistics(t *testing.T) {
	t.Run("total is the sum of the status partition", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		engID := uuid.New()

		repo.EXPECT().CountByStatus(gomock.Any()).Return([]statistics.StatusCount{
			{Status: "active", Count: 5},
			{Status: "inactive", Count: 2},
			{Status: "on_leave", Count: 1},
		}, nil)
		repo.EXPECT().DepartmentBreakdown(gomock.Any()).Return([]statistics.DepartmentRow{
			{ID: engID, Name: "Engineering", TotalUsers: 6, ActiveUsers: 4},
			{ID: uuid.New(), Name: "Sales"},
		}, nil)

		got, err := svc.UserStatistics(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(8), got.TotalUsers)
		assert.Equal(t, int64(5), got.ActiveUsers)
		assert.Equal(t, int64(2), got.InactiveUsers)
		assert.Equal(t, int64(1), got.OnLeaveUsers)
		assert.Equal(t, got.TotalUsers, got.ActiveUsers+got.InactiveUsers+got.OnLeaveUsers)
		assert.Len(t, got.DepartmentBreakdown, 2)
		assert.Equal(t, engID.String(), got.DepartmentBreakdown[0].ID)
		assert.Equal(t, int64(6), got.DepartmentBreakdown[0].UserCount)
		assert.Equal(t, int64(0), got.DepartmentBreakdown[1].UserCount)
	})

	t.Run("empty store", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().CountByStatus(gomock.Any()).Return(nil, nil)
		repo.EXPECT().DepartmentBreakdown(gomock.Any()).Return(nil, nil)

		got, err := svc.UserStatistics(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, got.TotalUsers)
		assert.NotNil(t, got.DepartmentBreakdown)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		repo.EXPECT().CountByStatus(gomock.Any()).Return(nil, errors.New("db down"))
		repo.EXPECT().DepartmentBreakdown(gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := svc.UserStatistics(context.Background())

		assert.Error(t, err)
	})
}

func TestStatisticsService_DepartmentStats(t *testing.T) {
	svc, repo := setupServiceTest(t)

	repo.EXPECT().DepartmentBreakdown(gomock.Any()).Return([]statistics.DepartmentRow{
		{ID: uuid.New(), Name: "Engineering", TotalUsers: 3, ActiveUsers: 1, InactiveUsers: 1, OnLeaveUsers: 1},
	}, nil)

	got, err := svc.DepartmentStats(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].TotalUsers)
	assert.Equal(t, int64(1), got[0].OnLeaveUsers)
}
