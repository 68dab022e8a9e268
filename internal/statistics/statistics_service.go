package statistics

import (
	"context"

	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/user"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=statistics_service.go -destination=mock/statistics_service_mock.go -package=mock
type Service interface {
	UserStatistics(ctx context.Context) (UserStatisticsResponse, error)
	DepartmentStats(ctx context.Context) ([]DepartmentStatsResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("statistics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("statistics.service")
	}
	return &service{repo: repo, logger: l}
}

// UserStatistics reports the status partition of all users plus the head
// count of every department. The total is the sum of the partition.
func (s *service) UserStatistics(ctx context.Context) (UserStatisticsResponse, error) {
	var (
		counts []StatusCount
		depts  []DepartmentRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.repo.CountByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		depts, err = s.repo.DepartmentBreakdown(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("user statistics failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return UserStatisticsResponse{}, err
	}

	resp := UserStatisticsResponse{
		DepartmentBreakdown: make([]DepartmentUserCount, len(depts)),
	}
	for _, c := range counts {
		switch user.Status(c.Status) {
		case user.StatusActive:
			resp.ActiveUsers = c.Count
		case user.StatusInactive:
			resp.InactiveUsers = c.Count
		case user.StatusOnLeave:
			resp.OnLeaveUsers = c.Count
		default:
			s.logger.Warn("user statistics skipped unknown status",
				zap.String("status", c.Status),
				zap.Int64("count", c.Count),
			)
			continue
		}
		resp.TotalUsers += c.Count
	}
	for i, d := range depts {
		resp.DepartmentBreakdown[i] = DepartmentUserCount{
			ID:        d.ID.String(),
			Name:      d.Name,
			UserCount: d.TotalUsers,
		}
	}
	return resp, nil
}

func (s *service) DepartmentStats(ctx context.Context) ([]DepartmentStatsResponse, error) {
	rows, err := s.repo.DepartmentBreakdown(ctx)
	if err != nil {
		s.logger.Error("department statistics failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	res := make([]DepartmentStatsResponse, len(rows))
	for i, r := range rows {
		res[i] = DepartmentStatsResponse{
			ID:            r.ID.String(),
			Name:          r.Name,
			TotalUsers:    r.TotalUsers,
			ActiveUsers:   r.ActiveUsers,
			InactiveUsers: r.InactiveUsers,
			OnLeaveUsers:  r.OnLeaveUsers,
		}
	}
	return res, nil
}
