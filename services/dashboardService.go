package services

import (
	"AgendaDental/models"
	"AgendaDental/repositories"
	"context"
	"fmt"
)

type DashboardService interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	StoreInfo(ctx context.Context) (*models.StoreInfo, error)
}

type dashboardService struct {
	statsRepo repositories.StatsRepository
}

func NewDashboardService(statsRepo repositories.StatsRepository) DashboardService {
	return &dashboardService{statsRepo: statsRepo}
}

// Dashboard computes the three admin figures. The queries are independent
// and share no transaction; writes landing between them can make the numbers
// reflect different instants.
func (s *dashboardService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	todayCount, err := s.statsRepo.TodayCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	todayRevenue, err := s.statsRepo.TodayRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	noShows, err := s.statsRepo.NoShows30d(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	return &models.DashboardStats{
		TodayCount:   todayCount,
		TodayRevenue: todayRevenue,
		NoShows30d:   noShows,
	}, nil
}

func (s *dashboardService) StoreInfo(ctx context.Context) (*models.StoreInfo, error) {
	return s.statsRepo.StoreCounts(ctx)
}
