package dashboard

import (
	"context"
	"encoding/json"
	"time"

	dashboardRepo "fieldbook/database/repository/dashboard"
	"fieldbook/models"
	"fieldbook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const statsCacheKey = "dashboard:stats"
const statsCacheTTL = 30 * time.Second

// Assumed bookable window per field per day, for occupancy.
const slotsPerFieldPerDay = 16

// DashboardService is the reporting collaborator: read-only aggregates over
// booking records.
type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	Upcoming(ctx context.Context, limit int64) ([]models.UpcomingBooking, error)
}

// DefaultDashboardService is the production implementation of DashboardService.
type DefaultDashboardService struct {
	Repo  dashboardRepo.DashboardRepository
	Cache *redis.Client

	// Now is the clock; overridable in tests. Defaults to time.Now UTC.
	Now func() time.Time
}

func (s *DefaultDashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Stats assembles the dashboard counters. Results are cached briefly since
// every aggregation rescans the bookings collection.
func (s *DefaultDashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats models.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	now := s.now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfYesterday := startOfToday.AddDate(0, 0, -1)
	startOfWeek := startOfToday.AddDate(0, 0, -7)
	startOfLastWeek := startOfWeek.AddDate(0, 0, -7)

	weekRevenue, err := s.Repo.RevenueBetween(ctx, startOfWeek, now)
	if err != nil {
		return nil, err
	}
	lastWeekRevenue, err := s.Repo.RevenueBetween(ctx, startOfLastWeek, startOfWeek)
	if err != nil {
		return nil, err
	}

	todayCount, err := s.Repo.CountStartingBetween(ctx, startOfToday, startOfToday.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	yesterdayCount, err := s.Repo.CountStartingBetween(ctx, startOfYesterday, startOfToday)
	if err != nil {
		return nil, err
	}

	activeCount, err := s.Repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalFields, err := s.Repo.CountFields(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		WeekRevenue:     weekRevenue,
		LastWeekRevenue: lastWeekRevenue,
		TodayBookings:   todayCount,
		YesterdayCount:  yesterdayCount,
		ActiveBookings:  activeCount,
		TotalFields:     totalFields,
	}
	if lastWeekRevenue > 0 {
		stats.RevenueChange = (weekRevenue - lastWeekRevenue) / lastWeekRevenue * 100
	}
	if yesterdayCount > 0 {
		stats.BookingsChange = float64(todayCount-yesterdayCount) / float64(yesterdayCount) * 100
	}
	if totalSlots := totalFields * slotsPerFieldPerDay; totalSlots > 0 {
		stats.OccupancyRate = float64(todayCount) / float64(totalSlots) * 100
	}

	if s.Cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, statsCacheKey, data, statsCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache dashboard stats", zap.Error(err))
			}
		}
	}

	return stats, nil
}

// Upcoming lists the next active bookings across all fields.
func (s *DefaultDashboardService) Upcoming(ctx context.Context, limit int64) ([]models.UpcomingBooking, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.Repo.Upcoming(ctx, s.now(), limit)
}
