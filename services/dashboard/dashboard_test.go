package dashboard

import (
	"context"
	"testing"
	"time"

	"fieldbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	revenueByWindow map[time.Time]float64 // keyed by window start
	countByWindow   map[time.Time]int64
	active          int64
	fields          int64
	upcoming        []models.UpcomingBooking
}

func (r *fakeDashboardRepo) RevenueBetween(_ context.Context, from, _ time.Time) (float64, error) {
	return r.revenueByWindow[from], nil
}

func (r *fakeDashboardRepo) CountStartingBetween(_ context.Context, from, _ time.Time) (int64, error) {
	return r.countByWindow[from], nil
}

func (r *fakeDashboardRepo) CountActive(_ context.Context) (int64, error) {
	return r.active, nil
}

func (r *fakeDashboardRepo) CountFields(_ context.Context) (int64, error) {
	return r.fields, nil
}

func (r *fakeDashboardRepo) Upcoming(_ context.Context, _ time.Time, _ int64) ([]models.UpcomingBooking, error) {
	return r.upcoming, nil
}

func TestDashboardStats(t *testing.T) {
	now := time.Date(2025, 12, 21, 15, 30, 0, 0, time.UTC)
	startOfToday := time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC)
	startOfYesterday := startOfToday.AddDate(0, 0, -1)
	startOfWeek := startOfToday.AddDate(0, 0, -7)
	startOfLastWeek := startOfWeek.AddDate(0, 0, -7)

	repo := &fakeDashboardRepo{
		revenueByWindow: map[time.Time]float64{
			startOfWeek:     300,
			startOfLastWeek: 200,
		},
		countByWindow: map[time.Time]int64{
			startOfToday:     8,
			startOfYesterday: 4,
		},
		active: 12,
		fields: 2,
	}

	svc := &DefaultDashboardService{
		Repo: repo,
		Now:  func() time.Time { return now },
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 300.0, stats.WeekRevenue)
	assert.Equal(t, 200.0, stats.LastWeekRevenue)
	assert.InDelta(t, 50.0, stats.RevenueChange, 0.001)
	assert.Equal(t, int64(8), stats.TodayBookings)
	assert.InDelta(t, 100.0, stats.BookingsChange, 0.001)
	assert.Equal(t, int64(12), stats.ActiveBookings)
	assert.Equal(t, int64(2), stats.TotalFields)
	// 8 bookings across 2 fields * 16 slots = 25%.
	assert.InDelta(t, 25.0, stats.OccupancyRate, 0.001)
}

func TestDashboardStatsZeroBaselines(t *testing.T) {
	repo := &fakeDashboardRepo{
		revenueByWindow: map[time.Time]float64{},
		countByWindow:   map[time.Time]int64{},
	}
	svc := &DefaultDashboardService{Repo: repo}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	// No divide-by-zero: change percentages stay at zero.
	assert.Zero(t, stats.RevenueChange)
	assert.Zero(t, stats.BookingsChange)
	assert.Zero(t, stats.OccupancyRate)
}

func TestDashboardUpcomingDefaultsLimit(t *testing.T) {
	repo := &fakeDashboardRepo{
		upcoming: []models.UpcomingBooking{{BookingID: "b1"}},
	}
	svc := &DefaultDashboardService{Repo: repo}

	rows, err := svc.Upcoming(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "b1", rows[0].BookingID)
}
