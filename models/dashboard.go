package models

import "time"

// DashboardStats aggregates booking activity for the reporting surface.
type DashboardStats struct {
	WeekRevenue     float64 `json:"weekRevenue"`
	LastWeekRevenue float64 `json:"lastWeekRevenue"`
	RevenueChange   float64 `json:"revenueChange"` // percent vs last week
	TodayBookings   int64   `json:"todayBookings"`
	YesterdayCount  int64   `json:"yesterdayBookings"`
	BookingsChange  float64 `json:"bookingsChange"` // percent vs yesterday
	ActiveBookings  int64   `json:"activeBookings"`
	TotalFields     int64   `json:"totalFields"`
	OccupancyRate   float64 `json:"occupancyRate"` // percent of today's slot capacity
}

// UpcomingBooking is a dashboard row: a future active booking with the
// display attributes the UI needs.
type UpcomingBooking struct {
	BookingID string    `json:"bookingId"`
	FieldID   string    `json:"fieldId"`
	FieldName string    `json:"fieldName"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	Status    string    `json:"status"`
}

// NotifyPayload is the task payload enqueued for the notification worker.
type NotifyPayload struct {
	Event     string    `json:"event"` // "created" | "cancelled"
	BookingID string    `json:"bookingId"`
	UserID    string    `json:"userId"`
	FieldID   string    `json:"fieldId"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
}
