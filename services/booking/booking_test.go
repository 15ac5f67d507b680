package booking

import (
	"context"
	"testing"
	"time"

	"fieldbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock fixed well before the test bookings on 2025-12-20.
var testNow = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

func newTestService() (*DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{
		Repo:      repo,
		UserRepo:  newFakeUserRepo("user-1", "user-2"),
		FieldRepo: newFakeFieldRepo("field-1", "field-2"),
		Now:       func() time.Time { return testNow },
	}
	return svc, repo
}

func TestCreateBooking(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateBookingInput{
		UserID:  "user-1",
		FieldID: "field-1",
		StartAt: ts(14, 0),
		EndAt:   ts(16, 0),
		Status:  models.BookingStatusPending,
	})
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	require.NotNil(t, b.User)
	assert.Equal(t, "user-1", b.User.ID)
	require.NotNil(t, b.Field)
	assert.Equal(t, "field-1", b.Field.ID)
}

func TestCreateBookingUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateBookingInput{
		UserID:  "ghost",
		FieldID: "field-1",
		StartAt: ts(14, 0),
		EndAt:   ts(16, 0),
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User", notFound.Resource)
}

func TestCreateBookingUnknownField(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateBookingInput{
		UserID:  "user-1",
		FieldID: "ghost",
		StartAt: ts(14, 0),
		EndAt:   ts(16, 0),
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Field", notFound.Resource)
}

func TestCreateBookingInvalidInterval(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateBookingInput{
		UserID:  "user-1",
		FieldID: "field-1",
		StartAt: ts(16, 0),
		EndAt:   ts(14, 0),
	})
	var invalid *InvalidIntervalError
	require.ErrorAs(t, err, &invalid)
}

func TestCreateBookingInThePast(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateBookingInput{
		UserID:  "user-1",
		FieldID: "field-1",
		StartAt: testNow.Add(-2 * time.Hour),
		EndAt:   testNow.Add(-1 * time.Hour),
	})
	var past *PastDateError
	require.ErrorAs(t, err, &past)
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.Create(context.Background(), CreateBookingInput{
		UserID:  "user-1",
		FieldID: "field-1",
		StartAt: ts(14, 0),
		EndAt:   ts(16, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b.Status)
}

func TestCreateBookingKeepsCallerStatus(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.Create(context.Background(), CreateBookingInput{
		UserID:  "user-1",
		FieldID: "field-1",
		StartAt: ts(14, 0),
		EndAt:   ts(16, 0),
		Status:  models.BookingStatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
}

func TestCreateBookingRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateBookingInput{
		UserID:  "user-1",
		FieldID: "field-1",
		StartAt: ts(14, 0),
		EndAt:   ts(16, 0),
		Status:  "tentative",
	})
	var badStatus *InvalidStatusError
	require.ErrorAs(t, err, &badStatus)
}

// A booking at [14:00,16:00) blocks an overlapping [15:00,17:00) request,
// while a boundary-touching [16:00,18:00) request on the same field succeeds.
func TestCreateBookingOverlapScenario(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateBookingInput{
		UserID:  "user-1",
		FieldID: "field-1",
		StartAt: ts(14, 0),
		EndAt:   ts(16, 0),
		Status:  models.BookingStatusPending,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateBookingInput{
		UserID:  "user-2",
		FieldID: "field-1",
		StartAt: ts(15, 0),
		EndAt:   ts(17, 0),
	})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "field-1", conflict.FieldID)

	c, err := svc.Create(ctx, CreateBookingInput{
		UserID:  "user-2",
		FieldID: "field-1",
		StartAt: ts(16, 0),
		EndAt:   ts(18, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, c.Status)
}

func TestCreateBookingOtherFieldDoesNotConflict(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-1", FieldID: "field-1", StartAt: ts(14, 0), EndAt: ts(16, 0),
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateBookingInput{
		UserID: "user-2", FieldID: "field-2", StartAt: ts(14, 0), EndAt: ts(16, 0),
	})
	require.NoError(t, err)
}

func TestCreateBookingCancelledSlotIsFree(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-1", FieldID: "field-1", StartAt: ts(14, 0), EndAt: ts(16, 0),
	})
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, a.ID)
	require.NoError(t, err)

	// The cancelled booking no longer occupies the timeline.
	_, err = svc.Create(ctx, CreateBookingInput{
		UserID: "user-2", FieldID: "field-1", StartAt: ts(14, 0), EndAt: ts(16, 0),
	})
	require.NoError(t, err)
}

func TestUpdateBookingNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), "ghost", UpdateBookingInput{})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Booking", notFound.Resource)
}

func TestUpdateBookingShiftWithinOwnWindow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-1", FieldID: "field-1", StartAt: ts(10, 0), EndAt: ts(12, 0),
	})
	require.NoError(t, err)

	// New window overlaps only the booking's own prior record.
	newStart, newEnd := ts(11, 0), ts(13, 0)
	updated, err := svc.Update(ctx, a.ID, UpdateBookingInput{StartAt: &newStart, EndAt: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, newStart, updated.StartAt)
	assert.Equal(t, newEnd, updated.EndAt)
}

func TestUpdateBookingConflictsWithOtherBooking(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-1", FieldID: "field-1", StartAt: ts(10, 0), EndAt: ts(12, 0),
	})
	require.NoError(t, err)

	b, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-2", FieldID: "field-1", StartAt: ts(14, 0), EndAt: ts(16, 0),
	})
	require.NoError(t, err)

	newStart := ts(11, 0)
	_, err = svc.Update(ctx, b.ID, UpdateBookingInput{StartAt: &newStart})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUpdateBookingInheritsPriorBounds(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-1", FieldID: "field-1", StartAt: ts(10, 0), EndAt: ts(12, 0),
	})
	require.NoError(t, err)

	// End before the inherited start is rejected.
	badEnd := ts(9, 0)
	_, err = svc.Update(ctx, a.ID, UpdateBookingInput{EndAt: &badEnd})
	var invalid *InvalidIntervalError
	require.ErrorAs(t, err, &invalid)

	// Extending only the end keeps the prior start.
	newEnd := ts(13, 0)
	updated, err := svc.Update(ctx, a.ID, UpdateBookingInput{EndAt: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, ts(10, 0), updated.StartAt)
	assert.Equal(t, newEnd, updated.EndAt)
}

func TestUpdateBookingUnknownReference(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-1", FieldID: "field-1", StartAt: ts(10, 0), EndAt: ts(12, 0),
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, a.ID, UpdateBookingInput{UserID: "ghost"})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User", notFound.Resource)

	_, err = svc.Update(ctx, a.ID, UpdateBookingInput{FieldID: "ghost"})
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Field", notFound.Resource)
}

func TestUpdateBookingMoveToOtherFieldChecksItsTimeline(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-1", FieldID: "field-2", StartAt: ts(10, 0), EndAt: ts(12, 0),
	})
	require.NoError(t, err)

	b, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-2", FieldID: "field-1", StartAt: ts(10, 0), EndAt: ts(12, 0),
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, b.ID, UpdateBookingInput{FieldID: "field-2"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestCancelBooking(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-1", FieldID: "field-1", StartAt: ts(10, 0), EndAt: ts(12, 0),
	})
	require.NoError(t, err)

	// Advance the clock so the cancel stamp is distinguishable from the
	// create stamp.
	cancelTime := testNow.Add(time.Minute)
	svc.Now = func() time.Time { return cancelTime }

	cancelled, err := svc.Cancel(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, cancelTime, cancelled.UpdatedAt)

	// The stored record carries the same clock stamp as the returned one.
	stored, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)
	assert.Equal(t, cancelTime, stored.UpdatedAt)
}

func TestCancelBookingTerminalStates(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-1", FieldID: "field-1", StartAt: ts(10, 0), EndAt: ts(12, 0),
	})
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, a.ID)
	require.NoError(t, err)

	// Cancelling twice fails.
	_, err = svc.Cancel(ctx, a.ID)
	var badTransition *InvalidTransitionError
	require.ErrorAs(t, err, &badTransition)
	assert.Equal(t, models.BookingStatusCancelled, badTransition.Status)

	// Completed bookings are terminal too.
	require.NoError(t, repo.SetStatus(ctx, a.ID, models.BookingStatusCompleted, testNow))
	_, err = svc.Cancel(ctx, a.ID)
	require.ErrorAs(t, err, &badTransition)
	assert.Equal(t, models.BookingStatusCompleted, badTransition.Status)
}

func TestCancelBookingNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Cancel(context.Background(), "ghost")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRemoveBooking(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-1", FieldID: "field-1", StartAt: ts(10, 0), EndAt: ts(12, 0),
	})
	require.NoError(t, err)

	// Hard delete works regardless of status.
	_, err = svc.Cancel(ctx, a.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, a.ID))

	_, err = svc.Get(ctx, a.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	err = svc.Remove(ctx, a.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestListBookingsFilterAndPagination(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for hour := 8; hour < 14; hour += 2 {
		_, err := svc.Create(ctx, CreateBookingInput{
			UserID:  "user-1",
			FieldID: "field-1",
			StartAt: ts(hour, 0),
			EndAt:   ts(hour+2, 0),
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, CreateBookingInput{
		UserID: "user-2", FieldID: "field-2", StartAt: ts(8, 0), EndAt: ts(10, 0),
	})
	require.NoError(t, err)

	q := models.BookingQuery{
		Page:            1,
		Limit:           2,
		SortedBy:        "start_at",
		SortedDirection: models.SortAsc,
		FieldID:         "field-1",
	}
	page1, err := svc.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, ts(8, 0), page1[0].StartAt)
	assert.Equal(t, ts(10, 0), page1[1].StartAt)
	require.NotNil(t, page1[0].User)
	require.NotNil(t, page1[0].Field)

	q.Page = 2
	page2, err := svc.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, ts(12, 0), page2[0].StartAt)

	byUser, err := svc.List(ctx, models.BookingQuery{UserID: "user-2"})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "field-2", byUser[0].FieldID)
}
