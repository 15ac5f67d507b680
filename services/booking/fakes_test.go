package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	bookingRepo "fieldbook/database/repository/booking"
	"fieldbook/models"
)

// fakeBookingRepo is an in-memory BookingRepository. Its guarded writes
// enforce the same overlap predicate the Mongo implementation checks inside
// a transaction.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) hasOverlap(fieldID string, start, end time.Time, excludeID string) bool {
	for _, b := range r.bookings {
		if b.FieldID != fieldID || !b.IsActive() {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if b.StartAt.Before(end) && b.EndAt.After(start) {
			return true
		}
	}
	return false
}

func (r *fakeBookingRepo) Insert(_ context.Context, b *models.Booking) error {
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) InsertIfFree(ctx context.Context, b *models.Booking) error {
	if r.hasOverlap(b.FieldID, b.StartAt, b.EndAt, "") {
		return bookingRepo.ErrSlotTaken
	}
	return r.Insert(ctx, b)
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) List(_ context.Context, q models.BookingQuery) ([]models.Booking, error) {
	q.Normalize()

	var out []models.Booking
	for _, b := range r.bookings {
		if q.UserID != "" && b.UserID != q.UserID {
			continue
		}
		if q.FieldID != "" && b.FieldID != q.FieldID {
			continue
		}
		if q.Status != "" && b.Status != q.Status {
			continue
		}
		if q.StartDate != nil && b.StartAt.Before(*q.StartDate) {
			continue
		}
		if q.EndDate != nil && b.EndAt.After(*q.EndDate) {
			continue
		}
		out = append(out, *b)
	}

	sort.Slice(out, func(i, j int) bool {
		var less bool
		switch q.SortedBy {
		case "start_at":
			less = out[i].StartAt.Before(out[j].StartAt)
		case "end_at":
			less = out[i].EndAt.Before(out[j].EndAt)
		case "status":
			less = out[i].Status < out[j].Status
		case "id":
			less = out[i].ID < out[j].ID
		default:
			less = out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if q.SortedDirection == models.SortDesc {
			return !less
		}
		return less
	})

	offset := (q.Page - 1) * q.Limit
	if offset >= len(out) {
		return nil, nil
	}
	end := offset + q.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (r *fakeBookingRepo) ActiveByField(_ context.Context, fieldID, excludeID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.FieldID != fieldID || !b.IsActive() {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) Replace(_ context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return fmt.Errorf("booking %s not found for update", b.ID)
	}
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) ReplaceIfFree(ctx context.Context, b *models.Booking) error {
	if r.hasOverlap(b.FieldID, b.StartAt, b.EndAt, b.ID) {
		return bookingRepo.ErrSlotTaken
	}
	return r.Replace(ctx, b)
}

func (r *fakeBookingRepo) SetStatus(_ context.Context, id, status string, at time.Time) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found for status update", id)
	}
	b.Status = status
	b.UpdatedAt = at
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("booking %s not found for delete", id)
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) CompleteExpired(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.IsActive() && b.EndAt.Before(now) {
			b.Status = models.BookingStatusCompleted
			b.UpdatedAt = now
			count++
		}
	}
	return count, nil
}

// fakeUserRepo is an in-memory identity directory.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, id := range ids {
		r.users[id] = &models.User{ID: id, FirstName: "Test", LastName: id, Email: id + "@example.com"}
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Insert(_ context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

// fakeFieldRepo is an in-memory facility directory.
type fakeFieldRepo struct {
	fields map[string]*models.Field
}

func newFakeFieldRepo(ids ...string) *fakeFieldRepo {
	r := &fakeFieldRepo{fields: make(map[string]*models.Field)}
	for _, id := range ids {
		r.fields[id] = &models.Field{ID: id, Name: "Field " + id, Price: 50, Status: models.FieldStatusAvailable}
	}
	return r
}

func (r *fakeFieldRepo) GetByID(_ context.Context, id string) (*models.Field, error) {
	f, ok := r.fields[id]
	if !ok {
		return nil, nil
	}
	return f, nil
}

func (r *fakeFieldRepo) GetByName(_ context.Context, complexID, name string) (*models.Field, error) {
	for _, f := range r.fields {
		if f.ComplexID == complexID && f.Name == name {
			return f, nil
		}
	}
	return nil, nil
}

func (r *fakeFieldRepo) Insert(_ context.Context, f *models.Field) error {
	r.fields[f.ID] = f
	return nil
}

func (r *fakeFieldRepo) List(_ context.Context, _ models.FieldQuery) ([]models.Field, error) {
	var out []models.Field
	for _, f := range r.fields {
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeFieldRepo) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	f, ok := r.fields[id]
	if !ok {
		return fmt.Errorf("field %s not found for update", id)
	}
	if name, ok := fields["name"].(string); ok {
		f.Name = name
	}
	if price, ok := fields["price"].(float64); ok {
		f.Price = price
	}
	if status, ok := fields["status"].(string); ok {
		f.Status = status
	}
	return nil
}

func (r *fakeFieldRepo) Delete(_ context.Context, id string) error {
	delete(r.fields, id)
	return nil
}
