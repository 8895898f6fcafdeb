package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/SlotBookingService/internal/domain"
)

type fakeVenueRepo struct {
	venues []*domain.Venue
	err    error
}

func (r *fakeVenueRepo) ListAll(ctx context.Context) ([]*domain.Venue, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.venues, nil
}

type fakeSlotRepo struct {
	dates []domain.SlotDate
	err   error
}

func (r *fakeSlotRepo) ListDates(ctx context.Context) ([]domain.SlotDate, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.dates, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetVenues(t *testing.T) {
	venues := &fakeVenueRepo{venues: []*domain.Venue{
		{ID: "venue-1", Name: "Venue A"},
		{ID: "venue-2", Name: "Venue B"},
		{ID: "venue-3", Name: "Venue C"},
	}}
	svc := NewService(venues, &fakeSlotRepo{}, nopLogger{})

	result, err := svc.GetVenues(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "venue-1", result[0].ID)
	assert.Equal(t, "Venue A", result[0].Name)
	assert.Equal(t, "Venue C", result[2].Name)
}

func TestGetVenues_Empty(t *testing.T) {
	svc := NewService(&fakeVenueRepo{}, &fakeSlotRepo{}, nopLogger{})

	result, err := svc.GetVenues(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetVenues_RepositoryError(t *testing.T) {
	venues := &fakeVenueRepo{err: errors.New("connection refused")}
	svc := NewService(venues, &fakeSlotRepo{}, nopLogger{})

	_, err := svc.GetVenues(context.Background())
	require.ErrorIs(t, err, ErrInternal)
}

func TestGetSports(t *testing.T) {
	svc := NewService(&fakeVenueRepo{}, &fakeSlotRepo{}, nopLogger{})

	result, err := svc.GetSports(context.Background())

	require.NoError(t, err)
	require.Len(t, result, len(domain.Sports))

	// список статический и стабильный между вызовами
	again, err := svc.GetSports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, result, again)

	assert.Equal(t, "sport-1", result[0].ID)
	assert.Equal(t, "Tennis", result[0].Name)
	for _, sport := range result {
		assert.NotEmpty(t, sport.ID)
		assert.NotEmpty(t, sport.Name)
	}
}

func TestGetDates(t *testing.T) {
	slots := &fakeSlotRepo{dates: []domain.SlotDate{
		{Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}, // воскресенье
		{Date: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)}, // понедельник
	}}
	svc := NewService(&fakeVenueRepo{}, slots, nopLogger{})

	result, err := svc.GetDates(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "2025-06-15", result[0].Date)
	assert.Equal(t, "Sunday", result[0].Day)
	assert.Equal(t, "2025-06-16", result[1].Date)
	assert.Equal(t, "Monday", result[1].Day)
}

func TestGetDates_RepositoryError(t *testing.T) {
	slots := &fakeSlotRepo{err: errors.New("connection refused")}
	svc := NewService(&fakeVenueRepo{}, slots, nopLogger{})

	_, err := svc.GetDates(context.Background())
	require.ErrorIs(t, err, ErrInternal)
}
