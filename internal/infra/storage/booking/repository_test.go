package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/SlotBookingService/internal/domain"
)

var testCreatedAt = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings \(id,user_name,sport,slot_id\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING created_at$`).
		WithArgs(sqlmock.AnyArg(), "Alice", "Tennis", "slot-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(testCreatedAt))

	booking, err := repo.Create(context.Background(), domain.NewBooking("slot-1", "Alice", "Tennis"))

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "ID must be generated when absent")
	assert.Equal(t, testCreatedAt, booking.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_KeepsProvidedID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs("booking-1", "Alice", "Tennis", "slot-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(testCreatedAt))

	b := domain.NewBooking("slot-1", "Alice", "Tennis")
	b.ID = "booking-1"

	booking, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, "booking-1", booking.ID)
}

// Нарушение уникальности slot_id - второй страховочный уровень против
// двойного бронирования на уровне схемы.
func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(sqlmock.AnyArg(), "Bob", "Chess", "slot-1").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_slot_id_key"})

	_, err := repo.Create(context.Background(), domain.NewBooking("slot-1", "Bob", "Chess"))
	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(sqlmock.AnyArg(), "Alice", "Tennis", "slot-1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), domain.NewBooking("slot-1", "Alice", "Tennis"))
	require.ErrorIs(t, err, ErrExecQuery)
}

func TestGetBySlotID(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "user_name", "sport", "slot_id", "created_at"}).
		AddRow("booking-1", "Alice", "Tennis", "slot-1", testCreatedAt)

	mock.ExpectQuery(`SELECT id, user_name, sport, slot_id, created_at FROM bookings WHERE slot_id = \$1$`).
		WithArgs("slot-1").
		WillReturnRows(rows)

	booking, err := repo.GetBySlotID(context.Background(), "slot-1")

	require.NoError(t, err)
	assert.Equal(t, "booking-1", booking.ID)
	assert.Equal(t, "Alice", booking.UserName)
	assert.Equal(t, "slot-1", booking.SlotID)
}

func TestGetBySlotID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings`).
		WithArgs("free-slot").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBySlotID(context.Background(), "free-slot")
	require.ErrorIs(t, err, ErrBookingNotFound)
}
