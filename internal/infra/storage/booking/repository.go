package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/playgrid/SlotBookingService/internal/domain"
	"github.com/playgrid/SlotBookingService/pkg/dbmetrics"
	"github.com/playgrid/SlotBookingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения unique constraint
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование. ID генерируется на стороне приложения,
// created_at назначает база.
//
// Вызывается только внутри транзакции бронирования, вместе с условным
// обновлением слота: обе записи либо фиксируются вместе, либо не фиксируются
// вовсе. Нарушение уникальности slot_id транслируется в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("id", "user_name", "sport", "slot_id").
		Values(booking.ID, booking.UserName, booking.Sport, booking.SlotID).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
		return nil, fmt.Errorf("%w: Create - slot_id=%s: %v", ErrSlotTaken, booking.SlotID, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetBySlotID получает бронирование по ID слота
func (r *Repository) GetBySlotID(ctx context.Context, slotID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_name", "sport", "slot_id", "created_at").
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserName,
		&booking.Sport,
		&booking.SlotID,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}
