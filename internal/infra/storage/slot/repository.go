package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/playgrid/SlotBookingService/internal/domain"
	"github.com/playgrid/SlotBookingService/pkg/dbmetrics"
	"github.com/playgrid/SlotBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот. Используется сидером и административными процессами.
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("slots").
		Columns("id", "venue_id", "date", "time", "booked").
		Values(slot.ID, slot.VenueID, slot.Date, slot.Time, slot.Booked).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// GetByID получает слот по ID вместе с площадкой.
// Если в контексте есть активная транзакция, строка слота блокируется
// (FOR UPDATE OF s) до конца транзакции - это сериализует конкурентные
// попытки бронирования одного слота.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.id",
		"s.venue_id",
		"s.date",
		"s.time",
		"s.booked",
		"s.created_at",
		"v.name",
	).
		From("slots s").
		Join("venues v ON v.id = s.venue_id").
		Where(squirrel.Eq{"s.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF s")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.Slot
	var venueName string
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.VenueID,
		&slot.Date,
		&slot.Time,
		&slot.Booked,
		&createdAt,
		&venueName,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.Venue = &domain.Venue{ID: slot.VenueID, Name: venueName}

	return &slot, nil
}

// MarkBooked атомарно переводит слот из booked=false в booked=true.
// Это условное обновление - единственный примитив взаимного исключения
// при бронировании: из двух конкурентных транзакций условие booked=false
// выполнится на момент коммита только у одной.
// Возвращает ErrSlotAlreadyBooked, если условие не выполнилось.
func (r *Repository) MarkBooked(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("booked", true).
		Where(squirrel.Eq{"id": id, "booked": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotAlreadyBooked
	}

	return nil
}

// ListByVenueAndDate получает все слоты площадки на дату, отсортированные
// по времени. Для забронированных слотов одним запросом подтягивается
// денормализованное бронирование (LEFT JOIN) - список и признак booked
// приходят из одного снимка данных.
func (r *Repository) ListByVenueAndDate(ctx context.Context, venueID string, date time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.venue_id",
		"s.date",
		"s.time",
		"s.booked",
		"s.created_at",
		"v.name",
		"b.id",
		"b.user_name",
		"b.sport",
		"b.created_at",
	).
		From("slots s").
		Join("venues v ON v.id = s.venue_id").
		LeftJoin("bookings b ON b.slot_id = s.id").
		Where(squirrel.Eq{"s.venue_id": venueID, "s.date": date}).
		OrderBy("s.time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenueAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenueAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var slot domain.Slot
		var venueName string
		var slotCreatedAt sql.NullTime
		var bookingID, bookingUserName, bookingSport sql.NullString
		var bookingCreatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.VenueID,
			&slot.Date,
			&slot.Time,
			&slot.Booked,
			&slotCreatedAt,
			&venueName,
			&bookingID,
			&bookingUserName,
			&bookingSport,
			&bookingCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByVenueAndDate - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = slotCreatedAt.Time
		slot.Venue = &domain.Venue{ID: slot.VenueID, Name: venueName}

		if bookingID.Valid {
			slot.Booking = &domain.Booking{
				ID:        bookingID.String,
				UserName:  bookingUserName.String,
				Sport:     bookingSport.String,
				SlotID:    slot.ID,
				CreatedAt: bookingCreatedAt.Time,
			}
		}

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVenueAndDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ListDates получает список дат, на которые существуют слоты, по возрастанию
func (r *Repository) ListDates(ctx context.Context) ([]domain.SlotDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT date").
		From("slots").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]domain.SlotDate, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: ListDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, domain.SlotDate{Date: date})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}
