package book_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/SlotBookingService/internal/domain"
	slotRepo "github.com/playgrid/SlotBookingService/internal/infra/storage/slot"
)

// memStore разделяемое состояние фейковых репозиториев.
// Мьютекс играет роль транзакционной сериализации БД: каждая "транзакция"
// держит его от начала до конца, поэтому проверка и захват слота атомарны,
// как и в настоящем хранилище.
type memStore struct {
	mu       sync.Mutex
	slots    map[string]*domain.Slot
	bookings map[string]*domain.Booking // ключ - slot_id
	seq      int
}

func newMemStore(slots ...*domain.Slot) *memStore {
	s := &memStore{
		slots:    make(map[string]*domain.Slot),
		bookings: make(map[string]*domain.Booking),
	}
	for _, slot := range slots {
		s.slots[slot.ID] = slot
	}
	return s
}

type memTxManager struct {
	store *memStore
}

// Do повторяет транзакционный контракт: при ошибке fn все изменения
// хранилища откатываются, как откатилась бы настоящая транзакция.
func (m *memTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	slotsBackup := make(map[string]*domain.Slot, len(m.store.slots))
	for id, s := range m.store.slots {
		copied := *s
		slotsBackup[id] = &copied
	}
	bookingsBackup := make(map[string]*domain.Booking, len(m.store.bookings))
	for id, b := range m.store.bookings {
		copied := *b
		bookingsBackup[id] = &copied
	}

	if err := fn(ctx); err != nil {
		m.store.slots = slotsBackup
		m.store.bookings = bookingsBackup
		return err
	}
	return nil
}

type memSlotRepo struct {
	store *memStore
	// подменяемые ошибки для инфраструктурных сценариев
	getErr  error
	markErr error
}

func (r *memSlotRepo) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	s, ok := r.store.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *memSlotRepo) MarkBooked(ctx context.Context, id string) error {
	if r.markErr != nil {
		return r.markErr
	}
	s, ok := r.store.slots[id]
	if !ok || s.Booked {
		return slotRepo.ErrSlotAlreadyBooked
	}
	s.Booked = true
	return nil
}

type memBookingRepo struct {
	store     *memStore
	createErr error
}

func (r *memBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.store.bookings[b.SlotID]; exists {
		return nil, fmt.Errorf("unique violation: slot_id=%s", b.SlotID)
	}
	r.store.seq++
	b.ID = fmt.Sprintf("booking-%d", r.store.seq)
	b.CreatedAt = time.Now()
	r.store.bookings[b.SlotID] = b
	return b, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSlot(id string, booked bool) *domain.Slot {
	return &domain.Slot{
		ID:      id,
		VenueID: "venue-1",
		Date:    time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Time:    "09:00",
		Booked:  booked,
		Venue:   &domain.Venue{ID: "venue-1", Name: "Venue A"},
	}
}

func newTestUseCase(store *memStore) (*UseCase, *memSlotRepo, *memBookingRepo) {
	slots := &memSlotRepo{store: store}
	bookings := &memBookingRepo{store: store}
	uc := NewUseCase(slots, bookings, &memTxManager{store: store}, nopLogger{})
	return uc, slots, bookings
}

func TestExecute_Success(t *testing.T) {
	store := newMemStore(testSlot("slot-1", false))
	uc, _, _ := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:   "slot-1",
		UserName: "Alice",
		Sport:    "Tennis",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Booking.UserName)
	assert.Equal(t, "Tennis", resp.Booking.Sport)
	assert.Equal(t, "slot-1", resp.Booking.SlotID)
	assert.NotEmpty(t, resp.Booking.ID)
	assert.True(t, resp.Slot.Booked)
	assert.Equal(t, "Venue A", resp.Slot.VenueName)

	// слот и бронирование зафиксированы в хранилище
	assert.True(t, store.slots["slot-1"].Booked)
	require.Contains(t, store.bookings, "slot-1")
}

func TestExecute_TrimsUserNameAndSport(t *testing.T) {
	store := newMemStore(testSlot("slot-1", false))
	uc, _, _ := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:   "slot-1",
		UserName: "  Alice  ",
		Sport:    " Tennis ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Booking.UserName)
	assert.Equal(t, "Tennis", resp.Booking.Sport)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	store := newMemStore(testSlot("slot-1", false))
	uc, _, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserName: "Alice", Sport: "Tennis"})
	require.NoError(t, err)

	// повторная попытка на тот же слот
	_, err = uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserName: "Bob", Sport: "Chess"})
	require.ErrorIs(t, err, ErrSlotAlreadyBooked)

	// состояние не изменилось: одно бронирование, принадлежит Alice
	require.Len(t, store.bookings, 1)
	assert.Equal(t, "Alice", store.bookings["slot-1"].UserName)
}

func TestExecute_SlotNotFound(t *testing.T) {
	store := newMemStore()
	uc, _, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:   "nonexistent-id",
		UserName: "Bob",
		Sport:    "Chess",
	})

	require.ErrorIs(t, err, ErrSlotNotFound)
	assert.Empty(t, store.bookings)
}

func TestExecute_InvalidInput(t *testing.T) {
	store := newMemStore(testSlot("slot-1", false))
	uc, _, _ := newTestUseCase(store)

	cases := []struct {
		name string
		req  *Request
	}{
		{"empty user name", &Request{SlotID: "slot-1", UserName: "", Sport: "Tennis"}},
		{"whitespace user name", &Request{SlotID: "slot-1", UserName: "   ", Sport: "Tennis"}},
		{"empty sport", &Request{SlotID: "slot-1", UserName: "Alice", Sport: ""}},
		{"whitespace sport", &Request{SlotID: "slot-1", UserName: "Alice", Sport: "\t"}},
		{"empty slot id", &Request{SlotID: "", UserName: "Alice", Sport: "Tennis"}},
		{"user name too long", &Request{SlotID: "slot-1", UserName: strings.Repeat("a", 101), Sport: "Tennis"}},
		{"sport too long", &Request{SlotID: "slot-1", UserName: "Alice", Sport: strings.Repeat("b", 51)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// невалидные запросы не оставляют следов в хранилище
	assert.Empty(t, store.bookings)
	assert.False(t, store.slots["slot-1"].Booked)
}

func TestExecute_InfrastructureError(t *testing.T) {
	store := newMemStore(testSlot("slot-1", false))
	uc, slots, _ := newTestUseCase(store)

	slots.getErr = errors.New("connection refused")

	_, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserName: "Alice", Sport: "Tennis"})
	require.ErrorIs(t, err, ErrInternal)
}

func TestExecute_BookingInsertFailureLeavesNoPartialState(t *testing.T) {
	store := newMemStore(testSlot("slot-1", false))
	uc, _, bookings := newTestUseCase(store)

	bookings.createErr = errors.New("connection reset")

	_, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserName: "Alice", Sport: "Tennis"})
	require.ErrorIs(t, err, ErrInternal)

	// всё или ничего: ни бронирования, ни захваченного слота
	assert.Empty(t, store.bookings)
	assert.False(t, store.slots["slot-1"].Booked, "slot claim must be rolled back with the failed booking")
}

// Конкурент зафиксировал бронирование между чтением слота и условным
// обновлением: отказ условного обновления - штатный проигрыш гонки,
// а не внутренняя ошибка.
func TestExecute_ConditionalUpdateLosesRace(t *testing.T) {
	store := newMemStore(testSlot("slot-1", false))
	uc, slots, _ := newTestUseCase(store)

	slots.markErr = slotRepo.ErrSlotAlreadyBooked

	_, err := uc.Execute(context.Background(), &Request{SlotID: "slot-1", UserName: "Bob", Sport: "Chess"})

	require.ErrorIs(t, err, ErrSlotAlreadyBooked)
	require.NotErrorIs(t, err, ErrInternal)
	assert.Empty(t, store.bookings)
}

// TestExecute_ConcurrentReservations проверяет центральное свойство:
// из N конкурентных попыток бронирования одного слота успешна ровно одна,
// остальные получают ErrSlotAlreadyBooked.
func TestExecute_ConcurrentReservations(t *testing.T) {
	const n = 100

	store := newMemStore(testSlot("slot-1", false))
	uc, _, _ := newTestUseCase(store)

	var wg sync.WaitGroup
	results := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{
				SlotID:   "slot-1",
				UserName: fmt.Sprintf("Player %d", i),
				Sport:    "Tennis",
			})
			results <- err
		}(i)
	}

	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotAlreadyBooked):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one reservation must win")
	assert.Equal(t, n-1, rejected)
	assert.Len(t, store.bookings, 1, "exactly one booking row must exist")
	assert.True(t, store.slots["slot-1"].Booked)
}
