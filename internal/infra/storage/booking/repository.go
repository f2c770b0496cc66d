package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/pkg/dbmetrics"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями аарти
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Проверка вместимости слота и уникальности квартиры выполняется в usecase
// под сериализуемой транзакцией, поэтому при создании бронирования
// с этими проверками вызов обязан идти внутри транзакции.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"slot_id",
			"name",
			"flat",
			"phone",
		).
		Values(
			b.SlotID,
			b.Name,
			b.Flat,
			b.Phone,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_id",
		"name",
		"flat",
		"phone",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.SlotID,
		&b.Name,
		&b.Flat,
		&b.Phone,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}

// ListBySlotID получает бронирования слота в порядке создания
func (r *Repository) ListBySlotID(ctx context.Context, slotID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_id",
		"name",
		"flat",
		"phone",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySlotID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySlotID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListByDate получает все бронирования на слоты указанной даты
// Используется проверками вместимости и уникальности квартиры:
// вызывающий usecase предварительно блокирует слоты даты через
// slot.Repository.ListByDate внутри сериализуемой транзакции
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.slot_id",
		"b.name",
		"b.flat",
		"b.phone",
		"b.created_at",
	).
		From("bookings b").
		Join("aarti_slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{"s.slot_date": date}).
		OrderBy("b.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListWithSlots получает весь журнал бронирований вместе со слотами
// Сортировка - сначала новые, как в админ-панели
func (r *Repository) ListWithSlots(ctx context.Context) ([]*domain.BookingWithSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.slot_id",
		"b.name",
		"b.flat",
		"b.phone",
		"b.created_at",
		"s.id",
		"s.slot_date",
		"s.time_of_day",
		"s.capacity",
		"s.created_at",
	).
		From("bookings b").
		Join("aarti_slots s ON s.id = b.slot_id").
		OrderBy("b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.BookingWithSlot, 0)

	for rows.Next() {
		var item domain.BookingWithSlot
		var bookingCreatedAt, slotCreatedAt sql.NullTime

		err := rows.Scan(
			&item.Booking.ID,
			&item.Booking.SlotID,
			&item.Booking.Name,
			&item.Booking.Flat,
			&item.Booking.Phone,
			&bookingCreatedAt,
			&item.Slot.ID,
			&item.Slot.Date,
			&item.Slot.TimeOfDay,
			&item.Slot.Capacity,
			&slotCreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListWithSlots - scan row: %v", ErrScanRow, err)
		}

		item.Booking.CreatedAt = bookingCreatedAt.Time
		item.Slot.CreatedAt = slotCreatedAt.Time

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithSlots - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// Update обновляет изменяемые поля бронирования
// slot_id и created_at неизменяемы и не обновляются
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("name", b.Name).
		Set("flat", b.Flat).
		Set("phone", b.Phone).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.SlotID,
			&b.Name,
			&b.Flat,
			&b.Phone,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
