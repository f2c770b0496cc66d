package slot

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

// Repository репозиторий для работы со слотами аарти
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_date",
		"time_of_day",
		"capacity",
		"created_at",
	).
		From("aarti_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Date,
		&s.TimeOfDay,
		&s.Capacity,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}

// List получает все слоты в порядке расписания
// Порядок аарти внутри дня задается колонкой seq, а не текстовой меткой
func (r *Repository) List(ctx context.Context) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_date",
		"time_of_day",
		"capacity",
		"created_at",
	).
		From("aarti_slots").
		OrderBy("slot_date ASC", "seq ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ListByDate получает все слоты на указанную дату, упорядоченные по id
//
// Внутри транзакции запрос выполняется с FOR UPDATE: блокировка строк слотов
// одной даты в порядке id сериализует все конкурирующие записи бронирований,
// которые затрагивают эту дату (проверка вместимости и уникальности квартиры).
// Единая точка захвата блокировок исключает инверсию их порядка.
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"slot_date",
		"time_of_day",
		"capacity",
		"created_at",
	).
		From("aarti_slots").
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// Upsert создает слот, если слота с такой парой (дата, аарти) еще нет
// Используется сидером календаря, существующие слоты не трогает
func (r *Repository) Upsert(ctx context.Context, s *domain.Slot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("aarti_slots").
		Columns(
			"slot_date",
			"time_of_day",
			"seq",
			"capacity",
		).
		Values(
			s.Date,
			s.TimeOfDay,
			s.TimeOfDay.Seq(),
			s.Capacity,
		).
		Suffix("ON CONFLICT (slot_date, time_of_day) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.Date,
			&s.TimeOfDay,
			&s.Capacity,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
