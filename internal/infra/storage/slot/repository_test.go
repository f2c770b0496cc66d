package slot_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/infra/storage/slot"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/pkg/dbmetrics"
)

var slotColumns = []string{"id", "slot_date", "time_of_day", "capacity", "created_at"}

var testDate = time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)

func TestGetByID(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := slot.NewRepository(db)

	query := `SELECT id, slot_date, time_of_day, capacity, created_at FROM aarti_slots WHERE id = $1`

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(slotColumns).
			AddRow(1, testDate, string(domain.FirstAarti), 2, time.Now())

		dbMock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		s, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), s.ID)
		assert.Equal(t, domain.FirstAarti, s.TimeOfDay)
		assert.Equal(t, 2, s.Capacity)
		assert.True(t, s.Date.Equal(testDate))
	})

	t.Run("not found", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(slotColumns))

		_, err := repo.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, slot.ErrSlotNotFound)
	})

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := slot.NewRepository(db)

	query := `SELECT id, slot_date, time_of_day, capacity, created_at FROM aarti_slots ORDER BY slot_date ASC, seq ASC`

	rows := sqlmock.NewRows(slotColumns).
		AddRow(1, testDate, string(domain.FirstAarti), 2, time.Now()).
		AddRow(2, testDate, string(domain.SecondAarti), 2, time.Now())

	dbMock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

	slots, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, domain.FirstAarti, slots[0].TimeOfDay)
	assert.Equal(t, domain.SecondAarti, slots[1].TimeOfDay)

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestListByDate(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := slot.NewRepository(db)

	t.Run("outside transaction reads without lock", func(t *testing.T) {
		query := `SELECT id, slot_date, time_of_day, capacity, created_at FROM aarti_slots WHERE slot_date = $1 ORDER BY id ASC`

		rows := sqlmock.NewRows(slotColumns).
			AddRow(1, testDate, string(domain.FirstAarti), 2, time.Now())

		dbMock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(testDate).
			WillReturnRows(rows)

		slots, err := repo.ListByDate(context.Background(), testDate)
		require.NoError(t, err)
		assert.Len(t, slots, 1)
	})

	t.Run("inside transaction locks rows", func(t *testing.T) {
		query := `SELECT id, slot_date, time_of_day, capacity, created_at FROM aarti_slots WHERE slot_date = $1 ORDER BY id ASC FOR UPDATE`

		dbMock.ExpectBegin()
		tx, err := db.BeginTx(context.Background(), nil)
		require.NoError(t, err)

		rows := sqlmock.NewRows(slotColumns).
			AddRow(1, testDate, string(domain.FirstAarti), 2, time.Now()).
			AddRow(2, testDate, string(domain.SecondAarti), 2, time.Now())

		dbMock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(testDate).
			WillReturnRows(rows)
		dbMock.ExpectRollback()

		ctx := dbmetrics.WithTx(context.Background(), tx)
		slots, err := repo.ListByDate(ctx, testDate)
		require.NoError(t, err)
		assert.Len(t, slots, 2)

		require.NoError(t, tx.Rollback())
	})

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUpsert(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := slot.NewRepository(db)

	query := `INSERT INTO aarti_slots (slot_date,time_of_day,seq,capacity) VALUES ($1,$2,$3,$4) ON CONFLICT (slot_date, time_of_day) DO NOTHING`

	t.Run("new slot inserted", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(testDate, domain.SecondAarti, 2, 2).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Upsert(context.Background(), &domain.Slot{
			Date:      testDate,
			TimeOfDay: domain.SecondAarti,
			Capacity:  2,
		})
		require.NoError(t, err)
	})

	t.Run("existing slot untouched", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(testDate, domain.SecondAarti, 2, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Upsert(context.Background(), &domain.Slot{
			Date:      testDate,
			TimeOfDay: domain.SecondAarti,
			Capacity:  2,
		})
		require.NoError(t, err)
	})

	require.NoError(t, dbMock.ExpectationsWereMet())
}
