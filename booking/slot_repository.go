package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotRepository struct{ pool *pgxpool.Pool }

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

func (r *SlotRepository) GetSlotByID(ctx context.Context, id int64) (Slot, error) {
	sql := `
			SELECT id, date, time_slot, cricket_type, price, max_players, created_at, updated_at
			FROM slot
			WHERE id=$1;
		`

	var slot Slot
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&slot.ID,
		&slot.Date,
		&slot.TimeSlot,
		&slot.CricketType,
		&slot.Price,
		&slot.MaxPlayers,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Slot{}, ErrSlotNotFound
	}

	if err != nil {
		return Slot{}, fmt.Errorf("failed to fetch slot with id %v: %w", id, err)
	}

	return slot, nil
}

// ListSlotsFrom returns slots with date >= from, optionally narrowed by the
// filter, ordered by (date, time_slot).
func (r *SlotRepository) ListSlotsFrom(ctx context.Context, from time.Time, filter SlotFilter) ([]Slot, error) {
	sql := `
            SELECT id, date, time_slot, cricket_type, price, max_players, created_at, updated_at
            FROM slot
            WHERE date >= $1::date
            AND ($2 = '' OR cricket_type = $2)
            AND ($3::date IS NULL OR date = $3::date)
            ORDER BY date, time_slot;
        `

	var filterDate *time.Time
	if !filter.Date.IsZero() {
		filterDate = &filter.Date
	}

	rows, err := r.pool.Query(ctx, sql, from, filter.CricketType, filterDate)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}

	defer rows.Close()

	var slots []Slot

	for rows.Next() {
		var slot Slot
		err := rows.Scan(
			&slot.ID,
			&slot.Date,
			&slot.TimeSlot,
			&slot.CricketType,
			&slot.Price,
			&slot.MaxPlayers,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning slot row: %w", err)
		}

		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slot rows: %w", err)
	}

	return slots, nil
}

// ListSlotDatesFrom returns the distinct dates with at least one slot on or
// after from, ascending. Used to populate the dashboard date filter.
func (r *SlotRepository) ListSlotDatesFrom(ctx context.Context, from time.Time) ([]time.Time, error) {
	sql := `
            SELECT DISTINCT date
            FROM slot
            WHERE date >= $1::date
            ORDER BY date;
        `

	rows, err := r.pool.Query(ctx, sql, from)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch slot dates: %w", err)
	}

	defer rows.Close()

	var dates []time.Time

	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("error scanning slot date row: %w", err)
		}

		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slot date rows: %w", err)
	}

	return dates, nil
}

func (r *SlotRepository) InsertSlot(ctx context.Context, slot Slot) (Slot, error) {
	sql := `
			INSERT INTO slot(date, time_slot, cricket_type, price, max_players)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at;
		`

	err := r.pool.QueryRow(ctx, sql,
		slot.Date,
		slot.TimeSlot,
		slot.CricketType,
		slot.Price,
		slot.MaxPlayers,
	).Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt)

	if isUniqueViolation(err) {
		return Slot{}, ErrSlotExists
	}

	if err != nil {
		return Slot{}, fmt.Errorf("failed to insert slot: %w", err)
	}

	return slot, nil
}

func (r *SlotRepository) UpdateSlot(ctx context.Context, slot Slot) (Slot, error) {
	sql := `
			UPDATE slot
			SET
				date=$1,
				time_slot=$2,
				cricket_type=$3,
				price=$4,
				max_players=$5,
				updated_at=now()
			WHERE id=$6
			RETURNING created_at, updated_at;
		`

	err := r.pool.QueryRow(ctx, sql,
		slot.Date,
		slot.TimeSlot,
		slot.CricketType,
		slot.Price,
		slot.MaxPlayers,
		slot.ID,
	).Scan(&slot.CreatedAt, &slot.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return Slot{}, ErrSlotNotFound
	}

	if isUniqueViolation(err) {
		return Slot{}, ErrSlotExists
	}

	if err != nil {
		return Slot{}, fmt.Errorf("failed to update slot '%v': %w", slot.ID, err)
	}

	return slot, nil
}

// DeleteSlot removes a slot; its bookings go with it (ON DELETE CASCADE).
func (r *SlotRepository) DeleteSlot(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM slot WHERE id=$1;`, id)

	if err != nil {
		return fmt.Errorf("failed to delete slot '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSlotNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
