package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct{ pool *pgxpool.Pool }

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) ConfirmedCount(ctx context.Context, slotID int64) (int, error) {
	sql := `SELECT COUNT(*) FROM booking WHERE slot_id=$1 AND status=$2;`

	var count int
	err := r.pool.QueryRow(ctx, sql, slotID, StatusConfirmed).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count confirmed bookings for slot '%v': %w", slotID, err)
	}

	return count, nil
}

// ConfirmedCounts returns the confirmed-booking count per slot for the given
// slot ids. Slots with no confirmed bookings are absent from the map.
func (r *BookingRepository) ConfirmedCounts(ctx context.Context, slotIDs []int64) (map[int64]int, error) {
	sql := `
            SELECT slot_id, COUNT(*)
            FROM booking
            WHERE slot_id = ANY($1) AND status=$2
            GROUP BY slot_id;
        `

	rows, err := r.pool.Query(ctx, sql, slotIDs, StatusConfirmed)

	if err != nil {
		return nil, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}

	defer rows.Close()

	counts := map[int64]int{}

	for rows.Next() {
		var slotID int64
		var count int
		if err := rows.Scan(&slotID, &count); err != nil {
			return nil, fmt.Errorf("error scanning booking count row: %w", err)
		}

		counts[slotID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking count rows: %w", err)
	}

	return counts, nil
}

func (r *BookingRepository) HasActiveBooking(ctx context.Context, userID, slotID int64) (bool, error) {
	sql := `
            SELECT EXISTS (
                SELECT 1 FROM booking
                WHERE user_id=$1 AND slot_id=$2 AND status IN ($3, $4)
            );
        `

	var exists bool
	err := r.pool.QueryRow(ctx, sql, userID, slotID, StatusConfirmed, StatusPending).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check active booking: %w", err)
	}

	return exists, nil
}

// ReserveSlot confirms a booking of the slot for the user inside a single
// transaction. The slot row is locked first, so the capacity count and the
// insert cannot interleave with a concurrent reservation of the same slot.
// A cancelled (user, slot) row is resurrected rather than duplicated.
func (r *BookingRepository) ReserveSlot(ctx context.Context, userID, slotID int64) (Booking, error) {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin reservation: %w", err)
	}

	defer tx.Rollback(ctx)

	var maxPlayers int
	err = tx.QueryRow(ctx, `SELECT max_players FROM slot WHERE id=$1 FOR UPDATE;`, slotID).Scan(&maxPlayers)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrSlotNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to lock slot '%v': %w", slotID, err)
	}

	var existingID int64
	var existingStatus string
	err = tx.QueryRow(ctx,
		`SELECT id, status FROM booking WHERE user_id=$1 AND slot_id=$2;`,
		userID, slotID,
	).Scan(&existingID, &existingStatus)

	hasExisting := err == nil

	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, fmt.Errorf("failed to check existing booking: %w", err)
	}

	if hasExisting && existingStatus != StatusCancelled {
		return Booking{}, ErrAlreadyBooked
	}

	var confirmed int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM booking WHERE slot_id=$1 AND status=$2;`,
		slotID, StatusConfirmed,
	).Scan(&confirmed)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}

	if confirmed >= maxPlayers {
		return Booking{}, ErrSlotFull
	}

	booking := Booking{UserID: userID, SlotID: slotID, Status: StatusConfirmed}

	if hasExisting {
		err = tx.QueryRow(ctx,
			`UPDATE booking SET status=$1, updated_at=now() WHERE id=$2 RETURNING id, created_at, updated_at;`,
			StatusConfirmed, existingID,
		).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	} else {
		err = tx.QueryRow(ctx,
			`INSERT INTO booking(user_id, slot_id, status) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;`,
			userID, slotID, StatusConfirmed,
		).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	}

	if isUniqueViolation(err) {
		return Booking{}, ErrAlreadyBooked
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to write booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Booking{}, fmt.Errorf("failed to commit reservation: %w", err)
	}

	return booking, nil
}

// GetUserBooking fetches a booking scoped to its owner. A booking owned by
// someone else is indistinguishable from a missing one.
func (r *BookingRepository) GetUserBooking(ctx context.Context, userID, bookingID int64) (Booking, error) {
	sql := `
			SELECT id, user_id, slot_id, status, created_at, updated_at
			FROM booking
			WHERE id=$1 AND user_id=$2;
		`

	var booking Booking
	err := r.pool.QueryRow(ctx, sql, bookingID, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.SlotID,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", bookingID, err)
	}

	return booking, nil
}

func (r *BookingRepository) SetBookingStatus(ctx context.Context, id int64, status string) error {
	sql := `
            UPDATE booking
            SET status=$1, updated_at=now()
            WHERE id=$2;
        `

	tag, err := r.pool.Exec(ctx, sql, status, id)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// SetBookingsStatus transitions a set of bookings at once. Administrative
// operation; returns how many rows changed.
func (r *BookingRepository) SetBookingsStatus(ctx context.Context, ids []int64, status string) (int64, error) {
	sql := `
            UPDATE booking
            SET status=$1, updated_at=now()
            WHERE id = ANY($2);
        `

	tag, err := r.pool.Exec(ctx, sql, status, ids)

	if err != nil {
		return 0, fmt.Errorf("failed to bulk update booking status: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *BookingRepository) ListBookingsWithSlots(ctx context.Context, userID int64) ([]BookingWithSlot, error) {
	sql := `
            SELECT b.id, b.user_id, b.slot_id, b.status, b.created_at, b.updated_at,
                   s.id, s.date, s.time_slot, s.cricket_type, s.price, s.max_players, s.created_at, s.updated_at
            FROM booking b
            JOIN slot s ON s.id = b.slot_id
            WHERE b.user_id=$1
            ORDER BY b.created_at DESC;
        `

	rows, err := r.pool.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for user '%v': %w", userID, err)
	}

	defer rows.Close()

	var bookings []BookingWithSlot

	for rows.Next() {
		var b BookingWithSlot
		err := rows.Scan(
			&b.Booking.ID,
			&b.Booking.UserID,
			&b.Booking.SlotID,
			&b.Booking.Status,
			&b.Booking.CreatedAt,
			&b.Booking.UpdatedAt,
			&b.Slot.ID,
			&b.Slot.Date,
			&b.Slot.TimeSlot,
			&b.Slot.CricketType,
			&b.Slot.Price,
			&b.Slot.MaxPlayers,
			&b.Slot.CreatedAt,
			&b.Slot.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

// ConfirmedSlotIDs lists the slots the user currently holds a confirmed
// booking for. Feeds the bookedByUser flag on the dashboard.
func (r *BookingRepository) ConfirmedSlotIDs(ctx context.Context, userID int64) ([]int64, error) {
	sql := `SELECT slot_id FROM booking WHERE user_id=$1 AND status=$2;`

	rows, err := r.pool.Query(ctx, sql, userID, StatusConfirmed)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked slot ids for user '%v': %w", userID, err)
	}

	defer rows.Close()

	var ids []int64

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning slot id row: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slot id rows: %w", err)
	}

	return ids, nil
}
