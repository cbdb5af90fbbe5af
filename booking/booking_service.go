package booking

import (
	"context"
	"fmt"
	"time"
)

type SlotCatalog interface {
	GetSlotByID(ctx context.Context, id int64) (Slot, error)
	ListSlotsFrom(ctx context.Context, from time.Time, filter SlotFilter) ([]Slot, error)
	ListSlotDatesFrom(ctx context.Context, from time.Time) ([]time.Time, error)
	InsertSlot(ctx context.Context, slot Slot) (Slot, error)
	UpdateSlot(ctx context.Context, slot Slot) (Slot, error)
	DeleteSlot(ctx context.Context, id int64) error
}

type BookingLedger interface {
	ConfirmedCount(ctx context.Context, slotID int64) (int, error)
	ConfirmedCounts(ctx context.Context, slotIDs []int64) (map[int64]int, error)
	HasActiveBooking(ctx context.Context, userID, slotID int64) (bool, error)
	ReserveSlot(ctx context.Context, userID, slotID int64) (Booking, error)
	GetUserBooking(ctx context.Context, userID, bookingID int64) (Booking, error)
	SetBookingStatus(ctx context.Context, id int64, status string) error
	SetBookingsStatus(ctx context.Context, ids []int64, status string) (int64, error)
	ListBookingsWithSlots(ctx context.Context, userID int64) ([]BookingWithSlot, error)
	ConfirmedSlotIDs(ctx context.Context, userID int64) ([]int64, error)
}

type Service struct {
	slots    SlotCatalog
	bookings BookingLedger
}

func NewService(slots SlotCatalog, bookings BookingLedger) *Service {
	return &Service{slots: slots, bookings: bookings}
}

// ListUpcoming builds the dashboard: slots with date >= refDate matching the
// filter, each annotated with the requesting user's booking state and the
// remaining spots, plus the distinct dates available for filtering. The
// reference date is passed in by the caller so listings are deterministic.
func (s *Service) ListUpcoming(ctx context.Context, userID int64, refDate time.Time, filter SlotFilter) (Dashboard, error) {
	slots, err := s.slots.ListSlotsFrom(ctx, refDate, filter)

	if err != nil {
		return Dashboard{}, err
	}

	dates, err := s.slots.ListSlotDatesFrom(ctx, refDate)

	if err != nil {
		return Dashboard{}, err
	}

	bookedIDs, err := s.bookings.ConfirmedSlotIDs(ctx, userID)

	if err != nil {
		return Dashboard{}, err
	}

	booked := map[int64]bool{}
	for _, id := range bookedIDs {
		booked[id] = true
	}

	slotIDs := make([]int64, 0, len(slots))
	for _, slot := range slots {
		slotIDs = append(slotIDs, slot.ID)
	}

	counts := map[int64]int{}

	if len(slotIDs) != 0 {
		counts, err = s.bookings.ConfirmedCounts(ctx, slotIDs)

		if err != nil {
			return Dashboard{}, err
		}
	}

	withStatus := make([]SlotWithStatus, 0, len(slots))

	for _, slot := range slots {
		withStatus = append(withStatus, SlotWithStatus{
			Slot:           slot,
			BookedByUser:   booked[slot.ID],
			AvailableSpots: slot.MaxPlayers - counts[slot.ID],
		})
	}

	return Dashboard{Slots: withStatus, AvailableDates: dates}, nil
}

// Book reserves the slot for the user. The availability and duplicate checks
// here give cheap early outcomes; ReserveSlot repeats both under a slot lock,
// which is what actually keeps a slot from going over capacity.
func (s *Service) Book(ctx context.Context, userID, slotID int64) (Booking, error) {
	slot, err := s.slots.GetSlotByID(ctx, slotID)

	if err != nil {
		return Booking{}, err
	}

	confirmed, err := s.bookings.ConfirmedCount(ctx, slot.ID)

	if err != nil {
		return Booking{}, err
	}

	if confirmed >= slot.MaxPlayers {
		return Booking{}, ErrSlotFull
	}

	active, err := s.bookings.HasActiveBooking(ctx, userID, slot.ID)

	if err != nil {
		return Booking{}, err
	}

	if active {
		return Booking{}, ErrAlreadyBooked
	}

	return s.bookings.ReserveSlot(ctx, userID, slot.ID)
}

func (s *Service) ListBookings(ctx context.Context, userID int64) ([]BookingWithSlot, error) {
	return s.bookings.ListBookingsWithSlots(ctx, userID)
}

// Cancel sets a confirmed booking of the user to cancelled. The record stays
// around; cancellation is a status change, not a delete.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64) error {
	booking, err := s.bookings.GetUserBooking(ctx, userID, bookingID)

	if err != nil {
		return err
	}

	if booking.Status != StatusConfirmed {
		return ErrNotCancellable
	}

	err = s.bookings.SetBookingStatus(ctx, booking.ID, StatusCancelled)

	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return nil
}

func (s *Service) History(ctx context.Context, userID int64) (History, error) {
	bookings, err := s.bookings.ListBookingsWithSlots(ctx, userID)

	if err != nil {
		return History{}, err
	}

	history := History{
		Confirmed: []BookingWithSlot{},
		Cancelled: []BookingWithSlot{},
		Total:     len(bookings),
	}

	for _, b := range bookings {
		switch b.Booking.Status {
		case StatusConfirmed:
			history.Confirmed = append(history.Confirmed, b)
		case StatusCancelled:
			history.Cancelled = append(history.Cancelled, b)
		}
	}

	return history, nil
}

func (s *Service) CreateSlot(ctx context.Context, slot Slot) (Slot, error) {
	if err := ValidateSlot(slot); err != nil {
		return Slot{}, err
	}

	return s.slots.InsertSlot(ctx, slot)
}

func (s *Service) UpdateSlot(ctx context.Context, slot Slot) (Slot, error) {
	if err := ValidateSlot(slot); err != nil {
		return Slot{}, err
	}

	return s.slots.UpdateSlot(ctx, slot)
}

func (s *Service) DeleteSlot(ctx context.Context, id int64) error {
	return s.slots.DeleteSlot(ctx, id)
}

// SetBookingsStatus is the administrative bulk transition over a set of
// booking ids.
func (s *Service) SetBookingsStatus(ctx context.Context, ids []int64, status string) (int64, error) {
	if !ValidStatus(status) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if len(ids) == 0 {
		return 0, nil
	}

	return s.bookings.SetBookingsStatus(ctx, ids, status)
}
