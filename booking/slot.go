package booking

import (
	"fmt"
	"slices"
	"time"
)

// Slot is a bookable cricket slot on a given date. The triple
// (Date, TimeSlot, CricketType) is unique.
type Slot struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	TimeSlot    string    `json:"timeSlot"`
	CricketType string    `json:"cricketType"`
	Price       float64   `json:"price"`
	MaxPlayers  int       `json:"maxPlayers"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var TimeSlots = []string{"6-7", "7-8", "8-9", "5-6", "6-7pm", "7-8pm"}

var CricketTypes = []string{"box", "normal"}

// ValidateSlot checks the enumerated fields and capacity before any slot
// write. Callers get a typed error instead of a constraint violation.
func ValidateSlot(slot Slot) error {
	if slot.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidSlot)
	}

	if !slices.Contains(TimeSlots, slot.TimeSlot) {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidSlot, slot.TimeSlot)
	}

	if !slices.Contains(CricketTypes, slot.CricketType) {
		return fmt.Errorf("%w: unknown cricket type %q", ErrInvalidSlot, slot.CricketType)
	}

	if slot.MaxPlayers <= 0 {
		return fmt.Errorf("%w: max players must be positive", ErrInvalidSlot)
	}

	if slot.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidSlot)
	}

	return nil
}

// SlotFilter narrows the upcoming-slots listing. Zero values mean
// "no filter".
type SlotFilter struct {
	CricketType string
	Date        time.Time
}

// SlotWithStatus is a slot annotated for the requesting user.
type SlotWithStatus struct {
	Slot           Slot `json:"slot"`
	BookedByUser   bool `json:"bookedByUser"`
	AvailableSpots int  `json:"availableSpots"`
}

type Dashboard struct {
	Slots          []SlotWithStatus `json:"slots"`
	AvailableDates []time.Time      `json:"availableDates"`
}
