package booking

import (
	"slices"
	"time"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

var Statuses = []string{StatusPending, StatusConfirmed, StatusCancelled}

// Booking is a user's claim on a slot. The pair (UserID, SlotID) is unique:
// re-booking after cancellation resurrects the existing row instead of
// creating a second one.
type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	SlotID    int64     `json:"slotId"`
	Status    string    `json:"status"` // pending, confirmed, cancelled
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookingWithSlot struct {
	Booking Booking `json:"booking"`
	Slot    Slot    `json:"slot"`
}

type History struct {
	Confirmed []BookingWithSlot `json:"confirmed"`
	Cancelled []BookingWithSlot `json:"cancelled"`
	Total     int               `json:"total"`
}

func ValidStatus(status string) bool {
	return slices.Contains(Statuses, status)
}
