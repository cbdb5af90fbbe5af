package booking

import "errors"

var ErrSlotNotFound = errors.New("slot not found")

var ErrSlotExists = errors.New("slot already exists for this date, time and type")

var ErrSlotFull = errors.New("slot is full")

var ErrBookingNotFound = errors.New("booking not found")

var ErrAlreadyBooked = errors.New("slot already booked by this user")

var ErrNotCancellable = errors.New("booking is not in a cancellable state")

var ErrInvalidSlot = errors.New("invalid slot")

var ErrInvalidStatus = errors.New("invalid booking status")
