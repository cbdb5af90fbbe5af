package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pitchside/cricket-slot-booking-backend/auth"
	bk "github.com/pitchside/cricket-slot-booking-backend/booking"
)

type BookingService interface {
	ListUpcoming(ctx context.Context, userID int64, refDate time.Time, filter bk.SlotFilter) (bk.Dashboard, error)
	Book(ctx context.Context, userID, slotID int64) (bk.Booking, error)
	ListBookings(ctx context.Context, userID int64) ([]bk.BookingWithSlot, error)
	Cancel(ctx context.Context, userID, bookingID int64) error
	History(ctx context.Context, userID int64) (bk.History, error)
	CreateSlot(ctx context.Context, slot bk.Slot) (bk.Slot, error)
	UpdateSlot(ctx context.Context, slot bk.Slot) (bk.Slot, error)
	DeleteSlot(ctx context.Context, id int64) error
	SetBookingsStatus(ctx context.Context, ids []int64, status string) (int64, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.GET("/slots", h.Dashboard)
	rg.POST("/slots/:id/book", h.Book)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/history", h.History)
	rg.PUT("/bookings/:id/cancel", h.Cancel)

	rg.POST("/admin/slots", adminOnly, h.CreateSlot)
	rg.PUT("/admin/slots/:id", adminOnly, h.UpdateSlot)
	rg.DELETE("/admin/slots/:id", adminOnly, h.DeleteSlot)
	rg.PUT("/admin/bookings/status", adminOnly, h.BulkSetStatus)
}

func (h *BookingHandler) Dashboard(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	filter := bk.SlotFilter{CricketType: c.Query("cricketType")}

	// A malformed date is ignored, not an error: the filter is simply
	// not applied.
	if dateStr := c.Query("date"); len(dateStr) != 0 {
		if date, err := time.Parse(time.DateOnly, dateStr); err == nil {
			filter.Date = date
		}
	}

	dashboard, err := h.service.ListUpcoming(c.Request.Context(), user.ID, time.Now(), filter)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve slots",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, dashboard)
}

func (h *BookingHandler) Book(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	slotID, err := parseID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slot id"})
		return
	}

	booking, err := h.service.Book(c.Request.Context(), user.ID, slotID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "slot not found",
			})
		} else if errors.Is(err, bk.ErrSlotFull) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "slot is no longer available",
			})
		} else if errors.Is(err, bk.ErrAlreadyBooked) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "you have already booked this slot",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to book slot",
			})
		}

		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	if bookings, err := h.service.ListBookings(c.Request.Context(), user.ID); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
	} else {
		c.IndentedJSON(http.StatusOK, bookings)
	}
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	bookingID, err := parseID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	err = h.service.Cancel(c.Request.Context(), user.ID, bookingID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "booking not found",
			})
		} else if errors.Is(err, bk.ErrNotCancellable) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "this booking cannot be cancelled",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to cancel booking",
			})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *BookingHandler) History(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	history, err := h.service.History(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve booking history",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, history)
}

type slotRequest struct {
	Date        string  `json:"date" binding:"required"`
	TimeSlot    string  `json:"timeSlot" binding:"required"`
	CricketType string  `json:"cricketType" binding:"required"`
	Price       float64 `json:"price"`
	MaxPlayers  int     `json:"maxPlayers"`
}

func (r slotRequest) toSlot() (bk.Slot, error) {
	date, err := time.Parse(time.DateOnly, r.Date)

	if err != nil {
		return bk.Slot{}, err
	}

	slot := bk.Slot{
		Date:        date,
		TimeSlot:    r.TimeSlot,
		CricketType: r.CricketType,
		Price:       r.Price,
		MaxPlayers:  r.MaxPlayers,
	}

	// Defaults mirror the schema: 500 per slot, 11 players.
	if slot.Price == 0 {
		slot.Price = 500
	}

	if slot.MaxPlayers == 0 {
		slot.MaxPlayers = 11
	}

	return slot, nil
}

func (h *BookingHandler) CreateSlot(c *gin.Context) {
	var req slotRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	slot, err := req.toSlot()

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	created, err := h.service.CreateSlot(c.Request.Context(), slot)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrInvalidSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, bk.ErrSlotExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "slot already exists"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create slot"})
		}

		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) UpdateSlot(c *gin.Context) {
	slotID, err := parseID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slot id"})
		return
	}

	var req slotRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	slot, err := req.toSlot()

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	slot.ID = slotID

	updated, err := h.service.UpdateSlot(c.Request.Context(), slot)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "slot not found"})
		} else if errors.Is(err, bk.ErrInvalidSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, bk.ErrSlotExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "slot already exists"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update slot"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *BookingHandler) DeleteSlot(c *gin.Context) {
	slotID, err := parseID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slot id"})
		return
	}

	err = h.service.DeleteSlot(c.Request.Context(), slotID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "slot not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete slot"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "slot deleted"})
}

type bulkStatusRequest struct {
	IDs    []int64 `json:"ids" binding:"required"`
	Status string  `json:"status" binding:"required"`
}

func (h *BookingHandler) BulkSetStatus(c *gin.Context) {
	var req bulkStatusRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.SetBookingsStatus(c.Request.Context(), req.IDs, req.Status)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking status"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update bookings"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"updated": updated})
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
