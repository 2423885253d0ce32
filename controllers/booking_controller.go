// controllers/booking_controller.go
package controllers

import (
	"net/http"

	"hms-backend/models"
	"hms-backend/services"
	"hms-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

type AttachServicePayload struct {
	ServiceID uint `json:"service_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CreateBooking handles POST /api/bookings. Guest info rides along and is
// resolved or created by passport number inside the booking transaction.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload services.CreateBookingInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.RoomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "room_id is required")
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (ctrl *BookingController) CheckIn(c *gin.Context) {
	ctrl.transition(c, models.BookingStatusCheckedIn)
}

func (ctrl *BookingController) CheckOut(c *gin.Context) {
	ctrl.transition(c, models.BookingStatusCheckedOut)
}

func (ctrl *BookingController) Cancel(c *gin.Context) {
	ctrl.transition(c, models.BookingStatusCancelled)
}

func (ctrl *BookingController) transition(c *gin.Context, next string) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.UpdateStatus(id, next)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// AttachService handles POST /api/bookings/:id/services.
func (ctrl *BookingController) AttachService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload AttachServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	item, err := ctrl.BookingSvc.AttachService(id, payload.ServiceID, payload.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}
