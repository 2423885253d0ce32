// controllers/errors.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hms-backend/services"
	"hms-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps domain errors to HTTP statuses. Internal failures
// are logged and surfaced generically, never with driver detail.
func respondServiceError(c *gin.Context, err error) {
	var unavailable *services.RoomUnavailableError
	if errors.As(err, &unavailable) {
		utils.JSONErrorDetail(c, http.StatusConflict, "room unavailable for the requested dates", gin.H{
			"conflicting_booking_id": unavailable.BookingID,
			"check_in_date":          unavailable.CheckIn.String(),
			"check_out_date":         unavailable.CheckOut.String(),
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidPhone),
		errors.Is(err, services.ErrInvalidPayment),
		errors.Is(err, services.ErrInvalidRoomStatus),
		errors.Is(err, services.ErrInvalidCapacity):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrScheduleNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateKey):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
