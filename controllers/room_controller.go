// controllers/room_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"hms-backend/models"
	"hms-backend/services"
	"hms-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc         *services.RoomService
	AvailabilitySvc *services.AvailabilityService
}

func NewRoomController(roomSvc *services.RoomService, availabilitySvc *services.AvailabilityService) *RoomController {
	return &RoomController{RoomSvc: roomSvc, AvailabilitySvc: availabilitySvc}
}

// GetRooms handles GET /api/rooms?status&capacity&min_capacity&check_in&check_out.
// With a date range each room carries availability derived from bookings;
// without one, only the cached status hint.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	filter := services.RoomFilter{Status: c.Query("status")}

	if raw := c.Query("capacity"); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid capacity")
			return
		}
		filter.Capacity = &capacity
	}
	if raw := c.Query("min_capacity"); raw != "" {
		minCapacity, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid min_capacity")
			return
		}
		filter.MinCapacity = &minCapacity
	}

	var checkIn, checkOut *models.Date
	rawIn, rawOut := c.Query("check_in"), c.Query("check_out")
	if rawIn != "" || rawOut != "" {
		// Both ends required, check_out strictly after check_in.
		in, errIn := models.ParseDate(rawIn)
		out, errOut := models.ParseDate(rawOut)
		if errIn != nil || errOut != nil || !in.Before(out) {
			utils.JSONError(c, http.StatusBadRequest, "check_in and check_out must be YYYY-MM-DD with check_out after check_in")
			return
		}
		checkIn, checkOut = &in, &out
	}

	rooms, err := ctrl.RoomSvc.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	annotated, err := ctrl.AvailabilitySvc.AnnotateRooms(rooms, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, annotated)
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := ctrl.RoomSvc.Create(room)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := ctrl.RoomSvc.Update(id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GetRoomFullInfo handles GET /api/rooms/number/:number/full-info.
func (ctrl *RoomController) GetRoomFullInfo(c *gin.Context) {
	number := c.Param("number")
	info, err := ctrl.RoomSvc.GetFullInfo(number)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, info)
}
