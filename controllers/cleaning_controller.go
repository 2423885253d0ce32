// controllers/cleaning_controller.go
package controllers

import (
	"net/http"

	"hms-backend/services"
	"hms-backend/utils"

	"github.com/gin-gonic/gin"
)

type CleaningController struct {
	CleaningSvc *services.CleaningService
}

func NewCleaningController(svc *services.CleaningService) *CleaningController {
	return &CleaningController{CleaningSvc: svc}
}

func (ctrl *CleaningController) GetSchedules(c *gin.Context) {
	schedules, err := ctrl.CleaningSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, schedules)
}

func (ctrl *CleaningController) GetRoomSchedule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	schedule, err := ctrl.CleaningSvc.GetByRoom(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, schedule)
}

// UpsertRoomSchedule handles PUT /api/rooms/:id/cleaning.
func (ctrl *CleaningController) UpsertRoomSchedule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload services.CleaningUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	schedule, err := ctrl.CleaningSvc.Upsert(id, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, schedule)
}
