// controllers/service_controller.go
package controllers

import (
	"net/http"

	"hms-backend/models"
	"hms-backend/services"
	"hms-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	Catalog *services.ServiceCatalog
}

func NewServiceController(catalog *services.ServiceCatalog) *ServiceController {
	return &ServiceController{Catalog: catalog}
}

func (ctrl *ServiceController) GetServices(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	list, err := ctrl.Catalog.GetAll(activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *ServiceController) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := ctrl.Catalog.Create(svc)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (ctrl *ServiceController) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	svc, err := ctrl.Catalog.Update(id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, svc)
}
