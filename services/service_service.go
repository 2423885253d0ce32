// services/service_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"hms-backend/models"

	"gorm.io/gorm"
)

// ServiceCatalog manages the catalog of extra hotel services.
type ServiceCatalog struct {
	DB *gorm.DB
}

func NewServiceCatalog(db *gorm.DB) *ServiceCatalog {
	return &ServiceCatalog{DB: db}
}

func (s *ServiceCatalog) GetAll(activeOnly bool) ([]models.Service, error) {
	query := s.DB.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *ServiceCatalog) GetByID(id uint) (*models.Service, error) {
	var svc models.Service
	if err := s.DB.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to load service %d: %w", id, err)
	}
	return &svc, nil
}

func (s *ServiceCatalog) Create(svc models.Service) (*models.Service, error) {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingFields)
	}
	if svc.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrMissingFields)
	}

	if err := s.DB.Create(&svc).Error; err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

func (s *ServiceCatalog) Update(id uint, updates map[string]interface{}) (*models.Service, error) {
	delete(updates, "id")
	delete(updates, "created_at")

	svc, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(svc).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update service %d: %w", id, err)
	}
	return s.GetByID(id)
}
