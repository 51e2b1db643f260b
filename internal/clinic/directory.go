package clinic

import (
	"context"
	"fmt"

	"clinic-desk-server/internal/models"
)

// ListPatients returns every patient ordered by full name.
func (s *Service) ListPatients(ctx context.Context) ([]models.Patient, error) {
	patients := make([]models.Patient, 0)
	if err := s.db.WithContext(ctx).Order("full_name").Find(&patients).Error; err != nil {
		return nil, storeError("list patients", err)
	}
	return patients, nil
}

// ListDoctors returns doctors ordered by full name, optionally only active ones.
func (s *Service) ListDoctors(ctx context.Context, activeOnly bool) ([]models.Doctor, error) {
	q := s.db.WithContext(ctx).Order("full_name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	doctors := make([]models.Doctor, 0)
	if err := q.Find(&doctors).Error; err != nil {
		return nil, storeError("list doctors", err)
	}
	return doctors, nil
}

// ListServices returns the price list grouped by category, then name.
func (s *Service) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	q := s.db.WithContext(ctx).Order("service_category").Order("service_name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	services := make([]models.Service, 0)
	if err := q.Find(&services).Error; err != nil {
		return nil, storeError("list services", err)
	}
	return services, nil
}

// ServicesByIDs loads the price-list entries behind a selection, in selection
// order. Repeated ids are collapsed; an unknown id is ErrNotFound.
func (s *Service) ServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return []models.Service{}, nil
	}

	var found []models.Service
	if err := s.db.WithContext(ctx).Where("id IN ?", unique).Find(&found).Error; err != nil {
		return nil, storeError("load services", err)
	}
	byID := make(map[uint]models.Service, len(found))
	for _, svc := range found {
		byID[svc.ID] = svc
	}

	selected := make([]models.Service, 0, len(unique))
	for _, id := range unique {
		svc, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("clinic: service %d: %w", id, ErrNotFound)
		}
		selected = append(selected, svc)
	}
	return selected, nil
}

// ComputeTotal sums the self-pay price of each selected service. An empty
// selection totals zero.
func ComputeTotal(services []models.Service) float64 {
	var total float64
	for _, svc := range services {
		total += svc.PricePaid
	}
	return total
}

// CreatePatient registers a patient today and returns the new id.
func (s *Service) CreatePatient(ctx context.Context, name, phone, email string) (uint, error) {
	patient := models.Patient{
		FullName:         name,
		Phone:            phone,
		Email:            email,
		RegistrationDate: s.now().Format(models.DateLayout),
	}
	if err := s.db.WithContext(ctx).Create(&patient).Error; err != nil {
		return 0, storeError("create patient", err)
	}

	s.logger.Info().Uint("patient_id", patient.ID).Msg("patient registered")
	return patient.ID, nil
}
