package services

import (
	"AgendaDental/models"
	"AgendaDental/repositories"
	"AgendaDental/utils"
	"context"
	"fmt"

	"github.com/google/uuid"
)

type PatientService interface {
	RegisterPatient(ctx context.Context, req utils.RegisterPatientRequest) (*models.Patient, error)
	CreatePatient(ctx context.Context, req utils.CreatePatientRequest) (*models.Patient, error)
	GetAllPatients(ctx context.Context) ([]models.Patient, error)
}

type patientService struct {
	patientRepo repositories.PatientRepository
}

func NewPatientService(patientRepo repositories.PatientRepository) PatientService {
	return &patientService{patientRepo: patientRepo}
}

// RegisterPatient handles self-registration: one patient row plus one
// patient-role account sharing the email, created together. The account
// carries no password.
func (s *patientService) RegisterPatient(ctx context.Context, req utils.RegisterPatientRequest) (*models.Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registration data: %w", err)
	}

	patient := &models.Patient{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	account := &models.Account{
		Email:  req.Email,
		Role:   models.RolePatient,
		Active: true,
	}

	if err := s.patientRepo.RegisterWithAccount(ctx, patient, account); err != nil {
		return nil, err
	}
	return patient, nil
}

// CreatePatient is the admin path: a patient row only, no login account.
func (s *patientService) CreatePatient(ctx context.Context, req utils.CreatePatientRequest) (*models.Patient, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid patient data: %w", err)
	}

	patient := &models.Patient{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *patientService) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	return s.patientRepo.GetAll(ctx)
}
