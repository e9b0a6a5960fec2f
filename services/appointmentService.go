package services

import (
	"AgendaDental/models"
	"AgendaDental/repositories"
	"AgendaDental/utils"
	"context"
	"errors"
	"fmt"
)

// ErrInvalidStatus rejects a status outside the five-value enum. Transitions
// between valid statuses are never restricted.
var ErrInvalidStatus = errors.New("invalid status value")

// ErrNoLinkedPatient is returned when a patient-role token carries no linked
// patient id.
var ErrNoLinkedPatient = errors.New("no linked patient for this account")

type AppointmentService interface {
	List(ctx context.Context, claims *utils.TokenClaims, date string) ([]models.AppointmentView, error)
	MyAppointments(ctx context.Context, claims *utils.TokenClaims) ([]models.AppointmentView, error)
	Create(ctx context.Context, req utils.CreateAppointmentRequest) (uint, error)
	Update(ctx context.Context, id uint, req utils.UpdateAppointmentRequest) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type appointmentService struct {
	appointmentRepo repositories.AppointmentRepository
	waitlist        WaitlistService
}

func NewAppointmentService(appointmentRepo repositories.AppointmentRepository, waitlist WaitlistService) AppointmentService {
	return &appointmentService{appointmentRepo: appointmentRepo, waitlist: waitlist}
}

// List returns appointments scoped by the caller's role: admins see all rows,
// optionally filtered to one calendar date; patients see only rows for their
// linked patient id. The date filter is an admin convenience.
func (s *appointmentService) List(ctx context.Context, claims *utils.TokenClaims, date string) ([]models.AppointmentView, error) {
	patientScope := ""
	if claims.Role != models.RoleAdmin {
		if claims.PatientID == nil {
			return nil, ErrNoLinkedPatient
		}
		patientScope = *claims.PatientID
	}
	return s.appointmentRepo.List(ctx, patientScope, date)
}

// MyAppointments returns the caller's own appointments, most recent first.
func (s *appointmentService) MyAppointments(ctx context.Context, claims *utils.TokenClaims) ([]models.AppointmentView, error) {
	if claims.PatientID == nil {
		return nil, ErrNoLinkedPatient
	}
	return s.appointmentRepo.ListByPatient(ctx, *claims.PatientID)
}

// Create books an appointment for the patient id supplied in the request.
// Any authenticated caller may book for any patient; ownership against the
// caller is not checked, and no double-booking check is performed.
func (s *appointmentService) Create(ctx context.Context, req utils.CreateAppointmentRequest) (uint, error) {
	if err := req.Validate(); err != nil {
		return 0, fmt.Errorf("invalid appointment data: %w", err)
	}

	appointment := &models.Appointment{
		PatientID:   req.PatientID,
		ProcedureID: req.ProcedureID,
		ScheduledAt: req.ScheduledAt,
		Status:      models.StatusScheduled,
		Notes:       req.Notes,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return 0, err
	}
	return appointment.ID, nil
}

// Update replaces the appointment's time and status. Any of the five status
// values may replace any other. Returns the rows changed; 0 means the id was
// not found and is reported as a no-op.
func (s *appointmentService) Update(ctx context.Context, id uint, req utils.UpdateAppointmentRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, fmt.Errorf("invalid appointment data: %w", err)
	}
	if !models.ValidStatus(req.Status) {
		return 0, ErrInvalidStatus
	}
	return s.appointmentRepo.Update(ctx, id, req.ScheduledAt, req.Status)
}

// Delete hard-deletes the appointment. On success the waitlist is notified of
// the opened slot, best-effort.
func (s *appointmentService) Delete(ctx context.Context, id uint) (int64, error) {
	rows, err := s.appointmentRepo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if rows > 0 {
		s.waitlist.NotifyOpenSlot(ctx)
	}
	return rows, nil
}
