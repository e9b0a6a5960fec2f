package utils

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
)

// RegisterPatientRequest is the self-registration payload.
type RegisterPatientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Validate checks the self-registration payload. Name is required; phone and
// email are optional, but registration without an email yields an account
// that cannot log in, so email is required here.
func (r RegisterPatientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// CreatePatientRequest is the admin patient-creation payload. Email stays
// optional: admin-created patients have no login account.
type CreatePatientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (r CreatePatientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, is.Email),
	)
}

// CreateAppointmentRequest is the booking payload. Any authenticated caller
// may book for any patient id; ownership is not checked.
type CreateAppointmentRequest struct {
	PatientID   string    `json:"patient_id"`
	ProcedureID uint      `json:"procedure_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       string    `json:"notes"`
}

func (r CreateAppointmentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PatientID, validation.Required),
		validation.Field(&r.ProcedureID, validation.Required),
		validation.Field(&r.ScheduledAt, validation.Required),
	)
}

// UpdateAppointmentRequest replaces an appointment's time and status.
type UpdateAppointmentRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
}

func (r UpdateAppointmentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ScheduledAt, validation.Required),
		validation.Field(&r.Status, validation.Required),
	)
}

// JoinWaitlistRequest is the standby-queue payload.
type JoinWaitlistRequest struct {
	PatientID     string `json:"patient_id"`
	ProcedureID   uint   `json:"procedure_id"`
	PreferredDate string `json:"preferred_date"`
}

func (r JoinWaitlistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PatientID, validation.Required),
		validation.Field(&r.ProcedureID, validation.Required),
		validation.Field(&r.PreferredDate, validation.Date("2006-01-02")),
	)
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	return validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(ValidatePasswordComplexity)),
	}.Filter()
}

// ValidatePasswordComplexity checks the password for length and complexity.
func ValidatePasswordComplexity(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
