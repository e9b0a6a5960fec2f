package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment status values. The status is a flat enum: any value may be
// replaced by any other through an admin update, there is no transition table.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusNoShow    = "no_show"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the five appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	}
	return false
}

// Patient model
type Patient struct {
	ID           string        `gorm:"primaryKey;column:id" json:"id"`
	Name         string        `gorm:"column:name;not null;index" json:"name"`
	Phone        string        `gorm:"column:phone" json:"phone"`
	Email        string        `gorm:"column:email" json:"email"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Appointments []Appointment `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Procedure model
type Procedure struct {
	ID       uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name     string  `gorm:"column:name;not null" json:"name"`
	Duration int     `gorm:"column:duration;not null;check:duration > 0" json:"duration"`
	Price    float64 `gorm:"column:price" json:"price"`
}

func (Procedure) TableName() string {
	return "procedure"
}

// Appointment model
type Appointment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID   string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	ProcedureID uint      `gorm:"column:procedure_id;not null;index" json:"procedure_id"`
	ScheduledAt time.Time `gorm:"column:scheduled_at;not null;index" json:"scheduled_at"`
	Status      string    `gorm:"column:status;default:scheduled;check:status IN ('scheduled', 'confirmed', 'completed', 'no_show', 'cancelled');not null" json:"status"`
	Notes       string    `gorm:"column:notes" json:"notes"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient     Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Procedure   Procedure `gorm:"foreignKey:ProcedureID;references:ID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// AppointmentView is an appointment row joined with the patient and procedure
// display fields used by the agenda screens.
type AppointmentView struct {
	ID            uint      `json:"id"`
	PatientID     string    `json:"patient_id"`
	ProcedureID   uint      `json:"procedure_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	PatientName   string    `json:"patient_name"`
	PatientPhone  string    `json:"patient_phone"`
	ProcedureName string    `json:"procedure_name"`
	Duration      int       `json:"duration"`
	Price         float64   `json:"price"`
}

// WaitlistEntry model. Entries are recorded only; nothing promotes them into
// freed slots automatically.
type WaitlistEntry struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	PatientID     string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	ProcedureID   uint      `gorm:"column:procedure_id;not null;index" json:"procedure_id"`
	PreferredDate string    `gorm:"column:preferred_date" json:"preferred_date"`
	Active        bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient       Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Procedure     Procedure `gorm:"foreignKey:ProcedureID;references:ID" json:"-"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist_entry"
}

// SeedProcedures inserts the default procedure catalogue into the database.
func SeedProcedures(db *gorm.DB) error {
	initialProcedures := []Procedure{
		{Name: "Checkup", Duration: 30, Price: 80.00},
		{Name: "Cleaning", Duration: 45, Price: 120.00},
		{Name: "Filling", Duration: 60, Price: 200.00},
		{Name: "Extraction", Duration: 45, Price: 150.00},
		{Name: "Root Canal", Duration: 90, Price: 400.00},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, procedure := range initialProcedures {
			if err := tx.FirstOrCreate(&procedure, Procedure{Name: procedure.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
