package models

import (
	"time"

	"gorm.io/gorm"
)

// Account roles. There are exactly two: clinic staff and self-service patients.
const (
	RoleAdmin   = "admin"
	RolePatient = "patient"
)

// Account represents a login credential. Admin accounts carry a bcrypt
// password hash; patient accounts are created on self-registration with no
// password and authenticate on email match alone.
type Account struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Email     string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Password  string    `gorm:"size:255;column:password" json:"-"`
	Role      string    `gorm:"size:20;not null;default:patient;check:role IN ('admin', 'patient');column:role" json:"role"`
	PatientID *string   `gorm:"column:patient_id;index" json:"patient_id,omitempty"`
	Active    bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (Account) TableName() string {
	return "account"
}

// AccountSummary is the admin listing row: an account left-joined with the
// linked patient's name.
type AccountSummary struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Active      bool   `json:"active"`
	PatientName string `json:"patient_name"`
}

// SeedAdminAccount inserts the default clinic admin account if no account
// exists for the given email. The password arrives already hashed.
func SeedAdminAccount(db *gorm.DB, email, passwordHash string) error {
	admin := Account{
		Email:    email,
		Password: passwordHash,
		Role:     RoleAdmin,
		Active:   true,
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.FirstOrCreate(&admin, Account{Email: email}).Error
	})
}
