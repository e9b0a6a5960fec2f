package services

import (
	"AgendaDental/models"
	"AgendaDental/utils"
	"context"
	"time"
)

type mockAccountRepository struct {
	GetActiveByEmailFn func(ctx context.Context, email string) (*models.Account, error)
	UpdatePasswordFn   func(ctx context.Context, accountID int64, hashedPassword string) error
	GetSummariesFn     func(ctx context.Context) ([]models.AccountSummary, error)
}

func (m *mockAccountRepository) GetActiveByEmail(ctx context.Context, email string) (*models.Account, error) {
	return m.GetActiveByEmailFn(ctx, email)
}

func (m *mockAccountRepository) UpdatePassword(ctx context.Context, accountID int64, hashedPassword string) error {
	return m.UpdatePasswordFn(ctx, accountID, hashedPassword)
}

func (m *mockAccountRepository) GetSummaries(ctx context.Context) ([]models.AccountSummary, error) {
	return m.GetSummariesFn(ctx)
}

type mockPatientRepository struct {
	CreateFn              func(ctx context.Context, patient *models.Patient) error
	RegisterWithAccountFn func(ctx context.Context, patient *models.Patient, account *models.Account) error
	GetAllFn              func(ctx context.Context) ([]models.Patient, error)
}

func (m *mockPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return m.CreateFn(ctx, patient)
}

func (m *mockPatientRepository) RegisterWithAccount(ctx context.Context, patient *models.Patient, account *models.Account) error {
	return m.RegisterWithAccountFn(ctx, patient, account)
}

func (m *mockPatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	return m.GetAllFn(ctx)
}

type mockAppointmentRepository struct {
	CreateFn        func(ctx context.Context, appointment *models.Appointment) error
	ListFn          func(ctx context.Context, patientID string, date string) ([]models.AppointmentView, error)
	ListByPatientFn func(ctx context.Context, patientID string) ([]models.AppointmentView, error)
	UpdateFn        func(ctx context.Context, id uint, scheduledAt time.Time, status string) (int64, error)
	DeleteFn        func(ctx context.Context, id uint) (int64, error)
}

func (m *mockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return m.CreateFn(ctx, appointment)
}

func (m *mockAppointmentRepository) List(ctx context.Context, patientID string, date string) ([]models.AppointmentView, error) {
	return m.ListFn(ctx, patientID, date)
}

func (m *mockAppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]models.AppointmentView, error) {
	return m.ListByPatientFn(ctx, patientID)
}

func (m *mockAppointmentRepository) Update(ctx context.Context, id uint, scheduledAt time.Time, status string) (int64, error) {
	return m.UpdateFn(ctx, id, scheduledAt, status)
}

func (m *mockAppointmentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	return m.DeleteFn(ctx, id)
}

type mockWaitlistService struct {
	JoinFn        func(ctx context.Context, req utils.JoinWaitlistRequest) (uint, error)
	notifications int
}

func (m *mockWaitlistService) Join(ctx context.Context, req utils.JoinWaitlistRequest) (uint, error) {
	return m.JoinFn(ctx, req)
}

func (m *mockWaitlistService) NotifyOpenSlot(ctx context.Context) {
	m.notifications++
}

type mockStatsRepository struct {
	TodayCountFn   func(ctx context.Context) (int64, error)
	TodayRevenueFn func(ctx context.Context) (float64, error)
	NoShows30dFn   func(ctx context.Context) (int64, error)
	StoreCountsFn  func(ctx context.Context) (*models.StoreInfo, error)
}

func (m *mockStatsRepository) TodayCount(ctx context.Context) (int64, error) {
	return m.TodayCountFn(ctx)
}

func (m *mockStatsRepository) TodayRevenue(ctx context.Context) (float64, error) {
	return m.TodayRevenueFn(ctx)
}

func (m *mockStatsRepository) NoShows30d(ctx context.Context) (int64, error) {
	return m.NoShows30dFn(ctx)
}

func (m *mockStatsRepository) StoreCounts(ctx context.Context) (*models.StoreInfo, error) {
	return m.StoreCountsFn(ctx)
}

type mockWaitlistRepository struct {
	CreateFn      func(ctx context.Context, entry *models.WaitlistEntry) error
	CountActiveFn func(ctx context.Context) (int64, error)
}

func (m *mockWaitlistRepository) Create(ctx context.Context, entry *models.WaitlistEntry) error {
	return m.CreateFn(ctx, entry)
}

func (m *mockWaitlistRepository) CountActive(ctx context.Context) (int64, error) {
	return m.CountActiveFn(ctx)
}
