package services

import (
	"AgendaDental/models"
	"AgendaDental/utils"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPatient(t *testing.T) {
	var gotPatient *models.Patient
	var gotAccount *models.Account
	repo := &mockPatientRepository{
		RegisterWithAccountFn: func(ctx context.Context, patient *models.Patient, account *models.Account) error {
			gotPatient, gotAccount = patient, account
			return nil
		},
	}
	svc := NewPatientService(repo)

	patient, err := svc.RegisterPatient(context.Background(), utils.RegisterPatientRequest{
		Name:  "Ana",
		Phone: "119999",
		Email: "ana@x.com",
	})
	require.NoError(t, err)

	require.NotNil(t, gotPatient)
	_, err = uuid.Parse(gotPatient.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ana", gotPatient.Name)
	assert.Equal(t, patient, gotPatient)

	require.NotNil(t, gotAccount)
	assert.Equal(t, "ana@x.com", gotAccount.Email)
	assert.Equal(t, models.RolePatient, gotAccount.Role)
	assert.Empty(t, gotAccount.Password)
	assert.True(t, gotAccount.Active)
}

func TestRegisterPatientInvalidPayload(t *testing.T) {
	called := false
	repo := &mockPatientRepository{
		RegisterWithAccountFn: func(ctx context.Context, patient *models.Patient, account *models.Account) error {
			called = true
			return nil
		},
	}
	svc := NewPatientService(repo)

	_, err := svc.RegisterPatient(context.Background(), utils.RegisterPatientRequest{Name: "Ana"})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestCreatePatientWithoutAccount(t *testing.T) {
	var gotPatient *models.Patient
	repo := &mockPatientRepository{
		CreateFn: func(ctx context.Context, patient *models.Patient) error {
			gotPatient = patient
			return nil
		},
	}
	svc := NewPatientService(repo)

	patient, err := svc.CreatePatient(context.Background(), utils.CreatePatientRequest{Name: "Bruno", Phone: "118888"})
	require.NoError(t, err)
	require.NotNil(t, gotPatient)
	assert.Equal(t, patient, gotPatient)

	_, err = uuid.Parse(gotPatient.ID)
	assert.NoError(t, err)
}

func TestGetAllPatients(t *testing.T) {
	want := []models.Patient{{ID: "p1", Name: "Ana"}, {ID: "p2", Name: "Bruno"}}
	repo := &mockPatientRepository{
		GetAllFn: func(ctx context.Context) ([]models.Patient, error) {
			return want, nil
		},
	}
	svc := NewPatientService(repo)

	got, err := svc.GetAllPatients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
