package services

import (
	"AgendaDental/models"
	"AgendaDental/utils"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinWaitlist(t *testing.T) {
	var gotEntry *models.WaitlistEntry
	repo := &mockWaitlistRepository{
		CreateFn: func(ctx context.Context, entry *models.WaitlistEntry) error {
			entry.ID = 4
			gotEntry = entry
			return nil
		},
	}
	svc := NewWaitlistService(repo)

	id, err := svc.Join(context.Background(), utils.JoinWaitlistRequest{
		PatientID:     "p-abc",
		ProcedureID:   2,
		PreferredDate: "2026-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(4), id)
	require.NotNil(t, gotEntry)
	assert.Equal(t, "p-abc", gotEntry.PatientID)
	assert.Equal(t, "2026-09-15", gotEntry.PreferredDate)
}

func TestJoinWaitlistInvalidPayload(t *testing.T) {
	called := false
	repo := &mockWaitlistRepository{
		CreateFn: func(ctx context.Context, entry *models.WaitlistEntry) error {
			called = true
			return nil
		},
	}
	svc := NewWaitlistService(repo)

	_, err := svc.Join(context.Background(), utils.JoinWaitlistRequest{PreferredDate: "next tuesday"})
	assert.Error(t, err)
	assert.False(t, called)
}
