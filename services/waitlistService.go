package services

import (
	"AgendaDental/models"
	"AgendaDental/repositories"
	"AgendaDental/utils"
	"context"
	"fmt"
	"log"
)

type WaitlistService interface {
	Join(ctx context.Context, req utils.JoinWaitlistRequest) (uint, error)
	NotifyOpenSlot(ctx context.Context)
}

type waitlistService struct {
	waitlistRepo repositories.WaitlistRepository
}

func NewWaitlistService(waitlistRepo repositories.WaitlistRepository) WaitlistService {
	return &waitlistService{waitlistRepo: waitlistRepo}
}

// Join records a standby request for an earlier slot. Entries are
// informational; nothing promotes them automatically.
func (s *waitlistService) Join(ctx context.Context, req utils.JoinWaitlistRequest) (uint, error) {
	if err := req.Validate(); err != nil {
		return 0, fmt.Errorf("invalid waitlist data: %w", err)
	}

	entry := &models.WaitlistEntry{
		PatientID:     req.PatientID,
		ProcedureID:   req.ProcedureID,
		PreferredDate: req.PreferredDate,
	}
	if err := s.waitlistRepo.Create(ctx, entry); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// NotifyOpenSlot is the hook fired when a booked slot frees up. The outbound
// notification channel is not integrated yet; the event is only logged.
// TODO: deliver to the clinic's WhatsApp gateway once credentials exist.
func (s *waitlistService) NotifyOpenSlot(ctx context.Context) {
	count, err := s.waitlistRepo.CountActive(ctx)
	if err != nil {
		log.Printf("Failed to count waitlist entries for slot notification: %v", err)
		return
	}
	log.Printf("Open slot available; %d active waitlist entries to notify", count)
}
