package jobs

import (
	"AgendaDental/models"
	"AgendaDental/repositories"
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StartReminderJob schedules the daily reminder run at 09:00 server-local
// time. Delivery is not integrated; the run only logs how many appointments
// would be reminded today.
func StartReminderJob(appointmentRepo repositories.AppointmentRepository) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 9 * * *", func() {
		sendDailyReminders(appointmentRepo)
	})
	if err != nil {
		log.Fatalf("failed to register reminder job: %v", err)
	}

	c.Start()
	log.Println("Daily reminder job scheduled for 09:00")
	return c
}

func sendDailyReminders(appointmentRepo repositories.AppointmentRepository) {
	ctx := context.Background()
	views, err := appointmentRepo.List(ctx, "", todayDate())
	if err != nil {
		log.Printf("Reminder run failed to list today's appointments: %v", err)
		return
	}

	pending := 0
	for _, v := range views {
		if v.Status == models.StatusScheduled || v.Status == models.StatusConfirmed {
			pending++
		}
	}
	log.Printf("Daily reminder run: %d appointments to remind today", pending)
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}
