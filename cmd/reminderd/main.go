package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"seatrips/internal/database"
	"seatrips/internal/modules/reminder"
	"seatrips/internal/repository"
)

// One-shot reminder pass, meant to run from cron. Selects bookings due for a
// departure reminder and hands them to the delivery side (here: the log; a
// push/SMS gateway replaces this in production).
func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	windowHours := 24
	if v := os.Getenv("REMINDER_WINDOW_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("invalid REMINDER_WINDOW_HOURS: %q", v)
		}
		windowHours = n
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	svc := reminder.NewService(repository.NewBookingRepository(db))

	bookings, err := svc.UpcomingForReminder(context.Background(), windowHours)
	if err != nil {
		log.Fatalf("reminder selection failed: %v", err)
	}

	for _, b := range bookings {
		start := ""
		excursion := ""
		if b.Slot != nil {
			start = b.Slot.StartTime.Format("2006-01-02 15:04")
			if b.Slot.Excursion != nil {
				excursion = b.Slot.Excursion.Name
			}
		}
		log.Printf("reminder booking_id=%d holder_id=%d excursion=%q start=%s", b.ID, b.HolderID, excursion, start)
	}

	log.Printf("reminder pass completed: window_hours=%d due=%d", windowHours, len(bookings))
}
