package main

import (
	"log"
	"time"

	"seatrips/internal/database"
	"seatrips/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	db, err := database.Connect("seatrips.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// cleanup old data (children first, FK order)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM booking_children")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM promo_codes")
	db.Exec("DELETE FROM slots")
	db.Exec("DELETE FROM excursions")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := domain.User{
		Email:        "staff@seatrips.local",
		PasswordHash: string(staffHash),
		Role:         domain.RoleStaff,
		Name:         "Marina Desk",
	}
	db.Create(&staff)

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	client := domain.User{
		Email:        "client@seatrips.local",
		PasswordHash: string(clientHash),
		Role:         domain.RoleClient,
		Name:         "Ivan Petrov",
	}
	db.Create(&client)

	captain := domain.User{
		Email:        "captain@seatrips.local",
		PasswordHash: string(staffHash),
		Role:         domain.RoleStaff,
		Name:         "Captain Orlov",
	}
	db.Create(&captain)

	log.Println("Creating excursions and slots...")
	sunset := domain.Excursion{
		Name:        "Sunset Bay Cruise",
		Description: "Two hours along the bay with a sunset stop.",
		Duration:    2 * time.Hour,
		BasePrice:   2500,
		Active:      true,
	}
	db.Create(&sunset)

	fishing := domain.Excursion{
		Name:        "Morning Fishing Trip",
		Description: "Gear included, catch not guaranteed.",
		Duration:    4 * time.Hour,
		BasePrice:   4000,
		Active:      true,
	}
	db.Create(&fishing)

	tomorrow := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	slots := []domain.Slot{
		{ExcursionID: sunset.ID, StartTime: tomorrow.Add(18 * time.Hour), MaxPeople: 10, MaxWeight: 900, CaptainID: &captain.ID, Status: domain.SlotScheduled},
		{ExcursionID: sunset.ID, StartTime: tomorrow.Add(42 * time.Hour), MaxPeople: 10, MaxWeight: 900, CaptainID: &captain.ID, Status: domain.SlotScheduled},
		{ExcursionID: fishing.ID, StartTime: tomorrow.Add(6 * time.Hour), MaxPeople: 6, CaptainID: &captain.ID, Status: domain.SlotScheduled},
	}
	for i := range slots {
		db.Create(&slots[i])
	}

	log.Println("Creating promo codes...")
	promos := []domain.PromoCode{
		{
			Code:          "SUMMER10",
			DiscountType:  domain.DiscountPercent,
			DiscountValue: 10,
			ValidFrom:     time.Now().Add(-24 * time.Hour),
			ValidUntil:    time.Now().Add(30 * 24 * time.Hour),
			UsageLimit:    100,
		},
		{
			Code:          "WELCOME500",
			DiscountType:  domain.DiscountFixed,
			DiscountValue: 500,
			ValidFrom:     time.Now().Add(-24 * time.Hour),
			ValidUntil:    time.Now().Add(7 * 24 * time.Hour),
			UsageLimit:    1,
		},
	}
	for i := range promos {
		db.Create(&promos[i])
	}

	log.Println("Seed completed")
	log.Println("  staff:  staff@seatrips.local / staff123")
	log.Println("  client: client@seatrips.local / client123")
}
