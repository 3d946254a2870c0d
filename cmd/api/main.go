package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"seatrips/internal/database"
	"seatrips/internal/middleware"
	"seatrips/internal/modules/auth"
	"seatrips/internal/modules/catalog"
	"seatrips/internal/modules/feed"
	"seatrips/internal/modules/promo"
	"seatrips/internal/modules/reminder"
	"seatrips/internal/modules/reservation"
	jwtsvc "seatrips/internal/pkg/jwt"
	"seatrips/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := database.Migrate(db); err != nil {
			log.Fatal(err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	excursionRepo := repository.NewExcursionRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	promoRepo := repository.NewPromoRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := feed.NewHub()
	events := feed.NewService(hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(excursionRepo, slotRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(db, bookingRepo, events)
	reservationHandler := reservation.NewHandler(reservationService)

	promoService := promo.NewService(promoRepo)
	promoHandler := promo.NewHandler(promoService)

	reminderService := reminder.NewService(bookingRepo)
	reminderHandler := reminder.NewHandler(reminderService)

	feedHandler := feed.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		reservationHandler.RegisterPublicRoutes(v1)

		// any authenticated user
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			reservationHandler.RegisterRoutes(protected)
		}

		// staff
		staff := v1.Group("/")
		staff.Use(middleware.Auth(j), middleware.StaffOnly())
		{
			catalogHandler.RegisterStaffRoutes(staff)
			reservationHandler.RegisterStaffRoutes(staff)
			promoHandler.RegisterRoutes(staff)
			reminderHandler.RegisterRoutes(staff)
			feedHandler.RegisterRoutes(staff)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
