package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/playgrid/SlotBookingService/internal/app"
	"github.com/playgrid/SlotBookingService/internal/config"
	"github.com/playgrid/SlotBookingService/internal/domain"
	bookingRepo "github.com/playgrid/SlotBookingService/internal/infra/storage/booking"
	slotRepo "github.com/playgrid/SlotBookingService/internal/infra/storage/slot"
	venueRepo "github.com/playgrid/SlotBookingService/internal/infra/storage/venue"
	"github.com/playgrid/SlotBookingService/pkg/logger"
	"github.com/playgrid/SlotBookingService/pkg/types"
)

// Сидер наполняет базу тестовыми данными: площадки, слоты на неделю вперёд
// и несколько случайных бронирований. Запускать только на пустой базе.

var (
	venueNames = []string{"Venue A", "Venue B", "Venue C"}

	slotTimes = []types.TimeString{
		"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00",
	}

	sampleSports = []string{"Basketball", "Cricket", "Football", "Badminton"}
)

const (
	seedDays    = 7
	bookedShare = 0.2
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	migrator, err := app.NewMigrator(db, cfg.Database.MigrationsPath)
	if err != nil {
		log.Fatal("Failed to init migrator: %v", err)
	}
	if err := migrator.Run(ctx); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	venues := venueRepo.NewRepository(db)
	slots := slotRepo.NewRepository(db)
	bookings := bookingRepo.NewRepository(db)

	log.Info("Seeding database...")

	// Площадки
	createdVenues := make([]*domain.Venue, 0, len(venueNames))
	for _, name := range venueNames {
		v, err := venues.Create(ctx, &domain.Venue{Name: name})
		if err != nil {
			log.Fatal("Failed to create venue %q: %v", name, err)
		}
		createdVenues = append(createdVenues, v)
		log.Info("Created venue %q (id=%s)", v.Name, v.ID)
	}

	// Слоты на неделю вперёд, ~20% сразу заняты
	today := time.Now().Truncate(24 * time.Hour)
	bookedSlots := make([]*domain.Slot, 0)

	for day := 0; day < seedDays; day++ {
		date := today.AddDate(0, 0, day)

		for _, v := range createdVenues {
			for _, slotTime := range slotTimes {
				s, err := slots.Create(ctx, &domain.Slot{
					VenueID: v.ID,
					Date:    date,
					Time:    slotTime,
					Booked:  rand.Float64() < bookedShare,
				})
				if err != nil {
					log.Fatal("Failed to create slot: %v", err)
				}
				if s.Booked {
					bookedSlots = append(bookedSlots, s)
				}
			}
		}
	}

	log.Info("Created slots for the next %d days", seedDays)

	// Бронирования для занятых слотов
	for _, s := range bookedSlots {
		userName := fmt.Sprintf("User %d", rand.Intn(100))
		sport := sampleSports[rand.Intn(len(sampleSports))]

		if _, err := bookings.Create(ctx, domain.NewBooking(s.ID, userName, sport)); err != nil {
			log.Fatal("Failed to create booking for slot %s: %v", s.ID, err)
		}
	}

	log.Info("Created %d sample bookings", len(bookedSlots))
	log.Info("Database seeded successfully")
}
