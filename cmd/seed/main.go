package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/config"
	"github.com/tanmaybhole18/Aarti-Booking-Portal/internal/domain"
	slotRepo "github.com/tanmaybhole18/Aarti-Booking-Portal/internal/infra/storage/slot"
)

// Даты Навратри: 22/09/2025 - 01/10/2025
var navratriDates = []string{
	"2025-09-22",
	"2025-09-23",
	"2025-09-24",
	"2025-09-25",
	"2025-09-26",
	"2025-09-27",
	"2025-09-28",
	"2025-09-29",
	"2025-09-30",
	"2025-10-01",
}

var timeSlots = []domain.TimeOfDay{
	domain.FirstAarti,
	domain.SecondAarti,
}

// Сидер календаря слотов. Идемпотентен: существующие слоты не трогает,
// повторный запуск ничего не ломает
func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	capacity := flag.Int("capacity", 2, "bookings per slot")
	flag.Parse()

	if *capacity <= 0 {
		fmt.Println("capacity must be positive")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Printf("Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	repo := slotRepo.NewRepository(db)
	ctx := context.Background()

	seeded := 0
	for _, dateStr := range navratriDates {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			fmt.Printf("Invalid seed date %s: %v\n", dateStr, err)
			os.Exit(1)
		}

		for _, timeOfDay := range timeSlots {
			err := repo.Upsert(ctx, &domain.Slot{
				Date:      date,
				TimeOfDay: timeOfDay,
				Capacity:  *capacity,
			})
			if err != nil {
				fmt.Printf("Failed to seed slot %s / %s: %v\n", dateStr, timeOfDay, err)
				os.Exit(1)
			}
			seeded++
		}
	}

	fmt.Printf("Seeded %d Navratri aarti slots (%s - %s, capacity %d)\n",
		seeded, navratriDates[0], navratriDates[len(navratriDates)-1], *capacity)
}
