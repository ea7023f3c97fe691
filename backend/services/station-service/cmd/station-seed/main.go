package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"evcharge/backend/libs/logging"
	"evcharge/backend/services/station-service/internal/config"
)

const seedCount = 20

var (
	streetNames = []string{
		"Main", "Oak", "Maple", "Cedar", "Elm", "Harbor", "Lake", "Hill",
		"River", "Park", "Union", "Station", "Broad", "Mill", "Sunset",
	}
	streetKinds = []string{"St", "Ave", "Blvd", "Rd", "Ln"}
	cities      = []string{"Springfield", "Riverton", "Oakdale", "Lakeside", "Fairview"}
	statuses    = []string{"available", "charging", "offline"}
	powerPool   = []float64{22, 50, 150, 350}
)

func main() {
	logger, err := logging.NewLogger("station-seed")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.DSN())
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer conn.Close(context.Background())

	if err := seed(ctx, conn); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding complete", zap.Int("stations", seedCount))
}

func seed(ctx context.Context, conn *pgx.Conn) error {
	// The table may not exist yet when the seed runs before the service.
	const ddl = `
		CREATE TABLE IF NOT EXISTS stations (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			location   TEXT NOT NULL,
			status     TEXT NOT NULL DEFAULT 'available',
			power_kw   DOUBLE PRECISION NOT NULL DEFAULT 50.0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := conn.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	// Clear existing data so re-runs do not pile up duplicates.
	if _, err := conn.Exec(ctx, `TRUNCATE TABLE stations RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("truncate stations: %w", err)
	}

	rows := make([][]any, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		street := streetNames[rand.IntN(len(streetNames))]
		kind := streetKinds[rand.IntN(len(streetKinds))]
		rows = append(rows, []any{
			fmt.Sprintf("%s %s SuperCharger", street, kind),
			fmt.Sprintf("%d %s %s, %s", 1+rand.IntN(9899), street, kind, cities[rand.IntN(len(cities))]),
			statuses[rand.IntN(len(statuses))],
			powerPool[rand.IntN(len(powerPool))],
		})
	}

	inserted, err := conn.CopyFrom(ctx,
		pgx.Identifier{"stations"},
		[]string{"name", "location", "status", "power_kw"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("bulk insert: %w", err)
	}
	if inserted != seedCount {
		return fmt.Errorf("bulk insert: expected %d rows, inserted %d", seedCount, inserted)
	}
	return nil
}
