package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/riskibarqy/fpl-planner/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-planner/internal/infrastructure/repository/sqlite"
)

// Loads the bundled demo dataset into a sqlite database so the planner and
// tuner have something to run against out of the box.
func main() {
	dbPath := strings.TrimSpace(os.Getenv("DB_PATH"))
	if dbPath == "" {
		dbPath = "fpl-planner.db"
	}

	db, err := sqlite.Open(dbPath)
	if err != nil {
		log.Fatalf("open database %s: %v", dbPath, err)
	}
	defer func() {
		_ = db.Close()
	}()

	ctx := context.Background()
	if err := sqlite.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	players := sqlite.NewPlayerRepository(db)
	for g := 1; g <= memory.SeedGameweeks; g++ {
		if err := players.Save(ctx, memory.SeedSeason, g, memory.SeedPlayers()); err != nil {
			log.Fatalf("seed players for gameweek %d: %v", g, err)
		}
	}

	if err := sqlite.NewPredictionRepository(db).Save(ctx, memory.SeedSeason, memory.SeedPredictions()); err != nil {
		log.Fatalf("seed predictions: %v", err)
	}

	points, minutes := memory.SeedResults()
	if err := sqlite.NewResultRepository(db).Save(ctx, memory.SeedSeason, points, minutes); err != nil {
		log.Fatalf("seed results: %v", err)
	}

	log.Printf("seeded season %s gameweeks 1..%d into %s", memory.SeedSeason, memory.SeedGameweeks, dbPath)
}
