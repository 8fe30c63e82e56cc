package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/fpl-planner/internal/config"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
	"github.com/riskibarqy/fpl-planner/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/fpl-planner/internal/optimize"
	"github.com/riskibarqy/fpl-planner/internal/platform/logging"
	"github.com/riskibarqy/fpl-planner/internal/simulation"
	"github.com/riskibarqy/fpl-planner/internal/tuning"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("tuner failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := sqlite.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	var engine simulation.Engine
	switch cfg.Engine {
	case config.EngineExact:
		engine = optimize.NewExact(logger)
	default:
		// Tuning replays many seasons per trial, so the greedy engine is the
		// practical default here.
		engine = optimize.NewGreedy(logger)
	}

	replayer := simulation.NewReplayer(engine, sqlite.NewSource(db), logger)
	seasons := []simulation.Config{{
		Season:            cfg.Season,
		FirstGameweek:     cfg.NextGameweek,
		LastGameweek:      cfg.LastGameweek,
		WildcardGameweeks: cfg.WildcardGameweeks,
		BlackoutGameweeks: cfg.BlackoutGameweeks,
		InitialSquad:      squad.New(cfg.SquadIDs...),
		InitialBudget:     cfg.Budget,
	}}

	tuner := tuning.NewTuner(
		replayer,
		seasons,
		sqlite.NewTrialRepository(db),
		logger,
		cfg.TuningSeed,
		cfg.TuningWorkers,
	)

	best, err := tuner.Run(ctx, cfg.TuningTrials)
	if err != nil {
		return fmt.Errorf("run %d trials: %w", cfg.TuningTrials, err)
	}

	logger.Info("tuning finished",
		"trials", cfg.TuningTrials,
		"best_trial", best.ID,
		"best_score", best.Score,
	)

	out, err := sonic.MarshalIndent(best, "", "  ")
	if err != nil {
		return fmt.Errorf("encode best trial: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
