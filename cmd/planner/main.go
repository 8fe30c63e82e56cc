package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fpl-planner/internal/config"
	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/prediction"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
	"github.com/riskibarqy/fpl-planner/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/fpl-planner/internal/optimize"
	"github.com/riskibarqy/fpl-planner/internal/platform/logging"
	"github.com/riskibarqy/fpl-planner/internal/simulation"
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
		logger.Error("planner failed", "error", err)
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

	playerRepo := sqlite.NewPlayerRepository(db)
	predictionRepo := sqlite.NewPredictionRepository(db)

	var (
		players     []player.Player
		predictions prediction.Matrix
	)
	loads := pool.New().WithContext(ctx).WithCancelOnError()
	loads.Go(func(ctx context.Context) error {
		var err error
		players, err = playerRepo.ListByGameweek(ctx, cfg.Season, cfg.NextGameweek)
		return err
	})
	loads.Go(func(ctx context.Context) error {
		var err error
		predictions, err = predictionRepo.ListByGameweek(ctx, cfg.Season, cfg.NextGameweek)
		return err
	})
	if err := loads.Wait(); err != nil {
		return fmt.Errorf("load planning inputs: %w", err)
	}

	params, err := loadParameters(ctx, sqlite.NewTrialRepository(db), logger)
	if err != nil {
		return err
	}

	var engine simulation.Engine
	switch cfg.Engine {
	case config.EngineGreedy:
		engine = optimize.NewGreedy(logger)
	default:
		engine = optimize.NewExact(logger)
	}

	solveCtx, cancel := context.WithTimeout(ctx, cfg.SolveTimeout)
	defer cancel()

	p, err := engine.Optimize(solveCtx, optimize.Request{
		Season:            cfg.Season,
		NextGameweek:      cfg.NextGameweek,
		LastGameweek:      cfg.LastGameweek,
		WildcardGameweeks: cfg.WildcardGameweeks,
		BlackoutGameweeks: cfg.BlackoutGameweeks,
		Squad:             squad.New(cfg.SquadIDs...),
		Budget:            cfg.Budget,
		FreeTransfers:     cfg.FreeTransfers,
		TransfersMade:     cfg.TransfersMade,
		Players:           players,
		Predictions:       predictions,
		Params:            params,
	})
	if err != nil {
		return fmt.Errorf("optimize gameweek %d: %w", cfg.NextGameweek, err)
	}

	logger.Info("plan ready",
		"engine", cfg.Engine,
		"gameweek", cfg.NextGameweek,
		"transfers", len(p.Sales),
		"paid_transfers", p.PaidTransfers,
		"budget", p.Budget,
	)

	out, err := sonic.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	fmt.Println(string(out))

	return nil
}

// loadParameters prefers the best tuned parameter set on record and falls
// back to the defaults when no tuning has run yet.
func loadParameters(ctx context.Context, trials *sqlite.TrialRepository, logger *logging.Logger) (optimize.Parameters, error) {
	best, err := trials.Best(ctx)
	if errors.Is(err, sqlite.ErrNoTrials) {
		logger.Info("no tuned parameters on record, using defaults")
		return optimize.DefaultParameters(), nil
	}
	if err != nil {
		return optimize.Parameters{}, fmt.Errorf("load tuned parameters: %w", err)
	}

	logger.Info("using tuned parameters", "trial", best.ID, "score", best.Score)
	return best.Params, nil
}
