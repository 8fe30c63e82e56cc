package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fpl-planner/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	EngineExact  = "exact"
	EngineGreedy = "greedy"
)

// Config stores runtime configuration for the planner.
type Config struct {
	AppEnv            string
	ServiceName       string
	ServiceVersion    string
	DBPath            string
	Engine            string
	Season            string
	NextGameweek      int
	LastGameweek      int
	SquadIDs          []int
	Budget            int
	FreeTransfers     int
	TransfersMade     int
	WildcardGameweeks []int
	BlackoutGameweeks []int
	SolveTimeout      time.Duration
	TuningTrials      int
	TuningWorkers     int
	TuningSeed        int64
	LogLevel          logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	engine, err := parseEngine(getEnv("PLANNER_ENGINE", EngineExact))
	if err != nil {
		return Config{}, err
	}

	nextGameweek, err := getEnvAsInt("PLANNER_NEXT_GAMEWEEK", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse PLANNER_NEXT_GAMEWEEK: %w", err)
	}
	if nextGameweek < 1 {
		return Config{}, fmt.Errorf("PLANNER_NEXT_GAMEWEEK must be >= 1")
	}

	lastGameweek, err := getEnvAsInt("PLANNER_LAST_GAMEWEEK", 38)
	if err != nil {
		return Config{}, fmt.Errorf("parse PLANNER_LAST_GAMEWEEK: %w", err)
	}
	if lastGameweek < nextGameweek {
		return Config{}, fmt.Errorf("PLANNER_LAST_GAMEWEEK must be >= PLANNER_NEXT_GAMEWEEK")
	}

	squadIDs, err := getEnvAsInts("PLANNER_SQUAD_IDS")
	if err != nil {
		return Config{}, fmt.Errorf("parse PLANNER_SQUAD_IDS: %w", err)
	}

	budget, err := getEnvAsInt("PLANNER_BUDGET", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse PLANNER_BUDGET: %w", err)
	}
	if budget < 0 {
		return Config{}, fmt.Errorf("PLANNER_BUDGET must be >= 0")
	}

	freeTransfers, err := getEnvAsInt("PLANNER_FREE_TRANSFERS", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse PLANNER_FREE_TRANSFERS: %w", err)
	}

	transfersMade, err := getEnvAsInt("PLANNER_TRANSFERS_MADE", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse PLANNER_TRANSFERS_MADE: %w", err)
	}
	if transfersMade < 0 {
		return Config{}, fmt.Errorf("PLANNER_TRANSFERS_MADE must be >= 0")
	}

	wildcards, err := getEnvAsInts("PLANNER_WILDCARD_GAMEWEEKS")
	if err != nil {
		return Config{}, fmt.Errorf("parse PLANNER_WILDCARD_GAMEWEEKS: %w", err)
	}

	blackouts, err := getEnvAsInts("PLANNER_BLACKOUT_GAMEWEEKS")
	if err != nil {
		return Config{}, fmt.Errorf("parse PLANNER_BLACKOUT_GAMEWEEKS: %w", err)
	}

	solveTimeout, err := time.ParseDuration(getEnv("PLANNER_SOLVE_TIMEOUT", "2m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PLANNER_SOLVE_TIMEOUT: %w", err)
	}
	if solveTimeout <= 0 {
		return Config{}, fmt.Errorf("PLANNER_SOLVE_TIMEOUT must be > 0")
	}

	tuningTrials, err := getEnvAsInt("TUNING_TRIALS", 50)
	if err != nil {
		return Config{}, fmt.Errorf("parse TUNING_TRIALS: %w", err)
	}
	if tuningTrials < 1 {
		return Config{}, fmt.Errorf("TUNING_TRIALS must be >= 1")
	}

	tuningWorkers, err := getEnvAsInt("TUNING_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse TUNING_WORKERS: %w", err)
	}
	if tuningWorkers < 1 {
		return Config{}, fmt.Errorf("TUNING_WORKERS must be >= 1")
	}

	tuningSeed, err := getEnvAsInt("TUNING_SEED", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse TUNING_SEED: %w", err)
	}

	logLevel := parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	return Config{
		AppEnv:            appEnv,
		ServiceName:       getEnv("SERVICE_NAME", "fpl-planner"),
		ServiceVersion:    getEnv("SERVICE_VERSION", "dev"),
		DBPath:            getEnv("DB_PATH", "fpl-planner.db"),
		Engine:            engine,
		Season:            getEnv("PLANNER_SEASON", "2025-26"),
		NextGameweek:      nextGameweek,
		LastGameweek:      lastGameweek,
		SquadIDs:          squadIDs,
		Budget:            budget,
		FreeTransfers:     freeTransfers,
		TransfersMade:     transfersMade,
		WildcardGameweeks: wildcards,
		BlackoutGameweeks: blackouts,
		SolveTimeout:      solveTimeout,
		TuningTrials:      tuningTrials,
		TuningWorkers:     tuningWorkers,
		TuningSeed:        int64(tuningSeed),
		LogLevel:          logLevel,
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseEngine(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EngineExact, EngineGreedy:
		return value, nil
	default:
		return "", fmt.Errorf("invalid PLANNER_ENGINE %q: valid values are %s, %s", v, EngineExact, EngineGreedy)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsInts(key string) ([]int, error) {
	items := splitCSV(os.Getenv(key))
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]int, 0, len(items))
	for _, item := range items {
		v, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("invalid item %q: %w", item, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
