package memory

import (
	"github.com/riskibarqy/fpl-planner/internal/domain/player"
	"github.com/riskibarqy/fpl-planner/internal/domain/prediction"
	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
)

// SeedSeason is the season label used by all seeded fixtures.
const SeedSeason = "2025-26"

// SeedGameweeks is how many rounds the seeded fixtures cover.
const SeedGameweeks = 3

// SeedPlayers returns a 30-player universe: ids 1-15 form a legal squad,
// ids 16-30 are the transfer market. Team assignments are chosen so that
// the per-team limit actually bites (team 1 already has three members).
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Team: 1, Name: "Marsh", Position: player.PositionGoalkeeper, NowCost: 50},
		{ID: 2, Team: 2, Name: "Okafor", Position: player.PositionGoalkeeper, NowCost: 45},
		{ID: 3, Team: 1, Name: "Reyes", Position: player.PositionDefender, NowCost: 55},
		{ID: 4, Team: 1, Name: "Brandt", Position: player.PositionDefender, NowCost: 60},
		{ID: 5, Team: 5, Name: "Costa", Position: player.PositionDefender, NowCost: 45},
		{ID: 6, Team: 2, Name: "Ilic", Position: player.PositionDefender, NowCost: 50},
		{ID: 7, Team: 3, Name: "Mensah", Position: player.PositionDefender, NowCost: 40},
		{ID: 8, Team: 2, Name: "Duarte", Position: player.PositionMidfielder, NowCost: 80},
		{ID: 9, Team: 3, Name: "Kovac", Position: player.PositionMidfielder, NowCost: 75},
		{ID: 10, Team: 4, Name: "Lindgren", Position: player.PositionMidfielder, NowCost: 65},
		{ID: 11, Team: 5, Name: "Traore", Position: player.PositionMidfielder, NowCost: 60},
		{ID: 12, Team: 6, Name: "Petit", Position: player.PositionMidfielder, NowCost: 55},
		{ID: 13, Team: 7, Name: "Sorensen", Position: player.PositionForward, NowCost: 85},
		{ID: 14, Team: 8, Name: "Alves", Position: player.PositionForward, NowCost: 70},
		{ID: 15, Team: 9, Name: "Gruber", Position: player.PositionForward, NowCost: 60},
		{ID: 16, Team: 3, Name: "Walsh", Position: player.PositionGoalkeeper, NowCost: 47},
		{ID: 17, Team: 4, Name: "Dubois", Position: player.PositionGoalkeeper, NowCost: 40},
		{ID: 18, Team: 1, Name: "Novak", Position: player.PositionDefender, NowCost: 42},
		{ID: 19, Team: 6, Name: "Eriksen", Position: player.PositionDefender, NowCost: 70},
		{ID: 20, Team: 6, Name: "Baros", Position: player.PositionDefender, NowCost: 52},
		{ID: 21, Team: 7, Name: "Takagi", Position: player.PositionDefender, NowCost: 44},
		{ID: 22, Team: 7, Name: "Osei", Position: player.PositionDefender, NowCost: 40},
		{ID: 23, Team: 8, Name: "Vidal", Position: player.PositionMidfielder, NowCost: 90},
		{ID: 24, Team: 8, Name: "Lang", Position: player.PositionMidfielder, NowCost: 70},
		{ID: 25, Team: 9, Name: "Moreau", Position: player.PositionMidfielder, NowCost: 62},
		{ID: 26, Team: 9, Name: "Santos", Position: player.PositionMidfielder, NowCost: 58},
		{ID: 27, Team: 9, Name: "Bakker", Position: player.PositionMidfielder, NowCost: 40},
		{ID: 28, Team: 10, Name: "Weber", Position: player.PositionForward, NowCost: 95},
		{ID: 29, Team: 10, Name: "Fontaine", Position: player.PositionForward, NowCost: 66},
		{ID: 30, Team: 10, Name: "Hara", Position: player.PositionForward, NowCost: 45},
	}
}

// SeedSquad returns the owned squad, ids 1 through 15.
func SeedSquad() squad.Squad {
	ids := make([]int, 0, squad.Size)
	for id := 1; id <= squad.Size; id++ {
		ids = append(ids, id)
	}
	return squad.New(ids...)
}

// SeedPredictions returns predicted points for gameweeks 1-3 over the full
// seeded universe.
func SeedPredictions() prediction.Matrix {
	return prediction.Matrix{
		1: {
			1: 3, 2: 2, 3: 6, 4: 5, 5: 4, 6: 3, 7: 2,
			8: 9, 9: 8, 10: 4, 11: 3, 12: 2, 13: 10, 14: 7, 15: 1,
			16: 1, 17: 0, 18: 5, 19: 9, 20: 3, 21: 2, 22: 1,
			23: 12, 24: 6, 25: 5, 26: 3, 27: 1, 28: 13, 29: 6, 30: 2,
		},
		2: {
			1: 2, 2: 3, 3: 4, 4: 6, 5: 3, 6: 4, 7: 1,
			8: 8, 9: 9, 10: 5, 11: 2, 12: 3, 13: 9, 14: 6, 15: 11,
			16: 2, 17: 1, 18: 4, 19: 8, 20: 2, 21: 3, 22: 2,
			23: 11, 24: 5, 25: 4, 26: 2, 27: 0, 28: 12, 29: 5, 30: 1,
		},
		3: {
			1: 3, 2: 2, 3: 5, 4: 5, 5: 4, 6: 3, 7: 2,
			8: 7, 9: 8, 10: 4, 11: 3, 12: 2, 13: 8, 14: 7, 15: 2,
			16: 1, 17: 0, 18: 5, 19: 7, 20: 3, 21: 2, 22: 1,
			23: 10, 24: 6, 25: 5, 26: 3, 27: 1, 28: 11, 29: 6, 30: 2,
		},
	}
}

// SeedResults returns realized points and minutes for gameweeks 1-3.
// A few zero-minute rounds are planted to exercise automatic substitutions.
func SeedResults() (points, minutes prediction.Matrix) {
	points = prediction.Matrix{
		1: {
			1: 3, 2: 1, 3: 6, 4: 4, 5: 5, 6: 2, 7: 1,
			8: 8, 9: 9, 10: 0, 11: 2, 12: 2, 13: 12, 14: 6, 15: 0,
			16: 2, 17: 1, 18: 4, 19: 8, 20: 3, 21: 2, 22: 1,
			23: 14, 24: 5, 25: 6, 26: 2, 27: 1, 28: 10, 29: 7, 30: 3,
		},
		2: {
			1: 0, 2: 3, 3: 5, 4: 7, 5: 2, 6: 3, 7: 2,
			8: 9, 9: 7, 10: 4, 11: 1, 12: 3, 13: 7, 14: 8, 15: 12,
			16: 3, 17: 2, 18: 3, 19: 9, 20: 2, 21: 2, 22: 3,
			23: 9, 24: 6, 25: 3, 26: 1, 27: 0, 28: 13, 29: 4, 30: 1,
		},
		3: {
			1: 2, 2: 2, 3: 4, 4: 5, 5: 3, 6: 4, 7: 2,
			8: 6, 9: 8, 10: 5, 11: 3, 12: 1, 13: 9, 14: 6, 15: 3,
			16: 1, 17: 1, 18: 5, 19: 6, 20: 3, 21: 1, 22: 2,
			23: 11, 24: 7, 25: 4, 26: 3, 27: 2, 28: 12, 29: 5, 30: 2,
		},
	}

	minutes = prediction.Matrix{
		1: fullMinutes(map[int]float64{10: 0, 15: 0}),
		2: fullMinutes(map[int]float64{1: 0}),
		3: fullMinutes(nil),
	}

	return points, minutes
}

func fullMinutes(overrides map[int]float64) map[int]float64 {
	out := make(map[int]float64, 30)
	for id := 1; id <= 30; id++ {
		out[id] = 90
	}
	for id, m := range overrides {
		out[id] = m
	}
	return out
}

// NewSeededPlayerRepository returns a player repository preloaded with the
// seeded universe for every covered gameweek.
func NewSeededPlayerRepository() *PlayerRepository {
	repo := NewPlayerRepository()
	for g := 1; g <= SeedGameweeks; g++ {
		repo.Put(SeedSeason, g, SeedPlayers())
	}
	return repo
}

// NewSeededPredictionRepository returns a prediction repository preloaded
// with the seeded matrix.
func NewSeededPredictionRepository() *PredictionRepository {
	repo := NewPredictionRepository()
	repo.Put(SeedSeason, SeedPredictions())
	return repo
}
