package player

import (
	"reflect"
	"testing"
)

func TestPlayerValidate(t *testing.T) {
	valid := Player{ID: 1, Team: 3, Name: "Marsh", Position: PositionGoalkeeper, NowCost: 50}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid player rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(p *Player)
	}{
		{name: "missing id", mutate: func(p *Player) { p.ID = 0 }},
		{name: "missing team", mutate: func(p *Player) { p.Team = 0 }},
		{name: "bad position", mutate: func(p *Player) { p.Position = "STK" }},
		{name: "zero cost", mutate: func(p *Player) { p.NowCost = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatalf("expected error for %+v", p)
			}
		})
	}
}

func TestNewUniverse(t *testing.T) {
	players := []Player{
		{ID: 2, Team: 1, Name: "Reyes", Position: PositionDefender, NowCost: 55},
		{ID: 1, Team: 2, Name: "Okafor", Position: PositionGoalkeeper, NowCost: 45},
	}

	u, err := NewUniverse(players)
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}

	if !reflect.DeepEqual(u.IDs(), []int{1, 2}) {
		t.Fatalf("IDs = %v, want [1 2]", u.IDs())
	}
	if u.Positions()[2] != PositionDefender {
		t.Fatalf("position lookup failed: %v", u.Positions())
	}
	if u.NowCosts()[1] != 45 {
		t.Fatalf("cost lookup failed: %v", u.NowCosts())
	}
}

func TestNewUniverseRejectsDuplicates(t *testing.T) {
	players := []Player{
		{ID: 1, Team: 1, Name: "Marsh", Position: PositionGoalkeeper, NowCost: 50},
		{ID: 1, Team: 2, Name: "Okafor", Position: PositionGoalkeeper, NowCost: 45},
	}

	if _, err := NewUniverse(players); err == nil {
		t.Fatal("duplicate id accepted")
	}
}
