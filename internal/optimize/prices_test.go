package optimize

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
)

func TestSellingPrice(t *testing.T) {
	tests := []struct {
		purchase int
		now      int
		want     int
	}{
		{purchase: 50, now: 50, want: 50},
		{purchase: 50, now: 45, want: 50},
		{purchase: 50, now: 55, want: 52},
		{purchase: 50, now: 56, want: 53},
		{purchase: 50, now: 51, want: 50},
		{purchase: 40, now: 60, want: 50},
	}

	for _, tt := range tests {
		if got := SellingPrice(tt.purchase, tt.now); got != tt.want {
			t.Fatalf("SellingPrice(%d, %d) = %d, want %d", tt.purchase, tt.now, got, tt.want)
		}
	}
}

func TestTransferCost(t *testing.T) {
	tests := []struct {
		free int
		made int
		want int
	}{
		{free: 1, made: 0, want: 0},
		{free: 1, made: 1, want: 0},
		{free: 1, made: 2, want: 4},
		{free: 1, made: 3, want: 8},
		{free: 2, made: 1, want: 0},
		{free: 0, made: 1, want: 4},
		{free: UnlimitedFreeTransfers, made: 7, want: 0},
	}

	for _, tt := range tests {
		if got := TransferCost(tt.free, tt.made); got != tt.want {
			t.Fatalf("TransferCost(%d, %d) = %d, want %d", tt.free, tt.made, got, tt.want)
		}
	}
}

func TestCountTransfers(t *testing.T) {
	old := squad.New(1, 2, 3)
	next := squad.New(1, 4, 5)

	got, err := CountTransfers(old, next)
	if err != nil {
		t.Fatalf("CountTransfers: %v", err)
	}
	if got != 2 {
		t.Fatalf("CountTransfers = %d, want 2", got)
	}

	if _, err := CountTransfers(squad.New(1, 2, 3), squad.New(1, 2)); !errors.Is(err, ErrAsymmetricTransfers) {
		t.Fatalf("expected ErrAsymmetricTransfers, got %v", err)
	}
}

func TestCalculateBudget(t *testing.T) {
	old := squad.New(1, 2)
	next := squad.New(1, 3)
	selling := map[int]int{1: 50, 2: 45}
	costs := map[int]int{1: 50, 2: 48, 3: 40}

	if got := CalculateBudget(old, next, 10, selling, costs); got != 15 {
		t.Fatalf("CalculateBudget = %d, want 15", got)
	}
	if got := CalculateBudget(old, old, 10, selling, costs); got != 10 {
		t.Fatalf("no-op transition moved the budget: %d", got)
	}
}

func TestUpdateSellingPrices(t *testing.T) {
	old := squad.New(1, 2)
	next := squad.New(1, 3)
	selling := map[int]int{1: 47, 2: 45}
	costs := map[int]int{1: 50, 2: 48, 3: 40}

	got := UpdateSellingPrices(selling, costs, old, next)

	// Holds keep their locked-in price, arrivals sell at what was just paid.
	if got[1] != 47 {
		t.Fatalf("held player selling price = %d, want 47", got[1])
	}
	if got[3] != 40 {
		t.Fatalf("arriving player selling price = %d, want 40", got[3])
	}
	if _, ok := got[2]; ok {
		t.Fatalf("departed player kept a selling price")
	}
}

func TestDeriveSellingPrices(t *testing.T) {
	s := squad.New(1, 2)
	purchase := map[int]int{1: 50, 2: 60}
	costs := map[int]int{1: 57, 2: 55}

	got := DeriveSellingPrices(s, purchase, costs)

	if got[1] != 53 {
		t.Fatalf("risen price: got %d, want 53", got[1])
	}
	if got[2] != 60 {
		t.Fatalf("fallen price keeps purchase: got %d, want 60", got[2])
	}
}

func TestUpdatePurchasePrices(t *testing.T) {
	old := squad.New(1, 2)
	next := squad.New(1, 3)
	purchase := map[int]int{1: 44, 2: 60}
	costs := map[int]int{1: 50, 3: 41}

	got := UpdatePurchasePrices(purchase, costs, old, next)

	if got[1] != 44 || got[3] != 41 {
		t.Fatalf("UpdatePurchasePrices = %v, want 1:44 3:41", got)
	}
}
