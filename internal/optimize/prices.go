package optimize

import (
	"fmt"

	"github.com/riskibarqy/fpl-planner/internal/domain/squad"
)

const (
	// TransferPenalty is the fixed point cost of each paid transfer.
	TransferPenalty = 4

	// MaxFreeTransfers caps the free-transfer allowance carried between rounds.
	MaxFreeTransfers = 2

	// UnlimitedFreeTransfers marks round 1 and wildcard rounds, where
	// transfers are never paid.
	UnlimitedFreeTransfers = -1
)

// SellingPrice computes the price the owner receives for a held player.
// When the market price rose above the purchase price the owner keeps half
// the gain, floored to the currency unit (the published half-profit rule);
// otherwise the player sells for exactly what was paid.
func SellingPrice(purchasePrice, nowCost int) int {
	if nowCost <= purchasePrice {
		return purchasePrice
	}

	return purchasePrice + (nowCost-purchasePrice)/2
}

// DeriveSellingPrices computes the selling price of every squad member from
// its purchase price and current market price. Called whenever market prices
// move between rounds.
func DeriveSellingPrices(s squad.Squad, purchasePrices, nowCosts map[int]int) map[int]int {
	out := make(map[int]int, len(s))
	for id := range s {
		out[id] = SellingPrice(purchasePrices[id], nowCosts[id])
	}

	return out
}

// UpdateSellingPrices carries selling prices across a squad transition within
// a round: holds keep their price (market prices are fixed inside a round),
// departures drop out, arrivals sell at the market price just paid.
func UpdateSellingPrices(sellingPrices, nowCosts map[int]int, old, next squad.Squad) map[int]int {
	out := make(map[int]int, len(next))
	for id := range next {
		if old.Contains(id) {
			out[id] = sellingPrices[id]
			continue
		}
		out[id] = nowCosts[id]
	}

	return out
}

// UpdatePurchasePrices carries purchase prices across a squad transition:
// holds keep what was paid, arrivals record the current market price.
func UpdatePurchasePrices(purchasePrices, nowCosts map[int]int, old, next squad.Squad) map[int]int {
	out := make(map[int]int, len(next))
	for id := range next {
		if old.Contains(id) {
			out[id] = purchasePrices[id]
			continue
		}
		out[id] = nowCosts[id]
	}

	return out
}

// CalculateBudget returns the cash balance after moving from old to next:
// departures credit their selling price, arrivals debit their market price.
func CalculateBudget(old, next squad.Squad, budget int, sellingPrices, nowCosts map[int]int) int {
	for _, id := range old.Minus(next) {
		budget += sellingPrices[id]
	}
	for _, id := range next.Minus(old) {
		budget -= nowCosts[id]
	}

	return budget
}

// CountTransfers returns the number of buy/sell pairs between two squads.
// The two set differences must agree; a mismatch indicates a modeling bug
// upstream and is reported as ErrAsymmetricTransfers.
func CountTransfers(old, next squad.Squad) (int, error) {
	sold := len(old.Minus(next))
	bought := len(next.Minus(old))
	if sold != bought {
		return 0, fmt.Errorf("%w: sold=%d bought=%d", ErrAsymmetricTransfers, sold, bought)
	}

	return sold, nil
}

// TransferCost returns the point penalty for transfers beyond the free
// allowance. Unlimited allowances never pay.
func TransferCost(freeTransfers, transfersMade int) int {
	if freeTransfers == UnlimitedFreeTransfers {
		return 0
	}
	paid := transfersMade - freeTransfers
	if paid < 0 {
		paid = 0
	}

	return paid * TransferPenalty
}
