package optimize

import "fmt"

// Parameter names accepted by Parameters.Get and Parameters.Set.
const (
	ParamSquadEvaluationRoundFactor = "squad_evaluation_round_factor"
	ParamStartingXIMultiplier       = "starting_xi_multiplier"
	ParamCaptainMultiplier          = "captain_multiplier"
	ParamViceCaptainMultiplier      = "vice_captain_multiplier"
	ParamReserveGKPMultiplier       = "reserve_gkp_multiplier"
	ParamReserveOutMultiplier       = "reserve_out_multiplier"
	ParamFutureGameweeksEvaluated   = "future_gameweeks_evaluated"
	ParamBudgetImportance           = "budget_importance"
	ParamTransferAversionFactor     = "transfer_aversion_factor"
)

// Parameters holds the tunable weights read by both engines. Engines receive
// a copy inside the request, so a running optimization never observes a
// concurrent tuning update.
type Parameters struct {
	SquadEvaluationRoundFactor float64    `json:"squad_evaluation_round_factor"`
	StartingXIMultiplier       float64    `json:"starting_xi_multiplier"`
	CaptainMultiplier          float64    `json:"captain_multiplier"`
	ViceCaptainMultiplier      float64    `json:"vice_captain_multiplier"`
	ReserveGKPMultiplier       float64    `json:"reserve_gkp_multiplier"`
	ReserveOutMultipliers      [3]float64 `json:"reserve_out_multiplier"`
	FutureGameweeksEvaluated   int        `json:"future_gameweeks_evaluated"`
	BudgetImportance           float64    `json:"budget_importance"`
	TransferAversionFactor     float64    `json:"transfer_aversion_factor"`
}

func DefaultParameters() Parameters {
	return Parameters{
		SquadEvaluationRoundFactor: 1.0,
		StartingXIMultiplier:       1.0,
		CaptainMultiplier:          2.0,
		ViceCaptainMultiplier:      1.0,
		ReserveGKPMultiplier:       0.0,
		ReserveOutMultipliers:      [3]float64{0, 0, 0},
		FutureGameweeksEvaluated:   1,
		BudgetImportance:           0,
		TransferAversionFactor:     1.0,
	}
}

// Get reads a parameter by its configuration name.
func (p *Parameters) Get(name string) (any, error) {
	switch name {
	case ParamSquadEvaluationRoundFactor:
		return p.SquadEvaluationRoundFactor, nil
	case ParamStartingXIMultiplier:
		return p.StartingXIMultiplier, nil
	case ParamCaptainMultiplier:
		return p.CaptainMultiplier, nil
	case ParamViceCaptainMultiplier:
		return p.ViceCaptainMultiplier, nil
	case ParamReserveGKPMultiplier:
		return p.ReserveGKPMultiplier, nil
	case ParamReserveOutMultiplier:
		return p.ReserveOutMultipliers, nil
	case ParamFutureGameweeksEvaluated:
		return p.FutureGameweeksEvaluated, nil
	case ParamBudgetImportance:
		return p.BudgetImportance, nil
	case ParamTransferAversionFactor:
		return p.TransferAversionFactor, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownParameter, name)
}

// Set updates a parameter by its configuration name. Unknown names and
// mismatched value types are configuration errors.
func (p *Parameters) Set(name string, value any) error {
	switch name {
	case ParamSquadEvaluationRoundFactor:
		return setFloat(&p.SquadEvaluationRoundFactor, name, value)
	case ParamStartingXIMultiplier:
		return setFloat(&p.StartingXIMultiplier, name, value)
	case ParamCaptainMultiplier:
		return setFloat(&p.CaptainMultiplier, name, value)
	case ParamViceCaptainMultiplier:
		return setFloat(&p.ViceCaptainMultiplier, name, value)
	case ParamReserveGKPMultiplier:
		return setFloat(&p.ReserveGKPMultiplier, name, value)
	case ParamReserveOutMultiplier:
		v, ok := value.([3]float64)
		if !ok {
			return fmt.Errorf("%w: %s requires [3]float64, got %T", ErrInvalidInput, name, value)
		}
		p.ReserveOutMultipliers = v
		return nil
	case ParamFutureGameweeksEvaluated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("%w: %s requires int, got %T", ErrInvalidInput, name, value)
		}
		p.FutureGameweeksEvaluated = v
		return nil
	case ParamBudgetImportance:
		return setFloat(&p.BudgetImportance, name, value)
	case ParamTransferAversionFactor:
		return setFloat(&p.TransferAversionFactor, name, value)
	}

	return fmt.Errorf("%w: %s", ErrUnknownParameter, name)
}

func setFloat(dst *float64, name string, value any) error {
	switch v := value.(type) {
	case float64:
		*dst = v
	case int:
		*dst = float64(v)
	default:
		return fmt.Errorf("%w: %s requires float64, got %T", ErrInvalidInput, name, value)
	}

	return nil
}
