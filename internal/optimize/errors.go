package optimize

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnknownParameter    = errors.New("unknown parameter")
	ErrNegativeBudget      = errors.New("budget would go negative")
	ErrAsymmetricTransfers = errors.New("asymmetric transfer counts between squads")
)
