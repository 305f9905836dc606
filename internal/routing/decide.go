package routing

import "fmt"

// Decide applies the grace-period rule between the two strategy evaluations
// and resolves the operator override into the active selection.
//
// MultiPickup holds whenever the gap between the two completion times stays
// under GraceHours; once the gap reaches the grace period the comparison
// tips to Parallel (strict: a delta exactly equal to GraceHours already
// selects Parallel). With both times at zero the rule degenerates to
// MultiPickup, which is the intended idle-context default.
//
// An override other than Auto pins the active strategy verbatim while the
// recommendation stays untouched. Unknown modes are rejected, not coerced.
func Decide(cfg Config, parallel, multiPickup StrategyResult, override Mode) (DecisionResult, error) {
	recommended := StrategyParallel
	if parallel.CompletionTimeHours-multiPickup.CompletionTimeHours < cfg.GraceHours {
		recommended = StrategyMultiPickup
	}

	var active Strategy
	switch override {
	case ModeAuto:
		active = recommended
	case ModeMultiPickup:
		active = StrategyMultiPickup
	case ModeParallel:
		active = StrategyParallel
	default:
		return DecisionResult{}, fmt.Errorf("decide: %w: %q", ErrInvalidMode, override)
	}

	return DecisionResult{
		Recommended: recommended,
		Active:      active,
		Parallel:    parallel,
		MultiPickup: multiPickup,
	}, nil
}
