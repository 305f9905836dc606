package routing

import (
	"errors"
	"fmt"
)

// Strategy identifies one of the two candidate delivery strategies.
type Strategy string

const (
	StrategyMultiPickup Strategy = "multi-pickup"
	StrategyParallel    Strategy = "parallel"
)

// Mode is the operator's routing override. Auto follows the optimizer's
// recommendation; the other two pin a strategy unconditionally, even when it
// is objectively worse.
type Mode string

const (
	ModeAuto        Mode = "auto"
	ModeMultiPickup Mode = Mode(StrategyMultiPickup)
	ModeParallel    Mode = Mode(StrategyParallel)
)

// ErrInvalidMode rejects override values outside {auto, multi-pickup, parallel}.
var ErrInvalidMode = errors.New("invalid routing mode")

// ParseMode validates an override value at the boundary. Unknown values are
// rejected, never silently coerced.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeMultiPickup, ModeParallel:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q (expected auto, multi-pickup or parallel)", ErrInvalidMode, s)
	}
}
