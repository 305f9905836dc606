package routing

import (
	"errors"
	"testing"
)

func resultWithTime(hours float64) StrategyResult {
	return StrategyResult{VehicleCount: 1, CompletionTimeHours: hours}
}

func TestDecideGraceBoundary(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name     string
		parallel float64
		multi    float64
		want     Strategy
	}{
		{"delta well under grace", 3.0, 2.9, StrategyMultiPickup},
		{"delta just under grace", 3.999, 2.0, StrategyMultiPickup},
		{"delta exactly grace", 4.0, 2.0, StrategyParallel},
		{"delta over grace", 5.0, 2.0, StrategyParallel},
		{"both zero", 0, 0, StrategyMultiPickup},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Decide(cfg, resultWithTime(tc.parallel), resultWithTime(tc.multi), ModeAuto)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Recommended != tc.want {
				t.Fatalf("recommended = %s, want %s", d.Recommended, tc.want)
			}
			if d.Active != tc.want {
				t.Fatalf("active = %s, want recommendation %s under auto", d.Active, tc.want)
			}
		})
	}
}

func TestDecideOverridePrecedence(t *testing.T) {
	cfg := DefaultConfig()
	parallel := resultWithTime(1.0)
	multi := resultWithTime(0.5)

	auto, err := Decide(cfg, parallel, multi, ModeAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auto.Recommended != StrategyMultiPickup {
		t.Fatalf("recommended = %s, want multi-pickup", auto.Recommended)
	}

	// Pinning the opposite strategy flips active but not the recommendation.
	pinned, err := Decide(cfg, parallel, multi, ModeParallel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pinned.Recommended != StrategyMultiPickup {
		t.Fatalf("recommended changed under override: %s", pinned.Recommended)
	}
	if pinned.Active != StrategyParallel {
		t.Fatalf("active = %s, want pinned parallel", pinned.Active)
	}
}

func TestDecideInvalidMode(t *testing.T) {
	_, err := Decide(DefaultConfig(), resultWithTime(1), resultWithTime(1), Mode("fastest"))
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestDecideCustomGrace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GraceHours = 0.5

	d, err := Decide(cfg, resultWithTime(3.0), resultWithTime(2.0), ModeAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Recommended != StrategyParallel {
		t.Fatalf("recommended = %s, want parallel with 0.5h grace", d.Recommended)
	}
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"auto", "multi-pickup", "parallel"} {
		if _, err := ParseMode(valid); err != nil {
			t.Fatalf("ParseMode(%q) failed: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "Auto", "multipickup", "fastest"} {
		if _, err := ParseMode(invalid); !errors.Is(err, ErrInvalidMode) {
			t.Fatalf("ParseMode(%q) = %v, want ErrInvalidMode", invalid, err)
		}
	}
}
