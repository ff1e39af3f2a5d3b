package stats

import "math"

const (
	// DefaultMaxSimSeconds bounds the capacitor integration.
	DefaultMaxSimSeconds = 600.0

	// simStep is the fixed integration step in seconds. The step size and
	// the convergence threshold below are load-bearing: the verdict must be
	// byte-for-byte reproducible for identical inputs.
	simStep = 0.1

	// convergenceGJPerSec: once past the settling window, a net charge
	// delta below this (scaled to one second) counts as equilibrium.
	convergenceGJPerSec = 0.01

	// settleSeconds is how long the curve gets to move before equilibrium
	// detection starts; the early transient always looks flat at 100%.
	settleSeconds = 10.0
)

// CapacitorResult is the verdict of a capacitor drain simulation.
type CapacitorResult struct {
	Stable        bool
	StablePercent float64
	LastsSeconds  float64
}

// SimulateCapacitor integrates the capacitor recharge curve
//
//	recharge(t) = (capacity/tau) * 10 * (sqrt(f) - f),  f = charge/capacity
//
// against a constant drain, starting from full charge, and reports either
// the stable equilibrium percentage or the time to empty.
func SimulateCapacitor(capacity, rechargeTimeMs, drainPerSecond float64) CapacitorResult {
	return SimulateCapacitorFor(capacity, rechargeTimeMs, drainPerSecond, DefaultMaxSimSeconds)
}

// SimulateCapacitorFor is SimulateCapacitor with an explicit simulation bound.
func SimulateCapacitorFor(capacity, rechargeTimeMs, drainPerSecond, maxSimSeconds float64) CapacitorResult {
	if drainPerSecond <= 0 {
		return CapacitorResult{Stable: true, StablePercent: 100}
	}
	if capacity <= 0 {
		return CapacitorResult{Stable: false, LastsSeconds: 0}
	}

	tau := rechargeTimeMs / 1000.0
	if tau <= 0 {
		tau = 1
	}

	// When drain clearly exceeds peak recharge the capacitor can only
	// empty; skip the equilibrium search and integrate to exhaustion.
	peak := 2.5 * capacity / tau
	exhaustOnly := drainPerSecond > peak*1.1

	charge := capacity
	for t := 0.0; t < maxSimSeconds; t += simStep {
		fraction := charge / capacity
		recharge := (capacity / tau) * 10 * (math.Sqrt(fraction) - fraction)
		net := recharge - drainPerSecond

		charge += net * simStep
		if charge <= 0 {
			return CapacitorResult{Stable: false, LastsSeconds: t}
		}

		if !exhaustOnly && t > settleSeconds && math.Abs(net) < convergenceGJPerSec {
			return CapacitorResult{
				Stable:        true,
				StablePercent: math.Round(charge / capacity * 100),
			}
		}
	}

	if exhaustOnly {
		return CapacitorResult{Stable: false, LastsSeconds: maxSimSeconds}
	}

	// Never emptied and never formally converged: treat the fraction
	// reached at the bound as the equilibrium.
	return CapacitorResult{
		Stable:        true,
		StablePercent: math.Round(charge / capacity * 100),
	}
}
