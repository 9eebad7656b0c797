package domain

import "time"

// SlaResult is the outcome of a breach evaluation for one leg.
type SlaResult struct {
	// Breached is true when elapsed transit time strictly exceeds the target.
	Breached bool `json:"breached"`
	// DaysElapsed is the whole days in transit, or nil when the leg never
	// shipped and there is nothing to measure.
	DaysElapsed *int `json:"days_elapsed"`
}

// EvaluateBreach compares a leg's transit time against a target number of
// days. A leg without a shipped date cannot breach: nothing ever started.
// A delivered leg is measured from shipped date to actual delivery, so its
// result is fixed at the moment of delivery and never drifts as now advances.
// An in-transit leg is measured against now.
func EvaluateBreach(leg *ShipmentLeg, targetDays int, now time.Time) SlaResult {
	if leg == nil || leg.ShippedDate == nil {
		return SlaResult{Breached: false, DaysElapsed: nil}
	}

	end := now
	if leg.ActualDelivery != nil {
		end = *leg.ActualDelivery
	}

	elapsed := int(end.Sub(*leg.ShippedDate).Hours() / 24)
	if elapsed < 0 {
		elapsed = 0
	}

	return SlaResult{
		Breached:    elapsed > targetDays,
		DaysElapsed: &elapsed,
	}
}
