package domain

import (
	"fmt"
	"strings"
	"time"

	rma "rma-reconcile/internal/features/rma/domain"
)

// PartialLeg is the raw, un-normalized leg data lifted from one schema
// generation. Every field is optional; blank strings mean "absent". Consumers
// must handle absence explicitly — there is no silent zero-value fallthrough
// into the canonical ShipmentLeg.
type PartialLeg struct {
	TrackingNumber    string
	Carrier           string
	ShippedDate       string
	EstimatedDelivery string
	ActualDelivery    string
	Source            FieldSource
}

// present reports whether this partial describes an existing leg. Only the
// tracking number counts: carrier or dates without a tracking number do not
// make a shipment.
func (p PartialLeg) present() bool {
	return strings.TrimSpace(p.TrackingNumber) != ""
}

// NormalizeLegacyLegs maps the flat legacy fields of a record into outbound
// and return partial legs. Pure; missing fields yield blank values, never
// errors.
func NormalizeLegacyLegs(rec *rma.RmaRecord) (outbound, ret PartialLeg) {
	outbound = PartialLeg{
		TrackingNumber: rec.TrackingNumber,
		Carrier:        rec.ShippedThru,
		ShippedDate:    rec.ShippedDate,
		Source:         FieldSourceLegacy,
	}
	ret = PartialLeg{
		TrackingNumber: rec.RmaReturnTrackingNumber,
		Carrier:        rec.RmaReturnShippedThru,
		ShippedDate:    rec.RmaReturnShippedDate,
		Source:         FieldSourceLegacy,
	}
	return outbound, ret
}

// modernPartial lifts one nested shipping leg into a PartialLeg. A nil leg
// yields an absent partial.
func modernPartial(leg *rma.ShippingLeg) PartialLeg {
	if leg == nil {
		return PartialLeg{Source: FieldSourceModern}
	}
	return PartialLeg{
		TrackingNumber:    leg.TrackingNumber,
		Carrier:           leg.Carrier,
		ShippedDate:       leg.ShippedDate,
		EstimatedDelivery: leg.EstimatedDelivery,
		ActualDelivery:    leg.ActualDelivery,
		Source:            FieldSourceModern,
	}
}

// ExtractLegs reconciles both schema generations of a record into canonical
// legs. Precedence per leg, applied independently:
//
//  1. modern nested leg, iff its tracking number is non-blank
//  2. legacy flat fields, iff their tracking number is non-blank
//  3. nil — the RMA has no such shipment
//
// A present-but-blank modern tracking number never suppresses a usable legacy
// value. When both generations carry different non-blank tracking numbers the
// modern one wins silently; the disagreement is reported as a warning so the
// caller can log it, but it does not change the result.
func ExtractLegs(rec *rma.RmaRecord) (outbound, ret *ShipmentLeg, warnings []string) {
	legacyOut, legacyRet := NormalizeLegacyLegs(rec)

	outbound, w := resolveLeg(DirectionOutbound, modernPartial(rec.OutboundLeg()), legacyOut)
	warnings = append(warnings, w...)

	ret, w = resolveLeg(DirectionReturn, modernPartial(rec.ReturnLeg()), legacyRet)
	warnings = append(warnings, w...)

	return outbound, ret, warnings
}

// resolveLeg applies the modern-over-legacy precedence for one direction and
// builds the canonical leg from the winning partial.
func resolveLeg(dir Direction, modern, legacy PartialLeg) (*ShipmentLeg, []string) {
	var warnings []string

	switch {
	case modern.present():
		if legacy.present() && strings.TrimSpace(modern.TrackingNumber) != strings.TrimSpace(legacy.TrackingNumber) {
			warnings = append(warnings, fmt.Sprintf(
				"%s leg: modern tracking %q overrides conflicting legacy tracking %q",
				strings.ToLower(string(dir)), strings.TrimSpace(modern.TrackingNumber), strings.TrimSpace(legacy.TrackingNumber)))
		}
		leg, w := buildLeg(dir, modern)
		return leg, append(warnings, w...)
	case legacy.present():
		leg, w := buildLeg(dir, legacy)
		return leg, append(warnings, w...)
	default:
		return nil, nil
	}
}

// buildLeg normalizes a present partial into a ShipmentLeg: trims the tracking
// number, normalizes the carrier, parses dates and classifies the lifecycle
// state.
func buildLeg(dir Direction, p PartialLeg) (*ShipmentLeg, []string) {
	var warnings []string

	shipped, ok := parseDate(p.ShippedDate)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("%s leg: unparseable shipped date %q", strings.ToLower(string(dir)), p.ShippedDate))
	}
	estimated, ok := parseDate(p.EstimatedDelivery)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("%s leg: unparseable estimated delivery %q", strings.ToLower(string(dir)), p.EstimatedDelivery))
	}
	actual, ok := parseDate(p.ActualDelivery)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("%s leg: unparseable actual delivery %q", strings.ToLower(string(dir)), p.ActualDelivery))
	}

	return &ShipmentLeg{
		Direction:         dir,
		TrackingNumber:    strings.TrimSpace(p.TrackingNumber),
		Carrier:           NormalizeCarrier(p.Carrier),
		ShippedDate:       shipped,
		EstimatedDelivery: estimated,
		ActualDelivery:    actual,
		Status:            classify(shipped, actual, len(warnings) > 0),
		SourceFieldSet:    p.Source,
	}, warnings
}

// classify infers the lifecycle state from the parsed dates:
// actual delivery present => DELIVERED; shipped only => IN_TRANSIT; neither
// and nothing malformed => NOT_SHIPPED. When every populated date failed to
// parse the leg is UNKNOWN rather than pretending it never shipped.
func classify(shipped, actual *time.Time, hadBadDates bool) TrackingStatus {
	switch {
	case actual != nil:
		return TrackingStatusDelivered
	case shipped != nil:
		return TrackingStatusInTransit
	case hadBadDates:
		return TrackingStatusUnknown
	default:
		return TrackingStatusNotShipped
	}
}

// dateLayouts covers the formats observed in the legacy corpus: ISO timestamps
// written by the current system, bare dates from spreadsheet imports, and the
// dd/mm/yyyy strings typed in by hand before validation existed.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"02-Jan-2006",
}

// parseDate parses a raw date string against the known layouts. A blank value
// is absent and ok; a non-blank value that matches no layout is absent and
// not ok, so the caller can surface a partial-data warning.
func parseDate(raw string) (*time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return &t, true
		}
	}

	return nil, false
}
