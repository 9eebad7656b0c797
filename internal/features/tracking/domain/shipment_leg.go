package domain

import (
	"strings"
	"time"
)

// Direction identifies which way a shipment leg travels.
type Direction string

const (
	// DirectionOutbound is the replacement part shipped to the customer.
	DirectionOutbound Direction = "OUTBOUND"
	// DirectionReturn is the defective part shipped back by the customer.
	DirectionReturn Direction = "RETURN"
)

// TrackingStatus represents the inferred lifecycle state of a shipment leg.
// It is derived from dates, never stored.
type TrackingStatus string

const (
	// TrackingStatusNotShipped indicates no shipment has been dispatched yet.
	TrackingStatusNotShipped TrackingStatus = "NOT_SHIPPED"
	// TrackingStatusInTransit indicates the leg has shipped but not delivered.
	TrackingStatusInTransit TrackingStatus = "IN_TRANSIT"
	// TrackingStatusDelivered indicates the leg has an actual delivery date.
	TrackingStatusDelivered TrackingStatus = "DELIVERED"
	// TrackingStatusUnknown indicates the data was insufficient or malformed.
	TrackingStatusUnknown TrackingStatus = "UNKNOWN"
)

// FieldSource records which schema generation a leg was derived from.
// It exists for debugging and audit only; no business logic branches on it.
type FieldSource string

const (
	// FieldSourceLegacy marks a leg built from the flat legacy fields.
	FieldSourceLegacy FieldSource = "legacy"
	// FieldSourceModern marks a leg built from the nested shipping object.
	FieldSourceModern FieldSource = "modern"
)

// ShipmentLeg is the canonical, normalized view of one directional shipment.
// A leg only exists when its tracking number is non-blank; everything else is
// optional.
type ShipmentLeg struct {
	// Direction is OUTBOUND or RETURN.
	Direction Direction `json:"direction"`
	// TrackingNumber is the carrier tracking identifier. Always non-blank.
	TrackingNumber string `json:"tracking_number"`
	// Carrier is the normalized carrier name, or the raw value verbatim when
	// it matches nothing in the known vocabulary.
	Carrier string `json:"carrier,omitempty"`
	// ShippedDate is when the leg was dispatched, if known.
	ShippedDate *time.Time `json:"shipped_date,omitempty"`
	// EstimatedDelivery is the carrier's delivery estimate, if known.
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	// ActualDelivery is when the leg was delivered, if known.
	ActualDelivery *time.Time `json:"actual_delivery,omitempty"`
	// Status is the inferred lifecycle state.
	Status TrackingStatus `json:"status"`
	// SourceFieldSet tags the schema generation the leg came from.
	SourceFieldSet FieldSource `json:"source_field_set"`
	// Sla carries the breach evaluation, when one was requested.
	Sla *SlaResult `json:"sla,omitempty"`
}

// ActiveShipmentEntry is one row of the active-shipments read model: an RMA
// with at least one present leg. Computed fresh on every aggregation; never
// persisted.
type ActiveShipmentEntry struct {
	RmaID       string       `json:"rma_id"`
	RmaNumber   string       `json:"rma_number"`
	SiteName    string       `json:"site_name,omitempty"`
	ProductName string       `json:"product_name,omitempty"`
	Outbound    *ShipmentLeg `json:"outbound"`
	Return      *ShipmentLeg `json:"return"`
}

// TrackingDetail is the drill-down view for one RMA: both legs, each possibly
// nil. An RMA with no tracking anywhere yields two nils, not an error.
type TrackingDetail struct {
	Outbound *ShipmentLeg `json:"outbound"`
	Return   *ShipmentLeg `json:"return"`
}

// carrierPatterns maps lowercase substrings to canonical carrier labels.
// Checked in order; first hit wins.
var carrierPatterns = []struct {
	substr string
	label  string
}{
	{"hand", "By Hand"},
	{"dtdc", "DTDC"},
	{"movin", "Movin"},
	{"fedex", "FedEx"},
	{"dhl", "DHL"},
	{"blue dart", "Blue Dart"},
	{"india post", "India Post"},
	{"delhivery", "Delhivery"},
}

// DeliveryProviders returns the controlled carrier vocabulary, in display order.
// Exposed read-only for UI filters; not consulted by the reconciliation logic
// beyond NormalizeCarrier.
func DeliveryProviders() []string {
	return []string{"DTDC", "By Hand", "Movin", "FedEx", "DHL", "Blue Dart", "India Post", "Delhivery"}
}

// NormalizeCarrier maps a free-text carrier string onto the controlled
// vocabulary when a known substring matches (case-insensitive). Unrecognized
// values pass through verbatim; carrier text is never discarded.
func NormalizeCarrier(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	for _, p := range carrierPatterns {
		if strings.Contains(lower, p.substr) {
			return p.label
		}
	}

	return trimmed
}
