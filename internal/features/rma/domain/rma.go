package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RmaRecord represents a Return Merchandise Authorization as stored by the
// upstream CRUD system. Two generations of shipment schema coexist on the same
// document: the legacy flat fields (trackingNumber, rmaReturnTrackingNumber, ...)
// and the newer nested shipping object. Records migrated mid-way may carry both,
// either, or neither; no field is guaranteed present.
//
// Date fields are kept as raw strings on purpose: the legacy data contains a mix
// of formats and occasional garbage, and parsing is the reconciliation engine's
// job, not the storage layer's.
type RmaRecord struct {
	// ID is the MongoDB document identifier.
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	// RmaNumber is the human-facing RMA reference (e.g., "RMA-2024-0113").
	RmaNumber string `json:"rmaNumber" bson:"rmaNumber"`
	// SiteName is the customer site the defective unit came from.
	SiteName string `json:"siteName,omitempty" bson:"siteName,omitempty"`
	// ProductName is the product under return.
	ProductName string `json:"productName,omitempty" bson:"productName,omitempty"`

	// Legacy flat schema (outbound leg).
	TrackingNumber string `json:"trackingNumber,omitempty" bson:"trackingNumber,omitempty"`
	ShippedThru    string `json:"shippedThru,omitempty" bson:"shippedThru,omitempty"`
	ShippedDate    string `json:"shippedDate,omitempty" bson:"shippedDate,omitempty"`

	// Legacy flat schema (return leg).
	RmaReturnTrackingNumber string `json:"rmaReturnTrackingNumber,omitempty" bson:"rmaReturnTrackingNumber,omitempty"`
	RmaReturnShippedThru    string `json:"rmaReturnShippedThru,omitempty" bson:"rmaReturnShippedThru,omitempty"`
	RmaReturnShippedDate    string `json:"rmaReturnShippedDate,omitempty" bson:"rmaReturnShippedDate,omitempty"`

	// Shipping is the modern nested schema. Nil on records that predate the
	// migration.
	Shipping *Shipping `json:"shipping,omitempty" bson:"shipping,omitempty"`
}

// Shipping groups the modern per-leg shipment data.
type Shipping struct {
	// Outbound covers the replacement part shipped to the customer.
	Outbound *ShippingLeg `json:"outbound,omitempty" bson:"outbound,omitempty"`
	// Return covers the defective part shipped back by the customer.
	Return *ShippingLeg `json:"return,omitempty" bson:"return,omitempty"`
}

// ShippingLeg is one directional shipment in the modern schema.
type ShippingLeg struct {
	TrackingNumber    string `json:"trackingNumber,omitempty" bson:"trackingNumber,omitempty"`
	Carrier           string `json:"carrier,omitempty" bson:"carrier,omitempty"`
	ShippedDate       string `json:"shippedDate,omitempty" bson:"shippedDate,omitempty"`
	EstimatedDelivery string `json:"estimatedDelivery,omitempty" bson:"estimatedDelivery,omitempty"`
	ActualDelivery    string `json:"actualDelivery,omitempty" bson:"actualDelivery,omitempty"`
}

// OutboundLeg returns the modern outbound leg, or nil when the nested schema is
// absent. Never returns a partially-nil path; callers can chain safely.
func (r *RmaRecord) OutboundLeg() *ShippingLeg {
	if r.Shipping == nil {
		return nil
	}
	return r.Shipping.Outbound
}

// ReturnLeg returns the modern return leg, or nil when the nested schema is absent.
func (r *RmaRecord) ReturnLeg() *ShippingLeg {
	if r.Shipping == nil {
		return nil
	}
	return r.Shipping.Return
}
