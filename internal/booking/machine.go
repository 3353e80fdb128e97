package booking

import (
	"fmt"
	"time"

	"github.com/autobid/transport-service/internal/entities"
)

// transitions is the canonical table of allowed target statuses per
// current status. Re-entering the current status is always allowed and
// appends a duplicate ledger entry, so repeated identical updates from
// collaborators stay harmless.
var transitions = map[entities.BookingStatus][]entities.BookingStatus{
	entities.StatusDraft:            {entities.StatusQuoteRequested, entities.StatusCancelled},
	entities.StatusQuoteRequested:   {entities.StatusQuoted, entities.StatusCancelled, entities.StatusFailed},
	entities.StatusQuoted:           {entities.StatusBooked, entities.StatusCancelled, entities.StatusFailed},
	entities.StatusBooked:           {entities.StatusPickupScheduled, entities.StatusCancelled, entities.StatusFailed},
	entities.StatusPickupScheduled:  {entities.StatusInTransit, entities.StatusCancelled, entities.StatusFailed},
	entities.StatusInTransit:        {entities.StatusCustomsClearance, entities.StatusDelivered, entities.StatusCancelled, entities.StatusFailed},
	entities.StatusCustomsClearance: {entities.StatusInTransit, entities.StatusDelivered, entities.StatusFailed},
	entities.StatusDelivered:        {},
	entities.StatusCancelled:        {},
	entities.StatusFailed:           {},
}

// CanTransition reports whether a booking in status from may move to
// status to.
func CanTransition(from, to entities.BookingStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type CreateInput struct {
	VehicleID  string
	BuyerID    string
	SellerID   string
	AuctionID  string
	ProviderID string

	Pickup   entities.ContactDetails
	Delivery entities.ContactDetails
	Vehicle  entities.VehicleDetails

	QuoteAmount float64
	Currency    string
	Fees        []entities.FeeLine

	Insurance *entities.Insurance
	CreatedBy string
}

// New builds a booking in quote_requested with a seeded tracking ledger.
// Customs clearance is required exactly when the route crosses a border;
// cross-border routes also get a pickup/customs/delivery waypoint skeleton.
func New(id string, in CreateInput, now time.Time) entities.TransportBooking {
	b := entities.TransportBooking{
		ID:         id,
		VehicleID:  in.VehicleID,
		BuyerID:    in.BuyerID,
		SellerID:   in.SellerID,
		AuctionID:  in.AuctionID,
		ProviderID: in.ProviderID,
		Status:     entities.StatusQuoteRequested,
		Pickup:     in.Pickup,
		Delivery:   in.Delivery,
		Vehicle:    in.Vehicle,
		Pricing: entities.Pricing{
			QuoteAmount: in.QuoteAmount,
			Currency:    in.Currency,
			Fees:        in.Fees,
		},
		Insurance: in.Insurance,
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	b.Tracking.CurrentStatus = string(entities.StatusQuoteRequested)
	b.Tracking.History = []entities.TrackingEntry{{
		Status:    string(entities.StatusQuoteRequested),
		Timestamp: now,
		Notes:     "Booking created",
	}}

	crossBorder := in.Pickup.Country != in.Delivery.Country
	if crossBorder {
		b.Customs = &entities.CustomsClearance{
			Required: true,
			Status:   entities.CustomsNotStarted,
		}
		b.Route = entities.RouteDetails{
			BorderCrossings: []string{in.Pickup.Country + "-" + in.Delivery.Country},
			Waypoints: []entities.Waypoint{
				{Type: entities.WaypointPickup, Country: in.Pickup.Country, City: in.Pickup.City},
				{Type: entities.WaypointCustoms, Country: in.Delivery.Country},
				{Type: entities.WaypointDelivery, Country: in.Delivery.Country, City: in.Delivery.City},
			},
		}
	}

	return b
}

type StatusChange struct {
	Status   entities.BookingStatus
	Location string
	Notes    string
}

// ApplyStatus moves the booking to the requested status. It appends one
// ledger entry, mirrors the tracking "current" fields, stamps the actual
// delivery on delivered, and flips the customs sub-flow to in_progress on
// entering customs_clearance.
func ApplyStatus(b entities.TransportBooking, ch StatusChange, now time.Time) (entities.TransportBooking, error) {
	if !CanTransition(b.Status, ch.Status) {
		return b, fmt.Errorf("%w: %s -> %s", entities.ErrBadTransition, b.Status, ch.Status)
	}

	b.Status = ch.Status
	b = appendEntry(b, entities.TrackingEntry{
		Status:    string(ch.Status),
		Location:  ch.Location,
		Timestamp: now,
		Notes:     ch.Notes,
	})

	switch ch.Status {
	case entities.StatusDelivered:
		t := now
		b.Tracking.ActualDelivery = &t
	case entities.StatusCustomsClearance:
		if b.Customs != nil {
			customs := *b.Customs
			customs.Status = entities.CustomsInProgress
			b.Customs = &customs
		}
	}

	b.UpdatedAt = now
	return b, nil
}

type CustomsCompletion struct {
	ClearanceDate *time.Time
	Office        string
	Agent         string
	Documents     []string
	DutiesAmount  float64
	Notes         string
}

// CompleteCustoms records the clearance facts and marks the sub-flow
// completed. A booking sitting in customs_clearance auto-advances to
// in_transit with one extra ledger entry; this is the only transition
// with an automatic downstream state change.
func CompleteCustoms(b entities.TransportBooking, cc CustomsCompletion, now time.Time) (entities.TransportBooking, error) {
	if b.Customs == nil || !b.Customs.Required {
		return b, entities.ErrCustomsNotNeeded
	}

	customs := *b.Customs
	customs.Status = entities.CustomsCompleted
	customs.Office = cc.Office
	customs.Agent = cc.Agent
	customs.Documents = cc.Documents
	customs.DutiesAmount = cc.DutiesAmount
	customs.Notes = cc.Notes
	if cc.ClearanceDate != nil {
		customs.ClearanceDate = cc.ClearanceDate
	} else {
		t := now
		customs.ClearanceDate = &t
	}
	b.Customs = &customs

	if b.Status == entities.StatusCustomsClearance {
		b.Status = entities.StatusInTransit
		b = appendEntry(b, entities.TrackingEntry{
			Status:    string(entities.StatusInTransit),
			Timestamp: now,
			Notes:     "Customs clearance completed",
		})
	}

	b.UpdatedAt = now
	return b, nil
}

type TrackingStatusUpdate struct {
	Status   string
	Location string
	Notes    string
}

type TrackingPatch struct {
	Number            *string
	URL               *string
	EstimatedDelivery *time.Time
	CurrentLocation   *string

	// StatusUpdate additionally appends a ledger entry. It carries
	// carrier-granularity status text and does not move the booking
	// state machine.
	StatusUpdate *TrackingStatusUpdate
}

// ApplyTracking overwrites only the fields the patch supplies.
func ApplyTracking(b entities.TransportBooking, patch TrackingPatch, now time.Time) entities.TransportBooking {
	if patch.Number != nil {
		b.Tracking.Number = *patch.Number
	}
	if patch.URL != nil {
		b.Tracking.URL = *patch.URL
	}
	if patch.EstimatedDelivery != nil {
		t := *patch.EstimatedDelivery
		b.Tracking.EstimatedDelivery = &t
	}
	if patch.CurrentLocation != nil {
		b.Tracking.CurrentLocation = *patch.CurrentLocation
	}

	if patch.StatusUpdate != nil {
		b = appendEntry(b, entities.TrackingEntry{
			Status:    patch.StatusUpdate.Status,
			Location:  patch.StatusUpdate.Location,
			Timestamp: now,
			Notes:     patch.StatusUpdate.Notes,
		})
	}

	b.UpdatedAt = now
	return b
}

// appendEntry adds a ledger entry without sharing the backing array with
// the input value and mirrors the denormalized "current" fields.
func appendEntry(b entities.TransportBooking, e entities.TrackingEntry) entities.TransportBooking {
	history := make([]entities.TrackingEntry, len(b.Tracking.History), len(b.Tracking.History)+1)
	copy(history, b.Tracking.History)
	b.Tracking.History = append(history, e)

	b.Tracking.CurrentStatus = e.Status
	if e.Location != "" {
		b.Tracking.CurrentLocation = e.Location
	}
	return b
}
