package booking_test

import (
	"testing"
	"time"

	"github.com/autobid/transport-service/internal/booking"
	"github.com/autobid/transport-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crossBorderInput() booking.CreateInput {
	return booking.CreateInput{
		VehicleID:  "veh-1",
		BuyerID:    "buyer-1",
		SellerID:   "seller-1",
		ProviderID: "prov-1",
		Pickup:     entities.ContactDetails{Country: "DE", City: "Hamburg"},
		Delivery:   entities.ContactDetails{Country: "LT", City: "Vilnius"},
		Vehicle: entities.VehicleDetails{
			Make:      "BMW",
			Model:     "320d",
			Year:      2019,
			Condition: entities.ConditionRunning,
		},
		QuoteAmount: 750,
		Currency:    "EUR",
	}
}

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from, to entities.BookingStatus
		want     bool
	}{
		{entities.StatusDraft, entities.StatusQuoteRequested, true},
		{entities.StatusDraft, entities.StatusBooked, false},
		{entities.StatusQuoteRequested, entities.StatusQuoted, true},
		{entities.StatusQuoted, entities.StatusBooked, true},
		{entities.StatusQuoted, entities.StatusInTransit, false},
		{entities.StatusBooked, entities.StatusPickupScheduled, true},
		{entities.StatusPickupScheduled, entities.StatusInTransit, true},
		{entities.StatusInTransit, entities.StatusCustomsClearance, true},
		{entities.StatusInTransit, entities.StatusDelivered, true},
		{entities.StatusCustomsClearance, entities.StatusInTransit, true},
		{entities.StatusCustomsClearance, entities.StatusDelivered, true},
		{entities.StatusCustomsClearance, entities.StatusCancelled, false},
		{entities.StatusDelivered, entities.StatusInTransit, false},
		{entities.StatusCancelled, entities.StatusBooked, false},
		{entities.StatusFailed, entities.StatusQuoteRequested, false},
		// re-entering the current status is always fine
		{entities.StatusInTransit, entities.StatusInTransit, true},
		{entities.StatusDelivered, entities.StatusDelivered, true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, booking.CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestNew(t *testing.T) {
	now := time.Now()

	t.Run("cross border booking requires customs and a waypoint skeleton", func(t *testing.T) {
		b := booking.New("bk-1", crossBorderInput(), now)

		assert.Equal(t, entities.StatusQuoteRequested, b.Status)
		require.NotNil(t, b.Customs)
		assert.True(t, b.Customs.Required)
		assert.Equal(t, entities.CustomsNotStarted, b.Customs.Status)

		assert.Equal(t, []string{"DE-LT"}, b.Route.BorderCrossings)
		require.Len(t, b.Route.Waypoints, 3)
		assert.Equal(t, entities.WaypointPickup, b.Route.Waypoints[0].Type)
		assert.Equal(t, entities.WaypointCustoms, b.Route.Waypoints[1].Type)
		assert.Equal(t, entities.WaypointDelivery, b.Route.Waypoints[2].Type)

		require.Len(t, b.Tracking.History, 1)
		assert.Equal(t, "Booking created", b.Tracking.History[0].Notes)
		assert.Equal(t, string(entities.StatusQuoteRequested), b.Tracking.CurrentStatus)
	})

	t.Run("domestic booking skips customs", func(t *testing.T) {
		in := crossBorderInput()
		in.Delivery = entities.ContactDetails{Country: "DE", City: "Munich"}

		b := booking.New("bk-2", in, now)

		assert.Nil(t, b.Customs)
		assert.Empty(t, b.Route.Waypoints)
		assert.Empty(t, b.Route.BorderCrossings)
	})
}

func TestApplyStatus(t *testing.T) {
	now := time.Now()
	base := booking.New("bk-1", crossBorderInput(), now)

	t.Run("allowed transition appends a ledger entry", func(t *testing.T) {
		updated, err := booking.ApplyStatus(base, booking.StatusChange{
			Status:   entities.StatusQuoted,
			Location: "Hamburg, DE",
			Notes:    "quote confirmed",
		}, now.Add(time.Hour))
		require.NoError(t, err)

		assert.Equal(t, entities.StatusQuoted, updated.Status)
		require.Len(t, updated.Tracking.History, 2)
		assert.Equal(t, string(entities.StatusQuoted), updated.Tracking.History[1].Status)
		assert.Equal(t, string(entities.StatusQuoted), updated.Tracking.CurrentStatus)
		assert.Equal(t, "Hamburg, DE", updated.Tracking.CurrentLocation)

		// the input value is left untouched
		assert.Len(t, base.Tracking.History, 1)
		assert.Equal(t, entities.StatusQuoteRequested, base.Status)
	})

	t.Run("forbidden transition fails", func(t *testing.T) {
		_, err := booking.ApplyStatus(base, booking.StatusChange{Status: entities.StatusDelivered}, now)
		assert.ErrorIs(t, err, entities.ErrBadTransition)
	})

	t.Run("re-entering the same status appends a duplicate entry", func(t *testing.T) {
		updated, err := booking.ApplyStatus(base, booking.StatusChange{Status: entities.StatusQuoteRequested}, now)
		require.NoError(t, err)
		assert.Len(t, updated.Tracking.History, 2)
	})

	t.Run("delivered stamps the actual delivery time", func(t *testing.T) {
		inTransit := base
		inTransit.Status = entities.StatusInTransit

		deliveredAt := now.Add(48 * time.Hour)
		updated, err := booking.ApplyStatus(inTransit, booking.StatusChange{Status: entities.StatusDelivered}, deliveredAt)
		require.NoError(t, err)

		require.NotNil(t, updated.Tracking.ActualDelivery)
		assert.Equal(t, deliveredAt, *updated.Tracking.ActualDelivery)
	})

	t.Run("entering customs clearance starts the customs sub-flow", func(t *testing.T) {
		inTransit := base
		inTransit.Status = entities.StatusInTransit

		updated, err := booking.ApplyStatus(inTransit, booking.StatusChange{
			Status:   entities.StatusCustomsClearance,
			Location: "Kybartai border crossing",
		}, now)
		require.NoError(t, err)

		require.NotNil(t, updated.Customs)
		assert.Equal(t, entities.CustomsInProgress, updated.Customs.Status)
		// the shared pointer must not leak the mutation back
		assert.Equal(t, entities.CustomsNotStarted, inTransit.Customs.Status)
	})
}

func TestCompleteCustoms(t *testing.T) {
	now := time.Now()

	t.Run("rejects bookings without customs", func(t *testing.T) {
		in := crossBorderInput()
		in.Delivery = entities.ContactDetails{Country: "DE"}
		domestic := booking.New("bk-1", in, now)

		_, err := booking.CompleteCustoms(domestic, booking.CustomsCompletion{}, now)
		assert.ErrorIs(t, err, entities.ErrCustomsNotNeeded)
	})

	t.Run("records clearance facts", func(t *testing.T) {
		b := booking.New("bk-1", crossBorderInput(), now)
		b.Status = entities.StatusBooked

		clearedAt := now.Add(-time.Hour)
		updated, err := booking.CompleteCustoms(b, booking.CustomsCompletion{
			ClearanceDate: &clearedAt,
			Office:        "Vilnius customs office",
			Agent:         "UAB Muitiné",
			Documents:     []string{"T1", "invoice"},
			DutiesAmount:  120.50,
		}, now)
		require.NoError(t, err)

		require.NotNil(t, updated.Customs)
		assert.Equal(t, entities.CustomsCompleted, updated.Customs.Status)
		assert.Equal(t, &clearedAt, updated.Customs.ClearanceDate)
		assert.Equal(t, "Vilnius customs office", updated.Customs.Office)
		assert.Equal(t, []string{"T1", "invoice"}, updated.Customs.Documents)
		assert.Equal(t, 120.50, updated.Customs.DutiesAmount)

		// completion alone does not move the booking state
		assert.Equal(t, entities.StatusBooked, updated.Status)
		assert.Len(t, updated.Tracking.History, 1)
	})

	t.Run("clearance date defaults to now", func(t *testing.T) {
		b := booking.New("bk-1", crossBorderInput(), now)
		b.Status = entities.StatusBooked

		updated, err := booking.CompleteCustoms(b, booking.CustomsCompletion{}, now)
		require.NoError(t, err)
		require.NotNil(t, updated.Customs.ClearanceDate)
		assert.Equal(t, now, *updated.Customs.ClearanceDate)
	})

	t.Run("booking held at customs auto-advances to in transit", func(t *testing.T) {
		b := booking.New("bk-1", crossBorderInput(), now)
		b.Status = entities.StatusCustomsClearance

		updated, err := booking.CompleteCustoms(b, booking.CustomsCompletion{}, now)
		require.NoError(t, err)

		assert.Equal(t, entities.StatusInTransit, updated.Status)
		require.Len(t, updated.Tracking.History, 2)
		assert.Equal(t, "Customs clearance completed", updated.Tracking.History[1].Notes)
		assert.Equal(t, string(entities.StatusInTransit), updated.Tracking.CurrentStatus)
	})
}

func TestApplyTracking(t *testing.T) {
	now := time.Now()
	base := booking.New("bk-1", crossBorderInput(), now)
	base.Tracking.Number = "TRK-OLD"
	base.Tracking.CurrentLocation = "Hamburg, DE"

	str := func(s string) *string { return &s }

	t.Run("patch overwrites only supplied fields", func(t *testing.T) {
		eta := now.Add(5 * 24 * time.Hour)
		updated := booking.ApplyTracking(base, booking.TrackingPatch{
			Number:            str("TRK-NEW"),
			EstimatedDelivery: &eta,
		}, now)

		assert.Equal(t, "TRK-NEW", updated.Tracking.Number)
		require.NotNil(t, updated.Tracking.EstimatedDelivery)
		assert.Equal(t, eta, *updated.Tracking.EstimatedDelivery)
		// untouched fields survive
		assert.Equal(t, "Hamburg, DE", updated.Tracking.CurrentLocation)
		assert.Empty(t, updated.Tracking.URL)
		assert.Len(t, updated.Tracking.History, 1)
	})

	t.Run("status update appends a ledger entry without moving the booking", func(t *testing.T) {
		updated := booking.ApplyTracking(base, booking.TrackingPatch{
			CurrentLocation: str("Gdansk, PL"),
			StatusUpdate: &booking.TrackingStatusUpdate{
				Status:   "loaded_on_truck",
				Location: "Gdansk terminal",
			},
		}, now)

		require.Len(t, updated.Tracking.History, 2)
		assert.Equal(t, "loaded_on_truck", updated.Tracking.History[1].Status)
		assert.Equal(t, "loaded_on_truck", updated.Tracking.CurrentStatus)
		assert.Equal(t, "Gdansk terminal", updated.Tracking.CurrentLocation)
		assert.Equal(t, entities.StatusQuoteRequested, updated.Status)
	})

	t.Run("empty patch only refreshes the updated timestamp", func(t *testing.T) {
		later := now.Add(time.Minute)
		updated := booking.ApplyTracking(base, booking.TrackingPatch{}, later)

		assert.Equal(t, base.Tracking, updated.Tracking)
		assert.Equal(t, later, updated.UpdatedAt)
	})
}
