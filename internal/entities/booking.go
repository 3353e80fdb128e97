package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type BookingStatus string

const (
	StatusDraft            BookingStatus = "draft"
	StatusQuoteRequested   BookingStatus = "quote_requested"
	StatusQuoted           BookingStatus = "quoted"
	StatusBooked           BookingStatus = "booked"
	StatusPickupScheduled  BookingStatus = "pickup_scheduled"
	StatusInTransit        BookingStatus = "in_transit"
	StatusCustomsClearance BookingStatus = "customs_clearance"
	StatusDelivered        BookingStatus = "delivered"
	StatusCancelled        BookingStatus = "cancelled"
	StatusFailed           BookingStatus = "failed"
)

// Terminal reports whether the booking can no longer leave this status.
func (s BookingStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusFailed
}

type RunningCondition string

const (
	ConditionRunning    RunningCondition = "running"
	ConditionNonRunning RunningCondition = "non_running"
)

type WaypointType string

const (
	WaypointPickup     WaypointType = "pickup"
	WaypointCustoms    WaypointType = "customs"
	WaypointHandover   WaypointType = "handover"
	WaypointStorage    WaypointType = "storage"
	WaypointInspection WaypointType = "inspection"
	WaypointDelivery   WaypointType = "delivery"
)

type CustomsStatus string

const (
	CustomsNotStarted CustomsStatus = "not_started"
	CustomsInProgress CustomsStatus = "in_progress"
	CustomsCompleted  CustomsStatus = "completed"
	CustomsIssues     CustomsStatus = "issues"
)

type ContactDetails struct {
	Address       string
	City          string
	Country       string
	ContactName   string
	ContactPhone  string
	ScheduledDate *time.Time
}

type VehicleDetails struct {
	Make      string
	Model     string
	Year      int
	VIN       string
	LengthM   float64
	WidthM    float64
	HeightM   float64
	WeightKG  float64
	Condition RunningCondition
}

type Waypoint struct {
	Type    WaypointType
	Country string
	City    string
}

type RouteDetails struct {
	DistanceKM      float64
	EstimatedDays   int
	BorderCrossings []string
	Waypoints       []Waypoint
}

type FeeLine struct {
	Name   string
	Amount float64
}

type Pricing struct {
	QuoteAmount  float64
	ActualAmount float64
	Currency     string
	Fees         []FeeLine
	Paid         bool
}

type TrackingEntry struct {
	Status    string
	Location  string
	Timestamp time.Time
	Notes     string
}

type Tracking struct {
	Number            string
	URL               string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	CurrentLocation   string
	CurrentStatus     string
	History           []TrackingEntry
}

type CustomsClearance struct {
	Required      bool
	Status        CustomsStatus
	ClearanceDate *time.Time
	Office        string
	Agent         string
	Documents     []string
	DutiesAmount  float64
	Notes         string
}

type Insurance struct {
	OptionName    string
	PolicyNumber  string
	CoverageLimit float64
	Price         float64
	Currency      string
}

type Document struct {
	Type       string
	Filename   string
	URL        string
	UploadedAt time.Time
}

type Note struct {
	Author    string
	Content   string
	IsPublic  bool
	CreatedAt time.Time
}

// TransportBooking is the aggregate root. It is mutated only through the
// booking lifecycle operations; the tracking history is append-only.
type TransportBooking struct {
	ID         string
	VehicleID  string
	BuyerID    string
	SellerID   string
	AuctionID  string
	ProviderID string

	Status BookingStatus

	Pickup   ContactDetails
	Delivery ContactDetails
	Vehicle  VehicleDetails
	Route    RouteDetails
	Pricing  Pricing
	Tracking Tracking

	// Customs is set only for cross-border routes.
	Customs   *CustomsClearance
	Insurance *Insurance

	Documents []Document
	Notes     []Note

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidBooking   = errors.New("invalid booking data")
	ErrCustomsNotNeeded = errors.New("customs clearance not required")
	ErrBadTransition    = errors.New("status transition not allowed")
)

func (b *TransportBooking) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *TransportBooking) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(b); err != nil {
		return ErrInvalidBooking
	}
	return nil
}

func init() {
	gob.Register(TransportBooking{})
	gob.Register(CustomsClearance{})
	gob.Register(Insurance{})
}
