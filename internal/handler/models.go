package handler

import (
	"time"

	"github.com/autobid/transport-service/internal/booking"
	"github.com/autobid/transport-service/internal/entities"
	"github.com/autobid/transport-service/internal/quote"
)

// QuoteRequest describes the route and vehicle to price.
type QuoteRequest struct {
	PickupCountry   string `json:"pickup_country" validate:"required,len=2"`
	PickupCity      string `json:"pickup_city,omitempty"`
	DeliveryCountry string `json:"delivery_country" validate:"required,len=2"`
	DeliveryCity    string `json:"delivery_city,omitempty"`

	VehicleType string `json:"vehicle_type" validate:"required"`
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
	Year        int    `json:"year,omitempty" validate:"omitempty,gte=1900"`
	Condition   string `json:"condition,omitempty" validate:"omitempty,oneof=running non_running"`

	Currency string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

type InsuranceOption struct {
	Name          string  `json:"name"`
	CoverageLimit float64 `json:"coverage_limit"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
}

type AdditionalService struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// Quote is one provider's offer for the requested route.
type Quote struct {
	ProviderID         string              `json:"provider_id"`
	ProviderName       string              `json:"provider_name"`
	Price              float64             `json:"price"`
	Currency           string              `json:"currency"`
	EstimatedDays      int                 `json:"estimated_days"`
	InsuranceOptions   []InsuranceOption   `json:"insurance_options,omitempty"`
	AdditionalServices []AdditionalService `json:"additional_services,omitempty"`
	ValidUntil         time.Time           `json:"valid_until"`
}

type ContactDetails struct {
	Address       string     `json:"address,omitempty"`
	City          string     `json:"city,omitempty"`
	Country       string     `json:"country" validate:"required,len=2"`
	ContactName   string     `json:"contact_name,omitempty"`
	ContactPhone  string     `json:"contact_phone,omitempty"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
}

type VehicleDetails struct {
	Make      string  `json:"make" validate:"required"`
	Model     string  `json:"model" validate:"required"`
	Year      int     `json:"year" validate:"required,gte=1900"`
	VIN       string  `json:"vin,omitempty"`
	LengthM   float64 `json:"length_m,omitempty"`
	WidthM    float64 `json:"width_m,omitempty"`
	HeightM   float64 `json:"height_m,omitempty"`
	WeightKG  float64 `json:"weight_kg,omitempty"`
	Condition string  `json:"condition,omitempty" validate:"omitempty,oneof=running non_running"`
}

type FeeLine struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type Insurance struct {
	OptionName    string  `json:"option_name"`
	PolicyNumber  string  `json:"policy_number,omitempty"`
	CoverageLimit float64 `json:"coverage_limit,omitempty"`
	Price         float64 `json:"price,omitempty"`
	Currency      string  `json:"currency,omitempty"`
}

type CreateBookingRequest struct {
	VehicleID  string `json:"vehicle_id" validate:"required"`
	BuyerID    string `json:"buyer_id" validate:"required"`
	SellerID   string `json:"seller_id" validate:"required"`
	AuctionID  string `json:"auction_id,omitempty"`
	ProviderID string `json:"provider_id" validate:"required"`

	Pickup   ContactDetails `json:"pickup" validate:"required"`
	Delivery ContactDetails `json:"delivery" validate:"required"`
	Vehicle  VehicleDetails `json:"vehicle" validate:"required"`

	QuoteAmount float64   `json:"quote_amount" validate:"required,gt=0"`
	Currency    string    `json:"currency" validate:"required,len=3"`
	Fees        []FeeLine `json:"fees,omitempty"`

	Insurance *Insurance `json:"insurance,omitempty"`
	CreatedBy string     `json:"created_by,omitempty"`
}

type StatusUpdateRequest struct {
	Status   string `json:"status" validate:"required,oneof=draft quote_requested quoted booked pickup_scheduled in_transit customs_clearance delivered cancelled failed"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type CompleteCustomsRequest struct {
	ClearanceDate *time.Time `json:"clearance_date,omitempty"`
	Office        string     `json:"office,omitempty"`
	Agent         string     `json:"agent,omitempty"`
	Documents     []string   `json:"documents,omitempty"`
	DutiesAmount  float64    `json:"duties_amount,omitempty" validate:"omitempty,gte=0"`
	Notes         string     `json:"notes,omitempty"`
}

type TrackingStatusUpdate struct {
	Status   string `json:"status" validate:"required"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// TrackingPatchRequest has partial-update semantics: only supplied fields
// are overwritten.
type TrackingPatchRequest struct {
	TrackingNumber    *string               `json:"tracking_number,omitempty"`
	TrackingURL       *string               `json:"tracking_url,omitempty"`
	EstimatedDelivery *time.Time            `json:"estimated_delivery,omitempty"`
	CurrentLocation   *string               `json:"current_location,omitempty"`
	StatusUpdate      *TrackingStatusUpdate `json:"status_update,omitempty"`
}

type AddDocumentRequest struct {
	Type     string `json:"type" validate:"required"`
	Filename string `json:"filename" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
}

type AddNoteRequest struct {
	Author   string `json:"author" validate:"required"`
	Content  string `json:"content" validate:"required"`
	IsPublic *bool  `json:"is_public,omitempty"`
}

type TrackingEntry struct {
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type Tracking struct {
	Number            string          `json:"number,omitempty"`
	URL               string          `json:"url,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actual_delivery,omitempty"`
	CurrentLocation   string          `json:"current_location,omitempty"`
	CurrentStatus     string          `json:"current_status"`
	History           []TrackingEntry `json:"history"`
}

type CustomsClearance struct {
	Required      bool       `json:"required"`
	Status        string     `json:"status"`
	ClearanceDate *time.Time `json:"clearance_date,omitempty"`
	Office        string     `json:"office,omitempty"`
	Agent         string     `json:"agent,omitempty"`
	Documents     []string   `json:"documents,omitempty"`
	DutiesAmount  float64    `json:"duties_amount,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

type Waypoint struct {
	Type    string `json:"type"`
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
}

type RouteDetails struct {
	DistanceKM      float64    `json:"distance_km,omitempty"`
	EstimatedDays   int        `json:"estimated_days,omitempty"`
	BorderCrossings []string   `json:"border_crossings,omitempty"`
	Waypoints       []Waypoint `json:"waypoints,omitempty"`
}

type Pricing struct {
	QuoteAmount  float64   `json:"quote_amount"`
	ActualAmount float64   `json:"actual_amount,omitempty"`
	Currency     string    `json:"currency"`
	Fees         []FeeLine `json:"fees,omitempty"`
	Paid         bool      `json:"paid"`
}

type Document struct {
	Type       string    `json:"type"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Note struct {
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
}

// Booking is the full aggregate as exposed over HTTP.
type Booking struct {
	BookingID  string `json:"booking_id"`
	VehicleID  string `json:"vehicle_id"`
	BuyerID    string `json:"buyer_id"`
	SellerID   string `json:"seller_id"`
	AuctionID  string `json:"auction_id,omitempty"`
	ProviderID string `json:"provider_id"`
	Status     string `json:"status"`

	Pickup   ContactDetails `json:"pickup"`
	Delivery ContactDetails `json:"delivery"`
	Vehicle  VehicleDetails `json:"vehicle"`
	Route    *RouteDetails  `json:"route,omitempty"`
	Pricing  Pricing        `json:"pricing"`
	Tracking Tracking       `json:"tracking"`

	Customs   *CustomsClearance `json:"customs_clearance,omitempty"`
	Insurance *Insurance        `json:"insurance,omitempty"`

	Documents []Document `json:"documents,omitempty"`
	Notes     []Note     `json:"notes,omitempty"`

	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func QuoteRequestToInput(r QuoteRequest) quote.Request {
	condition := entities.RunningCondition(r.Condition)
	if condition == "" {
		condition = entities.ConditionRunning
	}
	return quote.Request{
		PickupCountry:   r.PickupCountry,
		PickupCity:      r.PickupCity,
		DeliveryCountry: r.DeliveryCountry,
		DeliveryCity:    r.DeliveryCity,
		VehicleType:     r.VehicleType,
		Make:            r.Make,
		Model:           r.Model,
		Year:            r.Year,
		Condition:       condition,
		Currency:        r.Currency,
	}
}

func QuoteEntityToJSON(q entities.Quote) Quote {
	options := make([]InsuranceOption, 0, len(q.InsuranceOptions))
	for _, o := range q.InsuranceOptions {
		options = append(options, InsuranceOption{
			Name:          o.Name,
			CoverageLimit: o.CoverageLimit,
			Price:         o.Price,
			Currency:      o.Currency,
		})
	}
	services := make([]AdditionalService, 0, len(q.AdditionalServices))
	for _, s := range q.AdditionalServices {
		services = append(services, AdditionalService{
			Name:     s.Name,
			Price:    s.Price,
			Currency: s.Currency,
		})
	}
	return Quote{
		ProviderID:         q.ProviderID,
		ProviderName:       q.ProviderName,
		Price:              q.Price,
		Currency:           q.Currency,
		EstimatedDays:      q.EstimatedDays,
		InsuranceOptions:   options,
		AdditionalServices: services,
		ValidUntil:         q.ValidUntil,
	}
}

func CreateRequestToInput(r CreateBookingRequest) booking.CreateInput {
	condition := entities.RunningCondition(r.Vehicle.Condition)
	if condition == "" {
		condition = entities.ConditionRunning
	}

	in := booking.CreateInput{
		VehicleID:  r.VehicleID,
		BuyerID:    r.BuyerID,
		SellerID:   r.SellerID,
		AuctionID:  r.AuctionID,
		ProviderID: r.ProviderID,
		Pickup:     contactToEntity(r.Pickup),
		Delivery:   contactToEntity(r.Delivery),
		Vehicle: entities.VehicleDetails{
			Make:      r.Vehicle.Make,
			Model:     r.Vehicle.Model,
			Year:      r.Vehicle.Year,
			VIN:       r.Vehicle.VIN,
			LengthM:   r.Vehicle.LengthM,
			WidthM:    r.Vehicle.WidthM,
			HeightM:   r.Vehicle.HeightM,
			WeightKG:  r.Vehicle.WeightKG,
			Condition: condition,
		},
		QuoteAmount: r.QuoteAmount,
		Currency:    r.Currency,
		CreatedBy:   r.CreatedBy,
	}

	for _, f := range r.Fees {
		in.Fees = append(in.Fees, entities.FeeLine{Name: f.Name, Amount: f.Amount})
	}
	if r.Insurance != nil {
		in.Insurance = &entities.Insurance{
			OptionName:    r.Insurance.OptionName,
			PolicyNumber:  r.Insurance.PolicyNumber,
			CoverageLimit: r.Insurance.CoverageLimit,
			Price:         r.Insurance.Price,
			Currency:      r.Insurance.Currency,
		}
	}
	return in
}

func TrackingPatchToInput(r TrackingPatchRequest) booking.TrackingPatch {
	patch := booking.TrackingPatch{
		Number:            r.TrackingNumber,
		URL:               r.TrackingURL,
		EstimatedDelivery: r.EstimatedDelivery,
		CurrentLocation:   r.CurrentLocation,
	}
	if r.StatusUpdate != nil {
		patch.StatusUpdate = &booking.TrackingStatusUpdate{
			Status:   r.StatusUpdate.Status,
			Location: r.StatusUpdate.Location,
			Notes:    r.StatusUpdate.Notes,
		}
	}
	return patch
}

func BookingEntityToJSON(b entities.TransportBooking) Booking {
	resp := Booking{
		BookingID:  b.ID,
		VehicleID:  b.VehicleID,
		BuyerID:    b.BuyerID,
		SellerID:   b.SellerID,
		AuctionID:  b.AuctionID,
		ProviderID: b.ProviderID,
		Status:     string(b.Status),
		Pickup:     contactToJSON(b.Pickup),
		Delivery:   contactToJSON(b.Delivery),
		Vehicle: VehicleDetails{
			Make:      b.Vehicle.Make,
			Model:     b.Vehicle.Model,
			Year:      b.Vehicle.Year,
			VIN:       b.Vehicle.VIN,
			LengthM:   b.Vehicle.LengthM,
			WidthM:    b.Vehicle.WidthM,
			HeightM:   b.Vehicle.HeightM,
			WeightKG:  b.Vehicle.WeightKG,
			Condition: string(b.Vehicle.Condition),
		},
		Pricing: Pricing{
			QuoteAmount:  b.Pricing.QuoteAmount,
			ActualAmount: b.Pricing.ActualAmount,
			Currency:     b.Pricing.Currency,
			Paid:         b.Pricing.Paid,
		},
		Tracking: Tracking{
			Number:            b.Tracking.Number,
			URL:               b.Tracking.URL,
			EstimatedDelivery: b.Tracking.EstimatedDelivery,
			ActualDelivery:    b.Tracking.ActualDelivery,
			CurrentLocation:   b.Tracking.CurrentLocation,
			CurrentStatus:     b.Tracking.CurrentStatus,
		},
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	for _, f := range b.Pricing.Fees {
		resp.Pricing.Fees = append(resp.Pricing.Fees, FeeLine{Name: f.Name, Amount: f.Amount})
	}
	resp.Tracking.History = make([]TrackingEntry, 0, len(b.Tracking.History))
	for _, e := range b.Tracking.History {
		resp.Tracking.History = append(resp.Tracking.History, TrackingEntry{
			Status:    e.Status,
			Location:  e.Location,
			Timestamp: e.Timestamp,
			Notes:     e.Notes,
		})
	}

	if len(b.Route.Waypoints) > 0 || b.Route.DistanceKM > 0 || len(b.Route.BorderCrossings) > 0 {
		route := RouteDetails{
			DistanceKM:      b.Route.DistanceKM,
			EstimatedDays:   b.Route.EstimatedDays,
			BorderCrossings: b.Route.BorderCrossings,
		}
		for _, w := range b.Route.Waypoints {
			route.Waypoints = append(route.Waypoints, Waypoint{
				Type:    string(w.Type),
				Country: w.Country,
				City:    w.City,
			})
		}
		resp.Route = &route
	}

	if b.Customs != nil {
		resp.Customs = &CustomsClearance{
			Required:      b.Customs.Required,
			Status:        string(b.Customs.Status),
			ClearanceDate: b.Customs.ClearanceDate,
			Office:        b.Customs.Office,
			Agent:         b.Customs.Agent,
			Documents:     b.Customs.Documents,
			DutiesAmount:  b.Customs.DutiesAmount,
			Notes:         b.Customs.Notes,
		}
	}
	if b.Insurance != nil {
		resp.Insurance = &Insurance{
			OptionName:    b.Insurance.OptionName,
			PolicyNumber:  b.Insurance.PolicyNumber,
			CoverageLimit: b.Insurance.CoverageLimit,
			Price:         b.Insurance.Price,
			Currency:      b.Insurance.Currency,
		}
	}
	for _, d := range b.Documents {
		resp.Documents = append(resp.Documents, Document{
			Type:       d.Type,
			Filename:   d.Filename,
			URL:        d.URL,
			UploadedAt: d.UploadedAt,
		})
	}
	for _, n := range b.Notes {
		resp.Notes = append(resp.Notes, Note{
			Author:    n.Author,
			Content:   n.Content,
			IsPublic:  n.IsPublic,
			CreatedAt: n.CreatedAt,
		})
	}

	return resp
}

func contactToEntity(c ContactDetails) entities.ContactDetails {
	return entities.ContactDetails{
		Address:       c.Address,
		City:          c.City,
		Country:       c.Country,
		ContactName:   c.ContactName,
		ContactPhone:  c.ContactPhone,
		ScheduledDate: c.ScheduledDate,
	}
}

func contactToJSON(c entities.ContactDetails) ContactDetails {
	return ContactDetails{
		Address:       c.Address,
		City:          c.City,
		Country:       c.Country,
		ContactName:   c.ContactName,
		ContactPhone:  c.ContactPhone,
		ScheduledDate: c.ScheduledDate,
	}
}
