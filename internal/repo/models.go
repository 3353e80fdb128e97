package repo

import (
	"database/sql"
	"time"

	"github.com/autobid/transport-service/internal/entities"

	"github.com/lib/pq"
)

type Booking struct {
	BookingID  string         `db:"booking_id"`
	VehicleID  string         `db:"vehicle_id"`
	BuyerID    string         `db:"buyer_id"`
	SellerID   string         `db:"seller_id"`
	AuctionID  sql.NullString `db:"auction_id"`
	ProviderID string         `db:"provider_id"`
	Status     string         `db:"status"`

	PickupAddress       sql.NullString `db:"pickup_address"`
	PickupCity          sql.NullString `db:"pickup_city"`
	PickupCountry       string         `db:"pickup_country"`
	PickupContactName   sql.NullString `db:"pickup_contact_name"`
	PickupContactPhone  sql.NullString `db:"pickup_contact_phone"`
	PickupScheduledDate sql.NullTime   `db:"pickup_scheduled_date"`

	DeliveryAddress       sql.NullString `db:"delivery_address"`
	DeliveryCity          sql.NullString `db:"delivery_city"`
	DeliveryCountry       string         `db:"delivery_country"`
	DeliveryContactName   sql.NullString `db:"delivery_contact_name"`
	DeliveryContactPhone  sql.NullString `db:"delivery_contact_phone"`
	DeliveryScheduledDate sql.NullTime   `db:"delivery_scheduled_date"`

	VehicleMake      string          `db:"vehicle_make"`
	VehicleModel     string          `db:"vehicle_model"`
	VehicleYear      int             `db:"vehicle_year"`
	VehicleVIN       sql.NullString  `db:"vehicle_vin"`
	VehicleLengthM   sql.NullFloat64 `db:"vehicle_length_m"`
	VehicleWidthM    sql.NullFloat64 `db:"vehicle_width_m"`
	VehicleHeightM   sql.NullFloat64 `db:"vehicle_height_m"`
	VehicleWeightKG  sql.NullFloat64 `db:"vehicle_weight_kg"`
	RunningCondition string          `db:"running_condition"`

	RouteDistanceKM    sql.NullFloat64 `db:"route_distance_km"`
	RouteEstimatedDays sql.NullInt32   `db:"route_estimated_days"`
	BorderCrossings    pq.StringArray  `db:"border_crossings"`

	QuoteAmount  float64         `db:"quote_amount"`
	ActualAmount sql.NullFloat64 `db:"actual_amount"`
	Currency     string          `db:"currency"`
	IsPaid       bool            `db:"is_paid"`

	TrackingNumber    sql.NullString `db:"tracking_number"`
	TrackingURL       sql.NullString `db:"tracking_url"`
	EstimatedDelivery sql.NullTime   `db:"estimated_delivery"`
	ActualDelivery    sql.NullTime   `db:"actual_delivery"`
	CurrentLocation   sql.NullString `db:"current_location"`
	CurrentStatus     string         `db:"current_status"`

	CustomsRequired  bool            `db:"customs_required"`
	CustomsStatus    sql.NullString  `db:"customs_status"`
	ClearanceDate    sql.NullTime    `db:"clearance_date"`
	CustomsOffice    sql.NullString  `db:"customs_office"`
	CustomsAgent     sql.NullString  `db:"customs_agent"`
	CustomsDocuments pq.StringArray  `db:"customs_documents"`
	DutiesAmount     sql.NullFloat64 `db:"duties_amount"`
	CustomsNotes     sql.NullString  `db:"customs_notes"`

	InsuranceName          sql.NullString  `db:"insurance_name"`
	InsurancePolicyNumber  sql.NullString  `db:"insurance_policy_number"`
	InsuranceCoverageLimit sql.NullFloat64 `db:"insurance_coverage_limit"`
	InsurancePrice         sql.NullFloat64 `db:"insurance_price"`
	InsuranceCurrency      sql.NullString  `db:"insurance_currency"`

	CreatedBy sql.NullString `db:"created_by"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type HistoryEntry struct {
	BookingID string         `db:"booking_id"`
	Seq       int            `db:"seq"`
	Status    string         `db:"status"`
	Location  sql.NullString `db:"location"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt time.Time      `db:"created_at"`
}

type WaypointRow struct {
	BookingID    string         `db:"booking_id"`
	Position     int            `db:"position"`
	WaypointType string         `db:"waypoint_type"`
	Country      sql.NullString `db:"country"`
	City         sql.NullString `db:"city"`
}

type FeeLineRow struct {
	BookingID string  `db:"booking_id"`
	Position  int     `db:"position"`
	Name      string  `db:"name"`
	Amount    float64 `db:"amount"`
}

type DocumentRow struct {
	BookingID  string    `db:"booking_id"`
	DocType    string    `db:"doc_type"`
	Filename   string    `db:"filename"`
	URL        string    `db:"url"`
	UploadedAt time.Time `db:"uploaded_at"`
}

type NoteRow struct {
	BookingID string    `db:"booking_id"`
	Author    string    `db:"author"`
	Content   string    `db:"content"`
	IsPublic  bool      `db:"is_public"`
	CreatedAt time.Time `db:"created_at"`
}

type Provider struct {
	ProviderID  string  `db:"provider_id"`
	Name        string  `db:"name"`
	Rating      float64 `db:"rating"`
	IsActive    bool    `db:"is_active"`
	IsPreferred bool    `db:"is_preferred"`
}

type RateRow struct {
	ProviderID  string          `db:"provider_id"`
	FromCountry string          `db:"from_country"`
	ToCountry   string          `db:"to_country"`
	VehicleType string          `db:"vehicle_type"`
	Price       float64         `db:"price"`
	Currency    string          `db:"currency"`
	PriceUnit   sql.NullString  `db:"price_unit"`
	MinPrice    sql.NullFloat64 `db:"min_price"`
}

type FeeRow struct {
	ProviderID string  `db:"provider_id"`
	Position   int     `db:"position"`
	Name       string  `db:"name"`
	Amount     float64 `db:"amount"`
	FeeType    string  `db:"fee_type"`
}

type InsuranceOptionRow struct {
	ProviderID    string  `db:"provider_id"`
	Name          string  `db:"name"`
	CoverageLimit float64 `db:"coverage_limit"`
	Price         float64 `db:"price"`
	Currency      string  `db:"currency"`
}

type CountryRow struct {
	ProviderID  string `db:"provider_id"`
	CountryCode string `db:"country_code"`
}

func ProviderToEntity(p Provider, countries []CountryRow, rates []RateRow, fees []FeeRow, options []InsuranceOptionRow) entities.TransportProvider {
	provider := entities.TransportProvider{
		ID:          p.ProviderID,
		Name:        p.Name,
		Rating:      p.Rating,
		IsActive:    p.IsActive,
		IsPreferred: p.IsPreferred,
	}

	for _, c := range countries {
		provider.OperatingCountries = append(provider.OperatingCountries, c.CountryCode)
	}
	for _, r := range rates {
		provider.BaseRates = append(provider.BaseRates, entities.BaseRate{
			FromCountry: r.FromCountry,
			ToCountry:   r.ToCountry,
			VehicleType: r.VehicleType,
			Price:       r.Price,
			Currency:    r.Currency,
			PriceUnit:   nullStringToString(r.PriceUnit),
			MinPrice:    nullFloatToFloat(r.MinPrice),
		})
	}
	// fees come ordered by position: the order is part of the pricing
	// contract
	for _, f := range fees {
		provider.AdditionalFees = append(provider.AdditionalFees, entities.AdditionalFee{
			Name:   f.Name,
			Amount: f.Amount,
			Type:   entities.FeeType(f.FeeType),
		})
	}
	for _, o := range options {
		provider.InsuranceOptions = append(provider.InsuranceOptions, entities.InsuranceOption{
			Name:          o.Name,
			CoverageLimit: o.CoverageLimit,
			Price:         o.Price,
			Currency:      o.Currency,
		})
	}

	return provider
}

func BookingToEntity(b Booking, history []HistoryEntry, waypoints []WaypointRow, fees []FeeLineRow, docs []DocumentRow, notes []NoteRow) entities.TransportBooking {
	booking := entities.TransportBooking{
		ID:         b.BookingID,
		VehicleID:  b.VehicleID,
		BuyerID:    b.BuyerID,
		SellerID:   b.SellerID,
		AuctionID:  nullStringToString(b.AuctionID),
		ProviderID: b.ProviderID,
		Status:     entities.BookingStatus(b.Status),
		Pickup: entities.ContactDetails{
			Address:       nullStringToString(b.PickupAddress),
			City:          nullStringToString(b.PickupCity),
			Country:       b.PickupCountry,
			ContactName:   nullStringToString(b.PickupContactName),
			ContactPhone:  nullStringToString(b.PickupContactPhone),
			ScheduledDate: nullTimeToPtr(b.PickupScheduledDate),
		},
		Delivery: entities.ContactDetails{
			Address:       nullStringToString(b.DeliveryAddress),
			City:          nullStringToString(b.DeliveryCity),
			Country:       b.DeliveryCountry,
			ContactName:   nullStringToString(b.DeliveryContactName),
			ContactPhone:  nullStringToString(b.DeliveryContactPhone),
			ScheduledDate: nullTimeToPtr(b.DeliveryScheduledDate),
		},
		Vehicle: entities.VehicleDetails{
			Make:      b.VehicleMake,
			Model:     b.VehicleModel,
			Year:      b.VehicleYear,
			VIN:       nullStringToString(b.VehicleVIN),
			LengthM:   nullFloatToFloat(b.VehicleLengthM),
			WidthM:    nullFloatToFloat(b.VehicleWidthM),
			HeightM:   nullFloatToFloat(b.VehicleHeightM),
			WeightKG:  nullFloatToFloat(b.VehicleWeightKG),
			Condition: entities.RunningCondition(b.RunningCondition),
		},
		Route: entities.RouteDetails{
			DistanceKM:      nullFloatToFloat(b.RouteDistanceKM),
			EstimatedDays:   int(nullInt32ToInt(b.RouteEstimatedDays)),
			BorderCrossings: b.BorderCrossings,
		},
		Pricing: entities.Pricing{
			QuoteAmount:  b.QuoteAmount,
			ActualAmount: nullFloatToFloat(b.ActualAmount),
			Currency:     b.Currency,
			Paid:         b.IsPaid,
		},
		Tracking: entities.Tracking{
			Number:            nullStringToString(b.TrackingNumber),
			URL:               nullStringToString(b.TrackingURL),
			EstimatedDelivery: nullTimeToPtr(b.EstimatedDelivery),
			ActualDelivery:    nullTimeToPtr(b.ActualDelivery),
			CurrentLocation:   nullStringToString(b.CurrentLocation),
			CurrentStatus:     b.CurrentStatus,
		},
		CreatedBy: nullStringToString(b.CreatedBy),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.CustomsRequired {
		booking.Customs = &entities.CustomsClearance{
			Required:      true,
			Status:        entities.CustomsStatus(nullStringToString(b.CustomsStatus)),
			ClearanceDate: nullTimeToPtr(b.ClearanceDate),
			Office:        nullStringToString(b.CustomsOffice),
			Agent:         nullStringToString(b.CustomsAgent),
			Documents:     b.CustomsDocuments,
			DutiesAmount:  nullFloatToFloat(b.DutiesAmount),
			Notes:         nullStringToString(b.CustomsNotes),
		}
	}

	if b.InsuranceName.Valid {
		booking.Insurance = &entities.Insurance{
			OptionName:    b.InsuranceName.String,
			PolicyNumber:  nullStringToString(b.InsurancePolicyNumber),
			CoverageLimit: nullFloatToFloat(b.InsuranceCoverageLimit),
			Price:         nullFloatToFloat(b.InsurancePrice),
			Currency:      nullStringToString(b.InsuranceCurrency),
		}
	}

	for _, h := range history {
		booking.Tracking.History = append(booking.Tracking.History, entities.TrackingEntry{
			Status:    h.Status,
			Location:  nullStringToString(h.Location),
			Timestamp: h.CreatedAt,
			Notes:     nullStringToString(h.Notes),
		})
	}
	for _, w := range waypoints {
		booking.Route.Waypoints = append(booking.Route.Waypoints, entities.Waypoint{
			Type:    entities.WaypointType(w.WaypointType),
			Country: nullStringToString(w.Country),
			City:    nullStringToString(w.City),
		})
	}
	for _, f := range fees {
		booking.Pricing.Fees = append(booking.Pricing.Fees, entities.FeeLine{
			Name:   f.Name,
			Amount: f.Amount,
		})
	}
	for _, d := range docs {
		booking.Documents = append(booking.Documents, entities.Document{
			Type:       d.DocType,
			Filename:   d.Filename,
			URL:        d.URL,
			UploadedAt: d.UploadedAt,
		})
	}
	for _, n := range notes {
		booking.Notes = append(booking.Notes, entities.Note{
			Author:    n.Author,
			Content:   n.Content,
			IsPublic:  n.IsPublic,
			CreatedAt: n.CreatedAt,
		})
	}

	return booking
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullFloat stores zero as NULL. The aggregate does not distinguish
// "unset" from "explicitly zero" for amounts: a NULL reads back as 0
// through nullFloatToFloat, so the two states round-trip identically.
func nullFloat(f float64) sql.NullFloat64 {
	if f == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

func nullInt32(i int) sql.NullInt32 {
	if i == 0 {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(i), Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullFloatToFloat(nf sql.NullFloat64) float64 {
	if nf.Valid {
		return nf.Float64
	}
	return 0
}

func nullInt32ToInt(ni sql.NullInt32) int {
	if ni.Valid {
		return int(ni.Int32)
	}
	return 0
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}
