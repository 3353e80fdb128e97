package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/autobid/transport-service/internal/entities"
	"github.com/autobid/transport-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var bookingColumns = []string{
	"booking_id", "vehicle_id", "buyer_id", "seller_id", "auction_id", "provider_id", "status",
	"pickup_address", "pickup_city", "pickup_country", "pickup_contact_name", "pickup_contact_phone", "pickup_scheduled_date",
	"delivery_address", "delivery_city", "delivery_country", "delivery_contact_name", "delivery_contact_phone", "delivery_scheduled_date",
	"vehicle_make", "vehicle_model", "vehicle_year", "vehicle_vin",
	"vehicle_length_m", "vehicle_width_m", "vehicle_height_m", "vehicle_weight_kg", "running_condition",
	"route_distance_km", "route_estimated_days", "border_crossings",
	"quote_amount", "actual_amount", "currency", "is_paid",
	"tracking_number", "tracking_url", "estimated_delivery", "actual_delivery", "current_location", "current_status",
	"customs_required", "customs_status", "clearance_date", "customs_office", "customs_agent",
	"customs_documents", "duties_amount", "customs_notes",
	"insurance_name", "insurance_policy_number", "insurance_coverage_limit", "insurance_price", "insurance_currency",
	"created_by", "created_at", "updated_at",
}

type bookingRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewBookingRepo(db *sqlx.DB) *bookingRepo {
	return &bookingRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *bookingRepo) GetBookingByID(ctx context.Context, bookingID string) (entities.TransportBooking, error) {
	return r.getBooking(ctx, bookingID, false)
}

func (r *bookingRepo) GetBookingForUpdate(ctx context.Context, bookingID string) (entities.TransportBooking, error) {
	return r.getBooking(ctx, bookingID, true)
}

func (r *bookingRepo) getBooking(ctx context.Context, bookingID string, forUpdate bool) (entities.TransportBooking, error) {
	q := r.qb.Select(bookingColumns...).
		From("bookings").
		Where(sq.Eq{"booking_id": bookingID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var booking Booking
	err := r.getContext(ctx, &booking, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.TransportBooking{}, entities.ErrBookingNotFound
	}
	if err != nil {
		return entities.TransportBooking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	history, err := r.historyFor(ctx, []string{bookingID})
	if err != nil {
		return entities.TransportBooking{}, err
	}
	waypoints, err := r.waypointsFor(ctx, []string{bookingID})
	if err != nil {
		return entities.TransportBooking{}, err
	}
	fees, err := r.feesFor(ctx, []string{bookingID})
	if err != nil {
		return entities.TransportBooking{}, err
	}
	docs, err := r.documentsFor(ctx, []string{bookingID})
	if err != nil {
		return entities.TransportBooking{}, err
	}
	notes, err := r.notesFor(ctx, []string{bookingID})
	if err != nil {
		return entities.TransportBooking{}, err
	}

	return BookingToEntity(booking, history, waypoints, fees, docs, notes), nil
}

func (r *bookingRepo) LatestBookings(ctx context.Context, count int) ([]entities.TransportBooking, error) {
	query, args := r.qb.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var bookings []Booking
	if err := r.selectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select bookings: %w", err)
	}
	if len(bookings) == 0 {
		return []entities.TransportBooking{}, nil
	}

	ids := make([]string, len(bookings))
	for i, b := range bookings {
		ids[i] = b.BookingID
	}

	history, err := r.historyFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	historyMap := make(map[string][]HistoryEntry, len(ids))
	for _, h := range history {
		historyMap[h.BookingID] = append(historyMap[h.BookingID], h)
	}

	waypoints, err := r.waypointsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	waypointMap := make(map[string][]WaypointRow, len(ids))
	for _, w := range waypoints {
		waypointMap[w.BookingID] = append(waypointMap[w.BookingID], w)
	}

	fees, err := r.feesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	feeMap := make(map[string][]FeeLineRow, len(ids))
	for _, f := range fees {
		feeMap[f.BookingID] = append(feeMap[f.BookingID], f)
	}

	docs, err := r.documentsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	docMap := make(map[string][]DocumentRow, len(ids))
	for _, d := range docs {
		docMap[d.BookingID] = append(docMap[d.BookingID], d)
	}

	notes, err := r.notesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	noteMap := make(map[string][]NoteRow, len(ids))
	for _, n := range notes {
		noteMap[n.BookingID] = append(noteMap[n.BookingID], n)
	}

	result := make([]entities.TransportBooking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, BookingToEntity(
			b,
			historyMap[b.BookingID],
			waypointMap[b.BookingID],
			feeMap[b.BookingID],
			docMap[b.BookingID],
			noteMap[b.BookingID],
		))
	}
	return result, nil
}

func (r *bookingRepo) SaveBooking(ctx context.Context, b entities.TransportBooking) error {
	query, args := r.qb.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			b.ID, b.VehicleID, b.BuyerID, b.SellerID, nullString(b.AuctionID), b.ProviderID, string(b.Status),
			nullString(b.Pickup.Address), nullString(b.Pickup.City), b.Pickup.Country,
			nullString(b.Pickup.ContactName), nullString(b.Pickup.ContactPhone), nullTime(b.Pickup.ScheduledDate),
			nullString(b.Delivery.Address), nullString(b.Delivery.City), b.Delivery.Country,
			nullString(b.Delivery.ContactName), nullString(b.Delivery.ContactPhone), nullTime(b.Delivery.ScheduledDate),
			b.Vehicle.Make, b.Vehicle.Model, b.Vehicle.Year, nullString(b.Vehicle.VIN),
			nullFloat(b.Vehicle.LengthM), nullFloat(b.Vehicle.WidthM), nullFloat(b.Vehicle.HeightM), nullFloat(b.Vehicle.WeightKG),
			string(b.Vehicle.Condition),
			nullFloat(b.Route.DistanceKM), nullInt32(b.Route.EstimatedDays), pq.StringArray(b.Route.BorderCrossings),
			b.Pricing.QuoteAmount, nullFloat(b.Pricing.ActualAmount), b.Pricing.Currency, b.Pricing.Paid,
			nullString(b.Tracking.Number), nullString(b.Tracking.URL),
			nullTime(b.Tracking.EstimatedDelivery), nullTime(b.Tracking.ActualDelivery),
			nullString(b.Tracking.CurrentLocation), b.Tracking.CurrentStatus,
			customsRequired(b), nullString(customsStatus(b)), nullTime(customsDate(b)),
			nullString(customsOffice(b)), nullString(customsAgent(b)),
			customsDocuments(b), nullFloat(customsDuties(b)), nullString(customsNotes(b)),
			insuranceName(b), nullString(insurancePolicy(b)),
			nullFloat(insuranceCoverage(b)), nullFloat(insurancePrice(b)), nullString(insuranceCurrency(b)),
			nullString(b.CreatedBy), b.CreatedAt, b.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	if err := r.AppendHistory(ctx, b.ID, b.Tracking.History); err != nil {
		return err
	}
	if err := r.insertWaypoints(ctx, b.ID, b.Route.Waypoints); err != nil {
		return err
	}
	if err := r.insertFees(ctx, b.ID, b.Pricing.Fees); err != nil {
		return err
	}
	return nil
}

func (r *bookingRepo) UpdateBooking(ctx context.Context, b entities.TransportBooking) error {
	query, args := r.qb.Update("bookings").
		Set("status", string(b.Status)).
		Set("actual_amount", nullFloat(b.Pricing.ActualAmount)).
		Set("is_paid", b.Pricing.Paid).
		Set("tracking_number", nullString(b.Tracking.Number)).
		Set("tracking_url", nullString(b.Tracking.URL)).
		Set("estimated_delivery", nullTime(b.Tracking.EstimatedDelivery)).
		Set("actual_delivery", nullTime(b.Tracking.ActualDelivery)).
		Set("current_location", nullString(b.Tracking.CurrentLocation)).
		Set("current_status", b.Tracking.CurrentStatus).
		Set("customs_status", nullString(customsStatus(b))).
		Set("clearance_date", nullTime(customsDate(b))).
		Set("customs_office", nullString(customsOffice(b))).
		Set("customs_agent", nullString(customsAgent(b))).
		Set("customs_documents", customsDocuments(b)).
		Set("duties_amount", nullFloat(customsDuties(b))).
		Set("customs_notes", nullString(customsNotes(b))).
		Set("updated_at", b.UpdatedAt).
		Where(sq.Eq{"booking_id": b.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrBookingNotFound
	}
	return nil
}

// AppendHistory inserts ledger entries after the current tail. Callers
// hold the booking row lock, so the seq computed here cannot race.
func (r *bookingRepo) AppendHistory(ctx context.Context, bookingID string, entries []entities.TrackingEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query, args := r.qb.Select("COALESCE(MAX(seq), 0)").
		From("booking_status_history").
		Where(sq.Eq{"booking_id": bookingID}).
		MustSql()

	var seq int
	if err := r.getContext(ctx, &seq, query, args...); err != nil {
		return fmt.Errorf("failed to get history seq: %w", err)
	}

	q := r.qb.Insert("booking_status_history").
		Columns("booking_id", "seq", "status", "location", "notes", "created_at")
	for _, e := range entries {
		seq++
		q = q.Values(bookingID, seq, e.Status, nullString(e.Location), nullString(e.Notes), e.Timestamp)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

func (r *bookingRepo) AppendDocument(ctx context.Context, bookingID string, doc entities.Document) error {
	query, args := r.qb.Insert("booking_documents").
		Columns("booking_id", "doc_type", "filename", "url", "uploaded_at").
		Values(bookingID, doc.Type, doc.Filename, doc.URL, doc.UploadedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append document: %w", err)
	}
	return nil
}

func (r *bookingRepo) AppendNote(ctx context.Context, bookingID string, note entities.Note) error {
	query, args := r.qb.Insert("booking_notes").
		Columns("booking_id", "author", "content", "is_public", "created_at").
		Values(bookingID, note.Author, note.Content, note.IsPublic, note.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append note: %w", err)
	}
	return nil
}

func (r *bookingRepo) insertWaypoints(ctx context.Context, bookingID string, waypoints []entities.Waypoint) error {
	if len(waypoints) == 0 {
		return nil
	}

	q := r.qb.Insert("booking_waypoints").
		Columns("booking_id", "position", "waypoint_type", "country", "city")
	for i, w := range waypoints {
		q = q.Values(bookingID, i+1, string(w.Type), nullString(w.Country), nullString(w.City))
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert waypoints: %w", err)
	}
	return nil
}

func (r *bookingRepo) insertFees(ctx context.Context, bookingID string, fees []entities.FeeLine) error {
	if len(fees) == 0 {
		return nil
	}

	q := r.qb.Insert("booking_fees").
		Columns("booking_id", "position", "name", "amount")
	for i, f := range fees {
		q = q.Values(bookingID, i+1, f.Name, f.Amount)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert fees: %w", err)
	}
	return nil
}

func (r *bookingRepo) historyFor(ctx context.Context, ids []string) ([]HistoryEntry, error) {
	query, args := r.qb.Select("booking_id", "seq", "status", "location", "notes", "created_at").
		From("booking_status_history").
		Where(sq.Eq{"booking_id": ids}).
		OrderBy("booking_id", "seq").
		MustSql()

	var history []HistoryEntry
	if err := r.selectContext(ctx, &history, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select history: %w", err)
	}
	return history, nil
}

func (r *bookingRepo) waypointsFor(ctx context.Context, ids []string) ([]WaypointRow, error) {
	query, args := r.qb.Select("booking_id", "position", "waypoint_type", "country", "city").
		From("booking_waypoints").
		Where(sq.Eq{"booking_id": ids}).
		OrderBy("booking_id", "position").
		MustSql()

	var waypoints []WaypointRow
	if err := r.selectContext(ctx, &waypoints, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select waypoints: %w", err)
	}
	return waypoints, nil
}

func (r *bookingRepo) feesFor(ctx context.Context, ids []string) ([]FeeLineRow, error) {
	query, args := r.qb.Select("booking_id", "position", "name", "amount").
		From("booking_fees").
		Where(sq.Eq{"booking_id": ids}).
		OrderBy("booking_id", "position").
		MustSql()

	var fees []FeeLineRow
	if err := r.selectContext(ctx, &fees, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select fees: %w", err)
	}
	return fees, nil
}

func (r *bookingRepo) documentsFor(ctx context.Context, ids []string) ([]DocumentRow, error) {
	query, args := r.qb.Select("booking_id", "doc_type", "filename", "url", "uploaded_at").
		From("booking_documents").
		Where(sq.Eq{"booking_id": ids}).
		OrderBy("booking_id", "uploaded_at").
		MustSql()

	var docs []DocumentRow
	if err := r.selectContext(ctx, &docs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", err)
	}
	return docs, nil
}

func (r *bookingRepo) notesFor(ctx context.Context, ids []string) ([]NoteRow, error) {
	query, args := r.qb.Select("booking_id", "author", "content", "is_public", "created_at").
		From("booking_notes").
		Where(sq.Eq{"booking_id": ids}).
		OrderBy("booking_id", "created_at").
		MustSql()

	var notes []NoteRow
	if err := r.selectContext(ctx, &notes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	return notes, nil
}

func customsRequired(b entities.TransportBooking) bool {
	return b.Customs != nil && b.Customs.Required
}

func customsStatus(b entities.TransportBooking) string {
	if b.Customs == nil {
		return ""
	}
	return string(b.Customs.Status)
}

func customsDate(b entities.TransportBooking) *time.Time {
	if b.Customs == nil {
		return nil
	}
	return b.Customs.ClearanceDate
}

func customsDocuments(b entities.TransportBooking) pq.StringArray {
	if b.Customs == nil {
		return nil
	}
	return pq.StringArray(b.Customs.Documents)
}

func customsDuties(b entities.TransportBooking) float64 {
	if b.Customs == nil {
		return 0
	}
	return b.Customs.DutiesAmount
}

func customsOffice(b entities.TransportBooking) string {
	if b.Customs == nil {
		return ""
	}
	return b.Customs.Office
}

func customsAgent(b entities.TransportBooking) string {
	if b.Customs == nil {
		return ""
	}
	return b.Customs.Agent
}

func customsNotes(b entities.TransportBooking) string {
	if b.Customs == nil {
		return ""
	}
	return b.Customs.Notes
}

func insuranceName(b entities.TransportBooking) sql.NullString {
	if b.Insurance == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: b.Insurance.OptionName, Valid: true}
}

func insurancePolicy(b entities.TransportBooking) string {
	if b.Insurance == nil {
		return ""
	}
	return b.Insurance.PolicyNumber
}

func insuranceCoverage(b entities.TransportBooking) float64 {
	if b.Insurance == nil {
		return 0
	}
	return b.Insurance.CoverageLimit
}

func insurancePrice(b entities.TransportBooking) float64 {
	if b.Insurance == nil {
		return 0
	}
	return b.Insurance.Price
}

func insuranceCurrency(b entities.TransportBooking) string {
	if b.Insurance == nil {
		return ""
	}
	return b.Insurance.Currency
}

func (r *bookingRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *bookingRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *bookingRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
