package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, ref, vehicle_id, taxi_name, driver_id, driver_name,
	passenger_id, passenger_name, passenger_email, passenger_phone,
	origin, dest, time_label, seats, total, pickup_type, pickup_location,
	status, driver_status,
	cancellation_reason, cancellation_fee, cancelled_by, cancel_request_reason,
	rating, feedback,
	alert30_sent, alert15_sent, on_the_way_alert_sent,
	created_at, paid_at, on_the_way_at, cancel_requested_at,
	cancelled_at, completed_at, rated_at, updated_at`

var alertColumns = map[domain.AlertKind]string{
	domain.AlertKind30Min:    "alert30_sent",
	domain.AlertKind15Min:    "alert15_sent",
	domain.AlertKindOnTheWay: "on_the_way_alert_sent",
}

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a booking after an atomic seat check. The vehicle row is
// locked for the read-check-write span, so two concurrent creates for the
// same vehicle serialize and cannot overcommit capacity.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capQuery := `SELECT seats FROM vehicles WHERE id = $1 FOR UPDATE`
	var capacity int
	if err = tx.QueryRowContext(ctx, capQuery, b.VehicleID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVehicleNotFound
		}
		return fmt.Errorf("get vehicle capacity: %w", err)
	}

	usedQuery := `SELECT COALESCE(SUM(seats), 0) FROM bookings
				  WHERE vehicle_id = $1 AND time_label = $2 AND status <> $3`
	var used int
	if err = tx.QueryRowContext(
		ctx, usedQuery, b.VehicleID, b.TimeLabel, domain.BookingStatusCancelled,
	).Scan(&used); err != nil {
		return fmt.Errorf("sum reserved seats: %w", err)
	}

	if used+b.Seats > capacity {
		return domain.ErrCapacityExceeded
	}

	query := `INSERT INTO bookings (id, ref, vehicle_id, taxi_name, driver_id, driver_name,
				passenger_id, passenger_name, passenger_email, passenger_phone,
				origin, dest, time_label, seats, total, pickup_type, pickup_location,
				status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.Ref, b.VehicleID, b.TaxiName, b.DriverID, b.DriverName,
		b.PassengerID, b.PassengerName, b.PassengerEmail, b.PassengerPhone,
		b.Origin, b.Dest, b.TimeLabel, b.Seats, b.Total, b.PickupType, b.PickupAt,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBooking(row.Scan)
}

func (r *BookingRepository) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ref = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ref)
	if err != nil {
		return nil, fmt.Errorf("get booking by ref: %w", err)
	}

	return scanBooking(row.Scan)
}

func (r *BookingRepository) ListByPassenger(ctx context.Context, passengerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE passenger_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, passengerID)
}

func (r *BookingRepository) ListByDriver(ctx context.Context, driverID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE driver_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, driverID)
}

func (r *BookingRepository) ListPaid(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1
			  ORDER BY created_at`
	return r.list(ctx, query, domain.BookingStatusPaid)
}

// AvailableSeats computes remaining capacity for a (vehicle, time) pair from
// committed state. Guarded writes re-check inside their own transaction.
func (r *BookingRepository) AvailableSeats(ctx context.Context, vehicleID, timeLabel string) (int, error) {
	query := `SELECT v.seats - COALESCE(SUM(b.seats), 0)
			  FROM vehicles v
			  LEFT JOIN bookings b
				ON b.vehicle_id = v.id
				AND b.time_label = $2
				AND b.status <> $3
			  WHERE v.id = $1
			  GROUP BY v.seats`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, vehicleID, timeLabel, domain.BookingStatusCancelled)
	if err != nil {
		return 0, fmt.Errorf("available seats: %w", err)
	}

	var left int
	if err = row.Scan(&left); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrVehicleNotFound
		}
		return 0, fmt.Errorf("scan available seats: %w", err)
	}
	if left < 0 {
		left = 0
	}

	return left, nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, id string) error {
	query := `UPDATE bookings
			  SET status = $2, paid_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.BookingStatusPaid, domain.BookingStatusUnpaid)
	if err != nil {
		return fmt.Errorf("mark paid: %w", err)
	}

	return r.diagnoseGuarded(ctx, res, id)
}

// Cancel commits a cancellation atomically with its reason, fee and party.
// The `from` guard makes each cancellation path legal from exactly one
// status; a concurrent transition loses and is diagnosed.
func (r *BookingRepository) Cancel(ctx context.Context, id string, from domain.BookingStatus, by domain.CancelParty, reason string, fee float64) error {
	query := `UPDATE bookings
			  SET status = $2, cancelled_at = now(), cancellation_reason = $4,
				  cancellation_fee = $5, cancelled_by = $6, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusCancelled, from, reason, fee, by,
	)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	return r.diagnoseGuarded(ctx, res, id)
}

func (r *BookingRepository) RequestCancel(ctx context.Context, id, reason string) error {
	query := `UPDATE bookings
			  SET status = $2, cancel_requested_at = now(), cancel_request_reason = $4, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusCancelRequested, domain.BookingStatusPaid, reason,
	)
	if err != nil {
		return fmt.Errorf("request cancel: %w", err)
	}

	return r.diagnoseGuarded(ctx, res, id)
}

func (r *BookingRepository) RejectCancelRequest(ctx context.Context, id string) error {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusPaid, domain.BookingStatusCancelRequested,
	)
	if err != nil {
		return fmt.Errorf("reject cancel request: %w", err)
	}

	return r.diagnoseGuarded(ctx, res, id)
}

// MarkOnTheWay claims the driver sub-status. Returns false without error
// when the booking is paid but already marked, so re-invocations stay
// silent downstream.
func (r *BookingRepository) MarkOnTheWay(ctx context.Context, id string) (bool, error) {
	query := `UPDATE bookings
			  SET driver_status = $2, on_the_way_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $3 AND driver_status IS NULL`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.DriverStatusOnTheWay, domain.BookingStatusPaid,
	)
	if err != nil {
		return false, fmt.Errorf("mark on the way: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if rows > 0 {
		return true, nil
	}

	b, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if b.Status != domain.BookingStatusPaid {
		if b.Status.Terminal() {
			return false, domain.ErrAlreadyTerminal
		}
		return false, domain.ErrInvalidTransition
	}

	// already on the way
	return false, nil
}

func (r *BookingRepository) Complete(ctx context.Context, id string) error {
	query := `UPDATE bookings
			  SET status = $2, completed_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusCompleted, domain.BookingStatusPaid,
	)
	if err != nil {
		return fmt.Errorf("complete booking: %w", err)
	}

	return r.diagnoseGuarded(ctx, res, id)
}

func (r *BookingRepository) SetRating(ctx context.Context, id string, rating int, feedback string) error {
	query := `UPDATE bookings
			  SET rating = $2, feedback = $3, rated_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $4 AND rating IS NULL`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, rating, feedback, domain.BookingStatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("set rating: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	b, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Rating != 0 {
		return domain.ErrAlreadyRated
	}
	if b.Status != domain.BookingStatusCompleted {
		return domain.ErrInvalidTransition
	}

	return domain.ErrBookingNotFound
}

// ExpireUnpaid cancels every UNPAID booking older than ttl in one statement
// and returns the affected rows, releasing their seats for subsequent
// availability queries.
func (r *BookingRepository) ExpireUnpaid(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, cancelled_at = now(), updated_at = now(),
				  cancellation_reason = 'Payment not completed in time',
				  cancelled_by = $3
			  WHERE status = $1
				AND created_at + make_interval(secs => $4) < now()
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusUnpaid, domain.BookingStatusCancelled,
		domain.CancelPartySystem, ttl.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("expire unpaid: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// ClaimAlert flips one one-shot flag and reports whether this call won. The
// flag commits before any alert is emitted, so delivery is at-most-once
// even when the scheduler is interrupted mid-cycle.
func (r *BookingRepository) ClaimAlert(ctx context.Context, id string, kind domain.AlertKind) (bool, error) {
	column, ok := alertColumns[kind]
	if !ok {
		return false, fmt.Errorf("unknown alert kind %q", kind)
	}

	query := fmt.Sprintf(`UPDATE bookings
			  SET %s = TRUE, updated_at = now()
			  WHERE id = $1 AND %s = FALSE`, column, column)
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return false, fmt.Errorf("claim alert: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// diagnoseGuarded explains why a guarded transition updated zero rows:
// the booking is missing, already terminal, or in a status the operation
// does not accept.
func (r *BookingRepository) diagnoseGuarded(ctx context.Context, res sql.Result, id string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	b, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status.Terminal() {
		return domain.ErrAlreadyTerminal
	}

	return domain.ErrInvalidTransition
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var (
		b            domain.Booking
		driverStatus sql.NullString
		cancelledBy  sql.NullString
		rating       sql.NullInt64
	)
	err := scan(
		&b.ID, &b.Ref, &b.VehicleID, &b.TaxiName, &b.DriverID, &b.DriverName,
		&b.PassengerID, &b.PassengerName, &b.PassengerEmail, &b.PassengerPhone,
		&b.Origin, &b.Dest, &b.TimeLabel, &b.Seats, &b.Total, &b.PickupType, &b.PickupAt,
		&b.Status, &driverStatus,
		&b.CancellationReason, &b.CancellationFee, &cancelledBy, &b.CancelRequestReason,
		&rating, &b.Feedback,
		&b.Alert30Sent, &b.Alert15Sent, &b.OnTheWayAlertSent,
		&b.CreatedAt, &b.PaidAt, &b.OnTheWayAt, &b.CancelRequestedAt,
		&b.CancelledAt, &b.CompletedAt, &b.RatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	if driverStatus.Valid {
		b.DriverStatus = domain.DriverStatus(driverStatus.String)
	}
	if cancelledBy.Valid {
		b.CancelledBy = domain.CancelParty(cancelledBy.String)
	}
	if rating.Valid {
		b.Rating = int(rating.Int64)
	}

	return &b, nil
}
