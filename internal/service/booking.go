package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/Tellaman12/TaxiGo/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const defaultUnpaidTTL = 20 * time.Minute

type BookingService struct {
	bookingRepo ports.BookingRepo
	vehicleRepo ports.VehicleRepo
	userRepo    ports.UserRepo
	publisher   ports.MessagePublisher
	notifier    ports.Notifier
	unpaidTTL   time.Duration
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	vehicleRepo ports.VehicleRepo,
	userRepo ports.UserRepo,
	publisher ports.MessagePublisher,
	notifier ports.Notifier,
	unpaidTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	if unpaidTTL <= 0 {
		unpaidTTL = defaultUnpaidTTL
	}
	return &BookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		notifier:    notifier,
		unpaidTTL:   unpaidTTL,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.Seats < 1 {
		return nil, fmt.Errorf("%w: seats must be at least 1", domain.ErrValidation)
	}
	if input.PickupType != domain.PickupTypeRank && input.PickupType != domain.PickupTypeHike {
		return nil, fmt.Errorf("%w: pickup must be rank or hike", domain.ErrValidation)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("check vehicle: %w", err)
	}
	if !vehicle.HasTimeLabel(input.TimeLabel) {
		return nil, domain.ErrInvalidTimeLabel
	}

	passenger, err := s.userRepo.GetByID(ctx, input.PassengerID)
	if err != nil {
		return nil, fmt.Errorf("check passenger: %w", err)
	}
	driver, err := s.userRepo.GetByID(ctx, vehicle.DriverID)
	if err != nil {
		return nil, fmt.Errorf("check driver: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:             uuid.New().String(),
		Ref:            newRef(),
		VehicleID:      vehicle.ID,
		TaxiName:       vehicle.Name,
		DriverID:       driver.ID,
		DriverName:     driver.Name,
		PassengerID:    passenger.ID,
		PassengerName:  passenger.Name,
		PassengerEmail: passenger.Email,
		PassengerPhone: passenger.Phone,
		Origin:         vehicle.Origin,
		Dest:           vehicle.Dest,
		TimeLabel:      input.TimeLabel,
		Seats:          input.Seats,
		Total:          vehicle.Price * float64(input.Seats),
		PickupType:     input.PickupType,
		PickupAt:       input.PickupAt,
		Status:         domain.BookingStatusUnpaid,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// capacity check and insert happen atomically in the repo
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("ref", booking.Ref),
		logger.String("vehicle_id", vehicle.ID),
		logger.String("time", booking.TimeLabel),
		logger.Int("seats", booking.Seats),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), passenger, booking)

	return booking, nil
}

// MarkPaid is the payment collaborator's trigger. Seats were already
// reserved at creation, so no availability re-check happens here.
func (s *BookingService) MarkPaid(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if err = s.bookingRepo.MarkPaid(ctx, id); err != nil {
		return fmt.Errorf("mark paid: %w", err)
	}

	s.logger.Info("booking paid",
		logger.String("booking_id", id),
		logger.String("ref", booking.Ref),
	)

	s.publishStatus(ctx, booking, booking.PassengerID, booking.PassengerName,
		"Payment received", string(domain.BookingStatusPaid))

	if passenger, err := s.userRepo.GetByID(ctx, booking.PassengerID); err == nil {
		go s.notifier.NotifyBookingPaid(context.WithoutCancel(ctx), passenger, booking)
	}

	return nil
}

// CancelUnpaid is the fee-free passenger cancellation of a booking that has
// not been paid yet.
func (s *BookingService) CancelUnpaid(ctx context.Context, id, passengerID, reason string) error {
	booking, err := s.ownedByPassenger(ctx, id, passengerID)
	if err != nil {
		return err
	}

	reason = orUnspecified(reason)
	if err = s.bookingRepo.Cancel(ctx, id, domain.BookingStatusUnpaid, domain.CancelPartyPassenger, reason, 0); err != nil {
		return fmt.Errorf("cancel unpaid: %w", err)
	}

	s.logger.Info("unpaid booking cancelled",
		logger.String("booking_id", id),
		logger.String("reason", reason),
	)

	s.publishAlert(ctx, booking, booking.PassengerID, booking.PassengerName,
		domain.AlertCancelled, "Passenger cancelled: "+reason)

	return nil
}

// CancelPaidDirect cancels a paid booking immediately and charges the 10%
// fee. This is distinct from RequestCancel, which is advisory.
func (s *BookingService) CancelPaidDirect(ctx context.Context, id, passengerID, reason string) error {
	booking, err := s.ownedByPassenger(ctx, id, passengerID)
	if err != nil {
		return err
	}

	reason = orUnspecified(reason)
	fee := booking.CancellationFeeDue()
	if err = s.bookingRepo.Cancel(ctx, id, domain.BookingStatusPaid, domain.CancelPartyPassenger, reason, fee); err != nil {
		return fmt.Errorf("cancel paid: %w", err)
	}

	s.logger.Info("paid booking cancelled by passenger",
		logger.String("booking_id", id),
		logger.String("fee", domain.FormatMoney(fee)),
	)

	s.publishStatus(ctx, booking, booking.PassengerID, booking.PassengerName,
		"Passenger cancelled: "+reason, string(domain.BookingStatusCancelled))

	if passenger, err := s.userRepo.GetByID(ctx, passengerID); err == nil {
		go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), passenger, booking)
	}

	return nil
}

// RequestCancel moves a paid booking into the provisional CANCEL_REQUESTED
// state. Seats stay reserved and no fee is charged until the driver resolves
// the request.
func (s *BookingService) RequestCancel(ctx context.Context, id, passengerID, reason string) error {
	booking, err := s.ownedByPassenger(ctx, id, passengerID)
	if err != nil {
		return err
	}

	reason = orUnspecified(reason)
	if err = s.bookingRepo.RequestCancel(ctx, id, reason); err != nil {
		return fmt.Errorf("request cancel: %w", err)
	}

	s.logger.Info("cancellation requested",
		logger.String("booking_id", id),
		logger.String("reason", reason),
	)

	s.publishStatus(ctx, booking, booking.PassengerID, booking.PassengerName,
		"Passenger requested cancellation: "+reason, string(domain.BookingStatusCancelRequested))

	return nil
}

// ResolveCancelRequest is the driver's answer to a cancellation request.
// Approving cancels with the passenger 10% fee; rejecting returns the
// booking to PAID.
func (s *BookingService) ResolveCancelRequest(ctx context.Context, id, driverID string, approve bool) error {
	booking, err := s.ownedByDriver(ctx, id, driverID)
	if err != nil {
		return err
	}

	if approve {
		fee := booking.CancellationFeeDue()
		reason := orUnspecified(booking.CancelRequestReason)
		if err = s.bookingRepo.Cancel(ctx, id, domain.BookingStatusCancelRequested, domain.CancelPartyPassenger, reason, fee); err != nil {
			return fmt.Errorf("approve cancel request: %w", err)
		}

		s.logger.Info("cancel request approved",
			logger.String("booking_id", id),
			logger.String("fee", domain.FormatMoney(fee)),
		)

		s.publishStatus(ctx, booking, booking.DriverID, booking.DriverName,
			"Driver approved the cancellation request", string(domain.BookingStatusCancelled))

		if passenger, err := s.userRepo.GetByID(ctx, booking.PassengerID); err == nil {
			go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), passenger, booking)
		}

		return nil
	}

	if err = s.bookingRepo.RejectCancelRequest(ctx, id); err != nil {
		return fmt.Errorf("reject cancel request: %w", err)
	}

	s.logger.Info("cancel request rejected", logger.String("booking_id", id))

	s.publishStatus(ctx, booking, booking.DriverID, booking.DriverName,
		"Driver declined the cancellation request", string(domain.BookingStatusPaid))

	return nil
}

// CancelByDriver cancels a paid booking fee-free on the driver's initiative.
func (s *BookingService) CancelByDriver(ctx context.Context, id, driverID, reason string) error {
	booking, err := s.ownedByDriver(ctx, id, driverID)
	if err != nil {
		return err
	}

	reason = orUnspecified(reason)
	if err = s.bookingRepo.Cancel(ctx, id, domain.BookingStatusPaid, domain.CancelPartyDriver, reason, 0); err != nil {
		return fmt.Errorf("cancel by driver: %w", err)
	}

	s.logger.Info("booking cancelled by driver",
		logger.String("booking_id", id),
		logger.String("reason", reason),
	)

	s.publishStatus(ctx, booking, booking.DriverID, booking.DriverName,
		"Driver cancelled: "+reason, string(domain.BookingStatusCancelled))

	if passenger, err := s.userRepo.GetByID(ctx, booking.PassengerID); err == nil {
		go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), passenger, booking)
	}

	return nil
}

// MarkOnTheWay sets the driver sub-status on a paid booking. The status
// message is published only by the call that wins the claim, so repeated
// invocations stay quiet.
func (s *BookingService) MarkOnTheWay(ctx context.Context, id, driverID string) error {
	booking, err := s.ownedByDriver(ctx, id, driverID)
	if err != nil {
		return err
	}

	claimed, err := s.bookingRepo.MarkOnTheWay(ctx, id)
	if err != nil {
		return fmt.Errorf("mark on the way: %w", err)
	}
	if !claimed {
		return nil
	}

	s.logger.Info("driver on the way", logger.String("booking_id", id))

	s.publishStatus(ctx, booking, booking.DriverID, booking.DriverName,
		"Driver is on the way", string(domain.DriverStatusOnTheWay))

	return nil
}

// Complete finishes a paid ride and makes rating eligible.
func (s *BookingService) Complete(ctx context.Context, id, passengerID string) error {
	booking, err := s.ownedByPassenger(ctx, id, passengerID)
	if err != nil {
		return err
	}

	if err = s.bookingRepo.Complete(ctx, id); err != nil {
		return fmt.Errorf("complete ride: %w", err)
	}

	s.logger.Info("ride completed",
		logger.String("booking_id", id),
		logger.String("ref", booking.Ref),
	)

	s.publishStatus(ctx, booking, booking.PassengerID, booking.PassengerName,
		"Ride completed", string(domain.BookingStatusCompleted))

	return nil
}

// SubmitRating records a 1-5 rating once per completed booking. A second
// submission is rejected, not overwritten.
func (s *BookingService) SubmitRating(ctx context.Context, id, passengerID string, rating int, feedback string) error {
	if rating < 1 || rating > 5 {
		return domain.ErrRatingOutOfRange
	}

	if _, err := s.ownedByPassenger(ctx, id, passengerID); err != nil {
		return err
	}

	if err := s.bookingRepo.SetRating(ctx, id, rating, feedback); err != nil {
		return fmt.Errorf("set rating: %w", err)
	}

	s.logger.Info("rating submitted",
		logger.String("booking_id", id),
		logger.Int("rating", rating),
	)

	return nil
}

func (s *BookingService) AvailableSeats(ctx context.Context, vehicleID, timeLabel string) (int, error) {
	return s.bookingRepo.AvailableSeats(ctx, vehicleID, timeLabel)
}

// GetForViewer returns a booking to one of its two parties.
func (s *BookingService) GetForViewer(ctx context.Context, id, viewerID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.PassengerID != viewerID && booking.DriverID != viewerID {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

// GetByRef resolves the human-readable reference printed on receipts.
func (s *BookingService) GetByRef(ctx context.Context, ref, viewerID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if booking.PassengerID != viewerID && booking.DriverID != viewerID {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

func (s *BookingService) ListByPassenger(ctx context.Context, passengerID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByPassenger(ctx, passengerID)
}

func (s *BookingService) ListByDriver(ctx context.Context, driverID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByDriver(ctx, driverID)
}

// ExpireUnpaid releases seats held by UNPAID bookings whose payment window
// has lapsed. Called by the scheduler.
func (s *BookingService) ExpireUnpaid(ctx context.Context) ([]*domain.Booking, error) {
	expired, err := s.bookingRepo.ExpireUnpaid(ctx, s.unpaidTTL)
	if err != nil {
		return nil, fmt.Errorf("expire unpaid: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("unpaid bookings expired",
			logger.Int("count", len(expired)),
		)
		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.publishStatus(ctx, b, b.DriverID, b.DriverName,
			"Booking expired: payment not completed in time", string(domain.BookingStatusCancelled))

		passenger, err := s.userRepo.GetByID(ctx, b.PassengerID)
		if err != nil {
			s.logger.Error("get passenger for expiry notification",
				logger.String("user_id", b.PassengerID),
			)
			continue
		}
		s.notifier.NotifyBookingCancelled(ctx, passenger, b)
	}
}

// FireDepartureAlerts evaluates every paid booking against the wall clock
// and fires each due one-shot alert at most once. The flag claim commits
// before the alert is emitted, so an interrupted cycle never double-fires.
func (s *BookingService) FireDepartureAlerts(ctx context.Context) (int, error) {
	paid, err := s.bookingRepo.ListPaid(ctx)
	if err != nil {
		return 0, fmt.Errorf("list paid bookings: %w", err)
	}

	now := time.Now()
	fired := 0
	for _, b := range paid {
		for _, kind := range b.DueAlerts(now) {
			claimed, err := s.bookingRepo.ClaimAlert(ctx, b.ID, kind)
			if err != nil {
				s.logger.Error("claim alert flag",
					logger.String("booking_id", b.ID),
					logger.String("kind", string(kind)),
					logger.String("error", err.Error()),
				)
				continue
			}
			if !claimed {
				continue
			}

			passenger, err := s.userRepo.GetByID(ctx, b.PassengerID)
			if err != nil {
				s.logger.Error("get passenger for departure alert",
					logger.String("user_id", b.PassengerID),
				)
				continue
			}

			switch kind {
			case domain.AlertKind30Min:
				s.notifier.NotifyDeparture(ctx, passenger, b, 30)
			case domain.AlertKind15Min:
				s.notifier.NotifyDeparture(ctx, passenger, b, 15)
			case domain.AlertKindOnTheWay:
				s.notifier.NotifyOnTheWay(ctx, passenger, b)
			}
			fired++
		}
	}

	return fired, nil
}

func (s *BookingService) ownedByPassenger(ctx context.Context, id, passengerID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.PassengerID != passengerID {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

func (s *BookingService) ownedByDriver(ctx context.Context, id, driverID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.DriverID != driverID {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

func (s *BookingService) publishStatus(ctx context.Context, b *domain.Booking, senderID, senderName, body, status string) {
	if err := s.publisher.PublishStatus(ctx, b.ID, senderID, senderName, body, status); err != nil {
		s.logger.Error("publish status message",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) publishAlert(ctx context.Context, b *domain.Booking, senderID, senderName string, alert domain.AlertType, body string) {
	if err := s.publisher.PublishAlert(ctx, b.ID, senderID, senderName, alert, body); err != nil {
		s.logger.Error("publish alert message",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func newRef() string {
	return "RG-" + strings.ToUpper(uuid.New().String()[:8])
}

func orUnspecified(reason string) string {
	if strings.TrimSpace(reason) == "" {
		return "Unspecified"
	}
	return reason
}
