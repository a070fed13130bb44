package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/Tellaman12/TaxiGo/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	vehicleRepo *mocks.MockVehicleRepo
	userRepo    *mocks.MockUserRepo
	publisher   *mocks.MockMessagePublisher
	notifier    *mocks.MockNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		vehicleRepo: mocks.NewMockVehicleRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		publisher:   mocks.NewMockMessagePublisher(t),
		notifier:    mocks.NewMockNotifier(t),
	}
	svc := NewBookingService(
		m.bookingRepo, m.vehicleRepo, m.userRepo,
		m.publisher, m.notifier,
		20*time.Minute, newTestLogger(t),
	)
	return svc, m
}

func testVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:       "v1",
		DriverID: "d1",
		Name:     "Quantum",
		Origin:   "Durban",
		Dest:     "Johannesburg",
		Seats:    14,
		Price:    250,
		Times:    []string{"07:30", "12:00"},
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, m := newBookingService(t)

	vehicle := testVehicle()
	passenger := &domain.User{ID: "p1", Name: "Thandi", Email: "thandi@example.com"}
	driver := &domain.User{ID: "d1", Name: "Sipho"}

	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(passenger, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "d1").Return(driver, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, passenger, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VehicleID:   "v1",
		PassengerID: "p1",
		TimeLabel:   "07:30",
		Seats:       2,
		PickupType:  domain.PickupTypeRank,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusUnpaid, booking.Status)
	assert.Equal(t, 500.0, booking.Total)
	assert.Equal(t, "Quantum", booking.TaxiName)
	assert.Equal(t, "Sipho", booking.DriverName)
	assert.True(t, strings.HasPrefix(booking.Ref, "RG-"))
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_ZeroSeats(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VehicleID:   "v1",
		PassengerID: "p1",
		TimeLabel:   "07:30",
		Seats:       0,
		PickupType:  domain.PickupTypeRank,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_BadPickupType(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VehicleID:   "v1",
		PassengerID: "p1",
		TimeLabel:   "07:30",
		Seats:       1,
		PickupType:  "teleport",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_UnknownTimeLabel(t *testing.T) {
	svc, m := newBookingService(t)

	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVehicle(), nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VehicleID:   "v1",
		PassengerID: "p1",
		TimeLabel:   "06:00",
		Seats:       1,
		PickupType:  domain.PickupTypeRank,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeLabel)
}

func TestBookingService_Create_VehicleNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVehicleNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VehicleID:   "missing",
		PassengerID: "p1",
		TimeLabel:   "07:30",
		Seats:       1,
		PickupType:  domain.PickupTypeRank,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

func TestBookingService_Create_CapacityExceeded(t *testing.T) {
	svc, m := newBookingService(t)

	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVehicle(), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.User{ID: "p1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "d1").Return(&domain.User{ID: "d1"}, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCapacityExceeded)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VehicleID:   "v1",
		PassengerID: "p1",
		TimeLabel:   "07:30",
		Seats:       14,
		PickupType:  domain.PickupTypeRank,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestBookingService_MarkPaid_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", Ref: "RG-1", PassengerID: "p1", PassengerName: "Thandi",
		Status: domain.BookingStatusUnpaid,
	}
	passenger := &domain.User{ID: "p1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().MarkPaid(mock.Anything, "b1").Return(nil)
	m.publisher.EXPECT().PublishStatus(mock.Anything, "b1", "p1", "Thandi",
		"Payment received", "PAID").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(passenger, nil)
	m.notifier.EXPECT().NotifyBookingPaid(mock.Anything, passenger, booking).Return()

	err := svc.MarkPaid(context.Background(), "b1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_MarkPaid_AlreadyPaid(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusPaid}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().MarkPaid(mock.Anything, "b1").Return(domain.ErrInvalidTransition)

	err := svc.MarkPaid(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_CancelUnpaid_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", PassengerID: "p1", PassengerName: "Thandi",
		Status: domain.BookingStatusUnpaid,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", domain.BookingStatusUnpaid,
		domain.CancelPartyPassenger, "changed plans", 0.0).Return(nil)
	m.publisher.EXPECT().PublishAlert(mock.Anything, "b1", "p1", "Thandi",
		domain.AlertCancelled, "Passenger cancelled: changed plans").Return(nil)

	err := svc.CancelUnpaid(context.Background(), "b1", "p1", "changed plans")

	require.NoError(t, err)
}

func TestBookingService_CancelUnpaid_NotOwner(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", PassengerID: "p1"}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.CancelUnpaid(context.Background(), "b1", "intruder", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_CancelPaidDirect_ChargesFee(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", PassengerID: "p1", PassengerName: "Thandi",
		Status: domain.BookingStatusPaid, Total: 500,
	}
	passenger := &domain.User{ID: "p1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", domain.BookingStatusPaid,
		domain.CancelPartyPassenger, "Unspecified", 50.0).Return(nil)
	m.publisher.EXPECT().PublishStatus(mock.Anything, "b1", "p1", "Thandi",
		"Passenger cancelled: Unspecified", "CANCELLED").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(passenger, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, passenger, booking).Return()

	err := svc.CancelPaidDirect(context.Background(), "b1", "p1", "")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_RequestCancel_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", PassengerID: "p1", PassengerName: "Thandi",
		Status: domain.BookingStatusPaid,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().RequestCancel(mock.Anything, "b1", "running late").Return(nil)
	m.publisher.EXPECT().PublishStatus(mock.Anything, "b1", "p1", "Thandi",
		"Passenger requested cancellation: running late", "CANCEL_REQUESTED").Return(nil)

	err := svc.RequestCancel(context.Background(), "b1", "p1", "running late")

	require.NoError(t, err)
}

func TestBookingService_ResolveCancelRequest_Approve(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", DriverID: "d1", DriverName: "Sipho", PassengerID: "p1",
		Status: domain.BookingStatusCancelRequested, Total: 300,
		CancelRequestReason: "running late",
	}
	passenger := &domain.User{ID: "p1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", domain.BookingStatusCancelRequested,
		domain.CancelPartyPassenger, "running late", 30.0).Return(nil)
	m.publisher.EXPECT().PublishStatus(mock.Anything, "b1", "d1", "Sipho",
		"Driver approved the cancellation request", "CANCELLED").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(passenger, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, passenger, booking).Return()

	err := svc.ResolveCancelRequest(context.Background(), "b1", "d1", true)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ResolveCancelRequest_Reject(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", DriverID: "d1", DriverName: "Sipho",
		Status: domain.BookingStatusCancelRequested,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().RejectCancelRequest(mock.Anything, "b1").Return(nil)
	m.publisher.EXPECT().PublishStatus(mock.Anything, "b1", "d1", "Sipho",
		"Driver declined the cancellation request", "PAID").Return(nil)

	err := svc.ResolveCancelRequest(context.Background(), "b1", "d1", false)

	require.NoError(t, err)
}

func TestBookingService_ResolveCancelRequest_NotDriver(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", DriverID: "d1"}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.ResolveCancelRequest(context.Background(), "b1", "someone-else", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_CancelByDriver_NoFee(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", DriverID: "d1", DriverName: "Sipho", PassengerID: "p1",
		Status: domain.BookingStatusPaid, Total: 500,
	}
	passenger := &domain.User{ID: "p1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", domain.BookingStatusPaid,
		domain.CancelPartyDriver, "vehicle breakdown", 0.0).Return(nil)
	m.publisher.EXPECT().PublishStatus(mock.Anything, "b1", "d1", "Sipho",
		"Driver cancelled: vehicle breakdown", "CANCELLED").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(passenger, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, passenger, booking).Return()

	err := svc.CancelByDriver(context.Background(), "b1", "d1", "vehicle breakdown")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_MarkOnTheWay_FirstCallPublishes(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", DriverID: "d1", DriverName: "Sipho",
		Status: domain.BookingStatusPaid,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().MarkOnTheWay(mock.Anything, "b1").Return(true, nil)
	m.publisher.EXPECT().PublishStatus(mock.Anything, "b1", "d1", "Sipho",
		"Driver is on the way", "ON_THE_WAY").Return(nil)

	err := svc.MarkOnTheWay(context.Background(), "b1", "d1")

	require.NoError(t, err)
}

func TestBookingService_MarkOnTheWay_RepeatIsQuiet(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", DriverID: "d1",
		Status:       domain.BookingStatusPaid,
		DriverStatus: domain.DriverStatusOnTheWay,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().MarkOnTheWay(mock.Anything, "b1").Return(false, nil)

	// no publish expected: the claim was lost
	err := svc.MarkOnTheWay(context.Background(), "b1", "d1")

	require.NoError(t, err)
}

func TestBookingService_Complete_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", Ref: "RG-1", PassengerID: "p1", PassengerName: "Thandi",
		Status: domain.BookingStatusPaid,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Complete(mock.Anything, "b1").Return(nil)
	m.publisher.EXPECT().PublishStatus(mock.Anything, "b1", "p1", "Thandi",
		"Ride completed", "COMPLETED").Return(nil)

	err := svc.Complete(context.Background(), "b1", "p1")

	require.NoError(t, err)
}

func TestBookingService_SubmitRating_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", PassengerID: "p1",
		Status: domain.BookingStatusCompleted,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().SetRating(mock.Anything, "b1", 5, "great trip").Return(nil)

	err := svc.SubmitRating(context.Background(), "b1", "p1", 5, "great trip")

	require.NoError(t, err)
}

func TestBookingService_SubmitRating_OutOfRange(t *testing.T) {
	svc, _ := newBookingService(t)

	err := svc.SubmitRating(context.Background(), "b1", "p1", 0, "")
	assert.ErrorIs(t, err, domain.ErrRatingOutOfRange)

	err = svc.SubmitRating(context.Background(), "b1", "p1", 6, "")
	assert.ErrorIs(t, err, domain.ErrRatingOutOfRange)
}

func TestBookingService_SubmitRating_SecondRejected(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID: "b1", PassengerID: "p1",
		Status: domain.BookingStatusCompleted, Rating: 4,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().SetRating(mock.Anything, "b1", 5, "").Return(domain.ErrAlreadyRated)

	err := svc.SubmitRating(context.Background(), "b1", "p1", 5, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRated)
}

func TestBookingService_GetForViewer_PartyOnly(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", PassengerID: "p1", DriverID: "d1"}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil).Times(3)

	got, err := svc.GetForViewer(context.Background(), "b1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	got, err = svc.GetForViewer(context.Background(), "b1", "d1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	_, err = svc.GetForViewer(context.Background(), "b1", "stranger")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_GetByRef_PartyOnly(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Ref: "RG-ABCD1234", PassengerID: "p1", DriverID: "d1"}
	m.bookingRepo.EXPECT().GetByRef(mock.Anything, "RG-ABCD1234").Return(booking, nil).Times(2)

	got, err := svc.GetByRef(context.Background(), "RG-ABCD1234", "p1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	_, err = svc.GetByRef(context.Background(), "RG-ABCD1234", "stranger")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ExpireUnpaid_NotifiesPassengers(t *testing.T) {
	svc, m := newBookingService(t)

	expired := []*domain.Booking{
		{ID: "b1", PassengerID: "p1", DriverID: "d1", DriverName: "Sipho"},
	}
	passenger := &domain.User{ID: "p1"}

	m.bookingRepo.EXPECT().ExpireUnpaid(mock.Anything, 20*time.Minute).Return(expired, nil)
	m.publisher.EXPECT().PublishStatus(mock.Anything, "b1", "d1", "Sipho",
		"Booking expired: payment not completed in time", "CANCELLED").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(passenger, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, passenger, expired[0]).Return()

	result, err := svc.ExpireUnpaid(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_ExpireUnpaid_NoneExpired(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().ExpireUnpaid(mock.Anything, 20*time.Minute).Return(nil, nil)

	result, err := svc.ExpireUnpaid(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_FireDepartureAlerts_FiresOnce(t *testing.T) {
	svc, m := newBookingService(t)

	label := time.Now().Add(25 * time.Minute).Format("15:04")
	paid := []*domain.Booking{
		{ID: "b1", PassengerID: "p1", Status: domain.BookingStatusPaid, TimeLabel: label},
	}
	passenger := &domain.User{ID: "p1"}

	m.bookingRepo.EXPECT().ListPaid(mock.Anything).Return(paid, nil)
	m.bookingRepo.EXPECT().ClaimAlert(mock.Anything, "b1", domain.AlertKind30Min).Return(true, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "p1").Return(passenger, nil)
	m.notifier.EXPECT().NotifyDeparture(mock.Anything, passenger, paid[0], 30).Return()

	fired, err := svc.FireDepartureAlerts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestBookingService_FireDepartureAlerts_LostClaimSkips(t *testing.T) {
	svc, m := newBookingService(t)

	label := time.Now().Add(25 * time.Minute).Format("15:04")
	paid := []*domain.Booking{
		{ID: "b1", PassengerID: "p1", Status: domain.BookingStatusPaid, TimeLabel: label},
	}

	m.bookingRepo.EXPECT().ListPaid(mock.Anything).Return(paid, nil)
	m.bookingRepo.EXPECT().ClaimAlert(mock.Anything, "b1", domain.AlertKind30Min).Return(false, nil)

	fired, err := svc.FireDepartureAlerts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, fired)
}

func TestBookingService_FireDepartureAlerts_NothingDue(t *testing.T) {
	svc, m := newBookingService(t)

	paid := []*domain.Booking{
		{ID: "b1", PassengerID: "p1", Status: domain.BookingStatusPaid, TimeLabel: "00:00"},
	}

	m.bookingRepo.EXPECT().ListPaid(mock.Anything).Return(paid, nil)

	fired, err := svc.FireDepartureAlerts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, fired)
}

func TestBookingService_FireDepartureAlerts_ListError(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().ListPaid(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.FireDepartureAlerts(context.Background())

	require.Error(t, err)
}
