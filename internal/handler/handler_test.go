package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	hmocks "github.com/Tellaman12/TaxiGo/internal/handler/mocks"
	"github.com/Tellaman12/TaxiGo/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const (
	bookingID   = "11111111-1111-1111-1111-111111111111"
	passengerID = "22222222-2222-2222-2222-222222222222"
	driverID    = "33333333-3333-3333-3333-333333333333"
	vehicleID   = "44444444-4444-4444-4444-444444444444"
	userID      = "55555555-5555-5555-5555-555555555555"
)

type handlerMocks struct {
	booking  *hmocks.MockBookingSvc
	vehicle  *hmocks.MockVehicleSvc
	user     *hmocks.MockUserSvc
	message  *hmocks.MockMessageSvc
	receipts *hmocks.MockReceiptGen
}

func setupRouter(t *testing.T) (*ginext.Engine, handlerMocks) {
	t.Helper()
	m := handlerMocks{
		booking:  hmocks.NewMockBookingSvc(t),
		vehicle:  hmocks.NewMockVehicleSvc(t),
		user:     hmocks.NewMockUserSvc(t),
		message:  hmocks.NewMockMessageSvc(t),
		receipts: hmocks.NewMockReceiptGen(t),
	}
	h := NewHandler(m.booking, m.vehicle, m.user, m.message, m.receipts)
	return router.InitRouter("test", h), m
}

func perform(r *ginext.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            bookingID,
		Ref:           "RG-ABCD1234",
		VehicleID:     vehicleID,
		TaxiName:      "Quantum",
		DriverID:      driverID,
		DriverName:    "Sipho",
		PassengerID:   passengerID,
		PassengerName: "Thandi",
		Origin:        "Durban",
		Dest:          "Johannesburg",
		TimeLabel:     "07:30",
		Seats:         2,
		Total:         500,
		PickupType:    domain.PickupTypeRank,
		Status:        domain.BookingStatusUnpaid,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
}

func TestCreateBooking_Success(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().Create(mock.Anything, domain.CreateBookingInput{
		VehicleID:   vehicleID,
		PassengerID: passengerID,
		TimeLabel:   "07:30",
		Seats:       2,
		PickupType:  domain.PickupTypeRank,
	}).Return(testBooking(), nil)

	w := perform(r, http.MethodPost, "/api/bookings", ginext.H{
		"vehicle_id":   vehicleID,
		"passenger_id": passengerID,
		"time":         "07:30",
		"seats":        2,
		"pickup_type":  "rank",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "RG-ABCD1234")
	assert.Contains(t, w.Body.String(), `"status":"UNPAID"`)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodPost, "/api/bookings", ginext.H{
		"vehicle_id": vehicleID,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBooking_BadPickupType(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodPost, "/api/bookings", ginext.H{
		"vehicle_id":   vehicleID,
		"passenger_id": passengerID,
		"time":         "07:30",
		"seats":        1,
		"pickup_type":  "teleport",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBooking_CapacityExceeded(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrCapacityExceeded)

	w := perform(r, http.MethodPost, "/api/bookings", ginext.H{
		"vehicle_id":   vehicleID,
		"passenger_id": passengerID,
		"time":         "07:30",
		"seats":        14,
		"pickup_type":  "rank",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetBooking_Success(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().GetForViewer(mock.Anything, bookingID, passengerID).
		Return(testBooking(), nil)

	w := perform(r, http.MethodGet, "/api/bookings/"+bookingID+"?user_id="+passengerID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Quantum")
}

func TestGetBooking_InvalidID(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodGet, "/api/bookings/not-a-uuid?user_id="+passengerID, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBooking_NotAParty(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().GetForViewer(mock.Anything, bookingID, userID).
		Return(nil, domain.ErrBookingNotFound)

	w := perform(r, http.MethodGet, "/api/bookings/"+bookingID+"?user_id="+userID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLookupBooking_Success(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().GetByRef(mock.Anything, "RG-ABCD1234", passengerID).
		Return(testBooking(), nil)

	w := perform(r, http.MethodGet, "/api/bookings/lookup?ref=RG-ABCD1234&user_id="+passengerID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Quantum")
}

func TestLookupBooking_MissingRef(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodGet, "/api/bookings/lookup?user_id="+passengerID, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayBooking(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().MarkPaid(mock.Anything, bookingID).Return(nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/pay", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"paid"}`, w.Body.String())
}

func TestPayBooking_AlreadyPaid(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().MarkPaid(mock.Anything, bookingID).
		Return(domain.ErrInvalidTransition)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/pay", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelBooking_Unpaid(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().CancelUnpaid(mock.Anything, bookingID, passengerID, "changed plans").
		Return(nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", ginext.H{
		"user_id": passengerID,
		"reason":  "changed plans",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"cancelled"}`, w.Body.String())
}

func TestCancelBookingDirect_Paid(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().CancelPaidDirect(mock.Anything, bookingID, passengerID, "").
		Return(nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel-direct", ginext.H{
		"user_id": passengerID,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestCancel(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().RequestCancel(mock.Anything, bookingID, passengerID, "running late").
		Return(nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel-request", ginext.H{
		"user_id": passengerID,
		"reason":  "running late",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"cancel_requested"}`, w.Body.String())
}

func TestResolveCancelRequest_Approve(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().ResolveCancelRequest(mock.Anything, bookingID, driverID, true).
		Return(nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel-request/resolve", ginext.H{
		"driver_id": driverID,
		"approve":   true,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"cancelled"}`, w.Body.String())
}

func TestResolveCancelRequest_Reject(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().ResolveCancelRequest(mock.Anything, bookingID, driverID, false).
		Return(nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel-request/resolve", ginext.H{
		"driver_id": driverID,
		"approve":   false,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"paid"}`, w.Body.String())
}

func TestResolveCancelRequest_MissingApprove(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel-request/resolve", ginext.H{
		"driver_id": driverID,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelByDriver(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().CancelByDriver(mock.Anything, bookingID, driverID, "vehicle breakdown").
		Return(nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/driver-cancel", ginext.H{
		"user_id": driverID,
		"reason":  "vehicle breakdown",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkOnTheWay(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().MarkOnTheWay(mock.Anything, bookingID, driverID).Return(nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/on-the-way", ginext.H{
		"user_id": driverID,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"on_the_way"}`, w.Body.String())
}

func TestCompleteBooking(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().Complete(mock.Anything, bookingID, passengerID).Return(nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/complete", ginext.H{
		"user_id": passengerID,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateBooking_Success(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().SubmitRating(mock.Anything, bookingID, passengerID, 5, "great trip").
		Return(nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/rating", ginext.H{
		"user_id":  passengerID,
		"rating":   5,
		"feedback": "great trip",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateBooking_SecondSubmission(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().SubmitRating(mock.Anything, bookingID, passengerID, 4, "").
		Return(domain.ErrAlreadyRated)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/rating", ginext.H{
		"user_id": passengerID,
		"rating":  4,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRateBooking_OutOfRange(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().SubmitRating(mock.Anything, bookingID, passengerID, 9, "").
		Return(domain.ErrRatingOutOfRange)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/rating", ginext.H{
		"user_id": passengerID,
		"rating":  9,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReceipt_NotPaid(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().GetForViewer(mock.Anything, bookingID, passengerID).
		Return(testBooking(), nil)

	w := perform(r, http.MethodGet, "/api/bookings/"+bookingID+"/receipt?user_id="+passengerID, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetReceipt_Paid(t *testing.T) {
	r, m := setupRouter(t)

	booking := testBooking()
	now := time.Now().UTC()
	booking.Status = domain.BookingStatusPaid
	booking.PaidAt = &now

	m.booking.EXPECT().GetForViewer(mock.Anything, bookingID, passengerID).
		Return(booking, nil)
	m.receipts.EXPECT().Generate(booking).Return([]byte("%PDF-1.4 fake"), nil)

	w := perform(r, http.MethodGet, "/api/bookings/"+bookingID+"/receipt?user_id="+passengerID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), booking.Ref)
	assert.Equal(t, "%PDF-1.4 fake", w.Body.String())
}

func TestGetReceipt_GenerationFails(t *testing.T) {
	r, m := setupRouter(t)

	booking := testBooking()
	now := time.Now().UTC()
	booking.PaidAt = &now

	m.booking.EXPECT().GetForViewer(mock.Anything, bookingID, passengerID).
		Return(booking, nil)
	m.receipts.EXPECT().Generate(booking).Return(nil, errors.New("render failed"))

	w := perform(r, http.MethodGet, "/api/bookings/"+bookingID+"/receipt?user_id="+passengerID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestSendMessage_Text(t *testing.T) {
	r, m := setupRouter(t)

	msg := &domain.Message{
		ID: "66666666-6666-6666-6666-666666666666", BookingID: bookingID,
		SenderID: passengerID, SenderName: "Thandi",
		Body: "on my way", Kind: domain.MessageKindText,
	}
	m.message.EXPECT().Send(mock.Anything, bookingID, passengerID, "on my way").
		Return(msg, nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/messages", ginext.H{
		"sender_id": passengerID,
		"body":      "on my way",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "on my way")
}

func TestSendMessage_Alert(t *testing.T) {
	r, m := setupRouter(t)

	msg := &domain.Message{
		ID: "66666666-6666-6666-6666-666666666666", BookingID: bookingID,
		SenderID: driverID, SenderName: "Sipho",
		Body: "I've arrived at the pickup location",
		Kind: domain.MessageKindAlert, Alert: domain.AlertArrived,
	}
	m.message.EXPECT().SendAlert(mock.Anything, bookingID, driverID, domain.AlertArrived).
		Return(msg, nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/messages", ginext.H{
		"sender_id": driverID,
		"alert":     "arrived",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "arrived")
}

func TestGetMessages(t *testing.T) {
	r, m := setupRouter(t)

	m.message.EXPECT().GetMessages(mock.Anything, bookingID, passengerID).
		Return([]*domain.Message{
			{ID: "m1", Body: "hello", Kind: domain.MessageKindText},
		}, nil)

	w := perform(r, http.MethodGet, "/api/bookings/"+bookingID+"/messages?user_id="+passengerID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello")
}

func TestGetUnreadCount(t *testing.T) {
	r, m := setupRouter(t)

	m.message.EXPECT().UnreadCount(mock.Anything, bookingID, passengerID).Return(2, nil)

	w := perform(r, http.MethodGet, "/api/bookings/"+bookingID+"/messages/unread?user_id="+passengerID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread":2}`, w.Body.String())
}

func TestMarkMessagesRead(t *testing.T) {
	r, m := setupRouter(t)

	m.message.EXPECT().MarkRead(mock.Anything, bookingID, passengerID).Return(nil)

	w := perform(r, http.MethodPost, "/api/bookings/"+bookingID+"/messages/read", ginext.H{
		"viewer_id": passengerID,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetUnreadTotal(t *testing.T) {
	r, m := setupRouter(t)

	m.message.EXPECT().UnreadTotal(mock.Anything, passengerID).Return(7, nil)

	w := perform(r, http.MethodGet, "/api/users/"+passengerID+"/unread", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread":7}`, w.Body.String())
}

func TestCreateUser_Success(t *testing.T) {
	r, m := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, domain.CreateUserInput{
		Name:  "Thandi",
		Email: "thandi@example.com",
		Role:  domain.RolePassenger,
	}).Return(&domain.User{
		ID: passengerID, Name: "Thandi", Email: "thandi@example.com",
		Role: domain.RolePassenger,
	}, nil)

	w := perform(r, http.MethodPost, "/api/users", ginext.H{
		"name":  "Thandi",
		"email": "thandi@example.com",
		"role":  "passenger",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), passengerID)
}

func TestCreateUser_BadEmail(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodPost, "/api/users", ginext.H{
		"name":  "Thandi",
		"email": "not-an-email",
		"role":  "passenger",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUser_EmailTaken(t *testing.T) {
	r, m := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrEmailTaken)

	w := perform(r, http.MethodPost, "/api/users", ginext.H{
		"name":  "Thandi",
		"email": "taken@example.com",
		"role":  "passenger",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	r, m := setupRouter(t)

	m.user.EXPECT().GetByID(mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	w := perform(r, http.MethodGet, "/api/users/"+userID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	r, m := setupRouter(t)

	m.user.EXPECT().Delete(mock.Anything, userID).Return(nil)

	w := perform(r, http.MethodDelete, "/api/users/"+userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateVehicle_Success(t *testing.T) {
	r, m := setupRouter(t)

	m.vehicle.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&domain.Vehicle{
			ID: vehicleID, DriverID: driverID, Name: "Quantum",
			Origin: "Durban", Dest: "Johannesburg",
			Seats: 14, Price: 250, Times: []string{"07:30"},
		}, nil)

	w := perform(r, http.MethodPost, "/api/vehicles", ginext.H{
		"driver_id":           driverID,
		"name":                "Quantum",
		"registration_number": "ND 123-456",
		"origin":              "Durban",
		"dest":                "Johannesburg",
		"seats":               14,
		"price":               250,
		"times":               []string{"07:30"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Quantum")
}

func TestCreateVehicle_MissingTimes(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodPost, "/api/vehicles", ginext.H{
		"driver_id":           driverID,
		"name":                "Quantum",
		"registration_number": "ND 123-456",
		"origin":              "Durban",
		"dest":                "Johannesburg",
		"seats":               14,
		"price":               250,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListVehicles_Filters(t *testing.T) {
	r, m := setupRouter(t)

	m.vehicle.EXPECT().List(mock.Anything, domain.VehicleFilter{
		Origin:   "Durban",
		Dest:     "Johannesburg",
		MaxPrice: 300,
		MinSeats: 2,
	}).Return([]*domain.Vehicle{{ID: vehicleID, Name: "Quantum"}}, nil)

	w := perform(r, http.MethodGet,
		"/api/vehicles?origin=Durban&dest=Johannesburg&max_price=300&min_seats=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Quantum")
}

func TestListVehicles_BadFilter(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodGet, "/api/vehicles?min_price=cheap", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteVehicle(t *testing.T) {
	r, m := setupRouter(t)

	m.vehicle.EXPECT().Delete(mock.Anything, vehicleID, driverID).Return(nil)

	w := perform(r, http.MethodDelete, "/api/vehicles/"+vehicleID, ginext.H{
		"driver_id": driverID,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAvailability_Success(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().AvailableSeats(mock.Anything, vehicleID, "07:30").Return(5, nil)

	w := perform(r, http.MethodGet, "/api/vehicles/"+vehicleID+"/availability?time=07:30", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available_seats":5`)
}

func TestGetAvailability_BadTime(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodGet, "/api/vehicles/"+vehicleID+"/availability?time=7am", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDriverBookings(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().ListByDriver(mock.Anything, driverID).
		Return([]*domain.Booking{testBooking()}, nil)

	w := perform(r, http.MethodGet, "/api/drivers/"+driverID+"/bookings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "RG-ABCD1234")
}

func TestGetUserBookings(t *testing.T) {
	r, m := setupRouter(t)

	m.booking.EXPECT().ListByPassenger(mock.Anything, passengerID).
		Return([]*domain.Booking{testBooking()}, nil)

	w := perform(r, http.MethodGet, "/api/users/"+passengerID+"/bookings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "RG-ABCD1234")
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)

	w := perform(r, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
