package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/Tellaman12/TaxiGo/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	MarkPaid(ctx context.Context, id string) error
	CancelUnpaid(ctx context.Context, id, passengerID, reason string) error
	CancelPaidDirect(ctx context.Context, id, passengerID, reason string) error
	RequestCancel(ctx context.Context, id, passengerID, reason string) error
	ResolveCancelRequest(ctx context.Context, id, driverID string, approve bool) error
	CancelByDriver(ctx context.Context, id, driverID, reason string) error
	MarkOnTheWay(ctx context.Context, id, driverID string) error
	Complete(ctx context.Context, id, passengerID string) error
	SubmitRating(ctx context.Context, id, passengerID string, rating int, feedback string) error
	AvailableSeats(ctx context.Context, vehicleID, timeLabel string) (int, error)
	GetForViewer(ctx context.Context, id, viewerID string) (*domain.Booking, error)
	GetByRef(ctx context.Context, ref, viewerID string) (*domain.Booking, error)
	ListByPassenger(ctx context.Context, passengerID string) ([]*domain.Booking, error)
	ListByDriver(ctx context.Context, driverID string) ([]*domain.Booking, error)
}

type VehicleSvc interface {
	Create(ctx context.Context, input domain.CreateVehicleInput) (*domain.Vehicle, error)
	Update(ctx context.Context, id string, input domain.UpdateVehicleInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, id, driverID string) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context, filter domain.VehicleFilter) ([]*domain.Vehicle, error)
	ListByDriver(ctx context.Context, driverID string) ([]*domain.Vehicle, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type MessageSvc interface {
	Send(ctx context.Context, bookingID, senderID, body string) (*domain.Message, error)
	SendAlert(ctx context.Context, bookingID, senderID string, alert domain.AlertType) (*domain.Message, error)
	GetMessages(ctx context.Context, bookingID, viewerID string) ([]*domain.Message, error)
	UnreadCount(ctx context.Context, bookingID, viewerID string) (int, error)
	UnreadTotal(ctx context.Context, viewerID string) (int, error)
	MarkRead(ctx context.Context, bookingID, viewerID string) error
}

type ReceiptGen interface {
	Generate(b *domain.Booking) ([]byte, error)
}

type Handler struct {
	bookingService BookingSvc
	vehicleService VehicleSvc
	userService    UserSvc
	messageService MessageSvc
	receipts       ReceiptGen
}

func NewHandler(
	bookingService BookingSvc,
	vehicleService VehicleSvc,
	userService UserSvc,
	messageService MessageSvc,
	receipts ReceiptGen,
) *Handler {
	return &Handler{
		bookingService: bookingService,
		vehicleService: vehicleService,
		userService:    userService,
		messageService: messageService,
		receipts:       receipts,
	}
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, domain.UpdateUserInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByPassenger(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// GetUnreadTotal backs the navigation badge poll.
func (h *Handler) GetUnreadTotal(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	unread, err := h.messageService.UnreadTotal(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadResponse{Unread: unread})
}

// Vehicles

func (h *Handler) CreateVehicle(c *ginext.Context) {
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), domain.CreateVehicleInput{
		DriverID:           req.DriverID,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Origin:             req.Origin,
		Dest:               req.Dest,
		Seats:              req.Seats,
		Price:              req.Price,
		Times:              req.Times,
		BankDetails:        toBankDetails(req.BankDetails),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

func (h *Handler) GetVehicle(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vehicle id"})
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

func (h *Handler) ListVehicles(c *ginext.Context) {
	filter := domain.VehicleFilter{
		Origin: c.Query("origin"),
		Dest:   c.Query("dest"),
	}
	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_price"})
			return
		}
		filter.MinPrice = p
	}
	if v := c.Query("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid max_price"})
			return
		}
		filter.MaxPrice = p
	}
	if v := c.Query("min_seats"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_seats"})
			return
		}
		filter.MinSeats = n
	}

	vehicles, err := h.vehicleService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, dto.ToVehicleResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateVehicle(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vehicle id"})
		return
	}

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), id, domain.UpdateVehicleInput{
		DriverID:           req.DriverID,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Origin:             req.Origin,
		Dest:               req.Dest,
		Seats:              req.Seats,
		Price:              req.Price,
		Times:              req.Times,
		BankDetails:        toBankDetails(req.BankDetails),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

func (h *Handler) DeleteVehicle(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vehicle id"})
		return
	}

	var req dto.DeleteVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id, req.DriverID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// GetAvailability reports remaining seats for one departure time.
func (h *Handler) GetAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vehicle id"})
		return
	}

	timeLabel := c.Query("time")
	if !domain.ValidTimeLabel(timeLabel) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "time must be HH:MM"})
		return
	}

	seats, err := h.bookingService.AvailableSeats(c.Request.Context(), id, timeLabel)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		VehicleID:      id,
		TimeLabel:      timeLabel,
		AvailableSeats: seats,
	})
}

// Drivers

func (h *Handler) GetDriverBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid driver id"})
		return
	}

	bookings, err := h.bookingService.ListByDriver(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) GetDriverVehicles(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid driver id"})
		return
	}

	vehicles, err := h.vehicleService.ListByDriver(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, dto.ToVehicleResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		VehicleID:   req.VehicleID,
		PassengerID: req.PassengerID,
		TimeLabel:   req.TimeLabel,
		Seats:       req.Seats,
		PickupType:  domain.PickupType(req.PickupType),
		PickupAt:    req.PickupLocation,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, viewerID, ok := h.bookingAndViewer(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetForViewer(c.Request.Context(), id, viewerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// LookupBooking resolves a booking by the reference code printed on
// receipts and encoded in the receipt QR.
func (h *Handler) LookupBooking(c *ginext.Context) {
	ref := c.Query("ref")
	if ref == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "ref is required"})
		return
	}

	viewerID := c.Query("user_id")
	if _, err := uuid.Parse(viewerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user_id"})
		return
	}

	booking, err := h.bookingService.GetByRef(c.Request.Context(), ref, viewerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) PayBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.MarkPaid(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "paid"})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.CancelUnpaid(c.Request.Context(), id, req.UserID, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) CancelBookingDirect(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.CancelPaidDirect(c.Request.Context(), id, req.UserID, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) RequestCancel(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.RequestCancel(c.Request.Context(), id, req.UserID, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancel_requested"})
}

func (h *Handler) ResolveCancelRequest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.ResolveCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.ResolveCancelRequest(c.Request.Context(), id, req.DriverID, *req.Approve); err != nil {
		h.handleError(c, err)
		return
	}

	if *req.Approve {
		c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "paid"})
}

func (h *Handler) CancelByDriver(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.CancelByDriver(c.Request.Context(), id, req.UserID, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) MarkOnTheWay(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.MarkOnTheWay(c.Request.Context(), id, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "on_the_way"})
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Complete(c.Request.Context(), id, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "completed"})
}

func (h *Handler) RateBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.SubmitRating(c.Request.Context(), id, req.UserID, req.Rating, req.Feedback); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rated"})
}

// GetReceipt streams the booking receipt PDF. Available once the booking
// has been paid, including after cancellation or completion.
func (h *Handler) GetReceipt(c *ginext.Context) {
	id, viewerID, ok := h.bookingAndViewer(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetForViewer(c.Request.Context(), id, viewerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if booking.PaidAt == nil {
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "booking has not been paid"})
		return
	}

	pdf, err := h.receipts.Generate(booking)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="receipt-`+booking.Ref+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Messages

func (h *Handler) GetMessages(c *ginext.Context) {
	id, viewerID, ok := h.bookingAndViewer(c)
	if !ok {
		return
	}

	messages, err := h.messageService.GetMessages(c.Request.Context(), id, viewerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, dto.ToMessageResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SendMessage(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var (
		msg *domain.Message
		err error
	)
	if req.Alert != "" {
		msg, err = h.messageService.SendAlert(c.Request.Context(), id, req.SenderID, domain.AlertType(req.Alert))
	} else {
		msg, err = h.messageService.Send(c.Request.Context(), id, req.SenderID, req.Body)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(msg))
}

func (h *Handler) GetUnreadCount(c *ginext.Context) {
	id, viewerID, ok := h.bookingAndViewer(c)
	if !ok {
		return
	}

	unread, err := h.messageService.UnreadCount(c.Request.Context(), id, viewerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadResponse{Unread: unread})
}

func (h *Handler) MarkMessagesRead(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.messageService.MarkRead(c.Request.Context(), id, req.ViewerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "read"})
}

func (h *Handler) bookingAndViewer(c *ginext.Context) (string, string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return "", "", false
	}

	viewerID := c.Query("user_id")
	if _, err := uuid.Parse(viewerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user_id"})
		return "", "", false
	}

	return id, viewerID, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyTerminal),
		errors.Is(err, domain.ErrAlreadyRated):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTimeLabel),
		errors.Is(err, domain.ErrRatingOutOfRange),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func toBankDetails(r dto.BankDetailsRequest) domain.BankDetails {
	return domain.BankDetails{
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		BranchCode:    r.BranchCode,
		AccountHolder: r.AccountHolder,
	}
}
