package dto

import (
	"time"

	"github.com/Tellaman12/TaxiGo/internal/domain"
)

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type BankDetailsResponse struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	BranchCode    string `json:"branch_code"`
	AccountHolder string `json:"account_holder"`
}

type VehicleResponse struct {
	ID                 string              `json:"id"`
	DriverID           string              `json:"driver_id"`
	Name               string              `json:"name"`
	RegistrationNumber string              `json:"registration_number"`
	Origin             string              `json:"origin"`
	Dest               string              `json:"dest"`
	Seats              int                 `json:"seats"`
	Price              float64             `json:"price"`
	Times              []string            `json:"times"`
	BankDetails        BankDetailsResponse `json:"bank_details"`
	CreatedAt          string              `json:"created_at"`
}

type BookingResponse struct {
	ID                  string  `json:"id"`
	Ref                 string  `json:"ref"`
	VehicleID           string  `json:"vehicle_id"`
	TaxiName            string  `json:"taxi_name"`
	DriverID            string  `json:"driver_id"`
	DriverName          string  `json:"driver_name"`
	PassengerID         string  `json:"passenger_id"`
	PassengerName       string  `json:"passenger_name"`
	Origin              string  `json:"origin"`
	Dest                string  `json:"dest"`
	TimeLabel           string  `json:"time"`
	Seats               int     `json:"seats"`
	Total               float64 `json:"total"`
	PickupType          string  `json:"pickup_type"`
	PickupLocation      string  `json:"pickup_location,omitempty"`
	Status              string  `json:"status"`
	DriverStatus        string  `json:"driver_status,omitempty"`
	CancellationReason  string  `json:"cancellation_reason,omitempty"`
	CancellationFee     float64 `json:"cancellation_fee,omitempty"`
	CancelledBy         string  `json:"cancelled_by,omitempty"`
	CancelRequestReason string  `json:"cancel_request_reason,omitempty"`
	Rating              int     `json:"rating,omitempty"`
	Feedback            string  `json:"feedback,omitempty"`
	CreatedAt           string  `json:"created_at"`
	PaidAt              string  `json:"paid_at,omitempty"`
	CompletedAt         string  `json:"completed_at,omitempty"`
	CancelledAt         string  `json:"cancelled_at,omitempty"`
}

type AvailabilityResponse struct {
	VehicleID      string `json:"vehicle_id"`
	TimeLabel      string `json:"time"`
	AvailableSeats int    `json:"available_seats"`
}

type MessageResponse struct {
	ID          string `json:"id"`
	BookingID   string `json:"booking_id"`
	SenderID    string `json:"sender_id"`
	SenderName  string `json:"sender_name"`
	Body        string `json:"body"`
	Kind        string `json:"kind"`
	Alert       string `json:"alert,omitempty"`
	StatusValue string `json:"status,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type UnreadResponse struct {
	Unread int `json:"unread"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                 v.ID,
		DriverID:           v.DriverID,
		Name:               v.Name,
		RegistrationNumber: v.RegistrationNumber,
		Origin:             v.Origin,
		Dest:               v.Dest,
		Seats:              v.Seats,
		Price:              v.Price,
		Times:              v.Times,
		BankDetails: BankDetailsResponse{
			BankName:      v.BankDetails.BankName,
			AccountNumber: v.BankDetails.AccountNumber,
			BranchCode:    v.BankDetails.BranchCode,
			AccountHolder: v.BankDetails.AccountHolder,
		},
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                  b.ID,
		Ref:                 b.Ref,
		VehicleID:           b.VehicleID,
		TaxiName:            b.TaxiName,
		DriverID:            b.DriverID,
		DriverName:          b.DriverName,
		PassengerID:         b.PassengerID,
		PassengerName:       b.PassengerName,
		Origin:              b.Origin,
		Dest:                b.Dest,
		TimeLabel:           b.TimeLabel,
		Seats:               b.Seats,
		Total:               b.Total,
		PickupType:          string(b.PickupType),
		PickupLocation:      b.PickupAt,
		Status:              string(b.Status),
		DriverStatus:        string(b.DriverStatus),
		CancellationReason:  b.CancellationReason,
		CancellationFee:     b.CancellationFee,
		CancelledBy:         string(b.CancelledBy),
		CancelRequestReason: b.CancelRequestReason,
		Rating:              b.Rating,
		Feedback:            b.Feedback,
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
	}

	if b.PaidAt != nil {
		resp.PaidAt = b.PaidAt.Format(time.RFC3339)
	}
	if b.CompletedAt != nil {
		resp.CompletedAt = b.CompletedAt.Format(time.RFC3339)
	}
	if b.CancelledAt != nil {
		resp.CancelledAt = b.CancelledAt.Format(time.RFC3339)
	}

	return resp
}

func ToMessageResponse(m *domain.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		BookingID:   m.BookingID,
		SenderID:    m.SenderID,
		SenderName:  m.SenderName,
		Body:        m.Body,
		Kind:        string(m.Kind),
		Alert:       string(m.Alert),
		StatusValue: m.StatusValue,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}
