package dto

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Role           string `json:"role" binding:"required,oneof=passenger driver"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type BankDetailsRequest struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	BranchCode    string `json:"branch_code"`
	AccountHolder string `json:"account_holder"`
}

type CreateVehicleRequest struct {
	DriverID           string             `json:"driver_id" binding:"required,uuid"`
	Name               string             `json:"name" binding:"required"`
	RegistrationNumber string             `json:"registration_number" binding:"required"`
	Origin             string             `json:"origin" binding:"required"`
	Dest               string             `json:"dest" binding:"required"`
	Seats              int                `json:"seats" binding:"required,gt=0"`
	Price              float64            `json:"price" binding:"required,gt=0"`
	Times              []string           `json:"times" binding:"required,min=1"`
	BankDetails        BankDetailsRequest `json:"bank_details"`
}

type UpdateVehicleRequest struct {
	DriverID           string             `json:"driver_id" binding:"required,uuid"`
	Name               string             `json:"name" binding:"required"`
	RegistrationNumber string             `json:"registration_number" binding:"required"`
	Origin             string             `json:"origin" binding:"required"`
	Dest               string             `json:"dest" binding:"required"`
	Seats              int                `json:"seats" binding:"required,gt=0"`
	Price              float64            `json:"price" binding:"required,gt=0"`
	Times              []string           `json:"times" binding:"required,min=1"`
	BankDetails        BankDetailsRequest `json:"bank_details"`
}

type DeleteVehicleRequest struct {
	DriverID string `json:"driver_id" binding:"required,uuid"`
}

type CreateBookingRequest struct {
	VehicleID      string `json:"vehicle_id" binding:"required,uuid"`
	PassengerID    string `json:"passenger_id" binding:"required,uuid"`
	TimeLabel      string `json:"time" binding:"required"`
	Seats          int    `json:"seats" binding:"required,gt=0"`
	PickupType     string `json:"pickup_type" binding:"required,oneof=rank hike"`
	PickupLocation string `json:"pickup_location"`
}

// ActorRequest carries the acting user for operations that need nothing
// else.
type ActorRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CancelRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Reason string `json:"reason"`
}

type ResolveCancelRequest struct {
	DriverID string `json:"driver_id" binding:"required,uuid"`
	Approve  *bool  `json:"approve" binding:"required"`
}

type RatingRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	Rating   int    `json:"rating" binding:"required"`
	Feedback string `json:"feedback"`
}

type SendMessageRequest struct {
	SenderID string `json:"sender_id" binding:"required,uuid"`
	Body     string `json:"body"`
	Alert    string `json:"alert"`
}

type MarkReadRequest struct {
	ViewerID string `json:"viewer_id" binding:"required,uuid"`
}
