package domain

import "time"

type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	BranchCode    string `json:"branch_code"`
	AccountHolder string `json:"account_holder"`
}

type Vehicle struct {
	ID                 string      `json:"id"`
	DriverID           string      `json:"driver_id"`
	Name               string      `json:"name"`
	RegistrationNumber string      `json:"registration_number"`
	Origin             string      `json:"origin"`
	Dest               string      `json:"dest"`
	Seats              int         `json:"seats"`
	Price              float64     `json:"price"`
	Times              []string    `json:"times"`
	BankDetails        BankDetails `json:"bank_details"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// HasTimeLabel reports whether label is one of the vehicle's configured
// departure times.
func (v *Vehicle) HasTimeLabel(label string) bool {
	for _, t := range v.Times {
		if t == label {
			return true
		}
	}
	return false
}

type CreateVehicleInput struct {
	DriverID           string
	Name               string
	RegistrationNumber string
	Origin             string
	Dest               string
	Seats              int
	Price              float64
	Times              []string
	BankDetails        BankDetails
}

type UpdateVehicleInput struct {
	DriverID           string
	Name               string
	RegistrationNumber string
	Origin             string
	Dest               string
	Seats              int
	Price              float64
	Times              []string
	BankDetails        BankDetails
}

// VehicleFilter narrows vehicle listings. Zero values mean "no constraint".
type VehicleFilter struct {
	Origin   string
	Dest     string
	MinPrice float64
	MaxPrice float64
	MinSeats int
}
