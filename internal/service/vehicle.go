package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/Tellaman12/TaxiGo/internal/service/ports"
	"github.com/google/uuid"
)

type VehicleService struct {
	repo        ports.VehicleRepo
	bookingRepo ports.BookingRepo
}

func NewVehicleService(repo ports.VehicleRepo, bookingRepo ports.BookingRepo) *VehicleService {
	return &VehicleService{
		repo:        repo,
		bookingRepo: bookingRepo,
	}
}

func (s *VehicleService) Create(ctx context.Context, input domain.CreateVehicleInput) (*domain.Vehicle, error) {
	times, err := validateVehicleInput(input.Name, input.Origin, input.Dest, input.Seats, input.Price, input.Times)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.RegistrationNumber) == "" {
		return nil, fmt.Errorf("%w: registration number is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	vehicle := &domain.Vehicle{
		ID:                 uuid.New().String(),
		DriverID:           input.DriverID,
		Name:               strings.TrimSpace(input.Name),
		RegistrationNumber: strings.TrimSpace(input.RegistrationNumber),
		Origin:             strings.TrimSpace(input.Origin),
		Dest:               strings.TrimSpace(input.Dest),
		Seats:              input.Seats,
		Price:              input.Price,
		Times:              times,
		BankDetails:        input.BankDetails,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	return vehicle, nil
}

// Update replaces a vehicle's listing. Only the owning driver succeeds;
// anyone else sees not-found. Capacity cannot drop below the seats already
// committed at any departure time.
func (s *VehicleService) Update(ctx context.Context, id string, input domain.UpdateVehicleInput) (*domain.Vehicle, error) {
	times, err := validateVehicleInput(input.Name, input.Origin, input.Dest, input.Seats, input.Price, input.Times)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle.DriverID != input.DriverID {
		return nil, domain.ErrVehicleNotFound
	}

	if input.Seats < vehicle.Seats {
		for _, label := range times {
			available, err := s.bookingRepo.AvailableSeats(ctx, id, label)
			if err != nil {
				return nil, fmt.Errorf("check held seats: %w", err)
			}
			held := vehicle.Seats - available
			if input.Seats < held {
				return nil, fmt.Errorf("%w: %d seats already booked at %s", domain.ErrCapacityExceeded, held, label)
			}
		}
	}

	vehicle.Name = strings.TrimSpace(input.Name)
	vehicle.RegistrationNumber = strings.TrimSpace(input.RegistrationNumber)
	vehicle.Origin = strings.TrimSpace(input.Origin)
	vehicle.Dest = strings.TrimSpace(input.Dest)
	vehicle.Seats = input.Seats
	vehicle.Price = input.Price
	vehicle.Times = times
	vehicle.BankDetails = input.BankDetails
	vehicle.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("update vehicle: %w", err)
	}

	return vehicle, nil
}

// Delete removes a driver's vehicle. Existing bookings keep their snapshots
// and are not touched.
func (s *VehicleService) Delete(ctx context.Context, id, driverID string) error {
	if err := s.repo.Delete(ctx, id, driverID); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}

func (s *VehicleService) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VehicleService) List(ctx context.Context, filter domain.VehicleFilter) ([]*domain.Vehicle, error) {
	return s.repo.List(ctx, filter)
}

func (s *VehicleService) ListByDriver(ctx context.Context, driverID string) ([]*domain.Vehicle, error) {
	return s.repo.ListByDriver(ctx, driverID)
}

func validateVehicleInput(name, origin, dest string, seats int, price float64, times []string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(dest) == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", domain.ErrValidation)
	}
	if seats < 1 {
		return nil, fmt.Errorf("%w: seats must be positive", domain.ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	// ordered, distinct, well-formed HH:MM labels
	seen := make(map[string]struct{}, len(times))
	out := make([]string, 0, len(times))
	for _, t := range times {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !domain.ValidTimeLabel(t) {
			return nil, fmt.Errorf("%w: departure time %q is not HH:MM", domain.ErrValidation, t)
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: at least one departure time is required", domain.ErrValidation)
	}

	return out, nil
}
