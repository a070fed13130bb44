package service

import (
	"context"
	"testing"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/Tellaman12/TaxiGo/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVehicleService(t *testing.T) (*VehicleService, *mocks.MockVehicleRepo, *mocks.MockBookingRepo) {
	t.Helper()
	repo := mocks.NewMockVehicleRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	return NewVehicleService(repo, bookingRepo), repo, bookingRepo
}

func vehicleInput() domain.CreateVehicleInput {
	return domain.CreateVehicleInput{
		DriverID:           "d1",
		Name:               "Quantum",
		RegistrationNumber: "ND 123-456",
		Origin:             "Durban",
		Dest:               "Johannesburg",
		Seats:              14,
		Price:              250,
		Times:              []string{"07:30", "12:00"},
	}
}

func TestVehicleService_Create_Success(t *testing.T) {
	svc, repo, _ := newVehicleService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	vehicle, err := svc.Create(context.Background(), vehicleInput())

	require.NoError(t, err)
	assert.NotEmpty(t, vehicle.ID)
	assert.Equal(t, "d1", vehicle.DriverID)
	assert.Equal(t, []string{"07:30", "12:00"}, vehicle.Times)
}

func TestVehicleService_Create_DedupesTimes(t *testing.T) {
	svc, repo, _ := newVehicleService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := vehicleInput()
	input.Times = []string{"07:30", " 07:30 ", "12:00", ""}

	vehicle, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, []string{"07:30", "12:00"}, vehicle.Times)
}

func TestVehicleService_Create_MalformedTime(t *testing.T) {
	svc, _, _ := newVehicleService(t)

	input := vehicleInput()
	input.Times = []string{"7:30"}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVehicleService_Create_NoTimes(t *testing.T) {
	svc, _, _ := newVehicleService(t)

	input := vehicleInput()
	input.Times = []string{"", "  "}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVehicleService_Create_MissingFields(t *testing.T) {
	svc, _, _ := newVehicleService(t)

	for name, mutate := range map[string]func(*domain.CreateVehicleInput){
		"empty name":     func(in *domain.CreateVehicleInput) { in.Name = " " },
		"empty origin":   func(in *domain.CreateVehicleInput) { in.Origin = "" },
		"zero seats":     func(in *domain.CreateVehicleInput) { in.Seats = 0 },
		"negative price": func(in *domain.CreateVehicleInput) { in.Price = -1 },
		"no reg number":  func(in *domain.CreateVehicleInput) { in.RegistrationNumber = "" },
	} {
		input := vehicleInput()
		mutate(&input)

		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation, name)
	}
}

func TestVehicleService_Update_Success(t *testing.T) {
	svc, repo, _ := newVehicleService(t)

	existing := &domain.Vehicle{ID: "v1", DriverID: "d1", Name: "Quantum", Seats: 10}
	repo.EXPECT().GetByID(mock.Anything, "v1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	vehicle, err := svc.Update(context.Background(), "v1", domain.UpdateVehicleInput{
		DriverID:           "d1",
		Name:               "Quantum 2",
		RegistrationNumber: "ND 123-456",
		Origin:             "Durban",
		Dest:               "Pretoria",
		Seats:              10,
		Price:              300,
		Times:              []string{"06:00"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Quantum 2", vehicle.Name)
	assert.Equal(t, "Pretoria", vehicle.Dest)
}

func TestVehicleService_Update_RejectsSeatsBelowHeld(t *testing.T) {
	svc, repo, bookingRepo := newVehicleService(t)

	existing := &domain.Vehicle{ID: "v1", DriverID: "d1", Seats: 14}
	repo.EXPECT().GetByID(mock.Anything, "v1").Return(existing, nil)
	// 10 of 14 seats already booked at 07:30
	bookingRepo.EXPECT().AvailableSeats(mock.Anything, "v1", "07:30").Return(4, nil)

	_, err := svc.Update(context.Background(), "v1", domain.UpdateVehicleInput{
		DriverID:           "d1",
		Name:               "Quantum",
		RegistrationNumber: "ND 123-456",
		Origin:             "Durban",
		Dest:               "Johannesburg",
		Seats:              8,
		Price:              250,
		Times:              []string{"07:30"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestVehicleService_Update_AllowsReductionAboveHeld(t *testing.T) {
	svc, repo, bookingRepo := newVehicleService(t)

	existing := &domain.Vehicle{ID: "v1", DriverID: "d1", Seats: 14}
	repo.EXPECT().GetByID(mock.Anything, "v1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	bookingRepo.EXPECT().AvailableSeats(mock.Anything, "v1", "07:30").Return(11, nil)

	vehicle, err := svc.Update(context.Background(), "v1", domain.UpdateVehicleInput{
		DriverID:           "d1",
		Name:               "Quantum",
		RegistrationNumber: "ND 123-456",
		Origin:             "Durban",
		Dest:               "Johannesburg",
		Seats:              8,
		Price:              250,
		Times:              []string{"07:30"},
	})

	require.NoError(t, err)
	assert.Equal(t, 8, vehicle.Seats)
}

func TestVehicleService_Update_NotOwner(t *testing.T) {
	svc, repo, _ := newVehicleService(t)

	existing := &domain.Vehicle{ID: "v1", DriverID: "d1"}
	repo.EXPECT().GetByID(mock.Anything, "v1").Return(existing, nil)

	_, err := svc.Update(context.Background(), "v1", domain.UpdateVehicleInput{
		DriverID: "other-driver",
		Name:     "Hijacked",
		Origin:   "A",
		Dest:     "B",
		Seats:    4,
		Times:    []string{"07:00"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

func TestVehicleService_Delete(t *testing.T) {
	svc, repo, _ := newVehicleService(t)

	repo.EXPECT().Delete(mock.Anything, "v1", "d1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "v1", "d1"))
}

func TestVehicleService_List_PassesFilter(t *testing.T) {
	svc, repo, _ := newVehicleService(t)

	filter := domain.VehicleFilter{Origin: "Durban", MinSeats: 2}
	repo.EXPECT().List(mock.Anything, filter).Return([]*domain.Vehicle{{ID: "v1"}}, nil)

	vehicles, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, vehicles, 1)
}
