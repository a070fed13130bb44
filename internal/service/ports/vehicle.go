package ports

import (
	"context"

	"github.com/Tellaman12/TaxiGo/internal/domain"
)

type VehicleRepo interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context, filter domain.VehicleFilter) ([]*domain.Vehicle, error)
	ListByDriver(ctx context.Context, driverID string) ([]*domain.Vehicle, error)
	// Update and Delete are scoped to the owning driver; a non-owner sees
	// domain.ErrVehicleNotFound.
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id, driverID string) error
}
