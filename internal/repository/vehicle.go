package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const vehicleColumns = `id, driver_id, name, registration_number, origin, dest,
	seats, price, times, bank_name, bank_account_number, bank_branch_code,
	bank_account_holder, created_at, updated_at`

type VehicleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVehicleRepo(db *dbpg.DB) *VehicleRepository {
	return &VehicleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (id, driver_id, name, registration_number, origin, dest,
				seats, price, times, bank_name, bank_account_number, bank_branch_code,
				bank_account_holder, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.DriverID, v.Name, v.RegistrationNumber, v.Origin, v.Dest,
		v.Seats, v.Price, pq.Array(v.Times),
		v.BankDetails.BankName, v.BankDetails.AccountNumber,
		v.BankDetails.BranchCode, v.BankDetails.AccountHolder,
		v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}

	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	return scanVehicle(row.Scan)
}

// List returns vehicles matching the filter, newest first. Zero filter
// fields are skipped.
func (r *VehicleRepository) List(ctx context.Context, filter domain.VehicleFilter) ([]*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE 1=1`
	var args []any

	if filter.Origin != "" {
		args = append(args, likePattern(filter.Origin))
		query += fmt.Sprintf(" AND origin ILIKE $%d", len(args))
	}
	if filter.Dest != "" {
		args = append(args, likePattern(filter.Dest))
		query += fmt.Sprintf(" AND dest ILIKE $%d", len(args))
	}
	if filter.MinPrice > 0 {
		args = append(args, filter.MinPrice)
		query += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if filter.MaxPrice > 0 {
		args = append(args, filter.MaxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}
	if filter.MinSeats > 0 {
		args = append(args, filter.MinSeats)
		query += fmt.Sprintf(" AND seats >= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	return r.list(ctx, query, args...)
}

// likePattern wraps a filter value for substring matching, escaping LIKE
// metacharacters in the user input.
func likePattern(v string) string {
	v = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(v)
	return "%" + v + "%"
}

func (r *VehicleRepository) ListByDriver(ctx context.Context, driverID string) ([]*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
			  FROM vehicles
			  WHERE driver_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, driverID)
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles
			  SET name = $3, registration_number = $4, origin = $5, dest = $6,
				  seats = $7, price = $8, times = $9, bank_name = $10,
				  bank_account_number = $11, bank_branch_code = $12,
				  bank_account_holder = $13, updated_at = $14
			  WHERE id = $1 AND driver_id = $2`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.DriverID, v.Name, v.RegistrationNumber, v.Origin, v.Dest,
		v.Seats, v.Price, pq.Array(v.Times),
		v.BankDetails.BankName, v.BankDetails.AccountNumber,
		v.BankDetails.BranchCode, v.BankDetails.AccountHolder,
		v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVehicleNotFound
	}

	return nil
}

// Delete removes the listing. Bookings carry snapshots and have no FK on
// vehicles, so they survive the delete untouched.
func (r *VehicleRepository) Delete(ctx context.Context, id, driverID string) error {
	query := `DELETE FROM vehicles WHERE id = $1 AND driver_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, driverID)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVehicleNotFound
	}

	return nil
}

func (r *VehicleRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Vehicle, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var res []*domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}

	return res, rows.Err()
}

func scanVehicle(scan func(dest ...any) error) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := scan(
		&v.ID, &v.DriverID, &v.Name, &v.RegistrationNumber, &v.Origin, &v.Dest,
		&v.Seats, &v.Price, pq.Array(&v.Times),
		&v.BankDetails.BankName, &v.BankDetails.AccountNumber,
		&v.BankDetails.BranchCode, &v.BankDetails.AccountHolder,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("scan vehicle: %w", err)
	}

	return &v, nil
}
