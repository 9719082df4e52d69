package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tourquote/internal/domain"
	apperrors "tourquote/internal/errors"
)

type MySQLVehicleRepository struct {
	db *sql.DB
}

func NewMySQLVehicleRepository(db *sql.DB) *MySQLVehicleRepository {
	return &MySQLVehicleRepository{db: db}
}

func (r *MySQLVehicleRepository) FindByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	query := `
		SELECT id, name, capacity, pricePerDay, driverCostPerDay, createdAt, updatedAt
		FROM Vehicle
		WHERE id = ?`

	var v domain.Vehicle
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Capacity, &v.PricePerDay, &v.DriverCostPerDay, &v.CreatedAt, &v.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("vehicle %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying vehicle %d: %w", id, err)
	}

	return &v, nil
}

func (r *MySQLVehicleRepository) FindAll(ctx context.Context) ([]domain.Vehicle, error) {
	query := `
		SELECT id, name, capacity, pricePerDay, driverCostPerDay, createdAt, updatedAt
		FROM Vehicle
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Capacity, &v.PricePerDay, &v.DriverCostPerDay, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vehicles: %w", err)
	}

	return vehicles, nil
}
