package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tourquote/internal/domain"
	apperrors "tourquote/internal/errors"
)

type MySQLHotelRepository struct {
	db *sql.DB
}

func NewMySQLHotelRepository(db *sql.DB) *MySQLHotelRepository {
	return &MySQLHotelRepository{db: db}
}

func (r *MySQLHotelRepository) FindByID(ctx context.Context, id int) (*domain.Hotel, error) {
	query := `
		SELECT id, name, singleRoomPrice, doubleRoomPrice, tripleRoomPrice,
		       breakfastPrice, lunchPrice, dinnerPrice, createdAt, updatedAt
		FROM Hotel
		WHERE id = ?`

	var h domain.Hotel
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.SingleRoomPrice, &h.DoubleRoomPrice, &h.TripleRoomPrice,
		&h.BreakfastPrice, &h.LunchPrice, &h.DinnerPrice, &h.CreatedAt, &h.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("hotel %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying hotel %d: %w", id, err)
	}

	return &h, nil
}

func (r *MySQLHotelRepository) FindAll(ctx context.Context) ([]domain.Hotel, error) {
	query := `
		SELECT id, name, singleRoomPrice, doubleRoomPrice, tripleRoomPrice,
		       breakfastPrice, lunchPrice, dinnerPrice, createdAt, updatedAt
		FROM Hotel
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying hotels: %w", err)
	}
	defer rows.Close()

	var hotels []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(
			&h.ID, &h.Name, &h.SingleRoomPrice, &h.DoubleRoomPrice, &h.TripleRoomPrice,
			&h.BreakfastPrice, &h.LunchPrice, &h.DinnerPrice, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hotels: %w", err)
	}

	return hotels, nil
}
