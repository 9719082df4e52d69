package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tourquote/internal/domain"
	apperrors "tourquote/internal/errors"
)

type MySQLTourRepository struct {
	db *sql.DB
}

func NewMySQLTourRepository(db *sql.DB) *MySQLTourRepository {
	return &MySQLTourRepository{db: db}
}

func (r *MySQLTourRepository) FindByID(ctx context.Context, id int) (*domain.Tour, error) {
	query := `
		SELECT id, name, description, basePrice, isActive, createdAt, updatedAt
		FROM Tour
		WHERE id = ?`

	var t domain.Tour
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.BasePrice, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("tour %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying tour %d: %w", id, err)
	}

	return &t, nil
}

func (r *MySQLTourRepository) FindAll(ctx context.Context) ([]domain.Tour, error) {
	query := `
		SELECT id, name, description, basePrice, isActive, createdAt, updatedAt
		FROM Tour
		WHERE isActive = 1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tours: %w", err)
	}
	defer rows.Close()

	var tours []domain.Tour
	for rows.Next() {
		var t domain.Tour
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.BasePrice, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning tour: %w", err)
		}
		tours = append(tours, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tours: %w", err)
	}

	return tours, nil
}
