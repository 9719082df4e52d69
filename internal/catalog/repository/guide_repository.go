package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tourquote/internal/domain"
	apperrors "tourquote/internal/errors"
)

type MySQLGuideRepository struct {
	db *sql.DB
}

func NewMySQLGuideRepository(db *sql.DB) *MySQLGuideRepository {
	return &MySQLGuideRepository{db: db}
}

func (r *MySQLGuideRepository) FindByID(ctx context.Context, id int) (*domain.Guide, error) {
	query := `
		SELECT id, name, languages, pricePerDay, createdAt, updatedAt
		FROM Guide
		WHERE id = ?`

	var g domain.Guide
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.Languages, &g.PricePerDay, &g.CreatedAt, &g.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("guide %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying guide %d: %w", id, err)
	}

	return &g, nil
}

func (r *MySQLGuideRepository) FindAll(ctx context.Context) ([]domain.Guide, error) {
	query := `
		SELECT id, name, languages, pricePerDay, createdAt, updatedAt
		FROM Guide
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying guides: %w", err)
	}
	defer rows.Close()

	var guides []domain.Guide
	for rows.Next() {
		var g domain.Guide
		if err := rows.Scan(&g.ID, &g.Name, &g.Languages, &g.PricePerDay, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning guide: %w", err)
		}
		guides = append(guides, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating guides: %w", err)
	}

	return guides, nil
}
