package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tourquote/internal/domain"
)

type MySQLSeasonRepository struct {
	db *sql.DB
}

func NewMySQLSeasonRepository(db *sql.DB) *MySQLSeasonRepository {
	return &MySQLSeasonRepository{db: db}
}

func (r *MySQLSeasonRepository) FindAll(ctx context.Context) ([]domain.Season, error) {
	query := `
		SELECT id, name, startMonth, endMonth, priceMultiplier, createdAt, updatedAt
		FROM Season
		ORDER BY startMonth`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying seasons: %w", err)
	}
	defer rows.Close()

	var seasons []domain.Season
	for rows.Next() {
		var s domain.Season
		if err := rows.Scan(&s.ID, &s.Name, &s.StartMonth, &s.EndMonth, &s.PriceMultiplier, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning season: %w", err)
		}
		seasons = append(seasons, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating seasons: %w", err)
	}

	return seasons, nil
}
