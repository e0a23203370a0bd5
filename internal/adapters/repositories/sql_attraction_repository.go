package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
)

// SQL-backed implementation of the AttractionCatalog port.
// The query is portable across SQLite and Postgres.
type SQLAttractionRepository struct{ DB *sql.DB }

func NewSQLAttractionRepository(db *sql.DB) *SQLAttractionRepository {
	return &SQLAttractionRepository{DB: db}
}

// Return all attractions in catalog order.
func (s *SQLAttractionRepository) ListAttractions(ctx context.Context) (_ []domain.Attraction, err error) {
	defer obs.Time(ctx, "catalog.sql.ListAttractions")(&err)

	if s.DB == nil {
		return nil, errors.New("sql attraction repository: DB is nil")
	}

	query := `
	SELECT
		name,
		city,
		state,
		category,
		latitude,
		longitude,
		visit_minutes
	FROM attractions
	ORDER BY position, name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list attractions: query attractions table: %w", err)
	}
	defer rows.Close()

	attractions := make([]domain.Attraction, 0, 128)
	for rows.Next() {
		var a domain.Attraction
		if err := rows.Scan(&a.Name, &a.City, &a.State, &a.Category, &a.Latitude, &a.Longitude, &a.VisitMinutes); err != nil {
			return nil, fmt.Errorf("list attractions: scan row: %w", err)
		}
		attractions = append(attractions, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attractions: row iteration: %w", err)
	}

	return attractions, nil
}
