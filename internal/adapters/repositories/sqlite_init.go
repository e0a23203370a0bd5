package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"itinerary-service/internal/domain"
)

// Dialect selects the SQL flavor of the catalog database.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "sqlite":
		return SQLite, nil
	case "postgres":
		return Postgres, nil
	default:
		return 0, fmt.Errorf("unknown sql dialect %q", s)
	}
}

// Initialize the attraction catalog schema.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	floatType := "REAL"
	if dialect == Postgres {
		floatType = "DOUBLE PRECISION"
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAttractionsQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS attractions (
		position INTEGER NOT NULL,
		name TEXT PRIMARY KEY,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		category TEXT NOT NULL,
		latitude %[1]s NOT NULL,
		longitude %[1]s NOT NULL,
		visit_minutes INTEGER NOT NULL DEFAULT 0
	);
	`, floatType)

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_attractions_position
	ON attractions(position);
	`

	statements := []string{
		createAttractionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the catalog table, replacing rows with the same name.
// Row positions follow the slice order so listing preserves catalog order.
func SeedAttractions(db *sql.DB, dialect Dialect, attractions []domain.Attraction) error {
	if db == nil {
		return errors.New("seed attractions: DB is nil")
	}

	for i, a := range attractions {
		if a.Name == "" {
			return fmt.Errorf("seed attractions: item at index %d: name cannot be empty", i+1)
		}
		if a.VisitMinutes < 0 {
			return fmt.Errorf("seed attractions: %q: visit minutes must be non-negative", a.Name)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed attractions: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO attractions (
		position, name, city, state, category, latitude, longitude, visit_minutes
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	if dialect == Postgres {
		query = `
		INSERT INTO attractions (
			position, name, city, state, category, latitude, longitude, visit_minutes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name) DO UPDATE SET
			position = EXCLUDED.position,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			category = EXCLUDED.category,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			visit_minutes = EXCLUDED.visit_minutes;
		`
	}

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed attractions: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, a := range attractions {
		if _, err := stmt.Exec(i+1, a.Name, a.City, a.State, a.Category, a.Latitude, a.Longitude, a.VisitMinutes); err != nil {
			return fmt.Errorf("seed attractions: insert %q: %w", a.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed attractions: commit tx: %w", err)
	}

	return nil
}
