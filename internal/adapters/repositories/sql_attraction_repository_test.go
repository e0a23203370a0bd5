package repositories

import (
	"context"
	"database/sql"
	"testing"

	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, InitSchema(conn, SQLite))
	return conn
}

func seedData() []domain.Attraction {
	return []domain.Attraction{
		{Name: "Mysore Palace", City: "Mysore", State: "Karnataka", Category: "Palace", Latitude: 12.3052, Longitude: 76.6552, VisitMinutes: 60},
		{Name: "Charminar", City: "Hyderabad", State: "Telangana", Category: "Monument", Latitude: 17.3616, Longitude: 78.4747, VisitMinutes: 60},
		{Name: "Bangalore Palace", City: "Bangalore", State: "Karnataka", Category: "Palace", Latitude: 12.9987, Longitude: 77.5920, VisitMinutes: 90},
	}
}

func TestSQLAttractionRepositoryListsInCatalogOrder(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, SeedAttractions(conn, SQLite, seedData()))

	repo := NewSQLAttractionRepository(conn)
	got, err := repo.ListAttractions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seedData(), got)
}

func TestSeedAttractionsReplacesByName(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, SeedAttractions(conn, SQLite, seedData()))

	updated := seedData()[:1]
	updated[0].VisitMinutes = 120
	require.NoError(t, SeedAttractions(conn, SQLite, updated))

	got, err := NewSQLAttractionRepository(conn).ListAttractions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Mysore Palace", got[0].Name)
	assert.Equal(t, 120, got[0].VisitMinutes)
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, InitSchema(conn, SQLite))
}

func TestSeedAttractionsRejectsInvalidRows(t *testing.T) {
	conn := openTestDB(t)

	err := SeedAttractions(conn, SQLite, []domain.Attraction{{Name: ""}})
	require.Error(t, err)

	err = SeedAttractions(conn, SQLite, []domain.Attraction{{Name: "Bad", VisitMinutes: -1}})
	require.Error(t, err)

	got, err := NewSQLAttractionRepository(conn).ListAttractions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNilDatabase(t *testing.T) {
	assert.Error(t, InitSchema(nil, SQLite))
	assert.Error(t, SeedAttractions(nil, SQLite, seedData()))

	_, err := NewSQLAttractionRepository(nil).ListAttractions(context.Background())
	assert.Error(t, err)
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("postgres")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)

	d, err = ParseDialect("sqlite")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)

	_, err = ParseDialect("mysql")
	assert.Error(t, err)
}
