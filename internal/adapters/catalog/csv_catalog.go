package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
)

// Column headers of the attraction catalog file.
const (
	ColName      = "Name"
	ColCity      = "City"
	ColState     = "State"
	ColCategory  = "Category"
	ColLatitude  = "Latitude"
	ColLongitude = "Longitude"
	ColVisitTime = "Estimated Visit Time (mins)"
)

var requiredColumns = []string{ColName, ColCity, ColState, ColCategory, ColLatitude, ColLongitude}

// CSVCatalog reads attractions from a CSV file with a header row.
// Extra columns are ignored; the visit time column is optional.
type CSVCatalog struct {
	Path string
}

func NewCSVCatalog(path string) *CSVCatalog {
	return &CSVCatalog{Path: path}
}

func (c *CSVCatalog) ListAttractions(ctx context.Context) (_ []domain.Attraction, err error) {
	defer obs.Time(ctx, "catalog.csv.ListAttractions")(&err)

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("csv catalog: open %q: %w", c.Path, err)
	}
	defer f.Close()

	attractions, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("csv catalog: %q: %w", c.Path, err)
	}
	return attractions, nil
}

// ParseCSV decodes attraction records in file order.
func ParseCSV(r io.Reader) ([]domain.Attraction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Attraction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse csv: read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("parse csv: missing column %q", name)
		}
	}

	attractions := make([]domain.Attraction, 0, 128)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: line %d: %w", line, err)
		}

		a, err := decodeRecord(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("parse csv: line %d: %w", line, err)
		}
		attractions = append(attractions, a)
	}

	return attractions, nil
}

func decodeRecord(rec []string, cols map[string]int) (domain.Attraction, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	lat, err := strconv.ParseFloat(field(ColLatitude), 64)
	if err != nil {
		return domain.Attraction{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(field(ColLongitude), 64)
	if err != nil {
		return domain.Attraction{}, fmt.Errorf("longitude: %w", err)
	}

	visit := 0
	if raw := field(ColVisitTime); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Attraction{}, fmt.Errorf("visit time: %w", err)
		}
		if v < 0 || math.IsNaN(v) {
			return domain.Attraction{}, fmt.Errorf("visit time: must be non-negative, got %q", raw)
		}
		visit = int(v)
	}

	name := field(ColName)
	if name == "" {
		return domain.Attraction{}, errors.New("name must not be empty")
	}

	return domain.Attraction{
		Name:         name,
		City:         field(ColCity),
		State:        field(ColState),
		Category:     field(ColCategory),
		Latitude:     lat,
		Longitude:    lon,
		VisitMinutes: visit,
	}, nil
}
