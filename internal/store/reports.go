package store

import (
	"context"
	"fmt"

	"github.com/shrimpsizemoose/flightrec/internal/models"
)

// FlightsPerDestination counts flights by arrival city, busiest first.
func (s *BaseStore) FlightsPerDestination(ctx context.Context) ([]models.DestinationFlightCount, error) {
	counts := []models.DestinationFlightCount{}
	err := s.DB.SelectContext(ctx, &counts, `
		SELECT d.city, COUNT(f.flight_id) AS flight_count
		FROM flights f
		JOIN destinations d ON f.destination_id = d.destination_id
		GROUP BY d.city
		ORDER BY flight_count DESC, d.city
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count flights per destination: %w", err)
	}
	return counts, nil
}

// PilotFlightSummary reports assignment totals for every pilot, including
// pilots with none. Upcoming counts flights departing after now.
func (s *BaseStore) PilotFlightSummary(ctx context.Context, now models.Timestamp) ([]models.PilotSummary, error) {
	summary := []models.PilotSummary{}
	query := s.Converter(`
		SELECT
			p.pilot_id,
			p.name,
			p.license_id,
			COUNT(pa.flight_id) AS flight_count,
			COUNT(CASE WHEN f.departure_time > ? THEN 1 END) AS upcoming_flights
		FROM pilots p
		LEFT JOIN pilot_assignments pa ON p.pilot_id = pa.pilot_id
		LEFT JOIN flights f ON pa.flight_id = f.flight_id
		GROUP BY p.pilot_id, p.name, p.license_id
		ORDER BY flight_count DESC, p.pilot_id
	`)

	if err := s.DB.SelectContext(ctx, &summary, query, now); err != nil {
		return nil, fmt.Errorf("failed to build pilot summary: %w", err)
	}
	return summary, nil
}

// DestinationStatistics reports per arrival destination the number of
// flights, distinct pilots and delayed or cancelled flights. Flights with
// several pilots are counted once.
func (s *BaseStore) DestinationStatistics(ctx context.Context) ([]models.DestinationStats, error) {
	stats := []models.DestinationStats{}
	err := s.DB.SelectContext(ctx, &stats, `
		SELECT
			d.destination_id,
			d.city,
			d.country,
			COUNT(DISTINCT f.flight_id) AS total_flights,
			COUNT(DISTINCT pa.pilot_id) AS unique_pilots,
			COUNT(DISTINCT CASE WHEN f.status = 'Delayed' THEN f.flight_id END) AS delayed_flights,
			COUNT(DISTINCT CASE WHEN f.status = 'Cancelled' THEN f.flight_id END) AS cancelled_flights
		FROM destinations d
		LEFT JOIN flights f ON d.destination_id = f.destination_id
		LEFT JOIN pilot_assignments pa ON f.flight_id = pa.flight_id
		GROUP BY d.destination_id, d.city, d.country
		ORDER BY total_flights DESC, d.destination_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to build destination statistics: %w", err)
	}
	return stats, nil
}
