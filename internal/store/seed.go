package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shrimpsizemoose/flightrec/internal/models"
)

// Seed loads data in a single transaction. Any failure, including a unique key
// clash with rows already present, leaves the store unchanged.
func (s *BaseStore) Seed(ctx context.Context, data *models.SampleData) error {
	if data == nil {
		return validationError("sample data is nil")
	}

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		pilotIDs := make([]int64, len(data.Pilots))
		for i := range data.Pilots {
			p := data.Pilots[i]
			if err := p.Validate(); err != nil {
				return fmt.Errorf("%w: pilot %d: %w", ErrValidation, i, err)
			}
			if err := insertReturning(ctx, tx, &pilotIDs[i], `
				INSERT INTO pilots (name, license_id, years_experience)
				VALUES (:name, :license_id, :years_experience)
				RETURNING pilot_id
			`, &p); err != nil {
				return fmt.Errorf("pilot %s: %w", p.LicenseID, err)
			}
		}

		destIDs := make([]int64, len(data.Destinations))
		for i := range data.Destinations {
			d := data.Destinations[i]
			if err := d.Validate(); err != nil {
				return fmt.Errorf("%w: destination %d: %w", ErrValidation, i, err)
			}
			if err := insertReturning(ctx, tx, &destIDs[i], `
				INSERT INTO destinations (city, country, airport_code)
				VALUES (:city, :country, :airport_code)
				RETURNING destination_id
			`, &d); err != nil {
				return fmt.Errorf("destination %s: %w", d.AirportCode, err)
			}
		}

		flightIDs := make([]int64, len(data.Flights))
		for i, sf := range data.Flights {
			if !inRange(sf.Origin, len(destIDs)) || !inRange(sf.Destination, len(destIDs)) {
				return validationError("flight %s refers to an unknown destination", sf.FlightNumber)
			}
			f := models.Flight{
				FlightNumber:  sf.FlightNumber,
				OriginID:      destIDs[sf.Origin],
				DestinationID: destIDs[sf.Destination],
				DepartureTime: sf.DepartureTime,
				Status:        sf.Status,
			}
			if f.Status == "" {
				f.Status = models.StatusScheduled
			}
			if err := insertReturning(ctx, tx, &flightIDs[i], `
				INSERT INTO flights (flight_number, origin_id, destination_id, departure_time, status)
				VALUES (:flight_number, :origin_id, :destination_id, :departure_time, :status)
				RETURNING flight_id
			`, &f); err != nil {
				return fmt.Errorf("flight %s: %w", f.FlightNumber, err)
			}
		}

		for _, sa := range data.Assignments {
			if !inRange(sa.Flight, len(flightIDs)) || !inRange(sa.Pilot, len(pilotIDs)) {
				return validationError("assignment refers to an unknown flight or pilot")
			}
			a := models.Assignment{
				FlightID:       flightIDs[sa.Flight],
				PilotID:        pilotIDs[sa.Pilot],
				AssignmentDate: sa.AssignmentDate,
			}
			var id int64
			if err := insertReturning(ctx, tx, &id, `
				INSERT INTO pilot_assignments (flight_id, pilot_id, assignment_date)
				VALUES (:flight_id, :pilot_id, :assignment_date)
				RETURNING assignment_id
			`, &a); err != nil {
				return fmt.Errorf("assignment of flight %s: %w", data.Flights[sa.Flight].FlightNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return s.wrap("seed sample data", err)
	}
	return nil
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
