package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/flightrec/internal/metrics"
	"github.com/shrimpsizemoose/flightrec/internal/models"
	"github.com/shrimpsizemoose/flightrec/internal/store"
)

// Flight fields that UpdateFlight accepts.
const (
	FieldDepartureTime = "departure_time"
	FieldStatus        = "status"
)

type Service struct {
	Config *Config
	Store  store.FlightStore
	// Now is the clock used for default assignment dates and upcoming flight
	// cut-offs. Its wall clock reading is stored as is.
	Now func() time.Time
}

func NewService(ctx context.Context, config *Config) (*Service, error) {
	s, err := NewStore(ctx, config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	return &Service{
		Config: config,
		Store:  s,
		Now:    time.Now,
	}, nil
}

func (s *Service) now() models.Timestamp {
	if s.Now == nil {
		return models.NewTimestamp(time.Now())
	}
	return models.NewTimestamp(s.Now())
}

// track records metrics for one operation and logs its failure at debug
// level. The caller reports the error to the user.
func track(operation string, start time.Time, err *error) {
	metrics.Observe(operation, start, *err)
	if *err != nil {
		logger.Debug.Printf("%s failed: %v", operation, *err)
	}
}

func trackRows(operation string, n int) {
	metrics.RowsReturned.WithLabelValues(operation).Observe(float64(n))
}

// AddFlight parses departure before touching the store. An empty status
// means Scheduled.
func (s *Service) AddFlight(ctx context.Context, number string, originID, destinationID int64, departure, status string) (id int64, err error) {
	defer track("add_flight", time.Now(), &err)

	dep, err := models.ParseTimestamp(departure)
	if err != nil {
		return 0, err
	}

	flight := &models.Flight{
		FlightNumber:  strings.TrimSpace(number),
		OriginID:      originID,
		DestinationID: destinationID,
		DepartureTime: dep,
		Status:        models.FlightStatus(strings.TrimSpace(status)),
	}
	if flight.Status == "" {
		flight.Status = models.StatusScheduled
	}

	id, err = s.Store.CreateFlight(ctx, flight)
	if err != nil {
		return 0, err
	}
	logger.Info.Printf("Added flight %s (id %d)", flight.FlightNumber, id)
	return id, nil
}

// ParseCriterion maps user input onto a search criterion.
func ParseCriterion(v string) (store.SearchCriterion, error) {
	c := store.SearchCriterion(strings.ToLower(strings.TrimSpace(v)))
	switch c {
	case store.SearchByDestination, store.SearchByStatus, store.SearchByDate, store.SearchAll:
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown search criterion %q", store.ErrValidation, v)
}

func (s *Service) SearchFlights(ctx context.Context, criterion, value string) (rows []models.FlightRow, err error) {
	defer track("search_flights", time.Now(), &err)

	c, err := ParseCriterion(criterion)
	if err != nil {
		return nil, err
	}

	q := store.FlightQuery{Criterion: c, Text: strings.TrimSpace(value)}
	if c == store.SearchByDate {
		if q.Day, err = models.ParseDate(value); err != nil {
			return nil, err
		}
	}

	rows, err = s.Store.SearchFlights(ctx, q)
	if err != nil {
		return nil, err
	}
	trackRows("search_flights", len(rows))
	return rows, nil
}

func (s *Service) UpcomingFlights(ctx context.Context) (rows []models.FlightRow, err error) {
	defer track("upcoming_flights", time.Now(), &err)
	return s.Store.UpcomingFlights(ctx, s.now())
}

// UpdateFlight changes field on every flight numbered number and returns how
// many rows changed.
func (s *Service) UpdateFlight(ctx context.Context, number, field, value string) (n int64, err error) {
	defer track("update_flight", time.Now(), &err)

	var update store.FlightUpdate
	switch strings.ToLower(strings.TrimSpace(field)) {
	case FieldDepartureTime:
		dep, err := models.ParseTimestamp(value)
		if err != nil {
			return 0, err
		}
		update.DepartureTime = &dep
	case FieldStatus:
		status := models.FlightStatus(strings.TrimSpace(value))
		update.Status = &status
	default:
		return 0, fmt.Errorf("%w: field %q can not be updated, use %s or %s",
			store.ErrValidation, field, FieldDepartureTime, FieldStatus)
	}

	n, err = s.Store.UpdateFlightsByNumber(ctx, strings.TrimSpace(number), update)
	if err != nil {
		return 0, err
	}
	logger.Info.Printf("Updated %s on %d flight(s) numbered %s", field, n, number)
	return n, nil
}

// DeleteFlight removes every flight numbered number. Flights with pilot
// assignments are refused with a *store.DependentRowsError.
func (s *Service) DeleteFlight(ctx context.Context, number string) (n int64, err error) {
	defer track("delete_flight", time.Now(), &err)

	n, err = s.Store.DeleteFlightsByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		return 0, err
	}
	logger.Info.Printf("Deleted %d flight(s) numbered %s", n, number)
	return n, nil
}

func (s *Service) ListPilots(ctx context.Context) (pilots []models.Pilot, err error) {
	defer track("list_pilots", time.Now(), &err)
	return s.Store.ListPilots(ctx)
}

func (s *Service) AddPilot(ctx context.Context, name, licenseID string, yearsExperience *int) (id int64, err error) {
	defer track("add_pilot", time.Now(), &err)

	pilot := &models.Pilot{
		Name:            strings.TrimSpace(name),
		LicenseID:       strings.TrimSpace(licenseID),
		YearsExperience: yearsExperience,
	}
	id, err = s.Store.CreatePilot(ctx, pilot)
	if err != nil {
		return 0, err
	}
	logger.Info.Printf("Added pilot %s (id %d)", pilot.Name, id)
	return id, nil
}

// UpdatePilot reports false without touching the store when update is empty.
func (s *Service) UpdatePilot(ctx context.Context, id int64, update store.PilotUpdate) (updated bool, err error) {
	defer track("update_pilot", time.Now(), &err)

	if update.Empty() {
		return false, nil
	}
	if err := s.Store.UpdatePilot(ctx, id, update); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) DeletePilot(ctx context.Context, id int64) (err error) {
	defer track("delete_pilot", time.Now(), &err)

	if err := s.Store.DeletePilot(ctx, id); err != nil {
		return err
	}
	logger.Info.Printf("Deleted pilot %d", id)
	return nil
}

func (s *Service) PilotSchedule(ctx context.Context, pilotID int64) (entries []models.ScheduleEntry, err error) {
	defer track("pilot_schedule", time.Now(), &err)
	return s.Store.PilotSchedule(ctx, pilotID)
}

func (s *Service) ListDestinations(ctx context.Context) (destinations []models.Destination, err error) {
	defer track("list_destinations", time.Now(), &err)
	return s.Store.ListDestinations(ctx)
}

func (s *Service) AddDestination(ctx context.Context, city, country, airportCode string) (id int64, err error) {
	defer track("add_destination", time.Now(), &err)

	destination := &models.Destination{
		City:        strings.TrimSpace(city),
		Country:     strings.TrimSpace(country),
		AirportCode: strings.ToUpper(strings.TrimSpace(airportCode)),
	}
	id, err = s.Store.CreateDestination(ctx, destination)
	if err != nil {
		return 0, err
	}
	logger.Info.Printf("Added destination %s (id %d)", destination.City, id)
	return id, nil
}

func (s *Service) UpdateDestination(ctx context.Context, id int64, update store.DestinationUpdate) (updated bool, err error) {
	defer track("update_destination", time.Now(), &err)

	if update.Empty() {
		return false, nil
	}
	if err := s.Store.UpdateDestination(ctx, id, update); err != nil {
		return false, err
	}
	return true, nil
}

// AssignPilot assigns pilotID to flightID. A blank date means now.
func (s *Service) AssignPilot(ctx context.Context, flightID, pilotID int64, date string) (id int64, err error) {
	defer track("assign_pilot", time.Now(), &err)

	assigned := s.now()
	if strings.TrimSpace(date) != "" {
		if assigned, err = models.ParseTimestamp(date); err != nil {
			return 0, err
		}
	}

	id, err = s.Store.CreateAssignment(ctx, &models.Assignment{
		FlightID:       flightID,
		PilotID:        pilotID,
		AssignmentDate: assigned,
	})
	if err != nil {
		return 0, err
	}
	logger.Info.Printf("Assigned pilot %d to flight %d (assignment %d)", pilotID, flightID, id)
	return id, nil
}

func (s *Service) DeleteAssignment(ctx context.Context, id int64) (err error) {
	defer track("delete_assignment", time.Now(), &err)

	if err := s.Store.DeleteAssignment(ctx, id); err != nil {
		return err
	}
	logger.Info.Printf("Deleted assignment %d", id)
	return nil
}

func (s *Service) FlightsPerDestination(ctx context.Context) (counts []models.DestinationFlightCount, err error) {
	defer track("flights_per_destination", time.Now(), &err)

	counts, err = s.Store.FlightsPerDestination(ctx)
	if err == nil {
		trackRows("flights_per_destination", len(counts))
	}
	return counts, err
}

func (s *Service) PilotFlightSummary(ctx context.Context) (summary []models.PilotSummary, err error) {
	defer track("pilot_flight_summary", time.Now(), &err)

	summary, err = s.Store.PilotFlightSummary(ctx, s.now())
	if err == nil {
		trackRows("pilot_flight_summary", len(summary))
	}
	return summary, err
}

func (s *Service) DestinationStatistics(ctx context.Context) (stats []models.DestinationStats, err error) {
	defer track("destination_statistics", time.Now(), &err)

	stats, err = s.Store.DestinationStatistics(ctx)
	if err == nil {
		trackRows("destination_statistics", len(stats))
	}
	return stats, err
}

func (s *Service) PopulateSampleData(ctx context.Context) (err error) {
	defer track("populate_sample_data", time.Now(), &err)

	data := SampleData()
	if err := s.Store.Seed(ctx, data); err != nil {
		return err
	}
	logger.Info.Printf("Sample data loaded: %d pilots, %d destinations, %d flights, %d assignments",
		len(data.Pilots), len(data.Destinations), len(data.Flights), len(data.Assignments))
	return nil
}

func (s *Service) Close() error {
	var errs []error

	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	if s.Config != nil {
		if err := metrics.WriteTextfile(s.Config.Metrics.Textfile); err != nil {
			errs = append(errs, fmt.Errorf("metrics: %w", err))
		}
	}

	return errors.Join(errs...)
}
