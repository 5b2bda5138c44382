package sqlite

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/shrimpsizemoose/flightrec/internal/models"
	"github.com/shrimpsizemoose/flightrec/internal/store"
)

func TestMain(m *testing.M) {
	log.Println("Starting SQLite store tests...")
	goleak.VerifyTestMain(m)
}

// setupTestDB creates a fresh database file in a temp dir and applies the
// embedded migrations.
func setupTestDB(t *testing.T) (*SQLiteStore, func()) {
	dsn := filepath.Join(t.TempDir(), "flights.db")
	s, err := NewSQLiteStore(&store.DBConfig{DSN: dsn, Type: store.DBTypeSQLite})
	require.NoError(t, err, "Failed to create store")

	err = s.ApplyMigrations(context.Background())
	require.NoError(t, err, "Failed to apply migrations")

	cleanup := func() {
		err := s.Close()
		require.NoError(t, err, "Failed to close database")
	}
	return s, cleanup
}

type testData struct {
	store  *SQLiteStore
	london int64
	paris  int64
	rome   int64
}

func setupTestData(t *testing.T) (*testData, func()) {
	s, cleanup := setupTestDB(t)
	ctx := context.Background()

	td := &testData{store: s}
	for _, d := range []struct {
		id                  *int64
		city, country, code string
	}{
		{&td.london, "London", "UK", "LHR"},
		{&td.paris, "Paris", "France", "CDG"},
		{&td.rome, "Rome", "Italy", "FCO"},
	} {
		id, err := s.CreateDestination(ctx, &models.Destination{City: d.city, Country: d.country, AirportCode: d.code})
		require.NoError(t, err, "Failed to insert test destination")
		*d.id = id
	}
	return td, cleanup
}

func ts(t *testing.T, s string) models.Timestamp {
	t.Helper()
	v, err := models.ParseTimestamp(s)
	require.NoError(t, err)
	return v
}

func countRows(t *testing.T, s *SQLiteStore, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.DB.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func (td *testData) addFlight(t *testing.T, number string, origin, dest int64, departure string) int64 {
	t.Helper()
	id, err := td.store.CreateFlight(context.Background(), &models.Flight{
		FlightNumber:  number,
		OriginID:      origin,
		DestinationID: dest,
		DepartureTime: ts(t, departure),
	})
	require.NoError(t, err, "Failed to create flight %s", number)
	return id
}

func (td *testData) addPilot(t *testing.T, name, license string) int64 {
	t.Helper()
	years := 0
	id, err := td.store.CreatePilot(context.Background(), &models.Pilot{Name: name, LicenseID: license, YearsExperience: &years})
	require.NoError(t, err, "Failed to create pilot %s", name)
	return id
}

func (td *testData) assign(t *testing.T, flightID, pilotID int64) int64 {
	t.Helper()
	id, err := td.store.CreateAssignment(context.Background(), &models.Assignment{
		FlightID:       flightID,
		PilotID:        pilotID,
		AssignmentDate: ts(t, "2025-05-01 09:00"),
	})
	require.NoError(t, err)
	return id
}

func TestNewSQLiteStore(t *testing.T) {
	t.Run("rejects in-memory databases", func(t *testing.T) {
		_, err := NewSQLiteStore(&store.DBConfig{DSN: ":memory:"})
		require.Error(t, err)
	})

	t.Run("fails on unopenable path", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "missing", "dir", "flights.db")
		_, err := NewSQLiteStore(&store.DBConfig{DSN: dsn})
		require.Error(t, err)
	})

	t.Run("connection url carries pragmas", func(t *testing.T) {
		u := connURL("file:flights.db?mode=ro")
		assert.Contains(t, u, "file:flights.db?")
		assert.Contains(t, u, "_txlock=immediate")
		assert.NotContains(t, u, "mode=ro")
	})
}

func TestTranslateToSQLite(t *testing.T) {
	in := "id BIGSERIAL PRIMARY KEY, ref BIGINT NOT NULL, at TIMESTAMP NOT NULL"
	want := "id INTEGER PRIMARY KEY AUTOINCREMENT, ref INTEGER NOT NULL, at DATETIME NOT NULL"
	assert.Equal(t, want, translateToSQLite(in))
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, s.ApplyMigrations(context.Background()))
	assert.Equal(t, 1, countRows(t, s, "schema_migrations"))

	for _, table := range []string{"pilots", "destinations", "flights", "pilot_assignments"} {
		assert.Equal(t, 0, countRows(t, s, table), table)
	}
}

func TestAddFlightAndSearchByDate(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	id := td.addFlight(t, "BA900", td.london, td.paris, "2025-06-01 10:00")
	td.addFlight(t, "BA901", td.paris, td.london, "2025-06-02 00:00")
	late := td.addFlight(t, "BA902", td.paris, td.rome, "2025-06-01 23:59")

	t.Run("status defaults to scheduled", func(t *testing.T) {
		got, err := td.store.GetFlight(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.StatusScheduled, got.Status)
		assert.Equal(t, "2025-06-01 10:00:00", got.DepartureTime.String())
	})

	t.Run("date covers the whole day only", func(t *testing.T) {
		day, err := models.ParseDate("2025-06-01")
		require.NoError(t, err)

		rows, err := td.store.SearchFlights(ctx, store.FlightQuery{Criterion: store.SearchByDate, Day: day})
		require.NoError(t, err)

		want := []models.FlightRow{
			{ID: id, FlightNumber: "BA900", Origin: "London", Destination: "Paris", DepartureTime: ts(t, "2025-06-01 10:00"), Status: models.StatusScheduled},
			{ID: late, FlightNumber: "BA902", Origin: "Paris", Destination: "Rome", DepartureTime: ts(t, "2025-06-01 23:59"), Status: models.StatusScheduled},
		}
		if diff := cmp.Diff(want, rows); diff != "" {
			t.Errorf("SearchFlights mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestAddFlightRejected(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name   string
		flight models.Flight
	}{
		{"origin equals destination", models.Flight{FlightNumber: "X1", OriginID: td.london, DestinationID: td.london}},
		{"unknown destination", models.Flight{FlightNumber: "X2", OriginID: td.london, DestinationID: 999}},
		{"invalid status", models.Flight{FlightNumber: "X3", OriginID: td.london, DestinationID: td.paris, Status: "Lost"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.flight
			f.DepartureTime = ts(t, "2025-06-01 10:00")

			_, err := td.store.CreateFlight(ctx, &f)
			require.Error(t, err)
			assert.ErrorIs(t, err, store.ErrConstraint)
			assert.Equal(t, 0, countRows(t, td.store, "flights"))
		})
	}

	t.Run("missing flight number", func(t *testing.T) {
		_, err := td.store.CreateFlight(ctx, &models.Flight{OriginID: td.london, DestinationID: td.paris})
		assert.ErrorIs(t, err, store.ErrValidation)
	})
}

func TestSearchFlights(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	td.addFlight(t, "BA101", td.london, td.paris, "2025-06-01 10:00")
	td.addFlight(t, "BA102", td.london, td.rome, "2025-06-01 08:00")
	delayed := models.StatusDelayed
	_, err := td.store.UpdateFlightsByNumber(ctx, "BA102", store.FlightUpdate{Status: &delayed})
	require.NoError(t, err)

	numbers := func(rows []models.FlightRow) []string {
		out := []string{}
		for _, r := range rows {
			out = append(out, r.FlightNumber)
		}
		return out
	}

	tests := []struct {
		name  string
		query store.FlightQuery
		want  []string
	}{
		{"destination substring", store.FlightQuery{Criterion: store.SearchByDestination, Text: "ar"}, []string{"BA101"}},
		{"status substring", store.FlightQuery{Criterion: store.SearchByStatus, Text: "Delay"}, []string{"BA102"}},
		{"all ordered by departure", store.FlightQuery{Criterion: store.SearchAll}, []string{"BA102", "BA101"}},
		{"no match", store.FlightQuery{Criterion: store.SearchByDestination, Text: "Oslo"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := td.store.SearchFlights(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, numbers(rows))
		})
	}

	t.Run("unknown criterion", func(t *testing.T) {
		_, err := td.store.SearchFlights(ctx, store.FlightQuery{Criterion: "pilot"})
		assert.ErrorIs(t, err, store.ErrValidation)
	})
}

func TestUpcomingFlights(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()

	td.addFlight(t, "OLD1", td.london, td.paris, "2024-01-01 10:00")
	td.addFlight(t, "NEW1", td.london, td.paris, "2026-01-01 10:00")

	rows, err := td.store.UpcomingFlights(context.Background(), ts(t, "2025-01-01 00:00"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "NEW1", rows[0].FlightNumber)
}

func TestUpdateFlights(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	first := td.addFlight(t, "BA200", td.london, td.paris, "2025-06-01 10:00")
	second := td.addFlight(t, "BA200", td.paris, td.london, "2025-06-02 10:00")

	t.Run("all rows sharing the number change", func(t *testing.T) {
		boarding := models.StatusBoarding
		n, err := td.store.UpdateFlightsByNumber(ctx, "BA200", store.FlightUpdate{Status: &boarding})
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)

		for _, id := range []int64{first, second} {
			f, err := td.store.GetFlight(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, models.StatusBoarding, f.Status)
		}
	})

	t.Run("departure by id", func(t *testing.T) {
		dep := ts(t, "2025-07-01 12:30")
		require.NoError(t, td.store.UpdateFlight(ctx, first, store.FlightUpdate{DepartureTime: &dep}))

		f, err := td.store.GetFlight(ctx, first)
		require.NoError(t, err)
		assert.True(t, dep.Equal(f.DepartureTime))
	})

	t.Run("unknown number", func(t *testing.T) {
		status := models.StatusArrived
		_, err := td.store.UpdateFlightsByNumber(ctx, "ZZ999", store.FlightUpdate{Status: &status})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("invalid status is refused by the table", func(t *testing.T) {
		status := models.FlightStatus("Teleported")
		_, err := td.store.UpdateFlightsByNumber(ctx, "BA200", store.FlightUpdate{Status: &status})
		assert.ErrorIs(t, err, store.ErrConstraint)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		n, err := td.store.UpdateFlightsByNumber(ctx, "ZZ999", store.FlightUpdate{})
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestDeleteFlights(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	flightID := td.addFlight(t, "BA300", td.london, td.paris, "2025-06-01 10:00")
	td.addFlight(t, "BA301", td.london, td.rome, "2025-06-01 11:00")
	pilotID := td.addPilot(t, "Jane Doe", "L-1")
	assignmentID := td.assign(t, flightID, pilotID)

	t.Run("refused while assigned", func(t *testing.T) {
		_, err := td.store.DeleteFlightsByNumber(ctx, "BA300")
		var dep *store.DependentRowsError
		require.ErrorAs(t, err, &dep)
		assert.EqualValues(t, 1, dep.Count)
		assert.Equal(t, 2, countRows(t, td.store, "flights"))
	})

	t.Run("succeeds once unassigned", func(t *testing.T) {
		require.NoError(t, td.store.DeleteAssignment(ctx, assignmentID))
		n, err := td.store.DeleteFlightsByNumber(ctx, "BA300")
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
		assert.Equal(t, 1, countRows(t, td.store, "flights"))
	})

	t.Run("unknown number", func(t *testing.T) {
		_, err := td.store.DeleteFlightsByNumber(ctx, "BA300")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := td.store.DeleteFlight(ctx, 999)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestAssignments(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	flightID := td.addFlight(t, "BA400", td.london, td.paris, "2025-06-01 10:00")
	pilotID := td.addPilot(t, "Jane Doe", "L-1")

	t.Run("same pair twice", func(t *testing.T) {
		td.assign(t, flightID, pilotID)

		_, err := td.store.CreateAssignment(ctx, &models.Assignment{FlightID: flightID, PilotID: pilotID, AssignmentDate: ts(t, "2025-05-02 09:00")})
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrConstraint)
		assert.Equal(t, 1, countRows(t, td.store, "pilot_assignments"))
	})

	t.Run("missing flight", func(t *testing.T) {
		_, err := td.store.CreateAssignment(ctx, &models.Assignment{FlightID: 999, PilotID: pilotID})
		assert.ErrorIs(t, err, store.ErrValidation)
		assert.Contains(t, err.Error(), "flight with ID 999 does not exist")
	})

	t.Run("missing pilot", func(t *testing.T) {
		_, err := td.store.CreateAssignment(ctx, &models.Assignment{FlightID: flightID, PilotID: 999})
		assert.ErrorIs(t, err, store.ErrValidation)
		assert.Contains(t, err.Error(), "pilot with ID 999 does not exist")
	})

	t.Run("delete unknown assignment", func(t *testing.T) {
		err := td.store.DeleteAssignment(ctx, 999)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("existence checks", func(t *testing.T) {
		ok, err := td.store.FlightExists(ctx, flightID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = td.store.PilotExists(ctx, 999)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPilotOperations(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	pilotID := td.addPilot(t, "Jane Doe", "L-1")

	t.Run("duplicate license", func(t *testing.T) {
		_, err := td.store.CreatePilot(ctx, &models.Pilot{Name: "Other", LicenseID: "L-1"})
		assert.ErrorIs(t, err, store.ErrConstraint)
	})

	t.Run("negative experience", func(t *testing.T) {
		years := -1
		_, err := td.store.CreatePilot(ctx, &models.Pilot{Name: "Other", LicenseID: "L-2", YearsExperience: &years})
		assert.ErrorIs(t, err, store.ErrValidation)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		name := "Jane Smith"
		require.NoError(t, td.store.UpdatePilot(ctx, pilotID, store.PilotUpdate{Name: &name}))

		got, err := td.store.GetPilot(ctx, pilotID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Jane Smith", got.Name)
		assert.Equal(t, "L-1", got.LicenseID)
		require.NotNil(t, got.YearsExperience)
		assert.Equal(t, 0, *got.YearsExperience)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		require.NoError(t, td.store.UpdatePilot(ctx, 999, store.PilotUpdate{}))
	})

	t.Run("update unknown pilot", func(t *testing.T) {
		name := "Nobody"
		err := td.store.UpdatePilot(ctx, 999, store.PilotUpdate{Name: &name})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("get unknown pilot", func(t *testing.T) {
		got, err := td.store.GetPilot(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestDeletePilotGuarded(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	pilotID := td.addPilot(t, "Jane Doe", "L-1")
	a1 := td.assign(t, td.addFlight(t, "BA500", td.london, td.paris, "2025-06-01 10:00"), pilotID)
	a2 := td.assign(t, td.addFlight(t, "BA501", td.paris, td.london, "2025-06-02 10:00"), pilotID)

	err := td.store.DeletePilot(ctx, pilotID)
	var dep *store.DependentRowsError
	require.ErrorAs(t, err, &dep)
	assert.EqualValues(t, 2, dep.Count)
	assert.Equal(t, "can not delete pilot 1 as it has 2 flight assignments, delete these first", dep.Error())

	ok, err := td.store.PilotExists(ctx, pilotID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, td.store.DeleteAssignment(ctx, a1))
	require.NoError(t, td.store.DeleteAssignment(ctx, a2))
	require.NoError(t, td.store.DeletePilot(ctx, pilotID))

	err = td.store.DeletePilot(ctx, pilotID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDestinationOperations(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("list in id order", func(t *testing.T) {
		list, err := td.store.ListDestinations(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "London", list[0].City)
	})

	t.Run("duplicate city and code", func(t *testing.T) {
		_, err := td.store.CreateDestination(ctx, &models.Destination{City: "London", Country: "UK", AirportCode: "LHR"})
		assert.ErrorIs(t, err, store.ErrConstraint)
	})

	t.Run("partial update", func(t *testing.T) {
		code := "ORY"
		require.NoError(t, td.store.UpdateDestination(ctx, td.paris, store.DestinationUpdate{AirportCode: &code}))

		got, err := td.store.GetDestination(ctx, td.paris)
		require.NoError(t, err)
		assert.Equal(t, models.Destination{ID: td.paris, City: "Paris", Country: "France", AirportCode: "ORY"}, *got)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		require.NoError(t, td.store.UpdateDestination(ctx, td.paris, store.DestinationUpdate{}))
	})

	t.Run("update unknown destination", func(t *testing.T) {
		city := "Oslo"
		err := td.store.UpdateDestination(ctx, 999, store.DestinationUpdate{City: &city})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPilotScheduleAndSummary(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	pilotID := td.addPilot(t, "Test Pilot", "X1")
	idle := td.addPilot(t, "Idle Pilot", "X2")
	flightID := td.addFlight(t, "BA900", td.london, td.paris, "2025-06-01 10:00")
	assignmentID := td.assign(t, flightID, pilotID)

	t.Run("schedule", func(t *testing.T) {
		got, err := td.store.PilotSchedule(ctx, pilotID)
		require.NoError(t, err)

		want := []models.ScheduleEntry{{
			AssignmentID:   assignmentID,
			PilotName:      "Test Pilot",
			FlightNumber:   "BA900",
			Origin:         "London",
			Destination:    "Paris",
			DepartureTime:  ts(t, "2025-06-01 10:00"),
			AssignmentDate: ts(t, "2025-05-01 09:00"),
		}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("PilotSchedule mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("summary counts upcoming against now", func(t *testing.T) {
		got, err := td.store.PilotFlightSummary(ctx, ts(t, "2025-01-01 00:00"))
		require.NoError(t, err)

		want := []models.PilotSummary{
			{PilotID: pilotID, Name: "Test Pilot", LicenseID: "X1", TotalFlights: 1, UpcomingFlights: 1},
			{PilotID: idle, Name: "Idle Pilot", LicenseID: "X2", TotalFlights: 0, UpcomingFlights: 0},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("PilotFlightSummary mismatch (-want +got):\n%s", diff)
		}

		got, err = td.store.PilotFlightSummary(ctx, ts(t, "2026-01-01 00:00"))
		require.NoError(t, err)
		assert.Zero(t, got[0].UpcomingFlights)
	})
}

func TestDestinationReports(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	p1 := td.addPilot(t, "Jane Doe", "L-1")
	p2 := td.addPilot(t, "John Roe", "L-2")

	shared := td.addFlight(t, "BA600", td.london, td.paris, "2025-06-01 10:00")
	td.assign(t, shared, p1)
	td.assign(t, shared, p2)
	td.addFlight(t, "BA601", td.rome, td.paris, "2025-06-02 10:00")
	td.addFlight(t, "BA602", td.paris, td.rome, "2025-06-03 10:00")

	cancelled := models.StatusCancelled
	_, err := td.store.UpdateFlightsByNumber(ctx, "BA601", store.FlightUpdate{Status: &cancelled})
	require.NoError(t, err)

	t.Run("flights per destination", func(t *testing.T) {
		got, err := td.store.FlightsPerDestination(ctx)
		require.NoError(t, err)

		want := []models.DestinationFlightCount{
			{City: "Paris", FlightCount: 2},
			{City: "Rome", FlightCount: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FlightsPerDestination mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("statistics count multi-pilot flights once", func(t *testing.T) {
		got, err := td.store.DestinationStatistics(ctx)
		require.NoError(t, err)

		want := []models.DestinationStats{
			{DestinationID: td.paris, City: "Paris", Country: "France", TotalFlights: 2, UniquePilots: 2, CancelledFlights: 1},
			{DestinationID: td.rome, City: "Rome", Country: "Italy", TotalFlights: 1},
			{DestinationID: td.london, City: "London", Country: "UK"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("DestinationStatistics mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestSeed(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	years := 5
	data := &models.SampleData{
		Pilots: []models.Pilot{{Name: "Jane Doe", LicenseID: "UK1", YearsExperience: &years}},
		Destinations: []models.Destination{
			{City: "London", Country: "UK", AirportCode: "LHR"},
			{City: "Paris", Country: "France", AirportCode: "CDG"},
		},
		Flights: []models.SampleFlight{
			{FlightNumber: "BA101", Origin: 0, Destination: 1, DepartureTime: ts(t, "2025-06-01 10:00")},
		},
		Assignments: []models.SampleAssignment{
			{Flight: 0, Pilot: 0, AssignmentDate: ts(t, "2025-05-01 09:00")},
		},
	}

	require.NoError(t, s.Seed(ctx, data))
	assert.Equal(t, 1, countRows(t, s, "pilot_assignments"))

	t.Run("second run changes nothing", func(t *testing.T) {
		err := s.Seed(ctx, data)
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrConstraint))

		assert.Equal(t, 1, countRows(t, s, "pilots"))
		assert.Equal(t, 2, countRows(t, s, "destinations"))
		assert.Equal(t, 1, countRows(t, s, "flights"))
	})

	t.Run("bad reference", func(t *testing.T) {
		bad := &models.SampleData{Flights: []models.SampleFlight{{FlightNumber: "X", Origin: 0, Destination: 3}}}
		err := s.Seed(ctx, bad)
		assert.ErrorIs(t, err, store.ErrValidation)
	})
}

func TestTimestampRoundTripsThroughDriver(t *testing.T) {
	td, cleanup := setupTestData(t)
	defer cleanup()

	id := td.addFlight(t, "BA700", td.london, td.paris, "2025-12-31 23:59")

	var raw string
	require.NoError(t, td.store.DB.Get(&raw, "SELECT CAST(departure_time AS TEXT) FROM flights WHERE flight_id = ?", id))
	assert.Equal(t, "2025-12-31 23:59:00", raw)

	got, err := td.store.GetFlight(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC), got.DepartureTime.Time)
}
