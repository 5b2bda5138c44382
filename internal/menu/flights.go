package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/shrimpsizemoose/flightrec/internal/app"
	"github.com/shrimpsizemoose/flightrec/internal/models"
)

func statusList() string {
	names := make([]string, len(models.FlightStatuses))
	for i, s := range models.FlightStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func (m *Menu) handleAddFlight(ctx context.Context) error {
	destinations, err := m.svc.ListDestinations(ctx)
	if err != nil {
		return err
	}
	DestinationsTable(m.out, destinations)

	number, err := m.prompt("Enter flight number: ")
	if err != nil {
		return err
	}
	origin, err := m.promptID("Enter origin destination ID: ")
	if err != nil {
		return err
	}
	destination, err := m.promptID("Enter destination ID: ")
	if err != nil {
		return err
	}
	departure, err := m.prompt("Enter departure time (YYYY-MM-DD HH:MM): ")
	if err != nil {
		return err
	}
	status, err := m.prompt(fmt.Sprintf("Enter status [%s] (blank for Scheduled): ", statusList()))
	if err != nil {
		return err
	}

	id, err := m.svc.AddFlight(ctx, number, origin, destination, departure, status)
	if err != nil {
		return err
	}
	m.noticef("Flight %s added with ID %d", number, id)
	return nil
}

func (m *Menu) handleViewFlights(ctx context.Context) error {
	choice, err := m.choose("View flights by:", map[string]string{
		"1": "Destination",
		"2": "Status",
		"3": "Departure date",
		"4": "All flights",
	})
	if err != nil {
		return err
	}

	var criterion, value string
	switch choice {
	case "1":
		criterion = "destination"
		value, err = m.prompt("Enter destination city: ")
	case "2":
		criterion = "status"
		value, err = m.prompt("Enter status: ")
	case "3":
		criterion = "date"
		value, err = m.prompt("Enter date (YYYY-MM-DD): ")
	case "4":
		criterion = "all"
	}
	if err != nil {
		return err
	}

	rows, err := m.svc.SearchFlights(ctx, criterion, value)
	if err != nil {
		return err
	}
	FlightsTable(m.out, rows, m.layout)
	return nil
}

func (m *Menu) handleUpdateFlight(ctx context.Context) error {
	number, err := m.prompt("Enter flight number to update: ")
	if err != nil {
		return err
	}
	choice, err := m.choose("Field to update:", map[string]string{
		"1": "Departure time",
		"2": "Status",
	})
	if err != nil {
		return err
	}

	field, label := app.FieldDepartureTime, "Enter new departure time (YYYY-MM-DD HH:MM): "
	if choice == "2" {
		field, label = app.FieldStatus, fmt.Sprintf("Enter new status [%s]: ", statusList())
	}
	value, err := m.prompt(label)
	if err != nil {
		return err
	}

	n, err := m.svc.UpdateFlight(ctx, number, field, value)
	if err != nil {
		return err
	}
	m.noticef("Flight %s updated (%d row(s))", number, n)
	return nil
}

func (m *Menu) handleDeleteFlight(ctx context.Context) error {
	number, err := m.prompt("Enter flight number to delete: ")
	if err != nil {
		return err
	}
	n, err := m.svc.DeleteFlight(ctx, number)
	if err != nil {
		return err
	}
	m.noticef("Flight %s deleted (%d row(s))", number, n)
	return nil
}

func (m *Menu) handleAssignPilot(ctx context.Context) error {
	flights, err := m.svc.UpcomingFlights(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Upcoming flights:")
	FlightsTable(m.out, flights, m.layout)

	pilots, err := m.svc.ListPilots(ctx)
	if err != nil {
		return err
	}
	PilotsTable(m.out, pilots)

	flightID, err := m.promptID("Enter flight ID: ")
	if err != nil {
		return err
	}
	pilotID, err := m.promptID("Enter pilot ID: ")
	if err != nil {
		return err
	}
	date, err := m.prompt("Enter assignment date (YYYY-MM-DD HH:MM, blank for now): ")
	if err != nil {
		return err
	}

	id, err := m.svc.AssignPilot(ctx, flightID, pilotID, date)
	if err != nil {
		return err
	}
	m.noticef("Pilot %d assigned to flight %d (assignment %d)", pilotID, flightID, id)
	return nil
}

func (m *Menu) handleFlightsPerDestination(ctx context.Context) error {
	counts, err := m.svc.FlightsPerDestination(ctx)
	if err != nil {
		return err
	}
	FlightsPerDestinationTable(m.out, counts)
	return nil
}

func (m *Menu) handlePilotSummary(ctx context.Context) error {
	summary, err := m.svc.PilotFlightSummary(ctx)
	if err != nil {
		return err
	}
	PilotSummaryTable(m.out, summary)
	return nil
}

func (m *Menu) handleDestinationStatistics(ctx context.Context) error {
	stats, err := m.svc.DestinationStatistics(ctx)
	if err != nil {
		return err
	}
	DestinationStatisticsTable(m.out, stats)
	return nil
}

func (m *Menu) handlePopulateSampleData(ctx context.Context) error {
	if err := m.svc.PopulateSampleData(ctx); err != nil {
		return err
	}
	m.noticef("Sample data populated successfully")
	return nil
}
