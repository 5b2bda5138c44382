package menu

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/shrimpsizemoose/flightrec/internal/models"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)
	return table
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// FlightsTable writes flights with their route. layout formats departure times.
func FlightsTable(w io.Writer, rows []models.FlightRow, layout string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No flights found.")
		return
	}
	table := newTable(w, "ID", "Flight", "Origin", "Destination", "Departure", "Status")
	for _, r := range rows {
		table.Append([]string{
			itoa(r.ID),
			r.FlightNumber,
			r.Origin,
			r.Destination,
			r.DepartureTime.Format(layout),
			string(r.Status),
		})
	}
	table.Render()
}

func PilotsTable(w io.Writer, pilots []models.Pilot) {
	if len(pilots) == 0 {
		fmt.Fprintln(w, "No pilots found.")
		return
	}
	table := newTable(w, "ID", "Name", "License", "Experience")
	for _, p := range pilots {
		years := "-"
		if p.YearsExperience != nil {
			years = fmt.Sprintf("%d years", *p.YearsExperience)
		}
		table.Append([]string{itoa(p.ID), p.Name, p.LicenseID, years})
	}
	table.Render()
}

func DestinationsTable(w io.Writer, destinations []models.Destination) {
	if len(destinations) == 0 {
		fmt.Fprintln(w, "No destinations found.")
		return
	}
	table := newTable(w, "ID", "City", "Country", "Airport")
	for _, d := range destinations {
		table.Append([]string{itoa(d.ID), d.City, d.Country, d.AirportCode})
	}
	table.Render()
}

func ScheduleTable(w io.Writer, entries []models.ScheduleEntry, layout string) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No flights assigned to this pilot.")
		return
	}
	fmt.Fprintf(w, "Schedule for %s\n", entries[0].PilotName)
	table := newTable(w, "Assignment", "Flight", "Origin", "Destination", "Departure", "Assigned")
	for _, e := range entries {
		table.Append([]string{
			itoa(e.AssignmentID),
			e.FlightNumber,
			e.Origin,
			e.Destination,
			e.DepartureTime.Format(layout),
			e.AssignmentDate.Format(layout),
		})
	}
	table.Render()
}

func FlightsPerDestinationTable(w io.Writer, counts []models.DestinationFlightCount) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "No flights found.")
		return
	}
	table := newTable(w, "Destination", "Flights")
	for _, c := range counts {
		table.Append([]string{c.City, itoa(c.FlightCount)})
	}
	table.Render()
}

func PilotSummaryTable(w io.Writer, summary []models.PilotSummary) {
	if len(summary) == 0 {
		fmt.Fprintln(w, "No pilots found.")
		return
	}
	table := newTable(w, "ID", "Name", "License", "Total flights", "Upcoming")
	for _, s := range summary {
		table.Append([]string{itoa(s.PilotID), s.Name, s.LicenseID, itoa(s.TotalFlights), itoa(s.UpcomingFlights)})
	}
	table.Render()
}

func DestinationStatisticsTable(w io.Writer, stats []models.DestinationStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No destinations found.")
		return
	}
	table := newTable(w, "ID", "City", "Country", "Flights", "Pilots", "Delayed", "Cancelled")
	for _, s := range stats {
		table.Append([]string{
			itoa(s.DestinationID),
			s.City,
			s.Country,
			itoa(s.TotalFlights),
			itoa(s.UniquePilots),
			itoa(s.DelayedFlights),
			itoa(s.CancelledFlights),
		})
	}
	table.Render()
}
