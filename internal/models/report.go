package models

type DestinationFlightCount struct {
	City        string `db:"city" json:"city"`
	FlightCount int64  `db:"flight_count" json:"flight_count"`
}

type PilotSummary struct {
	PilotID         int64  `db:"pilot_id" json:"pilot_id"`
	Name            string `db:"name" json:"name"`
	LicenseID       string `db:"license_id" json:"license_id"`
	TotalFlights    int64  `db:"flight_count" json:"flight_count"`
	UpcomingFlights int64  `db:"upcoming_flights" json:"upcoming_flights"`
}

type DestinationStats struct {
	DestinationID    int64  `db:"destination_id" json:"destination_id"`
	City             string `db:"city" json:"city"`
	Country          string `db:"country" json:"country"`
	TotalFlights     int64  `db:"total_flights" json:"total_flights"`
	UniquePilots     int64  `db:"unique_pilots" json:"unique_pilots"`
	DelayedFlights   int64  `db:"delayed_flights" json:"delayed_flights"`
	CancelledFlights int64  `db:"cancelled_flights" json:"cancelled_flights"`
}
