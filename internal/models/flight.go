package models

import "database/sql/driver"

type FlightStatus string

const (
	StatusScheduled FlightStatus = "Scheduled"
	StatusCancelled FlightStatus = "Cancelled"
	StatusDeparted  FlightStatus = "Departed"
	StatusArrived   FlightStatus = "Arrived"
	StatusDelayed   FlightStatus = "Delayed"
	StatusBoarding  FlightStatus = "Boarding"
	StatusInFlight  FlightStatus = "In Flight"
)

// FlightStatuses lists every status the flights table accepts.
var FlightStatuses = []FlightStatus{
	StatusScheduled,
	StatusCancelled,
	StatusDeparted,
	StatusArrived,
	StatusDelayed,
	StatusBoarding,
	StatusInFlight,
}

func (s FlightStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Flight status and route are checked by the store, not here: the CHECK
// constraints on the flights table are the single source of truth.
type Flight struct {
	ID            int64        `db:"flight_id" json:"flight_id"`
	FlightNumber  string       `db:"flight_number" json:"flight_number" validate:"required"`
	OriginID      int64        `db:"origin_id" json:"origin_id"`
	DestinationID int64        `db:"destination_id" json:"destination_id"`
	DepartureTime Timestamp    `db:"departure_time" json:"departure_time"`
	Status        FlightStatus `db:"status" json:"status"`
}

func (f *Flight) Validate() error {
	return validate.Struct(f)
}

// FlightRow is a flight joined against its origin and destination cities.
type FlightRow struct {
	ID            int64        `db:"flight_id" json:"flight_id"`
	FlightNumber  string       `db:"flight_number" json:"flight_number"`
	Origin        string       `db:"origin" json:"origin"`
	Destination   string       `db:"destination" json:"destination"`
	DepartureTime Timestamp    `db:"departure_time" json:"departure_time"`
	Status        FlightStatus `db:"status" json:"status"`
}
