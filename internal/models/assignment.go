package models

type Assignment struct {
	ID             int64     `db:"assignment_id" json:"assignment_id"`
	FlightID       int64     `db:"flight_id" json:"flight_id" validate:"required"`
	PilotID        int64     `db:"pilot_id" json:"pilot_id" validate:"required"`
	AssignmentDate Timestamp `db:"assignment_date" json:"assignment_date"`
}

func (a *Assignment) Validate() error {
	return validate.Struct(a)
}

// ScheduleEntry is one assignment of a pilot with its flight route.
type ScheduleEntry struct {
	AssignmentID   int64     `db:"assignment_id" json:"assignment_id"`
	PilotName      string    `db:"pilot_name" json:"pilot_name"`
	FlightNumber   string    `db:"flight_number" json:"flight_number"`
	Origin         string    `db:"origin" json:"origin"`
	Destination    string    `db:"destination" json:"destination"`
	DepartureTime  Timestamp `db:"departure_time" json:"departure_time"`
	AssignmentDate Timestamp `db:"assignment_date" json:"assignment_date"`
}
