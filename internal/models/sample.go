package models

// SampleData is a self-contained data set. Flights and assignments refer to
// pilots and destinations by their position in the slices, so the set can be
// loaded into a store that already has rows.
type SampleData struct {
	Pilots       []Pilot
	Destinations []Destination
	Flights      []SampleFlight
	Assignments  []SampleAssignment
}

type SampleFlight struct {
	FlightNumber  string
	Origin        int
	Destination   int
	DepartureTime Timestamp
	Status        FlightStatus
}

type SampleAssignment struct {
	Flight         int
	Pilot          int
	AssignmentDate Timestamp
}
